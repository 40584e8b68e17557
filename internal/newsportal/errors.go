package newsportal

import (
	"errors"
	"fmt"

	"github.com/daniilsolovey/news-website/internal/db"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("authentication required")
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// commitError converts storage constraint errors raised on save into validation errors.
func commitError(err error, msg string) error {
	switch {
	case errors.Is(err, db.ErrUniqueViolation), errors.Is(err, db.ErrForeignKeyViolation):
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	case errors.Is(err, db.ErrNoRows):
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	}

	return fmt.Errorf("db save changes: %w", err)
}
