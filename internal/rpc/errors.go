package rpc

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/vmkteam/zenrpc/v2"
)

// newError converts manager errors into JSON-RPC errors with HTTP-like codes.
func newError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, newsportal.ErrValidation):
		return zenrpc.NewStringError(http.StatusBadRequest, err.Error())
	case errors.Is(err, newsportal.ErrUnauthenticated):
		return zenrpc.NewStringError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, newsportal.ErrForbidden):
		return zenrpc.NewStringError(http.StatusForbidden, err.Error())
	case errors.Is(err, newsportal.ErrNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, err.Error())
	}

	return err
}
