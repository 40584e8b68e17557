//go:build integration

package db

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

// withData reloads the fixture and returns a store over the shared test database.
// Mutating tests commit through RunInTransaction, so rows are reset instead of rolled back.
func withData(t *testing.T) (context.Context, *Store) {
	t.Helper()
	ctx := context.Background()

	if err := LoadTestData(ctx, testDB); err != nil {
		t.Fatalf("failed to load test data: %v", err)
	}

	return ctx, New(testDB, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
