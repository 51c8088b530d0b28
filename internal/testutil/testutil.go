// Package testutil holds shared test fixtures.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/templui/nyr/internal/db"
)

// NewDB opens a migrated SQLite database in a temporary directory. Each
// test gets its own file so pooled connections share one schema.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "nyr.sqlite") + "?_pragma=foreign_keys(1)"
	database, err := db.Open(context.Background(), "sqlite", dsn)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close(database)
	})

	return database
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
