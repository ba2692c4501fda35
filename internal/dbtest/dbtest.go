// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/goals-api/internal/database"
)

// Open returns an empty in-memory sqlite database. The pool is pinned to one
// connection so every query sees the same memory database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), 0)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// New returns an in-memory database with every migration applied.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db := Open(t)
	_, err := database.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}
