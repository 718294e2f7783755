// Package dbtest opens migrated throwaway databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "github.com/jongwon/todo-app/internal/adapter/db"
	"github.com/jongwon/todo-app/internal/config"
)

var counter atomic.Int64

// OpenSQLite returns a fresh in-memory SQLite database with every migration
// applied. It is closed when the test ends.
func OpenSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	path := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, counter.Add(1))

	db, err := dbadapter.ConnectDB(&config.Config{DbDriver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbadapter.Migrate(db))
	return db
}
