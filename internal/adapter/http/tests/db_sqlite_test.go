//go:build !integration

package tests

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/jongwon/todo-app/internal/adapter/db/dbtest"
)

func openTestDB(t *testing.T) *sqlx.DB {
	return dbtest.OpenSQLite(t)
}
