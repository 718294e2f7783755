package db

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/jongwon/todo-app/internal/config"
)

//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

func migrationSource(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverSQLite:
		return "sqlite3", "migrations/sqlite", nil
	case config.DriverMySQL:
		return "mysql", "migrations/mysql", nil
	}
	return "", "", fmt.Errorf("no migrations for driver %q", driver)
}

func prepareGoose(db *sqlx.DB) (string, error) {
	dialect, dir, err := migrationSource(db.DriverName())
	if err != nil {
		return "", err
	}
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return "", fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return dir, nil
}

// Migrate applies every pending migration for the connection's driver.
func Migrate(db *sqlx.DB) error {
	dir, err := prepareGoose(db)
	if err != nil {
		return err
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(db *sqlx.DB) error {
	dir, err := prepareGoose(db)
	if err != nil {
		return err
	}
	if err := goose.Down(db.DB, dir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// MigrationVersion reports the current schema version.
func MigrationVersion(db *sqlx.DB) (int64, error) {
	if _, err := prepareGoose(db); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersion(db.DB)
	if err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, nil
}
