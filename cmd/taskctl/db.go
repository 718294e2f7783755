package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	dbadapter "github.com/jongwon/todo-app/internal/adapter/db"
	"github.com/jongwon/todo-app/internal/config"
)

// openDB connects with the same environment the API server reads.
func openDB() (*config.Config, *sqlx.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", cfg.DbDriver, err)
	}
	return cfg, db, nil
}
