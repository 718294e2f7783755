package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dbadapter "github.com/jongwon/todo-app/internal/adapter/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := dbadapter.Migrate(db); err != nil {
				return err
			}
			return printVersion(cmd, db.DriverName(), func() (int64, error) { return dbadapter.MigrationVersion(db) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := dbadapter.MigrateDown(db); err != nil {
				return err
			}
			return printVersion(cmd, db.DriverName(), func() (int64, error) { return dbadapter.MigrationVersion(db) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			return printVersion(cmd, db.DriverName(), func() (int64, error) { return dbadapter.MigrationVersion(db) })
		},
	})

	return cmd
}

func printVersion(cmd *cobra.Command, driver string, version func() (int64, error)) error {
	v, err := version()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s schema version: %d\n", driver, v)
	return nil
}
