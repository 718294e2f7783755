package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	dbadapter "github.com/jongwon/todo-app/internal/adapter/db"
	appservice "github.com/jongwon/todo-app/internal/app/service"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage login sessions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete expired sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			authService := appservice.NewAuthService(
				dbadapter.NewUserRepository(db),
				dbadapter.NewSessionRepository(db),
				cfg.SessionTTL,
				cfg.BcryptCost,
			)
			removed, err := authService.PruneSessions(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired sessions\n", removed)
			return nil
		},
	})

	return cmd
}
