package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dbadapter "github.com/jongwon/todo-app/internal/adapter/db"
	appservice "github.com/jongwon/todo-app/internal/app/service"
	"github.com/jongwon/todo-app/internal/core/domain"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var (
		email         string
		name          string
		password      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account that can log in to the API",
		Long: `Create an account that can log in to the API.

Examples:
  taskctl user create --email ada@example.com --name Ada --password 's3cret-pass'
  echo 's3cret-pass' | taskctl user create --email ada@example.com --password-stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passwordStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("failed to read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

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

			in := domain.RegisterUserInput{Email: email, Password: password}
			if name != "" {
				in.Name = &name
			}
			user, err := authService.RegisterUser(cmd.Context(), in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "plain-text password")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin")
	_ = cmd.MarkFlagRequired("email")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	cmd.MarkFlagsOneRequired("password", "password-stdin")

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash suitable for seeding users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := appservice.HashPassword(args[0], cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 12, "bcrypt cost")
	return cmd
}
