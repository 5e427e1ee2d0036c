package main

import (
	"context"
	"plotmarket/internal/config"
	"plotmarket/internal/users"
	"plotmarket/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// createAdminCommand constructs the 'create-admin' subcommand that creates
// the master admin account unless one already exists.
func createAdminCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Creates the master admin account if none exists",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			input := users.RegisterInput{}
			input.Email, _ = cmd.Flags().GetString("email")
			input.Password, _ = cmd.Flags().GetString("password")
			input.FirstName, _ = cmd.Flags().GetString("first-name")
			input.LastName, _ = cmd.Flags().GetString("last-name")

			user, created, err := users.New(strg, getTokenManager(cfg)).EnsureMasterAdmin(ctx, input)
			if err != nil {
				logger.Fatal(ctx, "could not create master admin", zap.Error(err))
			}
			if !created {
				logger.Info(ctx, "master admin already exists")

				return
			}

			logger.Info(ctx, "master admin created",
				zap.String("userID", user.ID.String()),
				zap.String("email", user.Email))
		},
	}

	cmd.Flags().String("email", "admin@realestate.com", "Master admin email")
	cmd.Flags().String("password", "", "Master admin password")
	cmd.Flags().String("first-name", "Master", "Master admin first name")
	cmd.Flags().String("last-name", "Admin", "Master admin last name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
