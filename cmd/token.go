package main

import (
	"context"
	"fmt"
	"plotmarket/internal/config"
	"plotmarket/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that mints a bearer token
// for the given email with the configured secret and TTL.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for the given email",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")

			signed, expiresAt, err := getTokenManager(cfg).Issue(email)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign token", zap.Error(err))
			}

			logger.Debug(context.Background(), "token issued", zap.Time("expiresAt", expiresAt))
			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Account email written to the subject claim")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
