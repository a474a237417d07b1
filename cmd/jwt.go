package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskhub/internal/auth"
	"taskhub/internal/config"
	"taskhub/pkg/domain"
	"taskhub/pkg/logger"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed token
// pair for a given subject (user ID) using the configured signing secret.
// Useful for local development and debugging protected endpoints.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates a JWT token pair for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			username, _ := cmd.Flags().GetString("username")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := domain.ParseUserID(subject)
			if err != nil {
				logger.Fatal(ctx, "could not parse subject", zap.Error(err))
			}

			issuer := auth.NewJWTIssuer(cfg.Auth.JWTSecret, TTL, cfg.Auth.RefreshTokenTTL)
			pair, err := issuer.IssuePair(userID, username)
			if err != nil {
				logger.Fatal(ctx, "could not issue tokens", zap.Error(err))
			}

			fmt.Println("access: " + pair.AccessToken)   //nolint: forbidigo
			fmt.Println("refresh: " + pair.RefreshToken) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().String("username", "", "Username embedded in the access token")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Access token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
