package main

import (
	"fmt"
	"time"

	"github.com/Beka01247/dormeats/internal/auth"
	"github.com/Beka01247/dormeats/internal/env"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenRole string
	tokenTTL  time.Duration
)

// dormctl token --user --role --ttl
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenRole != auth.RoleSeller && tokenRole != auth.RoleAdmin {
			return fmt.Errorf("role must be %q or %q", auth.RoleSeller, auth.RoleAdmin)
		}

		secret, err := auth.ResolveSecret(env.GetString("AUTH_TOKEN_SECRET", ""), env.GetString("ENV", "development"))
		if err != nil {
			return err
		}

		authenticator := auth.NewAuthenticator(auth.Config{
			Secret: secret,
			Issuer: env.GetString("AUTH_TOKEN_ISSUER", "dormeats"),
		})

		token, err := authenticator.GenerateToken(tokenUser, tokenRole, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "user ID placed in the token")
	tokenCmd.Flags().StringVar(&tokenRole, "role", auth.RoleSeller, "seller or admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}
