package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/server"
)

func newTokenCmd(c *cli) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.Auth.Enabled() {
				return errors.New("auth.jwt-secret is not configured (set SCREENER_AUTH_JWT_SECRET)")
			}
			if clientID == "" {
				clientID = uuid.New().String()
			}
			token, err := server.NewJWTService(&c.cfg.Auth).GenerateToken(clientID)
			if err != nil {
				return err
			}
			c.log.Debug("token issued", zap.String("client_id", clientID), zap.Int("expiration_hours", c.cfg.Auth.ExpirationHours))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Client id carried by the token (default: a new uuid)")
	return cmd
}
