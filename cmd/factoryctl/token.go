package main

import (
	"errors"
	"os"
	"time"

	"asset-factory/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		identity string
		secret   string
		duration time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := parseAddress("identity", identity)
			if err != nil {
				return err
			}
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("a signing secret is required (--secret or JWT_SECRET)")
			}
			token, err := jwt.NewService(secret, duration).GenerateToken(id)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write([]byte(token + "\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&identity, "identity", "", "caller wallet address")
	cmd.Flags().StringVar(&secret, "secret", "", "HS256 secret, defaults to JWT_SECRET")
	cmd.Flags().DurationVar(&duration, "duration", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("identity")
	return cmd
}
