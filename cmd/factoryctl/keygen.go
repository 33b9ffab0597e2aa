package main

import (
	"crypto/ed25519"
	"crypto/rand"

	"asset-factory/internal/pkg/address"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
)

type keypair struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a wallet keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub, priv, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), keypair{
				Address:    address.FromPublicKey(pub).String(),
				PrivateKey: base58.Encode(priv),
			})
		},
	}
}
