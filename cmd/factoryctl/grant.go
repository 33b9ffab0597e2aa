package main

import (
	"crypto/ed25519"
	"time"

	"asset-factory/internal/domain/grant"
	"asset-factory/internal/pkg/address"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
)

// grantPayload mirrors the "grant" object of the airdrop request body.
type grantPayload struct {
	Signer        string    `json:"signer"`
	Recipient     string    `json:"recipient"`
	Collection    string    `json:"collection"`
	ReservationID uint64    `json:"reservation_id"`
	Nonce         uint64    `json:"nonce"`
	ExpiresAt     time.Time `json:"expires_at"`
	Signature     string    `json:"signature"`
}

func newSignGrantCmd() *cobra.Command {
	var (
		key       string
		recipient string
		id        uint64
		nonce     uint64
		ttl       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sign-grant",
		Short: "Sign a delegated purchase grant as the collection owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := loadKey(key)
			if err != nil {
				return err
			}
			to, err := parseAddress("recipient", recipient)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("nonce") {
				nonce = uint64(time.Now().UnixNano())
			}

			owner := address.FromPublicKey(priv.Public().(ed25519.PublicKey))
			g := &grant.SignedGrant{
				Recipient:     to,
				Collection:    address.Collection(owner),
				ReservationID: id,
				Nonce:         nonce,
				ExpiresAt:     time.Now().Add(ttl).UTC().Truncate(time.Second),
			}
			grant.Sign(g, priv)

			return printJSON(cmd.OutOrStdout(), grantPayload{
				Signer:        g.Signer.String(),
				Recipient:     g.Recipient.String(),
				Collection:    g.Collection.String(),
				ReservationID: g.ReservationID,
				Nonce:         g.Nonce,
				ExpiresAt:     g.ExpiresAt,
				Signature:     base58.Encode(g.Signature),
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "owner private key (base58), defaults to FACTORY_KEY")
	cmd.Flags().StringVar(&recipient, "recipient", "", "buyer address")
	cmd.Flags().Uint64Var(&id, "id", 0, "reservation id")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "single-use nonce, defaults to the current unix nanoseconds")
	cmd.Flags().DurationVar(&ttl, "ttl", 15*time.Minute, "grant lifetime")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
