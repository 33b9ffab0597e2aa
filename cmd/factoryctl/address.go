package main

import (
	"asset-factory/internal/pkg/address"

	"github.com/spf13/cobra"
)

type derivedAddresses struct {
	Owner           string `json:"owner"`
	Collection      string `json:"collection"`
	Reservation     string `json:"reservation,omitempty"`
	ReservationMint string `json:"reservation_mint,omitempty"`
	Asset           string `json:"asset,omitempty"`
	AssetMint       string `json:"asset_mint,omitempty"`
}

func newAddressCmd() *cobra.Command {
	var (
		owner string
		id    uint64
	)
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive record and mint addresses for a collection owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := parseAddress("owner", owner)
			if err != nil {
				return err
			}
			col := address.Collection(o)
			out := derivedAddresses{Owner: o.String(), Collection: col.String()}
			if cmd.Flags().Changed("id") {
				res := address.Reservation(col, id)
				as := address.Asset(col, id)
				out.Reservation = res.String()
				out.ReservationMint = address.Mint(res).String()
				out.Asset = as.String()
				out.AssetMint = address.Mint(as).String()
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "collection owner address")
	cmd.Flags().Uint64Var(&id, "id", 0, "reservation or asset id")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
