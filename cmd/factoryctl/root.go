package main

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"asset-factory/internal/pkg/address"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"
)

var errKeyRequired = errors.New("a private key is required (--key or FACTORY_KEY)")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "factoryctl",
		Short:         "Offline tooling for the asset-factory API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newKeygenCmd(),
		newAddressCmd(),
		newSignGrantCmd(),
		newTokenCmd(),
	)
	return root
}

// loadKey decodes a base58 ed25519 private key from the flag or FACTORY_KEY.
func loadKey(flag string) (ed25519.PrivateKey, error) {
	raw := strings.TrimSpace(flag)
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("FACTORY_KEY"))
	}
	if raw == "" {
		return nil, errKeyRequired
	}
	b, err := base58.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	if len(b) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", ed25519.PrivateKeySize, len(b))
	}
	return ed25519.PrivateKey(b), nil
}

func parseAddress(name, v string) (address.Address, error) {
	a, err := address.Parse(v)
	if err != nil {
		return address.Zero, fmt.Errorf("--%s: %w", name, err)
	}
	return a, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
