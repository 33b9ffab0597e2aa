//go:build unit

package main

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"
	"time"

	reqdto "asset-factory/internal/handler/dto/request"
	"asset-factory/internal/pkg/address"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSignGrant_ProducesVerifiableAirdropGrant(t *testing.T) {
	out, err := run(t, "keygen")
	require.NoError(t, err)
	var kp keypair
	require.NoError(t, json.Unmarshal([]byte(out), &kp))

	recipient := address.Derive("test", []byte("recipient")).String()
	out, err = run(t, "sign-grant", "--key", kp.PrivateKey, "--recipient", recipient, "--id", "4", "--nonce", "11", "--ttl", "5m")
	require.NoError(t, err)

	var req reqdto.GrantRequest
	require.NoError(t, json.Unmarshal([]byte(out), &req))
	g, err := req.ToDomain()
	require.NoError(t, err)

	require.NoError(t, g.Verify())
	owner := address.MustParse(kp.Address)
	assert.Equal(t, owner, g.Signer)
	assert.True(t, g.Binds(address.Collection(owner), 4))
	assert.Equal(t, uint64(11), g.Nonce)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), g.ExpiresAt, 2*time.Second)
}

func TestSignGrant_Errors(t *testing.T) {
	t.Setenv("FACTORY_KEY", "")
	recipient := address.Derive("test", []byte("recipient")).String()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key := base58.Encode(priv)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no key", args: []string{"sign-grant", "--recipient", recipient, "--id", "0"}, want: errKeyRequired.Error()},
		{name: "short key", args: []string{"sign-grant", "--key", "3yZe7d", "--recipient", recipient, "--id", "0"}, want: "key must be 64 bytes"},
		{name: "bad recipient", args: []string{"sign-grant", "--key", key, "--recipient", "nope", "--id", "0"}, want: "--recipient"},
		{name: "missing id", args: []string{"sign-grant", "--recipient", recipient}, want: `required flag(s) "id" not set`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
