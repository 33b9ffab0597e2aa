//go:build unit

package authority_test

import (
	"testing"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/pkg/address"
	"asset-factory/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestIssuer_Authorizes(t *testing.T) {
	issuer := authority.NewIssuer()
	foreign := authority.NewIssuer()
	alice := builder.Addr("alice")
	programAddr := address.Authority()

	tests := []struct {
		name     string
		signer   authority.Signer
		required address.Address
		want     bool
	}{
		{name: "wallet for itself", signer: authority.NewWallet(alice), required: alice, want: true},
		{name: "wallet for someone else", signer: authority.NewWallet(alice), required: builder.Addr("bob"), want: false},
		{name: "wallet claiming the program address", signer: authority.NewWallet(programAddr), required: programAddr, want: false},
		{name: "capability for the program", signer: issuer.Capability(), required: programAddr, want: true},
		{name: "capability for a wallet", signer: issuer.Capability(), required: alice, want: false},
		{name: "foreign capability", signer: foreign.Capability(), required: programAddr, want: false},
		{name: "zero capability", signer: authority.Program{}, required: programAddr, want: false},
		{name: "nil signer", signer: nil, required: alice, want: false},
		{name: "zero required", signer: authority.NewWallet(address.Zero), required: address.Zero, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, issuer.Authorizes(tt.signer, tt.required))
		})
	}
}

func TestIssuer_Owns(t *testing.T) {
	issuer := authority.NewIssuer()
	assert.True(t, issuer.Owns(issuer.Capability()))
	assert.False(t, issuer.Owns(authority.NewIssuer().Capability()))
	assert.False(t, issuer.Owns(authority.Program{}))
	assert.True(t, authority.Program{}.Address().IsZero())
	assert.Equal(t, address.Authority(), issuer.Capability().Address())
}
