//go:build unit || e2e

package builder

import (
	"crypto/ed25519"
	"time"

	"asset-factory/internal/domain/grant"
	reqdto "asset-factory/internal/handler/dto/request"
	"asset-factory/internal/pkg/address"

	"github.com/mr-tron/base58"
)

// GrantBuilder produces grants signed by the collection owner's key.
type GrantBuilder struct {
	key       ed25519.PrivateKey
	recipient address.Address
	id        uint64
	nonce     uint64
	expiresAt time.Time
	tamper    func(*grant.SignedGrant)
}

func NewGrantBuilder(ownerKey ed25519.PrivateKey, recipient address.Address, id uint64, now time.Time) *GrantBuilder {
	return &GrantBuilder{
		key:       ownerKey,
		recipient: recipient,
		id:        id,
		nonce:     1,
		expiresAt: now.Add(10 * time.Minute),
	}
}

func (b *GrantBuilder) WithNonce(nonce uint64) *GrantBuilder {
	b.nonce = nonce
	return b
}

func (b *GrantBuilder) WithExpiresAt(t time.Time) *GrantBuilder {
	b.expiresAt = t
	return b
}

func (b *GrantBuilder) WithRecipient(a address.Address) *GrantBuilder {
	b.recipient = a
	return b
}

func (b *GrantBuilder) WithID(id uint64) *GrantBuilder {
	b.id = id
	return b
}

// Tamper edits the grant after it is signed.
func (b *GrantBuilder) Tamper(f func(*grant.SignedGrant)) *GrantBuilder {
	b.tamper = f
	return b
}

func (b *GrantBuilder) Build() *grant.SignedGrant {
	owner := address.FromPublicKey(b.key.Public().(ed25519.PublicKey))
	g := &grant.SignedGrant{
		Recipient:     b.recipient,
		Collection:    address.Collection(owner),
		ReservationID: b.id,
		Nonce:         b.nonce,
		ExpiresAt:     b.expiresAt.UTC().Truncate(time.Second),
	}
	grant.Sign(g, b.key)
	if b.tamper != nil {
		b.tamper(g)
	}
	return g
}

func (b *GrantBuilder) BuildRequestDTO() reqdto.GrantRequest {
	return GrantRequestDTO(b.Build())
}

func GrantRequestDTO(g *grant.SignedGrant) reqdto.GrantRequest {
	return reqdto.GrantRequest{
		Signer:        g.Signer,
		Recipient:     g.Recipient,
		Collection:    g.Collection,
		ReservationID: g.ReservationID,
		Nonce:         g.Nonce,
		ExpiresAt:     g.ExpiresAt,
		Signature:     base58.Encode(g.Signature),
	}
}
