package grant

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"
	"errors"
	"time"

	"asset-factory/internal/pkg/address"
)

const domainTag = "asset-factory/grant/v1"

var (
	ErrMissingSignature = errors.New("grant signature is missing")
	ErrBadSignature     = errors.New("grant signature does not verify")
	ErrMalformed        = errors.New("grant is malformed")
)

// SignedGrant authorizes one delegated purchase of (Collection, ReservationID) for Recipient.
type SignedGrant struct {
	Signer        address.Address
	Recipient     address.Address
	Collection    address.Address
	ReservationID uint64
	Nonce         uint64
	ExpiresAt     time.Time
	Signature     []byte
}

// Message is the canonical byte string covered by the signature.
func (g *SignedGrant) Message() []byte {
	var buf bytes.Buffer
	buf.Grow(len(domainTag) + 3*address.Size + 24)
	buf.WriteString(domainTag)
	buf.Write(g.Signer[:])
	buf.Write(g.Recipient[:])
	buf.Write(g.Collection[:])
	buf.Write(address.LE64(g.ReservationID))
	buf.Write(address.LE64(g.Nonce))
	var exp [8]byte
	binary.LittleEndian.PutUint64(exp[:], uint64(g.ExpiresAt.Unix()))
	buf.Write(exp[:])
	return buf.Bytes()
}

// Verify checks shape and signature. It does not check expiry or binding.
func (g *SignedGrant) Verify() error {
	if g == nil || g.Signer.IsZero() || g.Recipient.IsZero() || g.Collection.IsZero() {
		return ErrMalformed
	}
	if len(g.Signature) == 0 {
		return ErrMissingSignature
	}
	if len(g.Signature) != ed25519.SignatureSize {
		return ErrMalformed
	}
	if !ed25519.Verify(g.Signer.PublicKey(), g.Message(), g.Signature) {
		return ErrBadSignature
	}
	return nil
}

// Binds reports whether the grant targets this reservation slot.
func (g *SignedGrant) Binds(collection address.Address, id uint64) bool {
	return g.Collection == collection && g.ReservationID == id
}

// ExpiredAt is true once now passes ExpiresAt. The bound is inclusive.
func (g *SignedGrant) ExpiredAt(now time.Time) bool {
	return now.Unix() > g.ExpiresAt.Unix()
}

// Sign fills Signer and Signature using key.
func Sign(g *SignedGrant, key ed25519.PrivateKey) {
	g.Signer = address.FromPublicKey(key.Public().(ed25519.PublicKey))
	g.Signature = ed25519.Sign(key, g.Message())
}
