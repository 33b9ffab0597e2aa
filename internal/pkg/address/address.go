package address

import (
	"crypto/ed25519"
	"encoding/binary"
	"errors"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const Size = 32

var ErrInvalidAddress = errors.New("invalid address")

// Address identifies a wallet or a program-owned record on the ledger.
type Address [Size]byte

var Zero Address

func Parse(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil || len(raw) != Size {
		return Zero, ErrInvalidAddress
	}
	var a Address
	copy(a[:], raw)
	return a, nil
}

func MustParse(s string) Address {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func FromPublicKey(pub ed25519.PublicKey) Address {
	var a Address
	copy(a[:], pub)
	return a
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Zero
}

func (a Address) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Derive hashes a role tag and its seeds into a deterministic address.
// Seeds are length-prefixed so that ("ab","c") and ("a","bc") never collide.
func Derive(tag string, seeds ...[]byte) Address {
	h, _ := blake2b.New256([]byte("asset-factory/derive"))
	writeSeed(h, []byte(tag))
	for _, s := range seeds {
		writeSeed(h, s)
	}
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

func writeSeed(h interface{ Write([]byte) (int, error) }, seed []byte) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(seed)))
	_, _ = h.Write(n[:])
	_, _ = h.Write(seed)
}

func LE64(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}
