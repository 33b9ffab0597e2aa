package authority

import "asset-factory/internal/pkg/address"

// Signer is whoever authorizes a ledger mutation in the current execution unit.
// Only Wallet and Program implement it.
type Signer interface {
	Address() address.Address
	signer()
}

// Wallet is a signer whose identity was authenticated by the transport.
type Wallet struct {
	addr address.Address
}

func NewWallet(addr address.Address) Wallet {
	return Wallet{addr: addr}
}

func (w Wallet) Address() address.Address { return w.addr }
func (w Wallet) signer()                  {}

type seal struct {
	addr address.Address
}

// Program is the capability standing in for the keyless program authority.
// The zero value is not a valid capability.
type Program struct {
	seal *seal
}

func (p Program) Address() address.Address {
	if p.seal == nil {
		return address.Zero
	}
	return p.seal.addr
}

func (p Program) signer() {}

// Issuer mints the program capability. The settlement core holds the only instance.
type Issuer struct {
	seal *seal
}

func NewIssuer() *Issuer {
	return &Issuer{seal: &seal{addr: address.Authority()}}
}

func (i *Issuer) Capability() Program {
	return Program{seal: i.seal}
}

// Owns reports whether p was minted by this issuer.
func (i *Issuer) Owns(p Program) bool {
	return p.seal != nil && p.seal == i.seal
}

// Authorizes reports whether s may act for the required authority.
// The program address is only honored through a capability minted by i.
func (i *Issuer) Authorizes(s Signer, required address.Address) bool {
	if s == nil || required.IsZero() {
		return false
	}
	if p, ok := s.(Program); ok {
		return i.Owns(p) && p.Address() == required
	}
	return required != i.seal.addr && s.Address() == required
}
