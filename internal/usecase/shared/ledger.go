package shared

import (
	"context"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/pkg/address"
)

type TokenMetadata struct {
	Name       string
	Symbol     string
	URI        string
	Additional [][2]string
}

// MintSpec describes a new mint. A zero authority address means the authority is absent.
type MintSpec struct {
	Address           address.Address
	Payer             address.Address
	MintAuthority     address.Address
	FreezeAuthority   address.Address
	CloseAuthority    address.Address
	PermanentDelegate address.Address
	Metadata          TokenMetadata
}

type MintInfo struct {
	Address           address.Address
	Payer             address.Address
	MintAuthority     address.Address
	FreezeAuthority   address.Address
	CloseAuthority    address.Address
	PermanentDelegate address.Address
	Supply            uint64
	Decimals          uint8
	Metadata          TokenMetadata
}

// Revoked reports whether no further units can ever be minted.
func (m *MintInfo) Revoked() bool {
	return m.MintAuthority.IsZero()
}

// TokenLedger is the token program contract the engine settles against.
// Every call participates in the surrounding unit of work.
type TokenLedger interface {
	CreateMint(ctx context.Context, payer authority.Signer, spec MintSpec) error
	// CreateTokenAccount is a no-op returning the existing address when the account exists.
	CreateTokenAccount(ctx context.Context, payer authority.Signer, owner, mint address.Address) (address.Address, error)
	MintTo(ctx context.Context, auth authority.Signer, mint, owner address.Address, amount uint64) error
	// Burn accepts the token account owner or the mint's permanent delegate.
	Burn(ctx context.Context, auth authority.Signer, mint, owner address.Address, amount uint64) error
	// SetMintAuthority with a zero next address revokes minting for good.
	SetMintAuthority(ctx context.Context, auth authority.Signer, mint, next address.Address) error
	Transfer(ctx context.Context, from authority.Signer, to address.Address, lamports uint64) error
	// CloseRecord drains a program-owned record into dest and removes it.
	CloseRecord(ctx context.Context, program authority.Program, record, dest address.Address) (uint64, error)
	Deposit(ctx context.Context, to address.Address, lamports uint64) error

	Balance(ctx context.Context, addr address.Address) (uint64, error)
	TokenBalance(ctx context.Context, owner, mint address.Address) (uint64, error)
	MintInfo(ctx context.Context, mint address.Address) (*MintInfo, error)
}
