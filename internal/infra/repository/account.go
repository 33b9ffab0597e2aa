package repository

import (
	"context"

	"asset-factory/internal/pkg/address"
)

type AccountKind string

const (
	KindWallet       AccountKind = "wallet"
	KindProtocol     AccountKind = "protocol"
	KindAdmin        AccountKind = "admin"
	KindCollection   AccountKind = "collection"
	KindReservation  AccountKind = "reservation"
	KindAsset        AccountKind = "asset"
	KindMint         AccountKind = "mint"
	KindTokenAccount AccountKind = "token_account"
	KindGrantNonce   AccountKind = "grant_nonce"
)

// ProgramOwned reports whether records of this kind belong to the program
// rather than to a wallet or the token ledger.
func (k AccountKind) ProgramOwned() bool {
	switch k {
	case KindProtocol, KindAdmin, KindCollection, KindReservation, KindAsset, KindGrantNonce:
		return true
	default:
		return false
	}
}

// Account is one addressable ledger slot: a native balance plus an encoded record.
type Account struct {
	Address  address.Address
	Kind     AccountKind
	Lamports uint64
	Data     []byte
}

// AccountQueries is the storage seam every backend implements inside one transaction.
// Get returns nil and no error when the account is absent.
type AccountQueries interface {
	Get(ctx context.Context, addr address.Address) (*Account, error)
	Put(ctx context.Context, acc *Account) error
	Delete(ctx context.Context, addr address.Address) error
}
