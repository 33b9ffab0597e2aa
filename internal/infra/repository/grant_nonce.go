package repository

import (
	"context"
	"time"

	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

type GrantNonceRepository struct {
	store recordStore
}

func NewGrantNonceRepository(q AccountQueries) *GrantNonceRepository {
	return &GrantNonceRepository{store: recordStore{q: q}}
}

// Consume records the nonce as used. A second call for the same pair fails with DUPLICATE_KEY.
func (r *GrantNonceRepository) Consume(ctx context.Context, signer address.Address, nonce uint64, usedAt time.Time) error {
	return r.store.create(ctx, address.GrantNonce(signer, nonce), KindGrantNonce, converter.GrantNonceRecord{
		Signer: signer,
		Nonce:  nonce,
		UsedAt: usedAt.Unix(),
	})
}
