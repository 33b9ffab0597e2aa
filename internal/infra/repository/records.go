package repository

import (
	"context"

	"asset-factory/internal/infra"
	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

// recordStore is the shared load/save path for program-owned records.
type recordStore struct {
	q AccountQueries
}

func (s recordStore) load(ctx context.Context, addr address.Address, kind AccountKind, out any) (*Account, error) {
	acc, err := s.q.Get(ctx, addr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read "+string(kind), err)
	}
	if acc == nil {
		return nil, infra.WrapRepoErr(infra.KindNotFound, string(kind)+" not found", nil)
	}
	if acc.Kind != kind {
		return nil, infra.WrapRepoErr(infra.KindWrongKind, "account "+addr.String()+" is "+string(acc.Kind)+", not "+string(kind), nil)
	}
	if err := converter.Decode(acc.Data, out); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDecodeFailure, "failed to decode "+string(kind), err)
	}
	return acc, nil
}

// create fails with DUPLICATE_KEY when any account already lives at addr.
// Lamports already sitting at the address stay with the new record.
func (s recordStore) create(ctx context.Context, addr address.Address, kind AccountKind, rec any) error {
	existing, err := s.q.Get(ctx, addr)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to read "+string(kind), err)
	}
	var lamports uint64
	if existing != nil {
		if existing.Kind != KindWallet || len(existing.Data) > 0 {
			return infra.WrapRepoErr(infra.KindDuplicateKey, string(kind)+" already exists", nil)
		}
		lamports = existing.Lamports
	}
	return s.write(ctx, &Account{Address: addr, Kind: kind, Lamports: lamports}, rec)
}

// save overwrites the record of an existing account and keeps its balance.
func (s recordStore) save(ctx context.Context, addr address.Address, kind AccountKind, rec any) error {
	existing, err := s.q.Get(ctx, addr)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to read "+string(kind), err)
	}
	if existing == nil {
		return infra.WrapRepoErr(infra.KindNotFound, string(kind)+" not found", nil)
	}
	if existing.Kind != kind {
		return infra.WrapRepoErr(infra.KindWrongKind, "account "+addr.String()+" is "+string(existing.Kind)+", not "+string(kind), nil)
	}
	return s.write(ctx, existing, rec)
}

func (s recordStore) write(ctx context.Context, acc *Account, rec any) error {
	data, err := converter.Encode(rec)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDecodeFailure, "failed to encode "+string(acc.Kind), err)
	}
	acc.Data = data
	if err := s.q.Put(ctx, acc); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to write "+string(acc.Kind), err)
	}
	return nil
}
