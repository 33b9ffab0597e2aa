package repository

import (
	"context"

	"asset-factory/internal/domain/asset"
	"asset-factory/internal/infra"
	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

type AssetRepository struct {
	store recordStore
}

func NewAssetRepository(q AccountQueries) *AssetRepository {
	return &AssetRepository{store: recordStore{q: q}}
}

func (r *AssetRepository) Get(ctx context.Context, col address.Address, id uint64) (*asset.Asset, error) {
	var rec converter.AssetRecord
	if _, err := r.store.load(ctx, address.Asset(col, id), KindAsset, &rec); err != nil {
		return nil, err
	}
	a, err := converter.AssetFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDecodeFailure, "invalid asset record", err)
	}
	return a, nil
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	return r.store.create(ctx, a.Address(), KindAsset, converter.AssetToRecord(a))
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	return r.store.save(ctx, a.Address(), KindAsset, converter.AssetToRecord(a))
}
