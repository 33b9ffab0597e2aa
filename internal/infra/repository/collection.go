package repository

import (
	"context"

	"asset-factory/internal/domain/collection"
	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

type CollectionRepository struct {
	store recordStore
}

func NewCollectionRepository(q AccountQueries) *CollectionRepository {
	return &CollectionRepository{store: recordStore{q: q}}
}

func (r *CollectionRepository) Get(ctx context.Context, owner address.Address) (*collection.Collection, error) {
	var rec converter.CollectionRecord
	if _, err := r.store.load(ctx, address.Collection(owner), KindCollection, &rec); err != nil {
		return nil, err
	}
	return converter.CollectionFromRecord(rec), nil
}

func (r *CollectionRepository) Create(ctx context.Context, c *collection.Collection) error {
	return r.store.create(ctx, address.Collection(c.Owner()), KindCollection, converter.CollectionToRecord(c))
}

func (r *CollectionRepository) Save(ctx context.Context, c *collection.Collection) error {
	return r.store.save(ctx, address.Collection(c.Owner()), KindCollection, converter.CollectionToRecord(c))
}
