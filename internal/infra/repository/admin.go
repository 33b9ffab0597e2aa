package repository

import (
	"context"

	"asset-factory/internal/domain/admin"
	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

type AdminRepository struct {
	store recordStore
}

func NewAdminRepository(q AccountQueries) *AdminRepository {
	return &AdminRepository{store: recordStore{q: q}}
}

func (r *AdminRepository) Get(ctx context.Context, identity address.Address) (*admin.Admin, error) {
	var rec converter.AdminRecord
	if _, err := r.store.load(ctx, address.Admin(identity), KindAdmin, &rec); err != nil {
		return nil, err
	}
	return converter.AdminFromRecord(rec), nil
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	return r.store.create(ctx, address.Admin(a.Identity()), KindAdmin, converter.AdminToRecord(a))
}
