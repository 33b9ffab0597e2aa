package repository

import (
	"context"

	"asset-factory/internal/domain/protocol"
	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

type ProtocolRepository struct {
	store recordStore
}

func NewProtocolRepository(q AccountQueries) *ProtocolRepository {
	return &ProtocolRepository{store: recordStore{q: q}}
}

func (r *ProtocolRepository) Get(ctx context.Context) (*protocol.Protocol, error) {
	var rec converter.ProtocolRecord
	if _, err := r.store.load(ctx, address.Protocol(), KindProtocol, &rec); err != nil {
		return nil, err
	}
	return converter.ProtocolFromRecord(rec), nil
}

func (r *ProtocolRepository) Create(ctx context.Context, p *protocol.Protocol) error {
	return r.store.create(ctx, address.Protocol(), KindProtocol, converter.ProtocolToRecord(p))
}

func (r *ProtocolRepository) Save(ctx context.Context, p *protocol.Protocol) error {
	return r.store.save(ctx, address.Protocol(), KindProtocol, converter.ProtocolToRecord(p))
}
