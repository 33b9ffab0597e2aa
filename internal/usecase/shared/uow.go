package shared

import (
	"context"
	"time"

	"asset-factory/internal/domain/admin"
	"asset-factory/internal/domain/asset"
	"asset-factory/internal/domain/collection"
	"asset-factory/internal/domain/protocol"
	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/pkg/address"
)

type UnitOfWork interface {
	// Within: all-or-nothing transaction for mutating units, retried on storage conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for read models
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Protocol() ProtocolRepository
	Admins() AdminRepository
	Collections() CollectionRepository
	Reservations() ReservationRepository
	Assets() AssetRepository
	GrantNonces() GrantNonceRepository
	Ledger() TokenLedger
}

type ProtocolRepository interface {
	Get(ctx context.Context) (*protocol.Protocol, error)
	Create(ctx context.Context, p *protocol.Protocol) error
	Save(ctx context.Context, p *protocol.Protocol) error
}

type AdminRepository interface {
	Get(ctx context.Context, identity address.Address) (*admin.Admin, error)
	Create(ctx context.Context, a *admin.Admin) error
}

type CollectionRepository interface {
	Get(ctx context.Context, owner address.Address) (*collection.Collection, error)
	Create(ctx context.Context, c *collection.Collection) error
	Save(ctx context.Context, c *collection.Collection) error
}

type ReservationRepository interface {
	Get(ctx context.Context, collection address.Address, id uint64) (*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	Save(ctx context.Context, res *reservation.Reservation) error
}

type AssetRepository interface {
	Get(ctx context.Context, collection address.Address, id uint64) (*asset.Asset, error)
	Create(ctx context.Context, a *asset.Asset) error
	Save(ctx context.Context, a *asset.Asset) error
}

type GrantNonceRepository interface {
	Consume(ctx context.Context, signer address.Address, nonce uint64, usedAt time.Time) error
}
