package uow

import (
	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra/ledger"
	"asset-factory/internal/infra/repository"
	"asset-factory/internal/usecase/shared"
)

// accountTx binds every repository to one backend transaction.
type accountTx struct {
	q      repository.AccountQueries
	issuer *authority.Issuer

	// Lazy-initialized repositories
	protocolRepo    shared.ProtocolRepository
	adminRepo       shared.AdminRepository
	collectionRepo  shared.CollectionRepository
	reservationRepo shared.ReservationRepository
	assetRepo       shared.AssetRepository
	grantNonceRepo  shared.GrantNonceRepository
	tokenLedger     shared.TokenLedger
}

func newAccountTx(q repository.AccountQueries, issuer *authority.Issuer) *accountTx {
	return &accountTx{q: q, issuer: issuer}
}

func (t *accountTx) Protocol() shared.ProtocolRepository {
	if t.protocolRepo == nil {
		t.protocolRepo = repository.NewProtocolRepository(t.q)
	}
	return t.protocolRepo
}

func (t *accountTx) Admins() shared.AdminRepository {
	if t.adminRepo == nil {
		t.adminRepo = repository.NewAdminRepository(t.q)
	}
	return t.adminRepo
}

func (t *accountTx) Collections() shared.CollectionRepository {
	if t.collectionRepo == nil {
		t.collectionRepo = repository.NewCollectionRepository(t.q)
	}
	return t.collectionRepo
}

func (t *accountTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q)
	}
	return t.reservationRepo
}

func (t *accountTx) Assets() shared.AssetRepository {
	if t.assetRepo == nil {
		t.assetRepo = repository.NewAssetRepository(t.q)
	}
	return t.assetRepo
}

func (t *accountTx) GrantNonces() shared.GrantNonceRepository {
	if t.grantNonceRepo == nil {
		t.grantNonceRepo = repository.NewGrantNonceRepository(t.q)
	}
	return t.grantNonceRepo
}

func (t *accountTx) Ledger() shared.TokenLedger {
	if t.tokenLedger == nil {
		t.tokenLedger = ledger.New(t.q, t.issuer)
	}
	return t.tokenLedger
}
