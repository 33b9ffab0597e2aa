package commands

import (
	"context"

	"asset-factory/internal/domain/collection"
	"asset-factory/internal/domain/protocol"
	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/infra"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

// Operation names used for logging and metrics.
const (
	OpInitProtocol        = "init_protocol"
	OpSetLock             = "set_lock"
	OpCreateAdmin         = "create_admin"
	OpRemoveAdmin         = "remove_admin"
	OpCreateCollection    = "create_collection"
	OpCloseCollection     = "close_collection"
	OpCreateReservation   = "create_reservation"
	OpPurchaseReservation = "purchase_reservation"
	OpPurchaseDelegated   = "purchase_reservation_delegated"
	OpCreateAsset         = "create_asset"
	OpFinalizeAsset       = "finalize_asset"
	OpFaucet              = "faucet"
)

const (
	settlementPathDirect    = "direct"
	settlementPathDelegated = "delegated"
)

type guards struct {
	params Params
}

func (g guards) requireRoot(u *shared.Unit) error {
	if u.Caller != g.params.RootAuthority {
		return errs.Reject(errs.ErrUnauthorized, "%s is not the root authority", u.Caller)
	}
	return nil
}

// requireAdmin passes the root authority and any admin past its activation cooldown.
// denied is the code returned to everyone else.
func (g guards) requireAdmin(ctx context.Context, tx shared.Tx, u *shared.Unit, denied *errs.ProgramError) error {
	if u.Caller == g.params.RootAuthority {
		return nil
	}
	a, err := tx.Admins().Get(ctx, u.Caller)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Reject(denied, "%s is not an admin", u.Caller)
		}
		return err
	}
	if !a.ActiveAt(u.Now, g.params.AdminActivationCooldown) {
		return errs.Reject(denied, "admin %s is still in its activation cooldown", u.Caller)
	}
	return nil
}

func loadUnlocked(ctx context.Context, tx shared.Tx) (*protocol.Protocol, error) {
	p, err := tx.Protocol().Get(ctx)
	if err != nil {
		return nil, mapRepoErr(err, "protocol is not initialized")
	}
	if err := p.EnsureUnlocked(); err != nil {
		return nil, err
	}
	return p, nil
}

func loadCollection(ctx context.Context, tx shared.Tx, owner address.Address) (*collection.Collection, error) {
	col, err := tx.Collections().Get(ctx, owner)
	if err != nil {
		return nil, mapRepoErr(err, "collection of "+owner.String())
	}
	return col, nil
}

func loadReservation(ctx context.Context, tx shared.Tx, col *collection.Collection, id uint64) (*reservation.Reservation, error) {
	res, err := tx.Reservations().Get(ctx, address.Collection(col.Owner()), id)
	if err != nil {
		return nil, mapRepoErr(err, "reservation")
	}
	return res, nil
}

// mapRepoErr turns expected repository kinds into program errors and passes
// storage failures through untouched.
func mapRepoErr(err error, what string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Reject(errs.ErrNotFound, "%s", what)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Reject(errs.ErrAlreadyExists, "%s", what)
	default:
		return err
	}
}
