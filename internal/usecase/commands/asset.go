package commands

import (
	"context"

	"asset-factory/internal/domain/asset"
	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

type CreateAssetInput struct {
	Owner      address.Address
	ID         uint64
	Name       string
	URI        string
	Attributes []asset.Attribute
}

//go:generate mockgen -source=asset.go -destination=../../../tests/mock/commands/asset.go -package=commandsmock

type AssetCommands interface {
	CreateAsset(ctx context.Context, caller address.Address, in CreateAssetInput) error
	FinalizeAsset(ctx context.Context, caller, owner address.Address, id uint64, buyer address.Address) error
}

type assetCommandsImpl struct {
	exec   *shared.Executor
	guards guards
}

func NewAssetCommands(exec *shared.Executor, params Params) AssetCommands {
	return &assetCommandsImpl{
		exec:   exec,
		guards: guards{params: params},
	}
}

// CreateAsset prepares the final asset paired with a still-reserved slot.
func (c *assetCommandsImpl) CreateAsset(ctx context.Context, caller address.Address, in CreateAssetInput) error {
	return c.exec.Execute(ctx, OpCreateAsset, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		if err := c.guards.requireAdmin(ctx, tx, u, errs.ErrUnauthorizedAdmin); err != nil {
			return err
		}
		col, err := loadCollection(ctx, tx, in.Owner)
		if err != nil {
			return err
		}
		res, err := loadReservation(ctx, tx, col, in.ID)
		if err != nil {
			return err
		}
		if err := res.EnsureReserved(); err != nil {
			return err
		}

		a, err := asset.NewAsset(col, in.ID, in.Name, in.URI, in.Attributes, u.Now)
		if err != nil {
			return errs.RejectCause(errs.ErrInvalidArgument, err)
		}
		if err := tx.Assets().Create(ctx, a); err != nil {
			return mapRepoErr(err, "asset")
		}

		additional := make([][2]string, 0, len(in.Attributes))
		for _, at := range a.Attributes() {
			additional = append(additional, [2]string{at.Key, at.Value})
		}
		program := u.Program.Address()
		return tx.Ledger().CreateMint(ctx, u.Signer(), shared.MintSpec{
			Address:        a.Mint(),
			Payer:          u.Caller,
			MintAuthority:  program,
			CloseAuthority: program,
			Metadata: shared.TokenMetadata{
				Name:       a.Name(),
				Symbol:     col.Symbol(),
				URI:        a.URI(),
				Additional: additional,
			},
		})
	})
}

// FinalizeAsset swaps the buyer's settled reservation unit for the final asset.
func (c *assetCommandsImpl) FinalizeAsset(ctx context.Context, caller, owner address.Address, id uint64, buyer address.Address) error {
	return c.exec.Execute(ctx, OpFinalizeAsset, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		if u.Caller != buyer {
			if err := c.guards.requireAdmin(ctx, tx, u, errs.ErrUnauthorizedAdmin); err != nil {
				return err
			}
		}
		col, err := loadCollection(ctx, tx, owner)
		if err != nil {
			return err
		}
		colAddr := address.Collection(col.Owner())

		a, err := tx.Assets().Get(ctx, colAddr, id)
		if err != nil {
			return mapRepoErr(err, "asset")
		}
		if err := a.EnsureReserved(); err != nil {
			return err
		}
		res, err := loadReservation(ctx, tx, col, id)
		if err != nil {
			return err
		}
		if err := ensureSettledTo(ctx, tx, res, buyer); err != nil {
			return err
		}

		info, err := tx.Ledger().MintInfo(ctx, a.Mint())
		if err != nil {
			return err
		}
		if info.Supply != 0 {
			return errs.Reject(errs.ErrAlreadySettled, "asset mint %s has supply %d", a.Mint(), info.Supply)
		}
		if _, err := settleOne(ctx, tx, u, a.Mint(), buyer); err != nil {
			return err
		}
		if err := tx.Ledger().Burn(ctx, u.Program, res.Mint(), buyer, 1); err != nil {
			return err
		}

		if err := res.Complete(buyer, u.Now); err != nil {
			return err
		}
		if err := a.Complete(buyer, u.Now); err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}
		return tx.Assets().Save(ctx, a)
	})
}

// ensureSettledTo requires a Reserved record whose mint is closed at supply one
// and whose single unit sits with buyer.
func ensureSettledTo(ctx context.Context, tx shared.Tx, res *reservation.Reservation, buyer address.Address) error {
	if res.IsCompleted() {
		return errs.Reject(errs.ErrNotSettled, "reservation %d is completed", res.ID())
	}
	info, err := tx.Ledger().MintInfo(ctx, res.Mint())
	if err != nil {
		return err
	}
	if info.Supply != 1 || !info.Revoked() {
		return errs.Reject(errs.ErrNotSettled, "reservation mint %s supply %d", res.Mint(), info.Supply)
	}
	balance, err := tx.Ledger().TokenBalance(ctx, buyer, res.Mint())
	if err != nil {
		return err
	}
	if balance != 1 {
		return errs.Reject(errs.ErrNotSettled, "buyer %s holds %d reservation units", buyer, balance)
	}
	return nil
}
