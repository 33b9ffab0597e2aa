package commands

import (
	"context"
	"time"

	"asset-factory/internal/domain/collection"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

type CreateCollectionInput struct {
	Name      string
	Symbol    string
	Reference string
	// Price in whole currency units, e.g. "0.3".
	Price     string
	SaleStart time.Time
	SaleEnd   time.Time
	MaxSupply uint64
	AllowList []address.Address
}

//go:generate mockgen -source=collection.go -destination=../../../tests/mock/commands/collection.go -package=commandsmock

type CollectionCommands interface {
	CreateCollection(ctx context.Context, owner address.Address, in CreateCollectionInput) error
	CloseCollection(ctx context.Context, caller, owner address.Address) error
}

type collectionCommandsImpl struct {
	exec   *shared.Executor
	guards guards
}

func NewCollectionCommands(exec *shared.Executor, params Params) CollectionCommands {
	return &collectionCommandsImpl{
		exec:   exec,
		guards: guards{params: params},
	}
}

// CreateCollection registers the caller's single collection.
func (c *collectionCommandsImpl) CreateCollection(ctx context.Context, owner address.Address, in CreateCollectionInput) error {
	return c.exec.Execute(ctx, OpCreateCollection, owner, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}

		price, err := amount.ToLamports(in.Price)
		if err != nil {
			return errs.RejectCause(errs.ErrInvalidArgument, err)
		}
		col, err := collection.NewCollection(collection.Params{
			Owner:     u.Caller,
			Name:      in.Name,
			Symbol:    in.Symbol,
			Reference: in.Reference,
			Price:     price,
			SaleStart: in.SaleStart,
			SaleEnd:   in.SaleEnd,
			MaxSupply: in.MaxSupply,
			AllowList: in.AllowList,
		})
		if err != nil {
			return errs.RejectCause(errs.ErrInvalidArgument, err)
		}
		if err := tx.Collections().Create(ctx, col); err != nil {
			return mapRepoErr(err, "collection of "+owner.String())
		}
		return nil
	})
}

// CloseCollection ends the sale now and caps supply at what was sold. It cannot be undone.
func (c *collectionCommandsImpl) CloseCollection(ctx context.Context, caller, owner address.Address) error {
	return c.exec.Execute(ctx, OpCloseCollection, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		if err := c.guards.requireAdmin(ctx, tx, u, errs.ErrUnauthorizedAdmin); err != nil {
			return err
		}
		col, err := loadCollection(ctx, tx, owner)
		if err != nil {
			return err
		}
		col.Close(u.Now)
		return tx.Collections().Save(ctx, col)
	})
}
