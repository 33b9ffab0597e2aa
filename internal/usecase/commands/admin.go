package commands

import (
	"context"

	"asset-factory/internal/domain/admin"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

type AdminCommands interface {
	CreateAdmin(ctx context.Context, caller, identity address.Address, username string) error
	RemoveAdmin(ctx context.Context, caller, identity address.Address) (uint64, error)
}

type adminCommandsImpl struct {
	exec   *shared.Executor
	params Params
	guards guards
}

func NewAdminCommands(exec *shared.Executor, params Params) AdminCommands {
	return &adminCommandsImpl{
		exec:   exec,
		params: params,
		guards: guards{params: params},
	}
}

// CreateAdmin charges the caller the admin deposit, held on the new record.
func (c *adminCommandsImpl) CreateAdmin(ctx context.Context, caller, identity address.Address, username string) error {
	return c.exec.Execute(ctx, OpCreateAdmin, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		if err := c.guards.requireAdmin(ctx, tx, u, errs.ErrUnauthorized); err != nil {
			return err
		}

		a, err := admin.NewAdmin(identity, username, u.Now, c.params.AdminDeposit)
		if err != nil {
			return errs.RejectCause(errs.ErrInvalidArgument, err)
		}
		if err := tx.Admins().Create(ctx, a); err != nil {
			return mapRepoErr(err, "admin "+identity.String())
		}
		return tx.Ledger().Transfer(ctx, u.Signer(), address.Admin(identity), c.params.AdminDeposit)
	})
}

// RemoveAdmin closes the record and refunds everything it holds to the root authority.
func (c *adminCommandsImpl) RemoveAdmin(ctx context.Context, caller, identity address.Address) (uint64, error) {
	var refund uint64
	err := c.exec.Execute(ctx, OpRemoveAdmin, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		if err := c.guards.requireRoot(u); err != nil {
			return err
		}
		if _, err := tx.Admins().Get(ctx, identity); err != nil {
			return mapRepoErr(err, "admin "+identity.String())
		}

		var err error
		refund, err = tx.Ledger().CloseRecord(ctx, u.Program, address.Admin(identity), c.params.RootAuthority)
		return err
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}
