package commands

import (
	"context"

	"asset-factory/internal/domain/protocol"
	"asset-factory/internal/infra"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

//go:generate mockgen -source=protocol.go -destination=../../../tests/mock/commands/protocol.go -package=commandsmock

type ProtocolCommands interface {
	InitProtocol(ctx context.Context, caller address.Address) error
	SetLock(ctx context.Context, caller address.Address, locked bool) error
	Faucet(ctx context.Context, to address.Address, lamports uint64) error
}

type protocolCommandsImpl struct {
	exec   *shared.Executor
	guards guards
}

func NewProtocolCommands(exec *shared.Executor, params Params) ProtocolCommands {
	return &protocolCommandsImpl{
		exec:   exec,
		guards: guards{params: params},
	}
}

func (c *protocolCommandsImpl) InitProtocol(ctx context.Context, caller address.Address) error {
	return c.exec.Execute(ctx, OpInitProtocol, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if err := c.guards.requireRoot(u); err != nil {
			return err
		}
		if err := tx.Protocol().Create(ctx, protocol.NewProtocol()); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrAlreadyInitialized
			}
			return err
		}
		return nil
	})
}

// SetLock is the only mutation accepted while the protocol is locked.
func (c *protocolCommandsImpl) SetLock(ctx context.Context, caller address.Address, locked bool) error {
	return c.exec.Execute(ctx, OpSetLock, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if err := c.guards.requireRoot(u); err != nil {
			return err
		}
		p, err := tx.Protocol().Get(ctx)
		if err != nil {
			return mapRepoErr(err, "protocol is not initialized")
		}
		p.SetLocked(locked)
		return tx.Protocol().Save(ctx, p)
	})
}

// Faucet credits native balance out of thin air. Only routed in debug mode.
func (c *protocolCommandsImpl) Faucet(ctx context.Context, to address.Address, lamports uint64) error {
	return c.exec.Execute(ctx, OpFaucet, to, func(ctx context.Context, tx shared.Tx, _ *shared.Unit) error {
		if to.IsZero() {
			return errs.Reject(errs.ErrInvalidArgument, "faucet target is empty")
		}
		return tx.Ledger().Deposit(ctx, to, lamports)
	})
}
