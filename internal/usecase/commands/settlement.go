package commands

import (
	"context"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/domain/grant"
	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/infra"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

type SettlementResult struct {
	Reservation  address.Address
	Mint         address.Address
	Buyer        address.Address
	TokenAccount address.Address
	OwnerNet     uint64
	ProtocolFee  uint64
	TotalSupply  uint64
}

//go:generate mockgen -source=settlement.go -destination=../../../tests/mock/commands/settlement.go -package=commandsmock

type SettlementCommands interface {
	// Purchase settles a reservation to the caller, who pays the price.
	Purchase(ctx context.Context, caller, owner address.Address, id uint64) (*SettlementResult, error)
	// PurchaseDelegated settles a reservation to buyer on the strength of a grant
	// signed by the collection owner. The owner pays the airdrop fee.
	PurchaseDelegated(ctx context.Context, caller, owner address.Address, id uint64, buyer address.Address, g *grant.SignedGrant) (*SettlementResult, error)
}

type settlementCommandsImpl struct {
	exec     *shared.Executor
	params   Params
	guards   guards
	fees     reservation.FeeSchedule
	recorder shared.Recorder
}

func NewSettlementCommands(exec *shared.Executor, params Params, recorder shared.Recorder) SettlementCommands {
	return &settlementCommandsImpl{
		exec:     exec,
		params:   params,
		guards:   guards{params: params},
		fees:     reservation.NewFixedFeeSchedule(params.ProtocolFee),
		recorder: recorder,
	}
}

func (c *settlementCommandsImpl) Purchase(ctx context.Context, caller, owner address.Address, id uint64) (*SettlementResult, error) {
	var result *SettlementResult
	err := c.exec.Execute(ctx, OpPurchaseReservation, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		col, err := loadCollection(ctx, tx, owner)
		if err != nil {
			return err
		}
		buyer := u.Caller
		if err := col.EnsureSellable(buyer, u.Now); err != nil {
			return err
		}
		res, err := loadReservation(ctx, tx, col, id)
		if err != nil {
			return err
		}
		if err := ensureUnsettled(ctx, tx, res); err != nil {
			return err
		}

		legs := c.fees.Split(col.Price())
		payer := u.Signer()
		if err := tx.Ledger().Transfer(ctx, payer, c.params.ProtocolPayer, legs.ProtocolFee); err != nil {
			return err
		}
		if err := tx.Ledger().Transfer(ctx, payer, col.Owner(), legs.OwnerNet); err != nil {
			return err
		}

		tokenAccount, err := settleOne(ctx, tx, u, res.Mint(), buyer)
		if err != nil {
			return err
		}
		if err := col.RecordSale(); err != nil {
			return err
		}
		if err := tx.Collections().Save(ctx, col); err != nil {
			return err
		}

		u.OnCommit(func() {
			c.recorder.ObserveSettlement(settlementPathDirect, legs.OwnerNet, legs.ProtocolFee)
		})
		result = &SettlementResult{
			Reservation:  res.Address(),
			Mint:         res.Mint(),
			Buyer:        buyer,
			TokenAccount: tokenAccount,
			OwnerNet:     legs.OwnerNet,
			ProtocolFee:  legs.ProtocolFee,
			TotalSupply:  col.TotalSupply(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *settlementCommandsImpl) PurchaseDelegated(
	ctx context.Context,
	caller, owner address.Address,
	id uint64,
	buyer address.Address,
	g *grant.SignedGrant,
) (*SettlementResult, error) {
	var result *SettlementResult
	err := c.exec.Execute(ctx, OpPurchaseDelegated, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
		if _, err := loadUnlocked(ctx, tx); err != nil {
			return err
		}
		col, err := loadCollection(ctx, tx, owner)
		if err != nil {
			return err
		}
		if u.Caller != col.Owner() {
			if err := c.guards.requireAdmin(ctx, tx, u, errs.ErrUnauthorizedAdmin); err != nil {
				return err
			}
		}
		if err := c.checkGrant(g, address.Collection(col.Owner()), col.Owner(), id, buyer, u); err != nil {
			return err
		}

		if err := col.EnsureSellable(buyer, u.Now); err != nil {
			return err
		}
		res, err := loadReservation(ctx, tx, col, id)
		if err != nil {
			return err
		}
		if err := ensureUnsettled(ctx, tx, res); err != nil {
			return err
		}

		if err := tx.GrantNonces().Consume(ctx, g.Signer, g.Nonce, u.Now); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Reject(errs.ErrGrantReplayed, "nonce %d of %s", g.Nonce, g.Signer)
			}
			return err
		}

		// The verified grant carries the owner's signature for the fee leg.
		ownerSigner := authority.NewWallet(col.Owner())
		if err := tx.Ledger().Transfer(ctx, ownerSigner, c.params.ProtocolPayer, c.params.AirdropFee); err != nil {
			return err
		}

		tokenAccount, err := settleOne(ctx, tx, u, res.Mint(), buyer)
		if err != nil {
			return err
		}
		if err := col.RecordSale(); err != nil {
			return err
		}
		if err := tx.Collections().Save(ctx, col); err != nil {
			return err
		}

		u.OnCommit(func() {
			c.recorder.ObserveSettlement(settlementPathDelegated, 0, c.params.AirdropFee)
		})
		result = &SettlementResult{
			Reservation:  res.Address(),
			Mint:         res.Mint(),
			Buyer:        buyer,
			TokenAccount: tokenAccount,
			ProtocolFee:  c.params.AirdropFee,
			TotalSupply:  col.TotalSupply(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// checkGrant verifies the grant in a fixed order so each failure has one code.
func (c *settlementCommandsImpl) checkGrant(g *grant.SignedGrant, col, owner address.Address, id uint64, buyer address.Address, u *shared.Unit) error {
	if g == nil {
		return errs.Reject(errs.ErrInstructionsNotCorrect, "grant is missing")
	}
	if err := g.Verify(); err != nil {
		return errs.RejectCause(errs.ErrInstructionsNotCorrect, err)
	}
	if g.Signer != owner {
		return errs.Reject(errs.ErrUnauthorizedAdmin, "grant signed by %s, not the collection owner", g.Signer)
	}
	if g.Recipient != buyer {
		return errs.Reject(errs.ErrRecipientMismatch, "grant recipient %s, buyer %s", g.Recipient, buyer)
	}
	if !g.Binds(col, id) {
		return errs.Reject(errs.ErrInstructionsNotCorrect, "grant does not bind reservation %d", id)
	}
	if g.ExpiredAt(u.Now) {
		return errs.Reject(errs.ErrGrantExpired, "expired at %s", g.ExpiresAt.UTC())
	}
	if c.params.GrantMaxTTL > 0 && g.ExpiresAt.Sub(u.Now) > c.params.GrantMaxTTL {
		return errs.Reject(errs.ErrInstructionsNotCorrect, "grant lifetime exceeds %s", c.params.GrantMaxTTL)
	}
	return nil
}

// ensureUnsettled is the explicit state check in front of the ledger's own authority check.
func ensureUnsettled(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	if err := res.EnsureReserved(); err != nil {
		return err
	}
	info, err := tx.Ledger().MintInfo(ctx, res.Mint())
	if err != nil {
		return err
	}
	if info.Supply != 0 {
		return errs.Reject(errs.ErrAlreadySettled, "mint %s has supply %d", res.Mint(), info.Supply)
	}
	return nil
}

// settleOne mints exactly one unit of mint to buyer and revokes the mint authority.
func settleOne(ctx context.Context, tx shared.Tx, u *shared.Unit, mint, buyer address.Address) (address.Address, error) {
	ledger := tx.Ledger()
	tokenAccount, err := ledger.CreateTokenAccount(ctx, u.Signer(), buyer, mint)
	if err != nil {
		return address.Zero, err
	}
	if err := ledger.MintTo(ctx, u.Program, mint, buyer, 1); err != nil {
		return address.Zero, err
	}
	if err := ledger.SetMintAuthority(ctx, u.Program, mint, address.Zero); err != nil {
		return address.Zero, err
	}

	balance, err := ledger.TokenBalance(ctx, buyer, mint)
	if err != nil {
		return address.Zero, err
	}
	if balance != 1 {
		return address.Zero, errs.Reject(errs.ErrBalanceMismatch, "buyer %s holds %d of %s", buyer, balance, mint)
	}
	return tokenAccount, nil
}
