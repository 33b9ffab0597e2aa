package commands

import (
	"context"

	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/clock"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type ReservationCommands interface {
	CreateReservation(ctx context.Context, caller, owner address.Address, id uint64, displayURI string) error
}

type reservationCommandsImpl struct {
	exec   *shared.Executor
	guards guards
}

func NewReservationCommands(exec *shared.Executor, params Params) ReservationCommands {
	return &reservationCommandsImpl{
		exec:   exec,
		guards: guards{params: params},
	}
}

// CreateReservation writes the placeholder record and its single-supply mint.
// The program authority holds every authority on the mint.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, caller, owner address.Address, id uint64, displayURI string) error {
	return c.exec.Execute(ctx, OpCreateReservation, caller, func(ctx context.Context, tx shared.Tx, u *shared.Unit) error {
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

		res, err := reservation.NewFactory(clock.At(u.Now)).CreateReservation(col, id)
		if err != nil {
			if errs.Is(err, errs.ErrSoldOut) {
				return err
			}
			return errs.RejectCause(errs.ErrInvalidArgument, err)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return mapRepoErr(err, "reservation")
		}

		program := u.Program.Address()
		return tx.Ledger().CreateMint(ctx, u.Signer(), shared.MintSpec{
			Address:           res.Mint(),
			Payer:             u.Caller,
			MintAuthority:     program,
			FreezeAuthority:   program,
			CloseAuthority:    program,
			PermanentDelegate: program,
			Metadata: shared.TokenMetadata{
				Name:       reservation.PlaceholderName(res),
				Symbol:     col.Symbol(),
				URI:        displayURI,
				Additional: reservation.MetadataFields(res),
			},
		})
	})
}
