package shared

import (
	"context"
	"log/slog"
	"time"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/clock"
	"asset-factory/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/sasha-s/go-deadlock"
)

type Recorder interface {
	ObserveUnit(op, outcome, code string, elapsed time.Duration)
	ObserveSettlement(path string, ownerNet, protocolFee uint64)
}

const (
	outcomeCommitted = "committed"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

// Unit is the context of one execution unit. Now is read once and reused for
// every time comparison, including across storage retries.
type Unit struct {
	ID      uuid.UUID
	Op      string
	Caller  address.Address
	Now     time.Time
	Program authority.Program

	onCommit []func()
}

// Signer is the caller's wallet, authenticated by the transport.
func (u *Unit) Signer() authority.Signer {
	return authority.NewWallet(u.Caller)
}

// OnCommit defers f until the unit has committed. Rolled back units never run it.
func (u *Unit) OnCommit(f func()) {
	u.onCommit = append(u.onCommit, f)
}

// Executor applies execution units one at a time.
type Executor struct {
	uow      UnitOfWork
	clock    clock.Clock
	issuer   *authority.Issuer
	recorder Recorder
	mu       deadlock.Mutex
}

func NewExecutor(uow UnitOfWork, clk clock.Clock, issuer *authority.Issuer, recorder Recorder) *Executor {
	return &Executor{
		uow:      uow,
		clock:    clk,
		issuer:   issuer,
		recorder: recorder,
	}
}

func (e *Executor) Execute(ctx context.Context, op string, caller address.Address, fn func(ctx context.Context, tx Tx, u *Unit) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	e.mu.Lock()
	defer e.mu.Unlock()

	unit := &Unit{
		ID:      uuid.New(),
		Op:      op,
		Caller:  caller,
		Now:     clock.Freeze(e.clock).Now(),
		Program: e.issuer.Capability(),
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		unit.onCommit = unit.onCommit[:0]
		return fn(ctx, tx, unit)
	})
	elapsed := time.Since(start)

	logArgs := []any{
		slog.String("op", op),
		slog.String("execution_id", unit.ID.String()),
		slog.String("caller", caller.String()),
		slog.Duration("elapsed", elapsed),
	}

	if err == nil {
		for _, f := range unit.onCommit {
			f()
		}
		e.recorder.ObserveUnit(op, outcomeCommitted, "", elapsed)
		slog.Info("execution unit committed", logArgs...)
		return nil
	}

	if code, ok := errs.CodeOf(err); ok {
		e.recorder.ObserveUnit(op, outcomeRejected, code.Code, elapsed)
		slog.Warn("execution unit rejected", append(logArgs,
			slog.String("code", code.Code),
			slog.String("error", err.Error()))...)
		return err
	}

	e.recorder.ObserveUnit(op, outcomeFailed, "", elapsed)
	slog.Error("execution unit failed", append(logArgs,
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 8)))...)
	return err
}

// Read runs fn on a consistent snapshot without taking the sequencer.
func (e *Executor) Read(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return e.uow.WithinReadOnly(ctx, fn)
}

// Now is the current time as an execution unit would see it.
func (e *Executor) Now() time.Time {
	return clock.Freeze(e.clock).Now()
}
