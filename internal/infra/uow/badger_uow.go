package uow

import (
	"context"
	"errors"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra/store"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"

	"github.com/dgraph-io/badger/v4"
)

type BadgerUoW struct {
	db         *badger.DB
	issuer     *authority.Issuer
	maxRetries int
}

func NewBadgerUoW(db *badger.DB, issuer *authority.Issuer, maxRetries int) shared.UnitOfWork {
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	return &BadgerUoW{
		db:         db,
		issuer:     issuer,
		maxRetries: maxRetries,
	}
}

func (u *BadgerUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return retryLoop(ctx, "badger", u.maxRetries, isBadgerConflict, func() error {
		txn := u.db.NewTransaction(true)
		defer txn.Discard()

		if err := fn(ctx, newAccountTx(store.NewBadgerAccounts(txn), u.issuer)); err != nil {
			return err
		}
		if err := txn.Commit(); err != nil {
			if isBadgerConflict(err) {
				return err
			}
			return errs.Mark(err, errTransactionCommit)
		}
		return nil
	})
}

// WithinReadOnly runs fn on a snapshot. Writes fail with badger.ErrReadOnlyTxn.
func (u *BadgerUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.db.View(func(txn *badger.Txn) error {
		return fn(ctx, newAccountTx(store.NewBadgerAccounts(txn), u.issuer))
	})
}

func isBadgerConflict(err error) bool {
	return errors.Is(err, badger.ErrConflict)
}
