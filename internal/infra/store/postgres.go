package store

import (
	"context"
	"errors"
	"math"

	"asset-factory/internal/infra/repository"
	"asset-factory/internal/pkg/address"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrLamportsOverflow = errors.New("lamports exceed the postgres bigint range")

// DBTX is satisfied by pgx.Tx and *pgxpool.Pool.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectAccount = `SELECT kind, lamports, data FROM accounts WHERE address = $1`
	upsertAccount = `INSERT INTO accounts (address, kind, lamports, data, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (address) DO UPDATE SET kind = EXCLUDED.kind, lamports = EXCLUDED.lamports, data = EXCLUDED.data, updated_at = now()`
	deleteAccount = `DELETE FROM accounts WHERE address = $1`
)

type PostgresAccounts struct {
	db DBTX
}

func NewPostgresAccounts(db DBTX) *PostgresAccounts {
	return &PostgresAccounts{db: db}
}

func (s *PostgresAccounts) Get(ctx context.Context, addr address.Address) (*repository.Account, error) {
	var (
		kind     string
		lamports int64
		data     []byte
	)
	err := s.db.QueryRow(ctx, selectAccount, addr[:]).Scan(&kind, &lamports, &data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &repository.Account{
		Address:  addr,
		Kind:     repository.AccountKind(kind),
		Lamports: uint64(lamports), // #nosec G115 -- column is CHECK (lamports >= 0)
		Data:     data,
	}, nil
}

func (s *PostgresAccounts) Put(ctx context.Context, acc *repository.Account) error {
	if acc.Lamports > math.MaxInt64 {
		return ErrLamportsOverflow
	}
	_, err := s.db.Exec(ctx, upsertAccount, acc.Address[:], string(acc.Kind), int64(acc.Lamports), acc.Data)
	return err
}

func (s *PostgresAccounts) Delete(ctx context.Context, addr address.Address) error {
	_, err := s.db.Exec(ctx, deleteAccount, addr[:])
	return err
}
