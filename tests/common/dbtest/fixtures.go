//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"asset-factory/internal/pkg/address"

	"github.com/stretchr/testify/require"
)

// ResetDB empties the account table between subtests.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := db.Exec(ctx, "TRUNCATE accounts")
	return err
}

func CountAccounts(t *testing.T, db DBLike, kind string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM accounts WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// Lamports reads a balance straight from the table. Missing rows read as zero.
func Lamports(t *testing.T, db DBLike, addr address.Address) uint64 {
	t.Helper()
	var n int64
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT lamports FROM accounts WHERE address = $1), 0)", addr.Bytes()).Scan(&n)
	require.NoError(t, err)
	return uint64(n)
}

// FundWallet credits a plain wallet row, creating it when absent.
func FundWallet(t *testing.T, db DBLike, addr address.Address, lamports uint64) {
	t.Helper()
	_, err := db.Exec(context.Background(), `INSERT INTO accounts (address, kind, lamports)
VALUES ($1, 'wallet', $2)
ON CONFLICT (address) DO UPDATE SET lamports = accounts.lamports + EXCLUDED.lamports, updated_at = now()`,
		addr.Bytes(), int64(lamports)) // #nosec G115 -- test amounts stay far below MaxInt64
	require.NoError(t, err)
}
