//go:build unit || e2e

// Package programtest runs the program against an in-memory badger store.
package programtest

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra/store"
	"asset-factory/internal/infra/uow"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
	"asset-factory/internal/pkg/clock"
	"asset-factory/internal/usecase/commands"
	"asset-factory/internal/usecase/queries"
	"asset-factory/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// Epoch is the harness clock's starting point.
var Epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type Wallet struct {
	Address address.Address
	Key     ed25519.PrivateKey
}

func NewWallet(t *testing.T) Wallet {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return Wallet{Address: address.FromPublicKey(pub), Key: priv}
}

type Harness struct {
	Clock    *clock.MockClock
	Params   commands.Params
	Exec     *shared.Executor
	Recorder *Recorder

	Protocol    commands.ProtocolCommands
	Admins      commands.AdminCommands
	Collections commands.CollectionCommands
	Reservation commands.ReservationCommands
	Settlement  commands.SettlementCommands
	Assets      commands.AssetCommands

	Queries queries.ProgramQueries
	Ledger  queries.LedgerQueries

	Root  Wallet
	Payer Wallet
}

// New builds a fresh program with default fees and no admin cooldown.
func New(t *testing.T, opts ...func(*commands.Params)) *Harness {
	t.Helper()

	db, err := store.OpenBadger("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	h := &Harness{
		Clock:    clock.NewMockClock(Epoch),
		Recorder: &Recorder{},
		Root:     NewWallet(t),
		Payer:    NewWallet(t),
	}
	h.Params = commands.Params{
		RootAuthority: h.Root.Address,
		ProtocolPayer: h.Payer.Address,
		ProtocolFee:   amount.MustLamports("0.1"),
		AirdropFee:    amount.MustLamports("0.075"),
		AdminDeposit:  amount.MustLamports("0.00103"),
		GrantMaxTTL:   24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&h.Params)
	}

	issuer := authority.NewIssuer()
	h.Exec = shared.NewExecutor(uow.NewBadgerUoW(db, issuer, 3), h.Clock, issuer, h.Recorder)

	h.Protocol = commands.NewProtocolCommands(h.Exec, h.Params)
	h.Admins = commands.NewAdminCommands(h.Exec, h.Params)
	h.Collections = commands.NewCollectionCommands(h.Exec, h.Params)
	h.Reservation = commands.NewReservationCommands(h.Exec, h.Params)
	h.Settlement = commands.NewSettlementCommands(h.Exec, h.Params, h.Recorder)
	h.Assets = commands.NewAssetCommands(h.Exec, h.Params)
	h.Queries = queries.NewProgramQueries(h.Exec)
	h.Ledger = queries.NewLedgerQueries(h.Exec)
	return h
}

// Fund credits units (e.g. "1.5") to addr.
func (h *Harness) Fund(t *testing.T, addr address.Address, units string) {
	t.Helper()
	require.NoError(t, h.Protocol.Faucet(context.Background(), addr, amount.MustLamports(units)))
}

func (h *Harness) Balance(t *testing.T, addr address.Address) uint64 {
	t.Helper()
	v, err := h.Ledger.Balance(context.Background(), addr)
	require.NoError(t, err)
	return v.Lamports
}

func (h *Harness) TokenBalance(t *testing.T, owner, mint address.Address) uint64 {
	t.Helper()
	v, err := h.Ledger.TokenBalance(context.Background(), owner, mint)
	require.NoError(t, err)
	return v.Amount
}

// Bootstrap initializes the protocol and registers one funded admin.
func (h *Harness) Bootstrap(t *testing.T) Wallet {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.Protocol.InitProtocol(ctx, h.Root.Address))

	admin := NewWallet(t)
	h.Fund(t, h.Root.Address, "1")
	require.NoError(t, h.Admins.CreateAdmin(ctx, h.Root.Address, admin.Address, "ops"))
	return admin
}

// OpenCollection creates a collection for owner whose sale window contains the current clock.
func (h *Harness) OpenCollection(t *testing.T, owner address.Address, price string, maxSupply uint64) {
	t.Helper()
	now := h.Clock.Now()
	require.NoError(t, h.Collections.CreateCollection(context.Background(), owner, commands.CreateCollectionInput{
		Name:      "Genesis",
		Symbol:    "GEN",
		Reference: "ref-genesis",
		Price:     price,
		SaleStart: now.Add(-time.Hour),
		SaleEnd:   now.Add(24 * time.Hour),
		MaxSupply: maxSupply,
	}))
}
