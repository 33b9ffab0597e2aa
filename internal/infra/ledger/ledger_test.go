//go:build unit

package ledger_test

import (
	"context"
	"testing"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra/ledger"
	"asset-factory/internal/infra/repository"
	"asset-factory/internal/infra/store"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/shared"
	"asset-factory/tests/common/builder"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerSuite struct {
	suite.Suite
	ctx      context.Context
	db       *badger.DB
	txn      *badger.Txn
	accounts *store.BadgerAccounts
	issuer   *authority.Issuer
	ledger   *ledger.Ledger

	alice authority.Wallet
	bob   authority.Wallet
	mint  address.Address
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	db, err := store.OpenBadger("", true)
	s.Require().NoError(err)
	s.db = db
	s.txn = db.NewTransaction(true)
	s.accounts = store.NewBadgerAccounts(s.txn)
	s.issuer = authority.NewIssuer()
	s.ledger = ledger.New(s.accounts, s.issuer)
	s.ctx = context.Background()

	s.alice = authority.NewWallet(builder.Addr("alice"))
	s.bob = authority.NewWallet(builder.Addr("bob"))
	s.mint = builder.Addr("mint")
}

func (s *LedgerSuite) TearDownTest() {
	s.txn.Discard()
	s.Require().NoError(s.db.Close())
}

func (s *LedgerSuite) balance(addr address.Address) uint64 {
	b, err := s.ledger.Balance(s.ctx, addr)
	s.Require().NoError(err)
	return b
}

func (s *LedgerSuite) tokens(owner address.Address) uint64 {
	b, err := s.ledger.TokenBalance(s.ctx, owner, s.mint)
	s.Require().NoError(err)
	return b
}

// programMint creates a mint whose authorities all sit with the program, paid by alice.
func (s *LedgerSuite) programMint() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, s.alice.Address(), 1_000))
	s.Require().NoError(s.ledger.CreateMint(s.ctx, s.alice, shared.MintSpec{
		Address:           s.mint,
		Payer:             s.alice.Address(),
		MintAuthority:     address.Authority(),
		FreezeAuthority:   address.Authority(),
		CloseAuthority:    address.Authority(),
		PermanentDelegate: address.Authority(),
		Metadata:          shared.TokenMetadata{Name: "Genesis", Symbol: "GEN"},
	}))
	_, err := s.ledger.CreateTokenAccount(s.ctx, s.alice, s.bob.Address(), s.mint)
	s.Require().NoError(err)
}

func (s *LedgerSuite) TestTransfer() {
	s.Require().NoError(s.ledger.Deposit(s.ctx, s.alice.Address(), 500))

	s.Run("moves lamports", func() {
		s.Require().NoError(s.ledger.Transfer(s.ctx, s.alice, s.bob.Address(), 200))
		s.Equal(uint64(300), s.balance(s.alice.Address()))
		s.Equal(uint64(200), s.balance(s.bob.Address()))
	})

	s.Run("insufficient funds", func() {
		err := s.ledger.Transfer(s.ctx, s.alice, s.bob.Address(), 301)
		s.ErrorIs(err, errs.ErrInsufficientFunds)
		s.Equal(uint64(300), s.balance(s.alice.Address()))
	})

	s.Run("empty source", func() {
		err := s.ledger.Transfer(s.ctx, authority.NewWallet(builder.Addr("nobody")), s.bob.Address(), 1)
		s.ErrorIs(err, errs.ErrInsufficientFunds)
	})

	s.Run("zero amount is a no-op", func() {
		s.NoError(s.ledger.Transfer(s.ctx, authority.NewWallet(builder.Addr("nobody")), s.bob.Address(), 0))
	})

	s.Run("wallet cannot spend as the program", func() {
		s.Require().NoError(s.ledger.Deposit(s.ctx, address.Authority(), 50))
		err := s.ledger.Transfer(s.ctx, authority.NewWallet(address.Authority()), s.bob.Address(), 10)
		s.ErrorIs(err, errs.ErrAuthorityMismatch)
		s.Equal(uint64(50), s.balance(address.Authority()))
	})

	s.Run("unknown accounts read as zero", func() {
		s.Zero(s.balance(builder.Addr("ghost")))
		b, err := s.ledger.TokenBalance(s.ctx, builder.Addr("ghost"), s.mint)
		s.Require().NoError(err)
		s.Zero(b)
	})
}

func (s *LedgerSuite) TestCreateMint() {
	s.programMint()

	s.Run("metadata round trips", func() {
		info, err := s.ledger.MintInfo(s.ctx, s.mint)
		s.Require().NoError(err)
		want := &shared.MintInfo{
			Address:           s.mint,
			Payer:             s.alice.Address(),
			MintAuthority:     address.Authority(),
			FreezeAuthority:   address.Authority(),
			CloseAuthority:    address.Authority(),
			PermanentDelegate: address.Authority(),
			Metadata:          shared.TokenMetadata{Name: "Genesis", Symbol: "GEN"},
		}
		if diff := cmp.Diff(want, info); diff != "" {
			s.T().Errorf("mint info mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("duplicate mint", func() {
		err := s.ledger.CreateMint(s.ctx, s.alice, shared.MintSpec{Address: s.mint, Payer: s.alice.Address()})
		s.ErrorIs(err, errs.ErrAccountExists)
	})

	s.Run("payer must sign", func() {
		err := s.ledger.CreateMint(s.ctx, s.bob, shared.MintSpec{Address: builder.Addr("m2"), Payer: s.alice.Address()})
		s.ErrorIs(err, errs.ErrAuthorityMismatch)
	})

	s.Run("token account creation is idempotent", func() {
		addr, err := s.ledger.CreateTokenAccount(s.ctx, s.alice, s.bob.Address(), s.mint)
		s.Require().NoError(err)
		s.Equal(address.TokenAccount(s.bob.Address(), s.mint), addr)
	})

	s.Run("token account for unknown mint", func() {
		_, err := s.ledger.CreateTokenAccount(s.ctx, s.alice, s.bob.Address(), builder.Addr("nope"))
		s.ErrorIs(err, errs.ErrAccountMissing)
	})
}

func (s *LedgerSuite) TestMintAndBurn() {
	s.programMint()
	program := s.issuer.Capability()

	s.Run("only the program capability mints", func() {
		s.ErrorIs(s.ledger.MintTo(s.ctx, s.alice, s.mint, s.bob.Address(), 1), errs.ErrAuthorityMismatch)
		s.ErrorIs(s.ledger.MintTo(s.ctx, authority.NewIssuer().Capability(), s.mint, s.bob.Address(), 1), errs.ErrAuthorityMismatch)
		s.ErrorIs(s.ledger.MintTo(s.ctx, authority.NewWallet(address.Authority()), s.mint, s.bob.Address(), 1), errs.ErrAuthorityMismatch)
		s.Require().NoError(s.ledger.MintTo(s.ctx, program, s.mint, s.bob.Address(), 2))
		s.Equal(uint64(2), s.tokens(s.bob.Address()))
	})

	s.Run("minting into a missing token account", func() {
		err := s.ledger.MintTo(s.ctx, program, s.mint, builder.Addr("carol"), 1)
		s.ErrorIs(err, errs.ErrAccountMissing)
	})

	s.Run("holder burns their own token", func() {
		s.Require().NoError(s.ledger.Burn(s.ctx, s.bob, s.mint, s.bob.Address(), 1))
		s.Equal(uint64(1), s.tokens(s.bob.Address()))
	})

	s.Run("stranger cannot burn", func() {
		s.ErrorIs(s.ledger.Burn(s.ctx, s.alice, s.mint, s.bob.Address(), 1), errs.ErrAuthorityMismatch)
	})

	s.Run("permanent delegate burns", func() {
		s.Require().NoError(s.ledger.Burn(s.ctx, program, s.mint, s.bob.Address(), 1))
		s.Zero(s.tokens(s.bob.Address()))
		info, err := s.ledger.MintInfo(s.ctx, s.mint)
		s.Require().NoError(err)
		s.Zero(info.Supply)
	})

	s.Run("burning more than held", func() {
		s.ErrorIs(s.ledger.Burn(s.ctx, program, s.mint, s.bob.Address(), 1), errs.ErrInsufficientTokens)
	})

	s.Run("revoked mint authority is final", func() {
		s.Require().NoError(s.ledger.SetMintAuthority(s.ctx, program, s.mint, address.Zero))
		s.ErrorIs(s.ledger.MintTo(s.ctx, program, s.mint, s.bob.Address(), 1), errs.ErrAuthorityRevoked)
		s.ErrorIs(s.ledger.SetMintAuthority(s.ctx, program, s.mint, address.Authority()), errs.ErrAuthorityRevoked)
	})
}

func (s *LedgerSuite) TestCloseRecord() {
	record := builder.Addr("reservation")
	s.Require().NoError(s.accounts.Put(s.ctx, &repository.Account{Address: record, Kind: repository.KindReservation, Lamports: 77}))
	s.Require().NoError(s.ledger.Deposit(s.ctx, s.bob.Address(), 5))

	s.Run("foreign capability is refused", func() {
		_, err := s.ledger.CloseRecord(s.ctx, authority.NewIssuer().Capability(), record, s.alice.Address())
		s.ErrorIs(err, errs.ErrAuthorityMismatch)
	})

	s.Run("wallet accounts are not program owned", func() {
		_, err := s.ledger.CloseRecord(s.ctx, s.issuer.Capability(), s.bob.Address(), s.alice.Address())
		s.ErrorIs(err, errs.ErrAuthorityMismatch)
		s.Equal(uint64(5), s.balance(s.bob.Address()))
	})

	s.Run("drains into dest and deletes", func() {
		drained, err := s.ledger.CloseRecord(s.ctx, s.issuer.Capability(), record, s.alice.Address())
		s.Require().NoError(err)
		s.Equal(uint64(77), drained)
		s.Equal(uint64(77), s.balance(s.alice.Address()))

		acc, err := s.accounts.Get(s.ctx, record)
		s.Require().NoError(err)
		s.Nil(acc)
	})

	s.Run("closing twice", func() {
		_, err := s.ledger.CloseRecord(s.ctx, s.issuer.Capability(), record, s.alice.Address())
		s.ErrorIs(err, errs.ErrAccountMissing)
	})
}

func TestLedger_CommitsWithTransaction(t *testing.T) {
	db, err := store.OpenBadger("", true)
	require.NoError(t, err)
	defer db.Close()

	alice := builder.Addr("alice")
	err = db.Update(func(txn *badger.Txn) error {
		return ledger.New(store.NewBadgerAccounts(txn), authority.NewIssuer()).Deposit(context.Background(), alice, 9)
	})
	require.NoError(t, err)

	_ = db.Update(func(txn *badger.Txn) error {
		l := ledger.New(store.NewBadgerAccounts(txn), authority.NewIssuer())
		require.NoError(t, l.Deposit(context.Background(), alice, 1))
		return errs.ErrSoldOut
	})

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		b, err := ledger.New(store.NewBadgerAccounts(txn), authority.NewIssuer()).Balance(context.Background(), alice)
		require.NoError(t, err)
		require.Equal(t, uint64(9), b)
		return nil
	}))
}
