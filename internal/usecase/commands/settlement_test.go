//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"asset-factory/internal/domain/grant"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/commands"
	"asset-factory/tests/common/builder"
	"asset-factory/tests/common/programtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const displayURI = "https://example.com/placeholder.json"

type SettlementCommandsTestSuite struct {
	suite.Suite
	h     *programtest.Harness
	ctx   context.Context
	admin programtest.Wallet
	owner programtest.Wallet
	buyer programtest.Wallet
}

func (s *SettlementCommandsTestSuite) SetupTest() {
	s.h = programtest.New(s.T())
	s.ctx = context.Background()
	s.admin = s.h.Bootstrap(s.T())
	s.owner = programtest.NewWallet(s.T())
	s.buyer = programtest.NewWallet(s.T())

	s.h.OpenCollection(s.T(), s.owner.Address, "1", 2)
	s.reserve(s.owner.Address, 0)
	s.reserve(s.owner.Address, 1)
	s.h.Fund(s.T(), s.buyer.Address, "5")
}

func TestSettlementCommandsSuite(t *testing.T) {
	suite.Run(t, new(SettlementCommandsTestSuite))
}

func (s *SettlementCommandsTestSuite) reserve(owner address.Address, id uint64) {
	require.NoError(s.T(), s.h.Reservation.CreateReservation(s.ctx, s.admin.Address, owner, id, displayURI))
}

func (s *SettlementCommandsTestSuite) reservationMint(owner address.Address, id uint64) address.Address {
	return address.Mint(address.Reservation(address.Collection(owner), id))
}

func (s *SettlementCommandsTestSuite) assertUnsettled(owner address.Address, id uint64) {
	s.T().Helper()
	view, err := s.h.Queries.GetReservation(s.ctx, owner, id)
	require.NoError(s.T(), err)
	assert.False(s.T(), view.Settled)
	assert.Zero(s.T(), view.Mint.Supply)
}

// ================================================================================
// Purchase
// ================================================================================

func (s *SettlementCommandsTestSuite) TestPurchase() {
	buyerBefore := s.h.Balance(s.T(), s.buyer.Address)

	result, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, s.owner.Address, 0)
	require.NoError(s.T(), err)

	s.Run("splits the price between protocol and owner", func() {
		assert.Equal(s.T(), amount.MustLamports("0.1"), result.ProtocolFee)
		assert.Equal(s.T(), amount.MustLamports("0.9"), result.OwnerNet)
		assert.Equal(s.T(), buyerBefore-amount.MustLamports("1"), s.h.Balance(s.T(), s.buyer.Address))
		assert.Equal(s.T(), amount.MustLamports("0.1"), s.h.Balance(s.T(), s.h.Payer.Address))
		assert.Equal(s.T(), amount.MustLamports("0.9"), s.h.Balance(s.T(), s.owner.Address))
	})

	s.Run("delivers exactly one unit and revokes the mint authority", func() {
		mint := s.reservationMint(s.owner.Address, 0)
		assert.Equal(s.T(), mint, result.Mint)
		assert.Equal(s.T(), uint64(1), s.h.TokenBalance(s.T(), s.buyer.Address, mint))

		view, err := s.h.Queries.GetReservation(s.ctx, s.owner.Address, 0)
		require.NoError(s.T(), err)
		assert.True(s.T(), view.Settled)
		assert.Equal(s.T(), uint64(1), view.Mint.Supply)
		assert.Empty(s.T(), view.Mint.MintAuthority)
		assert.Equal(s.T(), "reserved", view.Status)
	})

	s.Run("counts the sale", func() {
		col, err := s.h.Queries.GetCollection(s.ctx, s.owner.Address)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), uint64(1), col.TotalSupply)
		assert.Equal(s.T(), uint64(1), result.TotalSupply)
	})

	s.Run("reports the settlement once committed", func() {
		require.Len(s.T(), s.h.Recorder.Settlements, 1)
		assert.Equal(s.T(), "direct", s.h.Recorder.Settlements[0].Path)
	})

	s.Run("a settled reservation cannot be bought again", func() {
		other := programtest.NewWallet(s.T())
		s.h.Fund(s.T(), other.Address, "5")
		_, err := s.h.Settlement.Purchase(s.ctx, other.Address, s.owner.Address, 0)
		assert.ErrorIs(s.T(), err, errs.ErrAlreadySettled)
	})
}

func (s *SettlementCommandsTestSuite) TestPurchaseSoldOut() {
	_, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, s.owner.Address, 0)
	require.NoError(s.T(), err)
	_, err = s.h.Settlement.Purchase(s.ctx, s.buyer.Address, s.owner.Address, 1)
	require.NoError(s.T(), err)

	err = s.h.Reservation.CreateReservation(s.ctx, s.admin.Address, s.owner.Address, 2, displayURI)
	assert.ErrorIs(s.T(), err, errs.ErrSoldOut)
}

func (s *SettlementCommandsTestSuite) TestPurchaseSaleWindow() {
	cases := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "before the sale starts", at: programtest.Epoch.Add(-time.Hour - time.Second), wantErr: errs.ErrNotTimeYet},
		{name: "after the sale ends", at: programtest.Epoch.Add(24*time.Hour + time.Second), wantErr: errs.ErrExpired},
		{name: "exactly at the sale end", at: programtest.Epoch.Add(24 * time.Hour)},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.h.Clock.Set(tc.at)
			_, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, s.owner.Address, 0)
			if tc.wantErr != nil {
				assert.ErrorIs(s.T(), err, tc.wantErr)
				s.assertUnsettled(s.owner.Address, 0)
				return
			}
			assert.NoError(s.T(), err)
		})
	}
}

func (s *SettlementCommandsTestSuite) TestPurchaseAllowList() {
	gated := programtest.NewWallet(s.T())
	listed := programtest.NewWallet(s.T())
	now := s.h.Clock.Now()
	require.NoError(s.T(), s.h.Collections.CreateCollection(s.ctx, gated.Address, commands.CreateCollectionInput{
		Name: "Gated", Symbol: "GTD", Reference: "ref-gated", Price: "0.5",
		SaleStart: now, SaleEnd: now.Add(time.Hour), MaxSupply: 3,
		AllowList: []address.Address{listed.Address},
	}))
	s.reserve(gated.Address, 0)
	s.h.Fund(s.T(), listed.Address, "1")

	_, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, gated.Address, 0)
	assert.ErrorIs(s.T(), err, errs.ErrNotOnAllowList)

	_, err = s.h.Settlement.Purchase(s.ctx, listed.Address, gated.Address, 0)
	assert.NoError(s.T(), err)
}

func (s *SettlementCommandsTestSuite) TestPurchaseInsufficientFundsRollsBack() {
	poor := programtest.NewWallet(s.T())
	s.h.Fund(s.T(), poor.Address, "0.5")

	_, err := s.h.Settlement.Purchase(s.ctx, poor.Address, s.owner.Address, 0)
	assert.ErrorIs(s.T(), err, errs.ErrInsufficientFunds)

	assert.Equal(s.T(), amount.MustLamports("0.5"), s.h.Balance(s.T(), poor.Address))
	assert.Zero(s.T(), s.h.Balance(s.T(), s.h.Payer.Address))
	assert.Zero(s.T(), s.h.Balance(s.T(), s.owner.Address))
	s.assertUnsettled(s.owner.Address, 0)
	assert.Empty(s.T(), s.h.Recorder.Settlements)
}

func (s *SettlementCommandsTestSuite) TestPurchaseFeeSplit() {
	require.Equal(s.T(), uint64(100_000_000), s.h.Params.ProtocolFee)

	cases := []struct {
		name    string
		price   string
		wantNet uint64
		wantFee uint64
	}{
		{name: "price above the fee", price: "0.3", wantNet: 200_000_000, wantFee: 100_000_000},
		{name: "price equal to the fee", price: "0.1", wantNet: 0, wantFee: 100_000_000},
		{name: "whole unit price", price: "1", wantNet: 900_000_000, wantFee: 100_000_000},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			owner := programtest.NewWallet(s.T())
			buyer := programtest.NewWallet(s.T())
			s.h.OpenCollection(s.T(), owner.Address, tc.price, 1)
			s.reserve(owner.Address, 0)
			s.h.Fund(s.T(), buyer.Address, "2")
			payerBefore := s.h.Balance(s.T(), s.h.Payer.Address)

			result, err := s.h.Settlement.Purchase(s.ctx, buyer.Address, owner.Address, 0)
			require.NoError(s.T(), err)

			assert.Equal(s.T(), tc.wantNet, result.OwnerNet)
			assert.Equal(s.T(), tc.wantFee, result.ProtocolFee)
			assert.Equal(s.T(), tc.wantNet, s.h.Balance(s.T(), owner.Address))
			assert.Equal(s.T(), payerBefore+tc.wantFee, s.h.Balance(s.T(), s.h.Payer.Address))
			assert.Equal(s.T(), amount.MustLamports("2")-tc.wantNet-tc.wantFee, s.h.Balance(s.T(), buyer.Address))
		})
	}
}

func (s *SettlementCommandsTestSuite) TestPurchasePriceBelowFee() {
	cheap := programtest.NewWallet(s.T())
	s.h.OpenCollection(s.T(), cheap.Address, "0.05", 1)
	s.reserve(cheap.Address, 0)

	result, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, cheap.Address, 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), amount.MustLamports("0.05"), result.ProtocolFee)
	assert.Zero(s.T(), result.OwnerNet)
}

func (s *SettlementCommandsTestSuite) TestPurchaseUnknownReservation() {
	_, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, s.owner.Address, 42)
	assert.ErrorIs(s.T(), err, errs.ErrNotFound)
}

// ================================================================================
// PurchaseDelegated
// ================================================================================

func (s *SettlementCommandsTestSuite) grantFor(id uint64) *builder.GrantBuilder {
	return builder.NewGrantBuilder(s.owner.Key, s.buyer.Address, id, s.h.Clock.Now())
}

func (s *SettlementCommandsTestSuite) TestPurchaseDelegated() {
	s.h.Fund(s.T(), s.owner.Address, "1")
	buyerBefore := s.h.Balance(s.T(), s.buyer.Address)

	result, err := s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 0, s.buyer.Address, s.grantFor(0).Build())
	require.NoError(s.T(), err)

	s.Run("the owner pays the airdrop fee", func() {
		assert.Equal(s.T(), s.h.Params.AirdropFee, result.ProtocolFee)
		assert.Zero(s.T(), result.OwnerNet)
		assert.Equal(s.T(), amount.MustLamports("1")-s.h.Params.AirdropFee, s.h.Balance(s.T(), s.owner.Address))
		assert.Equal(s.T(), s.h.Params.AirdropFee, s.h.Balance(s.T(), s.h.Payer.Address))
		assert.Equal(s.T(), buyerBefore, s.h.Balance(s.T(), s.buyer.Address))
	})

	s.Run("the buyer holds the unit", func() {
		assert.Equal(s.T(), uint64(1), s.h.TokenBalance(s.T(), s.buyer.Address, result.Mint))
		require.Len(s.T(), s.h.Recorder.Settlements, 1)
		assert.Equal(s.T(), "delegated", s.h.Recorder.Settlements[0].Path)
	})

	s.Run("a used nonce is rejected", func() {
		_, err := s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 1, s.buyer.Address, s.grantFor(1).Build())
		assert.ErrorIs(s.T(), err, errs.ErrGrantReplayed)
		s.assertUnsettled(s.owner.Address, 1)
	})

	s.Run("a fresh nonce succeeds", func() {
		_, err := s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 1, s.buyer.Address, s.grantFor(1).WithNonce(2).Build())
		assert.NoError(s.T(), err)
	})
}

func (s *SettlementCommandsTestSuite) TestPurchaseDelegatedAfterClose() {
	s.h.Fund(s.T(), s.owner.Address, "1")
	_, err := s.h.Settlement.Purchase(s.ctx, s.buyer.Address, s.owner.Address, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.h.Collections.CloseCollection(s.ctx, s.admin.Address, s.owner.Address))

	s.h.Clock.Add(time.Second)
	_, err = s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 1, s.buyer.Address, s.grantFor(1).Build())
	assert.ErrorIs(s.T(), err, errs.ErrSoldOut)
	s.assertUnsettled(s.owner.Address, 1)
}

func (s *SettlementCommandsTestSuite) TestPurchaseDelegatedByOwner() {
	s.h.Fund(s.T(), s.owner.Address, "1")
	_, err := s.h.Settlement.PurchaseDelegated(s.ctx, s.owner.Address, s.owner.Address, 0, s.buyer.Address, s.grantFor(0).Build())
	assert.NoError(s.T(), err)
}

func (s *SettlementCommandsTestSuite) TestPurchaseDelegatedRejections() {
	s.h.Fund(s.T(), s.owner.Address, "1")
	now := s.h.Clock.Now()
	stranger := programtest.NewWallet(s.T())

	cases := []struct {
		name    string
		caller  address.Address
		buyer   address.Address
		grant   func() *grant.SignedGrant
		wantErr error
	}{
		{
			name:    "caller is neither admin nor owner",
			caller:  stranger.Address,
			grant:   func() *grant.SignedGrant { return s.grantFor(0).Build() },
			wantErr: errs.ErrUnauthorizedAdmin,
		},
		{
			name:    "grant is missing",
			grant:   func() *grant.SignedGrant { return nil },
			wantErr: errs.ErrInstructionsNotCorrect,
		},
		{
			name: "signature does not cover the fields",
			grant: func() *grant.SignedGrant {
				return s.grantFor(0).Tamper(func(g *grant.SignedGrant) { g.Nonce++ }).Build()
			},
			wantErr: errs.ErrInstructionsNotCorrect,
		},
		{
			name: "signature is stripped",
			grant: func() *grant.SignedGrant {
				return s.grantFor(0).Tamper(func(g *grant.SignedGrant) { g.Signature = nil }).Build()
			},
			wantErr: errs.ErrInstructionsNotCorrect,
		},
		{
			name: "signed by someone other than the owner",
			grant: func() *grant.SignedGrant {
				return builder.NewGrantBuilder(stranger.Key, s.buyer.Address, 0, now).Build()
			},
			wantErr: errs.ErrUnauthorizedAdmin,
		},
		{
			name:    "recipient differs from buyer",
			buyer:   stranger.Address,
			grant:   func() *grant.SignedGrant { return s.grantFor(0).Build() },
			wantErr: errs.ErrRecipientMismatch,
		},
		{
			name:    "grant binds another reservation",
			grant:   func() *grant.SignedGrant { return s.grantFor(1).Build() },
			wantErr: errs.ErrInstructionsNotCorrect,
		},
		{
			name:    "grant has expired",
			grant:   func() *grant.SignedGrant { return s.grantFor(0).WithExpiresAt(now.Add(-time.Second)).Build() },
			wantErr: errs.ErrGrantExpired,
		},
		{
			name:    "grant lifetime exceeds the maximum",
			grant:   func() *grant.SignedGrant { return s.grantFor(0).WithExpiresAt(now.Add(48 * time.Hour)).Build() },
			wantErr: errs.ErrInstructionsNotCorrect,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			caller := tc.caller
			if caller.IsZero() {
				caller = s.admin.Address
			}
			buyer := tc.buyer
			if buyer.IsZero() {
				buyer = s.buyer.Address
			}

			_, err := s.h.Settlement.PurchaseDelegated(s.ctx, caller, s.owner.Address, 0, buyer, tc.grant())
			assert.ErrorIs(s.T(), err, tc.wantErr)
			s.assertUnsettled(s.owner.Address, 0)
			assert.Equal(s.T(), amount.MustLamports("1"), s.h.Balance(s.T(), s.owner.Address))
		})
	}

	s.Run("a grant expiring exactly now is accepted", func() {
		_, err := s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 0, s.buyer.Address, s.grantFor(0).WithExpiresAt(now).Build())
		assert.NoError(s.T(), err)
	})
}

func (s *SettlementCommandsTestSuite) TestPurchaseDelegatedOwnerCannotPayFee() {
	_, err := s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 0, s.buyer.Address, s.grantFor(0).Build())
	assert.ErrorIs(s.T(), err, errs.ErrInsufficientFunds)
	s.assertUnsettled(s.owner.Address, 0)

	// The rolled-back unit must not burn the nonce.
	s.h.Fund(s.T(), s.owner.Address, "1")
	_, err = s.h.Settlement.PurchaseDelegated(s.ctx, s.admin.Address, s.owner.Address, 0, s.buyer.Address, s.grantFor(0).Build())
	assert.NoError(s.T(), err)
}
