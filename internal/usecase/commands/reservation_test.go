//go:build unit

package commands_test

import (
	"context"
	"strconv"
	"testing"

	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
	"asset-factory/internal/pkg/errs"
	"asset-factory/internal/usecase/queries"
	"asset-factory/tests/common/programtest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	h     *programtest.Harness
	ctx   context.Context
	admin programtest.Wallet
	owner programtest.Wallet
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.h = programtest.New(s.T())
	s.ctx = context.Background()
	s.admin = s.h.Bootstrap(s.T())
	s.owner = programtest.NewWallet(s.T())
	s.h.OpenCollection(s.T(), s.owner.Address, "0.3", 1)
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	require.NoError(s.T(), s.h.Reservation.CreateReservation(s.ctx, s.admin.Address, s.owner.Address, 0, displayURI))

	view, err := s.h.Queries.GetReservation(s.ctx, s.owner.Address, 0)
	require.NoError(s.T(), err)

	s.Run("snapshots the sale terms", func() {
		assert.Equal(s.T(), "Genesis", view.Name)
		assert.Equal(s.T(), "ref-genesis", view.Reference)
		assert.Equal(s.T(), amount.MustLamports("0.3"), view.Price)
		assert.Equal(s.T(), "reserved", view.Status)
		assert.False(s.T(), view.Settled)
		assert.Nil(s.T(), view.Buyer)
		assert.True(s.T(), view.CreatedAt.Equal(s.h.Clock.Now()))
	})

	s.Run("pairs a single-supply mint held by the program", func() {
		program := address.Authority().String()
		res := address.Reservation(address.Collection(s.owner.Address), 0)
		want := queries.MintView{
			Address:           address.Mint(res).String(),
			MintAuthority:     program,
			FreezeAuthority:   program,
			CloseAuthority:    program,
			PermanentDelegate: program,
			Name:              "Placeholder for Genesis",
			Symbol:            "GEN",
			URI:               displayURI,
			Additional: [][2]string{
				{"timestamp", strconv.FormatInt(s.h.Clock.Now().Unix(), 10)},
				{"price", "300000000"},
				{"collection", "Genesis"},
				{"reference", "ref-genesis"},
			},
		}
		if diff := cmp.Diff(want, view.Mint); diff != "" {
			s.T().Errorf("mint mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("an id is reserved once", func() {
		err := s.h.Reservation.CreateReservation(s.ctx, s.admin.Address, s.owner.Address, 0, displayURI)
		assert.ErrorIs(s.T(), err, errs.ErrAlreadyExists)
	})
}

func (s *ReservationCommandsTestSuite) TestCreateReservationRejections() {
	cases := []struct {
		name   string
		caller func() address.Address
		owner  func() address.Address
		want   error
	}{
		{
			name:   "collection owner is not an admin",
			caller: func() address.Address { return s.owner.Address },
			owner:  func() address.Address { return s.owner.Address },
			want:   errs.ErrUnauthorizedAdmin,
		},
		{
			name:   "unknown collection",
			caller: func() address.Address { return s.admin.Address },
			owner:  func() address.Address { return programtest.NewWallet(s.T()).Address },
			want:   errs.ErrNotFound,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.h.Reservation.CreateReservation(s.ctx, tc.caller(), tc.owner(), 7, displayURI)
			assert.ErrorIs(s.T(), err, tc.want)
		})
	}

	s.Run("root authority may reserve", func() {
		err := s.h.Reservation.CreateReservation(s.ctx, s.h.Root.Address, s.owner.Address, 3, displayURI)
		assert.NoError(s.T(), err)
	})
}
