package repository

import (
	"context"

	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/infra"
	"asset-factory/internal/infra/repository/converter"
	"asset-factory/internal/pkg/address"
)

type ReservationRepository struct {
	store recordStore
}

func NewReservationRepository(q AccountQueries) *ReservationRepository {
	return &ReservationRepository{store: recordStore{q: q}}
}

func (r *ReservationRepository) Get(ctx context.Context, col address.Address, id uint64) (*reservation.Reservation, error) {
	var rec converter.ReservationRecord
	if _, err := r.store.load(ctx, address.Reservation(col, id), KindReservation, &rec); err != nil {
		return nil, err
	}
	res, err := converter.ReservationFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDecodeFailure, "invalid reservation record", err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	return r.store.create(ctx, res.Address(), KindReservation, converter.ReservationToRecord(res))
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	return r.store.save(ctx, res.Address(), KindReservation, converter.ReservationToRecord(res))
}
