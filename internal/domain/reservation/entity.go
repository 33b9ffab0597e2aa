package reservation

import (
	"errors"
	"time"

	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
)

var (
	ErrInvalidCollection = errors.New("reservation must reference a collection")
	ErrInvalidBuyer      = errors.New("buyer cannot be empty")
	ErrInvalidStatus     = errors.New("invalid reservation status")
)

// Reservation is the placeholder record bound to one (collection, id) slot.
// It moves from Reserved to Completed once and never back.
type Reservation struct {
	id          uint64
	collection  address.Address
	name        string
	reference   string
	price       uint64
	createdAt   time.Time
	status      Status
	buyer       address.Address
	completedAt time.Time
}

func ReconstructReservation(
	id uint64,
	collection address.Address,
	name, reference string,
	price uint64,
	createdAt time.Time,
	status Status,
	buyer address.Address,
	completedAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:          id,
		collection:  collection,
		name:        name,
		reference:   reference,
		price:       price,
		createdAt:   createdAt,
		status:      status,
		buyer:       buyer,
		completedAt: completedAt,
	}, nil
}

func (r *Reservation) EnsureReserved() error {
	if r.status != StatusReserved {
		return errs.ErrReservationCompleted
	}
	return nil
}

// Complete overwrites the record with the buyer that finalized it.
func (r *Reservation) Complete(buyer address.Address, now time.Time) error {
	if buyer.IsZero() {
		return ErrInvalidBuyer
	}
	if err := r.EnsureReserved(); err != nil {
		return err
	}
	r.status = StatusCompleted
	r.buyer = buyer
	r.completedAt = now
	return nil
}

func (r *Reservation) IsCompleted() bool {
	return r.status == StatusCompleted
}

func (r *Reservation) Address() address.Address {
	return address.Reservation(r.collection, r.id)
}

func (r *Reservation) Mint() address.Address {
	return address.Mint(r.Address())
}

func (r *Reservation) ID() uint64                  { return r.id }
func (r *Reservation) Collection() address.Address { return r.collection }
func (r *Reservation) Name() string                { return r.name }
func (r *Reservation) Reference() string           { return r.reference }
func (r *Reservation) Price() uint64               { return r.price }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) Buyer() address.Address      { return r.buyer }
func (r *Reservation) CompletedAt() time.Time      { return r.completedAt }
