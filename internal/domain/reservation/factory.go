package reservation

import (
	"fmt"
	"strconv"

	"asset-factory/internal/domain/collection"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/clock"
)

const PlaceholderNamePrefix = "Placeholder for "

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{
		Clock: clock,
	}
}

// CreateReservation snapshots the collection's current sale terms into a new slot.
func (f *Factory) CreateReservation(col *collection.Collection, id uint64) (*Reservation, error) {
	if col == nil {
		return nil, ErrInvalidCollection
	}
	if err := col.EnsureCapacity(); err != nil {
		return nil, err
	}

	return &Reservation{
		id:         id,
		collection: address.Collection(col.Owner()),
		name:       col.Name(),
		reference:  col.Reference(),
		price:      col.Price(),
		createdAt:  f.Clock.Now(),
		status:     StatusReserved,
	}, nil
}

// MetadataFields are the descriptive fields attached to the placeholder mint.
func MetadataFields(r *Reservation) [][2]string {
	return [][2]string{
		{"timestamp", strconv.FormatInt(r.createdAt.Unix(), 10)},
		{"price", strconv.FormatUint(r.price, 10)},
		{"collection", r.name},
		{"reference", r.reference},
	}
}

func PlaceholderName(r *Reservation) string {
	return fmt.Sprintf("%s%s", PlaceholderNamePrefix, r.name)
}
