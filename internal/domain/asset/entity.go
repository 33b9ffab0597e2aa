package asset

import (
	"strings"
	"time"
	"unicode/utf8"

	"asset-factory/internal/domain/collection"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
)

// Asset is the final, supply-capped token record paired with a reservation.
type Asset struct {
	id          uint64
	collection  address.Address
	name        string
	uri         string
	attributes  []Attribute
	price       uint64
	rank        uint64
	createdAt   time.Time
	status      Status
	buyer       address.Address
	completedAt time.Time
}

// NewAsset ranks the asset by the number of units sold so far.
func NewAsset(col *collection.Collection, id uint64, name, uri string, attrs []Attribute, now time.Time) (*Asset, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return nil, ErrNameTooLong
	}
	if len(uri) > MaxURILength {
		return nil, ErrURITooLong
	}
	if len(attrs) > MaxAttributes {
		return nil, ErrTooManyAttributes
	}
	for _, a := range attrs {
		if a.Key == "" || len(a.Key) > MaxAttributeLength || len(a.Value) > MaxAttributeLength {
			return nil, ErrInvalidAttribute
		}
	}

	return &Asset{
		id:         id,
		collection: address.Collection(col.Owner()),
		name:       name,
		uri:        uri,
		attributes: attrs,
		price:      col.Price(),
		rank:       col.TotalSupply(),
		createdAt:  now,
		status:     StatusReserved,
	}, nil
}

func ReconstructAsset(
	id uint64,
	collection address.Address,
	name, uri string,
	attrs []Attribute,
	price, rank uint64,
	createdAt time.Time,
	status Status,
	buyer address.Address,
	completedAt time.Time,
) (*Asset, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Asset{
		id:          id,
		collection:  collection,
		name:        name,
		uri:         uri,
		attributes:  attrs,
		price:       price,
		rank:        rank,
		createdAt:   createdAt,
		status:      status,
		buyer:       buyer,
		completedAt: completedAt,
	}, nil
}

func (a *Asset) EnsureReserved() error {
	if a.status != StatusReserved {
		return errs.ErrAssetCompleted
	}
	return nil
}

// Complete embeds the buyer in place. id, collection, price and rank are preserved.
func (a *Asset) Complete(buyer address.Address, now time.Time) error {
	if buyer.IsZero() {
		return ErrInvalidBuyer
	}
	if err := a.EnsureReserved(); err != nil {
		return err
	}
	a.status = StatusCompleted
	a.buyer = buyer
	a.completedAt = now
	return nil
}

func (a *Asset) Address() address.Address {
	return address.Asset(a.collection, a.id)
}

func (a *Asset) Mint() address.Address {
	return address.Mint(a.Address())
}

func (a *Asset) ID() uint64                  { return a.id }
func (a *Asset) Collection() address.Address { return a.collection }
func (a *Asset) Name() string                { return a.name }
func (a *Asset) URI() string                 { return a.uri }
func (a *Asset) Attributes() []Attribute     { return a.attributes }
func (a *Asset) Price() uint64               { return a.price }
func (a *Asset) Rank() uint64                { return a.rank }
func (a *Asset) CreatedAt() time.Time        { return a.createdAt }
func (a *Asset) Status() Status              { return a.status }
func (a *Asset) Buyer() address.Address      { return a.buyer }
func (a *Asset) CompletedAt() time.Time      { return a.completedAt }
