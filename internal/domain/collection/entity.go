package collection

import (
	"strings"
	"time"

	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
)

type Params struct {
	Owner     address.Address
	Name      string
	Symbol    string
	Reference string
	Price     uint64
	SaleStart time.Time
	SaleEnd   time.Time
	MaxSupply uint64
	AllowList []address.Address
}

type Collection struct {
	owner       address.Address
	name        string
	symbol      string
	reference   string
	price       uint64
	saleStart   time.Time
	saleEnd     time.Time
	maxSupply   uint64
	totalSupply uint64
	allowList   []address.Address
}

func NewCollection(p Params) (*Collection, error) {
	if p.Owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	name := strings.TrimSpace(p.Name)
	switch {
	case name == "":
		return nil, ErrEmptyName
	case len(name) > MaxNameLength:
		return nil, ErrNameTooLong
	}
	symbol := strings.TrimSpace(p.Symbol)
	switch {
	case symbol == "":
		return nil, ErrEmptySymbol
	case len(symbol) > MaxSymbolLength:
		return nil, ErrSymbolTooLong
	}
	if len(p.Reference) > MaxReferenceLength {
		return nil, ErrReferenceTooLong
	}
	if p.SaleStart.Unix() <= 0 || p.SaleEnd.Unix() <= 0 || !p.SaleStart.Before(p.SaleEnd) {
		return nil, ErrInvalidSaleWindow
	}
	if p.MaxSupply == 0 {
		return nil, ErrInvalidMaxSupply
	}
	if len(p.AllowList) > MaxAllowListSize {
		return nil, ErrAllowListTooLarge
	}

	return &Collection{
		owner:     p.Owner,
		name:      name,
		symbol:    symbol,
		reference: p.Reference,
		price:     p.Price,
		saleStart: p.SaleStart.UTC(),
		saleEnd:   p.SaleEnd.UTC(),
		maxSupply: p.MaxSupply,
		allowList: dedupe(p.AllowList),
	}, nil
}

func ReconstructCollection(p Params, totalSupply uint64) *Collection {
	return &Collection{
		owner:       p.Owner,
		name:        p.Name,
		symbol:      p.Symbol,
		reference:   p.Reference,
		price:       p.Price,
		saleStart:   p.SaleStart,
		saleEnd:     p.SaleEnd,
		maxSupply:   p.MaxSupply,
		totalSupply: totalSupply,
		allowList:   p.AllowList,
	}
}

// EnsureOpen checks the sale window. Both bounds are inclusive.
func (c *Collection) EnsureOpen(now time.Time) error {
	if now.Before(c.saleStart) {
		return errs.ErrNotTimeYet
	}
	if now.After(c.saleEnd) {
		return errs.ErrExpired
	}
	return nil
}

func (c *Collection) EnsureCapacity() error {
	if c.totalSupply >= c.maxSupply {
		return errs.ErrSoldOut
	}
	return nil
}

// EnsureAllowed passes every buyer when no allow-list is configured.
func (c *Collection) EnsureAllowed(buyer address.Address) error {
	if len(c.allowList) == 0 {
		return nil
	}
	for _, a := range c.allowList {
		if a == buyer {
			return nil
		}
	}
	return errs.ErrNotOnAllowList
}

// EnsureSellable runs every admission check for a buyer at now.
// Capacity comes first so a closed collection reports SoldOut.
func (c *Collection) EnsureSellable(buyer address.Address, now time.Time) error {
	if err := c.EnsureCapacity(); err != nil {
		return err
	}
	if err := c.EnsureOpen(now); err != nil {
		return err
	}
	return c.EnsureAllowed(buyer)
}

// RecordSale counts one settled unit against the supply cap.
func (c *Collection) RecordSale() error {
	if err := c.EnsureCapacity(); err != nil {
		return err
	}
	c.totalSupply++
	return nil
}

// Close stops the sale now and freezes supply at what was sold.
// The end never moves before the start.
func (c *Collection) Close(now time.Time) {
	c.saleEnd = now.UTC()
	if c.saleEnd.Before(c.saleStart) {
		c.saleEnd = c.saleStart
	}
	c.maxSupply = c.totalSupply
}

func (c *Collection) Owner() address.Address       { return c.owner }
func (c *Collection) Name() string                 { return c.name }
func (c *Collection) Symbol() string               { return c.symbol }
func (c *Collection) Reference() string            { return c.reference }
func (c *Collection) Price() uint64                { return c.price }
func (c *Collection) SaleStart() time.Time         { return c.saleStart }
func (c *Collection) SaleEnd() time.Time           { return c.saleEnd }
func (c *Collection) MaxSupply() uint64            { return c.maxSupply }
func (c *Collection) TotalSupply() uint64          { return c.totalSupply }
func (c *Collection) AllowList() []address.Address { return c.allowList }

func dedupe(in []address.Address) []address.Address {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[address.Address]struct{}, len(in))
	out := make([]address.Address, 0, len(in))
	for _, a := range in {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
