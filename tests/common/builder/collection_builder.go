//go:build unit || e2e

package builder

import (
	"time"

	"asset-factory/internal/domain/collection"
	reqdto "asset-factory/internal/handler/dto/request"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
)

var defaultSaleStart = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

type CollectionBuilder struct {
	owner     address.Address
	name      string
	symbol    string
	reference string
	price     string
	saleStart time.Time
	saleEnd   time.Time
	maxSupply uint64
	allowList []address.Address
}

func NewCollectionBuilder(owner address.Address) *CollectionBuilder {
	return &CollectionBuilder{
		owner:     owner,
		name:      "Genesis",
		symbol:    "GEN",
		reference: "ref-genesis",
		price:     "1",
		saleStart: defaultSaleStart,
		saleEnd:   defaultSaleStart.Add(72 * time.Hour),
		maxSupply: 10,
	}
}

func (b *CollectionBuilder) WithName(name string) *CollectionBuilder {
	b.name = name
	return b
}

func (b *CollectionBuilder) WithSymbol(symbol string) *CollectionBuilder {
	b.symbol = symbol
	return b
}

func (b *CollectionBuilder) WithReference(ref string) *CollectionBuilder {
	b.reference = ref
	return b
}

func (b *CollectionBuilder) WithPrice(units string) *CollectionBuilder {
	b.price = units
	return b
}

func (b *CollectionBuilder) WithWindow(start, end time.Time) *CollectionBuilder {
	b.saleStart, b.saleEnd = start, end
	return b
}

func (b *CollectionBuilder) WithMaxSupply(n uint64) *CollectionBuilder {
	b.maxSupply = n
	return b
}

func (b *CollectionBuilder) WithAllowList(addrs ...address.Address) *CollectionBuilder {
	b.allowList = addrs
	return b
}

func (b *CollectionBuilder) WithOwner(owner address.Address) *CollectionBuilder {
	b.owner = owner
	return b
}

func (b *CollectionBuilder) Params() collection.Params {
	return collection.Params{
		Owner:     b.owner,
		Name:      b.name,
		Symbol:    b.symbol,
		Reference: b.reference,
		Price:     amount.MustLamports(b.price),
		SaleStart: b.saleStart,
		SaleEnd:   b.saleEnd,
		MaxSupply: b.maxSupply,
		AllowList: b.allowList,
	}
}

func (b *CollectionBuilder) BuildDomain() (*collection.Collection, error) {
	return collection.NewCollection(b.Params())
}

func (b *CollectionBuilder) BuildCreateRequestDTO() reqdto.CreateCollectionRequest {
	return reqdto.CreateCollectionRequest{
		Name:      b.name,
		Symbol:    b.symbol,
		Reference: b.reference,
		Price:     b.price,
		SaleStart: b.saleStart,
		SaleEnd:   b.saleEnd,
		MaxSupply: b.maxSupply,
		AllowList: b.allowList,
	}
}
