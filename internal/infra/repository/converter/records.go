package converter

import (
	"time"

	"asset-factory/internal/domain/admin"
	"asset-factory/internal/domain/asset"
	"asset-factory/internal/domain/collection"
	"asset-factory/internal/domain/protocol"
	"asset-factory/internal/domain/reservation"
	"asset-factory/internal/pkg/address"

	"github.com/vmihailenco/msgpack/v5"
)

type ProtocolRecord struct {
	Locked bool `msgpack:"locked"`
}

type AdminRecord struct {
	Identity  address.Address `msgpack:"identity"`
	Username  string          `msgpack:"username"`
	CreatedAt int64           `msgpack:"created_at"`
	Deposit   uint64          `msgpack:"deposit"`
}

type CollectionRecord struct {
	Owner       address.Address   `msgpack:"owner"`
	Name        string            `msgpack:"name"`
	Symbol      string            `msgpack:"symbol"`
	Reference   string            `msgpack:"reference"`
	Price       uint64            `msgpack:"price"`
	SaleStart   int64             `msgpack:"sale_start"`
	SaleEnd     int64             `msgpack:"sale_end"`
	MaxSupply   uint64            `msgpack:"max_supply"`
	TotalSupply uint64            `msgpack:"total_supply"`
	AllowList   []address.Address `msgpack:"allow_list"`
}

type ReservationRecord struct {
	ID          uint64          `msgpack:"id"`
	Collection  address.Address `msgpack:"collection"`
	Name        string          `msgpack:"name"`
	Reference   string          `msgpack:"reference"`
	Price       uint64          `msgpack:"price"`
	CreatedAt   int64           `msgpack:"created_at"`
	Status      string          `msgpack:"status"`
	Buyer       address.Address `msgpack:"buyer"`
	CompletedAt int64           `msgpack:"completed_at"`
}

type AttributeRecord struct {
	Key   string `msgpack:"k"`
	Value string `msgpack:"v"`
}

type AssetRecord struct {
	ID          uint64            `msgpack:"id"`
	Collection  address.Address   `msgpack:"collection"`
	Name        string            `msgpack:"name"`
	URI         string            `msgpack:"uri"`
	Attributes  []AttributeRecord `msgpack:"attributes"`
	Price       uint64            `msgpack:"price"`
	Rank        uint64            `msgpack:"rank"`
	CreatedAt   int64             `msgpack:"created_at"`
	Status      string            `msgpack:"status"`
	Buyer       address.Address   `msgpack:"buyer"`
	CompletedAt int64             `msgpack:"completed_at"`
}

type GrantNonceRecord struct {
	Signer address.Address `msgpack:"signer"`
	Nonce  uint64          `msgpack:"nonce"`
	UsedAt int64           `msgpack:"used_at"`
}

func Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

func fromUnix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func ProtocolToRecord(p *protocol.Protocol) ProtocolRecord {
	return ProtocolRecord{Locked: p.Locked()}
}

func ProtocolFromRecord(r ProtocolRecord) *protocol.Protocol {
	return protocol.ReconstructProtocol(r.Locked)
}

func AdminToRecord(a *admin.Admin) AdminRecord {
	return AdminRecord{
		Identity:  a.Identity(),
		Username:  a.Username(),
		CreatedAt: unix(a.CreatedAt()),
		Deposit:   a.Deposit(),
	}
}

func AdminFromRecord(r AdminRecord) *admin.Admin {
	return admin.ReconstructAdmin(r.Identity, r.Username, fromUnix(r.CreatedAt), r.Deposit)
}

func CollectionToRecord(c *collection.Collection) CollectionRecord {
	return CollectionRecord{
		Owner:       c.Owner(),
		Name:        c.Name(),
		Symbol:      c.Symbol(),
		Reference:   c.Reference(),
		Price:       c.Price(),
		SaleStart:   unix(c.SaleStart()),
		SaleEnd:     unix(c.SaleEnd()),
		MaxSupply:   c.MaxSupply(),
		TotalSupply: c.TotalSupply(),
		AllowList:   c.AllowList(),
	}
}

func CollectionFromRecord(r CollectionRecord) *collection.Collection {
	return collection.ReconstructCollection(collection.Params{
		Owner:     r.Owner,
		Name:      r.Name,
		Symbol:    r.Symbol,
		Reference: r.Reference,
		Price:     r.Price,
		SaleStart: fromUnix(r.SaleStart),
		SaleEnd:   fromUnix(r.SaleEnd),
		MaxSupply: r.MaxSupply,
		AllowList: r.AllowList,
	}, r.TotalSupply)
}

func ReservationToRecord(res *reservation.Reservation) ReservationRecord {
	return ReservationRecord{
		ID:          res.ID(),
		Collection:  res.Collection(),
		Name:        res.Name(),
		Reference:   res.Reference(),
		Price:       res.Price(),
		CreatedAt:   unix(res.CreatedAt()),
		Status:      string(res.Status()),
		Buyer:       res.Buyer(),
		CompletedAt: unix(res.CompletedAt()),
	}
}

func ReservationFromRecord(r ReservationRecord) (*reservation.Reservation, error) {
	return reservation.ReconstructReservation(
		r.ID,
		r.Collection,
		r.Name,
		r.Reference,
		r.Price,
		fromUnix(r.CreatedAt),
		reservation.Status(r.Status),
		r.Buyer,
		fromUnix(r.CompletedAt),
	)
}

func AssetToRecord(a *asset.Asset) AssetRecord {
	attrs := make([]AttributeRecord, 0, len(a.Attributes()))
	for _, at := range a.Attributes() {
		attrs = append(attrs, AttributeRecord{Key: at.Key, Value: at.Value})
	}
	return AssetRecord{
		ID:          a.ID(),
		Collection:  a.Collection(),
		Name:        a.Name(),
		URI:         a.URI(),
		Attributes:  attrs,
		Price:       a.Price(),
		Rank:        a.Rank(),
		CreatedAt:   unix(a.CreatedAt()),
		Status:      string(a.Status()),
		Buyer:       a.Buyer(),
		CompletedAt: unix(a.CompletedAt()),
	}
}

func AssetFromRecord(r AssetRecord) (*asset.Asset, error) {
	attrs := make([]asset.Attribute, 0, len(r.Attributes))
	for _, at := range r.Attributes {
		attrs = append(attrs, asset.Attribute{Key: at.Key, Value: at.Value})
	}
	return asset.ReconstructAsset(
		r.ID,
		r.Collection,
		r.Name,
		r.URI,
		attrs,
		r.Price,
		r.Rank,
		fromUnix(r.CreatedAt),
		asset.Status(r.Status),
		r.Buyer,
		fromUnix(r.CompletedAt),
	)
}
