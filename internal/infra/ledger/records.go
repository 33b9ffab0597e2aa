package ledger

import (
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/usecase/shared"
)

type mintRecord struct {
	Payer             address.Address `msgpack:"payer"`
	MintAuthority     address.Address `msgpack:"mint_authority"`
	FreezeAuthority   address.Address `msgpack:"freeze_authority"`
	CloseAuthority    address.Address `msgpack:"close_authority"`
	PermanentDelegate address.Address `msgpack:"permanent_delegate"`
	Supply            uint64          `msgpack:"supply"`
	Decimals          uint8           `msgpack:"decimals"`
	Name              string          `msgpack:"name"`
	Symbol            string          `msgpack:"symbol"`
	URI               string          `msgpack:"uri"`
	Additional        [][2]string     `msgpack:"additional"`
}

type tokenAccountRecord struct {
	Owner  address.Address `msgpack:"owner"`
	Mint   address.Address `msgpack:"mint"`
	Amount uint64          `msgpack:"amount"`
}

func mintFromSpec(spec shared.MintSpec) mintRecord {
	return mintRecord{
		Payer:             spec.Payer,
		MintAuthority:     spec.MintAuthority,
		FreezeAuthority:   spec.FreezeAuthority,
		CloseAuthority:    spec.CloseAuthority,
		PermanentDelegate: spec.PermanentDelegate,
		Name:              spec.Metadata.Name,
		Symbol:            spec.Metadata.Symbol,
		URI:               spec.Metadata.URI,
		Additional:        spec.Metadata.Additional,
	}
}

func (m mintRecord) info(addr address.Address) *shared.MintInfo {
	return &shared.MintInfo{
		Address:           addr,
		Payer:             m.Payer,
		MintAuthority:     m.MintAuthority,
		FreezeAuthority:   m.FreezeAuthority,
		CloseAuthority:    m.CloseAuthority,
		PermanentDelegate: m.PermanentDelegate,
		Supply:            m.Supply,
		Decimals:          m.Decimals,
		Metadata: shared.TokenMetadata{
			Name:       m.Name,
			Symbol:     m.Symbol,
			URI:        m.URI,
			Additional: m.Additional,
		},
	}
}
