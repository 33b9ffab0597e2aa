package queries

import "time"

type ProtocolView struct {
	Address string `json:"address"`
	Locked  bool   `json:"locked"`
}

type AdminView struct {
	Address   string    `json:"address"`
	Identity  string    `json:"identity"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	Deposit   uint64    `json:"deposit"`
	Lamports  uint64    `json:"lamports"`
}

type CollectionView struct {
	Address     string    `json:"address"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Reference   string    `json:"reference"`
	Price       uint64    `json:"price"`
	SaleStart   time.Time `json:"sale_start"`
	SaleEnd     time.Time `json:"sale_end"`
	MaxSupply   uint64    `json:"max_supply"`
	TotalSupply uint64    `json:"total_supply"`
	AllowList   []string  `json:"allow_list,omitempty"`
}

type MintView struct {
	Address           string      `json:"address"`
	MintAuthority     string      `json:"mint_authority,omitempty"`
	FreezeAuthority   string      `json:"freeze_authority,omitempty"`
	CloseAuthority    string      `json:"close_authority,omitempty"`
	PermanentDelegate string      `json:"permanent_delegate,omitempty"`
	Supply            uint64      `json:"supply"`
	Name              string      `json:"name"`
	Symbol            string      `json:"symbol"`
	URI               string      `json:"uri"`
	Additional        [][2]string `json:"additional,omitempty"`
}

type ReservationView struct {
	Address     string     `json:"address"`
	ID          uint64     `json:"id"`
	Collection  string     `json:"collection"`
	Name        string     `json:"name"`
	Reference   string     `json:"reference"`
	Price       uint64     `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	Status      string     `json:"status"`
	Settled     bool       `json:"settled"`
	Buyer       *string    `json:"buyer,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Mint        MintView   `json:"mint"`
}

type AttributeView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type AssetView struct {
	Address     string          `json:"address"`
	ID          uint64          `json:"id"`
	Collection  string          `json:"collection"`
	Name        string          `json:"name"`
	URI         string          `json:"uri"`
	Attributes  []AttributeView `json:"attributes,omitempty"`
	Price       uint64          `json:"price"`
	Rank        uint64          `json:"rank"`
	CreatedAt   time.Time       `json:"created_at"`
	Status      string          `json:"status"`
	Buyer       *string         `json:"buyer,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	Mint        MintView        `json:"mint"`
}

type BalanceView struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
	Units    string `json:"units"`
}

type TokenBalanceView struct {
	Owner        string `json:"owner"`
	Mint         string `json:"mint"`
	TokenAccount string `json:"token_account"`
	Amount       uint64 `json:"amount"`
}
