package response

import (
	"asset-factory/internal/usecase/commands"
	"asset-factory/internal/usecase/queries"
)

type ProtocolResponse struct {
	Address string `json:"address"`
	Locked  bool   `json:"locked"`
}

func FromProtocolView(v *queries.ProtocolView) *ProtocolResponse {
	return copyView[ProtocolResponse](v)
}

type AdminResponse struct {
	Address   string `json:"address"`
	Identity  string `json:"identity"`
	Username  string `json:"username"`
	CreatedAt int64  `json:"created_at"`
	Deposit   uint64 `json:"deposit"`
	Lamports  uint64 `json:"lamports"`
}

func FromAdminView(v *queries.AdminView) *AdminResponse {
	return copyView[AdminResponse](v)
}

type RemoveAdminResponse struct {
	Identity string `json:"identity"`
	Refund   uint64 `json:"refund"`
}

type CollectionResponse struct {
	Address     string   `json:"address"`
	Owner       string   `json:"owner"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Reference   string   `json:"reference"`
	Price       uint64   `json:"price"`
	SaleStart   int64    `json:"sale_start"`
	SaleEnd     int64    `json:"sale_end"`
	MaxSupply   uint64   `json:"max_supply"`
	TotalSupply uint64   `json:"total_supply"`
	AllowList   []string `json:"allow_list,omitempty"`
}

func FromCollectionView(v *queries.CollectionView) *CollectionResponse {
	return copyView[CollectionResponse](v)
}

type MintResponse struct {
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

type ReservationResponse struct {
	Address     string       `json:"address"`
	ID          uint64       `json:"id"`
	Collection  string       `json:"collection"`
	Name        string       `json:"name"`
	Reference   string       `json:"reference"`
	Price       uint64       `json:"price"`
	CreatedAt   int64        `json:"created_at"`
	Status      string       `json:"status"`
	Settled     bool         `json:"settled"`
	Buyer       *string      `json:"buyer,omitempty"`
	CompletedAt *int64       `json:"completed_at,omitempty"`
	Mint        MintResponse `json:"mint"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return copyView[ReservationResponse](v)
}

type AttributeResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type AssetResponse struct {
	Address     string              `json:"address"`
	ID          uint64              `json:"id"`
	Collection  string              `json:"collection"`
	Name        string              `json:"name"`
	URI         string              `json:"uri"`
	Attributes  []AttributeResponse `json:"attributes,omitempty"`
	Price       uint64              `json:"price"`
	Rank        uint64              `json:"rank"`
	CreatedAt   int64               `json:"created_at"`
	Status      string              `json:"status"`
	Buyer       *string             `json:"buyer,omitempty"`
	CompletedAt *int64              `json:"completed_at,omitempty"`
	Mint        MintResponse        `json:"mint"`
}

func FromAssetView(v *queries.AssetView) *AssetResponse {
	return copyView[AssetResponse](v)
}

type SettlementResponse struct {
	Reservation  string `json:"reservation"`
	Mint         string `json:"mint"`
	Buyer        string `json:"buyer"`
	TokenAccount string `json:"token_account"`
	OwnerNet     uint64 `json:"owner_net"`
	ProtocolFee  uint64 `json:"protocol_fee"`
	TotalSupply  uint64 `json:"total_supply"`
}

func FromSettlementResult(r *commands.SettlementResult) *SettlementResponse {
	return &SettlementResponse{
		Reservation:  r.Reservation.String(),
		Mint:         r.Mint.String(),
		Buyer:        r.Buyer.String(),
		TokenAccount: r.TokenAccount.String(),
		OwnerNet:     r.OwnerNet,
		ProtocolFee:  r.ProtocolFee,
		TotalSupply:  r.TotalSupply,
	}
}

type BalanceResponse struct {
	Address  string `json:"address"`
	Lamports uint64 `json:"lamports"`
	Units    string `json:"units"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return copyView[BalanceResponse](v)
}

type TokenBalanceResponse struct {
	Owner        string `json:"owner"`
	Mint         string `json:"mint"`
	TokenAccount string `json:"token_account"`
	Amount       uint64 `json:"amount"`
}

func FromTokenBalanceView(v *queries.TokenBalanceView) *TokenBalanceResponse {
	return copyView[TokenBalanceResponse](v)
}
