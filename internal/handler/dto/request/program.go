package request

import (
	"time"

	"asset-factory/internal/domain/asset"
	"asset-factory/internal/domain/grant"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/usecase/commands"

	"github.com/mr-tron/base58"
)

type SetLockRequest struct {
	Locked *bool `json:"locked" binding:"required"`
}

type CreateAdminRequest struct {
	Identity address.Address `json:"identity" binding:"required"`
	Username string          `json:"username" binding:"required"`
}

type CreateCollectionRequest struct {
	Name      string            `json:"name" binding:"required"`
	Symbol    string            `json:"symbol" binding:"required"`
	Reference string            `json:"reference" binding:"required"`
	Price     string            `json:"price" binding:"required"`
	SaleStart time.Time         `json:"sale_start" binding:"required"`
	SaleEnd   time.Time         `json:"sale_end" binding:"required,gtefield=SaleStart"`
	MaxSupply uint64            `json:"max_supply" binding:"required"`
	AllowList []address.Address `json:"allow_list"`
}

func (r *CreateCollectionRequest) ToInput() commands.CreateCollectionInput {
	return commands.CreateCollectionInput{
		Name:      r.Name,
		Symbol:    r.Symbol,
		Reference: r.Reference,
		Price:     r.Price,
		SaleStart: r.SaleStart,
		SaleEnd:   r.SaleEnd,
		MaxSupply: r.MaxSupply,
		AllowList: r.AllowList,
	}
}

type CreateReservationRequest struct {
	ID         uint64 `json:"id"`
	DisplayURI string `json:"display_uri" binding:"required"`
}

type GrantRequest struct {
	Signer        address.Address `json:"signer" binding:"required"`
	Recipient     address.Address `json:"recipient" binding:"required"`
	Collection    address.Address `json:"collection" binding:"required"`
	ReservationID uint64          `json:"reservation_id"`
	Nonce         uint64          `json:"nonce"`
	ExpiresAt     time.Time       `json:"expires_at" binding:"required"`
	// Base58 encoded ed25519 signature over the grant message.
	Signature string `json:"signature" binding:"required"`
}

func (r *GrantRequest) ToDomain() (*grant.SignedGrant, error) {
	sig, err := base58.Decode(r.Signature)
	if err != nil {
		return nil, err
	}
	return &grant.SignedGrant{
		Signer:        r.Signer,
		Recipient:     r.Recipient,
		Collection:    r.Collection,
		ReservationID: r.ReservationID,
		Nonce:         r.Nonce,
		ExpiresAt:     r.ExpiresAt,
		Signature:     sig,
	}, nil
}

type AirdropRequest struct {
	Buyer address.Address `json:"buyer" binding:"required"`
	Grant GrantRequest    `json:"grant"`
}

type AttributeRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type CreateAssetRequest struct {
	ID         uint64             `json:"id"`
	Name       string             `json:"name" binding:"required"`
	URI        string             `json:"uri" binding:"required"`
	Attributes []AttributeRequest `json:"attributes" binding:"omitempty,dive"`
}

func (r *CreateAssetRequest) ToInput(owner address.Address) commands.CreateAssetInput {
	attrs := make([]asset.Attribute, len(r.Attributes))
	for i, a := range r.Attributes {
		attrs[i] = asset.Attribute{Key: a.Key, Value: a.Value}
	}
	return commands.CreateAssetInput{
		Owner:      owner,
		ID:         r.ID,
		Name:       r.Name,
		URI:        r.URI,
		Attributes: attrs,
	}
}

type FinalizeAssetRequest struct {
	Buyer address.Address `json:"buyer" binding:"required"`
}

type FaucetRequest struct {
	To       address.Address `json:"to" binding:"required"`
	Lamports uint64          `json:"lamports" binding:"required"`
}
