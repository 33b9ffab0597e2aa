package collection

import "errors"

const (
	MaxNameLength      = 32
	MaxSymbolLength    = 10
	MaxReferenceLength = 64
	MaxAllowListSize   = 256
)

var (
	ErrEmptyName         = errors.New("collection name cannot be empty")
	ErrNameTooLong       = errors.New("collection name exceeds maximum length")
	ErrEmptySymbol       = errors.New("collection symbol cannot be empty")
	ErrSymbolTooLong     = errors.New("collection symbol exceeds maximum length")
	ErrReferenceTooLong  = errors.New("collection reference exceeds maximum length")
	ErrInvalidSaleWindow = errors.New("sale start must be positive and before sale end")
	ErrInvalidMaxSupply  = errors.New("max supply must be greater than zero")
	ErrAllowListTooLarge = errors.New("allow-list exceeds maximum size")
	ErrInvalidOwner      = errors.New("collection owner cannot be empty")
)
