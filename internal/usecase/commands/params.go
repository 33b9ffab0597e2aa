package commands

import (
	"fmt"
	"time"

	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/amount"
	"asset-factory/internal/pkg/config"
)

// Params are the program constants resolved to addresses and base units.
type Params struct {
	RootAuthority           address.Address
	ProtocolPayer           address.Address
	ProtocolFee             uint64
	AirdropFee              uint64
	AdminDeposit            uint64
	AdminActivationCooldown time.Duration
	GrantMaxTTL             time.Duration
}

func NewParams(cfg config.ProgramConfig) (Params, error) {
	root, err := address.Parse(cfg.RootAuthority)
	if err != nil {
		return Params{}, fmt.Errorf("ROOT_AUTHORITY: %w", err)
	}
	payer, err := address.Parse(cfg.ProtocolPayer)
	if err != nil {
		return Params{}, fmt.Errorf("PROTOCOL_PAYER: %w", err)
	}
	protocolFee, err := amount.ToLamports(cfg.ProtocolFee)
	if err != nil {
		return Params{}, fmt.Errorf("PROTOCOL_FEE: %w", err)
	}
	airdropFee, err := amount.ToLamports(cfg.AirdropFee)
	if err != nil {
		return Params{}, fmt.Errorf("AIRDROP_FEE: %w", err)
	}
	deposit, err := amount.ToLamports(cfg.AdminDeposit)
	if err != nil {
		return Params{}, fmt.Errorf("ADMIN_DEPOSIT: %w", err)
	}
	return Params{
		RootAuthority:           root,
		ProtocolPayer:           payer,
		ProtocolFee:             protocolFee,
		AirdropFee:              airdropFee,
		AdminDeposit:            deposit,
		AdminActivationCooldown: cfg.AdminActivationCooldown,
		GrantMaxTTL:             cfg.GrantMaxTTL,
	}, nil
}
