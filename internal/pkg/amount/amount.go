package amount

import (
	"errors"

	"github.com/shopspring/decimal"
)

// LamportsPerUnit is the number of base units in one whole currency unit.
const LamportsPerUnit = 1_000_000_000

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrAmountOverflow = errors.New("amount exceeds base unit range")
	ErrInvalidAmount  = errors.New("invalid amount")
)

var (
	perUnit = decimal.NewFromInt(LamportsPerUnit)
	maxUint = decimal.NewFromUint64(^uint64(0))
)

// ToLamports converts a decimal string in whole units to base units.
// Fractions below one base unit are truncated toward zero.
func ToLamports(units string) (uint64, error) {
	d, err := decimal.NewFromString(units)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromDecimal(d)
}

func FromDecimal(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	base := d.Mul(perUnit).Truncate(0)
	if base.GreaterThan(maxUint) {
		return 0, ErrAmountOverflow
	}
	return base.BigInt().Uint64(), nil
}

// MustLamports is for configuration defaults that are known to be valid.
func MustLamports(units string) uint64 {
	v, err := ToLamports(units)
	if err != nil {
		panic(err)
	}
	return v
}

// Units renders base units back as a decimal string in whole units.
func Units(lamports uint64) string {
	return decimal.NewFromUint64(lamports).Div(perUnit).String()
}
