//go:build unit

package amount_test

import (
	"testing"

	"asset-factory/internal/pkg/amount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLamports(t *testing.T) {
	tests := []struct {
		in    string
		want  uint64
		errIs error
	}{
		{in: "1", want: 1_000_000_000},
		{in: "0.1", want: 100_000_000},
		{in: "0.00103", want: 1_030_000},
		{in: "0.0000000019", want: 1},
		{in: "0", want: 0},
		{in: "18446744073.709551615", want: ^uint64(0)},
		{in: "18446744073.709551616", errIs: amount.ErrAmountOverflow},
		{in: "-1", errIs: amount.ErrNegativeAmount},
		{in: "one", errIs: amount.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := amount.ToLamports(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnits(t *testing.T) {
	assert.Equal(t, "0.075", amount.Units(75_000_000))
	assert.Equal(t, "2", amount.Units(2_000_000_000))
	assert.Equal(t, "0", amount.Units(0))
	assert.Panics(t, func() { amount.MustLamports("x") })
}
