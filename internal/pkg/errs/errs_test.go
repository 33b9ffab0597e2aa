//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"asset-factory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	cause := errors.New("disk full")
	tests := []struct {
		name string
		err  error
		want *errs.ProgramError
	}{
		{name: "bare code", err: errs.ErrSoldOut, want: errs.ErrSoldOut},
		{name: "wrapped code", err: errs.Wrap(errs.ErrNotFound, "loading admin"), want: errs.ErrNotFound},
		{name: "reject", err: errs.Reject(errs.ErrExpired, "sale ended at %d", 10), want: errs.ErrExpired},
		{name: "reject with cause", err: errs.RejectCause(errs.ErrInvalidArgument, cause), want: errs.ErrInvalidArgument},
		{name: "marked", err: errs.Mark(cause, errs.ErrInsufficientFunds), want: errs.ErrInsufficientFunds},
		{name: "plain error", err: cause},
		{name: "nil", err: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := errs.CodeOf(tt.err)
			assert.Equal(t, tt.want != nil, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRejectCause_MatchesBoth(t *testing.T) {
	cause := errors.New("bad base58")
	err := errs.RejectCause(errs.ErrInvalidArgument, cause)

	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "invalid argument: bad base58", err.Error())
	assert.Equal(t, "invalid argument", errs.RejectCause(errs.ErrInvalidArgument, nil).Error())
}

func TestCodes_AreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range errs.Codes() {
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
	}
	assert.True(t, seen["ProtocolLocked"])
}
