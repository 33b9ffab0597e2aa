//go:build unit

package asset_test

import (
	"strings"
	"testing"
	"time"

	"asset-factory/internal/domain/asset"
	"asset-factory/internal/domain/collection"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/errs"
	"asset-factory/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func soldCollection(t *testing.T, sold int) *collection.Collection {
	t.Helper()
	col, err := builder.NewCollectionBuilder(builder.Addr("owner")).WithPrice("3").BuildDomain()
	require.NoError(t, err)
	for range sold {
		require.NoError(t, col.RecordSale())
	}
	return col
}

func TestNewAsset(t *testing.T) {
	attrs := []asset.Attribute{{Key: "background", Value: "teal"}, {Key: "eyes", Value: "laser"}}

	t.Run("ranks by units sold", func(t *testing.T) {
		col := soldCollection(t, 3)
		a, err := asset.NewAsset(col, 42, "  Genesis #42 ", "https://assets.example/42.json", attrs, now)
		require.NoError(t, err)

		assert.Equal(t, uint64(42), a.ID())
		assert.Equal(t, "Genesis #42", a.Name())
		assert.Equal(t, uint64(3), a.Rank())
		assert.Equal(t, uint64(3_000_000_000), a.Price())
		assert.Equal(t, asset.StatusReserved, a.Status())
		assert.Equal(t, address.Asset(address.Collection(builder.Addr("owner")), 42), a.Address())
		if diff := cmp.Diff(attrs, a.Attributes()); diff != "" {
			t.Errorf("attributes mismatch (-want +got):\n%s", diff)
		}
	})

	tooMany := make([]asset.Attribute, asset.MaxAttributes+1)
	for i := range tooMany {
		tooMany[i] = asset.Attribute{Key: "k", Value: "v"}
	}
	tests := []struct {
		name  string
		aName string
		uri   string
		attrs []asset.Attribute
		errIs error
	}{
		{name: "empty name", aName: " ", errIs: asset.ErrEmptyName},
		{name: "name over limit", aName: strings.Repeat("a", asset.MaxNameLength+1), errIs: asset.ErrNameTooLong},
		{name: "uri over limit", aName: "ok", uri: strings.Repeat("u", asset.MaxURILength+1), errIs: asset.ErrURITooLong},
		{name: "too many attributes", aName: "ok", attrs: tooMany, errIs: asset.ErrTooManyAttributes},
		{name: "empty attribute key", aName: "ok", attrs: []asset.Attribute{{Value: "v"}}, errIs: asset.ErrInvalidAttribute},
		{name: "attribute value over limit", aName: "ok", attrs: []asset.Attribute{{Key: "k", Value: strings.Repeat("v", asset.MaxAttributeLength+1)}}, errIs: asset.ErrInvalidAttribute},
		{name: "no attributes", aName: "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := asset.NewAsset(soldCollection(t, 0), 1, tt.aName, tt.uri, tt.attrs, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAsset_Complete(t *testing.T) {
	buyer := builder.Addr("buyer")
	a, err := asset.NewAsset(soldCollection(t, 1), 9, "Genesis #9", "", nil, now)
	require.NoError(t, err)

	assert.ErrorIs(t, a.Complete(address.Zero, now), asset.ErrInvalidBuyer)

	done := now.Add(time.Hour)
	require.NoError(t, a.Complete(buyer, done))
	assert.Equal(t, asset.StatusCompleted, a.Status())
	assert.Equal(t, buyer, a.Buyer())
	assert.Equal(t, done, a.CompletedAt())
	assert.Equal(t, uint64(9), a.ID())
	assert.Equal(t, uint64(1), a.Rank())

	assert.ErrorIs(t, a.Complete(buyer, done), errs.ErrAssetCompleted)
}

func TestReconstructAsset(t *testing.T) {
	_, err := asset.ReconstructAsset(1, builder.Addr("c"), "n", "", nil, 1, 0, now, asset.Status(""), address.Zero, time.Time{})
	assert.ErrorIs(t, err, asset.ErrInvalidStatus)
}
