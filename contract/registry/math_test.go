package registry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPrice(t *testing.T) {
	total, err := TotalPrice(100, 10)
	require.NoError(t, err)
	assert.Equal(t, Amount(1000), total)

	total, err = TotalPrice(1, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, Amount(math.MaxInt64), total)
}

func TestTotalPriceOverflow(t *testing.T) {
	_, err := TotalPrice(math.MaxInt64, 2)
	assert.ErrorIs(t, err, ErrAmountOverflow)

	_, err = TotalPrice(math.MaxInt64, math.MaxInt64)
	assert.ErrorIs(t, err, ErrAmountOverflow)

	_, err = TotalPrice(-1, 10)
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestSplitFeeExactness(t *testing.T) {
	// 1% of 1000 is exactly 10.
	fee, toOwner := SplitFee(1000, 100)
	assert.Equal(t, Amount(10), fee)
	assert.Equal(t, Amount(990), toOwner)

	// Sub-unit fees round down to zero, the owner gets everything.
	fee, toOwner = SplitFee(99, 100)
	assert.Equal(t, Amount(0), fee)
	assert.Equal(t, Amount(99), toOwner)

	// The split never leaks a unit in either direction.
	for _, total := range []Amount{0, 1, 7, 99, 100, 101, 9999, 10000, 123456789} {
		for _, bps := range []uint64{0, 1, 100, 2500, 9999, 10000} {
			fee, toOwner := SplitFee(total, bps)
			assert.Equal(t, total, fee+toOwner, "total %d bps %d", total, bps)
			assert.LessOrEqual(t, fee, total)
		}
	}

	// Full fee take.
	fee, toOwner = SplitFee(1000, 10000)
	assert.Equal(t, Amount(1000), fee)
	assert.Equal(t, Amount(0), toOwner)
}

func TestBadgeFor(t *testing.T) {
	cfg := GlobalConfig{ContributorMin: 100, ChampionMin: 1000}
	tiers := cfg.BadgeTiers()

	assert.Equal(t, BadgeNovice, BadgeFor(0, tiers))
	assert.Equal(t, BadgeNovice, BadgeFor(99, tiers))
	assert.Equal(t, BadgeContributor, BadgeFor(100, tiers))
	assert.Equal(t, BadgeContributor, BadgeFor(999, tiers))
	assert.Equal(t, BadgeChampion, BadgeFor(1000, tiers))
	assert.Equal(t, BadgeChampion, BadgeFor(math.MaxUint64, tiers))
}

func TestKnownBadge(t *testing.T) {
	assert.True(t, KnownBadge(BadgeContributor))
	assert.True(t, KnownBadge(BadgeChampion))
	assert.False(t, KnownBadge(BadgeNovice))
	assert.False(t, KnownBadge("Legend"))
	assert.False(t, KnownBadge(""))
}
