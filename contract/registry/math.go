package registry

import (
	"errors"
	"math"

	"github.com/holiman/uint256"
)

// BpsDenominator is the basis point scale: 10000 bps = 100%.
const BpsDenominator = 10000

var ErrAmountOverflow = errors.New("amount overflows int64")

// TotalPrice multiplies credit count by unit price in 256-bit space so the
// product can never silently wrap; callers get a hard error instead.
func TotalPrice(amount, price Amount) (Amount, error) {
	if amount < 0 || price < 0 {
		return 0, ErrAmountOverflow
	}
	total := new(uint256.Int).Mul(uint256.NewInt(uint64(amount)), uint256.NewInt(uint64(price)))
	if !total.IsUint64() || total.Uint64() > math.MaxInt64 {
		return 0, ErrAmountOverflow
	}
	return Amount(total.Uint64()), nil
}

// SplitFee computes fee = floor(total * feeBps / 10000) and the owner share
// as the exact remainder, so fee + toOwner == total with no rounding leakage.
// feeBps must have been validated <= BpsDenominator when configured.
func SplitFee(total Amount, feeBps uint64) (fee Amount, toOwner Amount) {
	f := new(uint256.Int).Mul(uint256.NewInt(uint64(total)), uint256.NewInt(feeBps))
	f.Div(f, uint256.NewInt(BpsDenominator))
	fee = Amount(f.Uint64())
	return fee, total - fee
}

// BadgeFor resolves the badge label for a point total by scanning the tier
// table highest threshold first, defaulting to Novice below every tier.
func BadgeFor(points uint64, tiers []BadgeTier) string {
	for _, t := range tiers {
		if points >= t.Threshold {
			return t.Label
		}
	}
	return BadgeNovice
}

// KnownBadge reports whether label names a tier with a configurable
// threshold. Novice is the floor and has none.
func KnownBadge(label string) bool {
	return label == BadgeContributor || label == BadgeChampion
}
