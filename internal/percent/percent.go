// Package percent implements the dimensionless exact-rational Percentage
// type required by spec §3, atop shopspring/decimal (the teacher's own
// fixed-point library, used throughout qhato-ecommerce/internal/offer for
// discount arithmetic), with round-half-away-from-zero semantics pinned down
// by original_source's rust_decimal RoundingStrategy::MidpointAwayFromZero.
package percent

import (
	"math"

	"github.com/shopspring/decimal"

	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// Percentage is a fixed-point fraction, e.g. 0.20 represents 20%.
type Percentage struct {
	d decimal.Decimal
}

var half = decimal.NewFromFloat(0.5)

// New constructs a Percentage from a decimal.Decimal fraction (0.20 = 20%).
func New(d decimal.Decimal) Percentage { return Percentage{d: d} }

// FromFloat constructs a Percentage from a float64 fraction.
func FromFloat(f float64) Percentage { return Percentage{d: decimal.NewFromFloat(f)} }

// Zero is the 0% percentage.
var Zero = Percentage{d: decimal.Zero}

// Complement returns 1 - p, used to turn "take p% off" into the multiplier
// applied directly to the original price.
func (p Percentage) Complement() Percentage {
	return Percentage{d: decimal.NewFromInt(1).Sub(p.d)}
}

// Decimal returns the underlying fraction.
func (p Percentage) Decimal() decimal.Decimal { return p.d }

// roundHalfAwayFromZero rounds d to the nearest integer, ties rounding away
// from zero, independent of shopspring/decimal's own (unspecified here)
// Round() tie-breaking — sign(d) * floor(abs(d) + 0.5).
func roundHalfAwayFromZero(d decimal.Decimal) decimal.Decimal {
	abs := d.Abs()
	rounded := abs.Add(half).Floor()
	if d.IsNegative() {
		return rounded.Neg()
	}
	return rounded
}

var (
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
	minInt64Dec = decimal.NewFromInt(math.MinInt64)
)

// OfMinor returns round_half_away_from_zero(p * minor) as a 64-bit signed
// integer, or PercentConversion if the result does not fit in int64.
func (p Percentage) OfMinor(minor int64) (int64, error) {
	product := decimal.NewFromInt(minor).Mul(p.d)
	rounded := roundHalfAwayFromZero(product)
	if rounded.GreaterThan(maxInt64Dec) || rounded.LessThan(minInt64Dec) {
		return 0, apperrors.PercentConversion("percent_of_minor result out of int64 range")
	}
	return rounded.IntPart(), nil
}
