// Package money implements minor-unit integer money with a currency tag and
// checked arithmetic, mirroring the discipline of qhato-ecommerce's decimal
// handling but fixed to integer minor units as required by the ILP builder's
// numerical contract (no fractional coefficients ever reach the solver).
package money

import (
	"fmt"
	"math"

	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// Currency identifies a currency by its ISO 4217 alpha code.
type Currency struct {
	Code string
}

var (
	GBP = Currency{Code: "GBP"}
	USD = Currency{Code: "USD"}
	EUR = Currency{Code: "EUR"}
)

// Money is a signed 64-bit minor-unit amount tagged with a currency.
// Equality and ordering are only defined between amounts of the same currency.
type Money struct {
	minor    int64
	currency Currency
}

// New constructs a Money value from a minor-unit amount.
func New(minor int64, currency Currency) Money {
	return Money{minor: minor, currency: currency}
}

// Zero returns the zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{minor: 0, currency: currency}
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 { return m.minor }

// Currency returns the amount's currency.
func (m Money) Currency() Currency { return m.currency }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.minor < 0 }

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m.minor == 0 }

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.minor, m.currency.Code)
}

func sameCurrency(a, b Money) error {
	if a.currency != b.currency {
		return apperrors.CurrencyMismatch(0, b.currency.Code, a.currency.Code)
	}
	return nil
}

// Add returns a+b, failing with CurrencyMismatch or ArithmeticOverflow.
func (a Money) Add(b Money) (Money, error) {
	if err := sameCurrency(a, b); err != nil {
		return Money{}, err
	}
	if b.minor > 0 && a.minor > math.MaxInt64-b.minor {
		return Money{}, apperrors.ArithmeticOverflow("money addition overflow")
	}
	if b.minor < 0 && a.minor < math.MinInt64-b.minor {
		return Money{}, apperrors.ArithmeticOverflow("money addition overflow")
	}
	return Money{minor: a.minor + b.minor, currency: a.currency}, nil
}

// Sub returns a-b, failing with CurrencyMismatch or ArithmeticOverflow.
func (a Money) Sub(b Money) (Money, error) {
	if err := sameCurrency(a, b); err != nil {
		return Money{}, err
	}
	if b.minor == math.MinInt64 {
		return Money{}, apperrors.ArithmeticOverflow("money subtraction overflow")
	}
	return a.Add(Money{minor: -b.minor, currency: b.currency})
}

// SubClampedAtZero returns a-b, clamped to zero rather than going negative,
// used by AmountOff discounts per spec §4.5's clipping rule.
func (a Money) SubClampedAtZero(b Money) (Money, error) {
	result, err := a.Sub(b)
	if err != nil {
		return Money{}, err
	}
	if result.IsNegative() {
		return Zero(a.currency), nil
	}
	return result, nil
}

// MulScalar returns a*n, failing with ArithmeticOverflow.
func (a Money) MulScalar(n int64) (Money, error) {
	if a.minor == 0 || n == 0 {
		return Zero(a.currency), nil
	}
	result := a.minor * n
	if result/n != a.minor {
		return Money{}, apperrors.ArithmeticOverflow("money multiplication overflow")
	}
	return Money{minor: result, currency: a.currency}, nil
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than b.
// Panics if currencies differ — callers must validate currency alignment via
// ItemGroup construction before comparing amounts, same as the original's
// typed-error-at-construction discipline.
func (a Money) Compare(b Money) int {
	if a.currency != b.currency {
		panic("money: Compare called across currencies")
	}
	switch {
	case a.minor < b.minor:
		return -1
	case a.minor > b.minor:
		return 1
	default:
		return 0
	}
}

func (a Money) LessThan(b Money) bool    { return a.Compare(b) < 0 }
func (a Money) GreaterThan(b Money) bool { return a.Compare(b) > 0 }
func (a Money) Equal(b Money) bool       { return a.currency == b.currency && a.minor == b.minor }

// Sum adds a sequence of amounts, all of which must share a currency.
func Sum(amounts ...Money) (Money, error) {
	if len(amounts) == 0 {
		return Money{}, nil
	}
	total := Zero(amounts[0].currency)
	for _, a := range amounts {
		var err error
		total, err = total.Add(a)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
