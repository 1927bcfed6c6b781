// Package promotion implements PromotionBudget and the four typed promotion
// variants of spec §3/§4 (C5), grounded in original_source's
// crates/core/src/promotions/budget.rs, promotions/mod.rs, and
// promotions/types/positional_discount.rs.
package promotion

import "github.com/qhato/promoengine/internal/money"

// Key identifies a promotion. Every promotion variant carries one.
type Key int

// Budget bounds how many times a promotion may apply: application_limit caps
// the count of applications (one discounted item for DirectDiscount, one
// bundle for the others); monetary_limit caps the cumulative discount value.
type Budget struct {
	applicationLimit *uint32
	monetaryLimit    *money.Money
}

// Unlimited returns a budget with no constraints.
func Unlimited() Budget {
	return Budget{}
}

// WithApplicationLimit returns a budget bounded only by application count.
func WithApplicationLimit(limit uint32) Budget {
	return Budget{applicationLimit: &limit}
}

// WithMonetaryLimit returns a budget bounded only by cumulative discount
// value.
func WithMonetaryLimit(limit money.Money) Budget {
	return Budget{monetaryLimit: &limit}
}

// WithBothLimits returns a budget bounded by both application count and
// cumulative discount value.
func WithBothLimits(limit uint32, monetary money.Money) Budget {
	return Budget{applicationLimit: &limit, monetaryLimit: &monetary}
}

// HasConstraints reports whether either limit is set.
func (b Budget) HasConstraints() bool {
	return b.applicationLimit != nil || b.monetaryLimit != nil
}

// ApplicationLimit returns the application limit and whether it is set.
func (b Budget) ApplicationLimit() (uint32, bool) {
	if b.applicationLimit == nil {
		return 0, false
	}
	return *b.applicationLimit, true
}

// MonetaryLimit returns the monetary limit and whether it is set.
func (b Budget) MonetaryLimit() (money.Money, bool) {
	if b.monetaryLimit == nil {
		return money.Money{}, false
	}
	return *b.monetaryLimit, true
}
