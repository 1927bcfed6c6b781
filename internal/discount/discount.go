// Package discount implements SimpleDiscount (spec §3/§4.5, C6), grounded in
// original_source's crates/core/src/discounts/mod.rs, adapted from a free
// percent_of_minor function plus an enum into a Go interface of discount
// variants each exposing Apply.
package discount

import (
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/percent"
	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// SimpleDiscount reduces a price to a discounted price.
type SimpleDiscount interface {
	// Apply returns the discounted price for the given price. price and the
	// discount's own currency (where applicable) must agree; mismatches
	// surface as CurrencyMismatch.
	Apply(price money.Money) (money.Money, error)

	// Validate reports InvalidDiscount if the discount is not well-formed
	// independent of any price it might be applied to (e.g. a negative
	// AmountOverride).
	Validate() error
}

// PercentageOff multiplies the price by (1 − percentage), rounding
// half-away-from-zero.
type PercentageOff struct {
	Percentage percent.Percentage
}

func (d PercentageOff) Apply(price money.Money) (money.Money, error) {
	minor, err := d.Percentage.Complement().OfMinor(price.Minor())
	if err != nil {
		return money.Money{}, err
	}
	return money.New(minor, price.Currency()), nil
}

func (d PercentageOff) Validate() error { return nil }

// AmountOverride replaces the price with a fixed amount. The amount must
// already be non-negative; a negative override is InvalidDiscount.
type AmountOverride struct {
	Amount money.Money
}

func (d AmountOverride) Apply(price money.Money) (money.Money, error) {
	if err := d.Validate(); err != nil {
		return money.Money{}, err
	}
	if d.Amount.Currency() != price.Currency() {
		return money.Money{}, apperrors.CurrencyMismatch(0, d.Amount.Currency().Code, price.Currency().Code)
	}
	return d.Amount, nil
}

func (d AmountOverride) Validate() error {
	if d.Amount.IsNegative() {
		return apperrors.InvalidDiscount("amount_override must not be negative")
	}
	return nil
}

// AmountOff subtracts a fixed amount from the price, clipped at zero.
type AmountOff struct {
	Amount money.Money
}

func (d AmountOff) Apply(price money.Money) (money.Money, error) {
	return price.SubClampedAtZero(d.Amount)
}

func (d AmountOff) Validate() error { return nil }
