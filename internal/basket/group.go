package basket

import (
	apperrors "github.com/qhato/promoengine/pkg/errors"
	"github.com/qhato/promoengine/internal/money"
)

// ItemGroup is an ordered sequence of Items sharing a currency. It owns its
// items for the duration of evaluation.
type ItemGroup struct {
	items    []Item
	currency money.Currency
}

// NewItemGroup validates that every item's currency matches currency and
// returns a group, or CurrencyMismatch(index, item_ccy, group_ccy) on the
// first offending item.
func NewItemGroup(items []Item, currency money.Currency) (*ItemGroup, error) {
	for i, it := range items {
		if it.price.Currency() != currency {
			return nil, apperrors.CurrencyMismatch(i, it.price.Currency().Code, currency.Code)
		}
	}
	return &ItemGroup{items: items, currency: currency}, nil
}

// Items returns the group's items in order.
func (g *ItemGroup) Items() []Item { return g.items }

// Item returns the item at index, or ItemNotFound(index) if out of range.
func (g *ItemGroup) Item(index int) (Item, error) {
	if index < 0 || index >= len(g.items) {
		return Item{}, apperrors.ItemNotFound(index)
	}
	return g.items[index], nil
}

func (g *ItemGroup) Currency() money.Currency { return g.currency }

func (g *ItemGroup) Len() int { return len(g.items) }

func (g *ItemGroup) IsEmpty() bool { return len(g.items) == 0 }

// Subtotal sums every item's price.
func (g *ItemGroup) Subtotal() (money.Money, error) {
	if g.IsEmpty() {
		return money.Zero(g.currency), nil
	}
	amounts := make([]money.Money, len(g.items))
	for i, it := range g.items {
		amounts[i] = it.price
	}
	return money.Sum(amounts...)
}
