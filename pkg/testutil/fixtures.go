package testutil

import (
	"github.com/qhato/promoengine/internal/arena"
	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/tagset"
)

// FixtureItems builds a small priced, tagged basket from (tags, priceMinor)
// pairs, sharing one products arena, for tests that need an ItemGroup
// without hand-rolling arena plumbing every time.
func FixtureItems(currency money.Currency, specs ...FixtureItemSpec) []basket.Item {
	products := arena.New[string]()
	items := make([]basket.Item, 0, len(specs))
	for _, s := range specs {
		key := products.Insert(s.Name)
		price := money.New(s.PriceMinor, currency)
		if len(s.Tags) == 0 {
			items = append(items, basket.New(key, price))
			continue
		}
		items = append(items, basket.WithTags(key, price, tagset.New(s.Tags...)))
	}
	return items
}

// FixtureItemSpec describes one FixtureItems entry.
type FixtureItemSpec struct {
	Name       string
	PriceMinor int64
	Tags       []string
}

// FixtureItemGroup is FixtureItems plus NewItemGroup, for tests that don't
// care about construction errors.
func FixtureItemGroup(currency money.Currency, specs ...FixtureItemSpec) *basket.ItemGroup {
	group, err := basket.NewItemGroup(FixtureItems(currency, specs...), currency)
	if err != nil {
		panic(err)
	}
	return group
}
