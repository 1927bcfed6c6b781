// Package basket implements Item and ItemGroup from spec §3 (C4), grounded
// in original_source's src/items/mod.rs and src/items/groups.rs.
package basket

import (
	"github.com/qhato/promoengine/internal/arena"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/tagset"
)

// ProductKey is the opaque handle identifying a Product in an external
// meta-map, per spec §9's typed-handle design.
type ProductKey = arena.Key

// Item is a priced, tagged line item. Immutable after construction except
// for its tags, which expose a mutable accessor to support builder-style
// assembly.
type Item struct {
	product ProductKey
	price   money.Money
	tags    tagset.TagCollection
}

// New creates an Item with empty tags.
func New(product ProductKey, price money.Money) Item {
	return WithTags(product, price, tagset.Empty())
}

// WithTags creates an Item with the given tags.
func WithTags(product ProductKey, price money.Money, tags tagset.TagCollection) Item {
	return Item{product: product, price: price, tags: tags}
}

func (i Item) Product() ProductKey { return i.product }

func (i Item) Price() money.Money { return i.price }

func (i Item) Tags() tagset.TagCollection { return i.tags }

// TagsMut returns the tags collection for in-place mutation.
func (i Item) TagsMut() tagset.TagCollection { return i.tags }

// Cheapest returns the lowest-priced item among items, and false if items is
// empty. Ties break on the first item encountered, matching Rust's
// Iterator::min_by_key.
func Cheapest(items []Item) (Item, bool) {
	if len(items) == 0 {
		return Item{}, false
	}
	min := items[0]
	for _, it := range items[1:] {
		if it.price.Minor() < min.price.Minor() {
			min = it
		}
	}
	return min, true
}
