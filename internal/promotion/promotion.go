package promotion

import (
	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/discount"
	"github.com/qhato/promoengine/internal/qualify"
)

// Promotion is the closed sum of promotion variants the ILP builder dispatches
// on. Every variant carries a stable Key, an is_applicable prefilter, and a
// Budget.
type Promotion interface {
	Key() Key
	IsApplicable(group *basket.ItemGroup) bool
	Budget() Budget
}

// anyItemMatches is the cheap "at least one item satisfies qualification"
// prefilter shared by every variant, per §4.2.
func anyItemMatches(group *basket.ItemGroup, q qualify.Qualification) bool {
	for _, item := range group.Items() {
		if q.Matches(item.Tags()) {
			return true
		}
	}
	return false
}

// DirectDiscount discounts one qualifying item per application.
type DirectDiscount struct {
	key           Key
	qualification qualify.Qualification
	discount      discount.SimpleDiscount
	budget        Budget
}

func NewDirectDiscount(key Key, qualification qualify.Qualification, d discount.SimpleDiscount, budget Budget) DirectDiscount {
	return DirectDiscount{key: key, qualification: qualification, discount: d, budget: budget}
}

func (p DirectDiscount) Key() Key { return p.key }
func (p DirectDiscount) IsApplicable(group *basket.ItemGroup) bool {
	return anyItemMatches(group, p.qualification)
}
func (p DirectDiscount) Budget() Budget                        { return p.budget }
func (p DirectDiscount) Qualification() qualify.Qualification   { return p.qualification }
func (p DirectDiscount) Discount() discount.SimpleDiscount      { return p.discount }

// PositionalDiscount forms bundles of exactly Size qualifying items and
// discounts the members at Positions (0-based, after ascending-price sort
// within the bundle).
type PositionalDiscount struct {
	key           Key
	qualification qualify.Qualification
	size          uint16
	positions     []uint16
	discount      discount.SimpleDiscount
	budget        Budget
}

func NewPositionalDiscount(key Key, qualification qualify.Qualification, size uint16, positions []uint16, d discount.SimpleDiscount, budget Budget) PositionalDiscount {
	return PositionalDiscount{key: key, qualification: qualification, size: size, positions: positions, discount: d, budget: budget}
}

func (p PositionalDiscount) Key() Key { return p.key }
func (p PositionalDiscount) IsApplicable(group *basket.ItemGroup) bool {
	return anyItemMatches(group, p.qualification)
}
func (p PositionalDiscount) Budget() Budget                      { return p.budget }
func (p PositionalDiscount) Qualification() qualify.Qualification { return p.qualification }
func (p PositionalDiscount) Size() uint16                        { return p.size }
func (p PositionalDiscount) Positions() []uint16                 { return p.positions }
func (p PositionalDiscount) Discount() discount.SimpleDiscount    { return p.discount }

// MixAndMatch forms bundles of exactly len(SlotQualifications) items where
// item i (after a feasible slot assignment) satisfies SlotQualifications[i].
type MixAndMatch struct {
	key                Key
	slotQualifications []qualify.Qualification
	discount           discount.SimpleDiscount
	budget             Budget
}

func NewMixAndMatch(key Key, slotQualifications []qualify.Qualification, d discount.SimpleDiscount, budget Budget) MixAndMatch {
	return MixAndMatch{key: key, slotQualifications: slotQualifications, discount: d, budget: budget}
}

func (p MixAndMatch) Key() Key { return p.key }
func (p MixAndMatch) IsApplicable(group *basket.ItemGroup) bool {
	for _, q := range p.slotQualifications {
		if anyItemMatches(group, q) {
			return true
		}
	}
	return false
}
func (p MixAndMatch) Budget() Budget                            { return p.budget }
func (p MixAndMatch) SlotQualifications() []qualify.Qualification { return p.slotQualifications }
func (p MixAndMatch) Size() uint16                              { return uint16(len(p.slotQualifications)) }
func (p MixAndMatch) Discount() discount.SimpleDiscount          { return p.discount }

// Tier is one (threshold, discount) rung of a TieredThreshold promotion.
type Tier struct {
	ThresholdMinor int64
	Discount       discount.SimpleDiscount
}

// TieredThreshold forms a single bundle of all qualifying items in its layer
// and activates the highest tier whose threshold the bundle subtotal clears.
type TieredThreshold struct {
	key           Key
	qualification qualify.Qualification
	tiers         []Tier
	budget        Budget
}

func NewTieredThreshold(key Key, qualification qualify.Qualification, tiers []Tier, budget Budget) TieredThreshold {
	return TieredThreshold{key: key, qualification: qualification, tiers: tiers, budget: budget}
}

func (p TieredThreshold) Key() Key { return p.key }
func (p TieredThreshold) IsApplicable(group *basket.ItemGroup) bool {
	return anyItemMatches(group, p.qualification)
}
func (p TieredThreshold) Budget() Budget                      { return p.budget }
func (p TieredThreshold) Qualification() qualify.Qualification { return p.qualification }
func (p TieredThreshold) Tiers() []Tier                       { return p.tiers }
