package graph

import (
	"sort"

	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/promotion"
	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// maxCandidateBundles guards against combinatorial blow-up in bundle
// enumeration, mirroring leanlp-BTC-coinjoin's cpsat_solver.go guardrail
// that refuses unconstrained instances above a fixed size rather than
// hanging; the promotion engine targets modest per-layer item counts (spec
// §9's "small, combinatorial" framing), so this is generous, not tight.
const maxCandidateBundles = 5000

// candidate is one feasible bundle a promotion could activate: the item
// indices it covers (within the layer's domain), its pre-discount total,
// and its post-discount total.
type candidate struct {
	items           []int
	originalMinor   int64
	discountedMinor int64
}

func combinations(pool []int, k int) ([][]int, error) {
	var result [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(result) > maxCandidateBundles {
			return
		}
		if len(chosen) == k {
			combo := append([]int(nil), chosen...)
			result = append(result, combo)
			return
		}
		for i := start; i < len(pool); i++ {
			pick(i+1, append(chosen, pool[i]))
		}
	}
	pick(0, nil)
	if len(result) > maxCandidateBundles {
		return nil, apperrors.BuilderFailure(nil, "bundle enumeration exceeded the candidate-count guard")
	}
	return result, nil
}

func qualifyingIndices(domain []int, items []basket.Item, q func(basket.Item) bool) []int {
	var out []int
	for _, idx := range domain {
		if q(items[idx]) {
			out = append(out, idx)
		}
	}
	return out
}

func bundleOriginalTotal(items []basket.Item, indices []int) (money.Money, error) {
	amounts := make([]money.Money, len(indices))
	for i, idx := range indices {
		amounts[i] = items[idx].Price()
	}
	return money.Sum(amounts...)
}

// directDiscountCandidates returns one singleton-bundle candidate per
// qualifying item in domain.
func directDiscountCandidates(domain []int, items []basket.Item, p promotion.DirectDiscount) ([]candidate, error) {
	qualifying := qualifyingIndices(domain, items, func(it basket.Item) bool { return p.Qualification().Matches(it.Tags()) })
	candidates := make([]candidate, 0, len(qualifying))
	for _, idx := range qualifying {
		price := items[idx].Price()
		discounted, err := p.Discount().Apply(price)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{
			items:           []int{idx},
			originalMinor:   price.Minor(),
			discountedMinor: discounted.Minor(),
		})
	}
	return candidates, nil
}

// positionalDiscountCandidates enumerates every size-k subset of qualifying
// items, sorts each ascending by price, and discounts the members at the
// listed positions.
func positionalDiscountCandidates(domain []int, items []basket.Item, p promotion.PositionalDiscount) ([]candidate, error) {
	qualifying := qualifyingIndices(domain, items, func(it basket.Item) bool { return p.Qualification().Matches(it.Tags()) })
	if int(p.Size()) == 0 || int(p.Size()) > len(qualifying) {
		return nil, nil
	}
	combos, err := combinations(qualifying, int(p.Size()))
	if err != nil {
		return nil, err
	}
	discountPositions := make(map[uint16]bool, len(p.Positions()))
	for _, pos := range p.Positions() {
		discountPositions[pos] = true
	}

	candidates := make([]candidate, 0, len(combos))
	for _, combo := range combos {
		ordered := append([]int(nil), combo...)
		sort.Slice(ordered, func(i, j int) bool {
			return items[ordered[i]].Price().Minor() < items[ordered[j]].Price().Minor()
		})
		var originalTotal, discountedTotal int64
		for pos, idx := range ordered {
			price := items[idx].Price()
			originalTotal += price.Minor()
			if discountPositions[uint16(pos)] {
				discounted, err := p.Discount().Apply(price)
				if err != nil {
					return nil, err
				}
				discountedTotal += discounted.Minor()
			} else {
				discountedTotal += price.Minor()
			}
		}
		candidates = append(candidates, candidate{
			items:           ordered,
			originalMinor:   originalTotal,
			discountedMinor: discountedTotal,
		})
	}
	return candidates, nil
}

// mixAndMatchCandidates enumerates item sets admitting a feasible injective
// slot assignment (spec §4.3 constraint 6(a)), discounting the bundle's
// combined total.
func mixAndMatchCandidates(domain []int, items []basket.Item, p promotion.MixAndMatch) ([]candidate, error) {
	slots := p.SlotQualifications()
	eligiblePerSlot := make([][]int, len(slots))
	for s, q := range slots {
		eligiblePerSlot[s] = qualifyingIndices(domain, items, func(it basket.Item) bool { return q.Matches(it.Tags()) })
	}

	seen := make(map[string]bool)
	var out []candidate
	used := make([]bool, len(domain))
	domainIndex := make(map[int]int, len(domain))
	for i, idx := range domain {
		domainIndex[idx] = i
	}

	var assign func(slot int, chosen []int) error
	assign = func(slot int, chosen []int) error {
		if len(out) > maxCandidateBundles {
			return apperrors.BuilderFailure(nil, "mix-and-match enumeration exceeded the candidate-count guard")
		}
		if slot == len(slots) {
			combo := append([]int(nil), chosen...)
			sort.Ints(combo)
			key := keyOf(combo)
			if seen[key] {
				return nil
			}
			seen[key] = true
			total, err := bundleOriginalTotal(items, combo)
			if err != nil {
				return err
			}
			discounted, err := p.Discount().Apply(total)
			if err != nil {
				return err
			}
			out = append(out, candidate{items: combo, originalMinor: total.Minor(), discountedMinor: discounted.Minor()})
			return nil
		}
		for _, idx := range eligiblePerSlot[slot] {
			di, ok := domainIndex[idx]
			if !ok || used[di] {
				continue
			}
			used[di] = true
			if err := assign(slot+1, append(chosen, idx)); err != nil {
				used[di] = false
				return err
			}
			used[di] = false
		}
		return nil
	}
	if err := assign(0, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// tieredCandidate is what tieredThresholdBundle returns: the single
// all-qualifying-items bundle plus, for each tier whose threshold it clears,
// the discounted total that tier would yield; callers build one
// tier-selector variable per clearable tier from it.
type tieredCandidate struct {
	items         []int
	originalMinor int64
	tierMinor     []int64 // discounted total per clearable tier index; -1 if not clearable
}

func tieredThresholdBundle(domain []int, items []basket.Item, p promotion.TieredThreshold) (*tieredCandidate, error) {
	qualifying := qualifyingIndices(domain, items, func(it basket.Item) bool { return p.Qualification().Matches(it.Tags()) })
	if len(qualifying) == 0 {
		return nil, nil
	}
	total, err := bundleOriginalTotal(items, qualifying)
	if err != nil {
		return nil, err
	}
	tierMinor := make([]int64, len(p.Tiers()))
	for i, tier := range p.Tiers() {
		if total.Minor() < tier.ThresholdMinor {
			tierMinor[i] = -1
			continue
		}
		discounted, err := tier.Discount.Apply(total)
		if err != nil {
			return nil, err
		}
		tierMinor[i] = discounted.Minor()
	}
	return &tieredCandidate{items: qualifying, originalMinor: total.Minor(), tierMinor: tierMinor}, nil
}

func keyOf(sortedIndices []int) string {
	b := make([]byte, 0, len(sortedIndices)*4)
	for _, i := range sortedIndices {
		b = append(b, byte(i>>24), byte(i>>16), byte(i>>8), byte(i))
	}
	return string(b)
}
