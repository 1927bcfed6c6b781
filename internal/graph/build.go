package graph

import (
	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/ilp"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/promotion"
	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// FullPriceFact records that item settled at full price in some layer.
type FullPriceFact struct {
	ItemIndex int
	Var       ilp.VarID
	Price     money.Money
}

// ApplicationFact records one promotion-variable candidate created anywhere
// in the graph, settling or not; spec §4.6 emits a receipt application for
// every activated one. Settles distinguishes the two ILP coefficient shapes
// of spec §4.3: when true, Discounted is the item's literal final price for
// this layer (the objective coefficient used was Discounted itself); when
// false, this layer only contributes the saving delta (Discounted minus
// Original, always ≤ 0) on top of whatever settles further down the graph —
// Decode must add that delta, not the literal Discounted amount, or a
// Participating-edge item that stacks across two layers gets billed twice.
type ApplicationFact struct {
	PromotionKey promotion.Key
	Layer        LayerKey
	Var          ilp.VarID
	Items        []int
	Original     money.Money
	Discounted   money.Money
	Settles      bool
}

// Decoder holds everything needed to translate a solved Assignment back
// into a LayeredResult/Receipt.
type Decoder struct {
	Items          *basket.ItemGroup
	FullPriceFacts []FullPriceFact
	Applications   []ApplicationFact
}

type membership struct {
	constant bool // true => always present (root)
	v        ilp.VarID
	hasVar   bool
}

type layerItemVars struct {
	x      ilp.VarID
	hasX   bool
	cov    ilp.VarID
	hasCov bool
}

// Formulate walks graph in topological order, assembling a single ilp.Problem
// covering every layer, per spec §4.3/§4.4. It returns the problem plus a
// Decoder capable of turning a solved Assignment into a receipt.
func Formulate(g *Graph, items *basket.ItemGroup, observer ilp.Observer) (*ilp.Problem, *Decoder, error) {
	order, err := g.TopoSort()
	if err != nil {
		return nil, nil, err
	}
	if items.IsEmpty() {
		return nil, nil, apperrors.NoItems("cannot formulate a problem over an empty item group")
	}

	n := items.Len()
	itemSlice := items.Items()
	incoming := g.incoming()

	b := ilp.NewBuilder(observer)
	decoder := &Decoder{Items: items}

	domain := make(map[LayerKey][]int, len(order))
	memberships := make(map[LayerKey]map[int]membership, len(order))
	vars := make(map[LayerKey]map[int]*layerItemVars, len(order))

	for _, key := range order {
		layer, _ := g.Layer(key)
		in := incoming[key]

		layerMembership := make(map[int]membership)
		var layerDomain []int

		if len(in) == 0 {
			// Root: every item is present unconditionally.
			for i := 0; i < n; i++ {
				layerMembership[i] = membership{constant: true}
				layerDomain = append(layerDomain, i)
			}
		} else {
			for i := 0; i < n; i++ {
				var contributions []ilp.VarID
				alwaysTrue := false
				viable := true
				for _, e := range in {
					parentVars := vars[e.from]
					parentMembers := memberships[e.from]
					pm, inParentDomain := parentMembers[i]
					if !inParentDomain {
						viable = false
						break
					}
					switch e.kind {
					case All:
						if pm.constant {
							alwaysTrue = true
							continue
						}
						contributions = append(contributions, pm.v)
					case Participating:
						pv, ok := parentVars[i]
						if !ok || !pv.hasCov {
							viable = false
						} else {
							contributions = append(contributions, pv.cov)
						}
					case NonParticipating:
						pv, ok := parentVars[i]
						if !ok || !pv.hasX {
							viable = false
						} else {
							contributions = append(contributions, pv.x)
						}
					}
					if !viable {
						break
					}
				}
				if !viable {
					continue
				}
				if len(contributions) == 0 {
					if alwaysTrue {
						layerMembership[i] = membership{constant: true}
						layerDomain = append(layerDomain, i)
					}
					continue
				}
				mv := b.And(memberVarName(key, i), contributions)
				layerMembership[i] = membership{v: mv, hasVar: true}
				layerDomain = append(layerDomain, i)
			}
		}

		domain[key] = layerDomain
		memberships[key] = layerMembership

		settlesAll := layer.OutputMode == PassThrough && !hasOutgoing(layer, All)
		settlesParticipating := layer.OutputMode == Split && !hasOutgoing(layer, Participating)
		settlesNonParticipating := layer.OutputMode == Split && !hasOutgoing(layer, NonParticipating)

		var xSettles, covSettles bool
		switch layer.OutputMode {
		case PassThrough:
			xSettles = settlesAll
			covSettles = settlesAll
		case Split:
			xSettles = settlesNonParticipating
			covSettles = settlesParticipating
		}

		layerVars := make(map[int]*layerItemVars, len(layerDomain))
		coveredBy := make(map[int][]ilp.VarID, len(layerDomain))

		for _, idx := range layerDomain {
			price := itemSlice[idx].Price()
			coeff := int64(0)
			if xSettles {
				coeff = price.Minor()
			}
			xv := b.AddPresenceVar(idx, coeff)
			layerVars[idx] = &layerItemVars{x: xv, hasX: true}
			if xSettles {
				decoder.FullPriceFacts = append(decoder.FullPriceFacts, FullPriceFact{ItemIndex: idx, Var: xv, Price: price})
			}
		}

		for _, p := range layer.Promotions {
			candidates, promoKey, err := enumerate(layerDomain, itemSlice, p)
			if err != nil {
				return nil, nil, err
			}
			var appVars []ilp.VarID
			var appSavings []int64
			for ci, c := range candidates {
				coeff := c.discountedMinor - c.originalMinor // saving delta, non-settling default
				if covSettles {
					coeff = c.discountedMinor
				}
				name := bundleVarName(key, promoKey, ci)
				pv := b.AddPromotionVar(name, int(promoKey), c.items, coeff)
				for _, idx := range c.items {
					coveredBy[idx] = append(coveredBy[idx], pv)
				}
				appVars = append(appVars, pv)
				appSavings = append(appSavings, c.originalMinor-c.discountedMinor)
				decoder.Applications = append(decoder.Applications, ApplicationFact{
					PromotionKey: promoKey,
					Layer:        key,
					Var:          pv,
					Items:        c.items,
					Original:     money.New(c.originalMinor, items.Currency()),
					Discounted:   money.New(c.discountedMinor, items.Currency()),
					Settles:      covSettles,
				})
			}
			if err := applyBudget(b, p.Budget(), appVars, appSavings, promoKey); err != nil {
				return nil, nil, err
			}
		}

		for _, idx := range layerDomain {
			lv := layerVars[idx]
			covTerms := coveredBy[idx]
			mem := layerMembership[idx]

			if len(covTerms) > 0 {
				covName := covVarName(key, idx)
				covVar := b.AddVar(covName, 0)
				lv.cov = covVar
				lv.hasCov = true
				terms := []ilp.Term{{Var: covVar, Coefficient: 1}}
				for _, t := range covTerms {
					terms = append(terms, ilp.Term{Var: t, Coefficient: -1})
				}
				b.AddConstraint("cov_def_"+covName, terms, ilp.Eq, 0)

				identityTerms := []ilp.Term{{Var: lv.x, Coefficient: 1}, {Var: covVar, Coefficient: 1}}
				rhs := int64(0)
				if mem.constant {
					rhs = 1
				} else {
					identityTerms = append(identityTerms, ilp.Term{Var: mem.v, Coefficient: -1})
				}
				b.AddConstraint("identity_"+covName, identityTerms, ilp.Eq, rhs)
			} else {
				rhs := int64(0)
				identityTerms := []ilp.Term{{Var: lv.x, Coefficient: 1}}
				if mem.constant {
					rhs = 1
				} else {
					identityTerms = append(identityTerms, ilp.Term{Var: mem.v, Coefficient: -1})
				}
				b.AddConstraint("identity_x_"+presenceName(key, idx), identityTerms, ilp.Eq, rhs)
			}
		}

		vars[key] = layerVars
	}

	problem := b.Build()
	return &problem, decoder, nil
}

func hasOutgoing(layer *Layer, kind EdgeKind) bool {
	for _, e := range layer.Edges {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func applyBudget(b *ilp.Builder, budget promotion.Budget, vars []ilp.VarID, savings []int64, key promotion.Key) error {
	if len(vars) == 0 {
		return nil
	}
	if limit, ok := budget.ApplicationLimit(); ok {
		b.AtMost(appBudgetName(key), vars, nil, int64(limit))
	}
	if limit, ok := budget.MonetaryLimit(); ok {
		b.AtMost(monetaryBudgetName(key), vars, savings, limit.Minor())
	}
	return nil
}

func enumerate(domain []int, items []basket.Item, p promotion.Promotion) ([]candidate, promotion.Key, error) {
	switch v := p.(type) {
	case promotion.DirectDiscount:
		c, err := directDiscountCandidates(domain, items, v)
		return c, v.Key(), err
	case promotion.PositionalDiscount:
		c, err := positionalDiscountCandidates(domain, items, v)
		return c, v.Key(), err
	case promotion.MixAndMatch:
		c, err := mixAndMatchCandidates(domain, items, v)
		return c, v.Key(), err
	case promotion.TieredThreshold:
		bundle, err := tieredThresholdBundle(domain, items, v)
		if err != nil || bundle == nil {
			return nil, v.Key(), err
		}
		var candidates []candidate
		for i := range v.Tiers() {
			if bundle.tierMinor[i] < 0 {
				continue
			}
			candidates = append(candidates, candidate{
				items:           bundle.items,
				originalMinor:   bundle.originalMinor,
				discountedMinor: bundle.tierMinor[i],
			})
		}
		return candidates, v.Key(), nil
	default:
		return nil, 0, apperrors.BuilderFailure(nil, "unrecognised promotion variant")
	}
}
