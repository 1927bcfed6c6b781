// Package promoengine is the engine entry point (spec §6): evaluate a
// PromotionGraph against an ItemGroup and return a Receipt, or a fatal
// error from the taxonomy in pkg/errors. It re-exports the handful of
// types a caller needs as thin aliases over internal/* types, the way
// qhato-ecommerce's internal/<context>/domain packages are consumed through
// a context-specific application-service facade rather than directly.
package promoengine

import (
	"context"
	"io"

	"github.com/qhato/promoengine/internal/arena"
	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/discount"
	"github.com/qhato/promoengine/internal/graph"
	"github.com/qhato/promoengine/internal/ilp"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/percent"
	"github.com/qhato/promoengine/internal/promotion"
	"github.com/qhato/promoengine/internal/qualify"
	"github.com/qhato/promoengine/internal/receipt"
	"github.com/qhato/promoengine/internal/solver"
	"github.com/qhato/promoengine/internal/tagset"
	"github.com/qhato/promoengine/pkg/logging"
)

// Re-exported domain types (C1-C10). Callers build graphs and item groups
// against these names and never import internal/* directly.
type (
	Money          = money.Money
	Currency       = money.Currency
	Percentage     = percent.Percentage
	TagCollection  = tagset.TagCollection
	StringSet      = tagset.StringSet
	Qualification  = qualify.Qualification
	QualifyOp      = qualify.Op
	ProductKey     = basket.ProductKey
	Item           = basket.Item
	ItemGroup      = basket.ItemGroup
	Promotion      = promotion.Promotion
	PromotionKey   = promotion.Key
	Budget         = promotion.Budget
	SimpleDiscount = discount.SimpleDiscount
	PromotionGraph = graph.Graph
	LayerKey       = graph.LayerKey
	EdgeKind       = graph.EdgeKind
	OutputMode     = graph.OutputMode
	Observer       = ilp.Observer
	MILPSolver     = solver.MILPSolver
	Receipt        = receipt.Receipt
	Application    = receipt.Application
	ProductMeta    = receipt.ProductMeta
	PromotionMeta  = receipt.PromotionMeta
)

// Arena is the opaque-key metadata store backing ProductKey (spec §9's
// "typed handles over pointers"): callers maintain their own
// Arena[ProductMeta] alongside an ItemGroup built from the same keys.
type Arena[T any] = arena.Arena[T]

// NewArena constructs an empty Arena of the given metadata type.
func NewArena[T any]() *Arena[T] { return arena.New[T]() }

// Graph topology constants (spec §3/§4.4).
const (
	PassThrough = graph.PassThrough
	Split       = graph.Split

	All              = graph.All
	Participating    = graph.Participating
	NonParticipating = graph.NonParticipating

	OpAnd = qualify.OpAnd
	OpOr  = qualify.OpOr
)

// GBP, USD, and EUR are the currencies money.Currency ships out of the box.
var (
	GBP = money.GBP
	USD = money.USD
	EUR = money.EUR
)

// Re-exported constructors callers need without reaching into internal/*.
var (
	NewMoney      = money.New
	NewPercentage = percent.FromFloat

	NewItemGroup    = basket.NewItemGroup
	NewItem         = basket.New
	NewItemWithTags = basket.WithTags

	NewPromotionGraph = graph.New
	NewBranchAndBound = solver.NewBranchAndBound

	NewTagSet   = tagset.New
	EmptyTagSet = tagset.Empty

	NewQualification = qualify.New
	HasAll           = qualify.HasAll
	HasAny           = qualify.HasAny
	HasNone          = qualify.HasNone
	GroupRule        = qualify.GroupRule

	NewDirectDiscount     = promotion.NewDirectDiscount
	NewPositionalDiscount = promotion.NewPositionalDiscount
	NewMixAndMatch        = promotion.NewMixAndMatch
	NewTieredThreshold    = promotion.NewTieredThreshold

	UnlimitedBudget  = promotion.Unlimited
	ApplicationLimit = promotion.WithApplicationLimit
	MonetaryLimit    = promotion.WithMonetaryLimit
	BothLimits       = promotion.WithBothLimits
)

// PercentageOff, AmountOverride, and AmountOff build the three
// SimpleDiscount variants of spec §4.2 (C6) without importing
// internal/discount directly.
func PercentageOff(p Percentage) SimpleDiscount { return discount.PercentageOff{Percentage: p} }
func AmountOverride(m Money) SimpleDiscount     { return discount.AmountOverride{Amount: m} }
func AmountOff(m Money) SimpleDiscount          { return discount.AmountOff{Amount: m} }

// NewLoggingObserver wraps a logging.Logger as an Observer that records
// every variable and constraint the ILP builder adds, at debug level.
func NewLoggingObserver(l logging.Logger) Observer {
	return ilp.LoggingObserver{Logger: l}
}

// Evaluate runs the full pipeline of spec §2's control flow: formulate a
// single ILP across every layer of g (internal/graph.Formulate), hand it to
// milp (defaulting to branch-and-bound when nil), and decode the solved
// assignment into a Receipt (internal/receipt.Decode). observer, if
// non-nil, is notified of every variable and constraint the builder adds;
// observer failures never abort evaluation, since Observer implementations
// only log or record and never return an error to the builder.
func Evaluate(ctx context.Context, g *PromotionGraph, items *ItemGroup, observer Observer, milp MILPSolver) (*Receipt, error) {
	if milp == nil {
		milp = solver.NewBranchAndBound()
	}

	problem, decoder, err := graph.Formulate(g, items, observer)
	if err != nil {
		return nil, err
	}

	result, err := milp.Solve(ctx, problem)
	if err != nil {
		return nil, err
	}
	if result.Status != solver.Optimal {
		return nil, solver.AsError(result)
	}

	return receipt.Decode(decoder, result.Assignment)
}

// WriteReceipt renders r as deterministic human-readable text to sink,
// spec §6's "Receipt writer" collaborator. productMeta/promotionMeta supply
// display names the engine itself never stores (Item and Promotion are
// addressed by opaque keys, per spec §9); either may be nil, in which case
// every name falls back to its key.
func WriteReceipt(sink io.Writer, r *Receipt, items *ItemGroup, productMeta map[ProductKey]ProductMeta, promotionMeta map[PromotionKey]PromotionMeta) error {
	return receipt.WriteTo(sink, r, items, productMeta, promotionMeta)
}
