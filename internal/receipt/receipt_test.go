package receipt_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/graph"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/promotion"
	"github.com/qhato/promoengine/internal/receipt"
	"github.com/qhato/promoengine/internal/solver"
	"github.com/qhato/promoengine/pkg/testutil"
)

func TestDecodeSettlesFullPriceWhenVarActive(t *testing.T) {
	items := testutil.FixtureItemGroup(money.GBP,
		testutil.FixtureItemSpec{Name: "a", PriceMinor: 500},
		testutil.FixtureItemSpec{Name: "b", PriceMinor: 300},
	)
	decoder := &graph.Decoder{
		Items: items,
		FullPriceFacts: []graph.FullPriceFact{
			{ItemIndex: 0, Var: 0, Price: money.New(500, money.GBP)},
			{ItemIndex: 1, Var: 1, Price: money.New(300, money.GBP)},
		},
	}
	assignment := solver.Assignment{1, 1}

	r, err := receipt.Decode(decoder, assignment)
	testutil.AssertNoError(t, err, "decode")
	testutil.AssertEqual(t, r.Total.Minor(), int64(800), "total equals subtotal")
	testutil.AssertEqual(t, r.Subtotal.Minor(), int64(800), "subtotal")
	testutil.AssertEqual(t, len(r.FullPriceItems), 2, "both items settle full price")
	testutil.AssertEqual(t, len(r.PromotionApplications), 0, "no applications")
}

func TestDecodeAssignsDenseBundleIDsPerPromotionKey(t *testing.T) {
	items := testutil.FixtureItemGroup(money.GBP,
		testutil.FixtureItemSpec{Name: "a", PriceMinor: 100},
		testutil.FixtureItemSpec{Name: "b", PriceMinor: 100},
		testutil.FixtureItemSpec{Name: "c", PriceMinor: 100},
	)
	decoder := &graph.Decoder{
		Items: items,
		Applications: []graph.ApplicationFact{
			{PromotionKey: promotion.Key(1), Var: 0, Items: []int{0}, Original: money.New(100, money.GBP), Discounted: money.New(80, money.GBP), Settles: true},
			{PromotionKey: promotion.Key(1), Var: 1, Items: []int{1}, Original: money.New(100, money.GBP), Discounted: money.New(80, money.GBP), Settles: true},
			{PromotionKey: promotion.Key(2), Var: 2, Items: []int{2}, Original: money.New(100, money.GBP), Discounted: money.New(80, money.GBP), Settles: true},
		},
	}
	assignment := solver.Assignment{1, 1, 1}

	r, err := receipt.Decode(decoder, assignment)
	testutil.AssertNoError(t, err, "decode")
	testutil.AssertEqual(t, len(r.PromotionApplications), 3, "every activated application recorded")
	testutil.AssertEqual(t, r.PromotionApplications[0].BundleID, 0, "first activation of promo 1 gets bundle 0")
	testutil.AssertEqual(t, r.PromotionApplications[1].BundleID, 1, "second activation of promo 1 gets bundle 1")
	testutil.AssertEqual(t, r.PromotionApplications[2].BundleID, 0, "first activation of promo 2 gets its own bundle 0")
	testutil.AssertEqual(t, r.Total.Minor(), int64(240), "3 * 80")
}

func TestDecodeSkipsInactiveVars(t *testing.T) {
	items := testutil.FixtureItemGroup(money.GBP,
		testutil.FixtureItemSpec{Name: "a", PriceMinor: 100},
	)
	decoder := &graph.Decoder{
		Items: items,
		Applications: []graph.ApplicationFact{
			{PromotionKey: promotion.Key(1), Var: 0, Items: []int{0}, Original: money.New(100, money.GBP), Discounted: money.New(80, money.GBP)},
		},
	}
	assignment := solver.Assignment{0}

	r, err := receipt.Decode(decoder, assignment)
	testutil.AssertNoError(t, err, "decode")
	testutil.AssertEqual(t, len(r.PromotionApplications), 0, "inactive promotion var yields no application")
	testutil.AssertEqual(t, r.Total.Minor(), int64(0), "nothing settled")
}

func TestDecodeNonSettlingApplicationContributesOnlyItsDelta(t *testing.T) {
	items := testutil.FixtureItemGroup(money.GBP,
		testutil.FixtureItemSpec{Name: "a", PriceMinor: 100},
	)
	decoder := &graph.Decoder{
		Items: items,
		Applications: []graph.ApplicationFact{
			// Layer 1 (Participating edge onward): does not settle, only
			// contributes its saving delta (80-100 = -20).
			{PromotionKey: promotion.Key(1), Var: 0, Items: []int{0}, Original: money.New(100, money.GBP), Discounted: money.New(80, money.GBP), Settles: false},
			// Layer 2: terminal, settles at its own literal discounted price.
			{PromotionKey: promotion.Key(2), Var: 1, Items: []int{0}, Original: money.New(100, money.GBP), Discounted: money.New(90, money.GBP), Settles: true},
		},
	}
	assignment := solver.Assignment{1, 1}

	r, err := receipt.Decode(decoder, assignment)
	testutil.AssertNoError(t, err, "decode")
	testutil.AssertEqual(t, r.Total.Minor(), int64(70), "-20 delta from layer 1 plus 90 literal settle from layer 2")
}

func TestDecodeIsDeterministicAcrossRuns(t *testing.T) {
	items := testutil.FixtureItemGroup(money.GBP,
		testutil.FixtureItemSpec{Name: "a", PriceMinor: 100},
		testutil.FixtureItemSpec{Name: "b", PriceMinor: 100},
	)
	decoder := &graph.Decoder{
		Items: items,
		Applications: []graph.ApplicationFact{
			{PromotionKey: promotion.Key(1), Var: 0, Items: []int{0}, Original: money.New(100, money.GBP), Discounted: money.New(80, money.GBP), Settles: true},
		},
		FullPriceFacts: []graph.FullPriceFact{
			{ItemIndex: 1, Var: 1, Price: money.New(100, money.GBP)},
		},
	}
	assignment := solver.Assignment{1, 1}

	first, err := receipt.Decode(decoder, assignment)
	testutil.AssertNoError(t, err, "decode first run")
	second, err := receipt.Decode(decoder, assignment)
	testutil.AssertNoError(t, err, "decode second run")

	testutil.AssertEqual(t, first.ID, second.ID, "receipt ID is content-derived, not random")
	testutil.AssertEqual(t, first.PromotionApplications[0].ID, second.PromotionApplications[0].ID, "application ID is content-derived")
}

func TestItemsOfResolvesIndices(t *testing.T) {
	items := testutil.FixtureItemGroup(money.GBP,
		testutil.FixtureItemSpec{Name: "a", PriceMinor: 100},
		testutil.FixtureItemSpec{Name: "b", PriceMinor: 200},
	)
	resolved, err := receipt.ItemsOf(items, []int{1, 0})
	testutil.AssertNoError(t, err, "items of")
	testutil.AssertEqual(t, resolved[0].Price().Minor(), int64(200), "first resolved item")
	testutil.AssertEqual(t, resolved[1].Price().Minor(), int64(100), "second resolved item")
}
