package basket_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/arena"
	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/money"
	apperrors "github.com/qhato/promoengine/pkg/errors"
	"github.com/qhato/promoengine/pkg/testutil"
)

func testItems() []basket.Item {
	products := arena.New[string]()
	a := products.Insert("widget")
	b := products.Insert("gadget")
	return []basket.Item{
		basket.New(a, money.New(100, money.GBP)),
		basket.New(b, money.New(200, money.GBP)),
	}
}

func TestNewItemGroupAndItem(t *testing.T) {
	group, err := basket.NewItemGroup(testItems(), money.GBP)
	testutil.AssertNoError(t, err, "group construction")

	item, err := group.Item(1)
	testutil.AssertNoError(t, err, "fetch item 1")
	testutil.AssertEqual(t, item.Price().Minor(), int64(200), "item 1 price")
}

func TestItemNotFound(t *testing.T) {
	group, _ := basket.NewItemGroup(testItems(), money.GBP)
	_, err := group.Item(99)
	testutil.AssertError(t, err, "expected ItemNotFound")
	testutil.AssertTrue(t, apperrors.HasCode(err, apperrors.ErrCodeItemNotFound), "error code")
}

func TestCurrencyMismatchOnConstruction(t *testing.T) {
	products := arena.New[string]()
	key := products.Insert("widget")
	items := []basket.Item{
		basket.New(key, money.New(100, money.GBP)),
		basket.New(key, money.New(100, money.USD)),
	}
	_, err := basket.NewItemGroup(items, money.GBP)
	testutil.AssertError(t, err, "expected CurrencyMismatch")
	testutil.AssertTrue(t, apperrors.HasCode(err, apperrors.ErrCodeCurrencyMismatch), "error code")
}

func TestSubtotal(t *testing.T) {
	group, _ := basket.NewItemGroup(testItems(), money.GBP)
	subtotal, err := group.Subtotal()
	testutil.AssertNoError(t, err, "subtotal")
	testutil.AssertEqual(t, subtotal.Minor(), int64(300), "subtotal value")
}

func TestCheapest(t *testing.T) {
	cheapest, ok := basket.Cheapest(testItems())
	testutil.AssertTrue(t, ok, "cheapest found")
	testutil.AssertEqual(t, cheapest.Price().Minor(), int64(100), "cheapest price")
}

func TestCheapestEmpty(t *testing.T) {
	_, ok := basket.Cheapest(nil)
	testutil.AssertFalse(t, ok, "no cheapest in empty slice")
}
