package money_test

import (
	"math"
	"testing"

	"github.com/qhato/promoengine/internal/money"
	apperrors "github.com/qhato/promoengine/pkg/errors"
	"github.com/qhato/promoengine/pkg/testutil"
)

func TestAdd(t *testing.T) {
	a := money.New(299, money.GBP)
	b := money.New(129, money.GBP)
	got, err := a.Add(b)
	testutil.AssertNoError(t, err, "add")
	testutil.AssertEqual(t, got.Minor(), int64(428), "sum")
}

func TestAddCurrencyMismatch(t *testing.T) {
	a := money.New(100, money.GBP)
	b := money.New(100, money.USD)
	_, err := a.Add(b)
	testutil.AssertError(t, err, "currency mismatch expected")
	if !apperrors.HasCode(err, apperrors.ErrCodeCurrencyMismatch) {
		t.Fatalf("expected CurrencyMismatch code, got %v", err)
	}
}

func TestAddOverflow(t *testing.T) {
	a := money.New(math.MaxInt64, money.GBP)
	b := money.New(1, money.GBP)
	_, err := a.Add(b)
	if !apperrors.HasCode(err, apperrors.ErrCodeArithmeticOverflow) {
		t.Fatalf("expected ArithmeticOverflow, got %v", err)
	}
}

func TestSubClampedAtZero(t *testing.T) {
	a := money.New(100, money.GBP)
	b := money.New(300, money.GBP)
	got, err := a.SubClampedAtZero(b)
	testutil.AssertNoError(t, err, "sub clamped")
	testutil.AssertEqual(t, got.Minor(), int64(0), "clamped to zero")
}

func TestMulScalarOverflow(t *testing.T) {
	a := money.New(math.MaxInt64/2+1, money.GBP)
	_, err := a.MulScalar(3)
	if !apperrors.HasCode(err, apperrors.ErrCodeArithmeticOverflow) {
		t.Fatalf("expected ArithmeticOverflow, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	cheap := money.New(100, money.GBP)
	dear := money.New(500, money.GBP)
	testutil.AssertTrue(t, cheap.LessThan(dear), "cheap < dear")
	testutil.AssertTrue(t, dear.GreaterThan(cheap), "dear > cheap")
	testutil.AssertTrue(t, cheap.Equal(money.New(100, money.GBP)), "equal")
}

func TestSum(t *testing.T) {
	total, err := money.Sum(
		money.New(299, money.GBP),
		money.New(129, money.GBP),
		money.New(79, money.GBP),
	)
	testutil.AssertNoError(t, err, "sum")
	testutil.AssertEqual(t, total.Minor(), int64(507), "total")
}
