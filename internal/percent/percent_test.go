package percent_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/percent"
	"github.com/qhato/promoengine/pkg/testutil"
)

func TestOfMinorZeroPercent(t *testing.T) {
	got, err := percent.Zero.OfMinor(500)
	testutil.AssertNoError(t, err, "zero percent")
	testutil.AssertEqual(t, got, int64(0), "zero percent of n is 0")
}

func TestOfMinorZeroAmount(t *testing.T) {
	p := percent.FromFloat(0.25)
	got, err := p.OfMinor(0)
	testutil.AssertNoError(t, err, "percent of zero")
	testutil.AssertEqual(t, got, int64(0), "percent of 0 is 0")
}

func TestOfMinorExact(t *testing.T) {
	p := percent.FromFloat(0.25)
	got, err := p.OfMinor(200)
	testutil.AssertNoError(t, err, "percent of 200")
	testutil.AssertEqual(t, got, int64(50), "25% of 200 is 50")
}

func TestOfMinorRoundsHalfAwayFromZero(t *testing.T) {
	// 0.125 * 100 = 12.5 -> rounds to 13 (away from zero)
	p := percent.FromFloat(0.125)
	got, err := p.OfMinor(100)
	testutil.AssertNoError(t, err, "rounding")
	testutil.AssertEqual(t, got, int64(13), "half rounds away from zero")
}

func TestComplement(t *testing.T) {
	p := percent.FromFloat(0.20)
	got, err := p.Complement().OfMinor(1199)
	testutil.AssertNoError(t, err, "complement of 20% on 1199")
	testutil.AssertEqual(t, got, int64(959), "80% of 1199 rounds to 959")
}
