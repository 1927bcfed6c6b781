package qualify_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/qualify"
	"github.com/qhato/promoengine/internal/tagset"
	"github.com/qhato/promoengine/pkg/testutil"
)

func TestHasAllHasAnyHasNone(t *testing.T) {
	tags := tagset.New("meal-deal", "vegan")

	q := qualify.New(qualify.OpAnd, qualify.HasAll("meal-deal"))
	testutil.AssertTrue(t, q.Matches(tags), "has-all matches")

	q2 := qualify.New(qualify.OpAnd, qualify.HasAny("gluten-free", "vegan"))
	testutil.AssertTrue(t, q2.Matches(tags), "has-any matches")

	q3 := qualify.New(qualify.OpAnd, qualify.HasNone("gluten-free"))
	testutil.AssertTrue(t, q3.Matches(tags), "has-none matches")
}

func TestEmptyRulesAndOrDefaults(t *testing.T) {
	tags := tagset.Empty()
	and := qualify.New(qualify.OpAnd)
	or := qualify.New(qualify.OpOr)
	testutil.AssertTrue(t, and.Matches(tags), "empty rules under And is true")
	testutil.AssertFalse(t, or.Matches(tags), "empty rules under Or is false")
}

func TestEmptyTagsNeverMatchHasAllOrHasAny(t *testing.T) {
	empty := tagset.Empty()
	q := qualify.New(qualify.OpOr, qualify.HasAll("x"), qualify.HasAny("x"))
	testutil.AssertFalse(t, q.Matches(empty), "empty tags never satisfy has-all/has-any of non-empty")

	qNone := qualify.New(qualify.OpAnd, qualify.HasNone("x", "y"))
	testutil.AssertTrue(t, qNone.Matches(empty), "empty tags always satisfy has-none")
}

func TestNestedGroup(t *testing.T) {
	tags := tagset.New("a", "b")
	inner := qualify.New(qualify.OpOr, qualify.HasAll("c"), qualify.HasAll("b"))
	outer := qualify.New(qualify.OpAnd, qualify.HasAll("a"), qualify.GroupRule(inner))
	testutil.AssertTrue(t, outer.Matches(tags), "nested group resolves")
}

func TestDeepRecursion(t *testing.T) {
	tags := tagset.New("leaf")
	q := qualify.New(qualify.OpAnd, qualify.HasAll("leaf"))
	for i := 0; i < 40; i++ {
		q = qualify.New(qualify.OpAnd, qualify.GroupRule(q))
	}
	testutil.AssertTrue(t, q.Matches(tags), "recursion depth beyond 32 supported")
}
