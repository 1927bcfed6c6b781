package tagset_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/tagset"
	"github.com/qhato/promoengine/pkg/testutil"
)

func TestContainsAllAnyNone(t *testing.T) {
	s := tagset.New("meal-deal", "vegan")
	testutil.AssertTrue(t, tagset.ContainsAll(s, []string{"meal-deal", "vegan"}), "has all")
	testutil.AssertFalse(t, tagset.ContainsAll(s, []string{"meal-deal", "gluten-free"}), "missing one")
	testutil.AssertTrue(t, tagset.ContainsAny(s, []string{"gluten-free", "vegan"}), "has any")
	testutil.AssertTrue(t, tagset.ContainsNone(s, []string{"gluten-free"}), "has none")
}

func TestEmptyTagsNeverMatchNonEmptyHasAllOrHasAny(t *testing.T) {
	empty := tagset.Empty()
	testutil.AssertFalse(t, tagset.ContainsAll(empty, []string{"x"}), "empty never has-all non-empty")
	testutil.AssertFalse(t, tagset.ContainsAny(empty, []string{"x"}), "empty never has-any non-empty")
	testutil.AssertTrue(t, tagset.ContainsNone(empty, []string{"x", "y"}), "empty always has-none")
}

func TestIntersectsUnionSymmetricDifference(t *testing.T) {
	a := tagset.New("a", "b", "c")
	b := tagset.New("b", "c", "d")

	testutil.AssertTrue(t, a.Intersects(b), "shares b,c")

	inter := a.Intersection(b)
	testutil.AssertEqual(t, inter.Len(), 2, "intersection size")

	union := a.Union(b)
	testutil.AssertEqual(t, union.Len(), 4, "union size")

	sym := a.SymmetricDifference(b)
	testutil.AssertEqual(t, sym.Len(), 2, "symmetric difference size")
	testutil.AssertTrue(t, sym.Contains("a") && sym.Contains("d"), "symmetric difference contents")
}

func TestAddRemove(t *testing.T) {
	s := tagset.Empty()
	s.Add("x")
	testutil.AssertTrue(t, s.Contains("x"), "added")
	s.Remove("x")
	testutil.AssertFalse(t, s.Contains("x"), "removed")
	testutil.AssertTrue(t, s.IsEmpty(), "empty after remove")
}

func TestClone(t *testing.T) {
	s := tagset.New("a")
	clone := s.Clone()
	s.Add("b")
	testutil.AssertFalse(t, clone.Contains("b"), "clone is independent")
}
