package ilp_test

import (
	"testing"

	"github.com/qhato/promoengine/internal/ilp"
	"github.com/qhato/promoengine/pkg/testutil"
)

type recordingObserver struct {
	presenceCalls   int
	promotionCalls  int
	constraintCalls int
}

func (r *recordingObserver) OnPresenceVariable(itemIndex int, coefficient int64) { r.presenceCalls++ }
func (r *recordingObserver) OnPromotionVariable(promotionKey int, coveredItems []int, coefficient int64) {
	r.promotionCalls++
}
func (r *recordingObserver) OnConstraint(name string, terms []ilp.Term, relation ilp.Relation, rhs int64) {
	r.constraintCalls++
}

func TestBuilderNotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	b := ilp.NewBuilder(obs)
	full := b.AddPresenceVar(0, 100)
	disc := b.AddPromotionVar("d_0", 1, []int{0}, 80)
	b.Exactly1("exclusive_0", []ilp.VarID{full, disc})

	testutil.AssertEqual(t, obs.presenceCalls, 1, "presence notified")
	testutil.AssertEqual(t, obs.promotionCalls, 1, "promotion notified")
	testutil.AssertEqual(t, obs.constraintCalls, 1, "constraint notified")
}

func TestAndLinearizationMultiParent(t *testing.T) {
	b := ilp.NewBuilder(nil)
	a := b.AddVar("a", 0)
	c := b.AddVar("c", 0)
	z := b.And("z", []ilp.VarID{a, c})

	problem := b.Build()
	testutil.AssertTrue(t, int(z) >= 2, "a new variable was created for multi-parent join")
	testutil.AssertEqual(t, problem.NumVars(), 3, "z is a distinct third variable")
}

func TestExactly1BuildsEqualityConstraint(t *testing.T) {
	b := ilp.NewBuilder(nil)
	v1 := b.AddVar("v1", 0)
	v2 := b.AddVar("v2", 0)
	b.Exactly1("excl", []ilp.VarID{v1, v2})

	problem := b.Build()
	testutil.AssertEqual(t, len(problem.Constraints), 1, "one constraint")
	testutil.AssertEqual(t, problem.Constraints[0].Relation, ilp.Eq, "equality")
	testutil.AssertEqual(t, problem.Constraints[0].RHS, int64(1), "rhs is 1")
}
