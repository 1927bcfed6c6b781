package ilp

import "strconv"

// Builder assembles a Problem incrementally: variables and constraints are
// appended in a fixed, deterministic order (spec §5's ordering guarantee),
// and an Observer is notified of every addition.
type Builder struct {
	problem  Problem
	observer Observer
}

// NewBuilder constructs an empty Builder. A nil observer is replaced with
// NopObserver.
func NewBuilder(observer Observer) *Builder {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Builder{observer: observer}
}

// AddVar appends a new binary decision variable and returns its id.
func (b *Builder) AddVar(name string, coefficient int64) VarID {
	id := VarID(len(b.problem.Vars))
	b.problem.Vars = append(b.problem.Vars, VarInfo{Name: name, Coefficient: coefficient})
	return id
}

// AddPresenceVar appends an item's full-price presence variable x_i and
// notifies the observer, per spec §4.3.
func (b *Builder) AddPresenceVar(itemIndex int, coefficientMinor int64) VarID {
	id := b.AddVar(presenceVarName(itemIndex), coefficientMinor)
	b.observer.OnPresenceVariable(itemIndex, coefficientMinor)
	return id
}

// AddPromotionVar appends a promotion/bundle variable and notifies the
// observer with the items it covers, per spec §4.3.
func (b *Builder) AddPromotionVar(name string, promotionKey int, coveredItems []int, coefficientMinor int64) VarID {
	id := b.AddVar(name, coefficientMinor)
	b.observer.OnPromotionVariable(promotionKey, coveredItems, coefficientMinor)
	return id
}

// AddConstraint appends a constraint and notifies the observer.
func (b *Builder) AddConstraint(name string, terms []Term, relation Relation, rhs int64) {
	b.problem.Constraints = append(b.problem.Constraints, Constraint{
		Name: name, Terms: terms, Relation: relation, RHS: rhs,
	})
	b.observer.OnConstraint(name, terms, relation, rhs)
}

// Exactly1 adds the exclusive-assignment constraint Σ vars = 1. Formulate in
// internal/graph does not call it; it writes its per-item identity
// constraints with AddConstraint.
func (b *Builder) Exactly1(name string, vars []VarID) {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		terms[i] = Term{Var: v, Coefficient: 1}
	}
	b.AddConstraint(name, terms, Eq, 1)
}

// AtMost adds Σ coefficient*var ≤ limit, used for application and monetary
// budgets (spec §4.3 constraints 3-4).
func (b *Builder) AtMost(name string, vars []VarID, coefficients []int64, limit int64) {
	terms := make([]Term, len(vars))
	for i, v := range vars {
		c := int64(1)
		if coefficients != nil {
			c = coefficients[i]
		}
		terms[i] = Term{Var: v, Coefficient: c}
	}
	b.AddConstraint(name, terms, Leq, limit)
}

// And introduces (if necessary) a new variable z such that z == 1 iff every
// variable in vars == 1 (standard AND-linearisation: z ≤ v_i for each i, and
// z ≥ Σv_i − (n−1)), used by spec §4.4's multi-parent flow-membership
// conjunction. When len(vars) == 1 the input variable is returned directly
// with no new variable created, matching the single-parent case.
func (b *Builder) And(name string, vars []VarID) VarID {
	if len(vars) == 1 {
		return vars[0]
	}
	z := b.AddVar(name, 0)
	for _, v := range vars {
		b.AddConstraint(name+"_le_"+varRef(v), []Term{{Var: z, Coefficient: 1}, {Var: v, Coefficient: -1}}, Leq, 0)
	}
	terms := make([]Term, 0, len(vars)+1)
	terms = append(terms, Term{Var: z, Coefficient: 1})
	for _, v := range vars {
		terms = append(terms, Term{Var: v, Coefficient: -1})
	}
	b.AddConstraint(name+"_ge", terms, Geq, -int64(len(vars)-1))
	return z
}

// Build finalises and returns the assembled Problem.
func (b *Builder) Build() Problem {
	return b.problem
}

func presenceVarName(itemIndex int) string {
	return "x_" + strconv.Itoa(itemIndex)
}

func varRef(v VarID) string {
	return "v" + strconv.Itoa(int(v))
}
