// Package qualify implements the nested boolean Qualification predicate of
// spec §3/§4.1, grounded structurally in
// original_source/crates/app/src/domain/promotions/data/qualification.rs
// (Context{Primary,Group}, Op{And,Or}, Rule{HasAll,HasAny,HasNone,Group}).
package qualify

import "github.com/qhato/promoengine/internal/tagset"

// Context records whether a Qualification evaluates against the primary item
// being considered or a candidate bundle/group; it carries no behaviour of
// its own (matches always operates on whatever TagCollection is passed in)
// but is preserved as call-site documentation, matching the original's use
// of Context purely as a tag on the data.
type Context int

const (
	ContextPrimary Context = iota
	ContextGroup
)

// Op folds Rule results together.
type Op int

const (
	OpAnd Op = iota
	OpOr
)

// RuleKind tags which Rule variant is populated.
type RuleKind int

const (
	RuleHasAll RuleKind = iota
	RuleHasAny
	RuleHasNone
	RuleGroup
)

// Rule is one clause of a Qualification.
type Rule struct {
	Kind  RuleKind
	Tags  []string
	Group Qualification
}

func HasAll(tags ...string) Rule { return Rule{Kind: RuleHasAll, Tags: tags} }
func HasAny(tags ...string) Rule { return Rule{Kind: RuleHasAny, Tags: tags} }
func HasNone(tags ...string) Rule { return Rule{Kind: RuleHasNone, Tags: tags} }
func GroupRule(q Qualification) Rule { return Rule{Kind: RuleGroup, Group: q} }

// Qualification is a recursive boolean expression over a TagCollection.
type Qualification struct {
	Context Context
	Op      Op
	Rules   []Rule
}

// New constructs a Qualification with the given op and rules, defaulting to
// ContextPrimary.
func New(op Op, rules ...Rule) Qualification {
	return Qualification{Context: ContextPrimary, Op: op, Rules: rules}
}

// WithContext returns a copy of q tagged with the given Context.
func (q Qualification) WithContext(ctx Context) Qualification {
	q.Context = ctx
	return q
}

// Matches evaluates the qualification tree against tags. Empty rules under
// And return true; under Or return false.
func (q Qualification) Matches(tags tagset.TagCollection) bool {
	if len(q.Rules) == 0 {
		return q.Op == OpAnd
	}
	switch q.Op {
	case OpAnd:
		for _, r := range q.Rules {
			if !matchRule(r, tags) {
				return false
			}
		}
		return true
	default: // OpOr
		for _, r := range q.Rules {
			if matchRule(r, tags) {
				return true
			}
		}
		return false
	}
}

func matchRule(r Rule, tags tagset.TagCollection) bool {
	switch r.Kind {
	case RuleHasAll:
		return tagset.ContainsAll(tags, r.Tags)
	case RuleHasAny:
		return tagset.ContainsAny(tags, r.Tags)
	case RuleHasNone:
		return tagset.ContainsNone(tags, r.Tags)
	case RuleGroup:
		return r.Group.Matches(tags)
	default:
		return false
	}
}
