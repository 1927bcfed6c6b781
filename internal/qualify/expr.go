package qualify

import (
	"github.com/qhato/promoengine/pkg/rules"
)

// ExprQualifier is a standalone custom-qualifier expression, generalised from
// qhato-ecommerce's Offer.OfferItemQualifierRule (evaluated through a
// RuleEvaluator). It never replaces Qualification.Matches. No promotion type
// in internal/promotion holds an ExprQualifier, and bundle enumeration in
// internal/graph does not evaluate one; callers invoke Evaluate themselves.
type ExprQualifier struct {
	rule *rules.CompiledRule
}

// NewExprQualifier compiles expression (an expr-lang boolean expression)
// into an ExprQualifier.
func NewExprQualifier(name, expression string) (*ExprQualifier, error) {
	rule, err := rules.NewRule(name, expression, "custom promotion qualifier")
	if err != nil {
		return nil, err
	}
	return &ExprQualifier{rule: rule}, nil
}

// Evaluate runs the compiled expression against env, the same shape of
// environment map BuildOrderEnv/BuildCustomerEnv build for the teacher's
// RuleEngine: item/group fields keyed by name.
func (q *ExprQualifier) Evaluate(env map[string]interface{}) (bool, error) {
	if q == nil {
		return true, nil
	}
	return q.rule.Evaluate(env)
}

// Expression returns the source expression, useful for rendering/auditing.
func (q *ExprQualifier) Expression() string {
	if q == nil {
		return ""
	}
	return q.rule.GetExpression()
}
