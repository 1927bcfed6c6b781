package ilp

import "github.com/qhato/promoengine/pkg/logging"

// Observer receives formulation events as the Builder assembles a Problem.
// Observers must not influence the formulation; they exist purely for
// tracing/rendering per spec §4.3 and §6.
type Observer interface {
	OnPresenceVariable(itemIndex int, coefficient int64)
	OnPromotionVariable(promotionKey int, coveredItems []int, coefficient int64)
	OnConstraint(name string, terms []Term, relation Relation, rhs int64)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) OnPresenceVariable(itemIndex int, coefficient int64)                     {}
func (NopObserver) OnPromotionVariable(promotionKey int, coveredItems []int, coefficient int64) {}
func (NopObserver) OnConstraint(name string, terms []Term, relation Relation, rhs int64)     {}

// LoggingObserver logs every formulation event at debug level, grounded in
// qhato-ecommerce's use of structured zap fields for fine-grained tracing.
type LoggingObserver struct {
	Logger logging.Logger
}

func (o LoggingObserver) OnPresenceVariable(itemIndex int, coefficient int64) {
	o.Logger.Debug("presence variable",
		logging.Int("item_index", itemIndex),
		logging.Int64("coefficient", coefficient))
}

func (o LoggingObserver) OnPromotionVariable(promotionKey int, coveredItems []int, coefficient int64) {
	o.Logger.Debug("promotion variable",
		logging.Int("promotion_key", promotionKey),
		logging.Int("covered_items", len(coveredItems)),
		logging.Int64("coefficient", coefficient))
}

func (o LoggingObserver) OnConstraint(name string, terms []Term, relation Relation, rhs int64) {
	o.Logger.Debug("constraint",
		logging.String("name", name),
		logging.Int("terms", len(terms)),
		logging.Int64("rhs", rhs))
}
