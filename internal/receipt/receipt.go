// Package receipt implements Receipt Assembly (spec §4.6, C10): decoding a
// solved assignment back into per-item roles and a flat list of promotion
// applications. Grounded in
// original_source/crates/php-ext/src/receipt/{mod.rs,applications.rs}'s
// field shape (subtotal, total, full_price_items, promotion_applications;
// an application carries promotion/item(s)/bundle_id/original_price/final_price),
// generalised from a single-item field to Items []int since this engine's
// bundle promotions cover more than one item per application.
package receipt

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/graph"
	"github.com/qhato/promoengine/internal/money"
	"github.com/qhato/promoengine/internal/promotion"
	"github.com/qhato/promoengine/internal/solver"
	apperrors "github.com/qhato/promoengine/pkg/errors"
)

// receiptNamespace and applicationNamespace seed uuid.NewSHA1 so
// Receipt.ID and Application.ID are derived from content rather than
// random: spec §5 requires two runs over equal inputs to produce
// byte-identical receipts, which uuid.New's v4 randomness would break.
var (
	receiptNamespace     = uuid.NewSHA1(uuid.NameSpaceOID, []byte("promoengine.receipt"))
	applicationNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("promoengine.application"))
)

func contentID(namespace uuid.UUID, parts ...string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(strings.Join(parts, "|")))
}

// Application is one activated promotion variable's effect, for every
// layer it occurred in, settling or not.
type Application struct {
	ID           uuid.UUID
	PromotionKey promotion.Key
	Items        []int
	BundleID     int
	Original     money.Money
	Final        money.Money
}

// Receipt is the flattened result of an evaluation.
type Receipt struct {
	ID                    uuid.UUID
	Subtotal              money.Money
	Total                 money.Money
	FullPriceItems        []int
	PromotionApplications []Application
}

// Decode turns a solved Assignment into a Receipt, per spec §4.6. assignment
// must come from solving the exact Problem that produced decoder (via
// graph.Formulate).
func Decode(decoder *graph.Decoder, assignment solver.Assignment) (*Receipt, error) {
	subtotal, err := decoder.Items.Subtotal()
	if err != nil {
		return nil, err
	}

	var fullPrice []int
	total := money.Zero(decoder.Items.Currency())
	for _, fact := range decoder.FullPriceFacts {
		if assignment.Value(fact.Var) {
			fullPrice = append(fullPrice, fact.ItemIndex)
			total, err = total.Add(fact.Price)
			if err != nil {
				return nil, err
			}
		}
	}

	bundleCounters := make(map[promotion.Key]int)
	var applications []Application
	for _, fact := range decoder.Applications {
		if !assignment.Value(fact.Var) {
			continue
		}
		bundleID := bundleCounters[fact.PromotionKey]
		bundleCounters[fact.PromotionKey] = bundleID + 1

		itemParts := make([]string, len(fact.Items))
		for i, idx := range fact.Items {
			itemParts[i] = strconv.Itoa(idx)
		}
		appID := contentID(applicationNamespace,
			strconv.Itoa(int(fact.PromotionKey)), strconv.Itoa(bundleID),
			strings.Join(itemParts, ","), fact.Original.String(), fact.Discounted.String())

		applications = append(applications, Application{
			ID:           appID,
			PromotionKey: fact.PromotionKey,
			Items:        fact.Items,
			BundleID:     bundleID,
			Original:     fact.Original,
			Final:        fact.Discounted,
		})

		if fact.Settles {
			total, err = total.Add(fact.Discounted)
		} else {
			// Non-settling layer: only its saving delta counts toward total,
			// since the item settles for real further down the graph.
			var delta money.Money
			delta, err = fact.Discounted.Sub(fact.Original)
			if err == nil {
				total, err = total.Add(delta)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if total.GreaterThan(subtotal) {
		return nil, apperrors.BuilderFailure(nil, "decoded total exceeds subtotal")
	}

	receiptParts := []string{subtotal.String(), total.String()}
	for _, idx := range fullPrice {
		receiptParts = append(receiptParts, strconv.Itoa(idx))
	}
	for _, app := range applications {
		receiptParts = append(receiptParts, app.ID.String())
	}

	return &Receipt{
		ID:                    contentID(receiptNamespace, receiptParts...),
		Subtotal:              subtotal,
		Total:                 total,
		FullPriceItems:        fullPrice,
		PromotionApplications: applications,
	}, nil
}

// ItemsOf resolves FullPriceItems/Application.Items indices back to basket
// Items, for rendering.
func ItemsOf(group *basket.ItemGroup, indices []int) ([]basket.Item, error) {
	out := make([]basket.Item, len(indices))
	for i, idx := range indices {
		item, err := group.Item(idx)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
