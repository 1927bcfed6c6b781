package receipt

import (
	"fmt"
	"io"
	"sort"

	"github.com/qhato/promoengine/internal/basket"
	"github.com/qhato/promoengine/internal/promotion"
)

// ProductMeta is the read-only "name" half of spec §6's product metadata
// map; price and tags already live on basket.Item itself.
type ProductMeta struct {
	Name string
}

// PromotionMeta is spec §6's promotion metadata map entry: a promotion's
// display name plus the names of its qualification slots (meaningful for
// MixAndMatch) and the layers it was attached to.
type PromotionMeta struct {
	Name       string
	SlotNames  []string
	LayerNames []string
}

// WriteTo renders r as human-readable text to sink, per spec §6's "Receipt
// writer" collaborator. Given identical r, items, productMeta, and
// promotionMeta, two calls produce byte-identical output: every slice it
// iterates is already in the deterministic order Decode built it in, and
// missing metadata falls back to a fixed "product #N"/"promotion #N" label
// rather than an unstable representation like a pointer or map order.
func WriteTo(sink io.Writer, r *Receipt, items *basket.ItemGroup, productMeta map[basket.ProductKey]ProductMeta, promotionMeta map[promotion.Key]PromotionMeta) error {
	w := &errWriter{w: sink}

	w.printf("Subtotal: %s\n", r.Subtotal)
	w.printf("Total:    %s\n", r.Total)

	if len(r.FullPriceItems) > 0 {
		w.printf("\nFull price:\n")
		for _, idx := range r.FullPriceItems {
			item, err := items.Item(idx)
			if err != nil {
				return err
			}
			w.printf("  %s  %s\n", productName(productMeta, item.Product()), item.Price())
		}
	}

	if len(r.PromotionApplications) > 0 {
		w.printf("\nPromotions applied:\n")
		for _, app := range r.PromotionApplications {
			resolved, err := ItemsOf(items, app.Items)
			if err != nil {
				return err
			}
			names := make([]string, len(resolved))
			for i, it := range resolved {
				names[i] = productName(productMeta, it.Product())
			}
			w.printf("  %s #%d: %s -> %s (%s)\n",
				promotionName(promotionMeta, app.PromotionKey), app.BundleID,
				app.Original, app.Final, joinNames(names))
		}
	}

	return w.err
}

func productName(meta map[basket.ProductKey]ProductMeta, key basket.ProductKey) string {
	if m, ok := meta[key]; ok && m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("product #%d", key)
}

func promotionName(meta map[promotion.Key]PromotionMeta, key promotion.Key) string {
	if m, ok := meta[key]; ok && m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("promotion #%d", key)
}

func joinNames(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	out := ""
	for i, n := range sorted {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

// errWriter lets WriteTo's call sites skip individual error checks; the
// first write error is sticky and short-circuits every later printf.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
