package receipt

import (
	"strings"

	"pantrypilot-backend/domain"
	"pantrypilot-backend/pkg/money"
)

type bucket int

const (
	bucketRegular bucket = iota
	bucketTax
	bucketTotal
)

var (
	taxNames   = map[string]struct{}{"GST": {}, "TAX": {}, "VAT": {}}
	totalNames = map[string]struct{}{"TOTAL": {}, "AMOUNT": {}, "PAYMENT": {}}
)

// classify puts a candidate item into exactly one bucket. Category labels
// match exact-string; names match case-insensitively against a fixed set.
func classify(item domain.CandidateItem) bucket {
	name := strings.ToUpper(strings.TrimSpace(item.Name))
	if item.Category == "Tax" {
		return bucketTax
	}
	if _, ok := taxNames[name]; ok {
		return bucketTax
	}
	if item.Category == "Total" {
		return bucketTotal
	}
	if _, ok := totalNames[name]; ok {
		return bucketTotal
	}
	return bucketRegular
}

// EnsureTaxLine appends a synthesized GST item when the stated total exceeds
// the itemized subtotal and no tax line is present. The first tax-like item
// by iteration order governs the "already has tax" check; multiple tax
// entries are not deduplicated. When no total line exists, or the total does
// not exceed the subtotal, the candidates are returned unchanged: that
// ambiguity is accepted, not an error.
func EnsureTaxLine(items []domain.CandidateItem) []domain.CandidateItem {
	var (
		subtotal  float64
		symbol    string
		total     float64
		haveTotal bool
	)

	for _, item := range items {
		switch classify(item) {
		case bucketTax:
			return items
		case bucketTotal:
			if !haveTotal {
				total = money.Value(item.Price)
				haveTotal = true
			}
		default:
			// Unparsable prices contribute zero to the subtotal.
			subtotal += money.Value(item.Price)
			if symbol == "" {
				symbol = money.Symbol(item.Price)
			}
		}
	}

	if !haveTotal || total <= subtotal {
		return items
	}

	gst := money.FromFloat(total-subtotal, symbol)
	return append(items, domain.CandidateItem{
		Name:        "GST",
		Description: "Goods and Services Tax",
		Price:       gst.String(),
		Category:    "Tax",
	})
}
