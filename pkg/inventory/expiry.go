package inventory

import (
	"strings"
	"time"
)

// Categories that describe receipt bookkeeping lines rather than goods; they
// never become inventory items.
var nonInventoryCategories = map[string]struct{}{
	"tax":      {},
	"fee":      {},
	"deposit":  {},
	"total":    {},
	"subtotal": {},
}

type expiryRule struct {
	keywords []string
	days     int
}

// Rules are evaluated in order; the first keyword hit wins.
var expiryRules = []expiryRule{
	{keywords: []string{"produce", "fruit", "vegetable", "vegetables", "dairy", "meat", "seafood"}, days: 7},
	{keywords: []string{"bakery", "bread"}, days: 3},
	{keywords: []string{"frozen"}, days: 90},
}

// IsInventoryCategory reports whether a receipt item category describes goods
// that belong in the inventory. Matching is case-insensitive.
func IsInventoryCategory(category string) bool {
	_, excluded := nonInventoryCategories[strings.ToLower(strings.TrimSpace(category))]
	return !excluded
}

// DefaultExpiry picks an expiry date for a category by substring match on the
// lower-cased label. Categories with no matching rule get no expiry.
func DefaultExpiry(category string, now time.Time) *time.Time {
	lowered := strings.ToLower(category)
	for _, rule := range expiryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				expiry := now.AddDate(0, 0, rule.days)
				return &expiry
			}
		}
	}
	return nil
}
