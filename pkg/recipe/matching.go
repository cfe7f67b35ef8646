package recipe

import (
	"strings"
)

// NormalizeInventoryNames lower-cases and trims inventory item names for
// matching, dropping empties.
func NormalizeInventoryNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			normalized = append(normalized, name)
		}
	}
	return normalized
}

// MatchesInventory reports whether any ingredient matches any inventory name.
// The match is a coarse bidirectional substring check: "egg" matches "eggs"
// and "eggplant" alike. That imprecision is accepted.
func MatchesInventory(ingredientNames []string, inventoryNames []string) bool {
	for _, ingredient := range ingredientNames {
		ingredient = strings.ToLower(strings.TrimSpace(ingredient))
		if ingredient == "" {
			continue
		}
		for _, have := range inventoryNames {
			if strings.Contains(ingredient, have) || strings.Contains(have, ingredient) {
				return true
			}
		}
	}
	return false
}
