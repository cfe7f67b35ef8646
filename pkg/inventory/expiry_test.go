package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInventoryCategory(t *testing.T) {
	excluded := []string{"Tax", "tax", "Fee", "Deposit", "Total", "Subtotal", " total "}
	for _, category := range excluded {
		assert.False(t, IsInventoryCategory(category), category)
	}

	included := []string{"Dairy", "Produce", "Frozen", "Other", ""}
	for _, category := range included {
		assert.True(t, IsInventoryCategory(category), category)
	}
}

func TestDefaultExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		category string
		days     int
	}{
		{category: "Produce", days: 7},
		{category: "Fresh Fruit", days: 7},
		{category: "Vegetables", days: 7},
		{category: "Dairy", days: 7},
		{category: "Meat", days: 7},
		{category: "Seafood", days: 7},
		{category: "Bakery", days: 3},
		{category: "Bread & Rolls", days: 3},
		{category: "Frozen", days: 90},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			expiry := DefaultExpiry(tt.category, now)
			require.NotNil(t, expiry)
			assert.Equal(t, now.AddDate(0, 0, tt.days), *expiry)
		})
	}
}

func TestDefaultExpiryNoRule(t *testing.T) {
	now := time.Now()
	for _, category := range []string{"Pantry", "Household", "Other", ""} {
		assert.Nil(t, DefaultExpiry(category, now), category)
	}
}
