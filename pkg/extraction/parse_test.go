package extraction

import (
	"errors"
	"testing"

	"pantrypilot-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemsPlainArray(t *testing.T) {
	raw := `[{"name":"Milk","description":"2L","price":"$3.00","category":"Dairy"}]`

	items, err := ParseItems(raw)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "$3.00", items[0].Price)
}

func TestParseItemsStripsCodeFences(t *testing.T) {
	raw := "```json\n[{\"name\":\"Milk\",\"price\":\"$3.00\",\"category\":\"Dairy\"}]\n```"

	items, err := ParseItems(raw)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestParseItemsSlicesSurroundingProse(t *testing.T) {
	raw := `Here are the extracted items:
[{"name":"Bread","price":"$2.50","category":"Bakery"}]
Let me know if you need anything else.`

	items, err := ParseItems(raw)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bread", items[0].Name)
}

func TestParseItemsHardFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no array at all", raw: "I could not read the receipt."},
		{name: "broken json inside brackets", raw: `[{"name": "Milk", "price":]`},
		{name: "empty input", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseItems(tt.raw)

			require.Error(t, err)
			assert.Nil(t, items)

			var parseErr *domain.ExtractionParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.raw, parseErr.Raw)
		})
	}
}

func TestParseItemsEmptyArray(t *testing.T) {
	items, err := ParseItems("[]")

	require.NoError(t, err)
	assert.Empty(t, items)
}
