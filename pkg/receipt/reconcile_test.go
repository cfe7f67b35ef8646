package receipt

import (
	"testing"

	"pantrypilot-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTaxLineAppendsGST(t *testing.T) {
	items := []domain.CandidateItem{
		{Name: "Milk", Price: "$3.00", Category: "Dairy"},
		{Name: "Total", Price: "$3.30", Category: "Total"},
	}

	out := EnsureTaxLine(items)

	require.Len(t, out, 3)
	gst := out[2]
	assert.Equal(t, "GST", gst.Name)
	assert.Equal(t, "Tax", gst.Category)
	assert.Equal(t, "$0.30", gst.Price)
}

func TestEnsureTaxLineExistingTaxWins(t *testing.T) {
	tests := []struct {
		name string
		item domain.CandidateItem
	}{
		{name: "tax category", item: domain.CandidateItem{Name: "Levy", Price: "$0.10", Category: "Tax"}},
		{name: "gst name", item: domain.CandidateItem{Name: "gst", Price: "$0.10", Category: "Other"}},
		{name: "vat name", item: domain.CandidateItem{Name: "VAT", Price: "$0.10", Category: "Other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []domain.CandidateItem{
				{Name: "Milk", Price: "$3.00", Category: "Dairy"},
				tt.item,
				{Name: "Total", Price: "$5.00", Category: "Total"},
			}

			out := EnsureTaxLine(items)
			assert.Equal(t, items, out)
		})
	}
}

func TestEnsureTaxLineNoTotal(t *testing.T) {
	items := []domain.CandidateItem{
		{Name: "Milk", Price: "$3.00", Category: "Dairy"},
		{Name: "Bread", Price: "$2.00", Category: "Bakery"},
	}

	out := EnsureTaxLine(items)
	assert.Equal(t, items, out)
}

func TestEnsureTaxLineTotalNotExceedingSubtotal(t *testing.T) {
	items := []domain.CandidateItem{
		{Name: "Milk", Price: "$3.00", Category: "Dairy"},
		{Name: "Total", Price: "$3.00", Category: "Total"},
	}

	out := EnsureTaxLine(items)
	assert.Equal(t, items, out)
}

func TestEnsureTaxLineFirstTotalGoverns(t *testing.T) {
	items := []domain.CandidateItem{
		{Name: "Milk", Price: "$3.00", Category: "Dairy"},
		{Name: "Total", Price: "$3.30", Category: "Total"},
		{Name: "Amount", Price: "$9.99", Category: "Other"},
	}

	out := EnsureTaxLine(items)

	require.Len(t, out, 4)
	assert.Equal(t, "$0.30", out[3].Price)
}

func TestEnsureTaxLineSymbolFromFirstRegularItem(t *testing.T) {
	items := []domain.CandidateItem{
		{Name: "Croissant", Price: "€2.00", Category: "Bakery"},
		{Name: "Total", Price: "€2.20", Category: "Total"},
	}

	out := EnsureTaxLine(items)

	require.Len(t, out, 3)
	assert.Equal(t, "€0.20", out[2].Price)
}

func TestEnsureTaxLineNoRegularItems(t *testing.T) {
	// With nothing itemized the whole total is attributed to GST, with the
	// default symbol.
	items := []domain.CandidateItem{
		{Name: "Total", Price: "$5.00", Category: "Total"},
	}

	out := EnsureTaxLine(items)

	require.Len(t, out, 2)
	assert.Equal(t, "$5.00", out[1].Price)
}

func TestEnsureTaxLineUnparsablePrices(t *testing.T) {
	items := []domain.CandidateItem{
		{Name: "Milk", Price: "N/A", Category: "Dairy"},
		{Name: "Bread", Price: "$2.00", Category: "Bakery"},
		{Name: "Total", Price: "$2.50", Category: "Total"},
	}

	out := EnsureTaxLine(items)

	require.Len(t, out, 4)
	assert.Equal(t, "$0.50", out[3].Price)
}
