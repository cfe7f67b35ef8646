package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  float64
	}{
		{name: "plain", price: "3.00", want: 3.00},
		{name: "symbol prefix", price: "$4.50", want: 4.50},
		{name: "thousands separator", price: "$1,234.56", want: 1234.56},
		{name: "currency code prefix", price: "SGD 12.80", want: 12.80},
		{name: "no numeric content", price: "N/A", want: 0},
		{name: "empty", price: "", want: 0},
		{name: "negative", price: "-$2.00", want: -2.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Value(tt.price), 1e-9)
		})
	}
}

func TestParse(t *testing.T) {
	amount, ok := Parse("$1,234.56")
	assert.True(t, ok)
	assert.Equal(t, int64(123456), amount.Units)
	assert.Equal(t, "$", amount.Currency)

	amount, ok = Parse("N/A")
	assert.False(t, ok)
	assert.Equal(t, int64(0), amount.Units)
}

func TestString(t *testing.T) {
	assert.Equal(t, "$0.30", New(30, "$").String())
	assert.Equal(t, "$12.05", New(1205, "").String())
	assert.Equal(t, "€3.00", New(300, "€").String())
	assert.Equal(t, "$-1.50", New(-150, "$").String())
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{price: "$3.00", want: "$"},
		{price: "€4.20", want: "€"},
		{price: "Rp 15000", want: "Rp"},
		{price: "3.00", want: "$"},
		{price: "", want: "$"},
		{price: "-2.00", want: "$"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Symbol(tt.price))
	}
}

func TestFromFloatRounds(t *testing.T) {
	assert.Equal(t, int64(30), FromFloat(0.30000000000000004, "$").Units)
	assert.Equal(t, int64(100), FromFloat(0.999, "$").Units)
}
