package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a currency amount in minor units (cents). Price strings coming
// from receipts and model output ("$1,234.56") are converted to Amount at the
// system edge and formatted back only for display.
type Amount struct {
	Units    int64  `gorm:"column:units" json:"units"`
	Currency string `gorm:"column:currency" json:"currency"`
}

const DefaultSymbol = "$"

func New(units int64, symbol string) Amount {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return Amount{Units: units, Currency: symbol}
}

func (a Amount) IsZero() bool {
	return a.Units == 0 && a.Currency == ""
}

func (a Amount) Float() float64 {
	return float64(a.Units) / 100
}

// String renders the amount as a symbol-prefixed string with exactly two
// decimal places, e.g. "$0.30".
func (a Amount) String() string {
	symbol := a.Currency
	if symbol == "" {
		symbol = DefaultSymbol
	}
	units := a.Units
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return fmt.Sprintf("%s%s%d.%02d", symbol, sign, units/100, units%100)
}

// Symbol returns the currency symbol prefixing a price string, or the default
// "$" when the string has no prefix before its first numeric character.
func Symbol(s string) string {
	s = strings.TrimSpace(s)
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			prefix := strings.TrimSpace(s[:i])
			if prefix == "" {
				return DefaultSymbol
			}
			return prefix
		}
	}
	return DefaultSymbol
}

// Value parses a price string leniently: every character that is not a digit,
// dot or minus sign is stripped before parsing. Strings with no numeric
// content parse to 0; callers that need to distinguish use Parse.
func Value(s string) float64 {
	f, _ := parseLoose(s)
	return f
}

// Parse converts a price string to an Amount, keeping the symbol prefix. The
// second return value reports whether any numeric content was found.
func Parse(s string) (Amount, bool) {
	f, ok := parseLoose(s)
	return Amount{Units: toUnits(f), Currency: Symbol(s)}, ok
}

// FromFloat rounds a major-unit value to the nearest cent.
func FromFloat(f float64, symbol string) Amount {
	return New(toUnits(f), symbol)
}

func toUnits(f float64) int64 {
	return int64(math.Round(f * 100))
}

func parseLoose(s string) (float64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
