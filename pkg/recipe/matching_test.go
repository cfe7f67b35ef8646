package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInventoryNames(t *testing.T) {
	names := NormalizeInventoryNames([]string{" Eggs ", "MILK", "", "  "})
	assert.Equal(t, []string{"eggs", "milk"}, names)
}

func TestMatchesInventory(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		inventory   []string
		want        bool
	}{
		{
			name:        "singular ingredient matches plural inventory",
			ingredients: []string{"egg"},
			inventory:   []string{"eggs"},
			want:        true,
		},
		{
			name:        "plural ingredient matches singular inventory",
			ingredients: []string{"eggs"},
			inventory:   []string{"egg"},
			want:        true,
		},
		{
			name:        "no overlap",
			ingredients: []string{"flour", "sugar"},
			inventory:   []string{"milk", "butter"},
			want:        false,
		},
		{
			name:        "one match suffices",
			ingredients: []string{"flour", "milk"},
			inventory:   []string{"milk"},
			want:        true,
		},
		{
			name:        "case insensitive on ingredients",
			ingredients: []string{"Chicken Breast"},
			inventory:   []string{"chicken"},
			want:        true,
		},
		{
			name:        "empty inventory",
			ingredients: []string{"egg"},
			inventory:   nil,
			want:        false,
		},
		{
			name:        "empty ingredients",
			ingredients: nil,
			inventory:   []string{"egg"},
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesInventory(tt.ingredients, tt.inventory))
		})
	}
}
