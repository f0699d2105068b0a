package match

import (
	"slices"
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"SquadID", "squadid"},
		{"squad_id", "squadid"},
		{"squad-id", "squadid"},
		{"squadId", "squadid"},
		{"SQUADID", "squadid"},

		{"maxSquadSize", "maxsquadsize"},
		{"MaxSquadSize", "maxsquadsize"},
		{"HPRegen", "hpregen"},
		{"nestedValues", "nestedvalues"},

		{"move_speed", "movespeed"},
		{"MOVE_SPEED", "movespeed"},
		{"Move_Speed", "movespeed"},

		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"HP", "hp"},

		{"unit_max-HP", "unitmaxhp"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"SquadID", []string{"Squad", "ID"}},
		{"maxSquadSize", []string{"max", "Squad", "Size"}},
		{"HPRegen", []string{"HP", "Regen"}},
		{"regenHP", []string{"regen", "HP"}},
		{"move_speed", []string{"move", "speed"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AB", []string{"AB"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
