package config

import (
	"testing"
)

func TestValidatorInstanceIsShared(t *testing.T) {
	v1 := validatorInstance()
	v2 := validatorInstance()

	// Should return the same instance (singleton)
	if v1 != v2 {
		t.Error("validatorInstance should return the same instance (singleton pattern)")
	}
}

func TestHexColorValidation(t *testing.T) {
	v := validatorInstance()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"long form", "#F9A825", true},
		{"lower case", "#f9a825", true},
		{"short form", "#fa2", true},
		{"missing hash", "F9A825", true},
		{"empty", "", false},
		{"five digits", "#12345", false},
		{"not hex", "#GGGGGG", false},
		{"named colour", "red", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "hex_color")
			if (err == nil) != tt.expected {
				t.Errorf("hex_color(%q) valid = %v, want %v", tt.value, err == nil, tt.expected)
			}
		})
	}
}

func TestSizePresetValidation(t *testing.T) {
	v := validatorInstance()

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"small", "small", true},
		{"medium", "medium", true},
		{"large upper case", "LARGE", true},
		{"unknown", "huge", false},
		{"pixel count", "180", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "size_preset")
			if (err == nil) != tt.expected {
				t.Errorf("size_preset(%q) valid = %v, want %v", tt.value, err == nil, tt.expected)
			}
		})
	}
}
