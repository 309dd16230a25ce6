package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateIconName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "wifi", false},
		{"valid camel", "airplaneMode", false},
		{"valid with dash", "prominent-alert", false},
		{"valid with dot", "checkmark.circle", false},

		{"empty", "", true},
		{"too long", "a" + strings.Repeat("b", 200), true},
		{"leading digit", "1wifi", true},
		{"path traversal", "a..b", true},
		{"slash", "a/b", true},
		{"space", "a b", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIconName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIconName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("ValidateIconName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	tests := []struct {
		input   float64
		wantErr bool
	}{
		{8, false},
		{64, false},
		{4096, false},
		{7.9, true},
		{0, true},
		{-32, true},
		{5000, true},
		{math.NaN(), true},
	}

	for _, tt := range tests {
		err := ValidateSize(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateSize(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	for _, f := range []string{"", "SVG", "gif", "svg "} {
		err := ValidateFormat(f)
		if !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v, want %s", f, err, ErrCodeInvalidFormat)
		}
	}
}
