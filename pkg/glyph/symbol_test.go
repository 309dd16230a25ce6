package glyph

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/badgeicon/pkg/badge"
)

func TestSymbolsWellFormed(t *testing.T) {
	names := Symbols()
	if len(names) < 30 {
		t.Fatalf("registry has %d symbols", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("Symbols() is not sorted")
	}
	for _, name := range names {
		shape, err := Symbol(name).Outline()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if shape.ViewBox != SymbolBox {
			t.Errorf("%s: view box %v", name, shape.ViewBox)
		}
		if len(shape.Fill) == 0 {
			t.Errorf("%s: no layers", name)
		}
		for i, l := range shape.Fill {
			if !strings.HasPrefix(l.D, "M") {
				t.Errorf("%s layer %d: path does not start with M", name, i)
			}
			if l.Stroke && l.Width <= 0 {
				t.Errorf("%s layer %d: stroke without width", name, i)
			}
		}
	}
}

func TestSymbolFillSuffix(t *testing.T) {
	tests := []struct {
		name  string
		known bool
		solid bool
	}{
		{"heart", true, false},
		{"heart.fill", true, true},
		{"hand.raised.fill", true, true},
		{"hand.raised", true, false},
		{"checkmark.shield.fill", true, true},
		{"phone.fill", true, true},
		{"gear", true, false},
		{"gear.fill", true, true},
		{"nope.fill", false, false},
		{"nope", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Symbol(tt.name)
			if s.Known() != tt.known {
				t.Fatalf("Known() = %v, want %v", s.Known(), tt.known)
			}
			if !tt.known {
				return
			}
			shape, err := s.Outline()
			if err != nil {
				t.Fatal(err)
			}
			lined := shape.Layers(false)
			solid := !lined[0].Stroke
			if solid != tt.solid {
				t.Errorf("line variant solid = %v, want %v", solid, tt.solid)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	shape := Shape{ViewBox: SymbolBox, Fill: []Layer{{D: "M0 0H24V24H0Z"}}}
	if err := Register("square.test", shape); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { delete(symbols, "square.test") })
	if !Symbol("square.test").Known() {
		t.Error("registered symbol is unknown")
	}

	if err := Register("x.fill", shape); err == nil {
		t.Error("Register accepted a .fill name")
	}
	if err := Register("empty", Shape{ViewBox: SymbolBox}); err == nil {
		t.Error("Register accepted a shape without layers")
	}
}

func TestTinted(t *testing.T) {
	for name, want := range map[string]bool{
		"ladybug":      true,
		"paintpalette": true,
		"lightbulb":    true,
		"wifi":         false,
		"star":         false,
	} {
		shape, err := Symbol(name).Outline()
		if err != nil {
			t.Fatal(err)
		}
		if got := shape.Tinted(); got != want {
			t.Errorf("%s: Tinted() = %v, want %v", name, got, want)
		}
	}
	bug, _ := Symbol("ladybug").Outline()
	if c, _ := bug.Fill[0].Intrinsic(badge.Light); c != badge.Red {
		t.Errorf("ladybug body = %v, want red", c)
	}
}
