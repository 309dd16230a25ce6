package glyph

import (
	"strings"
	"testing"

	"github.com/matzehuels/badgeicon/pkg/fonts"
)

func TestTextOutline(t *testing.T) {
	s, err := Text("Ab").Outline()
	if err != nil {
		t.Fatal(err)
	}
	if s.ViewBox.Empty() {
		t.Fatalf("view box is empty: %v", s.ViewBox)
	}
	if s.ViewBox.Y >= 0 {
		t.Errorf("glyphs should sit above the baseline, box = %v", s.ViewBox)
	}
	d := s.Fill[0].D
	if !strings.HasPrefix(d, "M") || !strings.HasSuffix(d, "Z") {
		t.Errorf("unexpected path data %q", d[:min(len(d), 40)])
	}
	if s.Layers(false)[0].Stroke {
		t.Error("text line variant should stay filled")
	}
}

func TestTextOutlineEmpty(t *testing.T) {
	if _, err := Text("  ").Outline(); err == nil {
		t.Error("blank text outlined without error")
	}
}

func TestTextWidth(t *testing.T) {
	f, err := fonts.Regular()
	if err != nil {
		t.Fatal(err)
	}
	w1, err := TextWidth(f, "wifi", 10)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := TextWidth(f, "wifi", 20)
	if err != nil {
		t.Fatal(err)
	}
	if w1 <= 0 {
		t.Fatalf("width = %v", w1)
	}
	if diff := w2 - 2*w1; diff > 0.01 || diff < -0.01 {
		t.Errorf("width does not scale with size: %v vs %v", w1, w2)
	}
	wide, _ := TextWidth(f, "wifi wifi", 10)
	if wide <= w1 {
		t.Errorf("longer text is not wider: %v <= %v", wide, w1)
	}
}

func TestTextPath(t *testing.T) {
	f, err := fonts.Regular()
	if err != nil {
		t.Fatal(err)
	}
	d, err := TextPath(f, "ok", 10, 50, 12)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(d, "M1") {
		t.Errorf("path should start near x=10, got %q", d[:min(len(d), 20)])
	}
}
