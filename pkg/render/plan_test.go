package render

import (
	"math"
	"testing"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/glyph"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBuild(t *testing.T) {
	icon := badge.NewIcon("sun", glyph.Symbol("sun.max"), badge.Spec{
		IconPadding: badge.Ptr(0.25),
		IconOffset:  badge.Point{X: 0.1},
	}).WithDarkGlyph(glyph.Symbol("moon"))

	light := Build(icon, 100, badge.Light)
	if light.Glyph != glyph.Symbol("sun.max") || light.BackgroundColor != badge.White {
		t.Errorf("light = %+v", light)
	}
	if light.StrokeColor != badge.WhiteBadgeStrokeColor || light.StrokeWidth != 1 {
		t.Errorf("stroke = %v %v", light.StrokeColor, light.StrokeWidth)
	}
	if !approx(light.Padding, 25) || !approx(light.Offset.X, 10) || !approx(light.CornerRadius, 30) {
		t.Errorf("geometry = %v %v %v", light.Padding, light.Offset, light.CornerRadius)
	}

	dark := Build(icon, 100, badge.Dark)
	if dark.Glyph != glyph.Symbol("moon") {
		t.Errorf("dark glyph = %v", dark.Glyph)
	}
	if dark.BackgroundColor != badge.Black || dark.IconColorScheme != badge.Dark {
		t.Errorf("dark = %v %v", dark.BackgroundColor, dark.IconColorScheme)
	}
	if dark.Shape.Fill[0].D == light.Shape.Fill[0].D {
		t.Error("dark shape should be the moon outline")
	}
	if dark.Name != "sun" {
		t.Errorf("Name = %q", dark.Name)
	}
}

func TestInnerRect(t *testing.T) {
	tests := []struct {
		size, radius, stroke float64
		want                 Rect
		wantRadius           float64
	}{
		{32, 9.6, 1, Rect{1, 1, 30, 30}, 8.6},
		{100, 0, 2, Rect{2, 2, 96, 96}, 0},
		{10, 0.5, 3, Rect{3, 3, 4, 4}, 0},
	}
	for _, tt := range tests {
		ins := Instructions{Size: tt.size, CornerRadius: tt.radius, StrokeWidth: tt.stroke}
		got, r := ins.Inner()
		if got != tt.want || !approx(r, tt.wantRadius) {
			t.Errorf("Inner(%v) = %v r=%v, want %v r=%v", tt, got, r, tt.want, tt.wantRadius)
		}
	}
	outer, r := Instructions{Size: 32, CornerRadius: -1}.Outer()
	if outer != (Rect{W: 32, H: 32}) || r != 0 {
		t.Errorf("Outer() = %v r=%v", outer, r)
	}
}

func TestPlacement(t *testing.T) {
	ins := Instructions{
		Size:    100,
		Padding: 10,
		Offset:  badge.Point{Y: -5},
		Shape:   glyph.Shape{ViewBox: glyph.ViewBox{W: 48, H: 24}},
	}
	p, ok := ins.Placement()
	if !ok {
		t.Fatal("Placement() not ok")
	}
	// 80x80 box at (10, 5); a 2:1 view box scales by 80/48 and is centered
	// vertically.
	if !approx(p.Scale, 80.0/48) {
		t.Errorf("Scale = %v", p.Scale)
	}
	x0, y0 := p.Apply(0, 0)
	x1, y1 := p.Apply(48, 24)
	if !approx(x0, 10) || !approx(x1, 90) {
		t.Errorf("x span = %v..%v", x0, x1)
	}
	if !approx((y0+y1)/2, 45) {
		t.Errorf("vertical center = %v, want 45", (y0+y1)/2)
	}
	gx, gy := p.Invert(x1, y1)
	if !approx(gx, 48) || !approx(gy, 24) {
		t.Errorf("Invert = %v,%v", gx, gy)
	}
}

func TestPlacementNegativeOrigin(t *testing.T) {
	ins := Instructions{
		Size:  24,
		Shape: glyph.Shape{ViewBox: glyph.ViewBox{X: -12, Y: -12, W: 24, H: 24}},
	}
	p, _ := ins.Placement()
	x, y := p.Apply(-12, -12)
	if !approx(x, 0) || !approx(y, 0) {
		t.Errorf("origin maps to %v,%v", x, y)
	}
}

func TestPlacementNoRoom(t *testing.T) {
	ins := Instructions{
		Size:    32,
		Padding: 20,
		Shape:   glyph.Shape{ViewBox: glyph.SymbolBox},
	}
	if _, ok := ins.Placement(); ok {
		t.Error("padding past the center should leave nothing to draw")
	}
	if !ins.IconBox().Empty() {
		t.Error("IconBox should be empty")
	}
}
