package badge

import (
	"math"
	"testing"
)

func TestGeometryExamples(t *testing.T) {
	tests := []struct {
		name string
		got  func() float64
		want float64
	}{
		{"corner radius 0.3 at 100", func() float64 { return Resolve(Spec{BadgeCornerRadius: Ptr(0.3)}).CornerRadius(100) }, 30},
		{"stroke 0.001 at 10 hits floor", func() float64 { return Standard().StrokeWidth(10) }, 1},
		{"stroke 0.02 at 200", func() float64 { return Resolve(Spec{BadgeStrokeWidth: Ptr(0.02)}).StrokeWidth(200) }, 4},
		{"padding default at 64", func() float64 { return Standard().Padding(64) }, 9.6},
		{"padding 0.2 at 50", func() float64 { return Resolve(Spec{IconPadding: Ptr(0.2)}).Padding(50) }, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrokeWidthFloor(t *testing.T) {
	styles := []Style{
		Standard(),
		Resolve(Spec{BadgeStrokeWidth: Ptr(0.0)}),
		Resolve(Spec{BadgeStrokeWidth: Ptr(-1.0)}),
		Resolve(Spec{BadgeStrokeWidth: Ptr(0.5)}),
	}
	sizes := []float64{0.01, 0.5, 1, 16, 32, 64, 512, 4096}

	for i, s := range styles {
		for _, size := range sizes {
			if w := s.StrokeWidth(size); w < MinStrokeWidth {
				t.Errorf("style %d: StrokeWidth(%v) = %v, want >= %v", i, size, w, MinStrokeWidth)
			}
		}
	}
}

func TestGeometryScalesLinearly(t *testing.T) {
	s := Resolve(Spec{
		BadgeColor:        Ptr(Blue),
		BadgeCornerRadius: Ptr(0.25),
		BadgeStrokeWidth:  Ptr(0.02),
		IconPadding:       Ptr(0.18),
		IconOffset:        Point{X: 0.05, Y: -0.03},
	})

	for _, size := range []float64{64, 100, 333} {
		for _, mode := range []ColorScheme{Light, Dark} {
			g1 := ComputeGeometry(s, size, mode)
			g2 := ComputeGeometry(s, 2*size, mode)
			if math.Abs(g2.CornerRadius-2*g1.CornerRadius) > 1e-9 {
				t.Errorf("CornerRadius(%v) = %v, want %v", 2*size, g2.CornerRadius, 2*g1.CornerRadius)
			}
			if math.Abs(g2.Padding-2*g1.Padding) > 1e-9 {
				t.Errorf("Padding(%v) = %v, want %v", 2*size, g2.Padding, 2*g1.Padding)
			}
			if math.Abs(g2.StrokeWidth-2*g1.StrokeWidth) > 1e-9 {
				t.Errorf("StrokeWidth(%v) = %v, want %v", 2*size, g2.StrokeWidth, 2*g1.StrokeWidth)
			}
			if math.Abs(g2.Offset.X-2*g1.Offset.X) > 1e-9 || math.Abs(g2.Offset.Y-2*g1.Offset.Y) > 1e-9 {
				t.Errorf("Offset(%v) = %v, want %v", 2*size, g2.Offset, g1.Offset.Scale(2))
			}
		}
	}
}

func TestComputeGeometry(t *testing.T) {
	s := Resolve(Spec{IconOffset: Point{X: 0.1, Y: -0.05}})
	g := ComputeGeometry(s, 40, Dark)

	want := Geometry{
		Size:            40,
		CornerRadius:    12,
		StrokeWidth:     1,
		Padding:         6,
		Offset:          Point{X: 4, Y: -2},
		BadgeColor:      Black,
		IconColorScheme: Dark,
	}
	if math.Abs(g.CornerRadius-want.CornerRadius) > 1e-9 || math.Abs(g.Padding-want.Padding) > 1e-9 {
		t.Errorf("ComputeGeometry() = %+v, want %+v", g, want)
	}
	if math.Abs(g.Offset.X-4) > 1e-9 || math.Abs(g.Offset.Y+2) > 1e-9 {
		t.Errorf("Offset = %v, want %v", g.Offset, want.Offset)
	}
	if g.Size != want.Size || g.StrokeWidth != want.StrokeWidth || g.BadgeColor != want.BadgeColor || g.IconColorScheme != want.IconColorScheme {
		t.Errorf("ComputeGeometry() = %+v, want %+v", g, want)
	}
}

func TestEffectiveBadgeColor(t *testing.T) {
	tests := []struct {
		name  string
		spec  Spec
		light Color
		dark  Color
	}{
		{"white badge turns black", Spec{}, White, Black},
		{"colored badge stays", Spec{BadgeColor: Ptr(Green)}, Green, Green},
		{"explicit dark override", Spec{BadgeColor: Ptr(Green), BadgeColorDarkMode: Ptr(Teal)}, Green, Teal},
		{"white badge explicit dark", Spec{BadgeColorDarkMode: Ptr(Gray)}, White, Gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Resolve(tt.spec)
			if got := s.EffectiveBadgeColor(Light); got != tt.light {
				t.Errorf("EffectiveBadgeColor(Light) = %v, want %v", got, tt.light)
			}
			if got := s.EffectiveBadgeColor(Dark); got != tt.dark {
				t.Errorf("EffectiveBadgeColor(Dark) = %v, want %v", got, tt.dark)
			}
		})
	}
}

func TestEffectiveIconColorScheme(t *testing.T) {
	free := Standard()
	if got := free.EffectiveIconColorScheme(Dark); got != Dark {
		t.Errorf("unpinned EffectiveIconColorScheme(Dark) = %v, want dark", got)
	}
	if got := free.EffectiveIconColorScheme(Light); got != Light {
		t.Errorf("unpinned EffectiveIconColorScheme(Light) = %v, want light", got)
	}

	pinned := Resolve(Spec{IconColorScheme: Ptr(Light)})
	if got := pinned.EffectiveIconColorScheme(Dark); got != Light {
		t.Errorf("pinned EffectiveIconColorScheme(Dark) = %v, want light", got)
	}
}

func TestForeground(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		kind     PaintKind
		colors   int
		gradient bool
	}{
		{"single gradient", Resolve(Spec{}), PaintSingle, 1, true},
		{"single flat", Resolve(Spec{IconGradient: Ptr(false)}), PaintSingle, 1, false},
		{"palette", Resolve(Spec{IconColors: []Color{Blue, Yellow}}), PaintPalette, 2, true},
		{"palette flat", Resolve(Spec{IconColors: []Color{Blue, Yellow}, IconGradient: Ptr(false)}), PaintPalette, 2, false},
		{"empty palette", Style{IconGradient: true}, PaintNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := tt.style.Foreground()
			if fg.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", fg.Kind, tt.kind)
			}
			if len(fg.Colors) != tt.colors {
				t.Errorf("len(Colors) = %d, want %d", len(fg.Colors), tt.colors)
			}
			if fg.Gradient != tt.gradient {
				t.Errorf("Gradient = %v, want %v", fg.Gradient, tt.gradient)
			}
		})
	}
}
