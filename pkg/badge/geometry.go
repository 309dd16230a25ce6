package badge

import "math"

// MinStrokeWidth is the floor applied by [Style.StrokeWidth].
const MinStrokeWidth = 1.0

// Geometry holds the absolute values used to draw a style at one size in one
// ambient color scheme.
type Geometry struct {
	Size            float64     `json:"size"`
	CornerRadius    float64     `json:"corner_radius"`
	StrokeWidth     float64     `json:"stroke_width"`
	Padding         float64     `json:"padding"`
	Offset          Point       `json:"offset"`
	BadgeColor      Color       `json:"badge_color"`
	IconColorScheme ColorScheme `json:"icon_color_scheme"`
}

// ComputeGeometry converts the ratio fields of s to absolute values for a
// badge of side size and selects the variants for mode.
func ComputeGeometry(s Style, size float64, mode ColorScheme) Geometry {
	return Geometry{
		Size:            size,
		CornerRadius:    s.CornerRadius(size),
		StrokeWidth:     s.StrokeWidth(size),
		Padding:         s.Padding(size),
		Offset:          s.Offset(size),
		BadgeColor:      s.EffectiveBadgeColor(mode),
		IconColorScheme: s.EffectiveIconColorScheme(mode),
	}
}

// CornerRadius returns the badge corner radius for a badge of the given size.
func (s Style) CornerRadius(size float64) float64 {
	return s.BadgeCornerRadius * size
}

// StrokeWidth returns the badge stroke width for a badge of the given size.
// It is never thinner than [MinStrokeWidth], so small badges keep a visible
// hairline.
func (s Style) StrokeWidth(size float64) float64 {
	return math.Max(s.BadgeStrokeWidth*size, MinStrokeWidth)
}

// Padding returns the icon inset for a badge of the given size.
func (s Style) Padding(size float64) float64 {
	return s.IconPadding * size
}

// Offset returns the icon displacement for a badge of the given size.
func (s Style) Offset(size float64) Point {
	return s.IconOffset.Scale(size)
}

// EffectiveBadgeColor returns the badge color to paint in mode.
func (s Style) EffectiveBadgeColor(mode ColorScheme) Color {
	if mode == Dark && s.BadgeColorDarkMode != nil {
		return *s.BadgeColorDarkMode
	}
	return s.BadgeColor
}

// EffectiveIconColorScheme returns the pinned icon scheme, or ambient when
// the style does not pin one.
func (s Style) EffectiveIconColorScheme(ambient ColorScheme) ColorScheme {
	if s.IconColorScheme != nil {
		return *s.IconColorScheme
	}
	return ambient
}

// PaintKind tells a renderer how to apply the icon colors.
type PaintKind int

const (
	// PaintNone leaves the glyph's own colors alone.
	PaintNone PaintKind = iota
	// PaintSingle applies one foreground color.
	PaintSingle
	// PaintPalette applies a primary and a secondary color.
	PaintPalette
)

func (k PaintKind) String() string {
	switch k {
	case PaintSingle:
		return "single"
	case PaintPalette:
		return "palette"
	default:
		return "none"
	}
}

// Foreground describes how the icon colors of a style are applied.
type Foreground struct {
	Kind     PaintKind
	Colors   []Color
	Gradient bool
}

// Foreground returns the color application for s. Two colors paint a
// two-tone foreground, one color a single foreground. An empty palette
// cannot come out of [Resolve]; it yields [PaintNone].
func (s Style) Foreground() Foreground {
	switch {
	case len(s.IconColors) >= 2:
		return Foreground{Kind: PaintPalette, Colors: s.IconColors[:2:2], Gradient: s.IconGradient}
	case len(s.IconColors) == 1:
		return Foreground{Kind: PaintSingle, Colors: s.IconColors[:1:1], Gradient: s.IconGradient}
	default:
		return Foreground{Kind: PaintNone}
	}
}
