package badge

// Point is an offset expressed as a ratio of the badge size.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Scale returns the point multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Spec is a partially specified badge style. Nil pointers are unset and get
// their defaults from [Resolve].
//
// Size-based fields (offset, padding, corner radius, stroke width) are ratios
// of the badge size so they scale with it. A BadgeCornerRadius of 0.5 makes
// the badge circular.
type Spec struct {
	// IconColor overrides the single icon color.
	IconColor *Color `json:"icon_color,omitempty" yaml:"icon_color,omitempty" toml:"icon_color,omitempty"`
	// IconColors overrides the icon palette. Takes precedence over IconColor.
	IconColors []Color `json:"icon_colors,omitempty" yaml:"icon_colors,omitempty" toml:"icon_colors,omitempty"`
	// IconColorScheme pins the icon's own light/dark rendering.
	IconColorScheme *ColorScheme `json:"icon_color_scheme,omitempty" yaml:"icon_color_scheme,omitempty" toml:"icon_color_scheme,omitempty"`
	// IconFill selects the filled glyph variant, true by default.
	IconFill *bool `json:"icon_fill,omitempty" yaml:"icon_fill,omitempty" toml:"icon_fill,omitempty"`
	// IconGradient paints icon colors as gradients, true by default.
	IconGradient *bool `json:"icon_gradient,omitempty" yaml:"icon_gradient,omitempty" toml:"icon_gradient,omitempty"`
	// IconOffset displaces the icon, (0, 0) by default. The zero offset is
	// left out when encoding, like the unset fields around it.
	IconOffset Point `json:"icon_offset,omitzero" yaml:"icon_offset,omitempty" toml:"icon_offset,omitempty"`
	// IconPadding insets the icon, 0.15 by default.
	IconPadding *float64 `json:"icon_padding,omitempty" yaml:"icon_padding,omitempty" toml:"icon_padding,omitempty"`
	// IconRenderingMode is Monochrome by default.
	IconRenderingMode RenderingMode `json:"icon_rendering_mode,omitempty" yaml:"icon_rendering_mode,omitempty" toml:"icon_rendering_mode,omitempty"`

	// BadgeColor is White by default.
	BadgeColor *Color `json:"badge_color,omitempty" yaml:"badge_color,omitempty" toml:"badge_color,omitempty"`
	// BadgeColorDarkMode overrides the badge color in dark mode.
	BadgeColorDarkMode *Color `json:"badge_color_dark_mode,omitempty" yaml:"badge_color_dark_mode,omitempty" toml:"badge_color_dark_mode,omitempty"`
	// BadgeCornerRadius is 0.3 by default.
	BadgeCornerRadius *float64 `json:"badge_corner_radius,omitempty" yaml:"badge_corner_radius,omitempty" toml:"badge_corner_radius,omitempty"`
	// BadgeGradient paints the badge as a gradient, true by default.
	BadgeGradient *bool `json:"badge_gradient,omitempty" yaml:"badge_gradient,omitempty" toml:"badge_gradient,omitempty"`
	// BadgeStrokeColor overrides the badge stroke color.
	BadgeStrokeColor *Color `json:"badge_stroke_color,omitempty" yaml:"badge_stroke_color,omitempty" toml:"badge_stroke_color,omitempty"`
	// BadgeStrokeWidth is 0.001 by default, a hairline.
	BadgeStrokeWidth *float64 `json:"badge_stroke_width,omitempty" yaml:"badge_stroke_width,omitempty" toml:"badge_stroke_width,omitempty"`
}

// Ptr returns a pointer to v. It keeps Spec literals short:
//
//	badge.Spec{BadgeColor: badge.Ptr(badge.Blue), IconFill: badge.Ptr(false)}
func Ptr[T any](v T) *T {
	return &v
}
