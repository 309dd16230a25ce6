package badge

import "slices"

// Style defaults.
const (
	DefaultIconPadding       = 0.15
	DefaultBadgeCornerRadius = 0.3
	DefaultBadgeStrokeWidth  = 0.001
)

// Fallback colors chosen by [Resolve] for unset fields.
const (
	// WhiteBadgeIconColor is black at 80% opacity.
	WhiteBadgeIconColor = Color(0xCC000000)
	// WhiteBadgeStrokeColor is a faint neutral stroke around white badges.
	WhiteBadgeStrokeColor = Color(0xFFE7E7E7)
	// WhiteBadgeDarkModeColor replaces a white badge in dark mode.
	WhiteBadgeDarkModeColor = Black
)

// Style is a fully resolved badge style. Every field is concrete except
// BadgeColorDarkMode, where nil means "keep BadgeColor in dark mode", and
// IconColorScheme, where nil means "follow the ambient scheme".
//
// Styles are values; the methods never mutate them.
type Style struct {
	IconColors        []Color       `json:"icon_colors" yaml:"icon_colors" toml:"icon_colors"`
	IconColorScheme   *ColorScheme  `json:"icon_color_scheme,omitempty" yaml:"icon_color_scheme,omitempty" toml:"icon_color_scheme,omitempty"`
	IconFill          bool          `json:"icon_fill" yaml:"icon_fill" toml:"icon_fill"`
	IconGradient      bool          `json:"icon_gradient" yaml:"icon_gradient" toml:"icon_gradient"`
	IconOffset        Point         `json:"icon_offset" yaml:"icon_offset" toml:"icon_offset"`
	IconPadding       float64       `json:"icon_padding" yaml:"icon_padding" toml:"icon_padding"`
	IconRenderingMode RenderingMode `json:"icon_rendering_mode" yaml:"icon_rendering_mode" toml:"icon_rendering_mode"`

	BadgeColor         Color   `json:"badge_color" yaml:"badge_color" toml:"badge_color"`
	BadgeColorDarkMode *Color  `json:"badge_color_dark_mode,omitempty" yaml:"badge_color_dark_mode,omitempty" toml:"badge_color_dark_mode,omitempty"`
	BadgeCornerRadius  float64 `json:"badge_corner_radius" yaml:"badge_corner_radius" toml:"badge_corner_radius"`
	BadgeGradient      bool    `json:"badge_gradient" yaml:"badge_gradient" toml:"badge_gradient"`
	BadgeStrokeColor   Color   `json:"badge_stroke_color" yaml:"badge_stroke_color" toml:"badge_stroke_color"`
	BadgeStrokeWidth   float64 `json:"badge_stroke_width" yaml:"badge_stroke_width" toml:"badge_stroke_width"`
}

// Standard returns the style resolved from an empty spec: a white badge with
// a semi-black icon.
func Standard() Style {
	return Resolve(Spec{})
}

// Resolve fills in every unset field of spec. The steps run in order because
// the icon color, stroke and dark-mode defaults all depend on whether the
// resolved badge color is white.
func Resolve(spec Spec) Style {
	badgeColor := valueOr(spec.BadgeColor, White)
	whiteBadge := badgeColor == White

	fallbackIconColor := White
	fallbackStroke := Clear
	if whiteBadge {
		fallbackIconColor = WhiteBadgeIconColor
		fallbackStroke = WhiteBadgeStrokeColor
	}

	var iconColors []Color
	if len(spec.IconColors) > 0 {
		iconColors = slices.Clone(spec.IconColors)
	} else {
		iconColors = []Color{valueOr(spec.IconColor, fallbackIconColor)}
	}

	darkBadge := copyPtr(spec.BadgeColorDarkMode)
	if darkBadge == nil && whiteBadge {
		darkBadge = Ptr(WhiteBadgeDarkModeColor)
	}

	return Style{
		IconColors:         iconColors,
		IconColorScheme:    copyPtr(spec.IconColorScheme),
		IconFill:           valueOr(spec.IconFill, true),
		IconGradient:       valueOr(spec.IconGradient, true),
		IconOffset:         spec.IconOffset,
		IconPadding:        valueOr(spec.IconPadding, DefaultIconPadding),
		IconRenderingMode:  spec.IconRenderingMode,
		BadgeColor:         badgeColor,
		BadgeColorDarkMode: darkBadge,
		BadgeCornerRadius:  valueOr(spec.BadgeCornerRadius, DefaultBadgeCornerRadius),
		BadgeGradient:      valueOr(spec.BadgeGradient, true),
		BadgeStrokeColor:   valueOr(spec.BadgeStrokeColor, fallbackStroke),
		BadgeStrokeWidth:   valueOr(spec.BadgeStrokeWidth, DefaultBadgeStrokeWidth),
	}
}

// Spec returns a fully specified spec that resolves back to s.
func (s Style) Spec() Spec {
	return Spec{
		IconColors:         slices.Clone(s.IconColors),
		IconColorScheme:    copyPtr(s.IconColorScheme),
		IconFill:           Ptr(s.IconFill),
		IconGradient:       Ptr(s.IconGradient),
		IconOffset:         s.IconOffset,
		IconPadding:        Ptr(s.IconPadding),
		IconRenderingMode:  s.IconRenderingMode,
		BadgeColor:         Ptr(s.BadgeColor),
		BadgeColorDarkMode: copyPtr(s.BadgeColorDarkMode),
		BadgeCornerRadius:  Ptr(s.BadgeCornerRadius),
		BadgeGradient:      Ptr(s.BadgeGradient),
		BadgeStrokeColor:   Ptr(s.BadgeStrokeColor),
		BadgeStrokeWidth:   Ptr(s.BadgeStrokeWidth),
	}
}

// Equal reports whether two styles resolve to the same values.
func (s Style) Equal(o Style) bool {
	return slices.Equal(s.IconColors, o.IconColors) &&
		ptrEqual(s.IconColorScheme, o.IconColorScheme) &&
		s.IconFill == o.IconFill &&
		s.IconGradient == o.IconGradient &&
		s.IconOffset == o.IconOffset &&
		s.IconPadding == o.IconPadding &&
		s.IconRenderingMode == o.IconRenderingMode &&
		s.BadgeColor == o.BadgeColor &&
		ptrEqual(s.BadgeColorDarkMode, o.BadgeColorDarkMode) &&
		s.BadgeCornerRadius == o.BadgeCornerRadius &&
		s.BadgeGradient == o.BadgeGradient &&
		s.BadgeStrokeColor == o.BadgeStrokeColor &&
		s.BadgeStrokeWidth == o.BadgeStrokeWidth
}

func valueOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
