package badge

// Glyph is anything a renderer knows how to draw as the foreground of a
// badge. This package only needs a stable name for identity.
type Glyph interface {
	GlyphName() string
}

// Icon is an immutable badge icon: a named glyph with a resolved style.
type Icon struct {
	Name      string
	Glyph     Glyph
	DarkGlyph Glyph // nil falls back to Glyph
	Style     Style
}

// NewIcon resolves spec and returns the icon.
func NewIcon(name string, glyph Glyph, spec Spec) Icon {
	return Icon{Name: name, Glyph: glyph, Style: Resolve(spec)}
}

// WithDarkGlyph returns a copy of the icon using g in dark mode.
func (i Icon) WithDarkGlyph(g Glyph) Icon {
	i.DarkGlyph = g
	return i
}

// EffectiveGlyph returns the glyph to draw in mode.
func (i Icon) EffectiveGlyph(mode ColorScheme) Glyph {
	if mode == Dark && i.DarkGlyph != nil {
		return i.DarkGlyph
	}
	return i.Glyph
}

// Geometry is shorthand for ComputeGeometry(i.Style, size, mode).
func (i Icon) Geometry(size float64, mode ColorScheme) Geometry {
	return ComputeGeometry(i.Style, size, mode)
}

// Label returns the display label for the icon, "-" when it has no name.
func (i Icon) Label() string {
	if i.Name == "" {
		return "-"
	}
	return i.Name
}
