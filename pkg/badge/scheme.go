package badge

import (
	"fmt"
	"strings"
)

// ColorScheme is a light or dark presentation mode.
type ColorScheme int

const (
	Light ColorScheme = iota
	Dark
)

// String returns "light" or "dark".
func (s ColorScheme) String() string {
	if s == Dark {
		return "dark"
	}
	return "light"
}

// MarshalText implements encoding.TextMarshaler.
func (s ColorScheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ColorScheme) UnmarshalText(text []byte) error {
	parsed, err := ParseColorScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseColorScheme parses "light" or "dark" (case-insensitive).
func ParseColorScheme(s string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("invalid color scheme %q (must be 'light' or 'dark')", s)
	}
}

// RenderingMode controls how icon colors map onto a glyph's layers.
type RenderingMode int

const (
	// Monochrome paints every layer with the first icon color.
	Monochrome RenderingMode = iota
	// Multicolor paints layers with their intrinsic colors where the glyph has them.
	Multicolor
	// Palette paints successive layers with successive icon colors.
	Palette
)

var renderingModeNames = [...]string{
	Monochrome: "monochrome",
	Multicolor: "multicolor",
	Palette:    "palette",
}

func (m RenderingMode) String() string {
	if m >= 0 && int(m) < len(renderingModeNames) {
		return renderingModeNames[m]
	}
	return fmt.Sprintf("RenderingMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m RenderingMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *RenderingMode) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range renderingModeNames {
		if s == name {
			*m = RenderingMode(i)
			return nil
		}
	}
	return fmt.Errorf("invalid rendering mode %q (must be 'monochrome', 'multicolor' or 'palette')", text)
}
