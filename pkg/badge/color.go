package badge

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB). Colors are compared with ==.
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex constructs an opaque Color from a 0xRRGGBB literal.
func Hex(rgb uint32) Color {
	return Color(0xFF000000 | rgb&0x00FFFFFF)
}

// RGB8 returns the red, green and blue bytes.
func (c Color) RGB8() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Opacity returns the color with its alpha multiplied by a (0-1).
func (c Color) Opacity(a float64) Color {
	return c.WithAlpha(c.Alpha() * a)
}

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool {
	return uint8(c>>24) == 0xFF
}

// HexRGB returns the color as "#rrggbb", ignoring alpha.
func (c Color) HexRGB() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Colorful converts the color to a go-colorful value, dropping alpha.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB8()
	return colorful.Color{R: float64(r) / maxByte, G: float64(g) / maxByte, B: float64(b) / maxByte}
}

// FromColorful converts a go-colorful value back to a Color with the given alpha.
func FromColorful(cc colorful.Color, a float64) Color {
	r, g, b := cc.Clamped().RGB255()
	return RGBA(r, g, b, a)
}

// String returns the color name when it has one, otherwise "#rrggbb" or
// "#rrggbbaa" for translucent colors.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	if c.IsOpaque() {
		return c.HexRGB()
	}
	return fmt.Sprintf("%s%02x", c.HexRGB(), uint8(c>>24))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a color reference. Accepted forms:
//
//	white, blue, clear        named colors (see [NamedColors])
//	#rgb, #rrggbb, #rrggbbaa  hex
//	blue@0.5, #ff0000@0.25    any of the above with an alpha multiplier
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}

	base, alpha, hasAlpha := strings.Cut(s, "@")
	c, err := parseBaseColor(strings.ToLower(strings.TrimSpace(base)))
	if err != nil {
		return 0, err
	}
	if !hasAlpha {
		return c, nil
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(alpha), 64)
	if err != nil || math.IsNaN(a) {
		return 0, fmt.Errorf("invalid alpha %q in color %q", alpha, s)
	}
	return c.Opacity(a), nil
}

func parseBaseColor(s string) (Color, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("unknown color %q", s)
	}

	switch len(s) {
	case 4, 7:
		cc, err := colorful.Hex(s)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return FromColorful(cc, 1), nil
	case 9:
		cc, err := colorful.Hex(s[:7])
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex alpha in %q: %w", s, err)
		}
		r, g, b := cc.Clamped().RGB255()
		return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * maxByte))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors. The palette values follow the light-mode system colors.
const (
	Clear  = Color(0x00000000)
	Black  = Color(0xFF000000)
	White  = Color(0xFFFFFFFF)
	Blue   = Color(0xFF007AFF)
	Brown  = Color(0xFFA2845E)
	Cyan   = Color(0xFF32ADE6)
	Gray   = Color(0xFF8E8E93)
	Green  = Color(0xFF34C759)
	Indigo = Color(0xFF5856D6)
	Mint   = Color(0xFF00C7BE)
	Orange = Color(0xFFFF9500)
	Pink   = Color(0xFFFF2D55)
	Purple = Color(0xFFAF52DE)
	Red    = Color(0xFFFF3B30)
	Teal   = Color(0xFF30B0C7)
	Yellow = Color(0xFFFFCC00)
)

var namedColors = map[string]Color{
	"clear":       Clear,
	"transparent": Clear,
	"black":       Black,
	"white":       White,
	"blue":        Blue,
	"brown":       Brown,
	"cyan":        Cyan,
	"gray":        Gray,
	"grey":        Gray,
	"green":       Green,
	"indigo":      Indigo,
	"mint":        Mint,
	"orange":      Orange,
	"pink":        Pink,
	"purple":      Purple,
	"red":         Red,
	"teal":        Teal,
	"yellow":      Yellow,
}

// colorNames is the reverse of namedColors with one canonical name per color.
var colorNames = func() map[Color]string {
	m := make(map[Color]string, len(namedColors))
	for name, c := range namedColors {
		if prev, ok := m[c]; !ok || name < prev {
			m[c] = name
		}
	}
	return m
}()

// NamedColors returns the color names accepted by [ParseColor].
func NamedColors() map[string]Color {
	out := make(map[string]Color, len(namedColors))
	for k, v := range namedColors {
		out[k] = v
	}
	return out
}
