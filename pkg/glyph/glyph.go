package glyph

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/badgeicon/pkg/badge"
)

// DefaultLineWidth is the stroke width, in view box units of a 24 unit box,
// used for the line variant of a glyph.
const DefaultLineWidth = 1.5

// ViewBox is the coordinate system of a shape.
type ViewBox struct {
	X, Y, W, H float64
}

// SymbolBox is the view box shared by every registry symbol.
var SymbolBox = ViewBox{W: 24, H: 24}

// String formats the box as an SVG viewBox attribute.
func (v ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s", num(v.X), num(v.Y), num(v.W), num(v.H))
}

// Empty reports whether the box has no area.
func (v ViewBox) Empty() bool {
	return v.W <= 0 || v.H <= 0
}

// ParseViewBox reads "x y w h", separated by spaces or commas.
func ParseViewBox(s string) (ViewBox, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("view box %q: want 4 numbers", s)
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("view box %q: %w", s, err)
		}
		v[i] = n
	}
	vb := ViewBox{X: v[0], Y: v[1], W: v[2], H: v[3]}
	if vb.Empty() {
		return ViewBox{}, fmt.Errorf("view box %q has no area", s)
	}
	return vb, nil
}

// Layer is one path of a shape.
type Layer struct {
	// D is SVG path data in the shape's view box.
	D string
	// Color is the layer's own color, used in multicolor rendering. Nil
	// layers take the first icon color.
	Color *badge.Color
	// DarkColor replaces Color when the icon renders in the dark scheme.
	DarkColor *badge.Color
	// Stroke draws the path as a line of Width instead of filling it.
	Stroke bool
	Width  float64
	// Knockout marks detail cut out of the layer below it. Single-color
	// painting fills knockouts with the badge color so the detail reads as
	// a hole.
	Knockout bool
}

// Intrinsic returns the layer's own color for the icon scheme.
func (l Layer) Intrinsic(scheme badge.ColorScheme) (badge.Color, bool) {
	if scheme == badge.Dark && l.DarkColor != nil {
		return *l.DarkColor, true
	}
	if l.Color != nil {
		return *l.Color, true
	}
	return 0, false
}

// Shape is the outline of a glyph.
type Shape struct {
	ViewBox ViewBox
	// Fill holds the filled variant, bottom layer first.
	Fill []Layer
	// Line holds the line variant. When empty the line variant strokes
	// the Fill layers.
	Line []Layer
	// LineWidth is the stroke width for the derived line variant. Zero
	// means DefaultLineWidth scaled to the view box.
	LineWidth float64
}

// Layers returns the layers to draw for the filled or line variant.
func (s Shape) Layers(filled bool) []Layer {
	if filled {
		return s.Fill
	}
	if len(s.Line) > 0 {
		return s.Line
	}
	w := s.LineWidth
	if w == 0 {
		w = DefaultLineWidth * s.ViewBox.W / SymbolBox.W
	}
	out := make([]Layer, len(s.Fill))
	for i, l := range s.Fill {
		if !l.Stroke {
			l.Stroke = true
			l.Width = w
		}
		l.Knockout = false
		out[i] = l
	}
	return out
}

// Outliner is a glyph that can produce its own outline.
type Outliner interface {
	badge.Glyph
	Outline() (Shape, error)
}

// Outline returns the shape of g. Glyphs that fail to outline, or that are
// not Outliners, become a lettermark of their name. A nil glyph is a circle.
func Outline(g badge.Glyph) Shape {
	if g == nil {
		return circleShape()
	}
	if o, ok := g.(Outliner); ok {
		if s, err := o.Outline(); err == nil {
			return s
		}
	}
	return Lettermark(g.GlyphName())
}

// Lettermark outlines the first letter or digit of name, upper-cased. Names
// without one become a circle.
func Lettermark(name string) Shape {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			s, err := Text(string(unicode.ToUpper(r))).Outline()
			if err != nil {
				break
			}
			return s
		}
	}
	return circleShape()
}

func circleShape() Shape {
	return Shape{ViewBox: SymbolBox, Fill: []Layer{fill(pathCircle)}}
}

// Parse reads a glyph reference. A reference without a known prefix is a
// symbol name.
func Parse(ref string) (badge.Glyph, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty glyph reference")
	}
	kind, rest, ok := strings.Cut(ref, ":")
	if !ok {
		return Symbol(ref), nil
	}
	switch kind {
	case "symbol":
		if rest == "" {
			return nil, fmt.Errorf("glyph %q: empty symbol name", ref)
		}
		return Symbol(rest), nil
	case "text":
		if strings.TrimSpace(rest) == "" || utf8.RuneCountInString(rest) > MaxTextLen {
			return nil, fmt.Errorf("glyph %q: text must have 1 to %d characters", ref, MaxTextLen)
		}
		return Text(rest), nil
	case "path":
		p, err := parsePath(rest)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", ref, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("glyph %q: unknown kind %q", ref, kind)
	}
}

// Ref returns the reference string Parse reads back into g. Foreign glyph
// types are referenced by name as symbols.
func Ref(g badge.Glyph) string {
	switch g := g.(type) {
	case nil:
		return ""
	case Symbol:
		return string(g)
	case Text:
		return "text:" + string(g)
	case Path:
		if g.ViewBox == (ViewBox{}) || g.ViewBox == SymbolBox {
			return "path:" + g.D
		}
		return "path:" + g.ViewBox.String() + ";" + g.D
	default:
		return g.GlyphName()
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
