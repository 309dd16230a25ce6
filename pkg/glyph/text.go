package glyph

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/badgeicon/pkg/fonts"
)

// MaxTextLen is the longest text glyph accepted by Parse.
const MaxTextLen = 4

// textPPEM is the em size text is outlined at. Outline coordinates are in
// this unit, the renderer rescales them.
const textPPEM = 100

// Text is a short string drawn as the icon, outlined with the Go Bold font.
type Text string

var _ Outliner = Text("")

// GlyphName implements badge.Glyph.
func (t Text) GlyphName() string { return string(t) }

// Outline converts the text to path data. The view box hugs the outline, so
// the text is centered like any other glyph. Text has no line variant.
func (t Text) Outline() (Shape, error) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return Shape{}, fmt.Errorf("empty text glyph")
	}
	f, err := fonts.Bold()
	if err != nil {
		return Shape{}, fmt.Errorf("load font: %w", err)
	}
	d, box, err := outlineText(f, s, fixed.I(textPPEM))
	if err != nil {
		return Shape{}, fmt.Errorf("outline %q: %w", s, err)
	}
	layer := Layer{D: d}
	return Shape{ViewBox: box, Fill: []Layer{layer}, Line: []Layer{layer}}, nil
}

// TextWidth returns the advance width of s at size, in the same unit as
// size. It is used to lay out labels.
func TextWidth(f *sfnt.Font, s string, size float64) (float64, error) {
	var buf sfnt.Buffer
	ppem := fixed.I(textPPEM)
	var adv fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	for i, r := range s {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return 0, err
		}
		if i > 0 {
			if k, err := f.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				adv += k
			}
		}
		a, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return 0, err
		}
		adv += a
		prev = idx
	}
	return fromFixed(adv) * size / textPPEM, nil
}

// TextPath outlines s with its baseline origin at (x, y) and an em size of
// size. It is used for labels that must render without a font.
func TextPath(f *sfnt.Font, s string, x, y, size float64) (string, error) {
	d, _, err := outlineTextAt(f, s, fixed.I(textPPEM), size/textPPEM, x, y)
	return d, err
}

func outlineText(f *sfnt.Font, s string, ppem fixed.Int26_6) (string, ViewBox, error) {
	return outlineTextAt(f, s, ppem, 1, 0, 0)
}

// outlineTextAt walks the glyph segments of s, scaled by scale and moved to
// (ox, oy). sfnt segments are y-down, like SVG.
func outlineTextAt(f *sfnt.Font, s string, ppem fixed.Int26_6, scale, ox, oy float64) (string, ViewBox, error) {
	var (
		buf  sfnt.Buffer
		b    strings.Builder
		pen  fixed.Int26_6
		prev sfnt.GlyphIndex
		bb   = bounds{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
	)
	b.Grow(utf8.RuneCountInString(s) * 256)

	pt := func(p fixed.Point26_6) (float64, float64) {
		x := (fromFixed(pen+p.X))*scale + ox
		y := fromFixed(p.Y)*scale + oy
		bb.add(x, y)
		return x, y
	}

	for i, r := range s {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return "", ViewBox{}, err
		}
		if i > 0 {
			if k, err := f.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		segs, err := f.LoadGlyph(&buf, idx, ppem, nil)
		if err != nil {
			return "", ViewBox{}, err
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if b.Len() > 0 {
					b.WriteString("Z")
				}
				x, y := pt(seg.Args[0])
				fmt.Fprintf(&b, "M%s %s", coord(x), coord(y))
			case sfnt.SegmentOpLineTo:
				x, y := pt(seg.Args[0])
				fmt.Fprintf(&b, "L%s %s", coord(x), coord(y))
			case sfnt.SegmentOpQuadTo:
				x1, y1 := pt(seg.Args[0])
				x, y := pt(seg.Args[1])
				fmt.Fprintf(&b, "Q%s %s %s %s", coord(x1), coord(y1), coord(x), coord(y))
			case sfnt.SegmentOpCubeTo:
				x1, y1 := pt(seg.Args[0])
				x2, y2 := pt(seg.Args[1])
				x, y := pt(seg.Args[2])
				fmt.Fprintf(&b, "C%s %s %s %s %s %s", coord(x1), coord(y1), coord(x2), coord(y2), coord(x), coord(y))
			}
		}
		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return "", ViewBox{}, err
		}
		pen += adv
		prev = idx
	}
	if b.Len() == 0 {
		return "", ViewBox{}, fmt.Errorf("no outline")
	}
	b.WriteString("Z")
	return b.String(), bb.box(), nil
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (b bounds) box() ViewBox {
	return ViewBox{X: b.minX, Y: b.minY, W: b.maxX - b.minX, H: b.maxY - b.minY}
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func coord(v float64) string {
	return num(math.Round(v*100) / 100)
}
