package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/badgeicon/pkg/badge"
)

// gradientLift is how far the top stop of a gradient is blended towards
// white.
const gradientLift = 0.2

// GradientStops returns the top and bottom colors of the vertical gradient
// painted for c. The bottom is c itself; the top is a lighter tint with the
// same alpha.
func GradientStops(c badge.Color) (top, bottom badge.Color) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	lifted := c.Colorful().BlendLab(white, gradientLift)
	return badge.FromColorful(lifted, c.Alpha()), c
}

// FillKind tells a backend what a glyph layer is painted with.
type FillKind int

const (
	// FillColor paints the layer with its Color.
	FillColor FillKind = iota
	// FillBadge paints the layer with the badge fill, so it reads as a hole
	// cut into the layer below.
	FillBadge
	// FillGlyph keeps the glyph's own color. Layers without one carry
	// black, the SVG initial fill.
	FillGlyph
)

// PaintedLayer is a glyph layer with its paint resolved. Coordinates and
// widths are in the glyph view box.
type PaintedLayer struct {
	D        string
	Stroke   bool
	Width    float64
	Kind     FillKind
	Color    badge.Color
	Gradient bool
}

// Paint returns the glyph layers to draw, bottom first, with their colors.
//
// The layers follow the style's [badge.Foreground]. A palette paints the
// primary color on the first layer and the secondary on the rest. A single
// color paints every layer. Without a foreground the glyph keeps its own
// colors. Outside a palette, knockout detail is filled with the badge. In
// multicolor rendering, layers with their own color keep it.
func (ins Instructions) Paint() []PaintedLayer {
	fg := ins.Foreground
	layers := ins.Shape.Layers(ins.IconFill)

	out := make([]PaintedLayer, 0, len(layers))
	for i, l := range layers {
		pl := PaintedLayer{D: l.D, Stroke: l.Stroke, Width: l.Width, Gradient: fg.Gradient}
		intrinsic, hasIntrinsic := l.Intrinsic(ins.IconColorScheme)

		switch {
		case ins.RenderingMode == badge.Multicolor && hasIntrinsic:
			pl.Color = intrinsic
		case fg.Kind == badge.PaintPalette:
			pl.Color = fg.Colors[min(i, 1)]
		case l.Knockout:
			pl.Kind = FillBadge
			pl.Color = ins.BackgroundColor
			pl.Gradient = ins.BackgroundGradient
		case fg.Kind == badge.PaintSingle:
			pl.Color = fg.Colors[0]
		default:
			pl.Kind = FillGlyph
			pl.Color = badge.Black
			if hasIntrinsic {
				pl.Color = intrinsic
			}
		}
		out = append(out, pl)
	}
	return out
}
