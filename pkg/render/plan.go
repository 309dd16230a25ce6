package render

import (
	"math"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/glyph"
)

// Rect is an axis-aligned rectangle in badge coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Placement maps glyph view box coordinates to badge coordinates:
// x' = x*Scale + TX, y' = y*Scale + TY.
type Placement struct {
	Scale  float64
	TX, TY float64
}

// Apply maps a glyph space point into badge space.
func (p Placement) Apply(x, y float64) (float64, float64) {
	return x*p.Scale + p.TX, y*p.Scale + p.TY
}

// Invert maps a badge space point into glyph space.
func (p Placement) Invert(x, y float64) (float64, float64) {
	return (x - p.TX) / p.Scale, (y - p.TY) / p.Scale
}

// Instructions is everything a backend needs to draw one badge icon. Values
// are absolute, in points, for a badge of side Size.
type Instructions struct {
	Name   string
	Size   float64
	Scheme badge.ColorScheme

	BackgroundColor    badge.Color
	BackgroundGradient bool
	CornerRadius       float64
	StrokeColor        badge.Color
	StrokeWidth        float64

	Glyph           badge.Glyph
	Shape           glyph.Shape
	Foreground      badge.Foreground
	IconFill        bool
	Padding         float64
	Offset          badge.Point
	RenderingMode   badge.RenderingMode
	IconColorScheme badge.ColorScheme
}

// Build resolves the geometry of icon at size for the ambient scheme mode
// and outlines the glyph it shows in that scheme.
func Build(icon badge.Icon, size float64, mode badge.ColorScheme) Instructions {
	geo := icon.Geometry(size, mode)
	g := icon.EffectiveGlyph(mode)
	return Instructions{
		Name:               icon.Label(),
		Size:               size,
		Scheme:             mode,
		BackgroundColor:    geo.BadgeColor,
		BackgroundGradient: icon.Style.BadgeGradient,
		CornerRadius:       geo.CornerRadius,
		StrokeColor:        icon.Style.BadgeStrokeColor,
		StrokeWidth:        geo.StrokeWidth,
		Glyph:              g,
		Shape:              glyph.Outline(g),
		Foreground:         icon.Style.Foreground(),
		IconFill:           icon.Style.IconFill,
		Padding:            geo.Padding,
		Offset:             geo.Offset,
		RenderingMode:      icon.Style.IconRenderingMode,
		IconColorScheme:    geo.IconColorScheme,
	}
}

// Outer returns the badge rectangle and its corner radius.
func (ins Instructions) Outer() (Rect, float64) {
	return Rect{W: ins.Size, H: ins.Size}, math.Max(ins.CornerRadius, 0)
}

// Inner returns the rectangle filled with the badge color and its corner
// radius. It is empty when the stroke covers the whole badge.
func (ins Instructions) Inner() (Rect, float64) {
	w := ins.StrokeWidth
	r := Rect{X: w, Y: w, W: ins.Size - 2*w, H: ins.Size - 2*w}
	return r, math.Max(ins.CornerRadius-w, 0)
}

// IconBox returns the rectangle the glyph is fitted into: the badge inset by
// the padding on every side, moved by the offset. It is empty when the
// padding leaves no room.
func (ins Instructions) IconBox() Rect {
	return Rect{
		X: ins.Padding + ins.Offset.X,
		Y: ins.Padding + ins.Offset.Y,
		W: ins.Size - 2*ins.Padding,
		H: ins.Size - 2*ins.Padding,
	}
}

// Placement fits the glyph view box into IconBox, keeping its aspect ratio
// and centering it. ok is false when there is nothing to draw.
func (ins Instructions) Placement() (p Placement, ok bool) {
	box := ins.IconBox()
	vb := ins.Shape.ViewBox
	if box.Empty() || vb.Empty() {
		return Placement{}, false
	}
	s := math.Min(box.W/vb.W, box.H/vb.H)
	return Placement{
		Scale: s,
		TX:    box.X + (box.W-vb.W*s)/2 - vb.X*s,
		TY:    box.Y + (box.H-vb.H*s)/2 - vb.Y*s,
	}, true
}
