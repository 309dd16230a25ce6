package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	idPrefix  string
	pixelSize float64
	title     bool
}

// WithIDPrefix prefixes gradient ids, so several icons can share a document.
func WithIDPrefix(p string) SVGOption { return func(r *svgRenderer) { r.idPrefix = p } }

// WithPixelSize sets the width and height attributes. The view box always
// matches the badge size.
func WithPixelSize(px float64) SVGOption { return func(r *svgRenderer) { r.pixelSize = px } }

// WithoutTitle drops the <title> element.
func WithoutTitle() SVGOption { return func(r *svgRenderer) { r.title = false } }

// RenderSVG renders a single badge icon as a standalone SVG document.
func RenderSVG(ins render.Instructions, opts ...SVGOption) []byte {
	r := svgRenderer{idPrefix: "b", title: true}
	for _, opt := range opts {
		opt(&r)
	}
	px := ins.Size
	if r.pixelSize > 0 {
		px = r.pixelSize
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		f(ins.Size), f(ins.Size), f(px), f(px))
	if r.title {
		fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(ins.Name))
	}
	writeBadge(&buf, ins, r.idPrefix)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeBadge writes the badge and glyph of ins at the origin, with their
// gradient definitions. ids are made unique by prefix.
func writeBadge(buf *bytes.Buffer, ins render.Instructions, prefix string) {
	d := defs{prefix: prefix, seen: map[string]bool{}}
	var body bytes.Buffer

	outer, outerR := ins.Outer()
	if ins.StrokeColor.Alpha() > 0 && ins.StrokeWidth > 0 {
		writeRect(&body, outer, outerR, solid(ins.StrokeColor))
	}

	inner, innerR := ins.Inner()
	if !inner.Empty() && ins.BackgroundColor.Alpha() > 0 {
		paint := solid(ins.BackgroundColor)
		if ins.BackgroundGradient {
			paint = d.boxGradient(ins.BackgroundColor)
		}
		writeRect(&body, inner, innerR, paint)
	}

	if p, ok := ins.Placement(); ok {
		writeGlyph(&body, &d, ins, p, inner)
	}

	if d.buf.Len() > 0 {
		buf.WriteString("<defs>\n")
		buf.Write(d.buf.Bytes())
		buf.WriteString("</defs>\n")
	}
	buf.Write(body.Bytes())
}

func writeGlyph(buf *bytes.Buffer, d *defs, ins render.Instructions, p render.Placement, inner render.Rect) {
	layers := ins.Paint()
	if len(layers) == 0 {
		return
	}
	fmt.Fprintf(buf, `<g transform="matrix(%s 0 0 %s %s %s)">`+"\n", f(p.Scale), f(p.Scale), f(p.TX), f(p.TY))
	for _, l := range layers {
		if l.Color.Alpha() == 0 {
			continue
		}
		var pt paint
		switch {
		case !l.Gradient:
			pt = solid(l.Color)
		case l.Kind == render.FillBadge:
			// The badge gradient spans the inner rect; map that span into
			// glyph space so the knockout lines up with the badge behind it.
			_, y0 := p.Invert(0, inner.Y)
			_, y1 := p.Invert(0, inner.Y+inner.H)
			pt = d.spanGradient(l.Color, y0, y1)
		default:
			pt = d.boxGradient(l.Color)
		}

		if l.Stroke {
			fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s"%s stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
				html.EscapeString(l.D), pt.ref, pt.opacity("stroke-opacity"), f(l.Width))
			continue
		}
		fmt.Fprintf(buf, `<path d="%s" fill="%s"%s/>`+"\n", html.EscapeString(l.D), pt.ref, pt.opacity("fill-opacity"))
	}
	buf.WriteString("</g>\n")
}

func writeRect(buf *bytes.Buffer, r render.Rect, radius float64, pt paint) {
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"`, f(r.X), f(r.Y), f(r.W), f(r.H))
	if radius > 0 {
		fmt.Fprintf(buf, ` rx="%s" ry="%s"`, f(radius), f(radius))
	}
	fmt.Fprintf(buf, ` fill="%s"%s/>`+"\n", pt.ref, pt.opacity("fill-opacity"))
}

// paint is an SVG paint server reference: a color or a url(#id).
type paint struct {
	ref   string
	alpha float64
}

func solid(c badge.Color) paint {
	return paint{ref: c.HexRGB(), alpha: c.Alpha()}
}

func (p paint) opacity(attr string) string {
	if p.alpha >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, f(p.alpha))
}

// defs collects gradient definitions, one per distinct color and span.
type defs struct {
	prefix string
	seen   map[string]bool
	buf    bytes.Buffer
}

// boxGradient is a top-to-bottom gradient over the bounding box of the
// element that uses it.
func (d *defs) boxGradient(c badge.Color) paint {
	id := fmt.Sprintf("%s-g%08x", d.prefix, uint32(c))
	if !d.seen[id] {
		d.seen[id] = true
		fmt.Fprintf(&d.buf, `<linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+"\n", id)
		writeStops(&d.buf, c)
		d.buf.WriteString("</linearGradient>\n")
	}
	return paint{ref: "url(#" + id + ")", alpha: 1}
}

// spanGradient is a vertical gradient from y0 to y1 in user space.
func (d *defs) spanGradient(c badge.Color, y0, y1 float64) paint {
	id := fmt.Sprintf("%s-k%08x", d.prefix, uint32(c))
	if !d.seen[id] {
		d.seen[id] = true
		fmt.Fprintf(&d.buf, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="0" y1="%s" x2="0" y2="%s">`+"\n", id, f(y0), f(y1))
		writeStops(&d.buf, c)
		d.buf.WriteString("</linearGradient>\n")
	}
	return paint{ref: "url(#" + id + ")", alpha: 1}
}

func writeStops(buf *bytes.Buffer, c badge.Color) {
	top, bottom := render.GradientStops(c)
	for i, s := range []badge.Color{top, bottom} {
		fmt.Fprintf(buf, `<stop offset="%d" stop-color="%s"`, i, s.HexRGB())
		if a := s.Alpha(); a < 1 {
			fmt.Fprintf(buf, ` stop-opacity="%s"`, f(a))
		}
		buf.WriteString("/>\n")
	}
}

// f formats a coordinate with at most three decimals.
func f(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
