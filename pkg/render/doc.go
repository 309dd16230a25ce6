// Package render turns badge icons into drawing instructions and converts
// the resulting SVG to other formats.
//
// # Overview
//
// [Build] computes everything a backend needs to draw one icon at one size
// in one ambient color scheme: the badge fill and stroke, the outlined glyph,
// where the glyph sits inside the badge, and the paint of every glyph layer.
// Backends in the [sink] subpackage write these [Instructions] out as SVG,
// PNG, PDF or JSON.
//
//	ins := render.Build(icon, 64, badge.Dark)
//	svg := sink.RenderSVG(ins)
//
// # Badge Painting
//
// The badge is two rounded rectangles. The outer one is filled with the
// stroke color and uses the style's corner radius. The inner one is inset by
// the stroke width, uses the corner radius minus the stroke width, and is
// filled with the badge color, or a vertical gradient of it.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). [Rasterize]
// draws PNGs in-process with oksvg and needs no external tool; it is the
// default PNG engine.
package render
