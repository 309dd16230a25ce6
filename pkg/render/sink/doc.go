// Package sink writes render instructions out in concrete formats.
//
// # SVG
//
// [RenderSVG] writes one badge icon. The output sticks to plain attributes
// (rect, path, g with a matrix transform, linearGradient) so every backend
// draws it the same: browsers, librsvg and the in-process rasterizer.
//
//	svg := sink.RenderSVG(render.Build(icon, 64, badge.Light))
//
// [RenderSheet] lays out many icons in a labeled grid, the same way a
// settings list shows them. Labels are outlined with the embedded Go font so
// the sheet needs no fonts to render.
//
// # Other Formats
//
// [RenderPNG] and [SVGToPNG] rasterize with oksvg by default, or with
// rsvg-convert when [WithEngine] selects [EngineRSVG]. [RenderPDF] always
// uses rsvg-convert. [RenderJSON] writes the resolved instructions for
// clients that draw the badge themselves.
package sink
