// Package glyph provides the drawable foregrounds of a badge.
//
// A badge only knows that its glyph has a name (see [badge.Glyph]). This
// package turns glyphs into vector outlines a renderer can place inside the
// badge:
//
//   - [Symbol] is a named icon from a built-in registry of layered shapes.
//   - [Text] is a short string outlined with the embedded Go Bold font.
//   - [Path] is caller-supplied SVG path data.
//
// Every outline is a [Shape]: a view box plus ordered layers for the filled
// and the line variant of the glyph. Layer order matters for palette
// painting, where the first layer takes the primary color and later layers
// the secondary one.
//
// [Outline] never fails. A symbol that is not in the registry, or a glyph
// type this package does not know, is drawn as a lettermark of its name.
//
// # References
//
// Catalog files and HTTP requests name glyphs with a short reference string:
//
//	wifi                    symbol
//	symbol:checkmark.circle symbol
//	text:Ab                 text
//	path:M2 2H22V22H2Z      path in a 24x24 view box
//	path:0 0 48 48;M4 4...  path with an explicit view box
//
// [Parse] reads a reference and [Ref] writes one.
package glyph
