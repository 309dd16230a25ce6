// Package badge resolves badge icon styles and computes their geometry.
//
// A badge icon is a glyph centered on a colored, rounded-square backdrop, in
// the manner of the icons found in system settings. This package holds the
// pure part of the model: it never draws anything.
//
// # Resolution
//
// A [Spec] is a partially specified style. Unset fields are pointers left nil.
// [Resolve] turns a Spec into a fully concrete [Style] by applying defaults in
// a fixed order, because some defaults depend on other resolved values:
//
//  1. A white badge gets a translucent near-black icon color, a faint
//     neutral stroke and a black dark-mode badge.
//  2. Any other badge gets a white icon color, a clear stroke and keeps its
//     color in dark mode.
//
// Explicit values always win. Resolution is total and idempotent:
//
//	style := badge.Resolve(badge.Spec{BadgeColor: badge.Ptr(badge.Blue)})
//	same := badge.Resolve(style.Spec()) // equal to style
//
// # Geometry
//
// Size-dependent style fields are ratios of the badge side length. The
// [Style] methods and [ComputeGeometry] convert them to absolute values for a
// concrete size and select the light or dark variant for an ambient
// [ColorScheme]. The stroke width never drops below one unit.
//
// Ratios are not clamped. Out-of-range values, non-positive sizes and NaN
// inputs give an undefined visual result rather than an error.
//
// # Icons
//
// An [Icon] couples a name, a light-mode [Glyph], an optional dark-mode glyph
// and a resolved style. Glyphs are opaque to this package; see package glyph
// for the concrete kinds and package render for drawing.
package badge
