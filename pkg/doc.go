// Package pkg provides the core libraries for badgeicon.
//
// # Overview
//
// Badgeicon draws system-settings style icons: a glyph centered on a rounded,
// colored square. A partially specified style is resolved into a complete
// one, converted to absolute geometry for a badge size and color scheme, and
// rendered. The pkg directory is organized into three areas:
//
//  1. Core: [badge] (style resolution and geometry) and [glyph] (vector shapes)
//  2. Rendering: [render] and [render/sink] (SVG, PNG, PDF, JSON)
//  3. Infrastructure: [catalog], [pipeline], [cache], [config], [server]
//
// # Architecture
//
// The typical data flow:
//
//	badge.Spec (+ glyph)
//	         ↓
//	    [badge.Resolve] (fill in defaults)
//	         ↓
//	    [render.Build] (geometry + glyph placement for size and scheme)
//	         ↓
//	    [render/sink] (SVG, then PNG/PDF from the SVG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/badgeicon/pkg/badge"
//	    "github.com/matzehuels/badgeicon/pkg/glyph"
//	    "github.com/matzehuels/badgeicon/pkg/render"
//	    "github.com/matzehuels/badgeicon/pkg/render/sink"
//	)
//
//	icon := badge.NewIcon("wifi", glyph.Symbol("wifi"), badge.Spec{
//	    BadgeColor: badge.Ptr(badge.Blue),
//	})
//	svg := sink.RenderSVG(render.Build(icon, 64, badge.Light))
//
// # Main Packages
//
// [badge] - Colors, color schemes, the Spec/Style pair and [badge.Resolve],
// and [badge.ComputeGeometry] for absolute corner radius, stroke, padding,
// and offset.
//
// [glyph] - Named symbols, outlined text, and raw path glyphs, with
// [glyph.Parse] and [glyph.Ref] for references in files and requests.
//
// [catalog] - The built-in presets and YAML/TOML catalog files.
//
// [pipeline] - Rendering with artifact caching, shared by the CLI and the
// HTTP server so both produce identical output.
//
// [cache] - File, Redis, and null artifact caches with versioned keys.
//
// [config] - TOML configuration for render defaults, cache backend, and server.
//
// [server] - chi-based HTTP API over the catalog and the pipeline.
//
// [errors] - Structured error codes mapped to exit messages and HTTP statuses.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/badge/...    # Specific package
//	go test -run Example       # Examples only
//
// [badge]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/badge
// [glyph]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/glyph
// [render]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/render/sink
// [catalog]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/catalog
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/badgeicon/pkg/errors
package pkg
