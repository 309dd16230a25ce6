// Package pipeline turns catalog icons into rendered artifacts.
//
// This package implements the resolve → build → render pipeline used by the
// CLI and the HTTP server, so both produce identical output for identical
// options and share the same artifact cache.
//
// # Stages
//
//  1. Resolve: the icon's [badge.Spec] becomes a [badge.Style] for the
//     requested color scheme, and the glyph is outlined.
//  2. Build: [render.Build] computes the badge geometry and glyph placement.
//  3. Render: the instructions are written as SVG, PNG, PDF, or JSON.
//
// SVG and JSON are produced directly. PNG and PDF are derived from the SVG
// and cached, keyed by a hash of the SVG document and the output settings.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	results, err := runner.RenderAll(ctx, icon, pipeline.Options{
//	    Size:    64,
//	    Scheme:  pipeline.SchemeBoth,
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := results[0].Artifacts["png"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSize is the badge side length in points.
	DefaultSize = 64.0

	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// MaxScale bounds the PNG pixel density.
	MaxScale = 8.0

	// DefaultColumns is the number of badges per contact sheet row.
	DefaultColumns = 6
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Scheme values accepted in Options.
const (
	SchemeLight = "light"
	SchemeDark  = "dark"
	SchemeBoth  = "both"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for rendering one icon or a sheet.
// This struct supports JSON serialization for API requests.
type Options struct {
	Size      float64  `json:"size,omitempty"`
	Scheme    string   `json:"scheme,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
	PNGEngine string   `json:"png_engine,omitempty"`

	// Refresh bypasses cached artifacts. Fresh results are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Sheet options
	Columns  int  `json:"columns,omitempty"`
	NoLabels bool `json:"no_labels,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result holds the artifacts rendered for one icon in one color scheme.
type Result struct {
	Name      string
	Scheme    badge.ColorScheme
	Artifacts map[string][]byte
	Stats     Stats
	// CacheHit reports whether every cached format came from the cache.
	CacheHit bool
}

// Stats records pipeline execution details.
type Stats struct {
	Duration time.Duration
	Hits     int
	Misses   int
}

// SetDefaults fills zero fields with defaults. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Scheme == "" {
		o.Scheme = SchemeLight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.PNGEngine == "" {
		o.PNGEngine = string(sink.EngineRaster)
	}
	if o.Columns == 0 {
		o.Columns = DefaultColumns
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := errors.ValidateSize(o.Size); err != nil {
		return err
	}
	if _, err := o.Modes(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale != o.Scale || o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %g]", MaxScale)
	}
	if _, err := sink.ParseEngine(o.PNGEngine); err != nil {
		return err
	}
	if o.Columns < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "columns must be positive")
	}
	return nil
}

// Modes returns the color schemes selected by o.Scheme.
func (o *Options) Modes() ([]badge.ColorScheme, error) {
	switch o.Scheme {
	case "", SchemeLight:
		return []badge.ColorScheme{badge.Light}, nil
	case SchemeDark:
		return []badge.ColorScheme{badge.Dark}, nil
	case SchemeBoth:
		return []badge.ColorScheme{badge.Light, badge.Dark}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidScheme,
			"invalid scheme %q (must be one of: light, dark, both)", o.Scheme)
	}
}

// ValidateFormats checks that all formats are valid and not repeated.
func ValidateFormats(formats []string) error {
	for i, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
		if slices.Contains(formats[:i], f) {
			return errors.New(errors.ErrCodeInvalidFormat, "format %q requested twice", f)
		}
	}
	return nil
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// FileName returns the output file name for an artifact. Dark variants get
// a "-dark" suffix when both schemes are rendered.
func FileName(name string, scheme badge.ColorScheme, both bool, format string) string {
	if both && scheme == badge.Dark {
		return name + "-dark." + format
	}
	return name + "." + format
}

// cached reports whether a format is stored in the artifact cache. SVG and
// JSON are cheaper to regenerate than to fetch.
func cached(format string) bool {
	return format == FormatPNG || format == FormatPDF
}
