package sink

import (
	"context"

	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/render"
)

// Engine selects the PNG rasterizer.
type Engine string

const (
	// EngineRaster draws in-process with oksvg.
	EngineRaster Engine = "raster"
	// EngineRSVG shells out to rsvg-convert.
	EngineRSVG Engine = "rsvg"
)

// ParseEngine validates an engine name. The empty string is EngineRaster.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "", EngineRaster:
		return EngineRaster, nil
	case EngineRSVG:
		return EngineRSVG, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown png engine %q (want raster or rsvg)", s)
	}
}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
	engine  Engine
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithEngine selects the rasterizer (default EngineRaster).
func WithEngine(e Engine) PNGOption {
	return func(r *pngRenderer) { r.engine = e }
}

func newPNGRenderer(opts []PNGOption) pngRenderer {
	r := pngRenderer{scale: 2.0, engine: EngineRaster}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPNG renders the badge as PNG via SVG conversion.
func RenderPNG(ctx context.Context, ins render.Instructions, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts)
	return r.convert(ctx, RenderSVG(ins, r.svgOpts...))
}

// SVGToPNG converts an SVG produced by this package, such as a sheet.
func SVGToPNG(ctx context.Context, svg []byte, opts ...PNGOption) ([]byte, error) {
	r := newPNGRenderer(opts)
	return r.convert(ctx, svg)
}

func (r pngRenderer) convert(ctx context.Context, svg []byte) ([]byte, error) {
	switch r.engine {
	case EngineRSVG:
		return render.ToPNG(ctx, svg, r.scale)
	case EngineRaster, "":
		return render.Rasterize(svg, r.scale)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown png engine %q", r.engine)
	}
}
