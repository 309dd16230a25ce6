package pipeline

import (
	"context"
	"encoding/json"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/render"
	"github.com/matzehuels/badgeicon/pkg/render/sink"
)

// convert derives a binary format from a rendered SVG document.
func convert(ctx context.Context, svg []byte, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		engine, err := sink.ParseEngine(opts.PNGEngine)
		if err != nil {
			return nil, err
		}
		return sink.SVGToPNG(ctx, svg, sink.WithScale(opts.Scale), sink.WithEngine(engine))
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

type sheetDocument struct {
	Scheme string            `json:"scheme"`
	Size   float64           `json:"size"`
	Icons  []json.RawMessage `json:"icons"`
}

// sheetJSON describes every badge of a sheet.
func sheetJSON(items []render.Instructions, mode badge.ColorScheme, size float64) ([]byte, error) {
	doc := sheetDocument{
		Scheme: mode.String(),
		Size:   size,
		Icons:  make([]json.RawMessage, 0, len(items)),
	}
	for _, ins := range items {
		data, err := sink.RenderJSON(ins)
		if err != nil {
			return nil, err
		}
		doc.Icons = append(doc.Icons, data)
	}
	return json.MarshalIndent(doc, "", "  ")
}
