package render

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/matzehuels/badgeicon/pkg/errors"
)

// MaxRasterSide caps the pixel side of in-process rasterization.
const MaxRasterSide = 8192

// Rasterize draws SVG bytes into a PNG in-process. The image is the SVG view
// box multiplied by scale. Only the SVG subset written by the sink package is
// guaranteed to draw: paths, rounded rects, groups with a matrix transform
// and linear gradients.
func Rasterize(svg []byte, scale float64) ([]byte, error) {
	img, err := RasterizeImage(svg, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RasterizeImage is Rasterize without the PNG encoding.
func RasterizeImage(svg []byte, scale float64) (*image.RGBA, error) {
	if scale <= 0 || math.IsNaN(scale) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", scale)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse svg")
	}

	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	if w <= 0 || h <= 0 || w > MaxRasterSide || h > MaxRasterSide {
		return nil, errors.New(errors.ErrCodeInvalidSize, "raster size %dx%d out of range", w, h)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
