package sink

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/errors"
)

func TestRenderPNGRaster(t *testing.T) {
	ins := build("email", "envelope", badge.Spec{
		IconColor:     badge.Ptr(badge.White),
		BadgeColor:    badge.Ptr(badge.Blue),
		BadgeGradient: badge.Ptr(false),
	}, 64, badge.Light)

	data, err := RenderPNG(context.Background(), ins, WithScale(2))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("bounds = %v", b)
	}

	// Rounded corner stays transparent.
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a>>8)
	}
	// Inside the badge, left of the glyph box, is the badge color.
	r, g, b, _ := img.At(8, 64).RGBA()
	if !near(r>>8, 0x00) || !near(g>>8, 0x7a) || !near(b>>8, 0xff) {
		t.Errorf("badge pixel = %d,%d,%d, want 0,122,255", r>>8, g>>8, b>>8)
	}
}

func near(got uint32, want uint32) bool {
	d := int(got) - int(want)
	return d >= -3 && d <= 3
}

func TestParseEngine(t *testing.T) {
	for in, want := range map[string]Engine{"": EngineRaster, "raster": EngineRaster, "rsvg": EngineRSVG} {
		got, err := ParseEngine(in)
		if err != nil || got != want {
			t.Errorf("ParseEngine(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseEngine("cairo"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseEngine(cairo) = %v", err)
	}
}

func TestSVGToPNGUnknownEngine(t *testing.T) {
	_, err := SVGToPNG(context.Background(), []byte("<svg/>"), WithEngine("cairo"))
	if err == nil {
		t.Error("unknown engine accepted")
	}
}
