package sink

import (
	"encoding/json"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/glyph"
	"github.com/matzehuels/badgeicon/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
	svg    bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// WithJSONSVG embeds the rendered SVG document.
func WithJSONSVG() JSONOption { return func(r *jsonRenderer) { r.svg = true } }

type jsonOutput struct {
	Name   string      `json:"name"`
	Size   float64     `json:"size"`
	Scheme string      `json:"scheme"`
	Badge  jsonBadge   `json:"badge"`
	Glyph  jsonGlyph   `json:"glyph"`
	Layers []jsonLayer `json:"layers"`
	SVG    string      `json:"svg,omitempty"`
}

type jsonBadge struct {
	Color        badge.Color `json:"color"`
	Gradient     bool        `json:"gradient"`
	CornerRadius float64     `json:"corner_radius"`
	StrokeColor  badge.Color `json:"stroke_color"`
	StrokeWidth  float64     `json:"stroke_width"`
	Inner        jsonRect    `json:"inner"`
	InnerRadius  float64     `json:"inner_radius"`
}

type jsonGlyph struct {
	Ref           string        `json:"ref"`
	ViewBox       string        `json:"view_box"`
	Visible       bool          `json:"visible"`
	Box           jsonRect      `json:"box"`
	Scale         float64       `json:"scale,omitempty"`
	TranslateX    float64       `json:"translate_x,omitempty"`
	TranslateY    float64       `json:"translate_y,omitempty"`
	Fill          bool          `json:"fill"`
	Foreground    string        `json:"foreground"`
	Colors        []badge.Color `json:"colors"`
	Gradient      bool          `json:"gradient"`
	RenderingMode string        `json:"rendering_mode"`
	ColorScheme   string        `json:"color_scheme"`
}

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

type jsonLayer struct {
	D        string      `json:"d"`
	Stroke   bool        `json:"stroke,omitempty"`
	Width    float64     `json:"width,omitempty"`
	Paint    string      `json:"paint"`
	Color    badge.Color `json:"color"`
	Gradient bool        `json:"gradient,omitempty"`
}

// RenderJSON renders the resolved instructions as JSON.
func RenderJSON(ins render.Instructions, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	inner, innerR := ins.Inner()
	box := ins.IconBox()
	out := jsonOutput{
		Name:   ins.Name,
		Size:   ins.Size,
		Scheme: ins.Scheme.String(),
		Badge: jsonBadge{
			Color:        ins.BackgroundColor,
			Gradient:     ins.BackgroundGradient,
			CornerRadius: ins.CornerRadius,
			StrokeColor:  ins.StrokeColor,
			StrokeWidth:  ins.StrokeWidth,
			Inner:        jsonRect(inner),
			InnerRadius:  innerR,
		},
		Glyph: jsonGlyph{
			Ref:           glyph.Ref(ins.Glyph),
			ViewBox:       ins.Shape.ViewBox.String(),
			Box:           jsonRect(box),
			Fill:          ins.IconFill,
			Foreground:    ins.Foreground.Kind.String(),
			Colors:        ins.Foreground.Colors,
			Gradient:      ins.Foreground.Gradient,
			RenderingMode: ins.RenderingMode.String(),
			ColorScheme:   ins.IconColorScheme.String(),
		},
		Layers: []jsonLayer{},
	}
	if p, ok := ins.Placement(); ok {
		out.Glyph.Visible = true
		out.Glyph.Scale = p.Scale
		out.Glyph.TranslateX = p.TX
		out.Glyph.TranslateY = p.TY
		for _, l := range ins.Paint() {
			jl := jsonLayer{D: l.D, Stroke: l.Stroke, Width: l.Width, Paint: "color", Color: l.Color, Gradient: l.Gradient}
			switch l.Kind {
			case render.FillBadge:
				jl.Paint = "badge"
			case render.FillGlyph:
				jl.Paint = "glyph"
			}
			out.Layers = append(out.Layers, jl)
		}
	}
	if r.svg {
		out.SVG = string(RenderSVG(ins))
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
