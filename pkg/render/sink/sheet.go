package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/fonts"
	"github.com/matzehuels/badgeicon/pkg/glyph"
	"github.com/matzehuels/badgeicon/pkg/render"
)

// Sheet backgrounds, matching grouped list backgrounds in each scheme.
var (
	LightSheetBackground = badge.Hex(0xF2F2F7)
	DarkSheetBackground  = badge.Hex(0x1C1C1E)
)

// SheetOption configures contact sheet rendering.
type SheetOption func(*sheetRenderer)

type sheetRenderer struct {
	columns    int
	labels     bool
	background *badge.Color
	title      string
}

// WithColumns sets the number of grid columns (default 6).
func WithColumns(n int) SheetOption {
	return func(r *sheetRenderer) {
		if n > 0 {
			r.columns = n
		}
	}
}

// WithoutLabels drops the names under each badge.
func WithoutLabels() SheetOption { return func(r *sheetRenderer) { r.labels = false } }

// WithSheetBackground overrides the scheme's background color.
func WithSheetBackground(c badge.Color) SheetOption {
	return func(r *sheetRenderer) { r.background = &c }
}

// WithSheetTitle sets the document title.
func WithSheetTitle(t string) SheetOption { return func(r *sheetRenderer) { r.title = t } }

// sheetLayout holds the grid metrics derived from the badge size.
type sheetLayout struct {
	size, gap, margin     float64
	fontSize, labelHeight float64
	cols, rows            int
}

func (l sheetLayout) cellWidth() float64 { return l.size + l.gap }

func (l sheetLayout) cellHeight() float64 { return l.size + l.labelHeight + l.gap }

func (l sheetLayout) width() float64 {
	return 2*l.margin + float64(l.cols)*l.cellWidth() - l.gap
}

func (l sheetLayout) height() float64 {
	return 2*l.margin + float64(l.rows)*l.cellHeight() - l.gap
}

// origin returns the top-left corner of the badge in cell i.
func (l sheetLayout) origin(i int) (float64, float64) {
	col, row := i%l.cols, i/l.cols
	return l.margin + float64(col)*l.cellWidth(), l.margin + float64(row)*l.cellHeight()
}

// RenderSheet renders icons in a grid, each with its label below. All icons
// are laid out at the size of the first one. The background follows the
// ambient scheme of the first icon.
func RenderSheet(items []render.Instructions, opts ...SheetOption) ([]byte, error) {
	r := sheetRenderer{columns: 6, labels: true, title: "badge icons"}
	for _, opt := range opts {
		opt(&r)
	}

	size, scheme := 64.0, badge.Light
	if len(items) > 0 {
		size, scheme = items[0].Size, items[0].Scheme
	}
	l := sheetLayout{
		size:   size,
		gap:    math.Round(size * 0.5),
		margin: math.Round(size * 0.5),
		cols:   max(min(r.columns, len(items)), 1),
	}
	l.rows = max((len(items)+l.cols-1)/l.cols, 1)
	if r.labels {
		l.fontSize = math.Max(size*0.2, 8)
		l.labelHeight = l.fontSize * 1.8
	}

	bg, labelColor := LightSheetBackground, badge.Black.Opacity(0.85)
	if scheme == badge.Dark {
		bg, labelColor = DarkSheetBackground, badge.White.Opacity(0.85)
	}
	if r.background != nil {
		bg = *r.background
	}

	var buf bytes.Buffer
	w, h := l.width(), l.height()
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		f(w), f(h), f(w), f(h))
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(r.title))
	writeRect(&buf, render.Rect{W: w, H: h}, 0, solid(bg))

	for i, ins := range items {
		x, y := l.origin(i)
		if ins.Size != size && ins.Size > 0 {
			s := size / ins.Size
			fmt.Fprintf(&buf, `<g transform="matrix(%s 0 0 %s %s %s)">`+"\n", f(s), f(s), f(x), f(y))
		} else {
			fmt.Fprintf(&buf, `<g transform="translate(%s %s)">`+"\n", f(x), f(y))
		}
		writeBadge(&buf, ins, fmt.Sprintf("i%d", i))
		buf.WriteString("</g>\n")

		if r.labels {
			if err := writeLabel(&buf, l, ins.Name, x, y, labelColor); err != nil {
				return nil, err
			}
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// writeLabel outlines name centered under the badge at (x, y), shortened
// with an ellipsis when it is wider than the cell.
func writeLabel(buf *bytes.Buffer, l sheetLayout, name string, x, y float64, c badge.Color) error {
	font, err := fonts.Regular()
	if err != nil {
		return fmt.Errorf("load label font: %w", err)
	}
	text, width, err := fitLabel(name, l.cellWidth()-l.gap/4, func(s string) (float64, error) {
		return glyph.TextWidth(font, s, l.fontSize)
	})
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	baseline := y + l.size + l.fontSize*1.3
	d, err := glyph.TextPath(font, text, x+(l.size-width)/2, baseline, l.fontSize)
	if err != nil {
		return fmt.Errorf("outline label %q: %w", name, err)
	}
	pt := solid(c)
	fmt.Fprintf(buf, `<path d="%s" fill="%s"%s/>`+"\n", d, pt.ref, pt.opacity("fill-opacity"))
	return nil
}

// fitLabel drops runes from the end of s until it fits maxWidth, marking
// the cut with an ellipsis.
func fitLabel(s string, maxWidth float64, measure func(string) (float64, error)) (string, float64, error) {
	w, err := measure(s)
	if err != nil || w <= maxWidth {
		return s, w, err
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cut := string(runes[:n]) + "…"
		w, err := measure(cut)
		if err != nil {
			return "", 0, err
		}
		if w <= maxWidth {
			return cut, w, nil
		}
	}
	w, err = measure("…")
	return "…", w, err
}
