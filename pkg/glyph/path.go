package glyph

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Path is a glyph drawn from caller-supplied SVG path data.
type Path struct {
	Name    string
	D       string
	ViewBox ViewBox // zero means SymbolBox
}

var _ Outliner = Path{}

// GlyphName implements badge.Glyph.
func (p Path) GlyphName() string {
	if p.Name != "" {
		return p.Name
	}
	return "path"
}

// Outline returns a single-layer shape. The line variant strokes the path.
func (p Path) Outline() (Shape, error) {
	d := strings.TrimSpace(p.D)
	if d == "" || (d[0] != 'M' && d[0] != 'm') {
		return Shape{}, fmt.Errorf("path data must start with a moveto")
	}
	if i := strings.IndexFunc(d, notPathData); i >= 0 {
		r, _ := utf8.DecodeRuneInString(d[i:])
		return Shape{}, fmt.Errorf("path data has invalid character %q at offset %d", r, i)
	}
	vb := p.ViewBox
	if vb == (ViewBox{}) {
		vb = SymbolBox
	}
	if vb.Empty() {
		return Shape{}, fmt.Errorf("path view box has no area")
	}
	return Shape{ViewBox: vb, Fill: []Layer{{D: d}}}, nil
}

// parsePath reads the body of a "path:" reference, "[x y w h;]d".
func parsePath(ref string) (Path, error) {
	vbText, d, hasBox := strings.Cut(ref, ";")
	if !hasBox {
		d, vbText = vbText, ""
	}
	p := Path{D: strings.TrimSpace(d)}
	if hasBox {
		vb, err := ParseViewBox(vbText)
		if err != nil {
			return Path{}, err
		}
		p.ViewBox = vb
	}
	if _, err := p.Outline(); err != nil {
		return Path{}, err
	}
	return p, nil
}

// notPathData reports runes outside SVG path data: command letters, numbers,
// separators and whitespace.
func notPathData(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("MmLlHhVvCcSsQqTtAaZz", r):
		return false
	case strings.ContainsRune(",.+-eE \t\n\r\f", r):
		return false
	}
	return true
}
