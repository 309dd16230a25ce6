package glyph

import (
	"fmt"
	"slices"
	"strings"
)

// fillSuffix selects the filled variant of a symbol regardless of the
// style's fill setting.
const fillSuffix = ".fill"

// Symbol is a named icon from the built-in registry.
type Symbol string

var _ Outliner = Symbol("")

// GlyphName implements badge.Glyph.
func (s Symbol) GlyphName() string { return string(s) }

// Known reports whether the symbol is in the registry. Unknown symbols still
// render, as a lettermark.
func (s Symbol) Known() bool {
	_, _, ok := lookup(string(s))
	return ok
}

// Outline returns the registry shape. Names ending in ".fill" drop the line
// variant so the symbol is always drawn filled.
func (s Symbol) Outline() (Shape, error) {
	shape, solid, ok := lookup(string(s))
	if !ok {
		return Shape{}, fmt.Errorf("unknown symbol %q", string(s))
	}
	if solid {
		shape.Line = shape.Fill
	}
	return shape, nil
}

func lookup(name string) (Shape, bool, bool) {
	name = strings.TrimSpace(name)
	if shape, ok := symbols[name]; ok {
		return shape, false, true
	}
	if target, ok := aliases[name]; ok {
		return symbols[target], strings.HasSuffix(name, fillSuffix), true
	}
	if base, ok := strings.CutSuffix(name, fillSuffix); ok {
		if target, ok := aliases[base]; ok {
			base = target
		}
		if shape, ok := symbols[base]; ok {
			return shape, true, true
		}
	}
	return Shape{}, false, false
}

// Symbols returns the registry names in sorted order.
func Symbols() []string {
	names := make([]string, 0, len(symbols))
	for name := range symbols {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register adds or replaces a registry symbol. It is meant for program
// initialization and is not safe for concurrent use with rendering.
func Register(name string, shape Shape) error {
	if name == "" || strings.HasSuffix(name, fillSuffix) {
		return fmt.Errorf("invalid symbol name %q", name)
	}
	if shape.ViewBox.Empty() || len(shape.Fill) == 0 {
		return fmt.Errorf("symbol %q: shape needs a view box and at least one layer", name)
	}
	symbols[name] = shape
	return nil
}

// Tinted reports whether any layer of the shape carries its own color, so
// multicolor rendering differs from monochrome.
func (s Shape) Tinted() bool {
	return slices.ContainsFunc(s.Fill, func(l Layer) bool { return l.Color != nil })
}
