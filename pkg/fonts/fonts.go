// Package fonts provides the parsed fonts used to outline text glyphs and
// sheet labels.
//
// The Go fonts ship with golang.org/x/image, so they are compiled into the
// binary and need no system font lookup. Parsing happens once on first use.
package fonts

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

var (
	bold     *sfnt.Font
	boldErr  error
	boldOnce sync.Once

	regular     *sfnt.Font
	regularErr  error
	regularOnce sync.Once
)

// Bold returns the Go Bold font used for text glyphs.
func Bold() (*sfnt.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = sfnt.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// Regular returns the Go Regular font used for labels.
func Regular() (*sfnt.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = sfnt.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// FontFamily is the CSS font-family for SVG text that is not outlined.
const FontFamily = `-apple-system, 'SF Pro Text', 'Helvetica Neue', 'Go', sans-serif`
