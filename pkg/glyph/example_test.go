package glyph_test

import (
	"fmt"

	"github.com/matzehuels/badgeicon/pkg/glyph"
)

func ExampleParse() {
	for _, ref := range []string{"wifi", "text:A", "path:0 0 48 48;M4 4H44V44H4Z"} {
		g, err := glyph.Parse(ref)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%T %s\n", g, glyph.Ref(g))
	}
	// Output:
	// glyph.Symbol wifi
	// glyph.Text text:A
	// glyph.Path path:0 0 48 48;M4 4H44V44H4Z
}

func ExampleOutline() {
	shape := glyph.Outline(glyph.Symbol("checkmark.circle"))
	fmt.Println(shape.ViewBox, len(shape.Fill), shape.Fill[1].Knockout)
	// Output: 0 0 24 24 2 true
}
