package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/glyph"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

// keyValue is one labeled line of show output.
type keyValue struct {
	key, value string
}

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		catalogs []string
		size     float64
		scheme   string
	)

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the resolved style and geometry of an icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateSize(size); err != nil {
				return err
			}
			mode, err := badge.ParseColorScheme(scheme)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScheme, err, "--scheme")
			}
			cat, err := c.catalog(catalogs...)
			if err != nil {
				return err
			}
			icon, err := cat.Icon(args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(icon.Label()))
			for _, kv := range describe(icon, size, mode) {
				if kv.key == "" {
					printNewline()
					continue
				}
				printKeyValue(kv.key, kv.value)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&catalogs, "catalog", nil, "extra catalog files (YAML or TOML)")
	cmd.Flags().Float64Var(&size, "size", pipeline.DefaultSize, "badge size in points")
	cmd.Flags().StringVar(&scheme, "scheme", pipeline.SchemeLight, "color scheme: light or dark")

	return cmd
}

// describe lists the resolved style of icon followed by its geometry at
// size in mode. An empty key separates the two groups.
func describe(icon badge.Icon, size float64, mode badge.ColorScheme) []keyValue {
	s := icon.Style
	g := icon.Geometry(size, mode)

	iconScheme := "ambient"
	if s.IconColorScheme != nil {
		iconScheme = s.IconColorScheme.String()
	}
	darkBadge := "-"
	if s.BadgeColorDarkMode != nil {
		darkBadge = s.BadgeColorDarkMode.String()
	}
	colors := ""
	for i, col := range s.IconColors {
		if i > 0 {
			colors += ", "
		}
		colors += col.String()
	}

	return []keyValue{
		{"glyph", glyph.Ref(icon.EffectiveGlyph(mode))},
		{"icon colors", colors},
		{"icon scheme", iconScheme},
		{"icon fill", strconv.FormatBool(s.IconFill)},
		{"rendering", s.IconRenderingMode.String()},
		{"badge", s.BadgeColor.String()},
		{"badge dark", darkBadge},
		{"stroke", s.BadgeStrokeColor.String()},
		{},
		{"size", num(g.Size)},
		{"radius", num(g.CornerRadius)},
		{"stroke width", num(g.StrokeWidth)},
		{"padding", num(g.Padding)},
		{"offset", num(g.Offset.X) + ", " + num(g.Offset.Y)},
		{"fill", g.BadgeColor.String()},
		{"icon mode", g.IconColorScheme.String()},
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
