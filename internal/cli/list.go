package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/catalog"
	"github.com/matzehuels/badgeicon/pkg/glyph"
)

// maxGlyphRef bounds the glyph column width; path glyphs can be long.
const maxGlyphRef = 24

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var (
		catalogs []string
		dark     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog icons with their resolved colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog(catalogs...)
			if err != nil {
				return err
			}
			mode := badge.Light
			if dark {
				mode = badge.Dark
			}

			fmt.Println(StyleTitle.Render(fmt.Sprintf("%d icons", cat.Len())))
			fmt.Println(catalogTable(cat, mode).Render())
			printNextStep("Render one", "badgeicon render <name> -f svg,png")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&catalogs, "catalog", nil, "extra catalog files (YAML or TOML)")
	cmd.Flags().BoolVar(&dark, "dark", false, "show dark mode badge colors")

	return cmd
}

// catalogTable renders the catalog as a table with color swatches.
func catalogTable(cat *catalog.Catalog, mode badge.ColorScheme) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Glyph", "Badge", "Icon").
		Rows(listRows(cat, mode)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorWhite)
			default:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
		})
}

// listRows returns one row per entry: name, glyph reference, badge color,
// and icon colors, each color prefixed by a swatch.
func listRows(cat *catalog.Catalog, mode badge.ColorScheme) [][]string {
	entries := cat.Entries()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		icon := e.Icon()
		colors := make([]string, len(icon.Style.IconColors))
		for i, col := range icon.Style.IconColors {
			colors[i] = swatch(col) + " " + col.String()
		}
		bg := icon.Style.EffectiveBadgeColor(mode)
		rows = append(rows, []string{
			e.Name,
			truncate(glyph.Ref(icon.EffectiveGlyph(mode)), maxGlyphRef),
			swatch(bg) + " " + bg.String(),
			strings.Join(colors, ", "),
		})
	}
	return rows
}

// swatch renders a two-cell block in c.
func swatch(c badge.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.HexRGB())).Render("  ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
