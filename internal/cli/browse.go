package cli

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/glyph"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

// Size slider bounds, in points.
const (
	browseMinSize  = 16.0
	browseMaxSize  = 256.0
	browseSizeStep = 8.0
	sliderWidth    = 24
)

// Browser styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var catalogs []string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse catalog icons interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog(catalogs...)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewBrowseModel(cat.Icons()), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}

			m := final.(BrowseModel)
			if m.Selected == nil {
				return nil
			}
			fmt.Println(StyleTitle.Render(m.Selected.Label()))
			for _, kv := range describe(*m.Selected, m.Size, m.scheme()) {
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

	return cmd
}

// =============================================================================
// BrowseModel - Interactive icon browser
// =============================================================================

// BrowseModel is the bubbletea model for browsing icons as a grid or a list
// with a size slider and a dark mode toggle.
type BrowseModel struct {
	Icons    []badge.Icon
	Cursor   int
	Grid     bool
	Dark     bool
	Size     float64
	Columns  int
	Selected *badge.Icon
}

// NewBrowseModel creates a browser showing icons as a grid.
func NewBrowseModel(icons []badge.Icon) BrowseModel {
	return BrowseModel{
		Icons:   icons,
		Grid:    true,
		Size:    pipeline.DefaultSize,
		Columns: pipeline.DefaultColumns,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.move(-1)
		case "right", "l":
			m.move(1)
		case "up", "k":
			m.move(-m.stride())
		case "down", "j":
			m.move(m.stride())
		case "tab":
			m.Grid = !m.Grid
		case "d":
			m.Dark = !m.Dark
		case "+", "=":
			m.Size = min(m.Size+browseSizeStep, browseMaxSize)
		case "-":
			m.Size = max(m.Size-browseSizeStep, browseMinSize)
		case "enter":
			if len(m.Icons) == 0 {
				return m, nil
			}
			icon := m.Icons[m.Cursor]
			m.Selected = &icon
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Each tile is 12 cells wide.
		m.Columns = max(msg.Width/12, 1)
	}
	return m, nil
}

// stride is the cursor step for up and down.
func (m BrowseModel) stride() int {
	if m.Grid {
		return m.Columns
	}
	return 1
}

func (m *BrowseModel) move(delta int) {
	next := m.Cursor + delta
	if next >= 0 && next < len(m.Icons) {
		m.Cursor = next
	}
}

func (m BrowseModel) scheme() badge.ColorScheme {
	if m.Dark {
		return badge.Dark
	}
	return badge.Light
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Badge Browser"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←↑↓→ move  tab grid/list  d dark  +/- size  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Icons) == 0 {
		b.WriteString(listDimStyle.Render("no icons"))
		return b.String()
	}

	if m.Grid {
		b.WriteString(m.gridView())
	} else {
		b.WriteString(m.listView())
	}
	b.WriteString("\n\n")

	icon := m.Icons[m.Cursor]
	g := icon.Geometry(m.Size, m.scheme())
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleHighlight.Render(icon.Label()), listDimStyle.Render(m.scheme().String())))
	b.WriteString(fmt.Sprintf("size %s %s\n", slider(m.Size, browseMinSize, browseMaxSize, sliderWidth), StyleNumber.Render(num(m.Size))))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("radius %s · stroke %s · padding %s · offset %s,%s",
		num(g.CornerRadius), num(g.StrokeWidth), num(g.Padding), num(g.Offset.X), num(g.Offset.Y))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Icons))))

	return b.String()
}

func (m BrowseModel) gridView() string {
	var rows []string
	for start := 0; start < len(m.Icons); start += m.Columns {
		end := min(start+m.Columns, len(m.Icons))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.tile(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// tile renders icon i as a swatch of its badge color with the glyph initial
// in its first icon color, above a truncated name.
func (m BrowseModel) tile(i int) string {
	icon := m.Icons[i]
	mode := m.scheme()

	fg := colorWhite
	if cs := icon.Style.IconColors; len(cs) > 0 {
		fg = lipgloss.Color(cs[0].HexRGB())
	}
	border := colorDim
	if i == m.Cursor {
		border = colorCyan
	}

	face := lipgloss.NewStyle().
		Width(8).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(icon.Style.EffectiveBadgeColor(mode).HexRGB())).
		Foreground(fg).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(initial(icon, mode))

	nameStyle := listNormalStyle
	if i == m.Cursor {
		nameStyle = listSelectedStyle
	}
	name := nameStyle.Width(10).Align(lipgloss.Center).Render(truncate(icon.Label(), 10))

	return lipgloss.NewStyle().PaddingRight(2).Render(lipgloss.JoinVertical(lipgloss.Center, face, name))
}

func (m BrowseModel) listView() string {
	var b strings.Builder
	for i, icon := range m.Icons {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		bg := icon.Style.EffectiveBadgeColor(m.scheme())
		line := fmt.Sprintf("%s%s %-24s %s", cursor, swatch(bg), icon.Label(), listDimStyle.Render(glyph.Ref(icon.EffectiveGlyph(m.scheme()))))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// initial returns the uppercase first letter of the glyph name.
func initial(icon badge.Icon, mode badge.ColorScheme) string {
	g := icon.EffectiveGlyph(mode)
	if g == nil {
		return "?"
	}
	for _, r := range g.GlyphName() {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return "?"
}

// slider renders v in [lo, hi] as a track of width cells with a knob.
func slider(v, lo, hi float64, width int) string {
	pos := 0
	if hi > lo {
		pos = int((v - lo) / (hi - lo) * float64(width-1))
	}
	pos = min(max(pos, 0), width-1)
	return StyleHighlight.Render(strings.Repeat("━", pos)+"●") + listDimStyle.Render(strings.Repeat("─", width-1-pos))
}
