package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/catalog"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output directory
	formats  string   // comma-separated formats: "svg", "png", "pdf", "json"
	size     float64  // badge side length in points
	scheme   string   // "light", "dark", or "both"
	scale    float64  // PNG pixel density
	engine   string   // PNG engine: "raster" or "rsvg"
	catalogs []string // extra catalog files
	all      bool     // render every catalog icon
	sheet    bool     // render one contact sheet instead of one file per icon
	columns  int      // contact sheet columns
	noLabels bool     // omit contact sheet labels
	noCache  bool     // disable the artifact cache
	refresh  bool     // bypass cached artifacts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: "."}

	cmd := &cobra.Command{
		Use:   "render [name]...",
		Short: "Render catalog icons to SVG, PNG, PDF, or JSON",
		Long: `Render one or more catalog icons.

Each icon is written as <name>.<format> in the output directory. With
--scheme both, dark variants are written as <name>-dark.<format>. With
--sheet, all selected icons are laid out on one contact sheet.`,
		Example: `  badgeicon render wifi
  badgeicon render wifi battery -f svg,png --size 128
  badgeicon render --all --sheet --scheme both -o out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	f.StringVarP(&opts.formats, "format", "f", "", "output formats (svg,png,pdf,json)")
	f.Float64Var(&opts.size, "size", 0, "badge size in points (default from config, 64)")
	f.StringVar(&opts.scheme, "scheme", "", "color scheme: light, dark, or both")
	f.Float64Var(&opts.scale, "scale", 0, "PNG pixel density")
	f.StringVar(&opts.engine, "png-engine", "", "PNG engine: raster or rsvg")
	f.StringSliceVar(&opts.catalogs, "catalog", nil, "extra catalog files (YAML or TOML)")
	f.BoolVar(&opts.all, "all", false, "render every icon in the catalog")
	f.BoolVar(&opts.sheet, "sheet", false, "render a contact sheet")
	f.IntVar(&opts.columns, "columns", 0, "contact sheet columns")
	f.BoolVar(&opts.noLabels, "no-labels", false, "omit contact sheet labels")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	f.BoolVar(&opts.refresh, "refresh", false, "re-render cached artifacts")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.config()
	if err != nil {
		return err
	}
	cat, err := c.catalog(opts.catalogs...)
	if err != nil {
		return err
	}
	icons, err := selectIcons(cat, args, opts.all)
	if err != nil {
		return err
	}

	popts := cfg.PipelineOptions()
	opts.apply(&popts)
	popts.Logger = logger
	if err := popts.Validate(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	total := len(icons)
	modes, err := popts.Modes()
	if err != nil {
		return err
	}
	if opts.sheet {
		total = len(modes)
	}

	prog := newProgress(logger)
	spinner := newRenderSpinner(ctx, total)
	spinner.Start()

	var results []*pipeline.Result
	if opts.sheet {
		results, err = renderSheets(ctx, runner, icons, modes, popts, spinner.Advance)
	} else {
		results, err = renderIcons(ctx, runner, icons, popts, spinner.Advance)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	paths, err := writeResults(opts.output, results, popts.Scheme == pipeline.SchemeBoth)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(paths)))

	printSuccess("Rendered %d files", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(icons), results)
	return nil
}

// apply overrides configured pipeline options with explicitly set flags.
func (o renderOpts) apply(p *pipeline.Options) {
	if fs := parseFormats(o.formats); fs != nil {
		p.Formats = fs
	}
	if o.size != 0 {
		p.Size = o.size
	}
	if o.scheme != "" {
		p.Scheme = o.scheme
	}
	if o.scale != 0 {
		p.Scale = o.scale
	}
	if o.engine != "" {
		p.PNGEngine = o.engine
	}
	if o.columns != 0 {
		p.Columns = o.columns
	}
	p.NoLabels = o.noLabels
	p.Refresh = o.refresh
}

// selectIcons resolves the requested icon names against cat.
func selectIcons(cat *catalog.Catalog, names []string, all bool) ([]badge.Icon, error) {
	if all {
		if len(names) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "--all cannot be combined with icon names")
		}
		return cat.Icons(), nil
	}
	if len(names) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no icons given; pass names or --all")
	}
	icons := make([]badge.Icon, 0, len(names))
	for _, name := range names {
		icon, err := cat.Icon(name)
		if err != nil {
			return nil, err
		}
		icons = append(icons, icon)
	}
	return icons, nil
}

// renderIcons renders each icon in every requested scheme. advance is
// called with the icon label before its render starts.
func renderIcons(ctx context.Context, runner *pipeline.Runner, icons []badge.Icon, opts pipeline.Options, advance func(string)) ([]*pipeline.Result, error) {
	var out []*pipeline.Result
	for _, icon := range icons {
		advance(icon.Label())
		results, err := runner.RenderAll(ctx, icon, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", icon.Label(), err)
		}
		out = append(out, results...)
	}
	return out, nil
}

// renderSheets renders one contact sheet per mode.
func renderSheets(ctx context.Context, runner *pipeline.Runner, icons []badge.Icon, modes []badge.ColorScheme, opts pipeline.Options, advance func(string)) ([]*pipeline.Result, error) {
	out := make([]*pipeline.Result, 0, len(modes))
	for _, mode := range modes {
		advance(mode.String() + " sheet")
		o := opts
		o.Scheme = mode.String()
		res, err := runner.RenderSheet(ctx, icons, o)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// writeResults writes every artifact into dir and returns the written paths
// in result order, formats sorted within a result.
func writeResults(dir string, results []*pipeline.Result, both bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create output directory")
	}
	var paths []string
	for _, res := range results {
		for _, format := range sortedFormats(res.Artifacts) {
			path := filepath.Join(dir, pipeline.FileName(res.Name, res.Scheme, both, format))
			if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func sortedFormats(artifacts map[string][]byte) []string {
	var out []string
	for _, f := range errors.Formats {
		if _, ok := artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
