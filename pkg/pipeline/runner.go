package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/cache"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/observability"
	"github.com/matzehuels/badgeicon/pkg/render"
	"github.com/matzehuels/badgeicon/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render renders icon in the single color scheme selected by opts.
// Use RenderAll for SchemeBoth.
func (r *Runner) Render(ctx context.Context, icon badge.Icon, opts Options) (*Result, error) {
	mode, err := r.single(&opts)
	if err != nil {
		return nil, err
	}
	return r.renderIcon(ctx, icon, mode, opts)
}

// RenderAll renders icon once per color scheme selected by opts, light first.
func (r *Runner) RenderAll(ctx context.Context, icon badge.Icon, opts Options) ([]*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	modes, _ := opts.Modes()
	results := make([]*Result, 0, len(modes))
	for _, mode := range modes {
		res, err := r.renderIcon(ctx, icon, mode, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// RenderSheet renders icons as one contact sheet in the single color
// scheme selected by opts. The result is named "sheet".
func (r *Runner) RenderSheet(ctx context.Context, icons []badge.Icon, opts Options) (*Result, error) {
	mode, err := r.single(&opts)
	if err != nil {
		return nil, err
	}

	items := make([]render.Instructions, len(icons))
	for i, icon := range icons {
		items[i] = render.Build(icon, opts.Size, mode)
	}
	sheetOpts := []sink.SheetOption{sink.WithColumns(opts.Columns)}
	if opts.NoLabels {
		sheetOpts = append(sheetOpts, sink.WithoutLabels())
	}
	svg, err := sink.RenderSheet(items, sheetOpts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render sheet")
	}

	hash := cache.Hash(svg)
	j := job{
		name:    "sheet",
		mode:    mode,
		svg:     svg,
		ttl:     cache.TTLSheet,
		keyType: "sheet",
		json:    func() ([]byte, error) { return sheetJSON(items, mode, opts.Size) },
		key: func(format string) string {
			k := cache.SheetKeyOpts{
				Format:  format,
				Scheme:  mode.String(),
				Size:    opts.Size,
				Columns: opts.Columns,
				Labels:  !opts.NoLabels,
			}
			if format == FormatPNG {
				k.Scale, k.Engine = opts.Scale, opts.PNGEngine
			}
			return r.Keyer.SheetKey(hash, k)
		},
	}
	return r.execute(ctx, j, opts)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) renderIcon(ctx context.Context, icon badge.Icon, mode badge.ColorScheme, opts Options) (*Result, error) {
	ins := render.Build(icon, opts.Size, mode)
	svg := sink.RenderSVG(ins)
	hash := cache.Hash(svg)

	j := job{
		name:    icon.Name,
		mode:    mode,
		svg:     svg,
		ttl:     cache.TTLArtifact,
		keyType: "artifact",
		json:    func() ([]byte, error) { return sink.RenderJSON(ins, sink.WithJSONIndent()) },
		key: func(format string) string {
			k := cache.ArtifactKeyOpts{Format: format}
			if format == FormatPNG {
				k.Scale, k.Engine = opts.Scale, opts.PNGEngine
			}
			return r.Keyer.ArtifactKey(hash, k)
		},
	}
	return r.execute(ctx, j, opts)
}

// single validates opts and returns its one color scheme.
func (r *Runner) single(opts *Options) (badge.ColorScheme, error) {
	r.applyLogger(opts)
	if err := opts.Validate(); err != nil {
		return badge.Light, err
	}
	modes, _ := opts.Modes()
	if len(modes) != 1 {
		return badge.Light, errors.New(errors.ErrCodeInvalidScheme,
			"scheme %q renders more than one variant", opts.Scheme)
	}
	return modes[0], nil
}

// job describes one rendered document and how its artifacts are cached.
type job struct {
	name    string
	mode    badge.ColorScheme
	svg     []byte
	json    func() ([]byte, error)
	key     func(format string) string
	ttl     time.Duration
	keyType string
}

func (r *Runner) execute(ctx context.Context, j job, opts Options) (res *Result, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, j.name, opts.Formats)
	defer func() {
		observability.Render().OnRenderComplete(ctx, j.name, opts.Formats, time.Since(start), err)
	}()

	res = &Result{
		Name:      j.name,
		Scheme:    j.mode,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	for _, format := range opts.Formats {
		data, hit, err := r.artifact(ctx, j, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s %s: %w", j.name, format, err)
		}
		if cached(format) {
			if hit {
				res.Stats.Hits++
			} else {
				res.Stats.Misses++
			}
		}
		res.Artifacts[format] = data
	}
	res.Stats.Duration = time.Since(start)
	res.CacheHit = res.Stats.Hits > 0 && res.Stats.Misses == 0

	opts.Logger.Info("rendered "+j.keyType,
		"name", j.name,
		"scheme", j.mode,
		"formats", opts.Formats,
		"cached", res.CacheHit,
		"duration", res.Stats.Duration)
	return res, nil
}

// artifact returns one format of j, consulting the cache for expensive ones.
func (r *Runner) artifact(ctx context.Context, j job, format string, opts Options) ([]byte, bool, error) {
	switch format {
	case FormatSVG:
		return j.svg, false, nil
	case FormatJSON:
		data, err := j.json()
		return data, false, err
	}

	key := j.key(format)
	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			opts.Logger.Warn("cache read failed", "key", key, "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, j.keyType)
			return data, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, j.keyType)

	data, err := convert(ctx, j.svg, format, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, j.ttl); err != nil {
		opts.Logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, j.keyType, len(data))
	}
	return data, false, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
