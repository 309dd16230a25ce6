package catalog

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/glyph"
)

// Format is a catalog file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf returns the format for a file name by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog file %q (want .yaml, .yml or .toml)", path)
	}
}

// fileEntry is the on-disk form of an Entry.
type fileEntry struct {
	Name     string     `yaml:"name" toml:"name"`
	Icon     string     `yaml:"icon" toml:"icon"`
	DarkIcon string     `yaml:"dark_icon,omitempty" toml:"dark_icon,omitempty"`
	Style    badge.Spec `yaml:"style,omitempty" toml:"style,omitempty"`
}

type fileCatalog struct {
	Icons []fileEntry `yaml:"icons" toml:"icons"`
}

// LoadFile reads a catalog file, picking the format from the extension.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "read catalog %s", path)
	}
	c, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidCatalog), err, "load catalog %s", path)
	}
	return c, nil
}

// LoadFS reads every catalog file in fsys matching pattern, in lexical
// order, and merges them. Later files override earlier ones by name.
func LoadFS(fsys fs.FS, pattern string) (*Catalog, error) {
	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "bad catalog pattern %q", pattern)
	}
	merged, _ := New()
	for _, p := range paths {
		format, err := FormatOf(p)
		if err != nil {
			continue
		}
		f, err := fsys.Open(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "open catalog %s", p)
		}
		c, err := Decode(f, format)
		f.Close()
		if err != nil {
			return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidCatalog), err, "load catalog %s", p)
		}
		merged.Merge(c)
	}
	return merged, nil
}

// Decode reads a catalog. Unknown keys are rejected so typos in style
// fields do not silently fall back to defaults.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	var fc fileCatalog
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse yaml catalog")
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&fc)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse toml catalog")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown catalog key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
	}

	c, _ := New()
	for i, fe := range fc.Icons {
		e, err := fe.entry()
		if err != nil {
			return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidCatalog), err, "icon %d", i+1)
		}
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (fe fileEntry) entry() (Entry, error) {
	name := strings.TrimSpace(fe.Name)
	if fe.Icon == "" {
		return Entry{}, errors.New(errors.ErrCodeInvalidGlyph, "icon %q has no glyph", name)
	}
	g, err := glyph.Parse(fe.Icon)
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeInvalidGlyph, err, "icon %q", name)
	}
	e := Entry{Name: name, Glyph: g, Spec: fe.Style}
	if fe.DarkIcon != "" {
		dg, err := glyph.Parse(fe.DarkIcon)
		if err != nil {
			return Entry{}, errors.Wrap(errors.ErrCodeInvalidGlyph, err, "icon %q dark glyph", name)
		}
		e.DarkGlyph = dg
	}
	return e, nil
}

// Encode writes the catalog in format. The output reads back with Decode.
func (c *Catalog) Encode(w io.Writer, format Format) error {
	fc := fileCatalog{Icons: make([]fileEntry, len(c.entries))}
	for i, e := range c.entries {
		fc.Icons[i] = fileEntry{
			Name:     e.Name,
			Icon:     glyph.Ref(e.Glyph),
			DarkIcon: glyph.Ref(e.DarkGlyph),
			Style:    e.Spec,
		}
	}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml catalog")
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(fc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml catalog")
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", format)
	}
}
