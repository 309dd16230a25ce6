package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/buildinfo"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/glyph"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Icons   int    `json:"icons"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
		Icons:   s.catalog.Len(),
	})
}

type listResponse struct {
	Icons []string `json:"icons"`
}

func (s *Server) handleListIcons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listResponse{Icons: s.catalog.Names()})
}

type iconResponse struct {
	Name     string         `json:"name"`
	Icon     string         `json:"icon"`
	DarkIcon string         `json:"dark_icon,omitempty"`
	Style    badge.Style    `json:"style"`
	Geometry badge.Geometry `json:"geometry"`
}

// handleIcon serves both /v1/icons/{name} and /v1/icons/{name}.{format}.
// Names may contain dots, so only a known format suffix selects rendering.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name, format := splitFormat(chi.URLParam(r, "ref"))

	entry, err := s.catalog.Lookup(name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, mode, err := s.options(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	icon := entry.Icon()
	if format == "" {
		resp := iconResponse{
			Name:     entry.Name,
			Icon:     glyph.Ref(entry.Glyph),
			Style:    icon.Style,
			Geometry: icon.Geometry(opts.Size, mode),
		}
		if entry.DarkGlyph != nil {
			resp.DarkIcon = glyph.Ref(entry.DarkGlyph)
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	s.render(w, r, icon, format, opts)
}

// renderRequest is the body of POST /v1/render.
type renderRequest struct {
	Name     string     `json:"name"`
	Icon     string     `json:"icon"`
	DarkIcon string     `json:"dark_icon"`
	Style    badge.Spec `json:"style"`
	Size     float64    `json:"size"`
	Scheme   string     `json:"scheme"`
	Format   string     `json:"format"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	if req.Name == "" {
		req.Name = "badge"
	}
	if err := errors.ValidateIconName(req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Icon == "" {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidGlyph, "icon is required"))
		return
	}
	g, err := glyph.Parse(req.Icon)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidGlyph, err, "invalid icon %q", req.Icon))
		return
	}
	icon := badge.NewIcon(req.Name, g, req.Style)
	if req.DarkIcon != "" {
		dg, err := glyph.Parse(req.DarkIcon)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidGlyph, err, "invalid dark_icon %q", req.DarkIcon))
			return
		}
		icon = icon.WithDarkGlyph(dg)
	}

	if req.Format == "" {
		req.Format = pipeline.FormatSVG
	}
	opts := s.defaults
	if req.Size != 0 {
		opts.Size = req.Size
	}
	if req.Scheme != "" {
		opts.Scheme = req.Scheme
	}
	opts.Formats = []string{req.Format}
	if err := checkScheme(opts.Scheme); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, icon, req.Format, opts)
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, _, err := s.options(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if v := r.URL.Query().Get("columns"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "columns must be a positive integer"))
			return
		}
		opts.Columns = n
	}
	opts.NoLabels = r.URL.Query().Get("labels") == "false"

	res, err := s.runner.RenderSheet(r.Context(), s.catalog.Icons(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, res.Artifacts[format])
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, icon badge.Icon, format string, opts pipeline.Options) {
	res, err := s.runner.Render(r.Context(), icon, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if res.CacheHit {
		w.Header().Set("X-Cache", "hit")
	}
	writeArtifact(w, format, res.Artifacts[format])
}

// options reads ?size= and ?scheme= over the server defaults. An empty
// format means no artifact is rendered.
func (s *Server) options(r *http.Request, format string) (pipeline.Options, badge.ColorScheme, error) {
	opts := s.defaults
	q := r.URL.Query()

	if v := q.Get("size"); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, badge.Light, errors.New(errors.ErrCodeInvalidSize, "size must be a number: %q", v)
		}
		opts.Size = size
	}
	if err := errors.ValidateSize(opts.Size); err != nil {
		return opts, badge.Light, err
	}

	if v := q.Get("scheme"); v != "" {
		opts.Scheme = v
	}
	if err := checkScheme(opts.Scheme); err != nil {
		return opts, badge.Light, err
	}
	mode := badge.Light
	if opts.Scheme == pipeline.SchemeDark {
		mode = badge.Dark
	}

	if format != "" {
		if err := errors.ValidateFormat(format); err != nil {
			return opts, mode, err
		}
		opts.Formats = []string{format}
	}
	return opts, mode, nil
}

// checkScheme accepts the schemes that yield a single artifact.
func checkScheme(scheme string) error {
	if scheme != pipeline.SchemeLight && scheme != pipeline.SchemeDark {
		return errors.New(errors.ErrCodeInvalidScheme, "scheme must be light or dark, got %q", scheme)
	}
	return nil
}

// splitFormat splits "wifi.png" into ("wifi", "png"). A ref without a known
// format suffix is returned whole.
func splitFormat(ref string) (string, string) {
	i := strings.LastIndexByte(ref, '.')
	if i <= 0 {
		return ref, ""
	}
	for _, f := range errors.Formats {
		if ref[i+1:] == f {
			return ref[:i], f
		}
	}
	return ref, ""
}
