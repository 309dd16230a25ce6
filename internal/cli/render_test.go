package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/catalog"
	"github.com/matzehuels/badgeicon/pkg/errors"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

func TestSelectIcons(t *testing.T) {
	cat := catalog.Default()

	icons, err := selectIcons(cat, []string{"wifi", "battery"}, false)
	if err != nil {
		t.Fatalf("selectIcons: %v", err)
	}
	if len(icons) != 2 || icons[0].Name != "wifi" || icons[1].Name != "battery" {
		t.Errorf("selectIcons kept wrong icons: %v", icons)
	}

	all, err := selectIcons(cat, nil, true)
	if err != nil {
		t.Fatalf("selectIcons --all: %v", err)
	}
	if len(all) != cat.Len() {
		t.Errorf("--all selected %d icons, want %d", len(all), cat.Len())
	}

	tests := []struct {
		name  string
		names []string
		all   bool
		code  errors.Code
	}{
		{"nothing", nil, false, errors.ErrCodeInvalidInput},
		{"all with names", []string{"wifi"}, true, errors.ErrCodeInvalidInput},
		{"unknown", []string{"nope"}, false, errors.ErrCodeIconNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selectIcons(cat, tt.names, tt.all)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderOptsApply(t *testing.T) {
	p := pipeline.Options{Size: 64, Scheme: "light", Formats: []string{"svg"}, Scale: 2}

	renderOpts{}.apply(&p)
	if p.Size != 64 || p.Scheme != "light" || !reflect.DeepEqual(p.Formats, []string{"svg"}) {
		t.Errorf("zero flags changed options: %+v", p)
	}

	renderOpts{formats: "png,pdf", size: 128, scheme: "both", scale: 3, engine: "rsvg", columns: 4, noLabels: true, refresh: true}.apply(&p)
	want := pipeline.Options{
		Size:      128,
		Scheme:    "both",
		Formats:   []string{"png", "pdf"},
		Scale:     3,
		PNGEngine: "rsvg",
		Columns:   4,
		NoLabels:  true,
		Refresh:   true,
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("apply = %+v, want %+v", p, want)
	}
}

func TestWriteResults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	results := []*pipeline.Result{
		{Name: "wifi", Scheme: badge.Light, Artifacts: map[string][]byte{"json": []byte("{}"), "svg": []byte("<svg/>")}},
		{Name: "wifi", Scheme: badge.Dark, Artifacts: map[string][]byte{"svg": []byte("<svg dark/>")}},
	}

	paths, err := writeResults(dir, results, true)
	if err != nil {
		t.Fatalf("writeResults: %v", err)
	}
	want := []string{
		filepath.Join(dir, "wifi.svg"),
		filepath.Join(dir, "wifi.json"),
		filepath.Join(dir, "wifi-dark.svg"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "wifi-dark.svg"))
	if err != nil || string(data) != "<svg dark/>" {
		t.Errorf("wifi-dark.svg = %q, %v", data, err)
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	out := t.TempDir()

	if _, err := execute(t, "render", "wifi", "battery", "-f", "svg,json", "--scheme", "both", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, name := range []string{"wifi.svg", "wifi.json", "wifi-dark.svg", "battery.svg", "battery-dark.json"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRenderSheetCommand(t *testing.T) {
	isolate(t)
	out := t.TempDir()

	if _, err := execute(t, "render", "--all", "--sheet", "--columns", "4", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render --sheet: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "sheet.svg")); err != nil {
		t.Errorf("missing sheet.svg: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"no icons", []string{"render"}, errors.ErrCodeInvalidInput},
		{"unknown icon", []string{"render", "nope"}, errors.ErrCodeIconNotFound},
		{"bad format", []string{"render", "wifi", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad scheme", []string{"render", "wifi", "--scheme", "sepia"}, errors.ErrCodeInvalidScheme},
		{"missing catalog", []string{"render", "wifi", "--catalog", "missing.yaml"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-o", t.TempDir(), "--no-cache")
			_, err := execute(t, args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderCommandExtraCatalog(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "extra.yaml")
	body := "icons:\n  - name: rocket\n    icon: text:R\n    style:\n      badge_color: orange\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()

	if _, err := execute(t, "render", "rocket", "--catalog", file, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "rocket.svg")); err != nil {
		t.Errorf("missing rocket.svg: %v", err)
	}
}
