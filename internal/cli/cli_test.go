package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/badgeicon/pkg/errors"
)

// isolate points every config and cache location at temporary directories.
func isolate(t *testing.T) (cacheHome string) {
	t.Helper()
	t.Setenv("BADGEICON_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cacheHome = t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	return cacheHome
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"browse", "cache", "completion", "list", "render", "serve", "show"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q in %v", name, got)
		}
	}

	for _, flag := range []string{"verbose", "config"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"svg, PNG ,pdf", []string{"svg", "png", "pdf"}},
		{"svg,,json", []string{"svg", "json"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCachePathCommand(t *testing.T) {
	cacheHome := isolate(t)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	want := filepath.Join(cacheHome, "badgeicon")
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestCacheClearCommand(t *testing.T) {
	cacheHome := isolate(t)
	out := t.TempDir()

	if _, err := execute(t, "render", "wifi", "-f", "png", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(cacheHome, "badgeicon"))
	if len(entries) == 0 {
		t.Fatal("render did not populate the file cache")
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	entries, _ = os.ReadDir(filepath.Join(cacheHome, "badgeicon"))
	if len(entries) != 0 {
		t.Errorf("cache has %d entries after clear", len(entries))
	}
}

func TestExplicitConfigMissing(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "cache", "path")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConfigDefaultsApply(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	body := "[render]\nformats = [\"json\"]\nscheme = \"dark\"\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	out := t.TempDir()

	if _, err := execute(t, "--config", cfg, "render", "wifi", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "wifi.json")); err != nil {
		t.Errorf("configured format not used: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "wifi.svg")); err == nil {
		t.Error("svg written although config selects json only")
	}
}

func TestDisplayURL(t *testing.T) {
	tests := map[string]string{
		":8080":          "http://localhost:8080",
		"0.0.0.0:9000":   "http://0.0.0.0:9000",
		"example.com:80": "http://example.com:80",
	}
	for in, want := range tests {
		if got := displayURL(in); got != want {
			t.Errorf("displayURL(%q) = %q, want %q", in, got, want)
		}
	}
}
