package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/badgeicon/pkg/badge"
	"github.com/matzehuels/badgeicon/pkg/glyph"
	"github.com/matzehuels/badgeicon/pkg/pipeline"
)

func TestRenderSpinnerMessage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		advances []string
		want     string
	}{
		{"not started", 12, nil, "Rendering 12 items..."},
		{"first icon", 12, []string{"wifi"}, "Rendering 1/12 wifi"},
		{"third icon", 3, []string{"wifi", "battery", "bolt"}, "Rendering 3/3 bolt"},
		{"clamped to total", 1, []string{"light sheet", "dark sheet"}, "Rendering 1/1 dark sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRenderSpinner(context.Background(), tt.total)
			for _, name := range tt.advances {
				s.Advance(name)
			}
			if got := s.message(); got != tt.want {
				t.Errorf("message() = %q, want %q", got, tt.want)
			}
		})
	}
}

// output reads what the spinner wrote while holding its lock.
func (s *renderSpinner) output(buf *bytes.Buffer) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buf.String()
}

func TestRenderSpinnerDrawsProgress(t *testing.T) {
	var buf bytes.Buffer
	s := newRenderSpinner(context.Background(), 2)
	s.out = &buf
	s.Advance("wifi")
	s.Start()

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(s.output(&buf), "1/2 wifi") {
		if time.Now().After(deadline) {
			t.Fatalf("progress line never drawn: %q", s.output(&buf))
		}
		time.Sleep(10 * time.Millisecond)
	}
	s.Stop()

	out := buf.String()
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("line not cleared on stop: %q", out)
	}
}

func TestRenderSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newRenderSpinner(ctx, 5)
	s.out = &bytes.Buffer{}
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner still running after cancellation")
	}
	s.Stop()
}

func TestRenderSpinnerStopIsIdempotent(t *testing.T) {
	s := newRenderSpinner(context.Background(), 1)
	s.out = &bytes.Buffer{}
	s.Start()

	s.Stop()
	s.Stop()
	s.StopWithError("Render failed")
}

func TestRenderIconsAdvancesPerIcon(t *testing.T) {
	icons := []badge.Icon{
		badge.NewIcon("wifi", glyph.Symbol("wifi"), badge.Spec{}),
		badge.NewIcon("battery", glyph.Symbol("battery.100percent"), badge.Spec{}),
	}
	opts := pipeline.Options{Scheme: pipeline.SchemeBoth}
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	runner := pipeline.NewRunner(nil, nil, nil)

	var seen []string
	results, err := renderIcons(context.Background(), runner, icons, opts, func(name string) {
		seen = append(seen, name)
	})
	if err != nil {
		t.Fatalf("renderIcons: %v", err)
	}
	if strings.Join(seen, ",") != "wifi,battery" {
		t.Errorf("advanced through %v", seen)
	}
	if len(results) != 4 {
		t.Errorf("got %d results, want one per icon and scheme", len(results))
	}

	seen = nil
	modes, _ := opts.Modes()
	if _, err := renderSheets(context.Background(), runner, icons, modes, opts, func(name string) {
		seen = append(seen, name)
	}); err != nil {
		t.Fatalf("renderSheets: %v", err)
	}
	if strings.Join(seen, ",") != "light sheet,dark sheet" {
		t.Errorf("advanced through %v", seen)
	}
}
