package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// renderSpinner animates a progress line on stderr while a batch of icons
// or sheets renders. The line reads "Rendering 3/12 wifi" once work starts.
// It stops on its own when the command context is cancelled.
type renderSpinner struct {
	ctx    context.Context
	cancel context.CancelFunc
	out    io.Writer

	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	total   int
	started int
	current string
	width   int
}

func newRenderSpinner(ctx context.Context, total int) *renderSpinner {
	ctx, cancel := context.WithCancel(ctx)
	return &renderSpinner{
		ctx:     ctx,
		cancel:  cancel,
		out:     os.Stderr,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		total:   total,
	}
}

// Advance records that rendering of name has begun.
func (s *renderSpinner) Advance(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started < s.total {
		s.started++
	}
	s.current = name
}

// Started returns how many items have begun rendering.
func (s *renderSpinner) Started() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *renderSpinner) message() string {
	if s.started == 0 {
		return fmt.Sprintf("Rendering %d items...", s.total)
	}
	return fmt.Sprintf("Rendering %d/%d %s", s.started, s.total, s.current)
}

// Start begins the animation.
func (s *renderSpinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

func (s *renderSpinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.message())
	// Pad over the tail of a longer previous line.
	w := lipgloss.Width(line)
	pad := max(s.width-w, 0)
	s.width = w
	fmt.Fprintf(s.out, "\r%s%s", line, strings.Repeat(" ", pad))
}

// Stop ends the animation and clears the line. It is safe to call more
// than once.
func (s *renderSpinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		<-s.stopped
		s.cancel()

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.width > 0 {
			fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
			s.width = 0
		}
	})
}

// StopWithError stops the spinner and reports which item failed.
func (s *renderSpinner) StopWithError(message string) {
	s.Stop()
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current != "" {
		printError("%s at %s", message, current)
		return
	}
	printError("%s", message)
}
