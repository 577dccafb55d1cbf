// Package asktest provides scripted input and recorded output for exercising
// the ask engine without a terminal.
package asktest

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"promptly/internal/ask"
)

// Script is a LineReader that replays fixed lines and then reports io.EOF.
type Script struct {
	mu    sync.Mutex
	lines []string
	reads int
}

// Lines returns a Script yielding lines in order.
func Lines(lines ...string) *Script {
	return &Script{lines: append([]string(nil), lines...)}
}

// ReadLine returns the next scripted line or io.EOF.
func (s *Script) ReadLine() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reads >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.reads]
	s.reads++
	return line, nil
}

// Remaining reports how many scripted lines were not consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) - s.reads
}

// Recorder is a Sink that keeps every line it receives.
type Recorder struct {
	mu    sync.Mutex
	lines []ask.Line
}

// Say records line.
func (r *Recorder) Say(line ask.Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
	return nil
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []ask.Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ask.Line(nil), r.lines...)
}

// Count returns how many recorded lines have the given tone.
func (r *Recorder) Count(tone ask.Tone) int {
	count := 0
	for _, line := range r.Lines() {
		if line.Tone == tone {
			count++
		}
	}
	return count
}

// Text joins the recorded lines with newlines.
func (r *Recorder) Text() string {
	lines := r.Lines()
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, line.Text)
	}
	return strings.Join(parts, "\n")
}

// Timeout bounds a scripted ask when no deadline is given.
const Timeout = 5 * time.Second

// Context returns a context cancelled when t ends, shortened to finish a
// second before the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = Timeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
