package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"turbocheck/internal/checks"

	"github.com/fatih/color"
)

const (
	glyphPass = "✓"
	glyphFail = "✗"
)

// ConsoleSink renders the human-readable checklist report.
type ConsoleSink struct {
	writer io.Writer
	mu     sync.Mutex
	pass   *color.Color
	fail   *color.Color
}

func NewConsoleSink(w io.Writer, colorize bool) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	s := &ConsoleSink{
		writer: w,
		pass:   color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
	}
	for _, c := range []*color.Color{s.pass, s.fail} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *ConsoleSink) Write(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	switch e.Type {
	case EventRunStarted:
		fmt.Fprintf(&b, "=== %s ===\n\n", e.Title)
	case EventPhaseStarted:
		if e.Index > 1 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s:\n", e.Index, e.Title)
	case EventCheckResult:
		if e.Result == nil {
			return nil
		}
		fmt.Fprintf(&b, "%s %s\n", s.glyph(e.Result.Passed()), e.Result.Message)
	case EventRunFinished:
		if e.Summary == nil {
			return nil
		}
		b.WriteString("\n=== Summary ===\n")
		fmt.Fprintf(&b, "%s %s\n", s.glyph(e.Summary.Passed), e.Summary.Verdict)
		if e.Summary.Passed && len(e.Summary.NextSteps) > 0 {
			b.WriteString("\nNext steps:\n")
			for i, step := range e.Summary.NextSteps {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
		}
	default:
		return nil
	}

	if _, err := io.WriteString(s.writer, b.String()); err != nil {
		return err
	}
	return flushIfPossible(s.writer)
}

func (s *ConsoleSink) glyph(ok bool) string {
	if ok {
		return s.pass.Sprint(glyphPass)
	}
	return s.fail.Sprint(glyphFail)
}

func (s *ConsoleSink) Close() error {
	return nil
}

// StatusGlyph returns the plain glyph used for a result status.
func StatusGlyph(st checks.Status) string {
	if st == checks.StatusPass {
		return glyphPass
	}
	return glyphFail
}
