package output

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"turbocheck/internal/checks"
)

// ReportSink writes a Markdown summary of the run on Close.
type ReportSink struct {
	path    string
	file    *os.File
	mu      sync.Mutex
	title   string
	baseDir string
	phases  []checks.PhaseReport
	summary *Summary
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := createWithDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{path: path, file: f}, nil
}

func (s *ReportSink) Write(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch e.Type {
	case EventRunStarted:
		s.title = e.Title
		s.baseDir = e.BaseDir
	case EventPhaseFinished:
		if e.Report != nil {
			s.phases = append(s.phases, *e.Report)
		}
	case EventRunFinished:
		s.summary = e.Summary
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.file.WriteString(renderMarkdown(s.title, s.baseDir, s.phases, s.summary))
	if closeErr := s.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

func renderMarkdown(title, baseDir string, phases []checks.PhaseReport, summary *Summary) string {
	var b strings.Builder
	if title == "" {
		title = "Verification Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if baseDir != "" {
		fmt.Fprintf(&b, "- **Base directory:** `%s`\n", baseDir)
	}
	if summary != nil {
		verdict := "FAIL"
		if summary.Passed {
			verdict = "PASS"
		}
		fmt.Fprintf(&b, "- **Result:** %s (exit code %d)\n", verdict, summary.ExitCode)
		fmt.Fprintf(&b, "- **Phases passed:** %d/%d\n", summary.PhasesPassed, summary.Phases)
		fmt.Fprintf(&b, "- **Checks passed:** %d/%d\n", summary.ChecksPassed, summary.Checks)
	}

	for i, p := range phases {
		status := "FAIL"
		if p.Passed {
			status = "PASS"
		}
		fmt.Fprintf(&b, "\n## %d. %s (%s)\n\n", i+1, p.Title, status)
		b.WriteString("| Status | Check | Path | Pattern |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, r := range p.Results {
			fmt.Fprintf(&b, "| %s %s | %s | %s | %s |\n",
				StatusGlyph(r.Status), r.Status,
				escapeCell(r.Message),
				codeCell(r.Path),
				codeCell(r.Pattern))
		}
	}

	if summary != nil {
		fmt.Fprintf(&b, "\n## Summary\n\n%s %s\n", StatusGlyph(verdictStatus(summary.Passed)), summary.Verdict)
		if summary.Passed && len(summary.NextSteps) > 0 {
			b.WriteString("\n### Next steps\n\n")
			for i, step := range summary.NextSteps {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
		}
	}
	return b.String()
}

func verdictStatus(passed bool) checks.Status {
	if passed {
		return checks.StatusPass
	}
	return checks.StatusFail
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func codeCell(s string) string {
	if s == "" {
		return ""
	}
	return "`" + escapeCell(s) + "`"
}
