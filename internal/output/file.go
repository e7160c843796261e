package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"turbocheck/internal/checks"
)

// FileSink writes structured output to a file.
//
// Formats:
//   - json: a single document with every phase report, written on Close
//   - ndjson: every Event, one JSON object per line
type FileSink struct {
	path   string
	format string
	file   *os.File
	mu     sync.Mutex
	doc    fileDocument
}

type fileDocument struct {
	RunID    string               `json:"run_id"`
	Title    string               `json:"title"`
	BaseDir  string               `json:"base_dir"`
	Passed   bool                 `json:"passed"`
	ExitCode int                  `json:"exit_code"`
	Phases   []checks.PhaseReport `json:"phases"`
}

func NewFileSink(path string, format string) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("output path required")
	}

	// Infer format if not provided
	if format == "" {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".json":
			format = "json"
		case ".ndjson", ".jsonl":
			format = "ndjson"
		default:
			return nil, fmt.Errorf("cannot infer output format from file extension %q", ext)
		}
	}

	if format != "json" && format != "ndjson" {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	f, err := createWithDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &FileSink{
		path:   path,
		format: format,
		file:   f,
		doc:    fileDocument{Phases: []checks.PhaseReport{}},
	}, nil
}

func createWithDir(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func (s *FileSink) Write(e Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "ndjson" {
		return json.NewEncoder(s.file).Encode(e)
	}

	switch e.Type {
	case EventRunStarted:
		s.doc.RunID = e.RunID
		s.doc.Title = e.Title
		s.doc.BaseDir = e.BaseDir
	case EventPhaseFinished:
		if e.Report != nil {
			s.doc.Phases = append(s.doc.Phases, *e.Report)
		}
	case EventRunFinished:
		if e.Summary != nil {
			s.doc.Passed = e.Summary.Passed
			s.doc.ExitCode = e.Summary.ExitCode
		}
	}
	return nil
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.format == "json" {
		encoder := json.NewEncoder(s.file)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(s.doc)
	}

	if closeErr := s.file.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}
