package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultTitle   = "TurboJPEG Integration Verification"
	DefaultSuccess = "All checks passed! The TurboJPEG integration should work correctly."
	DefaultFailure = "Some checks failed. Please review the issues above."
)

var DefaultNextSteps = []string{
	"Build the project using CMake or the build script",
	"Run the Dart test to verify TurboJPEG is working",
}

type Config struct {
	// MAINTAINER NOTE: fields here are bound to flags in internal/cli/root.go.
	Workspace Workspace
	Checklist Checklist
	Output    Output
	Runtime   Runtime
}

type Workspace struct {
	// Dir is the base directory every checklist path resolves against (see --dir).
	// Empty means the directory containing the turbocheck executable.
	Dir string
}

type Checklist struct {
	// Manifest is a YAML file replacing the built-in checklist (see --manifest).
	Manifest string

	// Phases selects which phases run by ID (see --phases). Empty means all.
	// Values may be provided as repeated flags and/or comma-separated lists.
	Phases []string

	// Title is printed in the report banner.
	Title string

	// Success and Failure are the final verdict lines.
	Success string
	Failure string

	// NextSteps are printed as a numbered list after a passing run.
	NextSteps []string
}

type Output struct {
	// Out writes structured output to this path (see --out).
	Out string

	// OutFormat selects the format for --out (see --out-format).
	// Allowed values: json, ndjson. If empty, it is inferred from the --out file extension.
	OutFormat string

	// Report writes a Markdown report to this path (see --report).
	Report string

	// NoColor disables coloured glyphs on the console (see --no-color).
	NoColor bool
}

type Runtime struct {
	// Verbose enables debug diagnostics on stderr (see --verbose).
	Verbose bool
}

func New() *Config {
	return &Config{
		Checklist: Checklist{
			Title:     DefaultTitle,
			Success:   DefaultSuccess,
			Failure:   DefaultFailure,
			NextSteps: append([]string(nil), DefaultNextSteps...),
		},
	}
}

func (c *Config) Validate() error {
	c.Checklist.Phases = splitCommaList(c.Checklist.Phases)

	c.Workspace.Dir = strings.TrimSpace(c.Workspace.Dir)
	if c.Workspace.Dir != "" {
		c.Workspace.Dir = filepath.Clean(c.Workspace.Dir)
	}

	c.Checklist.Manifest = strings.TrimSpace(c.Checklist.Manifest)

	if c.Output.Out != "" {
		c.Output.OutFormat = normalizeEnumValue(c.Output.OutFormat)
		if c.Output.OutFormat == "" {
			ext := strings.ToLower(filepath.Ext(c.Output.Out))
			switch ext {
			case ".json":
				c.Output.OutFormat = "json"
			case ".ndjson", ".jsonl":
				c.Output.OutFormat = "ndjson"
			default:
				if ext == "" {
					return errors.New("cannot infer output format from file extension (missing extension); use --out-format")
				}
				return fmt.Errorf("cannot infer output format from file extension %q; use --out-format", ext)
			}
		} else if c.Output.OutFormat != "json" && c.Output.OutFormat != "ndjson" {
			return fmt.Errorf("unsupported --out-format: %s (must be one of: json, ndjson)", c.Output.OutFormat)
		}
	} else if strings.TrimSpace(c.Output.OutFormat) != "" {
		return errors.New("--out-format requires --out")
	}

	if c.Output.Report != "" && c.Output.Report == c.Output.Out {
		return errors.New("--report and --out must not point to the same file")
	}

	return nil
}

// ApplyManifest overrides the report text with any values the manifest sets.
func (c *Config) ApplyManifest(m *Manifest) {
	if m == nil {
		return
	}
	if m.Title != "" {
		c.Checklist.Title = m.Title
	}
	if m.Success != "" {
		c.Checklist.Success = m.Success
	}
	if m.Failure != "" {
		c.Checklist.Failure = m.Failure
	}
	if m.NextSteps != nil {
		c.Checklist.NextSteps = append([]string(nil), m.NextSteps...)
	}
}

// PhaseSelector joins the selected phase IDs into a registry selector.
func (c *Config) PhaseSelector() string {
	return strings.Join(c.Checklist.Phases, ",")
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
