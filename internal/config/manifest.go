package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is a YAML checklist that replaces the built-in one.
type Manifest struct {
	Title     string          `yaml:"title"`
	Success   string          `yaml:"success"`
	Failure   string          `yaml:"failure"`
	NextSteps []string        `yaml:"next_steps"`
	Phases    []ManifestPhase `yaml:"phases"`
}

type ManifestPhase struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	// Kind is "files" (existence checks) or "content" (substring checks).
	Kind string `yaml:"kind"`

	// Target, Subject and NotFound apply to content phases only.
	Target   string `yaml:"target"`
	Subject  string `yaml:"subject"`
	NotFound string `yaml:"not_found"`

	Items []ManifestItem `yaml:"items"`
}

type ManifestItem struct {
	Description string `yaml:"description"`
	Path        string `yaml:"path"`
	Pattern     string `yaml:"pattern"`
}

func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

func ParseManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) Validate() error {
	if len(m.Phases) == 0 {
		return errors.New("manifest must declare at least one phase")
	}

	seen := make(map[string]bool, len(m.Phases))
	for i := range m.Phases {
		p := &m.Phases[i]
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return fmt.Errorf("phase %d: id is required", i+1)
		}
		if seen[p.ID] {
			return fmt.Errorf("phase %q declared more than once", p.ID)
		}
		seen[p.ID] = true

		if p.Title == "" {
			p.Title = p.ID
		}
		if len(p.Items) == 0 {
			return fmt.Errorf("phase %q: at least one item is required", p.ID)
		}

		p.Kind = normalizeEnumValue(p.Kind)
		switch p.Kind {
		case "files":
			for j, item := range p.Items {
				if strings.TrimSpace(item.Path) == "" {
					return fmt.Errorf("phase %q item %d: path is required", p.ID, j+1)
				}
				if item.Pattern != "" {
					return fmt.Errorf("phase %q item %d: pattern is only valid in content phases", p.ID, j+1)
				}
			}
		case "content":
			if strings.TrimSpace(p.Target) == "" {
				return fmt.Errorf("phase %q: target is required for content phases", p.ID)
			}
			for j, item := range p.Items {
				if item.Pattern == "" {
					return fmt.Errorf("phase %q item %d: pattern is required", p.ID, j+1)
				}
				if item.Path != "" {
					return fmt.Errorf("phase %q item %d: path is only valid in files phases; use target", p.ID, j+1)
				}
			}
		case "":
			return fmt.Errorf("phase %q: kind is required (files or content)", p.ID)
		default:
			return fmt.Errorf("phase %q: unsupported kind %q (must be one of: files, content)", p.ID, p.Kind)
		}

		for j := range p.Items {
			if p.Items[j].Description == "" {
				p.Items[j].Description = p.Items[j].Path + p.Items[j].Pattern
			}
		}
	}
	return nil
}
