package engine

import (
	"fmt"

	"turbocheck/internal/checks"
	"turbocheck/internal/config"
)

// RunPlan is everything a run needs, resolved before any output is written.
type RunPlan struct {
	Workspace *checks.Workspace
	Phases    []checks.Phase
}

// BuildPlan resolves the checklist (built-in registry or manifest), applies
// the phase selector and fixes the base directory.
//
// A manifest's report text is applied to cfg so the summary matches the
// checklist that actually ran.
func BuildPlan(cfg *config.Config) (*RunPlan, error) {
	phases, err := resolvePhases(cfg)
	if err != nil {
		return nil, err
	}

	dir, err := checks.ResolveBaseDir(cfg.Workspace.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}
	ws, err := checks.NewWorkspace(dir)
	if err != nil {
		return nil, err
	}

	return &RunPlan{Workspace: ws, Phases: phases}, nil
}

func resolvePhases(cfg *config.Config) ([]checks.Phase, error) {
	var all []checks.Phase
	if cfg.Checklist.Manifest != "" {
		m, err := config.LoadManifest(cfg.Checklist.Manifest)
		if err != nil {
			return nil, err
		}
		cfg.ApplyManifest(m)
		all, err = checks.FromManifest(m)
		if err != nil {
			return nil, err
		}
	} else {
		all = checks.List()
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no check phases registered")
	}

	selected, err := checks.Select(all, cfg.PhaseSelector())
	if err != nil {
		return nil, fmt.Errorf("invalid --phases value: %w", err)
	}
	return selected, nil
}
