package checks

import "context"

// Item is one checklist entry. Files phases match on Path; content phases
// match on Pattern inside the phase's target file.
type Item struct {
	Description string `json:"description"`
	Path        string `json:"path,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
}

type Phase interface {
	ID() string
	Title() string
	Description() string

	// Order positions the phase in a run. Lower runs first.
	Order() int
	Kind() Kind
	Items() []Item

	// Evaluate checks every item against ws. Missing files, missing patterns
	// and unreadable files are reported as results, not errors. An error is
	// returned only when ctx ends before the phase completes; the partial
	// report is still returned alongside it.
	Evaluate(ctx context.Context, ws *Workspace) (PhaseReport, error)
}

// Target is implemented by phases that scan a single file's contents.
type Target interface {
	Target() string
}
