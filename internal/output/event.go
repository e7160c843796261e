package output

import "turbocheck/internal/checks"

type EventType string

// Lifecycle of a verification run, in emission order:
//
//	run.started
//	phase.started, check.result..., phase.finished   (once per phase)
//	run.finished
const (
	EventRunStarted    EventType = "run.started"
	EventPhaseStarted  EventType = "phase.started"
	EventCheckResult   EventType = "check.result"
	EventPhaseFinished EventType = "phase.finished"
	EventRunFinished   EventType = "run.finished"
)

// Event is one record of the run. Sinks render the subset they care about;
// NDJSON sinks write every event as one JSON object per line.
type Event struct {
	Type    EventType `json:"type"`
	RunID   string    `json:"run_id,omitempty"`
	Title   string    `json:"title,omitempty"`
	BaseDir string    `json:"base_dir,omitempty"`

	// Index is the 1-based position of the phase within the run.
	Index int    `json:"index,omitempty"`
	Phase string `json:"phase,omitempty"`

	Result  *checks.Result      `json:"result,omitempty"`
	Report  *checks.PhaseReport `json:"report,omitempty"`
	Summary *Summary            `json:"summary,omitempty"`
}

// Summary closes a run.
type Summary struct {
	Passed       bool     `json:"passed"`
	ExitCode     int      `json:"exit_code"`
	Phases       int      `json:"phases"`
	PhasesPassed int      `json:"phases_passed"`
	Checks       int      `json:"checks"`
	ChecksPassed int      `json:"checks_passed"`
	Verdict      string   `json:"verdict"`
	NextSteps    []string `json:"next_steps,omitempty"`
}

func ResultEvent(runID string, index int, r checks.Result) Event {
	return Event{Type: EventCheckResult, RunID: runID, Index: index, Phase: r.PhaseID, Result: &r}
}
