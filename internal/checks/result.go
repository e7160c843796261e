package checks

type Status string

const (
	StatusPass  Status = "PASS"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

// Kind identifies the matcher a checklist item uses.
type Kind string

const (
	KindFiles   Kind = "files"
	KindContent Kind = "content"
)

type Result struct {
	PhaseID     string `json:"phase_id"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Pattern     string `json:"pattern,omitempty"`
	Status      Status `json:"status"`
	// Message is the human-readable line printed after the status glyph.
	Message string `json:"message"`
}

// Passed reports whether the result counts towards a passing phase.
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// PhaseReport is the outcome of evaluating one phase.
type PhaseReport struct {
	PhaseID string   `json:"phase_id"`
	Title   string   `json:"title"`
	Passed  bool     `json:"passed"`
	Results []Result `json:"results"`
}

// Counts returns the number of passing and non-passing results.
func (p PhaseReport) Counts() (pass, fail int) {
	for _, r := range p.Results {
		if r.Passed() {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
