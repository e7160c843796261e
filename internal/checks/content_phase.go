package checks

import (
	"context"
	"fmt"
	"strings"
)

// ContentPhase verifies that literal patterns occur in one target file.
// A missing target fails the phase with a single result and no pattern
// results. Patterns are checked independently of each other.
type ContentPhase struct {
	id          string
	title       string
	description string
	order       int
	target      string
	subject     string
	notFound    string
	items       []Item
}

type ContentSpec struct {
	ID          string
	Title       string
	Description string
	Order       int

	// Target is the file scanned, relative to the workspace root.
	Target string

	// Subject names the file in report lines ("<Subject> contains ...").
	// Defaults to Target.
	Subject string

	// NotFound is the line reported when Target does not exist.
	// Defaults to "<Subject> not found".
	NotFound string

	Items []Item
}

func NewContentPhase(spec ContentSpec) *ContentPhase {
	subject := spec.Subject
	if subject == "" {
		subject = spec.Target
	}
	notFound := spec.NotFound
	if notFound == "" {
		notFound = subject + " not found"
	}
	return &ContentPhase{
		id:          spec.ID,
		title:       spec.Title,
		description: spec.Description,
		order:       spec.Order,
		target:      spec.Target,
		subject:     subject,
		notFound:    notFound,
		items:       append([]Item(nil), spec.Items...),
	}
}

func (p *ContentPhase) ID() string          { return p.id }
func (p *ContentPhase) Title() string       { return p.title }
func (p *ContentPhase) Description() string { return p.description }
func (p *ContentPhase) Order() int          { return p.order }
func (p *ContentPhase) Kind() Kind          { return KindContent }
func (p *ContentPhase) Target() string      { return p.target }
func (p *ContentPhase) Subject() string     { return p.subject }

func (p *ContentPhase) Items() []Item {
	out := make([]Item, len(p.items))
	for i, item := range p.items {
		item.Path = p.target
		out[i] = item
	}
	return out
}

func (p *ContentPhase) Evaluate(ctx context.Context, ws *Workspace) (PhaseReport, error) {
	report := PhaseReport{PhaseID: p.id, Title: p.title}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	fileItem := Item{Description: p.subject, Path: p.target}
	if !ws.Exists(p.target) {
		report.Results = append(report.Results, FailResult(p.id, fileItem, p.notFound))
		return report, nil
	}

	content, err := ws.ReadText(p.target)
	if err != nil {
		report.Results = append(report.Results, ErrorResult(p.id, fileItem, fmt.Sprintf("%s could not be read: %v", p.subject, err)))
		return report, nil
	}

	report.Passed = true
	for _, item := range p.Items() {
		if err := ctx.Err(); err != nil {
			report.Passed = false
			return report, err
		}
		if strings.Contains(content, item.Pattern) {
			report.Results = append(report.Results, PassResult(p.id, item, fmt.Sprintf("%s contains %s", p.subject, item.Description)))
			continue
		}
		report.Passed = false
		report.Results = append(report.Results, FailResult(p.id, item, fmt.Sprintf("%s missing %s", p.subject, item.Description)))
	}
	return report, nil
}
