package checks

import (
	"context"
	"fmt"
)

// FilesPhase verifies that every item's path exists under the workspace.
type FilesPhase struct {
	id          string
	title       string
	description string
	order       int
	items       []Item
}

type FilesSpec struct {
	ID          string
	Title       string
	Description string
	Order       int
	Items       []Item
}

func NewFilesPhase(spec FilesSpec) *FilesPhase {
	return &FilesPhase{
		id:          spec.ID,
		title:       spec.Title,
		description: spec.Description,
		order:       spec.Order,
		items:       append([]Item(nil), spec.Items...),
	}
}

func (p *FilesPhase) ID() string          { return p.id }
func (p *FilesPhase) Title() string       { return p.title }
func (p *FilesPhase) Description() string { return p.description }
func (p *FilesPhase) Order() int          { return p.order }
func (p *FilesPhase) Kind() Kind          { return KindFiles }
func (p *FilesPhase) Items() []Item       { return append([]Item(nil), p.items...) }

func (p *FilesPhase) Evaluate(ctx context.Context, ws *Workspace) (PhaseReport, error) {
	report := PhaseReport{PhaseID: p.id, Title: p.title, Passed: true}
	for _, item := range p.items {
		if err := ctx.Err(); err != nil {
			report.Passed = false
			return report, err
		}
		if ws.Exists(item.Path) {
			report.Results = append(report.Results, PassResult(p.id, item, fmt.Sprintf("%s: %s", item.Description, item.Path)))
			continue
		}
		report.Passed = false
		report.Results = append(report.Results, FailResult(p.id, item, fmt.Sprintf("%s: %s (NOT FOUND)", item.Description, item.Path)))
	}
	return report, nil
}
