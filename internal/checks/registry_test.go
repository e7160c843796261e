package checks

import (
	"context"
	"testing"
)

type dummyPhase struct {
	id    string
	order int
}

func (p *dummyPhase) ID() string          { return p.id }
func (p *dummyPhase) Title() string       { return "Dummy Phase" }
func (p *dummyPhase) Description() string { return "Does nothing" }
func (p *dummyPhase) Order() int          { return p.order }
func (p *dummyPhase) Kind() Kind          { return KindFiles }
func (p *dummyPhase) Items() []Item       { return nil }
func (p *dummyPhase) Evaluate(ctx context.Context, ws *Workspace) (PhaseReport, error) {
	return PhaseReport{PhaseID: p.id, Passed: true}, nil
}

func resetRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := registry
	registry = make(map[string]Phase)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		registry = saved
		mu.Unlock()
	})
}

func ids(phases []Phase) []string {
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = p.ID()
	}
	return out
}

func TestRegistry(t *testing.T) {
	resetRegistry(t)

	Register(&dummyPhase{id: "zeta", order: 1})
	Register(&dummyPhase{id: "alpha", order: 3})
	Register(&dummyPhase{id: "beta", order: 1})

	// List orders by Order, then ID.
	all := List()
	if got := ids(all); len(got) != 3 || got[0] != "beta" || got[1] != "zeta" || got[2] != "alpha" {
		t.Fatalf("List order = %v, want [beta zeta alpha]", got)
	}

	selected, err := Resolve("alpha")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(selected) != 1 || selected[0].ID() != "alpha" {
		t.Errorf("Expected alpha, got %v", ids(selected))
	}

	// Selection keeps run order regardless of selector order.
	selected, err = Resolve("alpha, zeta,alpha")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got := ids(selected); len(got) != 2 || got[0] != "zeta" || got[1] != "alpha" {
		t.Errorf("Resolve order = %v, want [zeta alpha]", got)
	}

	selected, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(selected) != 3 {
		t.Errorf("Expected 3 phases, got %d", len(selected))
	}

	if _, err = Resolve("unknown"); err == nil {
		t.Error("Expected error for unknown phase")
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	resetRegistry(t)
	Register(&dummyPhase{id: "dup"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register(&dummyPhase{id: "dup"})
}
