package checks

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry = make(map[string]Phase)
	mu       sync.RWMutex
)

func Register(p Phase) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[p.ID()]; exists {
		panic(fmt.Sprintf("phase %s already registered", p.ID()))
	}
	registry[p.ID()] = p
}

func List() []Phase {
	mu.RLock()
	defer mu.RUnlock()
	var phases []Phase
	for _, p := range registry {
		phases = append(phases, p)
	}
	Sort(phases)
	return phases
}

// Sort orders phases by Order, breaking ties by ID.
func Sort(phases []Phase) {
	sort.SliceStable(phases, func(i, j int) bool {
		if phases[i].Order() != phases[j].Order() {
			return phases[i].Order() < phases[j].Order()
		}
		return phases[i].ID() < phases[j].ID()
	})
}

func Resolve(selector string) ([]Phase, error) {
	return Select(List(), selector)
}

// Select picks phases from the given set by a comma-separated list of IDs.
// An empty selector returns all phases. The result keeps run order.
func Select(phases []Phase, selector string) ([]Phase, error) {
	if strings.TrimSpace(selector) == "" {
		return phases, nil
	}

	byID := make(map[string]Phase, len(phases))
	for _, p := range phases {
		byID[p.ID()] = p
	}

	seen := make(map[string]bool)
	var selected []Phase
	for _, id := range strings.Split(selector, ",") {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("phase not found: %s", id)
		}
		seen[id] = true
		selected = append(selected, p)
	}
	Sort(selected)
	return selected, nil
}
