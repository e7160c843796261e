package checks

import (
	"fmt"

	"turbocheck/internal/config"
)

// FromManifest builds phases from a validated manifest. Phases run in the
// order they are declared.
func FromManifest(m *config.Manifest) ([]Phase, error) {
	if m == nil {
		return nil, fmt.Errorf("manifest is nil")
	}

	phases := make([]Phase, 0, len(m.Phases))
	for i, mp := range m.Phases {
		items := make([]Item, 0, len(mp.Items))
		for _, mi := range mp.Items {
			items = append(items, Item{Description: mi.Description, Path: mi.Path, Pattern: mi.Pattern})
		}

		switch Kind(mp.Kind) {
		case KindFiles:
			phases = append(phases, NewFilesPhase(FilesSpec{
				ID:          mp.ID,
				Title:       mp.Title,
				Description: mp.Description,
				Order:       i + 1,
				Items:       items,
			}))
		case KindContent:
			phases = append(phases, NewContentPhase(ContentSpec{
				ID:          mp.ID,
				Title:       mp.Title,
				Description: mp.Description,
				Order:       i + 1,
				Target:      mp.Target,
				Subject:     mp.Subject,
				NotFound:    mp.NotFound,
				Items:       items,
			}))
		default:
			return nil, fmt.Errorf("phase %q: unsupported kind %q", mp.ID, mp.Kind)
		}
	}
	return phases, nil
}
