package domain

// PlannedFile is a file a scaffold operation wants to create.
type PlannedFile struct {
	RelPath string `json:"path"`
	Content string `json:"-"`
}

// ScaffoldPlan lists the directories and files of a new slice or project,
// relative to BasePath. Directories are created even when empty.
type ScaffoldPlan struct {
	Name     string        `json:"name"`
	Layer    Layer         `json:"layer,omitempty"`
	BasePath string        `json:"base_path"`
	Segments []Segment     `json:"segments,omitempty"`
	Dirs     []string      `json:"dirs,omitempty"`
	Files    []PlannedFile `json:"files"`
}

// ScaffoldResult is the outcome of applying a plan. Paths are relative to BasePath.
type ScaffoldResult struct {
	Name     string    `json:"name"`
	Layer    Layer     `json:"layer,omitempty"`
	BasePath string    `json:"base_path"`
	Segments []Segment `json:"segments,omitempty"`
	Created  []string  `json:"created"`
	Skipped  []string  `json:"skipped"`
	DryRun   bool      `json:"dry_run"`
}

// ProjectStructure lists the slices of each slice layer, sorted by name.
type ProjectStructure struct {
	Features []string `json:"features"`
	Entities []string `json:"entities"`
	Widgets  []string `json:"widgets"`
}

// Total returns the number of slices across all layers.
func (p ProjectStructure) Total() int {
	return len(p.Features) + len(p.Entities) + len(p.Widgets)
}
