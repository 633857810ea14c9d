package detector

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
)

// SliceDetector implements domain.SliceLister by reading the slice
// directories of src/features, src/entities and src/widgets.
type SliceDetector struct{}

func New() *SliceDetector {
	return &SliceDetector{}
}

// Detect returns the sorted slice names per layer. Missing layer directories
// yield empty lists.
func (d *SliceDetector) Detect(projectPath string) (domain.ProjectStructure, error) {
	s := domain.ProjectStructure{
		Features: []string{},
		Entities: []string{},
		Widgets:  []string{},
	}

	for _, layer := range domain.SliceLayers {
		names, err := sliceDirs(filepath.Join(projectPath, fsd.SourceDir, string(layer)))
		if err != nil {
			return s, err
		}
		switch layer {
		case domain.LayerFeatures:
			s.Features = names
		case domain.LayerEntities:
			s.Entities = names
		case domain.LayerWidgets:
			s.Widgets = names
		}
	}

	return s, nil
}

func sliceDirs(layerDir string) ([]string, error) {
	entries, err := os.ReadDir(layerDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
