package application

import (
	"fmt"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// StructureService reports the slices of a project.
type StructureService struct {
	lister domain.SliceLister
}

func NewStructureService(lister domain.SliceLister) *StructureService {
	return &StructureService{lister: lister}
}

// List returns the sorted slice names of the features, entities and widgets layers.
func (s *StructureService) List(projectPath string) (domain.ProjectStructure, error) {
	structure, err := s.lister.Detect(absRoot(projectPath))
	if err != nil {
		return domain.ProjectStructure{}, fmt.Errorf("listing slices: %w", err)
	}
	return structure, nil
}
