package rules

import (
	"fmt"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// LayerImports reports relative imports that point from a generic layer to a
// more specific one, e.g. entities importing features. Imports whose specifier
// names no layer are not checked.
func LayerImports(imports []domain.ImportStatement) []domain.Violation {
	var violations []domain.Violation

	for _, imp := range imports {
		if !imp.IsRelative || imp.Layer == "" {
			continue
		}

		dest, ok := firstLayerToken(imp.Source)
		if !ok {
			continue
		}

		if imp.Layer.Order() > dest.Order() {
			violations = append(violations, domain.Violation{
				Type:       domain.ViolationCrossLayerImport,
				Severity:   domain.SeverityError,
				Message:    fmt.Sprintf("Layer %q cannot import from %q (violates layer hierarchy)", imp.Layer, dest),
				File:       imp.File,
				Line:       imp.Line,
				Suggestion: "Move the code to a lower layer or use dependency inversion",
			})
		}
	}

	return violations
}

// SharedImports reports relative imports from the shared layer that name any
// other layer. At most one violation is emitted per import.
func SharedImports(imports []domain.ImportStatement) []domain.Violation {
	var violations []domain.Violation

	for _, imp := range imports {
		if !imp.IsRelative || imp.Layer != domain.LayerShared {
			continue
		}

		for _, part := range specifierParts(imp.Source) {
			layer, ok := domain.ParseLayer(part)
			if !ok || layer == domain.LayerShared {
				continue
			}
			violations = append(violations, domain.Violation{
				Type:       domain.ViolationSharedImportsLayer,
				Severity:   domain.SeverityError,
				Message:    fmt.Sprintf("Shared layer cannot import from %q layer", layer),
				File:       imp.File,
				Line:       imp.Line,
				Suggestion: "Shared should only contain reusable code with no dependencies on business layers",
			})
			break
		}
	}

	return violations
}
