package rules

import (
	"fmt"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// CrossFeatureImports reports features importing other features directly.
// The target slice is the segment following a literal "features" segment in
// the specifier; specifiers without it are not checked.
func CrossFeatureImports(imports []domain.ImportStatement) []domain.Violation {
	var violations []domain.Violation

	for _, imp := range imports {
		if !imp.IsRelative || imp.Layer != domain.LayerFeatures {
			continue
		}

		parts := specifierParts(imp.Source)
		idx := -1
		for i, p := range parts {
			if p == string(domain.LayerFeatures) {
				idx = i
				break
			}
		}
		if idx == -1 || idx == len(parts)-1 {
			continue
		}

		target := parts[idx+1]
		if target == imp.Slice {
			continue
		}

		violations = append(violations, domain.Violation{
			Type:       domain.ViolationCrossFeatureImport,
			Severity:   domain.SeverityError,
			Message:    fmt.Sprintf("Feature %q cannot directly import from feature %q", imp.Slice, target),
			File:       imp.File,
			Line:       imp.Line,
			Suggestion: "Extract shared logic to entities or shared layers, or use composition at a higher layer",
		})
	}

	return violations
}
