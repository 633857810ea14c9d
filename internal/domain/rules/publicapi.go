package rules

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// IndexFiles are the accepted public API file names at a slice root.
var IndexFiles = []string{"index.ts", "index.tsx", "index.js", "index.jsx"}

// HasPublicAPI reports whether slicePath contains an index file.
func HasPublicAPI(slicePath string) bool {
	for _, name := range IndexFiles {
		if _, err := os.Stat(filepath.Join(slicePath, name)); err == nil {
			return true
		}
	}
	return false
}

// PublicAPI reports a slice directory that has no index file.
func PublicAPI(slicePath string) []domain.Violation {
	if HasPublicAPI(slicePath) {
		return nil
	}
	return []domain.Violation{{
		Type:        domain.ViolationMissingPublicAPI,
		Severity:    domain.SeverityWarning,
		Message:     fmt.Sprintf("Slice %q missing public API (index.ts)", filepath.Base(slicePath)),
		File:        slicePath,
		Suggestion:  "Create an index.ts file to define the public API of this slice",
		AutoFixable: true,
	}}
}

// SlicePublicAPIs checks every slice directory directly under the features,
// entities and widgets layers of srcDir. Missing layer directories are skipped.
func SlicePublicAPIs(srcDir string) []domain.Violation {
	var violations []domain.Violation

	for _, layer := range domain.SliceLayers {
		layerDir := filepath.Join(srcDir, string(layer))
		entries, err := os.ReadDir(layerDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			violations = append(violations, PublicAPI(filepath.Join(layerDir, e.Name()))...)
		}
	}

	return violations
}

// DirectSegmentImports reports relative imports that climb out of the
// declaring slice with ".." and reach into a segment folder such as ui or
// model instead of going through the target slice's index.
func DirectSegmentImports(imports []domain.ImportStatement) []domain.Violation {
	var violations []domain.Violation

	for _, imp := range imports {
		if !imp.IsRelative {
			continue
		}

		parts := specifierParts(imp.Source)
		for _, part := range parts {
			if !domain.IsSegment(part) {
				continue
			}
			if imp.Slice != "" && containsPart(parts, "..") {
				violations = append(violations, domain.Violation{
					Type:       domain.ViolationDirectSegmentImport,
					Severity:   domain.SeverityWarning,
					Message:    fmt.Sprintf("Direct import from segment %q in %q bypasses public API", part, imp.Source),
					File:       imp.File,
					Line:       imp.Line,
					Suggestion: "Import from the slice's public API (index.ts) instead of directly from segments",
				})
			}
			break
		}
	}

	return violations
}
