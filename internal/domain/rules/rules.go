// Package rules holds the Feature-Sliced Design checks run by the auditor.
// Every rule is independent: rules never read each other's output and
// overlapping findings are not deduplicated.
package rules

import (
	"strings"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// specifierParts splits an import specifier into its path segments.
func specifierParts(source string) []string {
	return strings.Split(source, "/")
}

// firstLayerToken returns the first path segment of source that names a layer.
// This is a lexical scan: the specifier is never resolved, so any folder that
// happens to share a layer name counts as that layer.
func firstLayerToken(source string) (domain.Layer, bool) {
	for _, part := range specifierParts(source) {
		if layer, ok := domain.ParseLayer(part); ok {
			return layer, true
		}
	}
	return "", false
}

func containsPart(parts []string, s string) bool {
	for _, p := range parts {
		if p == s {
			return true
		}
	}
	return false
}
