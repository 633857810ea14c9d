// Package fsd classifies paths into Feature-Sliced Design coordinates and
// resolves relative import specifiers to files on disk.
package fsd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// SourceDir is the directory under the project root that holds the layers.
const SourceDir = "src"

// ParsePath classifies filePath relative to projectRoot using its position
// under src/<layer>/<slice>/<segment>. Layer is left empty when the name is
// not a known layer; slice and segment are always taken positionally.
// The file is never opened.
func ParsePath(filePath, projectRoot string) domain.FSDPath {
	rel, err := filepath.Rel(projectRoot, filePath)
	if err != nil {
		return domain.FSDPath{}
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if parts[0] != SourceDir || len(parts) < 3 {
		return domain.FSDPath{}
	}

	var p domain.FSDPath
	if layer, ok := domain.ParseLayer(parts[1]); ok {
		p.Layer = layer
	}
	p.Slice = parts[2]
	if len(parts) > 3 {
		p.Segment = parts[3]
	}
	return p
}

// resolveSuffixes are probed in order when resolving a relative import.
var resolveSuffixes = []string{
	"",
	".ts",
	".tsx",
	".js",
	".jsx",
	"/index.ts",
	"/index.tsx",
	"/index.js",
}

// ResolveImport maps an import specifier to the file it names.
// Only relative specifiers resolve: "./" and "../" against the declaring
// file's directory, "/" against the project root. Package names and path
// aliases return false.
func ResolveImport(specifier, fromFile, projectRoot string) (string, bool) {
	var base string
	switch {
	case strings.HasPrefix(specifier, "."):
		base = filepath.Join(filepath.Dir(fromFile), filepath.FromSlash(specifier))
	case strings.HasPrefix(specifier, "/"):
		base = filepath.Join(projectRoot, filepath.FromSlash(specifier))
	default:
		return "", false
	}

	for _, suffix := range resolveSuffixes {
		candidate := base + filepath.FromSlash(suffix)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}
