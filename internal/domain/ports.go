package domain

import (
	"context"
	"iter"
)

// SourceWalker enumerates candidate source files under a root directory.
// The sequence is lazy and single-use; an unreadable root is yielded as an error.
type SourceWalker interface {
	Walk(ctx context.Context, root string) iter.Seq2[string, error]
}

// ImportExtractor recovers the static imports declared in one source file,
// given the content read from filePath.
type ImportExtractor interface {
	ExtractImports(filePath string, content []byte) ([]ImportStatement, error)
}

// ExtractionCache memoizes import extraction keyed on file content, not mtime.
// content is the exact bytes the imports were extracted from.
type ExtractionCache interface {
	Get(key string, content []byte) ([]ImportStatement, bool)
	Set(key string, imports []ImportStatement, content []byte) error
}

// ConfigLoader resolves the effective project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ConfigStore also locates and writes the project config file.
type ConfigStore interface {
	ConfigLoader
	Find(projectPath string) (string, bool)
	Save(projectPath string, cfg ProjectConfig) (string, error)
}

// AuditHistory persists a summary of every audit run.
type AuditHistory interface {
	Save(projectPath string, entry AuditEntry) error
	Load(projectPath string) ([]AuditEntry, error)
}

// GitInfo reads version-control metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// FileWriter applies scaffold plans to disk without overwriting existing files.
type FileWriter interface {
	Apply(plan ScaffoldPlan) (ScaffoldResult, error)
}

// SliceLister reports the slices present in a project.
type SliceLister interface {
	Detect(projectPath string) (ProjectStructure, error)
}
