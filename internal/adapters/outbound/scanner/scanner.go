package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	".next":        true,
}

var sourceExts = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

// IsSkippedDir reports whether directories with this name are never descended into.
func IsSkippedDir(name string) bool {
	return skipDirs[name]
}

// IsSourceFile reports whether path has one of the audited extensions.
func IsSourceFile(path string) bool {
	return sourceExts[filepath.Ext(path)]
}

// FileScanner implements domain.SourceWalker on top of filepath.WalkDir.
// A symlinked root is followed; symlinks below the root are not.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Walk yields the absolute path of every source file under root, depth first.
// Paths are reported under root as given, even when root is a symlink.
// An unreadable root yields a single error. Unreadable subdirectories yield an
// error for that directory and the walk continues with its siblings.
// Cancelling ctx yields ctx.Err() and ends the sequence.
func (s *FileScanner) Walk(ctx context.Context, root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield("", fmt.Errorf("resolving %s: %w", root, err))
			return
		}
		if _, err := os.ReadDir(absRoot); err != nil {
			yield("", fmt.Errorf("reading %s: %w", absRoot, err))
			return
		}
		realRoot, err := filepath.EvalSymlinks(absRoot)
		if err != nil {
			yield("", fmt.Errorf("resolving %s: %w", absRoot, err))
			return
		}

		_ = filepath.WalkDir(realRoot, func(path string, d fs.DirEntry, err error) error {
			path = rebase(path, realRoot, absRoot)

			if ctxErr := ctx.Err(); ctxErr != nil {
				yield("", ctxErr)
				return filepath.SkipAll
			}

			if err != nil {
				if !yield(path, err) {
					return filepath.SkipAll
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != absRoot && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() || !sourceExts[filepath.Ext(d.Name())] {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// rebase moves path from under the resolved root back under the root the
// caller asked for.
func rebase(path, realRoot, absRoot string) string {
	if realRoot == absRoot {
		return path
	}
	rel, err := filepath.Rel(realRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(absRoot, rel)
}
