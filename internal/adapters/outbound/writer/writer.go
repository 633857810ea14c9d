package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

// FSWriter implements domain.FileWriter on the local file system.
// Existing files are never overwritten.
type FSWriter struct {
	DryRun bool
}

func New(dryRun bool) *FSWriter {
	return &FSWriter{DryRun: dryRun}
}

// Apply creates the plan's directories and files below plan.BasePath.
// Files that already exist are reported as skipped.
func (w *FSWriter) Apply(plan domain.ScaffoldPlan) (domain.ScaffoldResult, error) {
	result := domain.ScaffoldResult{
		Name:     plan.Name,
		Layer:    plan.Layer,
		BasePath: plan.BasePath,
		Segments: plan.Segments,
		Created:  []string{},
		Skipped:  []string{},
		DryRun:   w.DryRun,
	}

	for _, dir := range plan.Dirs {
		if w.DryRun {
			continue
		}
		if err := os.MkdirAll(filepath.Join(plan.BasePath, filepath.FromSlash(dir)), 0755); err != nil {
			return result, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	for _, f := range plan.Files {
		full := filepath.Join(plan.BasePath, filepath.FromSlash(f.RelPath))
		created, err := w.writeFile(full, f.Content)
		if err != nil {
			return result, err
		}
		if created {
			result.Created = append(result.Created, f.RelPath)
		} else {
			result.Skipped = append(result.Skipped, f.RelPath)
		}
	}

	return result, nil
}

func (w *FSWriter) writeFile(path, content string) (bool, error) {
	if _, err := os.Lstat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}

	if w.DryRun {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, f.Close()
}
