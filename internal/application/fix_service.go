package application

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
	"github.com/fsdcoach/fsd-coach/internal/domain/rules"
	"github.com/fsdcoach/fsd-coach/internal/domain/scaffold"
)

// FixService orchestrates the fix pipeline:
// audit → identify safe fixes → create missing files → re-audit.
// Only file creation is considered safe; existing files are never touched.
type FixService struct {
	audit  *AuditService
	writer domain.FileWriter
	log    *zap.SugaredLogger
}

func NewFixService(audit *AuditService, writer domain.FileWriter, log *zap.SugaredLogger) *FixService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &FixService{audit: audit, writer: writer, log: log}
}

// Fix audits the project and creates a public API stub for every slice
// reported without one. With dryRun the fixes are listed but not written.
func (s *FixService) Fix(ctx context.Context, opts AuditOptions, dryRun bool) (*domain.FixPlan, error) {
	root := absRoot(opts.Root)
	opts.Root = root

	// 1. Audit the project
	before, err := s.audit.Audit(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("auditing project: %w", err)
	}

	plan := &domain.FixPlan{
		Applied: []domain.AppliedFix{},
		DryRun:  dryRun,
		Before:  before.Summary,
		After:   before.Summary,
	}

	// 2. Identify safe fixes
	fixes := identifySafeFixes(root, before)
	if dryRun {
		plan.Applied = append(plan.Applied, fixes...)
		return plan, nil
	}

	// 3. Apply them
	for _, fix := range fixes {
		applied, err := s.applyFix(root, fix)
		if err != nil {
			return nil, err
		}
		if applied {
			plan.Applied = append(plan.Applied, fix)
		}
	}

	// 4. Re-audit
	if len(plan.Applied) > 0 {
		after, err := s.audit.Audit(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("re-auditing project: %w", err)
		}
		plan.After = after.Summary
	}

	return plan, nil
}

func identifySafeFixes(root string, result *domain.AuditResult) []domain.AppliedFix {
	var fixes []domain.AppliedFix
	for _, v := range result.Violations {
		if v.Type != domain.ViolationMissingPublicAPI || !v.AutoFixable {
			continue
		}
		rel, err := filepath.Rel(root, filepath.Join(v.File, rules.IndexFiles[0]))
		if err != nil {
			continue
		}
		fixes = append(fixes, domain.AppliedFix{
			Type:        v.Type,
			Path:        filepath.ToSlash(rel),
			Description: fmt.Sprintf("Public API for slice %q", filepath.Base(v.File)),
		})
	}
	return fixes
}

func (s *FixService) applyFix(root string, fix domain.AppliedFix) (bool, error) {
	slicePath := filepath.Dir(filepath.Join(root, filepath.FromSlash(fix.Path)))
	pos := fsd.ParsePath(slicePath, root)

	result, err := s.writer.Apply(domain.ScaffoldPlan{
		Name:     pos.Slice,
		Layer:    pos.Layer,
		BasePath: slicePath,
		Files: []domain.PlannedFile{{
			RelPath: rules.IndexFiles[0],
			Content: scaffold.PublicAPIStub(pos.Layer, pos.Slice),
		}},
	})
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", fix.Path, err)
	}
	if len(result.Created) == 0 {
		s.log.Debugf("skipped %s: already exists", fix.Path)
		return false, nil
	}
	s.log.Infof("created %s", fix.Path)
	return true, nil
}
