package application

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
	"github.com/fsdcoach/fsd-coach/internal/domain/rules"
)

// Audit run states.
const (
	StatePending  = "pending"
	StateNoSrc    = "no_src"
	StateScanning = "scanning"
	StateRules    = "rules"
	StateDone     = "done"
)

const (
	eventMissingSrc = "missing_src"
	eventScan       = "scan"
	eventCheck      = "check"
	eventFinish     = "finish"
)

// AuditOptions configures a single audit run.
// The zero value audits the current directory non-strictly.
type AuditOptions struct {
	Root   string
	Strict bool
	// AutoFix is accepted for compatibility; fixes are applied by FixService.
	AutoFix bool

	Workers       int
	SkipPublicAPI bool
	CheckCycles   bool
	Cache         domain.ExtractionCache
}

// OptionsFromConfig derives audit options from the lint section of cfg.
func OptionsFromConfig(root string, cfg domain.ProjectConfig) AuditOptions {
	return AuditOptions{
		Root:          root,
		Strict:        cfg.StrictLint(),
		SkipPublicAPI: !cfg.EnforcesPublicAPI(),
		CheckCycles:   cfg.ChecksCircularDeps(),
	}
}

// AuditService orchestrates an FSD audit:
// walk src/ → extract imports → classify → run rules → summarize.
type AuditService struct {
	walker    domain.SourceWalker
	extractor domain.ImportExtractor
	log       *zap.SugaredLogger
	now       func() time.Time
}

func NewAuditService(walker domain.SourceWalker, extractor domain.ImportExtractor, log *zap.SugaredLogger) *AuditService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &AuditService{
		walker:    walker,
		extractor: extractor,
		log:       log,
		now:       time.Now,
	}
}

func (s *AuditService) newRunFSM() *fsm.FSM {
	return fsm.NewFSM(
		StatePending,
		fsm.Events{
			{Name: eventMissingSrc, Src: []string{StatePending}, Dst: StateNoSrc},
			{Name: eventScan, Src: []string{StatePending}, Dst: StateScanning},
			{Name: eventCheck, Src: []string{StateScanning}, Dst: StateRules},
			{Name: eventFinish, Src: []string{StateRules}, Dst: StateDone},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				s.log.Debugf("audit state %s -> %s", e.Src, e.Dst)
			},
		},
	)
}

// fileImports holds the extraction result of one walked file. Slots are
// allocated in walk order; workers only fill their own slot.
type fileImports struct {
	imports []domain.ImportStatement
}

// Audit runs every rule against the project at opts.Root.
// A project without a src/ directory fails with a single INVALID_LAYER
// violation. Per-file read failures are logged and the file counts as having
// no imports. The run aborts with ctx.Err() when ctx is done.
func (s *AuditService) Audit(ctx context.Context, opts AuditOptions) (*domain.AuditResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := absRoot(opts.Root)
	srcDir := filepath.Join(root, fsd.SourceDir)
	run := s.newRunFSM()

	s.log.Info("Starting FSD architecture audit")

	// 1. Check for src/
	if _, err := os.ReadDir(srcDir); err != nil {
		if err := run.Event(ctx, eventMissingSrc); err != nil {
			return nil, err
		}
		return s.noSrcResult(root, opts.Strict), nil
	}
	if err := run.Event(ctx, eventScan); err != nil {
		return nil, err
	}

	// 2. Walk and extract
	s.log.Info("Scanning files")
	slots, err := s.scan(ctx, root, srcDir, opts)
	if err != nil {
		return nil, err
	}
	s.log.Infof("Scanned %d files", len(slots))

	var imports []domain.ImportStatement
	for _, slot := range slots {
		imports = append(imports, slot.imports...)
	}

	// 3. Run rules in a fixed order
	if err := run.Event(ctx, eventCheck); err != nil {
		return nil, err
	}
	s.log.Info("Checking FSD rules")
	var violations []domain.Violation
	violations = append(violations, rules.LayerImports(imports)...)
	violations = append(violations, rules.SharedImports(imports)...)
	violations = append(violations, rules.DirectSegmentImports(imports)...)
	violations = append(violations, rules.CrossFeatureImports(imports)...)

	if !opts.SkipPublicAPI {
		s.log.Info("Checking public APIs")
		violations = append(violations, rules.SlicePublicAPIs(srcDir)...)
	}
	if opts.CheckCycles {
		violations = append(violations, rules.CircularDependencies(imports, root)...)
	}

	// 4. Summarize
	if err := run.Event(ctx, eventFinish); err != nil {
		return nil, err
	}
	result := domain.NewAuditResult(len(slots), violations, opts.Strict, s.now())
	s.log.Infow("Audit complete",
		"files", result.TotalFiles,
		"errors", result.Summary.Errors,
		"warnings", result.Summary.Warnings,
		"passed", result.Passed,
	)
	return result, nil
}

// absRoot resolves the project root, defaulting to the working directory.
func absRoot(root string) string {
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		return abs
	}
	return root
}

func (s *AuditService) noSrcResult(root string, strict bool) *domain.AuditResult {
	s.log.Warnf("no %s directory in %s", fsd.SourceDir, root)
	return domain.NewAuditResult(0, []domain.Violation{{
		Type:       domain.ViolationInvalidLayer,
		Severity:   domain.SeverityError,
		Message:    "No src/ directory found",
		File:       root,
		Suggestion: `Initialize project with "fsd-coach init"`,
	}}, strict, s.now())
}

// scan walks srcDir and extracts imports on a bounded pool of workers.
func (s *AuditService) scan(ctx context.Context, root, srcDir string, opts AuditOptions) ([]*fileImports, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var slots []*fileImports
	for path, err := range s.walker.Walk(gctx, srcDir) {
		if err != nil {
			if gctx.Err() != nil {
				break
			}
			s.log.Debugf("skipping unreadable directory: %v", err)
			continue
		}

		slot := &fileImports{}
		slots = append(slots, slot)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slot.imports = s.extract(path, root, opts.Cache)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}

// extract reads one file's imports and annotates them with the file's position.
func (s *AuditService) extract(path, root string, cache domain.ExtractionCache) []domain.ImportStatement {
	s.log.Debugf("scanning %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		s.log.Debugf("failed to read %s: %v", path, err)
		return nil
	}

	var (
		imports []domain.ImportStatement
		ok      bool
	)
	if cache != nil {
		imports, ok = cache.Get(path, content)
	}
	if !ok {
		imports, err = s.extractor.ExtractImports(path, content)
		if err != nil {
			s.log.Debugf("failed to scan %s: %v", path, err)
			return nil
		}
		if cache != nil {
			if err := cache.Set(path, imports, content); err != nil {
				s.log.Debugf("caching imports of %s: %v", path, err)
			}
		}
	}

	pos := fsd.ParsePath(path, root)
	annotated := make([]domain.ImportStatement, len(imports))
	for i, imp := range imports {
		annotated[i] = imp.Annotate(pos)
	}
	return annotated
}
