package application

import (
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/naming"
	"github.com/fsdcoach/fsd-coach/internal/domain/scaffold"
)

// ScaffoldService creates new projects and slices.
// Existing files are skipped, never overwritten.
type ScaffoldService struct {
	config domain.ConfigStore
	writer domain.FileWriter
	log    *zap.SugaredLogger
}

func NewScaffoldService(config domain.ConfigStore, writer domain.FileWriter, log *zap.SugaredLogger) *ScaffoldService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ScaffoldService{config: config, writer: writer, log: log}
}

// AddFeature creates a feature slice. Without segments the configured
// defaults are used.
func (s *ScaffoldService) AddFeature(projectPath, name string, segments []string) (domain.ScaffoldResult, error) {
	return s.addSlice(projectPath, domain.LayerFeatures, name, segments)
}

func (s *ScaffoldService) AddEntity(projectPath, name string, segments []string) (domain.ScaffoldResult, error) {
	return s.addSlice(projectPath, domain.LayerEntities, name, segments)
}

func (s *ScaffoldService) AddWidget(projectPath, name string, segments []string) (domain.ScaffoldResult, error) {
	return s.addSlice(projectPath, domain.LayerWidgets, name, segments)
}

// Plan validates a slice request and returns what would be created, without
// touching the file system.
func (s *ScaffoldService) Plan(projectPath string, layer domain.Layer, name string, segments []string) (domain.ScaffoldPlan, error) {
	if !slices.Contains(domain.SliceLayers, layer) {
		return domain.ScaffoldPlan{}, domain.NewCoachError(domain.ErrInvalidLayer,
			fmt.Sprintf("Invalid layer: %s", layer),
			map[string]any{"layer": string(layer)})
	}

	// 1. Validate name
	if err := naming.CheckSliceName(name, layer); err != nil {
		return domain.ScaffoldPlan{}, err
	}

	// 2. Resolve segments against config defaults
	root := absRoot(projectPath)
	cfg, err := s.config.Load(root)
	if err != nil {
		return domain.ScaffoldPlan{}, fmt.Errorf("loading config: %w", err)
	}
	segs, err := naming.NormalizeSegments(segments, cfg.SegmentsFor(layer))
	if err != nil {
		return domain.ScaffoldPlan{}, err
	}

	// 3. Plan files
	basePath := filepath.Join(root, filepath.FromSlash(cfg.RootDirFor(layer)), name)
	return scaffold.PlanSlice(layer, name, basePath, segs), nil
}

func (s *ScaffoldService) addSlice(projectPath string, layer domain.Layer, name string, segments []string) (domain.ScaffoldResult, error) {
	plan, err := s.Plan(projectPath, layer, name, segments)
	if err != nil {
		return domain.ScaffoldResult{}, err
	}

	s.log.Infof("Creating %s: %s", layer, name)
	result, err := s.writer.Apply(plan)
	if err != nil {
		return result, fmt.Errorf("writing %s: %w", name, err)
	}
	s.log.Debugf("created %d files, skipped %d", len(result.Created), len(result.Skipped))
	return result, nil
}

// InitProject creates the seven layer directories, the FSD primer and a
// default config file carrying template.
func (s *ScaffoldService) InitProject(projectPath string, template domain.Template) (domain.ScaffoldResult, error) {
	if !slices.Contains(domain.ValidTemplates, template) {
		valid := make([]string, len(domain.ValidTemplates))
		for i, t := range domain.ValidTemplates {
			valid[i] = string(t)
		}
		return domain.ScaffoldResult{}, domain.NewCoachError(domain.ErrInvalidTemplate,
			fmt.Sprintf("Invalid template: %s", template),
			map[string]any{"template": string(template), "validTemplates": valid})
	}

	root := absRoot(projectPath)
	s.log.Infof("Initializing new project with template: %s", template)

	// 1. Layer directories and primer
	result, err := s.writer.Apply(scaffold.PlanProject(root, template))
	if err != nil {
		return result, fmt.Errorf("initializing project: %w", err)
	}

	// 2. Config file, unless one exists
	if existing, ok := s.config.Find(root); ok {
		result.Skipped = append(result.Skipped, relTo(root, existing))
		return result, nil
	}
	cfg := domain.DefaultConfig()
	cfg.Template = template
	if result.DryRun {
		result.Created = append(result.Created, configFileName)
		return result, nil
	}
	path, err := s.config.Save(root, cfg)
	if err != nil {
		return result, fmt.Errorf("saving config: %w", err)
	}
	result.Created = append(result.Created, relTo(root, path))
	return result, nil
}

// configFileName is reported for dry runs, where the store is not asked to write.
const configFileName = ".fsdcoach.yaml"

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
