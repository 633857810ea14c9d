package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the file created when a project has no config yet.
const DefaultFileName = ".fsdcoach.yaml"

// FileNames are the config files looked up in the project root, in order.
// The rc files hold JSON, which the YAML decoder reads as well.
var FileNames = []string{DefaultFileName, ".fsdcoachrc", ".fsdcoachrc.json", "fsdcoach.config.json"}

// YAMLLoader implements domain.ConfigLoader.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Find returns the path of the first config file present in projectPath.
func (l *YAMLLoader) Find(projectPath string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(projectPath, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// Load returns the effective config of projectPath: the defaults overlaid with
// the values of the first config file found. Without a file the defaults are
// returned as is.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	path, ok := l.Find(projectPath)
	if !ok {
		return domain.DefaultConfig(), nil
	}

	cfg, err := l.ReadFile(path)
	if err != nil {
		return domain.ProjectConfig{}, err
	}
	return domain.Merge(domain.DefaultConfig(), cfg), nil
}

// ReadFile parses and validates one config file without applying defaults.
func (l *YAMLLoader) ReadFile(path string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	// Validate raw input so typos are reported against the user's file.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, domain.NewCoachError(domain.ErrInvalidConfig,
			fmt.Sprintf("invalid %s: %v", filepath.Base(path), err),
			map[string]any{"path": path})
	}

	return cfg, nil
}

// Save writes cfg to the project's existing config file, or to
// DefaultFileName when there is none, and returns the path written.
// JSON files are kept as JSON.
func (l *YAMLLoader) Save(projectPath string, cfg domain.ProjectConfig) (string, error) {
	path, ok := l.Find(projectPath)
	if !ok {
		path = filepath.Join(projectPath, DefaultFileName)
	}

	var (
		data []byte
		err  error
	)
	if isJSONFile(path) {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Delete removes the project's config file.
func (l *YAMLLoader) Delete(projectPath string) (string, error) {
	path, ok := l.Find(projectPath)
	if !ok {
		return "", domain.NewCoachError(domain.ErrConfigNotFound, "No config file found",
			map[string]any{"projectPath": projectPath})
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	return path, nil
}

func isJSONFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".json") || base == ".fsdcoachrc"
}
