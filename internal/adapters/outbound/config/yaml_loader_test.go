package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := appconfig.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAMLMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".fsdcoach.yaml", `
rootDir:
  features: app/features
lint:
  strict: true
`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "app/features", cfg.RootDir.Features)
	assert.Equal(t, "src/entities", cfg.RootDir.Entities)
	assert.True(t, cfg.StrictLint())
	assert.True(t, cfg.EnforcesPublicAPI())
}

func TestYAMLLoader_LegacyJSONFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "fsdcoach.config.json", `{
  "template": "fullstack",
  "defaultSegments": {"features": ["ui", "lib"]},
  "lint": {"enforcePublicApi": false, "checkCircularDeps": true}
}`)

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateFullstack, cfg.Template)
	assert.Equal(t, []string{"ui", "lib"}, cfg.DefaultSegments.Features)
	assert.False(t, cfg.EnforcesPublicAPI())
	assert.True(t, cfg.ChecksCircularDeps())
}

func TestYAMLLoader_FindOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "fsdcoach.config.json", `{}`)
	writeConfig(t, dir, ".fsdcoachrc", `{}`)

	path, ok := appconfig.New().Find(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".fsdcoachrc"), path)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".fsdcoach.yaml", `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .fsdcoach.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".fsdcoach.yaml", "naming: snake_case\n")

	_, err := appconfig.New().Load(dir)
	ce, ok := domain.IsCoachError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrInvalidConfig, ce.Code)
	assert.Contains(t, ce.Message, "unknown naming")
}

func TestYAMLLoader_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg := domain.DefaultConfig()
	cfg.Locale = "pt-BR"
	path, err := loader.Save(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".fsdcoach.yaml"), path)

	loaded, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestYAMLLoader_SaveKeepsJSONFormat(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".fsdcoachrc.json", `{"naming": "camelCase"}`)
	loader := appconfig.New()

	path, err := loader.Save(dir, domain.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".fsdcoachrc.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"naming": "kebab-case"`)
}

func TestYAMLLoader_Delete(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	_, err := loader.Delete(dir)
	ce, ok := domain.IsCoachError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrConfigNotFound, ce.Code)

	writeConfig(t, dir, ".fsdcoach.yaml", "locale: en\n")
	path, err := loader.Delete(dir)
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}
