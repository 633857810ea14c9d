package config_test

import (
	"testing"

	appconfig "github.com/fsdcoach/fsd-coach/internal/adapters/outbound/config"
	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	cfg := domain.DefaultConfig()

	v, ok := appconfig.Get(cfg, "rootDir.features")
	require.True(t, ok)
	assert.Equal(t, "src/features", v)

	v, ok = appconfig.Get(cfg, "lint.enforcePublicApi")
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = appconfig.Get(cfg, "rootDir")
	require.True(t, ok)
	assert.IsType(t, map[string]any{}, v)

	_, ok = appconfig.Get(cfg, "rootDir.pages")
	assert.False(t, ok)
	_, ok = appconfig.Get(cfg, "locale.x")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	cfg := domain.DefaultConfig()

	updated, err := appconfig.Set(cfg, "rootDir.features", "app/features")
	require.NoError(t, err)
	assert.Equal(t, "app/features", updated.RootDir.Features)
	assert.Equal(t, "src/features", cfg.RootDir.Features, "input is not modified")

	updated, err = appconfig.Set(updated, "lint.strict", "true")
	require.NoError(t, err)
	assert.True(t, updated.StrictLint())

	updated, err = appconfig.Set(updated, "defaultSegments.widgets", `["ui","lib"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"ui", "lib"}, updated.DefaultSegments.Widgets)
	assert.Equal(t, "app/features", updated.RootDir.Features)
}

func TestSet_Rejects(t *testing.T) {
	cfg := domain.DefaultConfig()

	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"unknown key", "rootDir.pages", "src/pages"},
		{"unknown top-level", "weights", "1"},
		{"invalid enum", "template", "vue"},
		{"invalid segment", "defaultSegments.features", `["hooks"]`},
		{"wrong type", "lint.strict", "[1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := appconfig.Set(cfg, tt.key, tt.raw)
			ce, ok := domain.IsCoachError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, domain.ErrInvalidConfig, ce.Code)
		})
	}
}
