package cli_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

func TestInitCommand_CreatesLayersAndConfig(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, "init", "--cwd", root, "--template", "fullstack")
	require.NoError(t, err)
	assert.Contains(t, out, ".fsdcoach.yaml")

	for _, layer := range domain.Layers {
		assert.DirExists(t, filepath.Join(root, "src", string(layer)))
	}
	assert.FileExists(t, filepath.Join(root, ".fsdcoach.yaml"))
}

func TestInitCommand_DryRun(t *testing.T) {
	root := t.TempDir()

	_, err := run(t, "init", "--cwd", root, "--dry-run")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(root, "src"))
	assert.NoFileExists(t, filepath.Join(root, ".fsdcoach.yaml"))
}

func TestInitCommand_InvalidTemplate(t *testing.T) {
	_, err := run(t, "init", "--cwd", t.TempDir(), "--template", "rails")

	ce, ok := domain.IsCoachError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrInvalidTemplate, ce.Code)
}

func TestAddFeatureCommand(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, "add:feature", "auth", "--cwd", root, "--segments", "ui,model", "--json")
	require.NoError(t, err)

	var result domain.ScaffoldResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []domain.Segment{domain.SegmentUI, domain.SegmentModel}, result.Segments)
	assert.FileExists(t, filepath.Join(root, "src", "features", "auth", "index.ts"))
	assert.DirExists(t, filepath.Join(root, "src", "features", "auth", "model"))
	assert.NoDirExists(t, filepath.Join(root, "src", "features", "auth", "api"))
}

func TestAddEntityAndWidgetCommands(t *testing.T) {
	root := t.TempDir()

	_, err := run(t, "add:entity", "user", "--cwd", root)
	require.NoError(t, err)
	_, err = run(t, "add:widget", "user-card", "--cwd", root)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src", "entities", "user", "index.ts"))
	assert.FileExists(t, filepath.Join(root, "src", "widgets", "user-card", "index.ts"))
}

func TestAddFeatureCommand_InvalidName(t *testing.T) {
	root := t.TempDir()

	_, err := run(t, "add:feature", "UserAuth", "--cwd", root)

	ce, ok := domain.IsCoachError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrInvalidName, ce.Code)
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestAddFeatureCommand_RequiresName(t *testing.T) {
	_, err := run(t, "add:feature", "--cwd", t.TempDir())
	assert.Error(t, err)
}

func TestListCommand_JSON(t *testing.T) {
	out, err := run(t, "list", "--cwd", violationsFixture, "--json")
	require.NoError(t, err)

	var structure domain.ProjectStructure
	require.NoError(t, json.Unmarshal([]byte(out), &structure))
	assert.Equal(t, []string{"auth", "billing"}, structure.Features)
	assert.Equal(t, []string{"session"}, structure.Entities)
	assert.Equal(t, []string{"header"}, structure.Widgets)
}

func TestListCommand_FilterByLayer(t *testing.T) {
	out, err := run(t, "list", "--cwd", violationsFixture, "--entities")
	require.NoError(t, err)
	assert.Contains(t, out, "session")
	assert.NotContains(t, out, "billing")
}
