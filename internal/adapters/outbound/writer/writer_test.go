package writer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsdcoach/fsd-coach/internal/adapters/outbound/writer"
	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan(base string) domain.ScaffoldPlan {
	return domain.ScaffoldPlan{
		Name:     "auth",
		Layer:    domain.LayerFeatures,
		BasePath: base,
		Segments: []domain.Segment{domain.SegmentUI, domain.SegmentAPI},
		Dirs:     []string{".", "ui", "api"},
		Files: []domain.PlannedFile{
			{RelPath: "README.md", Content: "# Feature: auth\n"},
			{RelPath: "index.ts", Content: "export {}\n"},
			{RelPath: "ui/README.md", Content: "# ui/\n"},
		},
	}
}

func TestFSWriter_Apply(t *testing.T) {
	base := filepath.Join(t.TempDir(), "src", "features", "auth")

	result, err := writer.New(false).Apply(samplePlan(base))
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md", "index.ts", "ui/README.md"}, result.Created)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, "auth", result.Name)

	data, err := os.ReadFile(filepath.Join(base, "index.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export {}\n", string(data))
	assert.DirExists(t, filepath.Join(base, "api"))
}

func TestFSWriter_NeverOverwrites(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "index.ts"), []byte("export * from './ui';\n"), 0644))

	result, err := writer.New(false).Apply(samplePlan(base))
	require.NoError(t, err)
	assert.Equal(t, []string{"index.ts"}, result.Skipped)
	assert.NotContains(t, result.Created, "index.ts")

	data, err := os.ReadFile(filepath.Join(base, "index.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export * from './ui';\n", string(data))
}

func TestFSWriter_DryRunWritesNothing(t *testing.T) {
	base := filepath.Join(t.TempDir(), "auth")

	result, err := writer.New(true).Apply(samplePlan(base))
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Len(t, result.Created, 3)
	assert.NoDirExists(t, base)
}
