package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdcoach/fsd-coach/internal/adapters/inbound/cli"
)

func TestAuditCommand_FailsOnViolations(t *testing.T) {
	root := copyFixture(t, violationsFixture)

	out, err := run(t, "audit", "--cwd", root)
	require.ErrorIs(t, err, cli.ErrAuditFailed)
	assert.Contains(t, out, "CROSS_LAYER")
	assert.Contains(t, out, "MISSING_PUBLIC_API")
}

func TestAuditCommand_PassesOnCleanProject(t *testing.T) {
	root := copyFixture(t, cleanFixture)

	out, err := run(t, "audit", "--cwd", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Audit passed!")
}

func TestAuditCommand_JSON(t *testing.T) {
	root := copyFixture(t, violationsFixture)

	out, err := run(t, "audit", "--cwd", root, "--json")
	require.ErrorIs(t, err, cli.ErrAuditFailed)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Contains(t, result, "violations")
	assert.Equal(t, false, result["passed"])
	assert.NotContains(t, result, "fix")
}

func TestAuditCommand_ReadOnlyFixtureWithoutCacheOrHistory(t *testing.T) {
	_, err := run(t, "audit", "--cwd", cleanFixture, "--no-cache", "--no-history")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(cleanFixture, ".fsd-coach"))
}

func TestAuditCommand_MissingSrc(t *testing.T) {
	root := t.TempDir()

	out, err := run(t, "audit", "--cwd", root, "--json")
	require.ErrorIs(t, err, cli.ErrAuditFailed)
	assert.Contains(t, out, "No src/ directory found")
	assert.NoDirExists(t, filepath.Join(root, ".fsd-coach"))
}

func TestAuditCommand_StrictFromConfig(t *testing.T) {
	root := copyFixture(t, cleanFixture)
	cart := filepath.Join(root, "src", "features", "billing", "model", "cart.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(cart), 0755))
	require.NoError(t, os.WriteFile(cart, []byte("export const cart = [];\n"), 0644))

	_, err := run(t, "audit", "--cwd", root)
	require.NoError(t, err, "warnings alone pass a lenient audit")

	require.NoError(t, os.WriteFile(filepath.Join(root, ".fsdcoach.yaml"), []byte("lint:\n  strict: true\n"), 0644))
	_, err = run(t, "audit", "--cwd", root)
	require.ErrorIs(t, err, cli.ErrAuditFailed)

	_, err = run(t, "audit", "--cwd", root, "--strict=false")
	require.NoError(t, err)
}

func TestAuditCommand_Cycles(t *testing.T) {
	root := copyFixture(t, violationsFixture)

	out, err := run(t, "audit", "--cwd", root, "--json", "--cycles")
	require.ErrorIs(t, err, cli.ErrAuditFailed)
	assert.Contains(t, out, "CIRCULAR_DEPENDENCY")
}

func TestAuditCommand_FixDryRun(t *testing.T) {
	root := copyFixture(t, violationsFixture)

	out, err := run(t, "audit", "--cwd", root, "--json", "--fix", "--dry-run")
	require.ErrorIs(t, err, cli.ErrAuditFailed)

	var report struct {
		Fix struct {
			DryRun  bool `json:"dry_run"`
			Applied []struct {
				Path string `json:"path"`
			} `json:"applied"`
		} `json:"fix"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Fix.DryRun)
	require.Len(t, report.Fix.Applied, 1)
	assert.Equal(t, "src/features/billing/index.ts", report.Fix.Applied[0].Path)
	assert.NoFileExists(t, filepath.Join(root, "src", "features", "billing", "index.ts"))
}

func TestFixCommand_CreatesPublicAPI(t *testing.T) {
	root := copyFixture(t, violationsFixture)

	_, err := run(t, "fix", "--cwd", root)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "src", "features", "billing", "index.ts"))

	out, err := run(t, "audit", "--cwd", root, "--json")
	require.ErrorIs(t, err, cli.ErrAuditFailed)
	assert.NotContains(t, out, "MISSING_PUBLIC_API")
}
