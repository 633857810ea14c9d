package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdcoach/fsd-coach/internal/adapters/inbound/cli"
	"github.com/fsdcoach/fsd-coach/internal/domain"
)

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fsd-coach dev")
}

func TestCacheCommand_NoCache(t *testing.T) {
	out, err := run(t, "cache", "--cwd", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No cache found. Run audit to create cache.")
}

func TestCacheCommand_StatsAndClear(t *testing.T) {
	root := copyFixture(t, cleanFixture)
	_, err := run(t, "audit", "--cwd", root)
	require.NoError(t, err)

	out, err := run(t, "cache", "--cwd", root, "--json")
	require.NoError(t, err)
	var stats struct {
		Entries int `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 9, stats.Entries)

	out, err = run(t, "cache", "--clear", "--cwd", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared successfully")

	out, err = run(t, "cache", "--cwd", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Cache Statistics:")
	assert.Contains(t, out, "Files:      0")
}

func TestHistoryCommand(t *testing.T) {
	root := copyFixture(t, violationsFixture)

	out, err := run(t, "history", "--cwd", root)
	require.NoError(t, err)
	assert.Contains(t, out, "No audit history found.")

	_, err = run(t, "audit", "--cwd", root)
	require.ErrorIs(t, err, cli.ErrAuditFailed)
	_, err = run(t, "audit", "--cwd", root, "--no-history")
	require.ErrorIs(t, err, cli.ErrAuditFailed)

	out, err = run(t, "history", "--cwd", root, "--json")
	require.NoError(t, err)
	var entries []domain.AuditEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Passed)
	assert.Equal(t, 4, entries[0].Summary.Errors)
	assert.NotEmpty(t, entries[0].ID)
}

func TestWatchCommand_MissingSrc(t *testing.T) {
	_, err := run(t, "watch", "--cwd", t.TempDir())
	assert.Error(t, err)
}

func TestMCPCommandExists(t *testing.T) {
	_, err := run(t, "mcp", "--help")
	assert.NoError(t, err)
}

func TestMCPServeCommandExists(t *testing.T) {
	_, err := run(t, "mcp", "serve", "--help")
	assert.NoError(t, err)
}
