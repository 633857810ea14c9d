package fsd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsdcoach/fsd-coach/internal/domain"
	"github.com/fsdcoach/fsd-coach/internal/domain/fsd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	root := filepath.FromSlash("/project")

	tests := []struct {
		name string
		path string
		want domain.FSDPath
	}{
		{"full coordinates", "src/features/auth/model/store.ts", domain.FSDPath{Layer: domain.LayerFeatures, Slice: "auth", Segment: "model"}},
		{"slice root file", "src/entities/user/index.ts", domain.FSDPath{Layer: domain.LayerEntities, Slice: "user", Segment: "index.ts"}},
		{"layer file taken as slice", "src/shared/index.ts", domain.FSDPath{Layer: domain.LayerShared, Slice: "index.ts"}},
		{"unknown layer keeps slice and segment", "src/utils/date/format/x.ts", domain.FSDPath{Slice: "date", Segment: "format"}},
		{"single segment after src", "src/main.ts", domain.FSDPath{}},
		{"outside src", "lib/features/auth/x.ts", domain.FSDPath{}},
		{"outside project", "../other/src/features/a/b.ts", domain.FSDPath{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fsd.ParsePath(filepath.Join(root, filepath.FromSlash(tt.path)), root)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePath_IsPurelySyntactic(t *testing.T) {
	// Nothing exists on disk at this path.
	got := fsd.ParsePath(filepath.FromSlash("/nowhere/src/pages/home/ui/Page.tsx"), filepath.FromSlash("/nowhere"))
	assert.Equal(t, domain.LayerPages, got.Layer)
	assert.Equal(t, "home", got.Slice)
	assert.Equal(t, "ui", got.Segment)
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0644))
}

func TestResolveImport(t *testing.T) {
	root := t.TempDir()
	from := filepath.Join(root, "src", "features", "auth", "model", "store.ts")
	writeFile(t, from)
	writeFile(t, filepath.Join(root, "src", "features", "auth", "api", "client.ts"))
	writeFile(t, filepath.Join(root, "src", "entities", "user", "index.tsx"))
	writeFile(t, filepath.Join(root, "src", "shared", "lib", "date.js"))

	t.Run("extension probe", func(t *testing.T) {
		got, ok := fsd.ResolveImport("../api/client", from, root)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "src", "features", "auth", "api", "client.ts"), got)
	})

	t.Run("index probe", func(t *testing.T) {
		got, ok := fsd.ResolveImport("../../../entities/user", from, root)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "src", "entities", "user", "index.tsx"), got)
	})

	t.Run("exact file", func(t *testing.T) {
		got, ok := fsd.ResolveImport("../../../shared/lib/date.js", from, root)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "src", "shared", "lib", "date.js"), got)
	})

	t.Run("root absolute", func(t *testing.T) {
		got, ok := fsd.ResolveImport("/src/shared/lib/date", from, root)
		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "src", "shared", "lib", "date.js"), got)
	})

	t.Run("directory without index", func(t *testing.T) {
		_, ok := fsd.ResolveImport("../api", from, root)
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := fsd.ResolveImport("./nope", from, root)
		assert.False(t, ok)
	})

	t.Run("package name", func(t *testing.T) {
		_, ok := fsd.ResolveImport("react", from, root)
		assert.False(t, ok)
	})

	t.Run("alias", func(t *testing.T) {
		_, ok := fsd.ResolveImport("@/shared/lib/date", from, root)
		assert.False(t, ok)
	})
}
