package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDetermineAssetType(t *testing.T) {
	assert.Equal(t, AssetTypeConfig, determineAssetType("a/b/wireframe.toml"))
	assert.Equal(t, AssetTypeNone, determineAssetType("a/b/notes.txt"))
	assert.Equal(t, "config", AssetTypeConfig.String())
}

func TestWatchReportsChanges(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "wireframe.toml")
	other := filepath.Join(dir, "other.toml")
	writeFile(t, config, "name = \"a\"\n")

	am, err := NewAssetManager()
	require.NoError(t, err)
	defer am.Shutdown()

	changes := make(chan AssetInfo, 16)
	am.OnChange(func(info AssetInfo) { changes <- info })
	require.NoError(t, am.Watch(config))

	info, ok := am.Asset(config)
	require.True(t, ok)
	assert.Equal(t, AssetTypeConfig, info.Type)

	writeFile(t, other, "ignored = true\n")
	writeFile(t, config, "name = \"b\"\n")

	select {
	case info := <-changes:
		abs, _ := filepath.Abs(config)
		assert.Equal(t, abs, info.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
	_, ok = am.Asset(other)
	assert.False(t, ok)
}

func TestWatchRejectsUnknownTypes(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	defer am.Shutdown()

	assert.Error(t, am.Watch(filepath.Join(t.TempDir(), "scene.obj")))
}

func TestInitializeIndexesTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scenes"), 0o755))
	writeFile(t, filepath.Join(dir, "app.toml"), "")
	writeFile(t, filepath.Join(dir, "scenes", "cube.toml"), "")
	writeFile(t, filepath.Join(dir, "readme.md"), "")

	am, err := NewAssetManager()
	require.NoError(t, err)
	defer am.Shutdown()
	require.NoError(t, am.Initialize(dir))

	_, ok := am.Asset(filepath.Join(dir, "scenes", "cube.toml"))
	assert.True(t, ok)
	_, ok = am.Asset(filepath.Join(dir, "readme.md"))
	assert.False(t, ok)
}

func TestLoadAsset(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "wireframe.toml")
	writeFile(t, config, "width = 640\n")

	am, err := NewAssetManager()
	require.NoError(t, err)
	defer am.Shutdown()

	_, err = am.LoadAsset(config)
	assert.Error(t, err)

	am.RegisterLoader(AssetTypeConfig, LoaderFunc(func(path string) (interface{}, error) {
		b, err := os.ReadFile(path)
		return string(b), err
	}))
	got, err := am.LoadAsset(config)
	require.NoError(t, err)
	assert.Equal(t, "width = 640\n", got)

	info, ok := am.Asset(config)
	require.True(t, ok)
	assert.False(t, info.LastLoaded.IsZero())
}

func TestShutdownIsIdempotent(t *testing.T) {
	am, err := NewAssetManager()
	require.NoError(t, err)
	require.NoError(t, am.Shutdown())
	require.NoError(t, am.Shutdown())
	assert.Error(t, am.Watch("x.toml"))
}
