package director

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScenarioPath(t *testing.T) {
	path := GenerateScenarioPath("scenarios", "tour")

	assert.True(t, strings.HasPrefix(path, filepath.Join("scenarios", "tour_")), path)
	assert.True(t, strings.HasSuffix(path, ".yaml"), path)
	t.Logf("Generated path: %s", path)
}

func TestFindLatestScenario(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		filepath.Join(dir, "menu.yaml"),
		filepath.Join(dir, "grid.yml"),
		filepath.Join(dir, "tour.yaml"),
	}
	for i, f := range files {
		require.NoError(t, os.WriteFile(f, []byte("fps: 1"), 0644))
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(f, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	latest, err := FindLatestScenario(dir)
	require.NoError(t, err)
	assert.Equal(t, files[len(files)-1], latest)
}

func TestFindLatestScenarioEmpty(t *testing.T) {
	_, err := FindLatestScenario(t.TempDir())
	assert.Error(t, err)

	_, err = FindLatestScenario(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestScenarioWriteRead(t *testing.T) {
	s := mustDecode(t, twoButtons)
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteScenario(s, path))

	got, err := ReadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, s.Elements, got.Elements)
	assert.Len(t, got.Events, len(s.Events))
}
