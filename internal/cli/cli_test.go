package cli

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
fps: 10
duration: 0.5
viewport: {w: 32, h: 24}
elements:
  - id: a
    position: [8, 12]
    rect: {x: -4, y: -4, w: 8, h: 8}
  - id: b
    position: [24, 12]
    rect: {x: -4, y: -4, w: 8, h: 8}
events:
  - {time: 0, focus: a}
  - {time: 0.2, focus: b}
`

func setup(t *testing.T) (dir, scenario, cfg string) {
	t.Helper()
	dir = t.TempDir()
	scenario = filepath.Join(dir, "menu.yaml")
	cfg = filepath.Join(dir, "focuscursor.yaml")
	require.NoError(t, os.WriteFile(scenario, []byte(scenarioYAML), 0644))
	require.NoError(t, os.WriteFile(cfg, []byte("cursor: {transition_duration: 0.2}\n"), 0644))
	return dir, scenario, cfg
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc"})
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "focuscursor 1.2.3 (abc)\n", out)
}

func TestEasings(t *testing.T) {
	out, err := execute(t, "easings")
	require.NoError(t, err)
	assert.Contains(t, out, "linear\n")
	assert.Contains(t, out, "out-bounce")
}

func TestValidateCommand(t *testing.T) {
	_, scenario, cfg := setup(t)
	out, err := execute(t, "validate", scenario, "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "ok (2 elements, 2 events, 6 frames at 10 fps)")
}

func TestValidateRejectsBadScenario(t *testing.T) {
	dir, _, cfg := setup(t)
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fps: 0\nduration: 1\nviewport: {w: 1, h: 1}\n"), 0644))

	_, err := execute(t, "validate", bad, "--config", cfg, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fps")
}

func TestBadConfigFails(t *testing.T) {
	dir, scenario, _ := setup(t)
	cfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("cursor: {opacity: 3}\n"), 0644))

	_, err := execute(t, "run", scenario, "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opacity")
}

func TestRunCommand(t *testing.T) {
	_, scenario, cfg := setup(t)
	out, err := execute(t, "run", scenario, "--json", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[0], `"focus":"a"`)
	assert.Contains(t, lines[2], `"from":"a"`)
	assert.Contains(t, lines[4], `"position":[24,12,0]`)
}

func TestPreviewCommand(t *testing.T) {
	dir, scenario, cfg := setup(t)
	frames := filepath.Join(dir, "frames")

	_, err := execute(t, "preview", scenario, "--out", frames, "--workers", "2", "--background", "#000000",
		"--config", cfg, "--log-level", "error")
	require.NoError(t, err)

	entries, err := os.ReadDir(frames)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestPreviewFlagsExclusive(t *testing.T) {
	_, scenario, cfg := setup(t)
	_, err := execute(t, "preview", scenario, "--out", "x", "--video", "y.mp4", "--config", cfg)
	assert.Error(t, err)
}

func TestTourCommand(t *testing.T) {
	dir, scenario, cfg := setup(t)
	target := filepath.Join(dir, "tour.yaml")

	out, err := execute(t, "tour", scenario, "--out", target, "--duration", "2", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, target+"\n", out)

	out, err = execute(t, "validate", target, "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "3 events")
}

func TestScanCommand(t *testing.T) {
	dir, _, cfg := setup(t)
	shot := filepath.Join(dir, "screen.png")
	target := filepath.Join(dir, "scan.yaml")

	img := image.NewRGBA(image.Rect(0, 0, 160, 90))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	for _, r := range []image.Rectangle{image.Rect(10, 20, 60, 50), image.Rect(90, 20, 140, 50)} {
		draw.Draw(img, r, image.NewUniform(color.White), image.Point{}, draw.Src)
	}
	f, err := os.Create(shot)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	out, err := execute(t, "scan", shot, "--out", target, "--duration", "3", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, target+"\n", out)

	out, err = execute(t, "validate", target, "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "2 elements, 3 events")
}
