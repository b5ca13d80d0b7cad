package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/focuscursor/internal/cursor"
	"github.com/ivlev/focuscursor/internal/easing"
	"github.com/ivlev/focuscursor/internal/geom"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "focuscursor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")
	cfg, err := NewManager(path).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Cursor, cfg.Cursor)
	assert.Equal(t, DefaultConfig().Preview, cfg.Preview)

	cc, err := cfg.CursorConfig()
	require.NoError(t, err)
	assert.True(t, cc.UseUnscaledTime)
	assert.Equal(t, 0.125, cc.TransitionDuration)
	assert.Equal(t, cursor.ResolveCorners, cc.Resolve)
	assert.Equal(t, geom.White, cc.Color)
	assert.InDelta(t, easing.SmoothStep(0.3), cc.Easing(0.3), 1e-9)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
cursor:
  use_unscaled_time: false
  border: {x: 4, y: 2}
  opacity: 0.8
  transition_duration: 0.2
  easing: out_cubic
  resolve: center-offset
  color_mode: per-element
  blend_space: lab
  tween_scale: true
  color: "#ff000080"
preview:
  workers: 3
log:
  level: debug
`)
	t.Setenv("FOCUSCURSOR_CURSOR_OPACITY", "0.5")
	t.Setenv("FOCUSCURSOR_LOG_FORMAT", "json")

	m := NewManager(path)
	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, path, m.FileUsed())
	assert.Equal(t, 3, cfg.Preview.Workers)

	cc, err := cfg.CursorConfig()
	require.NoError(t, err)
	assert.False(t, cc.UseUnscaledTime)
	assert.Equal(t, geom.V2(4, 2), cc.BorderSize)
	assert.Equal(t, 0.5, cc.Opacity)
	assert.Equal(t, cursor.ResolveCenterOffset, cc.Resolve)
	assert.Equal(t, cursor.ColorPerElement, cc.ColorMode)
	assert.Equal(t, cursor.SpaceLab, cc.BlendSpace)
	assert.True(t, cc.TweenScale)
	assert.InDelta(t, 128.0/255, cc.Color.A, 1e-9)
	assert.InDelta(t, easing.OutCubic(0.3), cc.Easing(0.3), 1e-12)

	lc, err := cfg.LoggingConfig()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestCurveOverridesEasing(t *testing.T) {
	path := writeConfig(t, `
cursor:
  easing: linear
  curve:
    - {time: 0, value: 0, in: 2, out: 2}
    - {time: 1, value: 1, in: 0, out: 0}
`)
	cfg, err := NewManager(path).Load()
	require.NoError(t, err)
	require.Len(t, cfg.Cursor.Curve, 2)

	cc, err := cfg.CursorConfig()
	require.NoError(t, err)
	curve, err := easing.NewCurve(cfg.Cursor.Curve...)
	require.NoError(t, err)
	assert.InDelta(t, curve.Evaluate(0.25), cc.Easing(0.25), 1e-12)
	assert.NotEqual(t, 0.25, cc.Easing(0.25))
}

func TestFlagOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--log-level=warn"}))

	m := NewManager(writeConfig(t, "log: {level: debug}\n"))
	require.NoError(t, m.BindFlag("log.level", fs.Lookup("log-level")))
	assert.Error(t, m.BindFlag("log.format", fs.Lookup("missing")))

	cfg, err := m.Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "warn", m.Get().Log.Level)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"duration too long", "cursor: {transition_duration: 6}", "transition_duration"},
		{"negative duration", "cursor: {transition_duration: -1}", "transition_duration"},
		{"opacity", "cursor: {opacity: 1.5}", "opacity"},
		{"easing", "cursor: {easing: wobble}", "cursor.easing"},
		{"resolve", "cursor: {resolve: sideways}", "resolve mode"},
		{"color", "cursor: {color: teal}", "cursor.color"},
		{"curve", "cursor: {curve: [{time: 0}, {time: 0}]}", "cursor.curve"},
		{"workers", "preview: {workers: -2}", "preview.workers"},
		{"log level", "log: {level: chatty}", "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManager(writeConfig(t, tt.body+"\n")).Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := NewManager(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := NewManager(filepath.Join("..", "..", "focuscursor.yaml")).Load()
	require.NoError(t, err)

	cc, err := cfg.CursorConfig()
	require.NoError(t, err)
	assert.Equal(t, cursor.ResolveCorners, cc.Resolve)
	assert.Equal(t, cursor.ColorPerElement, cc.ColorMode)
	assert.Equal(t, cursor.SpaceLab, cc.BlendSpace)
	assert.InDelta(t, 0.2, cc.TransitionDuration, 1e-12)
}

func TestResolveModeNames(t *testing.T) {
	for _, name := range []string{"corners", "center-offset"} {
		_, err := NewManager(writeConfig(t, "cursor: {resolve: "+name+"}\n")).Load()
		assert.NoError(t, err, name)
	}
	_, err := NewManager(writeConfig(t, "cursor: {resolve: center}\n")).Load()
	assert.Error(t, err)
}
