package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/focuscursor/internal/cursor"
	"github.com/ivlev/focuscursor/internal/geom"
)

func rect(w, h float64) *geom.Rect {
	r := geom.RectCentered(w, h)
	return &r
}

func menuScene(t *testing.T) *Scene {
	t.Helper()
	s := New()
	_, err := s.Add(NodeSpec{Name: "menu", Position: geom.V3(320, 180, 0)})
	require.NoError(t, err)
	_, err = s.Add(NodeSpec{Name: "play", Parent: "menu", Position: geom.V3(0, -60, 0), Rect: rect(160, 40)})
	require.NoError(t, err)
	_, err = s.Add(NodeSpec{Name: "quit", Parent: "menu", Position: geom.V3(0, 60, 0), Rect: rect(160, 40)})
	require.NoError(t, err)
	return s
}

func TestAddValidation(t *testing.T) {
	s := menuScene(t)

	tests := []struct {
		name string
		spec NodeSpec
		err  error
	}{
		{"duplicate", NodeSpec{Name: "play"}, ErrDuplicateNode},
		{"missing parent", NodeSpec{Name: "x", Parent: "nope"}, ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.spec)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := s.Add(NodeSpec{})
	assert.Error(t, err)
}

func TestIDsAreUnique(t *testing.T) {
	s := menuScene(t)
	seen := map[cursor.ElementID]bool{}
	for _, n := range s.Nodes() {
		assert.False(t, seen[n.ID()], n.Name())
		seen[n.ID()] = true
	}
}

func TestWorldTransformFollowsParents(t *testing.T) {
	s := menuScene(t)
	play, err := s.Node("play")
	require.NoError(t, err)

	tr := play.Transform()
	assert.InDelta(t, 320, tr.Position.X, 1e-9)
	assert.InDelta(t, 120, tr.Position.Y, 1e-9)
	assert.Equal(t, geom.V3(1, 1, 1), tr.Scale)

	menu, _ := s.Node("menu")
	menu.SetRotation(math.Pi / 2)
	menu.SetScale(geom.V2(2, 2))
	tr = play.Transform()
	// (0,-60) rotated 90deg ccw and doubled is (120, 0)
	assert.InDelta(t, 440, tr.Position.X, 1e-9)
	assert.InDelta(t, 180, tr.Position.Y, 1e-9)
	// own scale only
	assert.Equal(t, geom.V3(1, 1, 1), tr.Scale)
}

func TestActiveInHierarchy(t *testing.T) {
	s := menuScene(t)
	play, _ := s.Node("play")
	quit, _ := s.Node("quit")

	require.NoError(t, s.SetActive("menu", false))
	assert.False(t, play.Active())
	require.NoError(t, s.SetActive("menu", true))
	assert.True(t, play.Active())

	require.NoError(t, s.Destroy("menu"))
	assert.False(t, quit.Active())
	assert.True(t, quit.Destroyed())

	assert.ErrorIs(t, s.Focus("quit"), ErrDestroyed)
	assert.ErrorIs(t, s.SetActive("nope", true), ErrUnknownNode)
}

func TestFocusedElement(t *testing.T) {
	s := menuScene(t)
	assert.Nil(t, s.FocusedElement())

	require.NoError(t, s.Focus("play"))
	e := s.FocusedElement()
	require.NotNil(t, e)
	assert.Equal(t, "play", e.(*Node).Name())

	// destroying keeps the stale handle focused
	require.NoError(t, s.Destroy("play"))
	require.NotNil(t, s.FocusedElement())
	assert.False(t, s.FocusedElement().Active())

	s.ClearFocus()
	assert.Nil(t, s.FocusedElement())
	assert.ErrorIs(t, s.Focus("nope"), ErrUnknownNode)
}

func TestTickDelta(t *testing.T) {
	s := New()
	require.NoError(t, s.SetTimeScale(0.25))
	s.Tick(0.1)

	assert.Equal(t, 0.1, s.TickDelta(true))
	assert.InDelta(t, 0.025, s.TickDelta(false), 1e-12)
	assert.Equal(t, 1, s.Frame())
	assert.Error(t, s.SetTimeScale(-1))
}

func TestRectAndColor(t *testing.T) {
	s := menuScene(t)
	menu, _ := s.Node("menu")
	_, ok := menu.Rect()
	assert.False(t, ok)

	play, _ := s.Node("play")
	_, ok = play.HighlightColor()
	assert.False(t, ok)
	play.SetColor(&geom.Color{R: 1, A: 1})
	c, ok := play.HighlightColor()
	assert.True(t, ok)
	assert.Equal(t, 1.0, c.R)
}

func TestCursorFollowsScene(t *testing.T) {
	s := menuScene(t)
	cfg := cursor.DefaultConfig()
	cfg.TransitionDuration = 0.2
	c := cursor.New(cfg)
	c.Attach(s)

	require.NoError(t, s.Focus("play"))
	s.Tick(0.1)
	c.Advance()
	assert.InDelta(t, 120, c.State().Position.Y, 1e-9)

	require.NoError(t, s.Focus("quit"))
	s.Tick(0.2)
	c.Advance()
	assert.InDelta(t, 240, c.State().Position.Y, 1e-9)

	require.NoError(t, s.Destroy("quit"))
	s.Tick(0.1)
	c.Advance()
	assert.False(t, c.Visible())
}
