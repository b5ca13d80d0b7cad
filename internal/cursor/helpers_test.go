package cursor

import (
	"github.com/stretchr/testify/mock"

	"github.com/ivlev/focuscursor/internal/easing"
	"github.com/ivlev/focuscursor/internal/geom"
)

type fakeElement struct {
	id        ElementID
	inactive  bool
	noRect    bool
	rect      geom.Rect
	transform geom.Transform
	highlight *geom.Color
}

// box is an unrotated element of size (w,h) centered on (x,y)
func box(id ElementID, x, y, w, h float64) *fakeElement {
	return &fakeElement{
		id:   id,
		rect: geom.RectCentered(w, h),
		transform: geom.Transform{
			Position: geom.V3(x, y, 0),
			Scale:    geom.One3,
			Matrix:   geom.Translate(x, y),
		},
	}
}

func (e *fakeElement) ID() ElementID { return e.id }
func (e *fakeElement) Active() bool  { return !e.inactive }

func (e *fakeElement) Rect() (geom.Rect, bool) {
	return e.rect, !e.noRect
}

func (e *fakeElement) Transform() geom.Transform { return e.transform }

func (e *fakeElement) HighlightColor() (geom.Color, bool) {
	if e.highlight == nil {
		return geom.Color{}, false
	}
	return *e.highlight, true
}

func (e *fakeElement) withScale(sx, sy float64) *fakeElement {
	e.transform.Scale = geom.V3(sx, sy, 1)
	pos := e.transform.Position.XY()
	e.transform.Matrix = geom.TRS(pos, 0, geom.V2(sx, sy))
	return e
}

func (e *fakeElement) withHighlight(c geom.Color) *fakeElement {
	e.highlight = &c
	return e
}

// mockHost records what the cursor asks of its host
type mockHost struct {
	mock.Mock
}

func (m *mockHost) FocusedElement() Element {
	args := m.Called()
	if e := args.Get(0); e != nil {
		return e.(Element)
	}
	return nil
}

func (m *mockHost) TickDelta(unscaled bool) float64 {
	args := m.Called(unscaled)
	return args.Get(0).(float64)
}

// linearConfig is the configuration of the worked example: 0.2s linear, 4px border
func linearConfig() Config {
	cfg := DefaultConfig()
	cfg.TransitionDuration = 0.2
	cfg.Easing = easing.Linear
	cfg.BorderSize = geom.V2(4, 4)
	cfg.Opacity = 0.8
	return cfg
}
