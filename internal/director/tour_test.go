package director

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourReadingOrder(t *testing.T) {
	s := &Scenario{
		FPS:      30,
		Duration: 1,
		Viewport: Size{W: 640, H: 360},
		Elements: []ElementSpec{
			{ID: "bottom", Position: []float64{100, 300}, Rect: &Rectangle{-10, -10, 20, 20}},
			{ID: "top-right", Position: []float64{500, 40}, Rect: &Rectangle{-10, -10, 20, 20}},
			{ID: "top-left", Position: []float64{100, 50}, Rect: &Rectangle{-10, -10, 20, 20}},
			{ID: "label", Position: []float64{0, 0}},
			{ID: "hidden", Position: []float64{0, 0}, Rect: &Rectangle{-10, -10, 20, 20}, Inactive: true},
		},
	}

	out, err := NewTour().Generate(s, 4)
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	var order []string
	for _, ev := range out.Events {
		if ev.Focus != "" {
			order = append(order, ev.Focus)
		}
	}
	assert.Equal(t, []string{"top-left", "top-right", "bottom"}, order)
	assert.True(t, out.Events[len(out.Events)-1].ClearFocus)
	// source scenario untouched
	assert.Empty(t, s.Events)
	t.Logf("tour: %d events over %.2fs", len(out.Events), out.Duration)
}

func TestTourDwellClamps(t *testing.T) {
	tour := NewTour()
	assert.Equal(t, tour.MaxDwell, tour.dwellTime(100, 2))
	assert.Equal(t, tour.MinDwell, tour.dwellTime(1, 10))
	assert.InDelta(t, 0.5, tour.dwellTime(2.5, 4), 1e-12)
}

func TestTourNeedsFocusable(t *testing.T) {
	s := &Scenario{FPS: 30, Duration: 1, Viewport: Size{W: 10, H: 10}, Elements: []ElementSpec{{ID: "x"}}}
	_, err := NewTour().Generate(s, 1)
	assert.Error(t, err)
}
