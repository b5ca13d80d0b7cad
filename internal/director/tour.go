package director

import (
	"fmt"

	"github.com/ivlev/focuscursor/internal/geom"
)

// Tour generates focus events that visit every focusable element in reading order
type Tour struct {
	MinDwell float64 // Minimum time per element (seconds)
	MaxDwell float64 // Maximum time per element (seconds)
	Lead     float64 // Time before the first focus and after the last (seconds)
	RowSlack float64 // Elements whose centers differ less than this in y share a row
}

// NewTour creates a Tour with default settings
func NewTour() *Tour {
	return &Tour{
		MinDwell: 0.4,
		MaxDwell: 2.0,
		Lead:     0.25,
		RowSlack: 20,
	}
}

// Generate returns a copy of s whose events focus each element in turn over totalDuration
func (t *Tour) Generate(s *Scenario, totalDuration float64) (*Scenario, error) {
	sc, err := Build(s)
	if err != nil {
		return nil, err
	}

	type stop struct {
		id     string
		center geom.Vec2
	}
	var stops []stop
	for _, n := range sc.Nodes() {
		r, ok := n.Rect()
		if !ok || !n.Active() {
			continue
		}
		stops = append(stops, stop{id: n.Name(), center: n.World().Apply(r.Center())})
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("no focusable elements")
	}

	ReadingOrder(stops, func(st stop) geom.Vec2 { return st.center }, t.RowSlack)

	dwell := t.dwellTime(totalDuration, len(stops))

	out := *s
	out.Events = nil
	out.Duration = totalDuration
	now := t.Lead
	for _, st := range stops {
		out.Events = append(out.Events, Event{Time: now, Focus: st.id})
		now += dwell
	}
	out.Events = append(out.Events, Event{Time: now, ClearFocus: true})
	if end := now + t.Lead; end > out.Duration {
		out.Duration = end
	}
	return &out, nil
}

// dwellTime determines how long each element keeps focus
func (t *Tour) dwellTime(totalDuration float64, count int) float64 {
	available := totalDuration - 2*t.Lead
	if available <= 0 {
		available = totalDuration
	}

	dwell := available / float64(count)
	if dwell < t.MinDwell {
		dwell = t.MinDwell
	}
	if dwell > t.MaxDwell {
		dwell = t.MaxDwell
	}
	return dwell
}
