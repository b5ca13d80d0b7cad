package director

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ivlev/focuscursor/internal/geom"
)

// Validate reports every problem in the scenario at once
func (s *Scenario) Validate() error {
	var errs []error
	if math.IsNaN(s.FPS) || s.FPS <= 0 || s.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps %v out of range (0, 240]", s.FPS))
	}
	if math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) || s.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration %v must be a positive finite number", s.Duration))
	}
	if s.Viewport.W <= 0 || s.Viewport.H <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", s.Viewport.W, s.Viewport.H))
	}

	seen := make(map[string]bool, len(s.Elements))
	for i, el := range s.Elements {
		prefix := fmt.Sprintf("elements[%d]", i)
		if el.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is empty", prefix))
			continue
		}
		prefix += " " + el.ID
		if seen[el.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", prefix))
		}
		if el.Parent != "" && !seen[el.Parent] {
			errs = append(errs, fmt.Errorf("%s: parent %q must be declared earlier", prefix, el.Parent))
		}
		seen[el.ID] = true

		if _, err := vec3(el.Position); err != nil {
			errs = append(errs, fmt.Errorf("%s: position: %w", prefix, err))
		}
		if _, err := scale2(el.Scale); err != nil {
			errs = append(errs, fmt.Errorf("%s: scale: %w", prefix, err))
		}
		if el.Rect != nil && (math.IsNaN(el.Rect.W) || math.IsNaN(el.Rect.H) || el.Rect.W < 0 || el.Rect.H < 0) {
			errs = append(errs, fmt.Errorf("%s: rect size must be a non-negative number", prefix))
		}
		if el.Color != "" {
			if _, err := geom.ParseColor(el.Color); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			}
		}
	}

	for i, ev := range s.Events {
		prefix := fmt.Sprintf("events[%d]", i)
		if math.IsNaN(ev.Time) || ev.Time < 0 {
			errs = append(errs, fmt.Errorf("%s: time %v must be a non-negative number", prefix, ev.Time))
		}
		action := ev.Action()
		if action == "" {
			errs = append(errs, fmt.Errorf("%s: exactly one action is required", prefix))
			continue
		}
		if target := ev.Target(); target != "" && !seen[target] {
			errs = append(errs, fmt.Errorf("%s: %s of unknown element %q", prefix, action, target))
		}
		if ev.TimeScale != nil && (math.IsNaN(*ev.TimeScale) || *ev.TimeScale < 0) {
			errs = append(errs, fmt.Errorf("%s: time_scale %v must be a non-negative number", prefix, *ev.TimeScale))
		}
		if action == "move" {
			if _, err := vec3(ev.To); err != nil || len(ev.To) == 0 {
				errs = append(errs, fmt.Errorf("%s: move needs a [x, y] target", prefix))
			}
		}
	}

	return errors.Join(errs...)
}

// sortedEvents returns the events ordered by time; ties keep file order
func (s *Scenario) sortedEvents() []Event {
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	return events
}

func vec3(v []float64) (geom.Vec3, error) {
	switch len(v) {
	case 0:
		return geom.Vec3{}, nil
	case 2:
		return geom.V3(v[0], v[1], 0), nil
	case 3:
		return geom.V3(v[0], v[1], v[2]), nil
	}
	return geom.Vec3{}, fmt.Errorf("want 2 or 3 components, got %d", len(v))
}

func scale2(v []float64) (geom.Vec2, error) {
	switch len(v) {
	case 0:
		return geom.V2(1, 1), nil
	case 1:
		return geom.V2(v[0], v[0]), nil
	case 2:
		return geom.V2(v[0], v[1]), nil
	}
	return geom.Vec2{}, fmt.Errorf("want 1 or 2 components, got %d", len(v))
}
