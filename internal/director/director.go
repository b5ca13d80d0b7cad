package director

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivlev/focuscursor/internal/cursor"
	"github.com/ivlev/focuscursor/internal/geom"
	"github.com/ivlev/focuscursor/internal/logging"
	"github.com/ivlev/focuscursor/internal/scene"
)

// eventSlack absorbs float error when comparing event times to tick times
const eventSlack = 1e-9

// Frame is a snapshot of the scene and cursor after one tick
type Frame struct {
	Index     int
	Time      float64 // Tick time in unscaled seconds
	TimeScale float64
	Focus     string // Focused node, "" when none
	From      string // Node the cursor tweens away from, "" when settled
	Cursor    cursor.VisualState
	Elements  []ElementState
}

// ElementState is the world placement of one node with a rect
type ElementState struct {
	Name    string
	Quad    [4]geom.Vec2 // World corners
	Active  bool
	Focused bool
}

// Director replays a scenario against a fresh scene and cursor
type Director struct {
	scenario *Scenario
	cfg      cursor.Config
}

// NewDirector creates a Director for a validated scenario
func NewDirector(s *Scenario, cfg cursor.Config) *Director {
	return &Director{scenario: s, cfg: cfg}
}

// Scenario returns the scenario being replayed
func (d *Director) Scenario() *Scenario { return d.scenario }

// Run ticks through the scenario, calling fn once per frame in order.
// Events due at or before a tick's time are applied before that tick.
func (d *Director) Run(ctx context.Context, fn func(Frame) error) error {
	log := logging.FromContext(ctx)
	s := d.scenario

	sc, err := Build(s)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	c := cursor.New(d.cfg)
	c.Attach(sc)
	defer c.Detach()

	events := s.sortedEvents()
	next := 0
	dt := 1 / s.FPS
	frames := s.Frames()

	log.Debug().Int("frames", frames).Int("events", len(events)).Msg("replay started")

	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := float64(i) / s.FPS
		for next < len(events) && events[next].Time <= now+eventSlack {
			ev := events[next]
			if err := apply(sc, ev); err != nil {
				if !errors.Is(err, scene.ErrDestroyed) {
					return fmt.Errorf("event at %.3fs: %w", ev.Time, err)
				}
				log.Warn().Err(err).Float64("time", ev.Time).Msg("event skipped")
			} else {
				log.Debug().Float64("time", ev.Time).Str("action", ev.Action()).Str("target", ev.Target()).Msg("event applied")
			}
			next++
		}

		sc.Tick(dt)
		c.Advance()

		if err := fn(snapshot(i, now, sc, c)); err != nil {
			return err
		}
	}

	if next < len(events) {
		log.Warn().Int("count", len(events)-next).Msg("events after the last tick were ignored")
	}
	return nil
}

// Collect replays the whole scenario into memory
func (d *Director) Collect(ctx context.Context) ([]Frame, error) {
	frames := make([]Frame, 0, d.scenario.Frames())
	err := d.Run(ctx, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	return frames, err
}

func apply(sc *scene.Scene, ev Event) error {
	switch ev.Action() {
	case "focus":
		return sc.Focus(ev.Focus)
	case "clear_focus":
		sc.ClearFocus()
		return nil
	case "time_scale":
		return sc.SetTimeScale(*ev.TimeScale)
	case "activate":
		return sc.SetActive(ev.Activate, true)
	case "deactivate":
		return sc.SetActive(ev.Deactivate, false)
	case "destroy":
		return sc.Destroy(ev.Destroy)
	case "move":
		n, err := sc.Node(ev.Move)
		if err != nil {
			return err
		}
		to, err := vec3(ev.To)
		if err != nil {
			return err
		}
		n.SetPosition(to)
		return nil
	}
	return fmt.Errorf("event has no single action")
}

func snapshot(i int, now float64, sc *scene.Scene, c *cursor.Cursor) Frame {
	f := Frame{
		Index:     i,
		Time:      now,
		TimeScale: sc.TimeScale(),
		Cursor:    c.State(),
	}
	focused := sc.Focused()
	if focused != nil {
		f.Focus = focused.Name()
	}
	if prev, ok := c.Transition().Previous.(*scene.Node); ok {
		f.From = prev.Name()
	}

	for _, n := range sc.Nodes() {
		r, ok := n.Rect()
		if !ok {
			continue
		}
		m := n.World()
		es := ElementState{
			Name:    n.Name(),
			Active:  n.Active(),
			Focused: n == focused,
		}
		for k, corner := range r.Corners() {
			es.Quad[k] = m.Apply(corner)
		}
		f.Elements = append(f.Elements, es)
	}
	return f
}
