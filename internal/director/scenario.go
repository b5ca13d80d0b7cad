package director

// Scenario is a scripted focus session replayed against a scene
type Scenario struct {
	Version    string        `yaml:"version"`
	FPS        float64       `yaml:"fps"`
	Duration   float64       `yaml:"duration"` // Total duration in seconds
	Viewport   Size          `yaml:"viewport"`
	Background string        `yaml:"background,omitempty"`
	Elements   []ElementSpec `yaml:"elements"`
	Events     []Event       `yaml:"events"`
}

// Size is a viewport size in pixels
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ElementSpec declares a scene node
type ElementSpec struct {
	ID       string     `yaml:"id"`
	Parent   string     `yaml:"parent,omitempty"`
	Position []float64  `yaml:"position,flow,omitempty"` // [x, y] or [x, y, z], relative to parent
	Rotation float64    `yaml:"rotation,omitempty"`      // Degrees, counter-clockwise
	Scale    []float64  `yaml:"scale,flow,omitempty"`    // [sx, sy], default [1, 1]
	Rect     *Rectangle `yaml:"rect,omitempty"`          // Nodes without a rect cannot host the cursor
	Color    string     `yaml:"color,omitempty"`         // Cursor color override while focused
	Inactive bool       `yaml:"inactive,omitempty"`
}

// Rectangle is a rect relative to the node pivot
type Rectangle struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Event is a single scene mutation at a point in time. Exactly one action is set.
type Event struct {
	Time       float64   `yaml:"time"`
	Focus      string    `yaml:"focus,omitempty"`
	ClearFocus bool      `yaml:"clear_focus,omitempty"`
	TimeScale  *float64  `yaml:"time_scale,omitempty"`
	Activate   string    `yaml:"activate,omitempty"`
	Deactivate string    `yaml:"deactivate,omitempty"`
	Destroy    string    `yaml:"destroy,omitempty"`
	Move       string    `yaml:"move,omitempty"`
	To         []float64 `yaml:"to,flow,omitempty"` // Target position for move
}

// Action names the single action the event carries, or "" when it has none
func (e Event) Action() string {
	var actions []string
	if e.Focus != "" {
		actions = append(actions, "focus")
	}
	if e.ClearFocus {
		actions = append(actions, "clear_focus")
	}
	if e.TimeScale != nil {
		actions = append(actions, "time_scale")
	}
	if e.Activate != "" {
		actions = append(actions, "activate")
	}
	if e.Deactivate != "" {
		actions = append(actions, "deactivate")
	}
	if e.Destroy != "" {
		actions = append(actions, "destroy")
	}
	if e.Move != "" {
		actions = append(actions, "move")
	}
	if len(actions) != 1 {
		return ""
	}
	return actions[0]
}

// Target returns the node the event refers to, if any
func (e Event) Target() string {
	switch {
	case e.Focus != "":
		return e.Focus
	case e.Activate != "":
		return e.Activate
	case e.Deactivate != "":
		return e.Deactivate
	case e.Destroy != "":
		return e.Destroy
	case e.Move != "":
		return e.Move
	}
	return ""
}

// Frames is the number of ticks the scenario runs for
func (s *Scenario) Frames() int {
	if s.FPS <= 0 || s.Duration <= 0 {
		return 0
	}
	// +1e-9 keeps 2.5s at 60fps from losing its last tick to rounding
	return int(s.Duration*s.FPS+1e-9) + 1
}
