package cursor

import "github.com/ivlev/focuscursor/internal/geom"

// Option customizes a Cursor at construction
type Option func(*Cursor)

// WithResolver replaces the resolver selected by Config.Resolve
func WithResolver(r Resolver) Option {
	return func(c *Cursor) {
		c.resolver = r
	}
}

// WithColorStrategy replaces the strategy selected by Config.ColorMode
func WithColorStrategy(s ColorStrategy) Option {
	return func(c *Cursor) {
		c.colors = s
	}
}

// Cursor is a selection cursor bound to at most one host
type Cursor struct {
	cfg      Config
	host     Host
	tracker  tracker
	resolver Resolver
	colors   ColorStrategy
	visual   VisualState
}

// New creates a detached cursor
func New(cfg Config, opts ...Option) *Cursor {
	cfg = cfg.normalized()
	c := &Cursor{
		cfg:      cfg,
		tracker:  tracker{duration: cfg.TransitionDuration},
		resolver: NewResolver(cfg.Resolve, cfg.BorderSize),
		colors:   NewColorStrategy(cfg),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.hide()
	return c
}

// Attach binds the cursor to a host and starts from an empty state
func (c *Cursor) Attach(h Host) {
	c.host = h
	c.reset()
}

// Detach unbinds the host and drops all transient state
func (c *Cursor) Detach() {
	c.host = nil
	c.reset()
}

// Attached reports whether a host is bound
func (c *Cursor) Attached() bool { return c.host != nil }

// Advance runs one tick against the attached host. It is a no-op while detached.
func (c *Cursor) Advance() {
	if c.host == nil {
		return
	}
	focused := c.host.FocusedElement()
	dt := c.host.TickDelta(c.cfg.UseUnscaledTime)
	c.Step(focused, dt)
}

// Step runs one tick with an explicit focused element and frame delta
func (c *Cursor) Step(focused Element, dt float64) {
	if !c.tracker.observe(focused) {
		c.hide()
		return
	}
	c.tracker.advance(dt)
	c.place()
}

func (c *Cursor) place() {
	s := c.tracker.state

	cur, err := c.resolver.Resolve(s.Current)
	if err != nil {
		c.collapse()
		return
	}
	if s.Previous == nil {
		c.visual = settle(cur, c.cfg)
		c.visual.Color = c.colors.Color(nil, s.Current, 1)
		return
	}

	prev, err := c.resolver.Resolve(s.Previous)
	if err != nil {
		c.collapse()
		return
	}
	blend := BlendFactor(s, c.cfg)
	c.visual = interpolate(prev, cur, blend, c.cfg)
	c.visual.Color = c.colors.Color(s.Previous, s.Current, blend)
}

// collapse treats a resolver failure as focus loss
func (c *Cursor) collapse() {
	c.tracker.reset()
	c.hide()
}

// hide keeps the last geometry and drops alpha to zero
func (c *Cursor) hide() {
	c.visual.Color = c.cfg.Color.WithAlpha(0)
	c.visual.Blend = 0
	c.visual.Visible = false
	if c.visual.Scale == (geom.Vec3{}) {
		c.visual.Scale = c.cfg.BaseScale
	}
}

func (c *Cursor) reset() {
	c.tracker.reset()
	c.visual = VisualState{}
	c.hide()
}

// State returns the visual state computed by the last tick
func (c *Cursor) State() VisualState { return c.visual }

// Transition returns a copy of the focus bookkeeping
func (c *Cursor) Transition() TransitionState { return c.tracker.state }

// Blend returns the blend factor of the last tick
func (c *Cursor) Blend() float64 { return c.visual.Blend }

// Visible reports whether the cursor is shown
func (c *Cursor) Visible() bool { return c.visual.Visible }

// Config returns the normalized configuration
func (c *Cursor) Config() Config { return c.cfg }
