package cursor

import "github.com/ivlev/focuscursor/internal/geom"

// VisualState is what a rendering layer applies to the cursor sprite
type VisualState struct {
	Position geom.Vec3
	Size     geom.Vec2
	Scale    geom.Vec3
	Color    geom.Color
	// Blend is the eased transition progress used for this tick
	Blend float64
	// Visible is false while nothing is focused; Color.A is 0 then
	Visible bool
}

// BlendFactor evaluates the easing curve for a transition state
func BlendFactor(s TransitionState, cfg Config) float64 {
	if s.Previous == nil || cfg.Instant() {
		return 1
	}
	t := geom.Clamp01(s.Elapsed / cfg.TransitionDuration)
	if cfg.Easing == nil {
		return t
	}
	return cfg.Easing(t)
}

// ColorStrategy decides the cursor color while something is focused.
// prev is nil when no transition is running.
type ColorStrategy interface {
	Color(prev, cur Element, blend float64) geom.Color
}

// NewColorStrategy builds the strategy selected by cfg
func NewColorStrategy(cfg Config) ColorStrategy {
	if cfg.ColorMode == ColorPerElement {
		return perElementColor{base: cfg.Color, opacity: cfg.Opacity, space: cfg.BlendSpace}
	}
	return uniformColor{base: cfg.Color, opacity: cfg.Opacity}
}

type uniformColor struct {
	base    geom.Color
	opacity float64
}

func (u uniformColor) Color(_, _ Element, _ float64) geom.Color {
	return u.base.WithAlpha(u.opacity)
}

type perElementColor struct {
	base    geom.Color
	opacity float64
	space   ColorSpace
}

func (p perElementColor) Color(prev, cur Element, blend float64) geom.Color {
	to := p.colorOf(cur)
	if prev == nil {
		return to.WithAlpha(to.A * p.opacity)
	}
	from := p.colorOf(prev)
	c := blendColor(from, to, blend, p.space)
	return c.WithAlpha(c.A * p.opacity)
}

func (p perElementColor) colorOf(e Element) geom.Color {
	if h, ok := e.(Highlighter); ok {
		if c, ok := h.HighlightColor(); ok {
			return c
		}
	}
	return p.base
}

func blendColor(from, to geom.Color, t float64, space ColorSpace) geom.Color {
	alpha := geom.Lerp(from.A, to.A, t)
	a, b := from.Colorful(), to.Colorful()
	switch space {
	case SpaceLab:
		return geom.FromColorful(a.BlendLab(b, t), alpha)
	case SpaceLuv:
		return geom.FromColorful(a.BlendLuv(b, t), alpha)
	case SpaceHCL:
		return geom.FromColorful(a.BlendHcl(b, t), alpha)
	default:
		return from.Lerp(to, t)
	}
}

// interpolate places the cursor between two resolved bounds
func interpolate(prev, cur Bounds, blend float64, cfg Config) VisualState {
	v := VisualState{
		Position: prev.Center.Lerp(cur.Center, blend),
		Size:     prev.Size.Lerp(cur.Size, blend),
		Scale:    cfg.BaseScale,
		Blend:    blend,
		Visible:  true,
	}
	if cfg.TweenScale {
		v.Scale = prev.Scale.Lerp(cur.Scale, blend)
	}
	return v
}

// settle places the cursor exactly on cur
func settle(cur Bounds, cfg Config) VisualState {
	v := VisualState{
		Position: cur.Center,
		Size:     cur.Size,
		Scale:    cfg.BaseScale,
		Blend:    1,
		Visible:  true,
	}
	if cfg.TweenScale {
		v.Scale = cur.Scale
	}
	return v
}
