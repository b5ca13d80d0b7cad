package cursor

import (
	"errors"
	"fmt"

	"github.com/ivlev/focuscursor/internal/geom"
)

// ErrUnresolvable is returned when an element cannot currently supply geometry
var ErrUnresolvable = errors.New("element bounds unresolvable")

// Bounds is an element's placement as the cursor needs it
type Bounds struct {
	// Center is the world-space center of the element rect
	Center geom.Vec3
	// Size is rect size * |local scale| + border
	Size geom.Vec2
	// Scale is the element's local scale
	Scale geom.Vec3
}

// Resolver converts an element to world-space bounds
type Resolver interface {
	Resolve(e Element) (Bounds, error)
}

// NewResolver returns the resolver for mode, padding every size by border
func NewResolver(mode ResolveMode, border geom.Vec2) Resolver {
	if mode == ResolveCenterOffset {
		return centerOffsetResolver{border: border}
	}
	return cornerResolver{border: border}
}

// cornerResolver averages the four transformed corners
type cornerResolver struct {
	border geom.Vec2
}

func (r cornerResolver) Resolve(e Element) (Bounds, error) {
	rect, tr, err := geometry(e)
	if err != nil {
		return Bounds{}, err
	}

	var world [4]geom.Vec2
	for i, c := range rect.Corners() {
		world[i] = tr.Matrix.Apply(c)
	}
	center := world[0].Add(world[1]).Add(world[2]).Add(world[3]).Scale(0.25)

	return Bounds{
		Center: center.Vec3(tr.Position.Z),
		Size:   effectiveSize(rect, tr.Scale, r.border),
		Scale:  tr.Scale,
	}, nil
}

// centerOffsetResolver skips the matrix: pivot + local center * local scale
type centerOffsetResolver struct {
	border geom.Vec2
}

func (r centerOffsetResolver) Resolve(e Element) (Bounds, error) {
	rect, tr, err := geometry(e)
	if err != nil {
		return Bounds{}, err
	}

	offset := rect.Center().Mul(tr.Scale.XY())
	return Bounds{
		Center: tr.Position.Add(offset.Vec3(0)),
		Size:   effectiveSize(rect, tr.Scale, r.border),
		Scale:  tr.Scale,
	}, nil
}

func geometry(e Element) (geom.Rect, geom.Transform, error) {
	if e == nil {
		return geom.Rect{}, geom.Transform{}, ErrUnresolvable
	}
	if !e.Active() {
		return geom.Rect{}, geom.Transform{}, fmt.Errorf("element %d inactive: %w", e.ID(), ErrUnresolvable)
	}
	rect, ok := e.Rect()
	if !ok {
		return geom.Rect{}, geom.Transform{}, fmt.Errorf("element %d has no rect: %w", e.ID(), ErrUnresolvable)
	}
	return rect, e.Transform(), nil
}

func effectiveSize(rect geom.Rect, scale geom.Vec3, border geom.Vec2) geom.Vec2 {
	return rect.Size().Mul(scale.XY().Abs()).Add(border)
}
