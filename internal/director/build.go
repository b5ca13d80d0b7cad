package director

import (
	"fmt"
	"math"

	"github.com/ivlev/focuscursor/internal/geom"
	"github.com/ivlev/focuscursor/internal/scene"
)

// Build creates the scene described by the scenario's elements
func Build(s *Scenario) (*scene.Scene, error) {
	sc := scene.New()
	for _, el := range s.Elements {
		spec, err := nodeSpec(el)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", el.ID, err)
		}
		if _, err := sc.Add(spec); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

func nodeSpec(el ElementSpec) (scene.NodeSpec, error) {
	pos, err := vec3(el.Position)
	if err != nil {
		return scene.NodeSpec{}, err
	}
	scale, err := scale2(el.Scale)
	if err != nil {
		return scene.NodeSpec{}, err
	}

	spec := scene.NodeSpec{
		Name:     el.ID,
		Parent:   el.Parent,
		Position: pos,
		Rotation: el.Rotation * math.Pi / 180,
		Scale:    scale,
		Inactive: el.Inactive,
	}
	if el.Rect != nil {
		spec.Rect = &geom.Rect{X: el.Rect.X, Y: el.Rect.Y, W: el.Rect.W, H: el.Rect.H}
	}
	if el.Color != "" {
		c, err := geom.ParseColor(el.Color)
		if err != nil {
			return scene.NodeSpec{}, err
		}
		spec.Color = &c
	}
	return spec, nil
}
