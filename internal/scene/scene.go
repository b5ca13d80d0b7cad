// Package scene is an in-memory UI hierarchy that hosts a selection cursor.
// It keeps a single focus pointer, a frame clock and a global time scale.
package scene

import (
	"errors"
	"fmt"

	"github.com/ivlev/focuscursor/internal/cursor"
	"github.com/ivlev/focuscursor/internal/geom"
)

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrDestroyed     = errors.New("node destroyed")
)

// NodeSpec describes a node to add
type NodeSpec struct {
	Name     string
	Parent   string
	Position geom.Vec3
	Rotation float64 // radians
	Scale    geom.Vec2
	Rect     *geom.Rect
	Color    *geom.Color
	Inactive bool
}

// Scene owns the nodes and implements cursor.Host
type Scene struct {
	nodes  []*Node
	byName map[string]*Node
	nextID cursor.ElementID

	focused   *Node
	timeScale float64
	delta     float64
	now       float64
	frame     int
}

// New creates an empty scene with time scale 1
func New() *Scene {
	return &Scene{
		byName:    make(map[string]*Node),
		nextID:    1,
		timeScale: 1,
	}
}

// Add inserts a node. Parents must be added before their children.
func (s *Scene) Add(spec NodeSpec) (*Node, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("node name is empty")
	}
	if _, ok := s.byName[spec.Name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, spec.Name)
	}

	var parent *Node
	if spec.Parent != "" {
		p, err := s.Node(spec.Parent)
		if err != nil {
			return nil, fmt.Errorf("parent of %s: %w", spec.Name, err)
		}
		parent = p
	}

	scale := spec.Scale
	if scale == (geom.Vec2{}) {
		scale = geom.V2(1, 1)
	}
	n := &Node{
		id:       s.nextID,
		name:     spec.Name,
		parent:   parent,
		position: spec.Position,
		rotation: spec.Rotation,
		scale:    scale,
		rect:     spec.Rect,
		color:    spec.Color,
		active:   !spec.Inactive,
	}
	s.nextID++
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	s.nodes = append(s.nodes, n)
	s.byName[n.name] = n
	return n, nil
}

// Node looks a node up by name; destroyed nodes are still found
func (s *Scene) Node(name string) (*Node, error) {
	n, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}
	return n, nil
}

// Nodes returns all nodes in insertion order, which is also draw order
func (s *Scene) Nodes() []*Node { return s.nodes }

// Focus moves input focus to the named node
func (s *Scene) Focus(name string) error {
	n, err := s.Node(name)
	if err != nil {
		return err
	}
	if n.destroyed {
		return fmt.Errorf("focus %s: %w", name, ErrDestroyed)
	}
	s.focused = n
	return nil
}

// ClearFocus drops input focus
func (s *Scene) ClearFocus() { s.focused = nil }

// Focused returns the focused node, nil when nothing has focus
func (s *Scene) Focused() *Node { return s.focused }

// FocusedElement implements cursor.Host. A destroyed node keeps being
// reported so the cursor sees a stale handle, as it would in a real UI.
func (s *Scene) FocusedElement() cursor.Element {
	if s.focused == nil {
		return nil
	}
	return s.focused
}

// SetActive toggles a node's own active flag
func (s *Scene) SetActive(name string, active bool) error {
	n, err := s.Node(name)
	if err != nil {
		return err
	}
	n.SetActive(active)
	return nil
}

// Destroy marks the node and its subtree destroyed
func (s *Scene) Destroy(name string) error {
	n, err := s.Node(name)
	if err != nil {
		return err
	}
	n.destroy()
	return nil
}

// SetTimeScale changes the global time scale; negative values are rejected
func (s *Scene) SetTimeScale(scale float64) error {
	if scale < 0 {
		return fmt.Errorf("time scale %v is negative", scale)
	}
	s.timeScale = scale
	return nil
}

// TimeScale returns the global time scale
func (s *Scene) TimeScale() float64 { return s.timeScale }

// Tick starts a new frame lasting dt unscaled seconds
func (s *Scene) Tick(dt float64) {
	s.delta = dt
	s.now += dt
	s.frame++
}

// Now is the total unscaled time ticked so far
func (s *Scene) Now() float64 { return s.now }

// Frame is the number of ticks so far
func (s *Scene) Frame() int { return s.frame }

// TickDelta implements cursor.Host
func (s *Scene) TickDelta(unscaled bool) float64 {
	if unscaled {
		return s.delta
	}
	return s.delta * s.timeScale
}
