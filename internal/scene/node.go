package scene

import (
	"github.com/ivlev/focuscursor/internal/cursor"
	"github.com/ivlev/focuscursor/internal/geom"
)

// Node is an element of the scene hierarchy. Its placement is relative to its parent.
type Node struct {
	id       cursor.ElementID
	name     string
	parent   *Node
	children []*Node

	position geom.Vec3
	rotation float64 // radians, counter-clockwise
	scale    geom.Vec2
	rect     *geom.Rect
	color    *geom.Color

	active    bool
	destroyed bool
}

// ID implements cursor.Element
func (n *Node) ID() cursor.ElementID { return n.id }

// Name is the scenario identifier of the node
func (n *Node) Name() string { return n.name }

// Parent returns the parent node or nil for roots
func (n *Node) Parent() *Node { return n.parent }

// Active is true when the node and all its ancestors are active and not destroyed
func (n *Node) Active() bool {
	for p := n; p != nil; p = p.parent {
		if !p.active || p.destroyed {
			return false
		}
	}
	return true
}

// Destroyed reports whether Destroy removed the node
func (n *Node) Destroyed() bool { return n.destroyed }

// Rect implements cursor.Element
func (n *Node) Rect() (geom.Rect, bool) {
	if n.rect == nil {
		return geom.Rect{}, false
	}
	return *n.rect, true
}

// HighlightColor implements cursor.Highlighter
func (n *Node) HighlightColor() (geom.Color, bool) {
	if n.color == nil {
		return geom.Color{}, false
	}
	return *n.color, true
}

// Transform implements cursor.Element. Scale is the node's own scale;
// the matrix folds in every ancestor.
func (n *Node) Transform() geom.Transform {
	m := n.World()
	z := 0.0
	for p := n; p != nil; p = p.parent {
		z += p.position.Z
	}
	return geom.Transform{
		Position: m.Origin().Vec3(z),
		Scale:    n.scale.Vec3(1),
		Matrix:   m,
	}
}

// World returns the local-to-world matrix
func (n *Node) World() geom.Affine {
	local := geom.TRS(n.position.XY(), n.rotation, n.scale)
	if n.parent == nil {
		return local
	}
	return n.parent.World().Mul(local)
}

// SetPosition moves the node relative to its parent
func (n *Node) SetPosition(p geom.Vec3) { n.position = p }

// SetRotation sets the local rotation in radians
func (n *Node) SetRotation(rad float64) { n.rotation = rad }

// SetScale sets the local scale
func (n *Node) SetScale(s geom.Vec2) { n.scale = s }

// SetActive toggles the node's own active flag
func (n *Node) SetActive(active bool) { n.active = active }

// SetColor overrides the cursor color while the node is focused; nil clears it
func (n *Node) SetColor(c *geom.Color) { n.color = c }

func (n *Node) destroy() {
	n.destroyed = true
	for _, c := range n.children {
		c.destroy()
	}
}
