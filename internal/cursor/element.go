// Package cursor animates a selection cursor that follows the focused UI element.
//
// The host calls Advance (or Step) once per frame. Each tick the cursor reads
// the host's focus pointer, detects focus changes and tweens its own position,
// size, scale and color from the previously focused element to the new one.
// A Cursor is owned by a single goroutine; independent cursors share nothing.
package cursor

import "github.com/ivlev/focuscursor/internal/geom"

// ElementID identifies an element across ticks
type ElementID uint64

// Element is a non-owning handle to a host UI element. Handles may outlive
// the element they point to; the host reports that through Active.
type Element interface {
	// ID is the identity token used to detect focus changes
	ID() ElementID
	// Active reports whether the element is alive and placed in the visible hierarchy
	Active() bool
	// Rect returns the local rectangle; false when the element has no rect capability
	Rect() (geom.Rect, bool)
	// Transform returns the element's current world placement
	Transform() geom.Transform
}

// Highlighter is implemented by elements that override the cursor color while focused
type Highlighter interface {
	HighlightColor() (geom.Color, bool)
}

// Host is the UI framework side of the contract
type Host interface {
	// FocusedElement returns the element holding input focus, or nil
	FocusedElement() Element
	// TickDelta returns the frame duration in seconds, unscaled or scaled by the host time scale
	TickDelta(unscaled bool) float64
}

// usable reports whether a focused handle can be tracked this tick
func usable(e Element) bool {
	if e == nil || !e.Active() {
		return false
	}
	_, ok := e.Rect()
	return ok
}

func sameElement(a, b Element) bool {
	return a != nil && b != nil && a.ID() == b.ID()
}
