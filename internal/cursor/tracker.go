package cursor

// TransitionState is the focus bookkeeping carried between ticks
type TransitionState struct {
	// Previous is the element being tweened away from; nil when no transition runs
	Previous Element
	// Current is the tracked focus target; nil when nothing is focused
	Current Element
	// Elapsed is the time spent in the running transition, in seconds
	Elapsed float64
}

// Transitioning reports whether a tween is in flight
func (s TransitionState) Transitioning() bool { return s.Previous != nil }

// Empty reports whether nothing is tracked
func (s TransitionState) Empty() bool {
	return s.Previous == nil && s.Current == nil && s.Elapsed == 0
}

type tracker struct {
	state    TransitionState
	duration float64
}

// observe folds this tick's focused handle into the state.
// It returns false when there is nothing to show.
func (t *tracker) observe(focused Element) bool {
	switch {
	case !usable(focused):
		t.reset()
		return false
	case t.state.Current == nil:
		t.state = TransitionState{Current: focused}
	case !sameElement(t.state.Current, focused):
		// a new transition replaces any running one
		t.state = TransitionState{Previous: t.state.Current, Current: focused}
	}
	return true
}

// advance moves a running transition forward by dt.
// It returns true on the tick the transition completes.
func (t *tracker) advance(dt float64) bool {
	if t.state.Previous == nil {
		return false
	}
	if dt > 0 {
		t.state.Elapsed += dt
	}
	if t.state.Elapsed >= t.duration {
		t.state.Previous = nil
		t.state.Elapsed = 0
		return true
	}
	return false
}

func (t *tracker) reset() {
	t.state = TransitionState{}
}
