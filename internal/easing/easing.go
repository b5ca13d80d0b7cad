// Package easing maps normalized transition time to blend progress.
package easing

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Func defines how transition progress maps to blend progress.
// Input t is 0-1 (time progress), output is nominally 0-1 but may overshoot.
type Func func(t float64) float64

// Common easing functions
var (
	// Linear - constant speed
	Linear Func = func(t float64) float64 { return t }

	// InQuad - accelerate from zero
	InQuad Func = func(t float64) float64 { return t * t }

	// OutQuad - decelerate to zero
	OutQuad Func = func(t float64) float64 { return t * (2 - t) }

	// InOutQuad - accelerate then decelerate
	InOutQuad Func = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}

	// OutCubic - smooth deceleration
	OutCubic Func = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// InOutCubic - smooth acceleration and deceleration
	InOutCubic Func = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}

	// SmoothStep - 3t²-2t³, the two-key ease-in-out curve with flat tangents
	SmoothStep Func = func(t float64) float64 { return t * t * (3 - 2*t) }

	// OutBack - slight overshoot then settle
	OutBack Func = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}

	// OutElastic - elastic wobble
	OutElastic Func = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		c4 := (2 * math.Pi) / 3
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	}

	// OutBounce - bouncing ball
	OutBounce Func = func(t float64) float64 {
		n1 := 7.5625
		d1 := 2.75
		switch {
		case t < 1/d1:
			return n1 * t * t
		case t < 2/d1:
			t -= 1.5 / d1
			return n1*t*t + 0.75
		case t < 2.5/d1:
			t -= 2.25 / d1
			return n1*t*t + 0.9375
		default:
			t -= 2.625 / d1
			return n1*t*t + 0.984375
		}
	}
)

var named = map[string]Func{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"smoothstep":   SmoothStep,
	"ease-in-out":  SmoothStep,
	"out-back":     OutBack,
	"out-elastic":  OutElastic,
	"out-bounce":   OutBounce,
}

// Lookup returns the named easing function. Names are case-insensitive and
// accept '_' in place of '-'.
func Lookup(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return SmoothStep, nil
	}
	fn, ok := named[key]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// Names lists the registered easing names in sorted order
func Names() []string {
	names := make([]string, 0, len(named))
	for n := range named {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
