package easing

import (
	"errors"
	"fmt"
	"sort"
)

// Key is a keyframe of a Hermite curve
type Key struct {
	Time       float64 `yaml:"time" mapstructure:"time"`
	Value      float64 `yaml:"value" mapstructure:"value"`
	InTangent  float64 `yaml:"in" mapstructure:"in"`
	OutTangent float64 `yaml:"out" mapstructure:"out"`
}

// Curve is a piecewise cubic Hermite curve. Outside its key range it clamps to
// the first/last value.
type Curve struct {
	keys []Key
}

var errNoKeys = errors.New("curve needs at least one key")

// NewCurve sorts the keys by time and validates them
func NewCurve(keys ...Key) (*Curve, error) {
	if len(keys) == 0 {
		return nil, errNoKeys
	}
	sorted := make([]Key, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time == sorted[i-1].Time {
			return nil, fmt.Errorf("duplicate key time %.4f", sorted[i].Time)
		}
	}
	return &Curve{keys: sorted}, nil
}

// EaseInOut is the two-key curve from (t0,v0) to (t1,v1) with flat tangents
func EaseInOut(t0, v0, t1, v1 float64) *Curve {
	c, err := NewCurve(Key{Time: t0, Value: v0}, Key{Time: t1, Value: v1})
	if err != nil {
		// only possible when t0 == t1
		return &Curve{keys: []Key{{Time: t0, Value: v1}}}
	}
	return c
}

// Keys returns a copy of the keyframes
func (c *Curve) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Evaluate samples the curve at t
func (c *Curve) Evaluate(t float64) float64 {
	keys := c.keys
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}

	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t }) - 1
	k0, k1 := keys[i], keys[i+1]
	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

// Func adapts the curve to an easing Func
func (c *Curve) Func() Func {
	return c.Evaluate
}
