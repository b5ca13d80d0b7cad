package easing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			fn, err := Lookup(name)
			require.NoError(t, err)
			assert.InDelta(t, 0, fn(0), 1e-9)
			assert.InDelta(t, 1, fn(1), 1e-9)
		})
	}
}

func TestMonotonicCurves(t *testing.T) {
	monotonic := []string{"linear", "in-quad", "out-quad", "in-out-quad", "out-cubic", "in-out-cubic", "smoothstep"}
	for _, name := range monotonic {
		fn, err := Lookup(name)
		require.NoError(t, err)

		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "%s not monotonic at step %d", name, i)
			prev = v
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"linear", false},
		{"In_Out_Cubic", false},
		{"", false}, // default
		{"wobble", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Lookup(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, fn)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, fn)
		})
	}
}

func TestEaseInOutMatchesSmoothStep(t *testing.T) {
	c := EaseInOut(0, 0, 1, 1)
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		assert.InDelta(t, SmoothStep(x), c.Evaluate(x), 1e-12, "t=%.2f", x)
	}
	assert.Equal(t, 0.0, c.Evaluate(-1))
	assert.Equal(t, 1.0, c.Evaluate(2))
}

func TestCurveMultiKey(t *testing.T) {
	c, err := NewCurve(
		Key{Time: 1, Value: 1, InTangent: 1},
		Key{Time: 0, Value: 0, OutTangent: 1},
		Key{Time: 0.5, Value: 0.5, InTangent: 1, OutTangent: 1},
	)
	require.NoError(t, err)

	// every tangent matches the straight line, so the curve is linear
	for _, x := range []float64{0.1, 0.25, 0.5, 0.6, 0.9} {
		assert.InDelta(t, x, c.Evaluate(x), 1e-9)
	}
	assert.Len(t, c.Keys(), 3)
	assert.Equal(t, 0.0, c.Keys()[0].Time)
}

func TestNewCurveErrors(t *testing.T) {
	_, err := NewCurve()
	assert.ErrorIs(t, err, errNoKeys)

	_, err = NewCurve(Key{Time: 0.5}, Key{Time: 0.5, Value: 1})
	assert.Error(t, err)
}
