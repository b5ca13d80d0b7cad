package geom

import "math"

// Affine is a 2D affine matrix in the usual (a b c d e f) layout:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Affine{A: 1, D: 1}

// Translate returns a translation matrix
func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, E: x, F: y}
}

// ScaleXY returns a scale matrix
func ScaleXY(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate returns a counter-clockwise rotation by rad radians
func Rotate(rad float64) Affine {
	s, c := math.Sincos(rad)
	return Affine{A: c, B: s, C: -s, D: c}
}

// TRS composes translation * rotation * scale, the order a transform hierarchy applies them in
func TRS(pos Vec2, rad float64, scale Vec2) Affine {
	return Translate(pos.X, pos.Y).Mul(Rotate(rad)).Mul(ScaleXY(scale.X, scale.Y))
}

// Mul returns m * o, i.e. o is applied first
func (m Affine) Mul(o Affine) Affine {
	return Affine{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// Apply transforms a point
func (m Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Origin is the image of the local origin, i.e. the world pivot position
func (m Affine) Origin() Vec2 { return Vec2{m.E, m.F} }

// Transform is what a host reports about an element's placement in the world
type Transform struct {
	// Position is the world position of the element pivot
	Position Vec3
	// Scale is the element's own local scale
	Scale Vec3
	// Matrix maps local rect space to world space, parents included
	Matrix Affine
}
