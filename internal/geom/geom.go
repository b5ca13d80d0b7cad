// Package geom holds the small value types shared by the cursor, the scene and the renderer.
package geom

import "math"

// Vec2 is a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Z is only carried through for hosts that place UI in depth.
type Vec3 struct {
	X, Y, Z float64
}

// V2 builds a Vec2
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// V3 builds a Vec3
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// One3 is the identity scale
var One3 = Vec3{X: 1, Y: 1, Z: 1}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2      { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Abs() Vec2            { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

// Lerp interpolates between v and o without clamping t
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// Vec3 extends v with the given z
func (v Vec2) Vec3(z float64) Vec3 { return Vec3{v.X, v.Y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Abs() Vec3            { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// XY drops the z component
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// Lerp interpolates between v and o without clamping t
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// Lerp performs linear interpolation between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps t into [0, 1]. NaN maps to 0.
func Clamp01(t float64) float64 {
	switch {
	case t > 1:
		return 1
	case t >= 0:
		return t
	default:
		return 0
	}
}

// Rect is an element's local rectangle. X and Y are the min corner relative to the pivot.
type Rect struct {
	X, Y, W, H float64
}

// RectCentered builds a rect of the given size centered on the pivot
func RectCentered(w, h float64) Rect {
	return Rect{X: -w / 2, Y: -h / 2, W: w, H: h}
}

// Size returns (w, h)
func (r Rect) Size() Vec2 { return Vec2{r.W, r.H} }

// Center returns the rect center in local space
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Corners returns the four local corners: min, (minX,maxY), max, (maxX,minY)
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.X, r.Y + r.H},
		{r.X + r.W, r.Y + r.H},
		{r.X + r.W, r.Y},
	}
}
