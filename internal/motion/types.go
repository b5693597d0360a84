package motion

import "math"

// Vec is a 2D point or vector in pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dot(o Vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec) Len() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v Vec) IsValid() bool       { return !math.IsNaN(v.X+v.Y) && !math.IsInf(v.X+v.Y, 0) }
func (v Vec) Reflect(n Vec) Vec   { return v.Sub(n.Scale(2 * v.Dot(n))) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }

// Size is a viewport extent in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned box given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFrom builds a Rect from a top-left corner and a size.
func RectFrom(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Closest returns the point of r nearest to p.
func (r Rect) Closest(p Vec) Vec {
	return Vec{Clamp(p.X, r.Left, r.Right), Clamp(p.Y, r.Top, r.Bottom)}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
