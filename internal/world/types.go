package world

import "math"

type Vec2 struct{ X, Y float32 }

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Norm returns the unit vector, or the zero vector when v has no length.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec2) float32 {
	return b.Sub(a).Len()
}

// RGBA is a colour multiplier in [0,1] per channel.
type RGBA struct{ R, G, B, A float32 }

var (
	White  = RGBA{1, 1, 1, 1}
	HitRed = RGBA{1, 0, 0, 1}
)

func clamp(v, lo, hi float32) float32 {
	return float32(math.Max(float64(lo), math.Min(float64(hi), float64(v))))
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
