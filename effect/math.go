package effect

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a point or offset in one of the normalized pipeline spaces.
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(w Vec2) Vec2 {
	v.X += w.X
	v.Y += w.Y
	return v
}

func (v Vec2) Sub(w Vec2) Vec2 {
	v.X -= w.X
	v.Y -= w.Y
	return v
}

func (v Vec2) Scale(s float64) Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// Smoothstep is the GLSL smoothstep. edge0 may be greater than edge1,
// which gives a falling curve. Equal edges act as a hard step at edge0.
func Smoothstep[F constraints.Float](edge0, edge1, x F) F {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// modInt is a modulo that stays positive for negative n.
func modInt(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
