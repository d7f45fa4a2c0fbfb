package internal

import (
	"math"

	"github.com/golang/geo/r2"
)

// Circumcircle is the circle through the three vertices of a triangle. When the
// vertices are (nearly) collinear there is no such circle: the result is then
// Degenerate and Center and RadiusSq are meaningless.
//
// "Nearly" is decided by the tolerance passed to CircumcircleOf, which should
// come from Tolerance for the point set the vertices belong to.
type Circumcircle struct {
	Degenerate bool
	Center     r2.Point
	RadiusSq   float64
}

func CircumcircleOf(a, b, c r2.Point, tolerance float64) Circumcircle {
	d := 2 * determinant(a, b, c)
	if math.Abs(d) < tolerance {
		return Circumcircle{Degenerate: true}
	}

	aa := a.Dot(a)
	bb := b.Dot(b)
	cc := c.Dot(c)
	center := r2.Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	offset := a.Sub(center)
	return Circumcircle{
		Center:   center,
		RadiusSq: offset.Dot(offset),
	}
}

// Contains reports whether p lies strictly inside the circle. A degenerate
// circle has an unbounded radius, so it contains every point.
func (c Circumcircle) Contains(p r2.Point) bool {
	if c.Degenerate {
		return true
	}
	offset := p.Sub(c.Center)
	return offset.Dot(offset) < c.RadiusSq
}
