package mesh

import (
	"fmt"
	"math"
)

// Point is a vertex of a point set. Coordinates are single precision because
// that is what the wire format carries; geometry is computed in float64.
type Point struct {
	X float32
	Y float32
}

// Triangles refer to their vertices by position in the point set they were
// built from, never by value. Two triangles are the same triangle if they use
// the same three indices in any order, so compare them with Key().
type Triangle struct {
	A, B, C int
}

// Edge is a pair of vertex indices. Edges are unordered; use Normalized() before
// using one as a map key.
type Edge struct {
	A, B int
}

// IsFinite reports whether neither coordinate is NaN or infinite.
func (p Point) IsFinite() bool {
	for _, v := range [2]float64{float64(p.X), float64(p.Y)} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type TriangleList []Triangle

type TriangleKey [3]int

func (t Triangle) String() string {
	return fmt.Sprintf("(%d %d %d)", t.A, t.B, t.C)
}

// Key returns the indices in ascending order.
func (t Triangle) Key() TriangleKey {
	a, b, c := t.A, t.B, t.C
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return TriangleKey{a, b, c}
}

func (t Triangle) Indices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// Edges in winding order: AB, BC, CA.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) Has(i int) bool {
	return t.A == i || t.B == i || t.C == i
}

// Distinct reports whether the three indices are pairwise different.
func (t Triangle) Distinct() bool {
	return t.A != t.B && t.B != t.C && t.C != t.A
}

func (e Edge) Normalized() Edge {
	if e.A > e.B {
		return Edge{e.B, e.A}
	}
	return e
}

// Set of triangles keyed by their unordered indices. Used wherever duplicate
// detection matters.
type TriangleSet map[TriangleKey]struct{}

func (list TriangleList) Set() TriangleSet {
	set := make(TriangleSet, len(list))
	for _, t := range list {
		set[t.Key()] = struct{}{}
	}
	return set
}

// Indices used by any triangle in the list.
func (list TriangleList) Vertices() map[int]struct{} {
	vertices := make(map[int]struct{})
	for _, t := range list {
		for _, i := range t.Indices() {
			vertices[i] = struct{}{}
		}
	}
	return vertices
}
