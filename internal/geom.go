package internal

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/triangulator/internal/mesh"
)

// Determinants are compared against Epsilon times the squared size of the
// point set, so the same shapes count as degenerate at any scale.
const Epsilon = 1e-9

// How far the super triangle reaches beyond the bounding box, in multiples of
// the larger bounding box side.
const superTriangleReach = 20

func toR2(p mesh.Point) r2.Point {
	return r2.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Twice the signed area of abc. Positive when the triangle winds
// counterclockwise.
func determinant(a, b, c r2.Point) float64 {
	return a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)
}

// Bounding box of the finite points. Empty input gives a zero sized box at the
// origin.
func finiteBounds(points []mesh.Point) r2.Rect {
	finite := make([]r2.Point, 0, len(points))
	for _, p := range points {
		if p.IsFinite() {
			finite = append(finite, toR2(p))
		}
	}
	if len(finite) == 0 {
		return r2.Rect{}
	}
	return r2.RectFromPoints(finite...)
}

// The larger side of bounds, or 1 when every point coincides.
func extent(bounds r2.Rect) float64 {
	size := bounds.Size()
	delta := math.Max(size.X, size.Y)
	if delta <= 0 {
		return 1
	}
	return delta
}

// Tolerance is the determinant magnitude below which three points of this set
// are treated as collinear.
func Tolerance(points []mesh.Point) float64 {
	delta := extent(finiteBounds(points))
	return Epsilon * delta * delta
}

func IsCollinear(a, b, c r2.Point, tolerance float64) bool {
	return math.Abs(determinant(a, b, c)) < tolerance
}

// AllCollinear reports whether no three finite points of the set span a
// triangle. Sets with fewer than three such points are trivially collinear.
func AllCollinear(points []mesh.Point) bool {
	tolerance := Tolerance(points)
	var anchors []r2.Point
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		q := toR2(p)
		switch {
		case len(anchors) == 0:
			anchors = append(anchors, q)
		case len(anchors) == 1:
			// The line needs a second point distinct from the first
			if q != anchors[0] {
				anchors = append(anchors, q)
			}
		case !IsCollinear(anchors[0], anchors[1], q, tolerance):
			return false
		}
	}
	return true
}

// NonFinite returns the indices of points with a NaN or infinite coordinate.
// Triangulate leaves them out.
func NonFinite(points []mesh.Point) []int {
	var indices []int
	for i, p := range points {
		if !p.IsFinite() {
			indices = append(indices, i)
		}
	}
	return indices
}

// An arena holds every vertex of one triangulation run. The input points come
// first, so their indices are unchanged, followed by the auxiliary vertices of
// the super triangle. The arena only grows, and only during bootstrap.
type arena struct {
	points []r2.Point
	// Number of input points. Any index >= n is auxiliary.
	n int
	// Bounding box of the finite input points
	box r2.Rect
	// Degeneracy threshold for circumcircles, scaled to box
	tolerance float64
}

func newArena(points []mesh.Point) *arena {
	box := finiteBounds(points)
	delta := extent(box)
	a := &arena{
		points:    make([]r2.Point, len(points), len(points)+3),
		n:         len(points),
		box:       box,
		tolerance: Epsilon * delta * delta,
	}
	for i, p := range points {
		a.points[i] = toR2(p)
	}
	return a
}

// Non-finite inputs are left out, since they are never inserted.
func (a *arena) bounds() r2.Rect {
	return a.box
}

// Append the three vertices of a triangle enclosing every input point, and
// return it.
func (a *arena) addSuperTriangle() mesh.Triangle {
	if len(a.points) != a.n {
		fatalf("super triangle added twice")
	}
	bounds := a.bounds()
	delta := extent(bounds)
	mid := bounds.Center()

	a.points = append(a.points,
		r2.Point{X: mid.X - superTriangleReach*delta, Y: mid.Y - delta},
		r2.Point{X: mid.X + superTriangleReach*delta, Y: mid.Y - delta},
		r2.Point{X: mid.X, Y: mid.Y + superTriangleReach*delta},
	)
	return mesh.Triangle{A: a.n, B: a.n + 1, C: a.n + 2}
}

func (a *arena) isAuxiliary(i int) bool {
	return i >= a.n
}

func (a *arena) touchesAuxiliary(t mesh.Triangle) bool {
	return a.isAuxiliary(t.A) || a.isAuxiliary(t.B) || a.isAuxiliary(t.C)
}

func (a *arena) circumcircle(t mesh.Triangle) Circumcircle {
	return CircumcircleOf(a.points[t.A], a.points[t.B], a.points[t.C], a.tolerance)
}
