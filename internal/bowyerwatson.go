package internal

import (
	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/pkg/errors"
)

// Incremental Delaunay triangulation after Bowyer (1981) and Watson (1981).
//
// Every input point is inserted into a working triangulation that starts out
// as a single super triangle enclosing all of the input. Inserting a point
// removes each triangle whose circumcircle contains it, which leaves a star
// shaped cavity, and fills the cavity with a fan of triangles around the new
// point. Once all points are in, triangles using a super triangle vertex are
// dropped.
//
// Each step reads the current generation of triangles without changing it and
// builds the next generation as a new list.

var ErrInsufficientPoints = errors.New("at least 3 points are required")

// Triangulate computes the Delaunay triangulation of points. The result indexes
// into points. If every point is collinear the result is empty.
//
// Points with a NaN or infinite coordinate are skipped and never appear in the
// result; NonFinite lists them. A point equal to an earlier one is usually
// skipped as well.
func Triangulate(points []mesh.Point) (mesh.TriangleList, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "got %d", len(points))
	}

	a := newArena(points)
	generation := mesh.TriangleList{a.addSuperTriangle()}
	for i, p := range points {
		if !p.IsFinite() {
			continue
		}
		generation = insertPoint(a, generation, i)
	}
	return removeAuxiliary(a, generation), nil
}

// Produce the generation that results from inserting point i into current.
func insertPoint(a *arena, current mesh.TriangleList, i int) mesh.TriangleList {
	p := a.points[i]

	bad := make([]bool, len(current))
	badCount := 0
	for j, tri := range current {
		if a.circumcircle(tri).Contains(p) {
			bad[j] = true
			badCount++
		}
	}

	// A point that coincides with an existing vertex sits on the circumcircles
	// around it rather than inside them. Usually nothing is bad then, and the
	// point is skipped.
	if badCount == 0 {
		return current
	}

	boundary := cavityBoundary(current, bad)

	next := make(mesh.TriangleList, 0, len(current)-badCount+len(boundary))
	for j, tri := range current {
		if !bad[j] {
			next = append(next, tri)
		}
	}
	for _, edge := range boundary {
		next = appendTriangle(next, mesh.Triangle{A: edge.A, B: edge.B, C: i})
	}
	return next
}

// The boundary of the union of the bad triangles is made of the edges that
// belong to exactly one of them. Edges keep the orientation they have in their
// triangle, and come out in the order the triangles are listed.
func cavityBoundary(triangles mesh.TriangleList, bad []bool) []mesh.Edge {
	counts := make(map[mesh.Edge]int)
	for j, tri := range triangles {
		if !bad[j] {
			continue
		}
		for _, edge := range tri.Edges() {
			counts[edge.Normalized()]++
		}
	}

	var boundary []mesh.Edge
	for j, tri := range triangles {
		if !bad[j] {
			continue
		}
		for _, edge := range tri.Edges() {
			if counts[edge.Normalized()] == 1 {
				boundary = append(boundary, edge)
			}
		}
	}
	return boundary
}

// Keep only the triangles made purely of input points.
func removeAuxiliary(a *arena, triangles mesh.TriangleList) mesh.TriangleList {
	result := make(mesh.TriangleList, 0, len(triangles))
	for _, tri := range triangles {
		if a.touchesAuxiliary(tri) {
			continue
		}
		result = append(result, tri)
	}
	return result
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles mesh.TriangleList, tri mesh.Triangle) mesh.TriangleList {
	if !tri.Distinct() {
		fatalf("triangle repeats a vertex: %s", tri)
	}
	return append(triangles, tri)
}
