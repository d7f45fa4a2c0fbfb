package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Relative slack for the empty circumcircle check, to absorb rounding in the
// circumcircle computation.
const circumcircleSlack = 1e-9

// Helper to check that a triangulation is valid. The rules are:
// 1. Every index is in [0, n) and no triangle repeats a vertex.
// 2. No two triangles use the same three vertices.
// 3. Every finite point is a vertex of some triangle.
// 4. No triangle has zero area.
// 5. No point lies strictly inside the circumcircle of any triangle.
func AssertValidTriangulation(t *testing.T, points []mesh.Point, triangles mesh.TriangleList) {
	t.Helper()
	n := len(points)
	require.NotEmpty(t, triangles, "triangulation of %d points is empty", n)

	for _, tri := range triangles {
		for _, i := range tri.Indices() {
			require.True(t, i >= 0 && i < n, "triangle %s has index outside [0, %d)", tri, n)
		}
		require.True(t, tri.Distinct(), "triangle %s repeats a vertex", tri)
	}

	require.Len(t, triangles.Set(), len(triangles), "triangulation has duplicate triangles")

	vertices := triangles.Vertices()
	for i := range points {
		if !points[i].IsFinite() {
			continue
		}
		_, ok := vertices[i]
		assert.True(t, ok, "point %d %v is not in any triangle", i, points[i])
	}

	tolerance := Tolerance(points)
	for _, tri := range triangles {
		a, b, c := toR2(points[tri.A]), toR2(points[tri.B]), toR2(points[tri.C])
		assert.False(t, IsCollinear(a, b, c, tolerance), "triangle %s has zero area", tri)

		circle := CircumcircleOf(a, b, c, tolerance)
		require.False(t, circle.Degenerate, "triangle %s has no circumcircle", tri)
		for i, p := range points {
			if tri.Has(i) || !p.IsFinite() {
				continue
			}
			offset := toR2(p).Sub(circle.Center)
			distSq := offset.Dot(offset)
			assert.False(t, distSq < circle.RadiusSq*(1-circumcircleSlack),
				"point %d %v is inside the circumcircle of %s", i, p, tri)
		}
	}
}
