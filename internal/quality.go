package internal

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/triangulator/internal/mesh"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quality summarizes the shape of a triangulation. Angles are in degrees.
type Quality struct {
	Triangles int
	Vertices  int

	TotalArea float64
	MinArea   float64
	MaxArea   float64
	MeanArea  float64

	// Smallest interior angle of any triangle, and the mean over triangles of
	// each one's smallest angle.
	MinAngle     float64
	MeanMinAngle float64
}

// Area of a triangle, always non-negative.
func Area(a, b, c r2.Point) float64 {
	return math.Abs(determinant(a, b, c)) / 2
}

// Interior angle at vertex a.
func angleAt(a, b, c r2.Point) float64 {
	u := b.Sub(a)
	v := c.Sub(a)
	return math.Atan2(math.Abs(u.Cross(v)), u.Dot(v)) * 180 / math.Pi
}

// MeasureQuality computes statistics over triangles, which must index into
// points. An empty list yields a zero Quality.
func MeasureQuality(points []mesh.Point, triangles mesh.TriangleList) Quality {
	if len(triangles) == 0 {
		return Quality{}
	}

	areas := make([]float64, len(triangles))
	minAngles := make([]float64, len(triangles))
	for i, tri := range triangles {
		a, b, c := toR2(points[tri.A]), toR2(points[tri.B]), toR2(points[tri.C])
		areas[i] = Area(a, b, c)
		minAngles[i] = math.Min(angleAt(a, b, c), math.Min(angleAt(b, c, a), angleAt(c, a, b)))
	}

	return Quality{
		Triangles:    len(triangles),
		Vertices:     len(triangles.Vertices()),
		TotalArea:    floats.Sum(areas),
		MinArea:      floats.Min(areas),
		MaxArea:      floats.Max(areas),
		MeanArea:     stat.Mean(areas, nil),
		MinAngle:     floats.Min(minAngles),
		MeanMinAngle: stat.Mean(minAngles, nil),
	}
}
