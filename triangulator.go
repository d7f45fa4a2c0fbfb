// Delaunay triangulation of planar point sets, with the compact binary formats
// used to exchange point sets and meshes.
//
// A point set goes through three steps: Decode turns PointSet bytes into
// points, Triangulate computes the Delaunay triangles over them, and Encode
// writes the points and triangles back out as Triangles bytes. Process runs
// all three. Every step is a pure function, so concurrent calls on separate
// inputs need no coordination.
package triangulator

import (
	"github.com/osuushi/triangulator/codec"
	"github.com/osuushi/triangulator/internal"
	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/pkg/errors"
)

type Point = mesh.Point
type Triangle = mesh.Triangle
type Quality = internal.Quality

// Errors returned by this package. Test for them with errors.Is.
var (
	ErrMalformedHeader    = codec.ErrMalformedHeader
	ErrSizeMismatch       = codec.ErrSizeMismatch
	ErrIndexOutOfRange    = codec.ErrIndexOutOfRange
	ErrInsufficientPoints = internal.ErrInsufficientPoints
	// A bug in the triangulation engine, as opposed to bad input.
	ErrInternal = internal.ErrInternal
)

// Compute the Delaunay triangulation of points. The triangles index into
// points, which are not modified.
//
// At least three points are required. If all of the points lie on one line,
// no triangle can be formed and the result is empty. Points with a NaN or
// infinite coordinate are left out of the triangulation; see NonFinite.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(points)
}

// Decode a PointSet payload.
func Decode(data []byte) ([]Point, error) {
	return codec.Decode(data)
}

// Encode points and triangles as a Triangles payload.
func Encode(points []Point, triangles []Triangle) ([]byte, error) {
	return codec.Encode(points, triangles)
}

// Process triangulates a PointSet payload and returns the Triangles payload.
func Process(pointSet []byte) ([]byte, error) {
	points, err := Decode(pointSet)
	if err != nil {
		return nil, errors.WithMessage(err, "decoding point set")
	}
	triangles, err := Triangulate(points)
	if err != nil {
		return nil, errors.WithMessage(err, "triangulating")
	}
	result, err := Encode(points, triangles)
	if err != nil {
		return nil, errors.WithMessage(err, "encoding triangles")
	}
	return result, nil
}

// Collinear reports whether points cannot form any triangle, in which case
// Triangulate returns an empty result.
func Collinear(points []Point) bool {
	return internal.AllCollinear(points)
}

// NonFinite returns the indices of points with a NaN or infinite coordinate,
// which Triangulate skips.
func NonFinite(points []Point) []int {
	return internal.NonFinite(points)
}

// Summarize measures the shape of a triangulation.
func Summarize(points []Point, triangles []Triangle) Quality {
	return internal.MeasureQuality(points, triangles)
}
