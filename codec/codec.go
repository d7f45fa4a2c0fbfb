// Package codec reads and writes the binary PointSet and Triangles formats.
//
// Both formats are little-endian. A PointSet is a uint32 point count followed
// by that many (float32 x, float32 y) records. A Triangles payload is a
// PointSet followed by a uint32 triangle count and that many (uint32, uint32,
// uint32) vertex index records. Lengths must match the counts exactly.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/pkg/errors"
)

const (
	countSize    = 4
	pointSize    = 8
	indexSize    = 4
	triangleSize = 3 * indexSize
)

var byteOrder = binary.LittleEndian

var (
	ErrMalformedHeader = errors.New("malformed header")
	ErrSizeMismatch    = errors.New("payload size does not match declared count")
	ErrIndexOutOfRange = errors.New("triangle index out of range")
)

// Decode parses a PointSet.
func Decode(data []byte) ([]mesh.Point, error) {
	if len(data) < countSize {
		return nil, errors.Wrapf(ErrMalformedHeader, "point set is %d bytes, need at least %d", len(data), countSize)
	}
	n := byteOrder.Uint32(data)
	expected := countSize + pointSize*uint64(n)
	if uint64(len(data)) != expected {
		return nil, errors.Wrapf(ErrSizeMismatch, "%d points need %d bytes, got %d", n, expected, len(data))
	}
	return readPoints(data[countSize:], int(n)), nil
}

// DecodeTriangles parses a Triangles payload, the inverse of Encode.
func DecodeTriangles(data []byte) ([]mesh.Point, mesh.TriangleList, error) {
	if len(data) < 2*countSize {
		return nil, nil, errors.Wrapf(ErrMalformedHeader, "triangles payload is %d bytes, need at least %d", len(data), 2*countSize)
	}
	n := byteOrder.Uint32(data)
	triangleHeader := countSize + pointSize*uint64(n)
	if uint64(len(data)) < triangleHeader+countSize {
		return nil, nil, errors.Wrapf(ErrSizeMismatch, "%d points leave no room for the triangle count in %d bytes", n, len(data))
	}
	t := byteOrder.Uint32(data[triangleHeader:])
	expected := triangleHeader + countSize + triangleSize*uint64(t)
	if uint64(len(data)) != expected {
		return nil, nil, errors.Wrapf(ErrSizeMismatch, "%d points and %d triangles need %d bytes, got %d", n, t, expected, len(data))
	}

	points := readPoints(data[countSize:triangleHeader], int(n))
	triangles := make(mesh.TriangleList, t)
	offset := triangleHeader + countSize
	for i := range triangles {
		var indices [3]int
		for k := range indices {
			index := byteOrder.Uint32(data[offset:])
			if uint64(index) >= uint64(n) {
				return nil, nil, errors.Wrapf(ErrIndexOutOfRange, "triangle %d references vertex %d of %d", i, index, n)
			}
			indices[k] = int(index)
			offset += indexSize
		}
		triangles[i] = mesh.Triangle{A: indices[0], B: indices[1], C: indices[2]}
	}
	return points, triangles, nil
}

// EncodePoints writes points as a PointSet.
func EncodePoints(points []mesh.Point) []byte {
	buf := make([]byte, 0, countSize+pointSize*len(points))
	return appendPoints(buf, points)
}

// Encode writes points and triangles as a Triangles payload. Every index is
// checked before anything is written, so an error never comes with a partial
// buffer.
func Encode(points []mesh.Point, triangles []mesh.Triangle) ([]byte, error) {
	for i, tri := range triangles {
		for _, index := range tri.Indices() {
			if index < 0 || index >= len(points) {
				return nil, errors.Wrapf(ErrIndexOutOfRange, "triangle %d %s references vertex %d of %d", i, tri, index, len(points))
			}
		}
	}

	buf := make([]byte, 0, 2*countSize+pointSize*len(points)+triangleSize*len(triangles))
	buf = appendPoints(buf, points)
	buf = byteOrder.AppendUint32(buf, uint32(len(triangles)))
	for _, tri := range triangles {
		buf = byteOrder.AppendUint32(buf, uint32(tri.A))
		buf = byteOrder.AppendUint32(buf, uint32(tri.B))
		buf = byteOrder.AppendUint32(buf, uint32(tri.C))
	}
	return buf, nil
}

func appendPoints(buf []byte, points []mesh.Point) []byte {
	buf = byteOrder.AppendUint32(buf, uint32(len(points)))
	for _, p := range points {
		buf = byteOrder.AppendUint32(buf, math.Float32bits(p.X))
		buf = byteOrder.AppendUint32(buf, math.Float32bits(p.Y))
	}
	return buf
}

// Caller guarantees that data holds exactly n records.
func readPoints(data []byte, n int) []mesh.Point {
	points := make([]mesh.Point, n)
	for i := range points {
		record := data[i*pointSize:]
		points[i] = mesh.Point{
			X: math.Float32frombits(byteOrder.Uint32(record)),
			Y: math.Float32frombits(byteOrder.Uint32(record[4:])),
		}
	}
	return points
}
