package internal

import (
	"embed"
	"log"

	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/osuushi/triangulator/pointsource"
)

// Fixtures are SVG drawings in the fixtures/ directory, available by name sans
// extension. Every <circle> center is a point, followed by the vertices of every
// <polygon>. If anything goes wrong, the test binary exits.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []mesh.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := pointsource.ReadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

// Some ad hoc point sets

func UnitSquare() []mesh.Point {
	return []mesh.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func RightTriangle() []mesh.Point {
	return []mesh.Point{{0, 0}, {1, 0}, {0, 1}}
}

func Diagonal() []mesh.Point {
	return []mesh.Point{{0, 0}, {1, 1}, {2, 2}}
}

// Scaled multiplies every coordinate by factor.
func Scaled(points []mesh.Point, factor float32) []mesh.Point {
	scaled := make([]mesh.Point, len(points))
	for i, p := range points {
		scaled[i] = mesh.Point{X: p.X * factor, Y: p.Y * factor}
	}
	return scaled
}

// Points on a jittered lattice. They are well separated, so the triangulation
// is unique and every point ends up in it.
func JitteredGrid(columns, rows int, seed int64) []mesh.Point {
	return pointsource.Grid(columns, rows, 10, 2.5, seed)
}
