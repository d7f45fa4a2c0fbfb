// Package pointsource builds point sets from human friendly inputs: plain text,
// SVG drawings and seeded random generators.
package pointsource

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/pkg/errors"
)

// ReadText reads newline separated points in the form "x y". Blank lines and
// lines starting with # are ignored. Commas may be used in place of spaces.
func ReadText(in io.Reader) ([]mesh.Point, error) {
	points := []mesh.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(strings.Fields(strings.ReplaceAll(line, ",", " ")))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// ReadSVG collects the centers of <circle> elements followed by the vertices of
// <polygon> elements, each in document order. This is not a full SVG parser:
// transforms and units are ignored.
func ReadSVG(in io.Reader) ([]mesh.Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []mesh.Point{}
	for _, circle := range root.FindAll("circle") {
		point, err := parsePoint([]string{circle.Attributes["cx"], circle.Attributes["cy"]})
		if err != nil {
			return nil, errors.Wrapf(err, "circle %q", circle.Attributes["id"])
		}
		points = append(points, point)
	}

	for _, polygon := range root.FindAll("polygon") {
		for _, pair := range strings.Fields(polygon.Attributes["points"]) {
			point, err := parsePoint(strings.Split(pair, ","))
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %q", polygon.Attributes["id"])
			}
			points = append(points, point)
		}
	}
	return points, nil
}

// Random returns n points spread uniformly over [0, width) x [0, height). The
// same seed always produces the same points.
func Random(n int, width, height float64, seed int64) []mesh.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]mesh.Point, n)
	for i := range points {
		points[i] = mesh.Point{
			X: float32(rng.Float64() * width),
			Y: float32(rng.Float64() * height),
		}
	}
	return points
}

// Grid returns a columns x rows lattice with the given spacing, each point
// moved by up to jitter in both directions. Points never coincide as long as
// jitter is less than half the spacing.
func Grid(columns, rows int, spacing, jitter float64, seed int64) []mesh.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]mesh.Point, 0, columns*rows)
	for i := 0; i < columns; i++ {
		for j := 0; j < rows; j++ {
			points = append(points, mesh.Point{
				X: float32(float64(i)*spacing + (rng.Float64()*2-1)*jitter),
				Y: float32(float64(j)*spacing + (rng.Float64()*2-1)*jitter),
			})
		}
	}
	return points
}

func parsePoint(fields []string) (mesh.Point, error) {
	if len(fields) != 2 {
		return mesh.Point{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return mesh.Point{}, errors.Wrapf(err, "invalid x value %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return mesh.Point{}, errors.Wrapf(err, "invalid y value %q", fields[1])
	}
	return mesh.Point{X: float32(x), Y: float32(y)}, nil
}
