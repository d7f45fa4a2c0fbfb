package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/triangulator/codec"
	"github.com/osuushi/triangulator/config"
	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOutput() (*output, *bytes.Buffer) {
	var buf bytes.Buffer
	return &output{au: aurora.NewAurora(false), w: &buf}, &buf
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestTriangulateFile(t *testing.T) {
	ui, buf := testOutput()
	in := writeFile(t, "square.txt", "0 0\n1 0\n1 1\n0 1\n")
	out := filepath.Join(t.TempDir(), "square.triangles")

	require.NoError(t, triangulateFile(ui, in, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	points, triangles, err := codec.DecodeTriangles(data)
	require.NoError(t, err)
	assert.Len(t, points, 4)
	assert.Len(t, triangles, 2)
	assert.Contains(t, buf.String(), "triangulated 4 points into 2 triangles")
}

func TestTriangulateFile_Collinear(t *testing.T) {
	ui, buf := testOutput()
	in := writeFile(t, "line.svg", `<svg xmlns="http://www.w3.org/2000/svg">
		<circle cx="0" cy="0" r="1"/><circle cx="1" cy="1" r="1"/><circle cx="2" cy="2" r="1"/>
	</svg>`)
	out := filepath.Join(t.TempDir(), "line.triangles")

	require.NoError(t, triangulateFile(ui, in, out))
	assert.Contains(t, buf.String(), "all 3 points are collinear")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 4+3*8+4)
}

func TestTriangulateFile_NonFinite(t *testing.T) {
	ui, buf := testOutput()
	nan := float32(math.NaN())
	points := []mesh.Point{{0, 0}, {nan, 1}, {4, 0}, {0, 3}}
	in := filepath.Join(t.TempDir(), "nan.pointset")
	require.NoError(t, os.WriteFile(in, codec.EncodePoints(points), 0o644))
	out := filepath.Join(t.TempDir(), "nan.triangles")

	require.NoError(t, triangulateFile(ui, in, out))
	assert.Contains(t, buf.String(), "1 points have non-finite coordinates and are left out: [1]")
	assert.Contains(t, buf.String(), "triangulated 4 points into 1 triangles")
}

func TestGenerateAndInspect(t *testing.T) {
	ui, buf := testOutput()
	path := filepath.Join(t.TempDir(), "random.pointset")
	require.NoError(t, generate(ui, 25, 10, 10, 3, path))

	points, _, isMesh, err := readPayload(path)
	require.NoError(t, err)
	assert.False(t, isMesh)
	assert.Len(t, points, 25)

	buf.Reset()
	require.NoError(t, inspect(ui, path, true))
	assert.Contains(t, buf.String(), "PointSet payload")
	assert.Contains(t, buf.String(), "mesh.Point")

	assert.Error(t, generate(ui, -1, 10, 10, 3, path))
}

func TestInspect_Triangles(t *testing.T) {
	ui, buf := testOutput()
	in := writeFile(t, "points.txt", "0 0\n4 0\n0 3\n")
	meshPath := filepath.Join(t.TempDir(), "points.triangles")
	require.NoError(t, triangulateFile(ui, in, meshPath))

	buf.Reset()
	require.NoError(t, inspect(ui, meshPath, false))
	assert.Contains(t, buf.String(), "Triangles payload")
	assert.Contains(t, buf.String(), "total area:")
}

func TestInspect_Garbage(t *testing.T) {
	ui, _ := testOutput()
	path := writeFile(t, "garbage.bin", "xyz")
	assert.Error(t, inspect(ui, path, false))
}

func TestRender(t *testing.T) {
	ui, buf := testOutput()
	in := writeFile(t, "points.txt", "0 0\n4 0\n0 3\n4 3\n")
	out := filepath.Join(t.TempDir(), "points.png")

	require.NoError(t, render(ui, config.Default().Render, in, out, false))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, buf.String(), "drew 2 triangles")
}

func TestRender_Imgcat(t *testing.T) {
	ui, buf := testOutput()
	in := writeFile(t, "points.txt", "0 0\n4 0\n0 3\n")
	out := filepath.Join(t.TempDir(), "points.png")

	require.NoError(t, render(ui, config.Default().Render, in, out, true))
	assert.Contains(t, buf.String(), "1337;File=")
}
