package dbg

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/triangulator/internal/mesh"
	"github.com/pkg/errors"
)

// Style controls how a mesh is drawn. Colors are hex strings as accepted by
// gg, e.g. "#00ffff".
type Style struct {
	// Pixels per unit of the point coordinates
	Scale float64
	// Pixels of empty space around the mesh
	Padding     float64
	LineWidth   float64
	PointRadius float64

	Background string
	Fill       string
	Stroke     string
	Vertex     string
}

var DefaultStyle = Style{
	Scale:       1,
	Padding:     20,
	LineWidth:   1,
	PointRadius: 2,
	Background:  "#000000",
	Fill:        "#008000",
	Stroke:      "#00ffff",
	Vertex:      "#ff4040",
}

// MaxImageSize caps the width and height of a drawing in pixels. A mesh that
// would come out larger is scaled down to fit.
const MaxImageSize = 4096

var ErrNonFinite = errors.New("triangle has a non-finite vertex")

// DrawMesh draws the triangles and then every finite point, including points
// no triangle uses. The origin is at the bottom left.
func DrawMesh(points []mesh.Point, triangles []mesh.Triangle, style Style) (*gg.Context, error) {
	for i, tri := range triangles {
		for _, index := range tri.Indices() {
			if index < 0 || index >= len(points) {
				return nil, errors.Errorf("triangle %d %s references vertex %d of %d", i, tri, index, len(points))
			}
			if !points[index].IsFinite() {
				return nil, errors.Wrapf(ErrNonFinite, "triangle %d %s, vertex %d", i, tri, index)
			}
		}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Shrink padding, then scale, until the image fits
	padding := math.Min(style.Padding, MaxImageSize/4)
	scale := style.Scale
	span := math.Max(maxX-minX, maxY-minY)
	if room := MaxImageSize - 1 - 2*padding; span*scale > room {
		scale = room / span
	}

	// Set up the context
	width := int(scale*(maxX-minX)+2*padding) + 1
	height := int(scale*(maxY-minY)+2*padding) + 1
	c := gg.NewContext(width, height)
	c.SetHexColor(style.Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Line widths and radii are in pixels, not point units
	c.SetLineWidth(style.LineWidth)
	for _, tri := range triangles {
		p, q, r := points[tri.A], points[tri.B], points[tri.C]
		c.MoveTo(float64(p.X), float64(p.Y))
		c.LineTo(float64(q.X), float64(q.Y))
		c.LineTo(float64(r.X), float64(r.Y))
		c.ClosePath()
	}
	c.SetHexColor(style.Fill)
	c.FillPreserve()
	c.SetHexColor(style.Stroke)
	c.Stroke()

	c.SetHexColor(style.Vertex)
	for _, p := range points {
		if !p.IsFinite() {
			continue
		}
		c.DrawCircle(float64(p.X), float64(p.Y), style.PointRadius/scale)
		c.Fill()
	}
	return c, nil
}

// WritePNG draws a mesh and encodes it to w.
func WritePNG(w io.Writer, points []mesh.Point, triangles []mesh.Triangle, style Style) error {
	c, err := DrawMesh(points, triangles, style)
	if err != nil {
		return err
	}
	return c.EncodePNG(w)
}

// Show prints a PNG file inline (iTerm only).
func Show(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}
