// Command triangulator computes Delaunay triangulations of point sets, either
// as an HTTP service or on files.
package main

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/triangulator/config"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("triangulator", "Delaunay triangulation of planar point sets.")
	configPath := app.Flag("config", "YAML config file.").Short('c').Envar("TRIANGULATOR_CONFIG").String()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()

	serveCmd := app.Command("serve", "Serve triangulations over HTTP.")
	serveAddr := serveCmd.Flag("addr", "Listen address.").Envar("TRIANGULATOR_ADDR").String()
	servePSM := serveCmd.Flag("psm-url", "Base URL of the point set manager.").Envar("PSM_BASE_URL").String()
	serveTimeout := serveCmd.Flag("fetch-timeout", "Timeout for fetching a point set.").Duration()
	serveDev := serveCmd.Flag("dev", "Human readable logs.").Bool()

	triangulateCmd := app.Command("triangulate", "Triangulate a point file into a Triangles payload.")
	triangulateIn := triangulateCmd.Arg("input", "PointSet payload, .txt points or .svg drawing; - reads text from stdin.").Required().String()
	triangulateOut := triangulateCmd.Arg("output", "Where to write the Triangles payload.").Required().String()

	genCmd := app.Command("gen", "Generate a random PointSet payload.")
	genCount := genCmd.Flag("count", "Number of points.").Short('n').Default("100").Int()
	genWidth := genCmd.Flag("width", "Width of the area the points are spread over.").Default("1000").Float64()
	genHeight := genCmd.Flag("height", "Height of the area the points are spread over.").Default("1000").Float64()
	genSeed := genCmd.Flag("seed", "Random seed.").Default("1").Int64()
	genOut := genCmd.Arg("output", "Output file. Defaults to a random name.").String()

	inspectCmd := app.Command("inspect", "Describe a PointSet or Triangles payload.")
	inspectIn := inspectCmd.Arg("input", "Payload file.").Required().ExistingFile()
	inspectDump := inspectCmd.Flag("dump", "Print every point and triangle.").Bool()

	renderCmd := app.Command("render", "Draw a triangulation as a PNG.")
	renderIn := renderCmd.Arg("input", "Triangles payload, or any input accepted by triangulate.").Required().String()
	renderOut := renderCmd.Arg("output", "PNG file to write.").Required().String()
	renderScale := renderCmd.Flag("scale", "Pixels per unit.").Float64()
	renderShow := renderCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "")
	ui := &output{au: aurora.NewAurora(!*noColor), w: os.Stdout}

	switch command {
	case serveCmd.FullCommand():
		if *serveAddr != "" {
			cfg.Server.Addr = *serveAddr
		}
		if *servePSM != "" {
			cfg.Server.PointSetManagerURL = *servePSM
		}
		if *serveTimeout > 0 {
			cfg.Server.FetchTimeout = *serveTimeout
		}
		if *serveDev {
			cfg.Server.Development = true
		}
		app.FatalIfError(cfg.Validate(), "")
		err = serve(cfg.Server)

	case triangulateCmd.FullCommand():
		err = triangulateFile(ui, *triangulateIn, *triangulateOut)

	case genCmd.FullCommand():
		err = generate(ui, *genCount, *genWidth, *genHeight, *genSeed, *genOut)

	case inspectCmd.FullCommand():
		err = inspect(ui, *inspectIn, *inspectDump)

	case renderCmd.FullCommand():
		if *renderScale > 0 {
			cfg.Render.Scale = *renderScale
		}
		app.FatalIfError(cfg.Validate(), "")
		err = render(ui, cfg.Render, *renderIn, *renderOut, *renderShow)
	}
	app.FatalIfError(err, "%s", command)
}
