package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/triangulator"
	"github.com/osuushi/triangulator/codec"
	"github.com/osuushi/triangulator/config"
	"github.com/osuushi/triangulator/internal/dbg"
	"github.com/osuushi/triangulator/pointsource"
	"github.com/osuushi/triangulator/psm"
	"github.com/osuushi/triangulator/server"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const shutdownGrace = 10 * time.Second

// Terminal output for the file commands.
type output struct {
	au aurora.Aurora
	w  io.Writer
}

func (o *output) okf(format string, args ...interface{}) {
	fmt.Fprintf(o.w, "%s %s\n", o.au.Green("✓"), fmt.Sprintf(format, args...))
}

func (o *output) warnf(format string, args ...interface{}) {
	fmt.Fprintf(o.w, "%s %s\n", o.au.Yellow("!"), fmt.Sprintf(format, args...))
}

func (o *output) field(name string, value interface{}) {
	fmt.Fprintf(o.w, "  %-16s %v\n", o.au.Bold(name+":"), value)
}

func (o *output) quality(q triangulator.Quality) {
	o.field("triangles", q.Triangles)
	if q.Triangles == 0 {
		return
	}
	o.field("vertices used", q.Vertices)
	o.field("total area", fmt.Sprintf("%.6g", q.TotalArea))
	o.field("triangle area", fmt.Sprintf("%.6g / %.6g / %.6g (min/mean/max)", q.MinArea, q.MeanArea, q.MaxArea))
	o.field("min angle", fmt.Sprintf("%.3f° (mean %.3f°)", q.MinAngle, q.MeanMinAngle))
}

func serve(cfg config.ServerConfig) error {
	var logger *zap.Logger
	var err error
	if cfg.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer logger.Sync()

	client := psm.NewClient(cfg.PointSetManagerURL, cfg.FetchTimeout)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(client, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.Addr),
			zap.String("point_set_manager", cfg.PointSetManagerURL),
			zap.Duration("fetch_timeout", cfg.FetchTimeout),
		)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return errors.Wrap(httpServer.Shutdown(shutdownCtx), "shutting down")
}

// Read points from a PointSet payload, a text file or an SVG file, chosen by
// extension. "-" reads text from stdin.
func readPoints(path string) ([]triangulator.Point, error) {
	if path == "-" {
		return pointsource.ReadText(os.Stdin)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return pointsource.ReadText(f)
	case ".svg":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return pointsource.ReadSVG(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return triangulator.Decode(data)
}

func triangulatePoints(ui *output, points []triangulator.Point) ([]triangulator.Triangle, error) {
	if skipped := triangulator.NonFinite(points); len(skipped) > 0 {
		ui.warnf("%d points have non-finite coordinates and are left out: %v", len(skipped), skipped)
	}
	if triangulator.Collinear(points) && len(points) >= 3 {
		ui.warnf("all %d points are collinear, the triangulation will be empty", len(points))
	}
	start := time.Now()
	triangles, err := triangulator.Triangulate(points)
	if err != nil {
		return nil, err
	}
	ui.okf("triangulated %d points into %d triangles in %s", len(points), len(triangles), time.Since(start).Round(time.Microsecond))
	return triangles, nil
}

func triangulateFile(ui *output, in, out string) error {
	points, err := readPoints(in)
	if err != nil {
		return errors.Wrapf(err, "reading %s", in)
	}
	triangles, err := triangulatePoints(ui, points)
	if err != nil {
		return err
	}
	data, err := triangulator.Encode(points, triangles)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	ui.okf("wrote %d bytes to %s", len(data), out)
	ui.quality(triangulator.Summarize(points, triangles))
	return nil
}

func generate(ui *output, count int, width, height float64, seed int64, out string) error {
	if count < 0 {
		return errors.Errorf("count must not be negative, got %d", count)
	}
	if out == "" {
		out = dbg.Name() + ".pointset"
	}
	points := pointsource.Random(count, width, height, seed)
	data := codec.EncodePoints(points)
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	ui.okf("wrote %d points to %s", count, out)
	return nil
}

// Load a Triangles payload, or failing that a PointSet payload.
func readPayload(path string) (points []triangulator.Point, triangles []triangulator.Triangle, isMesh bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, false, err
	}
	if points, triangles, err := codec.DecodeTriangles(data); err == nil {
		return points, triangles, true, nil
	}
	points, err = codec.Decode(data)
	if err != nil {
		return nil, nil, false, errors.Wrap(err, "neither a Triangles nor a PointSet payload")
	}
	return points, nil, false, nil
}

func inspect(ui *output, path string, dump bool) error {
	points, triangles, isMesh, err := readPayload(path)
	if err != nil {
		return err
	}

	kind := "PointSet"
	if isMesh {
		kind = "Triangles"
	}
	ui.okf("%s payload", kind)
	ui.field("points", len(points))
	if isMesh {
		ui.quality(triangulator.Summarize(points, triangles))
	} else if triangulator.Collinear(points) {
		ui.warnf("points are collinear")
	}

	if dump {
		pretty.Fprintf(ui.w, "%# v\n", points)
		if isMesh {
			pretty.Fprintf(ui.w, "%# v\n", triangles)
		}
	}
	return nil
}

func render(ui *output, cfg config.RenderConfig, in, out string, show bool) error {
	points, triangles, isMesh, err := readPayload(in)
	if err != nil || !isMesh {
		// Anything that is not a finished mesh gets triangulated first
		points, err = readPoints(in)
		if err != nil {
			return errors.Wrapf(err, "reading %s", in)
		}
		triangles, err = triangulatePoints(ui, points)
		if err != nil {
			return err
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := dbg.WritePNG(f, points, triangles, cfg.Style()); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding png")
	}
	if err := f.Close(); err != nil {
		return err
	}
	ui.okf("drew %d triangles to %s", len(triangles), out)

	if show {
		return dbg.Show(out, ui.w)
	}
	return nil
}
