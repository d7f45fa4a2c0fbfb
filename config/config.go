// Package config loads the optional YAML settings file shared by the server and
// the command line tool. Every field has a default, so an absent file or a
// partial one is fine.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/osuushi/triangulator/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Render RenderConfig `yaml:"render"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// Base URL of the point set manager, without a trailing slash
	PointSetManagerURL string        `yaml:"point_set_manager_url"`
	FetchTimeout       time.Duration `yaml:"fetch_timeout"`
	// Human readable console logs instead of JSON
	Development bool `yaml:"development"`
}

type RenderConfig struct {
	Scale       float64 `yaml:"scale"`
	Padding     float64 `yaml:"padding"`
	LineWidth   float64 `yaml:"line_width"`
	PointRadius float64 `yaml:"point_radius"`
	Background  string  `yaml:"background"`
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	Vertex      string  `yaml:"vertex"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:               ":8080",
			PointSetManagerURL: "http://point-set-manager-service:8080",
			FetchTimeout:       5 * time.Second,
		},
		Render: RenderConfig{
			Scale:       dbg.DefaultStyle.Scale,
			Padding:     dbg.DefaultStyle.Padding,
			LineWidth:   dbg.DefaultStyle.LineWidth,
			PointRadius: dbg.DefaultStyle.PointRadius,
			Background:  dbg.DefaultStyle.Background,
			Fill:        dbg.DefaultStyle.Fill,
			Stroke:      dbg.DefaultStyle.Stroke,
			Vertex:      dbg.DefaultStyle.Vertex,
		},
	}
}

// Load reads a config file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Server.FetchTimeout <= 0 {
		return errors.Errorf("fetch_timeout must be positive, got %s", c.Server.FetchTimeout)
	}
	if c.Render.Scale <= 0 {
		return errors.Errorf("render scale must be positive, got %g", c.Render.Scale)
	}
	if c.Render.Padding < 0 {
		return errors.Errorf("render padding must not be negative, got %g", c.Render.Padding)
	}
	return nil
}

// Style converts the render settings for the mesh drawing code.
func (r RenderConfig) Style() dbg.Style {
	return dbg.Style{
		Scale:       r.Scale,
		Padding:     r.Padding,
		LineWidth:   r.LineWidth,
		PointRadius: r.PointRadius,
		Background:  r.Background,
		Fill:        r.Fill,
		Stroke:      r.Stroke,
		Vertex:      r.Vertex,
	}
}
