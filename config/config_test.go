package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/osuushi/triangulator/internal/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.Server.FetchTimeout)
	assert.Equal(t, dbg.DefaultStyle, cfg.Render.Style())
}

func TestParse(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := Parse([]byte("server:\n  addr: \":9000\"\n  fetch_timeout: 250ms\nrender:\n  scale: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, 250*time.Millisecond, cfg.Server.FetchTimeout)
		assert.Equal(t, Default().Server.PointSetManagerURL, cfg.Server.PointSetManagerURL)
		assert.Equal(t, 4.0, cfg.Render.Scale)
		assert.Equal(t, Default().Render.Fill, cfg.Render.Fill)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("server:\n  adress: \":9000\"\n"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Parse([]byte("render:\n  scale: 0\n"))
		assert.EqualError(t, err, "render scale must be positive, got 0")

		_, err = Parse([]byte("server:\n  fetch_timeout: -1s\n"))
		assert.EqualError(t, err, "fetch_timeout must be positive, got -1s")
	})
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "triangulator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  development: true\n"), 0o600))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Server.Development)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
