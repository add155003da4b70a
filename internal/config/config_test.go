package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/drills/internal/config"
	"github.com/aretw0/drills/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "custom.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingExplicitDefaultName(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load(filepath.Join(t.TempDir(), config.DefaultFile))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "drills.yaml", `
log_level: debug
log_format: json
output: markdown
color: false
metrics: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel:  "debug",
		LogFormat: "json",
		Output:    "markdown",
		Color:     false,
		Metrics:   true,
	}, cfg)
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.json", `{"output": "yaml", "metrics": true}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Metrics)
	assert.Equal(t, "off", cfg.LogLevel)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "drills.yaml", "")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "drills.yaml", "output: json\n")
	t.Setenv("DRILLS_OUTPUT", "yaml")
	t.Setenv("DRILLS_METRICS", "1")
	t.Setenv("DRILLS_COLOR", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.True(t, cfg.Metrics)
	assert.False(t, cfg.Color)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"Unknown Output":    "output: html\n",
		"Unknown Key":       "colour: true\n",
		"Unknown Log Level": "log_level: chatty\n",
		"Unknown Format":    "log_format: xml\n",
		"Bad Type":          "metrics: [1, 2]\n",
		"Bad YAML":          "output: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "drills.yaml", content)
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadPolygon(t *testing.T) {
	dir := t.TempDir()

	yamlPath := writeFile(t, dir, "square.yaml", `
points:
  - {x: 0, y: 0}
  - {x: 10, y: 0}
  - {x: 10, y: 10}
  - {x: 0, y: 10}
`)
	points, err := config.LoadPolygon(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, points)

	jsonPath := writeFile(t, dir, "tri.json", `{"points": [{"x": 0, "y": 0}, {"x": 4, "y": 0}, {"x": 0, "y": 3.5}]}`)
	points, err = config.LoadPolygon(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []geometry.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3.5}}, points)

	_, err = config.LoadPolygon(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
