package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig("test")

	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, uint64(42), cfg.Seed())
	assert.Equal(t, 4000, cfg.BetweennessSamples())
	assert.Equal(t, 5, cfg.TopK())
	assert.Equal(t, 4, cfg.Precision())
	assert.Equal(t, "betweenness", cfg.CentralityMeasure())
	assert.Equal(t, "eades", cfg.LayoutAlgorithm())
	assert.Equal(t, 50, cfg.LayoutIterations())
	assert.Equal(t, 1000, cfg.Vertices())
	assert.Equal(t, 0.5, cfg.EdgeProbability())
	assert.Equal(t, 0.1, cfg.RewireProbability())
	assert.Equal(t, 100, cfg.DiameterSamples())
	assert.Equal(t, 1000, cfg.ModelClusteringSamples())
	assert.True(t, cfg.Render())
	assert.False(t, cfg.Directed())

	rows, err := cfg.Initiator()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.9, 0.5}, {0.5, 0.3}}, rows)

	_, explicit := cfg.ModelSeed()
	assert.False(t, explicit)
}

func TestModelSeed(t *testing.T) {
	cfg := NewConfig("test")
	cfg.Set("models.seed", 7)

	seed, explicit := cfg.ModelSeed()
	assert.True(t, explicit)
	assert.Equal(t, uint64(7), seed)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netsci.yaml")
	content := `
input:
  path: edges.txt
  directed: true
betweenness:
  samples: 100
models:
  seed: 9
  initiator:
    - [1, 0.2]
    - [0.2, 0.5]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := NewConfig("test")
	require.NoError(t, cfg.LoadFromFile(path))

	assert.Equal(t, "edges.txt", cfg.InputPath())
	assert.True(t, cfg.Directed())
	assert.Equal(t, 100, cfg.BetweennessSamples())
	assert.Equal(t, 5, cfg.TopK(), "untouched keys keep defaults")

	seed, explicit := cfg.ModelSeed()
	assert.True(t, explicit)
	assert.Equal(t, uint64(9), seed)

	rows, err := cfg.Initiator()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0.2}, {0.2, 0.5}}, rows)
}

func TestLoadFromFileMissing(t *testing.T) {
	err := NewConfig("test").LoadFromFile(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("top", 5, "")
	fs.Uint64("seed", 0, "")
	require.NoError(t, fs.Parse([]string{"--top", "12"}))

	cfg := NewConfig("test")
	require.NoError(t, cfg.BindFlags(fs, map[string]string{
		"top":  "betweenness.top_k",
		"seed": "models.seed",
	}))

	assert.Equal(t, 12, cfg.TopK())
	_, explicit := cfg.ModelSeed()
	assert.False(t, explicit, "unchanged flags do not count as configured")

	err := cfg.BindFlags(fs, map[string]string{"missing": "input.path"})
	assert.Error(t, err)
}

func TestCreateLoggerWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netsci.log")
	cfg := NewConfig("test")
	cfg.Set("logging.file", path)
	cfg.Set("logging.level", "debug")

	logger := cfg.CreateLogger()
	logger.Info().Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
}
