package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config manages tool configuration using Viper
type Config struct {
	v       *viper.Viper
	service string
}

// NewConfig creates a new configuration with defaults shared by every tool.
// Tool specific defaults (input and output paths) are layered on with SetDefault.
func NewConfig(service string) *Config {
	v := viper.New()

	// Logging parameters
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	// Input parameters
	v.SetDefault("input.path", "")
	v.SetDefault("input.directed", false)
	v.SetDefault("input.comment_prefix", "")

	// Output parameters
	v.SetDefault("output.image_path", "")
	v.SetDefault("output.render", true)
	v.SetDefault("output.width_cm", 30.0)
	v.SetDefault("output.height_cm", 20.0)

	// Metric parameters
	v.SetDefault("algorithm.seed", 42)
	v.SetDefault("clustering.samples", 0)
	v.SetDefault("betweenness.samples", 4000)
	v.SetDefault("betweenness.top_k", 5)
	v.SetDefault("betweenness.precision", 4)
	v.SetDefault("centrality.measure", "betweenness")
	v.SetDefault("centrality.damping", 0.85)
	v.SetDefault("centrality.tolerance", 1e-6)

	// Layout parameters
	v.SetDefault("layout.algorithm", "eades")
	v.SetDefault("layout.iterations", 50)
	v.SetDefault("layout.repulsion", 1.0)
	v.SetDefault("layout.rate", 0.05)
	v.SetDefault("layout.theta", 0.2)
	v.SetDefault("layout.max_distance", 10.0)

	// Random graph model parameters
	v.SetDefault("models.vertices", 1000)
	v.SetDefault("models.er_probability", 0.5)
	v.SetDefault("models.rewire_probability", 0.1)
	v.SetDefault("models.small_world_algorithm", "watts-strogatz")
	v.SetDefault("models.initiator", [][]float64{{0.9, 0.5}, {0.5, 0.3}})
	v.SetDefault("models.diameter_samples", 100)
	v.SetDefault("models.clustering_samples", 1000)

	return &Config{v: v, service: service}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// BindFlag binds a command line flag to a configuration key. Flags only
// override the file and defaults when they were set explicitly.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag bound to %q", key)
	}
	return c.v.BindPFlag(key, flag)
}

// BindFlags binds every flag named in flagKeys (flag name -> key) from fs.
func (c *Config) BindFlags(fs *pflag.FlagSet, flagKeys map[string]string) error {
	for name, key := range flagKeys {
		if err := c.BindFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return nil
}

// Getters for logging parameters
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogFile() string { return c.v.GetString("logging.file") }

// Getters for input/output parameters
func (c *Config) InputPath() string { return c.v.GetString("input.path") }
func (c *Config) Directed() bool { return c.v.GetBool("input.directed") }
func (c *Config) CommentPrefix() string { return c.v.GetString("input.comment_prefix") }
func (c *Config) ImagePath() string { return c.v.GetString("output.image_path") }
func (c *Config) Render() bool { return c.v.GetBool("output.render") }
func (c *Config) ImageWidthCM() float64 { return c.v.GetFloat64("output.width_cm") }
func (c *Config) ImageHeightCM() float64 { return c.v.GetFloat64("output.height_cm") }

// Getters for metric parameters
func (c *Config) Seed() uint64 { return c.v.GetUint64("algorithm.seed") }
func (c *Config) ClusteringSamples() int { return c.v.GetInt("clustering.samples") }
func (c *Config) BetweennessSamples() int { return c.v.GetInt("betweenness.samples") }
func (c *Config) TopK() int { return c.v.GetInt("betweenness.top_k") }
func (c *Config) Precision() int { return c.v.GetInt("betweenness.precision") }
func (c *Config) CentralityMeasure() string { return c.v.GetString("centrality.measure") }
func (c *Config) Damping() float64 { return c.v.GetFloat64("centrality.damping") }
func (c *Config) Tolerance() float64 { return c.v.GetFloat64("centrality.tolerance") }
func (c *Config) LayoutAlgorithm() string { return c.v.GetString("layout.algorithm") }
func (c *Config) LayoutIterations() int { return c.v.GetInt("layout.iterations") }
func (c *Config) LayoutRepulsion() float64 { return c.v.GetFloat64("layout.repulsion") }
func (c *Config) LayoutRate() float64 { return c.v.GetFloat64("layout.rate") }
func (c *Config) LayoutTheta() float64 { return c.v.GetFloat64("layout.theta") }
func (c *Config) LayoutMaxDistance() float64 { return c.v.GetFloat64("layout.max_distance") }

// Getters for random graph model parameters
func (c *Config) Vertices() int { return c.v.GetInt("models.vertices") }
func (c *Config) EdgeProbability() float64 { return c.v.GetFloat64("models.er_probability") }
func (c *Config) RewireProbability() float64 { return c.v.GetFloat64("models.rewire_probability") }
func (c *Config) SmallWorldAlgorithm() string { return c.v.GetString("models.small_world_algorithm") }
func (c *Config) DiameterSamples() int { return c.v.GetInt("models.diameter_samples") }
func (c *Config) ModelClusteringSamples() int { return c.v.GetInt("models.clustering_samples") }

// ModelSeed returns the configured model seed. When none was configured a
// time based seed is returned and explicit is false.
func (c *Config) ModelSeed() (seed uint64, explicit bool) {
	if c.v.IsSet("models.seed") {
		return c.v.GetUint64("models.seed"), true
	}
	return uint64(time.Now().UnixNano()), false
}

// Initiator returns the Kronecker initiator matrix rows.
func (c *Config) Initiator() ([][]float64, error) {
	var rows [][]float64
	if err := c.v.UnmarshalKey("models.initiator", &rows); err != nil {
		return nil, fmt.Errorf("invalid models.initiator: %w", err)
	}
	return rows, nil
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// SetDefault registers a default that config files and flags may override.
func (c *Config) SetDefault(key string, value interface{}) {
	c.v.SetDefault(key, value)
}

// CreateLogger creates a zerolog logger based on config. When logging.file
// is set, JSON records are also written to a size-rotated log file.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	if path := c.LogFile(); path != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("service", c.service).Logger()
}
