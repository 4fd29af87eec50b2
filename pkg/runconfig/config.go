// Package runconfig loads and validates the YAML configuration that drives
// a search run: seed range, worker count, batch size, score cutoff, and
// output/telemetry targets.
package runconfig

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config specifies all search-run parameters. It supports YAML parsing and
// includes comprehensive validation, the way the teacher's dungeon
// generation config does.
type Config struct {
	// QueryPath is the path to the JSON query document (spec §3).
	QueryPath string `yaml:"queryPath" json:"queryPath"`

	// SeedRange bounds the portion of the seed space to search.
	SeedRange SeedRangeCfg `yaml:"seedRange" json:"seedRange"`

	// Threads is the number of worker goroutines to partition the seed
	// space across. Must be at least 1; LoadConfig fills in
	// runtime.NumCPU() when the field is omitted.
	Threads int `yaml:"threads" json:"threads"`

	// BatchSize is the number of W-wide lanes each worker processes
	// between polls of the cancellation flag. The lane width W itself is
	// fixed at content.LaneWidth.
	BatchSize int `yaml:"batchSize" json:"batchSize"`

	// QueueCapacity bounds the result sink's internal channel buffer.
	QueueCapacity int `yaml:"queueCapacity" json:"queueCapacity"`

	// Output controls where accepted results are written.
	Output OutputCfg `yaml:"output" json:"output"`

	// Metrics controls the optional Prometheus exporter.
	Metrics MetricsCfg `yaml:"metrics,omitempty" json:"metrics,omitempty"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"logLevel" json:"logLevel"`
}

// SeedRangeCfg bounds a contiguous slice of the base-35 seed alphabet.
type SeedRangeCfg struct {
	// Start is the first seed to search, inclusive.
	Start string `yaml:"start" json:"start"`

	// End is the last seed to search, inclusive. Empty means search to
	// the end of the seed space.
	End string `yaml:"end,omitempty" json:"end,omitempty"`
}

// OutputCfg specifies where the run's results are written.
type OutputCfg struct {
	// CSVPath is the path to write the results CSV (spec §6). Required.
	CSVPath string `yaml:"csvPath" json:"csvPath"`

	// SVGPath, if set, writes a score-histogram visualization there.
	SVGPath string `yaml:"svgPath,omitempty" json:"svgPath,omitempty"`
}

// MetricsCfg controls the Prometheus HTTP exporter.
type MetricsCfg struct {
	// Enabled turns the exporter on.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// ListenAddr is the address promhttp listens on, e.g. ":9090".
	ListenAddr string `yaml:"listenAddr,omitempty" json:"listenAddr,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice. Useful
// for testing and programmatic config generation.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := Config{
		Threads:       runtime.NumCPU(),
		BatchSize:     8,
		QueueCapacity: 4096,
		LogLevel:      "info",
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints, returning the first
// failure encountered.
func (c *Config) Validate() error {
	if c.QueryPath == "" {
		return errors.New("queryPath must not be empty")
	}
	if c.SeedRange.Start == "" {
		return errors.New("seedRange.start must not be empty")
	}
	if len(c.SeedRange.Start) != 8 {
		return fmt.Errorf("seedRange.start must be 8 characters, got %q", c.SeedRange.Start)
	}
	if c.SeedRange.End != "" && len(c.SeedRange.End) != 8 {
		return fmt.Errorf("seedRange.end must be 8 characters, got %q", c.SeedRange.End)
	}
	if c.SeedRange.End != "" && c.SeedRange.End < c.SeedRange.Start {
		return fmt.Errorf("seedRange.end (%s) must be >= seedRange.start (%s)", c.SeedRange.End, c.SeedRange.Start)
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batchSize must be at least 1, got %d", c.BatchSize)
	}
	if c.QueueCapacity < 1 {
		return fmt.Errorf("queueCapacity must be at least 1, got %d", c.QueueCapacity)
	}
	if c.Output.CSVPath == "" {
		return errors.New("output.csvPath must not be empty")
	}
	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return errors.New("metrics.listenAddr must be set when metrics.enabled is true")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logLevel must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	return nil
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
