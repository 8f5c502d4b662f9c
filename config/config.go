package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gorowstats/rowwise"
	"github.com/sartorproj/gorowstats/timeseries"
)

// Default values for the configuration.
const (
	DefaultDateFormat = "2006-01-02"
	DefaultFormat     = "table"
	DefaultWorkers    = 1
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration file.
type Config struct {
	Input     InputConfig  `yaml:"input"`
	Output    OutputConfig `yaml:"output"`
	Engine    EngineConfig `yaml:"engine"`
	Operators []string     `yaml:"operators"`

	// CountTarget is the value counted by the "count" operator.
	CountTarget float64 `yaml:"count_target"`
}

// InputConfig describes the wide CSV table to read.
type InputConfig struct {
	Path       string   `yaml:"path"`
	DateColumn string   `yaml:"date_column"`
	Columns    []string `yaml:"columns"`
	DateFormat string   `yaml:"date_format"`
	Delimiter  string   `yaml:"delimiter"`
	SkipRows   int      `yaml:"skip_rows"`
}

// OutputConfig controls where results go.
type OutputConfig struct {
	// Path is a directory that receives one CSV file per operator.
	// Empty means results are rendered to stdout.
	Path string `yaml:"path"`

	// Format is one of: table | csv. Only used for stdout.
	Format string `yaml:"format"`
}

// EngineConfig maps onto rowwise.Options.
type EngineConfig struct {
	// EmptyRow is one of: nan | error.
	EmptyRow  string `yaml:"empty_row"`
	Workers   int    `yaml:"workers"`
	Quantiles int    `yaml:"quantiles"`
}

// Load reads and parses the config file at path.
// Missing fields are filled with defaults before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML into a validated Config.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			DateFormat: DefaultDateFormat,
			Delimiter:  ",",
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Engine: EngineConfig{
			EmptyRow:  rowwise.EmptyRowNaN.String(),
			Workers:   DefaultWorkers,
			Quantiles: rowwise.DefaultQuantiles,
		},
		Operators: []string{"row_mean"},
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if len([]rune(c.Input.Delimiter)) != 1 {
		return fmt.Errorf("%w: input.delimiter must be a single character, got %q", ErrInvalid, c.Input.Delimiter)
	}
	if c.Input.SkipRows < 0 {
		return fmt.Errorf("%w: input.skip_rows must not be negative", ErrInvalid)
	}

	switch c.Output.Format {
	case "table", "csv":
	default:
		return fmt.Errorf("%w: output.format must be table or csv, got %q", ErrInvalid, c.Output.Format)
	}

	if _, err := rowwise.ParseEmptyRowPolicy(c.Engine.EmptyRow); err != nil {
		return fmt.Errorf("%w: engine.empty_row: %v", ErrInvalid, err)
	}
	if c.Engine.Workers < 1 {
		return fmt.Errorf("%w: engine.workers must be at least 1", ErrInvalid)
	}
	if c.Engine.Quantiles < 1 {
		return fmt.Errorf("%w: engine.quantiles must be at least 1", ErrInvalid)
	}

	if len(c.Operators) == 0 {
		return fmt.Errorf("%w: no operators configured", ErrInvalid)
	}
	for _, op := range c.Operators {
		if !rowwise.IsOperator(op) {
			return fmt.Errorf("%w: unknown operator %q (known: %s)", ErrInvalid, op, strings.Join(rowwise.Operators(), ", "))
		}
	}
	return nil
}

// CSVOptions converts the input section into loader options.
func (c *Config) CSVOptions() *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	opts.DateColumn = c.Input.DateColumn
	opts.Columns = c.Input.Columns
	opts.SkipRows = c.Input.SkipRows
	if c.Input.DateFormat != "" {
		opts.DateFormat = c.Input.DateFormat
	}
	if r := []rune(c.Input.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}

// EngineOptions converts the engine section into rowwise options.
// The config must have passed Validate.
func (c *Config) EngineOptions() *rowwise.Options {
	opts := rowwise.DefaultOptions()
	opts.EmptyRow, _ = rowwise.ParseEmptyRowPolicy(c.Engine.EmptyRow)
	opts.Workers = c.Engine.Workers
	return opts
}

// Params returns the operator parameters carried by the config.
func (c *Config) Params() rowwise.Params {
	return rowwise.Params{
		Quantiles: c.Engine.Quantiles,
		Target:    c.CountTarget,
	}
}
