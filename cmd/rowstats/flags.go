package main

import (
	"errors"
	"flag"
	"strings"

	"github.com/sartorproj/gorowstats/config"
)

var errWatchNeedsConfig = errors.New("-watch requires -config")

// options holds the command line. Flags that were set on the command line
// override the matching config file field.
type options struct {
	fs *flag.FlagSet

	configPath string
	input      string
	ops        string
	quantiles  int
	workers    int
	emptyRow   string
	format     string
	output     string
	target     float64
	logLevel   string
	watch      bool
}

func newOptions(fs *flag.FlagSet) *options {
	o := &options{fs: fs}
	fs.StringVar(&o.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&o.input, "input", "", "Input CSV file (overrides input.path)")
	fs.StringVar(&o.ops, "ops", "", "Comma-separated operators (overrides operators)")
	fs.IntVar(&o.quantiles, "quantiles", 0, "Number of quantile buckets (overrides engine.quantiles)")
	fs.IntVar(&o.workers, "workers", 0, "Rows processed concurrently (overrides engine.workers)")
	fs.StringVar(&o.emptyRow, "empty_row", "", "Empty row policy: nan or error (overrides engine.empty_row)")
	fs.StringVar(&o.format, "format", "", "Stdout format: table or csv (overrides output.format)")
	fs.StringVar(&o.output, "output", "", "Directory for per-operator CSV files (overrides output.path)")
	fs.Float64Var(&o.target, "target", 0, "Value counted by the count operator (overrides count_target)")
	fs.StringVar(&o.logLevel, "log_level", "info", "Log level (debug, info, warn, error)")
	fs.BoolVar(&o.watch, "watch", false, "Re-run whenever the config file changes")
	return o
}

// check rejects flag combinations that cannot work, before anything runs.
func (o *options) check() error {
	if o.watch && o.configPath == "" {
		return errWatchNeedsConfig
	}
	return nil
}

// load returns the config file (or the defaults) with the flags applied.
func (o *options) load() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	return cfg, o.apply(cfg)
}

// apply overrides cfg with every flag set on the command line and
// validates the result.
func (o *options) apply(cfg *config.Config) error {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = o.input
		case "ops":
			cfg.Operators = splitList(o.ops)
		case "quantiles":
			cfg.Engine.Quantiles = o.quantiles
		case "workers":
			cfg.Engine.Workers = o.workers
		case "empty_row":
			cfg.Engine.EmptyRow = o.emptyRow
		case "format":
			cfg.Output.Format = o.format
		case "output":
			cfg.Output.Path = o.output
		case "target":
			cfg.CountTarget = o.target
		}
	})
	return cfg.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
