package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/sartorproj/gorowstats/config"
	"github.com/sartorproj/gorowstats/rowwise"
	"github.com/sartorproj/gorowstats/timeseries"
)

var errNoInput = errors.New("no input file configured")

// run loads the configured table, applies every operator and writes the
// results either to stdout or to one CSV file per operator.
func run(cfg *config.Config, stdout io.Writer) error {
	if cfg.Input.Path == "" {
		return errNoInput
	}

	start := time.Now()
	m, err := timeseries.LoadCSV(cfg.Input.Path, cfg.CSVOptions())
	if err != nil {
		return fmt.Errorf("load %q: %w", cfg.Input.Path, err)
	}

	log := logrus.WithField("input", cfg.Input.Path)
	log.WithFields(logrus.Fields{
		"rows": humanize.Comma(int64(m.Rows())),
		"cols": humanize.Comma(int64(m.Cols())),
	}).Info("Loaded table")

	engine := rowwise.New(cfg.EngineOptions())
	for _, op := range cfg.Operators {
		res, err := engine.Run(op, m, cfg.Params())
		if err != nil {
			return err
		}
		if err := emit(cfg, res, stdout); err != nil {
			return fmt.Errorf("%s: write: %w", op, err)
		}
	}

	log.WithFields(logrus.Fields{
		"operators": len(cfg.Operators),
		"cells":     humanize.Comma(int64(m.Rows() * m.Cols())),
		"elapsed":   time.Since(start),
	}).Info("Finished")
	return nil
}

func emit(cfg *config.Config, res *rowwise.Result, stdout io.Writer) error {
	if cfg.Output.Path == "" {
		if cfg.Output.Format == "csv" {
			if _, err := fmt.Fprintf(stdout, "# %s\n", res.Operator); err != nil {
				return err
			}
			return writeCSV(stdout, res, cfg.Input.DateFormat)
		}
		return renderTable(stdout, res, cfg.Input.DateFormat)
	}

	if err := os.MkdirAll(cfg.Output.Path, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.Output.Path, res.Operator+".csv")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := writeCSV(file, res, cfg.Input.DateFormat); err != nil {
		return err
	}
	logrus.WithField("path", path).Debug("Wrote result")
	return file.Close()
}

func writeCSV(w io.Writer, res *rowwise.Result, dateFormat string) error {
	if res.Keyed != nil {
		return timeseries.WriteKeyedCSV(w, res.Keyed)
	}
	return timeseries.WriteCSV(w, res.Matrix, dateFormat)
}
