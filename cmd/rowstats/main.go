// Command rowstats applies rowwise statistics to a wide CSV table.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/gorowstats/config"
)

func main() {
	opts := newOptions(flag.CommandLine)
	flag.Parse()

	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		logrus.Fatal("Invalid log level")
	}
	logrus.SetLevel(level)

	if err := opts.check(); err != nil {
		logrus.WithError(err).Fatal("Invalid flags")
	}

	cfg, err := opts.load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}

	if err := run(cfg, os.Stdout); err != nil {
		logrus.WithError(err).Fatal("Run failed")
	}
	if !opts.watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = config.Watch(ctx, opts.configPath, func(next *config.Config) {
		if err := opts.apply(next); err != nil {
			logrus.WithError(err).Error("Invalid configuration after reload")
			return
		}
		if err := run(next, os.Stdout); err != nil {
			logrus.WithError(err).Error("Run failed")
		}
	})
	if err != nil {
		logrus.WithError(err).Fatal("Watch failed")
	}
}
