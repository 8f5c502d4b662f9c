package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch calls onChange with a freshly loaded Config every time the file at
// path is saved, until ctx is cancelled. It watches the parent directory,
// so saves that replace the file through a rename keep being seen.
//
// A file that fails to load is logged and skipped; the caller keeps the
// previous Config.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(path), err)
	}

	log := logrus.WithField("path", path)
	log.Info("config: watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !savedTo(ev, path) {
				continue
			}
			reload(log, path, onChange)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("config: watcher error")
		}
	}
}

// savedTo reports whether ev leaves new content at path. A rename onto path
// arrives as Create; Remove, Rename and Chmod of path carry no content.
func savedTo(ev fsnotify.Event, path string) bool {
	if filepath.Clean(ev.Name) != path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

func reload(log logrus.FieldLogger, path string, onChange func(*Config)) {
	cfg, err := Load(path)
	if err != nil {
		log.WithError(err).Warn("config: reload failed, keeping previous config")
		return
	}
	log.WithField("operators", len(cfg.Operators)).Info("config: reloaded")
	onChange(cfg)
}
