package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to path, or to fallback when path is
// empty. The returned close function releases the file.
func newLogger(path string, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}

	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("log: create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: open %s: %w", path, err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if path != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// fail closes the log, reports err and exits non-zero. Deferred calls do
// not run past os.Exit, so the log is closed here.
func fail(closeLog func(), err error) {
	report(os.Stderr, closeLog, err)
	os.Exit(1)
}

func report(w io.Writer, closeLog func(), err error) {
	closeLog()
	fmt.Fprintf(w, "Error: %v\n", err)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
