// Package debug builds the process logger.
//
// Logging is quiet by default (warnings only, on stderr). Debug output is
// enabled with --debug, ASCIITREE_DEBUG=1 or `debug: true` in the config
// file, and can be redirected to a file with debug_log. The TUI owns the
// terminal, so it asks for a logger that never writes to stderr.
package debug

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Enabled bool
	// Path, when set, receives log output instead of stderr.
	Path string
	// Quiet discards output unless Path is set.
	Quiet bool
}

// New returns a configured logger and a close func for any opened file.
func New(opts Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05.000",
		QuoteEmptyFields: true,
	})
	if opts.Enabled {
		logger.SetLevel(logrus.DebugLevel)
	}

	closeFn := func() error { return nil }
	switch {
	case opts.Path != "":
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		logger.SetOutput(f)
		closeFn = f.Close
	case opts.Quiet:
		logger.SetOutput(io.Discard)
	}
	return logger, closeFn, nil
}

// Discard returns a logger that drops everything. Used as the default in
// libraries and tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}
