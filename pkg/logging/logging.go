// Package logging builds the logfmt logger shared by the engine, the console
// and the CLI commands.
package logging

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// New returns a logfmt logger writing to stderr that drops entries below
// levelName.
func New(levelName string) (log.Logger, error) {
	return NewWithWriter(os.Stderr, levelName)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, levelName string) (log.Logger, error) {
	allow, err := allowOption(levelName)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

func allowOption(levelName string) (level.Option, error) {
	switch levelName {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, errors.Errorf("invalid log level %q (available: %v)", levelName, Levels)
	}
}
