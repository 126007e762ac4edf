package commands

import (
	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"

	"github.com/wildfunctions/formula_tree/pkg/logging"
)

// LoggerConfig owns the --log.level flag and the logger built from it.
type LoggerConfig struct {
	Level  string
	logger log.Logger
}

// Register adds the flag and builds the logger before any command runs.
func (l *LoggerConfig) Register(app *kingpin.Application) {
	app.Flag("log.level", "Log level.").Default("warn").EnumVar(&l.Level, logging.Levels...)
	app.PreAction(func(*kingpin.ParseContext) error {
		logger, err := logging.New(l.Level)
		if err != nil {
			return err
		}
		l.logger = logger
		return nil
	})
}

// Logger returns the configured logger, or a no-op logger before parsing.
func (l *LoggerConfig) Logger() log.Logger {
	if l.logger == nil {
		return log.NewNopLogger()
	}
	return l.logger
}
