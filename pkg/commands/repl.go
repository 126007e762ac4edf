package commands

import (
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/wildfunctions/formula_tree/pkg/console"
	"github.com/wildfunctions/formula_tree/pkg/engine"
)

// ReplCommand starts the interactive console on stdin and stdout.
type ReplCommand struct {
	cfg       *engine.Config
	logConfig *LoggerConfig
}

// Register adds the repl command to app.
func (c *ReplCommand) Register(app *kingpin.Application, cfg *engine.Config, logConfig *LoggerConfig) {
	c.cfg = cfg
	c.logConfig = logConfig

	app.Command("repl", "Read formulas interactively, simplify them and evaluate them with prompted values.").Action(c.run)
}

func (c *ReplCommand) run(_ *kingpin.ParseContext) error {
	e, err := engine.New(*c.cfg, c.logConfig.Logger())
	if err != nil {
		return err
	}
	return console.NewSession(e, os.Stdin, os.Stdout, c.logConfig.Logger()).Run()
}
