package main

import (
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"

	"github.com/wildfunctions/formula_tree/pkg/commands"
	"github.com/wildfunctions/formula_tree/pkg/engine"
)

var (
	logConfig      commands.LoggerConfig
	formulaCommand commands.FormulaCommand
	checkCommand   commands.CheckCommand
	replCommand    commands.ReplCommand
)

func main() {
	cfg := engine.DefaultConfig()

	app := kingpin.New("formula", "Parse, simplify and evaluate integer infix formulas.")
	app.Flag("max-nesting", "deepest allowed parenthesis nesting").Default(strconv.Itoa(cfg.MaxNesting)).IntVar(&cfg.MaxNesting)

	// Register logger first so its PreAction runs before others
	logConfig.Register(app)

	formulaCommand.Register(app, &cfg, &logConfig)
	checkCommand.Register(app, &cfg, &logConfig)
	replCommand.Register(app, &cfg, &logConfig)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}
