package commands

import (
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/wildfunctions/formula_tree/pkg/engine"
	"github.com/wildfunctions/formula_tree/pkg/pool"
)

// CheckCommand runs the property checker over random trees.
type CheckCommand struct {
	cfg       *engine.Config
	logConfig *LoggerConfig
}

// Register adds the check command to app.
func (c *CheckCommand) Register(app *kingpin.Application, cfg *engine.Config, logConfig *LoggerConfig) {
	c.cfg = cfg
	c.logConfig = logConfig

	cmd := app.Command("check", "Check round-trip, idempotence and evaluation equivalence over random formulas.").Action(c.check)
	cmd.Flag("pool", "formula generator ("+strings.Join(pool.Names(), ", ")+")").Default(cfg.Pool).EnumVar(&cfg.Pool, pool.Names()...)
	cmd.Flag("trees", "number of random formulas").Default(itoa(cfg.Trees)).IntVar(&cfg.Trees)
	cmd.Flag("max-depth", "max tree depth").Default(itoa(cfg.MaxDepth)).IntVar(&cfg.MaxDepth)
	cmd.Flag("seed", "random seed (0 = random)").Default("0").Int64Var(&cfg.Seed)
	cmd.Flag("workers", "number of parallel workers").Default(itoa(cfg.Workers)).IntVar(&cfg.Workers)
	cmd.Flag("format", "output format (text, json)").Default("text").EnumVar(&cfg.Format, "text", "json")
}

func (c *CheckCommand) check(_ *kingpin.ParseContext) error {
	e, err := engine.New(*c.cfg, c.logConfig.Logger())
	if err != nil {
		return err
	}

	report := e.Check()
	switch c.cfg.Format {
	case "json":
		if err := engine.WriteJSON(os.Stdout, report); err != nil {
			return err
		}
	default:
		engine.WriteCheckText(os.Stdout, report)
	}

	if !report.Passed() {
		return errors.Errorf("%d property failures", len(report.Failures))
	}
	return nil
}
