package commands

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alecthomas/repr"

	"github.com/wildfunctions/formula_tree/pkg/engine"
	"github.com/wildfunctions/formula_tree/pkg/expr"
)

// FormulaCommand implements simplify, eval and tree.
type FormulaCommand struct {
	cfg       *engine.Config
	logConfig *LoggerConfig

	formula    string
	varFlags   map[string]string
	varsFile   string
	showTree   bool
	simplified bool
	dumpRepr   bool
}

// Register adds the simplify, eval and tree commands to app. cfg carries the
// global flags.
func (c *FormulaCommand) Register(app *kingpin.Application, cfg *engine.Config, logConfig *LoggerConfig) {
	c.cfg = cfg
	c.logConfig = logConfig
	c.varFlags = map[string]string{}

	simplifyCmd := app.Command("simplify", "Parse a formula and print its original and simplified forms; wrap the formula in quotes for CLI parsing.").Action(c.simplify)
	simplifyCmd.Arg("formula", "formula to simplify").Required().StringVar(&c.formula)
	simplifyCmd.Flag("format", "output format").Default("text").EnumVar(&cfg.Format, engine.Formats...)
	simplifyCmd.Flag("tree", "also print the simplified tree").BoolVar(&c.showTree)

	evalCmd := app.Command("eval", "Simplify a formula and evaluate it.").Action(c.eval)
	evalCmd.Arg("formula", "formula to evaluate").Required().StringVar(&c.formula)
	evalCmd.Flag("var", "variable value as name=value, repeatable").Short('v').StringMapVar(&c.varFlags)
	evalCmd.Flag("vars-file", "YAML file mapping variable names to values").StringVar(&c.varsFile)
	evalCmd.Flag("no-simplify", "evaluate the tree as parsed").BoolVar(&cfg.NoSimplify)
	evalCmd.Flag("format", "output format").Default("text").EnumVar(&cfg.Format, engine.Formats...)

	treeCmd := app.Command("tree", "Print the expression tree of a formula.").Action(c.tree)
	treeCmd.Arg("formula", "formula to print").Required().StringVar(&c.formula)
	treeCmd.Flag("simplified", "print the simplified tree").BoolVar(&c.simplified)
	treeCmd.Flag("repr", "dump the tree as Go values").BoolVar(&c.dumpRepr)
}

func (c *FormulaCommand) simplify(_ *kingpin.ParseContext) error {
	c.cfg.Formula = c.formula
	e, err := engine.New(*c.cfg, c.logConfig.Logger())
	if err != nil {
		return err
	}

	report, err := e.Run()
	if err != nil {
		return err
	}
	if err := engine.WriteReport(os.Stdout, c.cfg.Format, report); err != nil {
		return err
	}
	if c.showTree && c.cfg.Format == "text" {
		f, err := e.Prepare(c.formula)
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, expr.Tree(f.Simplified))
	}
	return nil
}

func (c *FormulaCommand) eval(_ *kingpin.ParseContext) error {
	var fileVars expr.Vars
	if c.varsFile != "" {
		vars, err := engine.LoadVarsFile(c.varsFile)
		if err != nil {
			return err
		}
		fileVars = vars
	}
	flagVars, err := engine.ParseVarFlags(c.varFlags)
	if err != nil {
		return err
	}

	c.cfg.Formula = c.formula
	c.cfg.Evaluate = true
	c.cfg.Vars = engine.MergeVars(fileVars, flagVars)

	e, err := engine.New(*c.cfg, c.logConfig.Logger())
	if err != nil {
		return err
	}

	report, runErr := e.Run()
	if report.Original == "" {
		return runErr
	}
	if err := engine.WriteReport(os.Stdout, c.cfg.Format, report); err != nil {
		return err
	}
	return runErr
}

func (c *FormulaCommand) tree(_ *kingpin.ParseContext) error {
	e, err := engine.New(*c.cfg, c.logConfig.Logger())
	if err != nil {
		return err
	}
	f, err := e.Prepare(c.formula)
	if err != nil {
		return err
	}

	node := f.Original
	if c.simplified {
		node = f.Simplified
	}
	if c.dumpRepr {
		fmt.Fprintln(os.Stdout, repr.String(node, repr.Indent("  ")))
		return nil
	}
	fmt.Fprint(os.Stdout, expr.Tree(node))
	return nil
}
