package engine

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/wildfunctions/formula_tree/pkg/expr"
	"github.com/wildfunctions/formula_tree/pkg/parser"
)

// Engine parses, simplifies and evaluates formulas.
type Engine struct {
	cfg    Config
	parser *parser.Parser
	logger log.Logger
}

// New creates a new engine from the given config.
func New(cfg Config, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Engine{
		cfg:    cfg,
		parser: parser.New(parser.WithMaxNesting(cfg.MaxNesting)),
		logger: logger,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Formula is a parsed formula together with its simplified tree.
type Formula struct {
	Text       string
	Original   expr.Node
	Simplified expr.Node
}

// Variables returns the sorted distinct variable names of the formula.
func (f *Formula) Variables() []string {
	return expr.Variables(f.Original)
}

// Prepare parses and simplifies text.
func (e *Engine) Prepare(text string) (*Formula, error) {
	original, err := e.parser.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse formula")
	}
	level.Debug(e.logger).Log("msg", "parsed formula", "formula", original.String(), "nodes", original.NodeCount())

	simplified, err := expr.Simplify(original)
	if err != nil {
		return nil, errors.Wrap(err, "simplify")
	}
	level.Debug(e.logger).Log("msg", "simplified formula", "formula", simplified.String(), "nodes", simplified.NodeCount())

	return &Formula{Text: text, Original: original, Simplified: simplified}, nil
}

// Evaluate computes f under vars, using the simplified tree unless the
// engine was configured with NoSimplify.
func (e *Engine) Evaluate(f *Formula, vars expr.Vars) (int64, error) {
	tree := f.Simplified
	if e.cfg.NoSimplify {
		tree = f.Original
	}
	v, err := expr.Evaluate(tree, vars)
	if err != nil {
		return 0, errors.Wrap(err, "evaluate")
	}
	level.Debug(e.logger).Log("msg", "evaluated formula", "formula", tree.String(), "result", v)
	return v, nil
}

// Run processes the configured formula and returns its report. When
// evaluation fails the report is still filled in as far as it got and the
// error is returned alongside it.
func (e *Engine) Run() (Report, error) {
	report := Report{Formula: e.cfg.Formula}

	f, err := e.Prepare(e.cfg.Formula)
	if err != nil {
		report.Error = err.Error()
		return report, err
	}
	report.fill(f)

	if !e.cfg.Evaluate {
		return report, nil
	}

	report.Vars = e.cfg.Vars
	v, err := e.Evaluate(f, e.cfg.Vars)
	if err != nil {
		report.Error = err.Error()
		return report, err
	}
	report.Result = &v
	return report, nil
}
