// Package console is the interactive front end: it reads formulas, shows the
// original and simplified trees and evaluates them with values typed in by
// the user.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/wildfunctions/formula_tree/pkg/engine"
	"github.com/wildfunctions/formula_tree/pkg/expr"
)

// errQuit ends the session on end of input.
var errQuit = errors.New("end of input")

// Session runs the read/print loop over a pair of streams.
type Session struct {
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	logger log.Logger
}

// NewSession creates a session reading from in and writing prompts and
// results to out.
func NewSession(e *engine.Engine, in io.Reader, out io.Writer, logger log.Logger) *Session {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Session{
		engine: e,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the input ends or an empty formula is entered. Formula
// errors are printed and the loop continues; only I/O errors are returned.
func (s *Session) Run() error {
	for {
		err := s.step()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) step() error {
	text, err := s.prompt("Enter an infix formula (e.g. a*c + b*c): ")
	if err != nil {
		return err
	}
	if text == "" {
		return errQuit
	}

	f, err := s.engine.Prepare(text)
	if err != nil {
		level.Debug(s.logger).Log("msg", "formula rejected", "formula", text, "err", err)
		fmt.Fprintf(s.out, "Error: %v\n", errors.Cause(err))
		return nil
	}
	fmt.Fprintf(s.out, "Original:   %s\n", f.Original.String())
	fmt.Fprintf(s.out, "Simplified: %s\n", f.Simplified.String())

	answer, err := s.prompt("Evaluate? (y/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		return nil
	}

	vars := expr.Vars{}
	for _, name := range f.Variables() {
		v, err := s.readInt(name)
		if err != nil {
			return err
		}
		vars[name] = v
	}

	result, err := s.engine.Evaluate(f, vars)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", errors.Cause(err))
		return nil
	}
	fmt.Fprintf(s.out, "Result: %d\n", result)
	return nil
}

// readInt prompts for the value of name until an integer is entered.
func (s *Session) readInt(name string) (int64, error) {
	for {
		line, err := s.prompt(fmt.Sprintf("Value of '%s': ", name))
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(s.out, "Error: an integer is required.")
	}
}

func (s *Session) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		fmt.Fprintln(s.out)
		return "", errQuit
	}
	return strings.TrimSpace(s.in.Text()), nil
}
