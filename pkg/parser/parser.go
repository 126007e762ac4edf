// Package parser turns infix formulas into expression trees.
//
// The grammar is
//
//	expression := unary (binop expression)*
//	unary      := '-' unary | primary
//	primary    := '(' expression ')' | integer | letter
//
// with + and - binding weaker than * and /, all left associative. Whitespace
// is removed before scanning and never separates tokens.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

// DefaultMaxNesting is the deepest parenthesis nesting a formula may use.
const DefaultMaxNesting = 10

// ErrSyntax matches every *Error returned by Parse.
var ErrSyntax = errors.New("syntax error")

// Error describes why a formula was rejected. Pos is a rune offset into the
// formula with whitespace removed.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

// Is lets errors.Is(err, ErrSyntax) match.
func (e *Error) Is(target error) bool {
	return target == ErrSyntax
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxNesting overrides DefaultMaxNesting.
func WithMaxNesting(n int) Option {
	return func(p *Parser) {
		p.maxNesting = n
	}
}

// Parser holds parse settings. It keeps no state between calls and is safe
// for concurrent use.
type Parser struct {
	maxNesting int
}

// New returns a Parser with the given options applied.
func New(opts ...Option) *Parser {
	p := &Parser{maxNesting: DefaultMaxNesting}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxNesting returns the configured parenthesis nesting limit.
func (p *Parser) MaxNesting() int {
	return p.maxNesting
}

// Parse parses text with the default settings.
func Parse(text string) (expr.Node, error) {
	return New().Parse(text)
}

// Parse builds the expression tree for text.
func (p *Parser) Parse(text string) (expr.Node, error) {
	s := &scanner{
		src:        stripSpace(text),
		maxNesting: p.maxNesting,
	}
	node, err := s.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if s.pos != len(s.src) {
		return nil, s.errorf("unexpected trailing characters %q", string(s.src[s.pos:]))
	}
	return node, nil
}

func stripSpace(text string) []rune {
	return []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))
}

// scanner is the state of a single Parse call.
type scanner struct {
	src        []rune
	pos        int
	open       int
	maxNesting int
}

const eof rune = -1

func (s *scanner) current() rune {
	if s.pos < len(s.src) {
		return s.src[s.pos]
	}
	return eof
}

func (s *scanner) errorf(format string, args ...any) error {
	return &Error{Pos: s.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseExpression parses an operand followed by every operator whose
// priority is at least minPriority. Right operands are parsed with a
// threshold one above the operator's own priority, which makes operators of
// equal priority associate to the left.
func (s *scanner) parseExpression(minPriority int) (expr.Node, error) {
	node, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := expr.LookupOp(s.current())
		if !ok || op.Priority() < minPriority {
			return node, nil
		}
		s.pos++
		right, err := s.parseExpression(op.Priority() + 1)
		if err != nil {
			return nil, err
		}
		node = &expr.BinaryNode{Op: op, Left: node, Right: right}
	}
}

func (s *scanner) parseUnary() (expr.Node, error) {
	if s.current() == '-' {
		s.pos++
		child, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		return &expr.UnaryMinus{Child: child}, nil
	}
	return s.parsePrimary()
}

func (s *scanner) parsePrimary() (expr.Node, error) {
	ch := s.current()
	switch {
	case ch == '(':
		if s.open == s.maxNesting {
			return nil, s.errorf("parentheses nested deeper than %d", s.maxNesting)
		}
		s.open++
		s.pos++
		node, err := s.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if s.current() != ')' {
			return nil, s.errorf("expected closing parenthesis")
		}
		s.open--
		s.pos++
		return node, nil

	case isDigit(ch):
		return s.parseNumber()

	case unicode.IsLetter(ch):
		s.pos++
		return &expr.Variable{Name: string(ch)}, nil

	case ch == eof:
		return nil, s.errorf("unexpected end of formula")

	default:
		return nil, s.errorf("unexpected character %q", ch)
	}
}

func (s *scanner) parseNumber() (expr.Node, error) {
	start := s.pos
	for isDigit(s.current()) {
		s.pos++
	}
	v, err := strconv.ParseInt(string(s.src[start:s.pos]), 10, 64)
	if err != nil {
		return nil, &Error{Pos: start, Msg: fmt.Sprintf("integer literal %s out of range", string(s.src[start:s.pos]))}
	}
	return &expr.Literal{Val: v}, nil
}

// isDigit accepts ASCII digits only; strconv cannot parse other Unicode digits.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
