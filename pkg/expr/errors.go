package expr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDivisionByZero is returned when a / node has a zero divisor, either
	// during evaluation or while folding two literals in Simplify.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUndefinedVariable matches every *UndefinedVariableError.
	ErrUndefinedVariable = errors.New("undefined variable")
)

// UndefinedVariableError reports a variable with no value in the supplied Vars.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}

// Is lets errors.Is(err, ErrUndefinedVariable) match.
func (e *UndefinedVariableError) Is(target error) bool {
	return target == ErrUndefinedVariable
}
