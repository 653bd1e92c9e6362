// errors.go: the evaluation error taxonomy.
//
// Every failure the evaluator or a native procedure can produce is a value of
// one of the types below. Errors propagate outward unchanged through
// evaluator frames and natives; there is no local recovery or retry anywhere
// in the core. Hosts branch on kinds with errors.As.
package slip

import "fmt"

// SymbolNotBoundError: a symbol had no binding anywhere in the environment
// chain, including the shared layer.
type SymbolNotBoundError struct {
	Name string
}

func (e *SymbolNotBoundError) Error() string {
	return fmt.Sprintf("Symbol %s is not bound", e.Name)
}

// NotAFunctionError: the head of a call form evaluated to something that is
// neither a native procedure nor a closure.
type NotAFunctionError struct {
	Value Value
}

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("Expression %s is not a function", e.Value)
}

// NotANumberError: an arithmetic or comparison operand evaluated to neither
// an Integer nor a Float.
type NotANumberError struct {
	Value Value
}

func (e *NotANumberError) Error() string {
	return fmt.Sprintf("Expression %s is not a number", e.Value)
}

// ArgumentError: wrong argument count or malformed argument structure.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Argument error: %s", e.Message)
}

// TypeError: a decode or foreign-type recovery did not match the value.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Type error: %s", e.Message)
}

// NotASymbolError: a symbol was required (binding forms, set) but the value
// is something else.
type NotASymbolError struct {
	Value Value
}

func (e *NotASymbolError) Error() string {
	return fmt.Sprintf("Expression %s is not a symbol", e.Value)
}

// RuntimeError: I/O-like failures raised by host extension modules (file
// output, rendering). The core itself never produces it.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("Runtime error: %s", e.Message)
}

func argCountError(expected, got int) error {
	return &ArgumentError{Message: fmt.Sprintf("Expected %d arguments, got %d", expected, got)}
}
