package interp

import (
	"fmt"

	"github.com/team99/golox/internal/token"
)

// RuntimeError is a Lox runtime error: it carries the offending token so
// the host can print "[line N]". Unlike scanner, parser,
// and resolver errors, a RuntimeError halts interpretation immediately —
// it is not accumulated, it is returned.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal unwinds the Go call stack from a `return` statement back to
// the nearest function call boundary. It is a distinct error variant from
// RuntimeError: Function.Call is the only place that
// catches it, everything else just propagates it like any other error.
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string { return "return outside of function" }
