// Package interp walks the resolved AST and executes it, the final stage
// after scanning, parsing, and resolution.
package interp

import (
	"strconv"
	"strings"
)

// Value is a runtime Lox value. Concrete types are Nil, Boolean, Number,
// String, the Callable variants (Function, NativeFunction, *Class), and
// *Instance.
type Value interface {
	// Type names the runtime kind, e.g. "number" or "class".
	Type() string
	// String renders the value the way a `print` statement would.
	String() string
}

// Nil is Lox's single null value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Boolean wraps a Lox bool.
type Boolean bool

func (Boolean) Type() string { return "boolean" }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is Lox's single numeric type: an IEEE-754 double.
type Number float64

func (Number) Type() string { return "number" }

// String renders integral values without a trailing ".0" (1.0 prints as
// "1"), matching how other scripting languages print a single numeric type.
func (n Number) String() string {
	f := float64(n)
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.HasSuffix(text, ".0") {
		return strings.TrimSuffix(text, ".0")
	}
	return text
}

// String is a Lox string value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// isTruthy applies Lox's two-valued classification: nil and false are
// falsey, everything else (including 0 and "") is truthy.
func isTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil, nil:
		return false
	case Boolean:
		return bool(t)
	default:
		return true
	}
}

// isEqual: nil equals only nil, and a number is never equal to a string
// even if they stringify the same.
func isEqual(a, b Value) bool {
	_, aNil := a.(Nil)
	_, bNil := b.(Nil)
	if aNil || bNil {
		return aNil && bNil
	}

	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	default:
		return a == b
	}
}
