package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders expr as a canonical S-expression, e.g. "(* (- 123) (group 45.67))".
// Grounded on the reference AstPrinter: a fully-parenthesized form with no
// ambiguous whitespace, used by the parser tests to check the shape of a
// parsed expression against an expected string.
func Print(expr Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Assign:
		parenthesize(b, "assign "+e.Name.Lexeme, e.Value)
	case *Binary:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *Call:
		parenthesize(b, "call", append([]Expr{e.Callee}, e.Args...)...)
	case *Get:
		parenthesize(b, "get "+e.Name.Lexeme, e.Object)
	case *Grouping:
		parenthesize(b, "group", e.Inner)
	case *Literal:
		b.WriteString(literalString(e.Value))
	case *Logical:
		parenthesize(b, e.Op.Lexeme, e.Left, e.Right)
	case *Set:
		parenthesize(b, "set "+e.Name.Lexeme, e.Object, e.Value)
	case *Super:
		b.WriteString("(super " + e.Method.Lexeme + ")")
	case *This:
		b.WriteString("this")
	case *Unary:
		parenthesize(b, e.Op.Lexeme, e.Right)
	case *Variable:
		b.WriteString(e.Name.Lexeme)
	default:
		b.WriteString(fmt.Sprintf("<unknown %T>", expr))
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
	b.WriteByte(')')
}

func literalString(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
