package ast

import (
	"testing"

	"github.com/team99/golox/internal/token"
)

func tok(typ token.Type, lexeme string) token.Token {
	return token.New(typ, lexeme, nil, token.Position{Line: 1, Column: 1})
}

func TestPrintBinary(t *testing.T) {
	expr := &Binary{
		Left:  &Literal{Value: 1.0},
		Op:    tok(token.PLUS, "+"),
		Right: &Literal{Value: 2.0},
	}
	if got, want := Print(expr), "(+ 1 2)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintGroupingAndUnary(t *testing.T) {
	expr := &Unary{
		Op:    tok(token.MINUS, "-"),
		Right: &Grouping{Inner: &Literal{Value: 1.5}},
	}
	if got, want := Print(expr), "(- (group 1.5))"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintLiteralVariants(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{1.0, "1"},
		{1.5, "1.5"},
		{"hi", `"hi"`},
	}
	for _, tt := range tests {
		got := Print(&Literal{Value: tt.value})
		if got != tt.want {
			t.Errorf("Print(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPrintVariableAndAssign(t *testing.T) {
	v := &Variable{Name: tok(token.IDENTIFIER, "x")}
	if got, want := Print(v), "x"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	a := &Assign{Name: tok(token.IDENTIFIER, "x"), Value: &Literal{Value: 3.0}}
	if got, want := Print(a), "(assign x 3)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintCallGetSetThisSuper(t *testing.T) {
	call := &Call{
		Callee: &Variable{Name: tok(token.IDENTIFIER, "f")},
		Paren:  tok(token.RIGHT_PAREN, ")"),
		Args:   []Expr{&Literal{Value: 1.0}, &Literal{Value: 2.0}},
	}
	if got, want := Print(call), "(call f 1 2)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	get := &Get{Object: &Variable{Name: tok(token.IDENTIFIER, "obj")}, Name: tok(token.IDENTIFIER, "field")}
	if got, want := Print(get), "(get field obj)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	set := &Set{Object: &Variable{Name: tok(token.IDENTIFIER, "obj")}, Name: tok(token.IDENTIFIER, "field"), Value: &Literal{Value: 1.0}}
	if got, want := Print(set), "(set field obj 1)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	this := &This{Keyword: tok(token.THIS, "this")}
	if got, want := Print(this), "this"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}

	super := &Super{Keyword: tok(token.SUPER, "super"), Method: tok(token.IDENTIFIER, "init")}
	if got, want := Print(super), "(super init)"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}
