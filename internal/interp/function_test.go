package interp

import (
	"bytes"
	"testing"

	"github.com/team99/golox/internal/ast"
	"github.com/team99/golox/internal/token"
)

func identTok(name string) token.Token {
	return token.New(token.IDENTIFIER, name, nil, token.Position{Line: 1, Column: 1})
}

func TestFunctionCallBindsParamsAndReturnsValue(t *testing.T) {
	a := &ast.Variable{Name: identTok("a")}
	b := &ast.Variable{Name: identTok("b")}
	decl := &ast.Function{
		Name:   identTok("add"),
		Params: []token.Token{identTok("a"), identTok("b")},
		Body: []ast.Stmt{
			&ast.Return{
				Keyword: token.New(token.RETURN, "return", nil, token.Position{Line: 1}),
				Value: &ast.Binary{
					Left:  a,
					Op:    token.New(token.PLUS, "+", nil, token.Position{Line: 1}),
					Right: b,
				},
			},
		},
	}
	fn := &Function{decl: decl, closure: NewEnvironment()}

	var out bytes.Buffer
	i := New(&out)
	// Parameters live in the call's own environment (depth 0), which is
	// what the resolver would record; unresolved names are looked up as globals.
	i.MergeLocal(a, 0)
	i.MergeLocal(b, 0)
	result, err := fn.Call(i, []Value{Number(2), Number(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != Value(Number(5)) {
		t.Errorf("result = %v, want 5", result)
	}
}

func TestFunctionCallWithoutReturnYieldsNil(t *testing.T) {
	decl := &ast.Function{Name: identTok("noop"), Body: nil}
	fn := &Function{decl: decl, closure: NewEnvironment()}

	var out bytes.Buffer
	i := New(&out)
	result, err := fn.Call(i, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(Nil); !ok {
		t.Errorf("result = %v, want Nil", result)
	}
}

func TestInitializerAlwaysReturnsThisRegardlessOfBody(t *testing.T) {
	decl := &ast.Function{
		Name: identTok("init"),
		Body: []ast.Stmt{
			&ast.Return{Keyword: token.New(token.RETURN, "return", nil, token.Position{Line: 1}), Value: &ast.Literal{Value: 123.0}},
		},
	}

	closure := NewEnvironment()
	fn := &Function{decl: decl, closure: closure, isInitializer: true}
	class := &Class{Name: "C", Methods: map[string]*Function{"init": fn}}
	instance := &Instance{class: class, fields: make(map[string]Value)}
	bound := fn.Bind(instance)

	var out bytes.Buffer
	i := New(&out)
	result, err := bound.Call(i, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != Value(instance) {
		t.Errorf("result = %v, want the bound instance even though the body returns a literal", result)
	}
}

func TestBindCreatesIndependentClosurePerInstance(t *testing.T) {
	decl := &ast.Function{Name: identTok("m")}
	fn := &Function{decl: decl, closure: NewEnvironment()}

	instanceA := &Instance{fields: make(map[string]Value)}
	instanceB := &Instance{fields: make(map[string]Value)}
	boundA := fn.Bind(instanceA)
	boundB := fn.Bind(instanceB)

	thisA, _ := boundA.closure.Get("this")
	thisB, _ := boundB.closure.Get("this")
	if thisA == thisB {
		t.Error("each Bind call should produce a closure capturing its own instance")
	}
}
