package ast

import (
	"encoding/json"
	"testing"

	"github.com/team99/golox/internal/token"
)

func TestToJSONMarshalsBinaryExpressionStatement(t *testing.T) {
	stmts := []Stmt{
		&Expression{Expression: &Binary{
			Left:  &Literal{Value: 1.0},
			Op:    tok(token.PLUS, "+"),
			Right: &Literal{Value: 2.0},
		}},
	}

	tree := ToJSON(stmts)
	raw, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if decoded[0]["node"] != "expression" {
		t.Fatalf("node = %v, want expression", decoded[0]["node"])
	}
	inner := decoded[0]["expression"].(map[string]any)
	if inner["node"] != "binary" || inner["op"] != "+" {
		t.Errorf("inner expression = %v", inner)
	}
}

func TestToJSONCoversClassWithSuperclassAndMethods(t *testing.T) {
	base := &Class{Name: tok(token.IDENTIFIER, "Base")}
	derived := &Class{
		Name:       tok(token.IDENTIFIER, "Derived"),
		Superclass: &Variable{Name: base.Name},
		Methods: []*Function{
			{Name: tok(token.IDENTIFIER, "greet"), Params: []token.Token{tok(token.IDENTIFIER, "x")}},
		},
	}

	node := stmtJSON(derived)
	if node["node"] != "class" || node["name"] != "Derived" || node["superclass"] != "Base" {
		t.Fatalf("unexpected class node: %v", node)
	}
	methods := node["methods"].([]any)
	if len(methods) != 1 {
		t.Fatalf("methods = %v, want 1 entry", methods)
	}
	method := methods[0].(map[string]any)
	if method["node"] != "function" || method["name"] != "greet" {
		t.Errorf("method node = %v", method)
	}
}

func TestToJSONCoversControlFlowAndCallChain(t *testing.T) {
	ifStmt := &If{
		Condition: &Literal{Value: true},
		ThenBranch: &Print{Expression: &Call{
			Callee: &Get{Object: &This{}, Name: tok(token.IDENTIFIER, "m")},
			Paren:  tok(token.RIGHT_PAREN, ")"),
			Args:   []Expr{&Unary{Op: tok(token.BANG, "!"), Right: &Variable{Name: tok(token.IDENTIFIER, "flag")}}},
		}},
		ElseBranch: &While{
			Condition: &Logical{Op: tok(token.OR, "or"), Left: &Literal{Value: false}, Right: &Literal{Value: true}},
			Body:      &Block{},
		},
	}

	node := stmtJSON(ifStmt)
	if node["node"] != "if" {
		t.Fatalf("node = %v", node["node"])
	}
	if _, ok := node["else"]; !ok {
		t.Fatal("expected an else branch to be present")
	}

	then := node["then"].(map[string]any)
	call := then["expression"].(map[string]any)
	if call["node"] != "call" {
		t.Fatalf("call node = %v", call)
	}
	callee := call["callee"].(map[string]any)
	if callee["node"] != "get" || callee["name"] != "m" {
		t.Errorf("callee = %v", callee)
	}
}

func TestToJSONCoversSetSuperAndAssign(t *testing.T) {
	set := &Set{Object: &This{}, Name: tok(token.IDENTIFIER, "field"), Value: &Assign{Name: tok(token.IDENTIFIER, "v"), Value: &Literal{Value: 1.0}}}
	node := exprJSON(set)
	if node["node"] != "set" {
		t.Fatalf("node = %v", node["node"])
	}
	value := node["value"].(map[string]any)
	if value["node"] != "assign" {
		t.Errorf("value = %v", value)
	}

	super := &Super{Method: tok(token.IDENTIFIER, "init")}
	if got := exprJSON(super); got["node"] != "super" || got["method"] != "init" {
		t.Errorf("super node = %v", got)
	}
}
