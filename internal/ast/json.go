package ast

// ToJSON converts a program's statements into a plain JSON-marshalable
// tree (nested maps and slices), for tooling that wants to inspect or
// query the AST rather than read the S-expression form Print produces.
func ToJSON(statements []Stmt) []any {
	out := make([]any, len(statements))
	for i, s := range statements {
		out[i] = stmtJSON(s)
	}
	return out
}

func stmtJSON(stmt Stmt) map[string]any {
	switch s := stmt.(type) {
	case *Block:
		stmts := make([]any, len(s.Statements))
		for i, st := range s.Statements {
			stmts[i] = stmtJSON(st)
		}
		return map[string]any{"node": "block", "statements": stmts}

	case *Class:
		methods := make([]any, len(s.Methods))
		for i, m := range s.Methods {
			methods[i] = stmtJSON(m)
		}
		node := map[string]any{"node": "class", "name": s.Name.Lexeme, "methods": methods}
		if s.Superclass != nil {
			node["superclass"] = s.Superclass.Name.Lexeme
		}
		return node

	case *Expression:
		return map[string]any{"node": "expression", "expression": exprJSON(s.Expression)}

	case *Function:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = p.Lexeme
		}
		body := make([]any, len(s.Body))
		for i, st := range s.Body {
			body[i] = stmtJSON(st)
		}
		return map[string]any{"node": "function", "name": s.Name.Lexeme, "params": params, "body": body}

	case *If:
		node := map[string]any{"node": "if", "condition": exprJSON(s.Condition), "then": stmtJSON(s.ThenBranch)}
		if s.ElseBranch != nil {
			node["else"] = stmtJSON(s.ElseBranch)
		}
		return node

	case *Print:
		return map[string]any{"node": "print", "expression": exprJSON(s.Expression)}

	case *Return:
		node := map[string]any{"node": "return"}
		if s.Value != nil {
			node["value"] = exprJSON(s.Value)
		}
		return node

	case *Var:
		node := map[string]any{"node": "var", "name": s.Name.Lexeme}
		if s.Initializer != nil {
			node["initializer"] = exprJSON(s.Initializer)
		}
		return node

	case *While:
		return map[string]any{"node": "while", "condition": exprJSON(s.Condition), "body": stmtJSON(s.Body)}

	default:
		return map[string]any{"node": "unknown"}
	}
}

func exprJSON(expr Expr) map[string]any {
	switch e := expr.(type) {
	case *Assign:
		return map[string]any{"node": "assign", "name": e.Name.Lexeme, "value": exprJSON(e.Value)}
	case *Binary:
		return map[string]any{"node": "binary", "op": e.Op.Lexeme, "left": exprJSON(e.Left), "right": exprJSON(e.Right)}
	case *Call:
		args := make([]any, len(e.Args))
		for i, a := range e.Args {
			args[i] = exprJSON(a)
		}
		return map[string]any{"node": "call", "callee": exprJSON(e.Callee), "args": args}
	case *Get:
		return map[string]any{"node": "get", "name": e.Name.Lexeme, "object": exprJSON(e.Object)}
	case *Grouping:
		return map[string]any{"node": "group", "inner": exprJSON(e.Inner)}
	case *Literal:
		return map[string]any{"node": "literal", "value": e.Value}
	case *Logical:
		return map[string]any{"node": "logical", "op": e.Op.Lexeme, "left": exprJSON(e.Left), "right": exprJSON(e.Right)}
	case *Set:
		return map[string]any{"node": "set", "name": e.Name.Lexeme, "object": exprJSON(e.Object), "value": exprJSON(e.Value)}
	case *Super:
		return map[string]any{"node": "super", "method": e.Method.Lexeme}
	case *This:
		return map[string]any{"node": "this"}
	case *Unary:
		return map[string]any{"node": "unary", "op": e.Op.Lexeme, "right": exprJSON(e.Right)}
	case *Variable:
		return map[string]any{"node": "variable", "name": e.Name.Lexeme}
	default:
		return map[string]any{"node": "unknown"}
	}
}
