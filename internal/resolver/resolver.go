// Package resolver performs a static pass over the parsed AST: for every
// local variable reference it computes the number of enclosing
// environments the interpreter must walk at runtime (the "resolution
// depth"), and it enforces the handful of static rules Lox has (no
// top-level return, no `this` outside a class, ...).
//
// The resolver's only output that matters to the interpreter is the
// locals table; everything else is diagnostics.
package resolver

import (
	"github.com/team99/golox/internal/ast"
	"github.com/team99/golox/internal/token"
)

// Error is a static error found while resolving, reported with the
// offending token the way parser errors are.
type Error struct {
	Token   token.Token
	Message string
}

func (e Error) Error() string {
	return e.Message
}

type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether its declaration has finished (declare vs.
// define).
type scope map[string]bool

// Resolver walks the AST computing the locals table. The zero value is not
// usable; construct with New.
type Resolver struct {
	scopes          []scope
	locals          map[ast.Expr]int
	errors          []Error
	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{locals: make(map[ast.Expr]int)}
}

// Errors returns every static error found during Resolve.
func (r *Resolver) Errors() []Error {
	return r.errors
}

// Locals returns the expression -> depth table. Expressions not present
// resolve as globals at runtime.
func (r *Resolver) Locals() map[ast.Expr]int {
	return r.locals
}

// Resolve walks every top-level statement.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, exists := s[name.Lexeme]; exists {
		r.errors = append(r.errors, Error{Token: name, Message: "Already a variable with this name in this scope."})
	}
	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; the first
// match records depth = how many scopes above the innermost one the name
// lives. No match means the name is a global and nothing is recorded.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// ---- statements ----

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *ast.Class:
		r.resolveClass(s)

	case *ast.Expression:
		r.resolveExpr(s.Expression)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}

	case *ast.Print:
		r.resolveExpr(s.Expression)

	case *ast.Return:
		if r.currentFunction == fnNone {
			r.errors = append(r.errors, Error{Token: s.Keyword, Message: "Can't return from top-level code."})
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errors = append(r.errors, Error{Token: s.Keyword, Message: "Can't return a value from an initializer."})
			}
			r.resolveExpr(s.Value)
		}

	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errors = append(r.errors, Error{Token: s.Superclass.Name, Message: "A class can't inherit from itself."})
		}
		r.currentClass = classSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declType := fnMethod
		if method.Name.Lexeme == "init" {
			declType = fnInitializer
		}
		r.resolveFunction(method, declType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

// ---- expressions ----

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.errors = append(r.errors, Error{Token: e.Keyword, Message: "Can't use 'super' outside of a class."})
		case classClass:
			r.errors = append(r.errors, Error{Token: e.Keyword, Message: "Can't use 'super' in a class with no superclass."})
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.This:
		if r.currentClass == classNone {
			r.errors = append(r.errors, Error{Token: e.Keyword, Message: "Can't use 'this' outside of a class."})
			return
		}
		r.resolveLocal(e, e.Keyword)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errors = append(r.errors, Error{Token: e.Name, Message: "Can't read local variable in its own initializer."})
			}
		}
		r.resolveLocal(e, e.Name)
	}
}
