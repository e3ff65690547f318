package interp

import "github.com/team99/golox/internal/ast"

// Function is a user-defined Lox function or method. Its closure is the
// environment active at the point of declaration, which is what makes
// closures capture variables rather than values.
type Function struct {
	decl          *ast.Function
	closure       *Environment
	isInitializer bool
}

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return "<fn " + f.decl.Name.Lexeme + ">" }
func (f *Function) Arity() int     { return len(f.decl.Params) }

// Call binds parameters in a fresh environment parented to the closure,
// executes the body, and catches the function's own return (if any). An
// initializer always returns `this`, regardless of what the body returns.
func (f *Function) Call(i *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for idx, param := range f.decl.Params {
		env.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(f.decl.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		if f.isInitializer {
			return f.closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return Nil{}, nil
}

// Bind produces a method bound to instance: a new Function whose closure
// is a fresh environment, parented to the original closure, that defines
// "this". isInitializer carries through unchanged.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return &Function{decl: f.decl, closure: env, isInitializer: f.isInitializer}
}
