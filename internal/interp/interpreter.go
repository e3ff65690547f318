package interp

import (
	"fmt"
	"io"

	"github.com/team99/golox/internal/ast"
	"github.com/team99/golox/internal/token"
)

// Interpreter walks the AST and executes it against a mutable environment
// chain. Construct with New once; a REPL reuses the same
// Interpreter across lines so that definitions persist.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int
	out     io.Writer
}

// New creates an Interpreter whose globals contain the single native
// binding "clock". Output from `print` is written to out.
func New(out io.Writer) *Interpreter {
	globals := NewEnvironment()
	globals.Define("clock", clockFn())

	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  make(map[ast.Expr]int),
		out:     out,
	}
}

// SetLocals installs the resolver's expression -> depth table. Must be
// called (with the resolver's output for the same program) before
// Interpret; an expression absent from locals is treated as a global.
func (i *Interpreter) SetLocals(locals map[ast.Expr]int) {
	i.locals = locals
}

// MergeLocal adds a single resolved depth to the locals table without
// discarding entries from earlier programs. A REPL resolves and
// interprets one line at a time against the same Interpreter, so each
// line's locals must accumulate rather than replace.
func (i *Interpreter) MergeLocal(expr ast.Expr, distance int) {
	i.locals[expr] = distance
}

// Interpret executes a program's top-level statements in order. A
// RuntimeError halts execution immediately and is returned to the caller
// rather than accumulated.
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ---- statement execution ----

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnclosedEnvironment(i.env))

	case *ast.Class:
		return i.executeClass(s)

	case *ast.Expression:
		_, err := i.evaluate(s.Expression)
		return err

	case *ast.Function:
		fn := &Function{decl: s, closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return i.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil

	case *ast.Print:
		value, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, value.String())
		return nil

	case *ast.Return:
		var value Value = Nil{}
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}

	case *ast.Var:
		var value Value = Nil{}
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("interp: unhandled statement %T", stmt)
	}
}

// executeBlock runs statements against env, restoring the interpreter's
// previous environment on every exit path — normal completion, a `return`
// unwinding through it, or a runtime error.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) (err error) {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err = i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeClass declares the class name up front (nil, so methods can
// reference it), builds its method table capturing an environment that
// defines "super" when there is a superclass, then binds the finished
// Class value.
func (i *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	i.env.Define(s.Name.Lexeme, Nil{})

	classEnv := i.env
	if superclass != nil {
		classEnv = NewEnclosedEnvironment(i.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			decl:          m,
			closure:       classEnv,
			isInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	i.env.Assign(s.Name.Lexeme, class)
	return nil
}

// ---- expression evaluation ----

func (i *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		return i.evalAssign(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Call:
		return i.evalCall(e)
	case *ast.Get:
		return i.evalGet(e)
	case *ast.Grouping:
		return i.evaluate(e.Inner)
	case *ast.Literal:
		return literalValue(e.Value), nil
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Set:
		return i.evalSet(e)
	case *ast.Super:
		return i.evalSuper(e)
	case *ast.This:
		return i.lookupVariable(e.Keyword, e)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Variable:
		return i.lookupVariable(e.Name, e)
	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", expr)
	}
}

func literalValue(v any) Value {
	switch val := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Boolean(val)
	case float64:
		return Number(val)
	case string:
		return String(val)
	default:
		return Nil{}
	}
}

// lookupVariable dispatches through the locals table: a resolved (local)
// reference walks exactly the recorded number of environments; an
// unresolved one is a global.
func (i *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	if v, ok := i.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

func (i *Interpreter) evalAssign(e *ast.Assign) (Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	if distance, ok := i.locals[e]; ok {
		i.env.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if i.globals.Assign(e.Name.Lexeme, value) {
		return value, nil
	}
	return nil, newRuntimeError(e.Name, "Undefined variable '"+e.Name.Lexeme+"'.")
}

func (i *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	// Short-circuit, returning the value that determined the result, not
	// a coerced boolean.
	if e.Op.Type == token.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Lexeme {
	case "-":
		n, ok := right.(Number)
		if !ok {
			return nil, newRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case "!":
		return Boolean(!isTruthy(right)), nil
	}
	return nil, newRuntimeError(e.Op, "Unknown unary operator.")
}

func (i *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Lexeme {
	case "+":
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Op, "Operands must be two numbers or two strings.")
	case "-":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case "*":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case "/":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil // division by zero yields +-Inf/NaN, not an error
	case ">":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln > rn), nil
	case ">=":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln >= rn), nil
	case "<":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln < rn), nil
	case "<=":
		ln, rn, err := numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return Boolean(ln <= rn), nil
	case "!=":
		return Boolean(!isEqual(left, right)), nil
	case "==":
		return Boolean(isEqual(left, right)), nil
	}
	return nil, newRuntimeError(e.Op, "Unknown binary operator.")
}

func numberOperands(op token.Token, left, right Value) (Number, Number, error) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return 0, 0, newRuntimeError(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (i *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(i, args)
}

func (i *Interpreter) evalGet(e *ast.Get) (Value, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have properties.")
	}
	value, ok := instance.get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name, "Undefined property '"+e.Name.Lexeme+"'.")
	}
	return value, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (Value, error) {
	object, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper resolves "super.method": the superclass lives one env hop
// further out than the instance that defines "this".
func (i *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := i.locals[e]
	superVal := i.env.GetAt(distance, "super")
	super, ok := superVal.(*Class)
	if !ok {
		return nil, newRuntimeError(e.Keyword, "'super' is not bound to a class.")
	}

	object := i.env.GetAt(distance-1, "this").(*Instance)

	method := super.findMethod(e.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(object), nil
}
