package interp

import "fmt"

// Environment is a name -> value scope, optionally chained to an outer
// (parent) environment. A non-empty chain's root is always the globals
// environment; intermediate ones are created per block, call, or class
// scope. An environment may outlive the syntactic construct that created
// it when a closure captures it.
type Environment struct {
	values map[string]Value
	outer  *Environment
}

// NewEnvironment creates a root environment with no outer scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), outer: outer}
}

// Define creates (or overwrites) a binding in this environment's own
// scope, never touching outer scopes. Used for var/fun/class declarations
// and parameter binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks up name, searching outward through parent scopes. Lookup
// never mutates the chain.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding, searching outward, and reports
// whether the name was found anywhere in the chain.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, value)
	}
	return false
}

// Ancestor walks distance parents up the chain. The resolver guarantees
// that every depth it records is reachable; a mismatch here is a bug in
// the resolver, not a condition callers need to recover from.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.outer == nil {
			panic(fmt.Sprintf("resolver/interpreter mismatch: no ancestor at distance %d", distance))
		}
		env = env.outer
	}
	return env
}

// GetAt fetches name from the environment exactly distance hops up the
// chain, as directed by the resolver's locals table.
func (e *Environment) GetAt(distance int, name string) Value {
	v, ok := e.Ancestor(distance).values[name]
	if !ok {
		panic(fmt.Sprintf("resolver/interpreter mismatch: %q not defined at distance %d", name, distance))
	}
	return v
}

// AssignAt assigns name in the environment exactly distance hops up the
// chain.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.Ancestor(distance).values[name] = value
}
