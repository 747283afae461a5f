// Package environment implements VScript's lexically scoped variable
// bindings: a chain of scopes linked by parent pointers, shared by reference
// so that closures observe later mutations of their enclosing scope.
package environment

import "github.com/vscript-lang/vscript/object"

// Environment is a single scope, optionally chained to an enclosing one.
type Environment struct {
	vars   map[string]object.Value
	parent *Environment
}

// New creates a top-level environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]object.Value)}
}

// NewEnclosed creates a new scope nested inside parent, such as a function
// call frame or a block body.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), parent: parent}
}

// Define creates a new binding in this scope, shadowing any binding of the
// same name in an enclosing scope. Used for 就是 declarations and for
// binding function parameters and the 对于 loop variable.
func (e *Environment) Define(name string, value object.Value) {
	e.vars[name] = value
}

// Get looks up name in this scope, then its ancestors, returning false if no
// binding exists anywhere in the chain.
func (e *Environment) Get(name string) (object.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the scope chain looking for an existing binding of name and
// updates it in place. It never creates a new binding; it returns false if
// name is not bound anywhere in the chain, leaving the caller to report an
// undefined-variable error.
func (e *Environment) Assign(name string, value object.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return true
		}
	}
	return false
}
