package interp

import (
	"fmt"

	"github.com/aledsdavies/golox/runtime/diag"
	"github.com/aledsdavies/golox/runtime/token"
	"github.com/aledsdavies/golox/runtime/value"
)

// Environment is one lexical scope: a name table plus a pointer to the scope
// it nests in. The chain is never empty; the outermost link is the global
// scope. Lookup and assignment walk outward, definition always lands in the
// innermost scope.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// NewEnvironment creates a scope nested in enclosing. Pass nil for the global
// scope.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		enclosing: enclosing,
	}
}

// Define creates or replaces a binding in this scope. Redeclaring a name is
// legal and simply overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves a name against this scope and everything it nests in,
// innermost first.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return value.Nil(), &diag.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}

// Assign writes to the nearest scope that already holds the name. Assignment
// never creates a binding; an unknown name is a runtime error.
func (e *Environment) Assign(name token.Token, v value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = v
			return nil
		}
	}
	return &diag.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}
