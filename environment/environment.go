/*
File    : monkey/environment/environment.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/

// Package environment implements the lexical scope chain that Monkey
// programs evaluate against: a name-to-value store with an optional link
// to an enclosing scope.
package environment

import "github.com/pnair42/monkey/object"

// Environment is one lexical scope: its own bindings plus a link to the
// scope that encloses it. Lookup walks inside-out — the current scope's
// store first, then outer, then outer's outer, and so on — so inner
// bindings shadow outer ones of the same name.
//
// A Function captures the Environment in effect at its FunctionLiteral's
// evaluation site by reference, not by copy: later bindings introduced in
// that scope (e.g. other closures defined alongside it) remain visible
// through the capture, matching the sharing spec.md §5 describes.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a root environment with no enclosing scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a fresh scope whose outer link is the given
// environment. This is the scope created for each function call, and
// whose outer is the function's captured environment.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), outer: outer}
}

// Get looks up name in this scope, then recursively in outer scopes, until
// found or the chain is exhausted.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in the current scope only. It refuses to rebind a
// name already present in this scope — shadowing an outer binding is fine,
// redeclaring within the same scope is not — and reports that with ok=false.
func (e *Environment) Set(name string, val object.Object) (object.Object, bool) {
	if _, exists := e.store[name]; exists {
		return nil, false
	}
	e.store[name] = val
	return val, true
}
