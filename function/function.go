/*
File    : monkey/function/function.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/

// Package function implements Monkey's closure object. It lives outside
// package object to avoid a cycle: a Function needs to hold the
// environment.Environment it closed over, and environment needs to hold
// object.Object values in its store — putting Function directly in object
// would make object depend on environment while environment depends on
// object.
package function

import (
	"strings"

	"github.com/pnair42/monkey/ast"
	"github.com/pnair42/monkey/environment"
	"github.com/pnair42/monkey/object"
)

// Function is a closure: its parameter list, its body, and a reference to
// the environment in effect when the FunctionLiteral was evaluated. That
// reference, not a copy, is what lets the closure observe bindings
// introduced in its defining scope after the fact.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *environment.Environment
}

func (f *Function) Type() object.Type { return object.FunctionObj }

// Inspect renders every function as the fixed token "function" per the
// language's object print forms — the body and parameters are not echoed
// back, since Monkey has no use for printing closures structurally.
func (f *Function) Inspect() string { return "function" }

// Signature renders "fn(a, b, c)" for diagnostics; Inspect intentionally
// does not use this, matching the spec's print form.
func (f *Function) Signature() string {
	names := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		names[i] = p.Value
	}
	return "fn(" + strings.Join(names, ", ") + ")"
}
