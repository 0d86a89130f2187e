/*
File    : monkey/evaluator/eval_function.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package evaluator

import (
	"github.com/pnair42/monkey/ast"
	"github.com/pnair42/monkey/environment"
	"github.com/pnair42/monkey/function"
	"github.com/pnair42/monkey/object"
)

// newFunction captures env by reference, not by copy: bindings introduced
// in env after this FunctionLiteral evaluates (other lets, sibling
// closures) remain visible through the closure later.
func newFunction(node *ast.FunctionLiteral, env *environment.Environment) object.Object {
	return &function.Function{
		Parameters: node.Parameters,
		Body:       node.Body,
		Env:        env,
	}
}

// applyFunction requires callee to be a *function.Function, checks arity,
// binds parameters in a fresh scope enclosed by the function's captured
// environment, evaluates the body, and unwraps a Return at this call
// boundary so it does not keep propagating past the call.
func applyFunction(callee object.Object, args []object.Object) object.Object {
	fn, ok := callee.(*function.Function)
	if !ok {
		return newError("not a function: %s", callee.Type())
	}

	if len(args) != len(fn.Parameters) {
		return newError("wrong number of arguments")
	}

	callEnv := environment.NewEnclosed(fn.Env)
	for i, param := range fn.Parameters {
		if _, ok := callEnv.Set(param.Value, args[i]); !ok {
			return newError("variable named %s already exists", param.Value)
		}
	}

	evaluated := Eval(fn.Body, callEnv)
	if ret, ok := evaluated.(*object.ReturnValue); ok {
		return ret.Value
	}
	return evaluated
}
