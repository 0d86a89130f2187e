/*
File    : monkey/evaluator/eval_conditionals.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package evaluator

import (
	"github.com/pnair42/monkey/ast"
	"github.com/pnair42/monkey/environment"
	"github.com/pnair42/monkey/object"
)

func evalIfExpression(node *ast.IfExpression, env *environment.Environment) object.Object {
	condition := Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}

	switch {
	case isTruthy(condition):
		return Eval(node.Consequence, env)
	case node.Alternative != nil:
		return Eval(node.Alternative, env)
	default:
		return NULL
	}
}

// isTruthy implements conventional Monkey truthiness: true is truthy,
// false/null are falsy, and an Integer is truthy unless it is exactly
// zero — negative integers are truthy too.
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Boolean:
		return obj.Value
	case *object.Null:
		return false
	case *object.Integer:
		return obj.Value != 0
	default:
		return true
	}
}
