/*
File    : monkey/evaluator/eval_statements.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package evaluator

import (
	"github.com/pnair42/monkey/ast"
	"github.com/pnair42/monkey/environment"
	"github.com/pnair42/monkey/object"
)

// evalProgram evaluates every top-level statement in order. A Return is
// unwrapped here since there is no enclosing call to do that for it; an
// Error short-circuits immediately. Both stop the loop early.
func evalProgram(program *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates a brace-delimited statement sequence. Unlike
// evalProgram it does NOT unwrap a Return — it yields the wrapped value so
// the return keeps propagating through however many nested blocks enclose
// it, until the function-call boundary unwraps it.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == object.ReturnValueObj || kind == object.ErrorObj {
				return result
			}
		}
	}

	return result
}
