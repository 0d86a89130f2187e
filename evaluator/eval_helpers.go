/*
File    : monkey/evaluator/eval_helpers.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package evaluator

import (
	"fmt"

	"github.com/pnair42/monkey/object"
)

func newError(format string, args ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ErrorObj
}
