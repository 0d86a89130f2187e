/*
File    : monkey/parser/parser_test.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/pnair42/monkey/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetStatement_ParsesNameAndValue(t *testing.T) {
	tests := []struct {
		input         string
		expectedIdent string
		expectedValue interface{}
	}{
		{"let x = 5;", "x", int64(5)},
		{"let y = true;", "y", true},
		{"let foobar = y;", "foobar", "y"},
	}

	for _, tt := range tests {
		program := New(tt.input).Parse()
		require.Empty(t, program.Errors)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.LetStatement)
		require.True(t, ok)
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, tt.expectedIdent, stmt.Name.Value)
		assertLiteralExpression(t, stmt.Value, tt.expectedValue)
	}
}

func TestReturnStatement_ParsesValue(t *testing.T) {
	program := New("return 993322;").Parse()
	require.Empty(t, program.Errors)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Equal(t, "return", stmt.TokenLiteral())
	assertLiteralExpression(t, stmt.ReturnValue, int64(993322))
}

func TestLetStatement_MissingAssignRecordsError(t *testing.T) {
	program := New("let x 5;").Parse()
	assert.NotEmpty(t, program.Errors)
}

func TestIdentifierExpression(t *testing.T) {
	program := New("foobar;").Parse()
	require.Empty(t, program.Errors)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assertLiteralExpression(t, stmt.Expression, "foobar")
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := New("5;").Parse()
	require.Empty(t, program.Errors)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assertLiteralExpression(t, stmt.Expression, int64(5))
}

func TestIntegerLiteralExpression_LeadingZeroIsDecimalNotOctal(t *testing.T) {
	program := New("010;").Parse()
	require.Empty(t, program.Errors)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(10), lit.Value)
}

func TestPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
		value    interface{}
	}{
		{"!5;", "!", int64(5)},
		{"-15;", "-", int64(15)},
		{"!true;", "!", true},
		{"!false;", "!", false},
	}

	for _, tt := range tests {
		program := New(tt.input).Parse()
		require.Empty(t, program.Errors)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.PrefixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
		assertLiteralExpression(t, expr.Right, tt.value)
	}
}

func TestInfixExpressions(t *testing.T) {
	tests := []struct {
		input      string
		leftValue  interface{}
		operator   string
		rightValue interface{}
	}{
		{"5 + 5;", int64(5), "+", int64(5)},
		{"5 - 5;", int64(5), "-", int64(5)},
		{"5 * 5;", int64(5), "*", int64(5)},
		{"5 / 5;", int64(5), "/", int64(5)},
		{"5 > 5;", int64(5), ">", int64(5)},
		{"5 < 5;", int64(5), "<", int64(5)},
		{"5 >= 5;", int64(5), ">=", int64(5)},
		{"5 <= 5;", int64(5), "<=", int64(5)},
		{"5 == 5;", int64(5), "==", int64(5)},
		{"5 != 5;", int64(5), "!=", int64(5)},
		{"true == true", true, "==", true},
		{"true != false", true, "!=", false},
	}

	for _, tt := range tests {
		program := New(tt.input).Parse()
		require.Empty(t, program.Errors)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.InfixExpression)
		require.True(t, ok)
		assertLiteralExpression(t, expr.Left, tt.leftValue)
		assert.Equal(t, tt.operator, expr.Operator)
		assertLiteralExpression(t, expr.Right, tt.rightValue)
	}
}

func TestOperatorPrecedence_StringsRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"3 + 4; -5 * 5", "(3 + 4)((-5) * 5)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"true", "true"},
		{"false", "false"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"3 < 5 == true", "((3 < 5) == true)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"add(a + b + c * d / f + g)", "add((((a + b) + ((c * d) / f)) + g))"},
	}

	for _, tt := range tests {
		program := New(tt.input).Parse()
		require.Empty(t, program.Errors, tt.input)

		got := ""
		for _, stmt := range program.Statements {
			got += stmt.String()
		}
		assert.Equal(t, tt.expected, got, tt.input)
	}
}

func TestIfExpression_ParsesConditionAndConsequence(t *testing.T) {
	program := New("if (x < y) { x }").Parse()
	require.Empty(t, program.Errors)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)

	assertInfixExpression(t, expr.Condition, "x", "<", "y")
	require.Len(t, expr.Consequence.Statements, 1)
	assert.Nil(t, expr.Alternative)
}

func TestIfElseExpression_ParsesBothBranches(t *testing.T) {
	program := New("if (x < y) { x } else { y }").Parse()
	require.Empty(t, program.Errors)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfExpression)
	require.True(t, ok)
	require.Len(t, expr.Consequence.Statements, 1)
	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Statements, 1)
}

func TestFunctionLiteral_ParsesParametersAndBody(t *testing.T) {
	program := New("fn(x, y) { x + y; }").Parse()
	require.Empty(t, program.Errors)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Statements, 1)
}

func TestFunctionParameters_VariousArities(t *testing.T) {
	tests := []struct {
		input  string
		params []string
	}{
		{"fn() {};", []string{}},
		{"fn(x) {};", []string{"x"}},
		{"fn(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := New(tt.input).Parse()
		require.Empty(t, program.Errors)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)
		require.Len(t, fn.Parameters, len(tt.params))
		for i, name := range tt.params {
			assert.Equal(t, name, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpression_ParsesFunctionAndArguments(t *testing.T) {
	program := New("add(1, 2 * 3, 4 + 5);").Parse()
	require.Empty(t, program.Errors)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	assertLiteralExpression(t, call.Function, "add")
	require.Len(t, call.Arguments, 3)
	assertLiteralExpression(t, call.Arguments[0], int64(1))
	assertInfixExpression(t, call.Arguments[1], int64(2), "*", int64(3))
	assertInfixExpression(t, call.Arguments[2], int64(4), "+", int64(5))
}

func TestParserErrors_ReportSourcePosition(t *testing.T) {
	program := New("let = 5;").Parse()
	require.NotEmpty(t, program.Errors)
	assert.Contains(t, program.Errors[0], "[1:")
}

// --- helpers ---

func assertLiteralExpression(t *testing.T, expr ast.Expression, expected interface{}) {
	t.Helper()
	switch v := expected.(type) {
	case int64:
		assertIntegerLiteral(t, expr, v)
	case bool:
		assertBooleanLiteral(t, expr, v)
	case string:
		assertIdentifier(t, expr, v)
	default:
		t.Fatalf("unexpected expected-value type %T", expected)
	}
}

func assertIntegerLiteral(t *testing.T, expr ast.Expression, value int64) {
	t.Helper()
	lit, ok := expr.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, value, lit.Value)
	assert.Equal(t, fmt.Sprintf("%d", value), lit.TokenLiteral())
}

func assertBooleanLiteral(t *testing.T, expr ast.Expression, value bool) {
	t.Helper()
	b, ok := expr.(*ast.Boolean)
	require.True(t, ok)
	assert.Equal(t, value, b.Value)
}

func assertIdentifier(t *testing.T, expr ast.Expression, value string) {
	t.Helper()
	ident, ok := expr.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, value, ident.Value)
}

func assertInfixExpression(t *testing.T, expr ast.Expression, left interface{}, operator string, right interface{}) {
	t.Helper()
	infix, ok := expr.(*ast.InfixExpression)
	require.True(t, ok)
	assertLiteralExpression(t, infix.Left, left)
	assert.Equal(t, operator, infix.Operator)
	assertLiteralExpression(t, infix.Right, right)
}
