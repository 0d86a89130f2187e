/*
File    : monkey/parser/precedence.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package parser

import "github.com/pnair42/monkey/token"

// Operator precedence, lowest to highest. Higher binds tighter. Equal
// precedence is left-associative because the Pratt loop only recurses
// into the right-hand operand when the next operator's precedence is
// strictly greater than the current one.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // fn(x)
)

// precedences maps an infix-capable token to its binding power. Tokens
// absent from this map (and from infixParseFns) are never treated as
// infix operators, so the Pratt loop's "no infix handler" check covers
// them automatically.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NE:       EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

// peekPrecedence returns the precedence of the upcoming token, or LOWEST
// if it is not an infix operator.
func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// currPrecedence returns the precedence of the current token, or LOWEST
// if it is not an infix operator.
func (p *Parser) currPrecedence() int {
	if pr, ok := precedences[p.currToken.Type]; ok {
		return pr
	}
	return LOWEST
}
