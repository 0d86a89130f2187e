/*
File    : monkey/parser/parser.go
Author  : Priya Nair
Contact : priya.nair@proton.me

Package parser implements a Pratt parser (top-down operator precedence
parsing) for Monkey. It consumes tokens one at a time from the lexer,
keeping exactly one token of lookahead, and builds an *ast.Program. Parse
errors are accumulated rather than fatal: the parser resynchronizes at the
next statement boundary and keeps going, so a single call to Parse can
surface every error in a source file at once.
*/
package parser

import (
	"fmt"

	"github.com/pnair42/monkey/ast"
	"github.com/pnair42/monkey/lexer"
	"github.com/pnair42/monkey/token"
)

// prefixParseFn parses an expression that starts with the current token
// (identifiers, literals, grouped expressions, unary operators, if, fn).
type prefixParseFn func() ast.Expression

// infixParseFn parses an expression given its already-parsed left operand
// (binary operators, call expressions).
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds all state needed to turn a token stream into an *ast.Program.
type Parser struct {
	lex *lexer.Lexer

	currToken token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser over src's token stream and registers every
// prefix/infix handler the grammar needs. It primes currToken/peekToken by
// advancing twice so both are valid before Parse is called.
func New(src string) *Parser {
	p := &Parser{
		lex: lexer.New(src),
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NE, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LE, p.parseInfixExpression)
	p.registerInfix(token.GE, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(kind token.Type, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Type, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

// nextToken advances the one-token lookahead window.
func (p *Parser) nextToken() {
	p.currToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addErrorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

// peekError records a "wrong token kind" error naming what was expected
// against the token actually found, including its source position.
func (p *Parser) peekError(expected token.Type) {
	p.addErrorf("[%d:%d] expected next token to be %s, got %s instead",
		p.peekToken.Line, p.peekToken.Column, expected, p.peekToken.Type)
}

// expectPeek checks peekToken's kind; on a match it advances and returns
// true, otherwise it records a peekError and returns false without
// advancing, leaving the parser positioned for the caller's recovery.
func (p *Parser) expectPeek(expected token.Type) bool {
	if p.peekToken.Type == expected {
		p.nextToken()
		return true
	}
	p.peekError(expected)
	return false
}

// Parse consumes the entire token stream and returns the resulting
// *ast.Program. It never returns nil; a source file that fails to parse
// at all still yields a Program whose Errors slice is non-empty.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for p.currToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	program.Errors = p.errors
	return program
}
