/*
File    : monkey/parser/statements.go
Author  : Priya Nair
Contact : priya.nair@proton.me
*/
package parser

import (
	"github.com/pnair42/monkey/ast"
	"github.com/pnair42/monkey/token"
)

// parseStatement dispatches on the current token's kind: let and return
// have dedicated statement forms, everything else is an expression used in
// statement position.
func (p *Parser) parseStatement() ast.Statement {
	switch p.currToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let IDENT = expr ;?`. A missing identifier or
// missing '=' is recorded as an error and the parser resynchronizes at the
// next semicolon so later statements still get a chance to parse.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.currToken}

	if !p.expectPeek(token.IDENT) {
		p.skipToStatementBoundary()
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.currToken, Value: p.currToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		p.skipToStatementBoundary()
		return nil
	}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}
	return stmt
}

// parseReturnStatement parses `return expr ;?`.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.currToken}

	p.nextToken()
	stmt.ReturnValue = p.parseExpression(LOWEST)

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}
	return stmt
}

// parseExpressionStatement parses a bare expression used as a statement,
// e.g. a call or an identifier on its own line.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.currToken}
	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekToken.Type == token.SEMICOLON {
		p.nextToken()
	}
	return stmt
}

// parseBlockStatement parses `{ statement* }`. A missing closing brace is
// a parse error; the loop simply stops at EOF in that case.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.currToken, Statements: []ast.Statement{}}

	p.nextToken()

	for p.currToken.Type != token.RBRACE && p.currToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.currToken.Type != token.RBRACE {
		p.addErrorf("[%d:%d] expected next token to be %s, got %s instead",
			p.currToken.Line, p.currToken.Column, token.RBRACE, p.currToken.Type)
	}

	return block
}

// skipToStatementBoundary advances past tokens until a semicolon or EOF,
// so a malformed statement does not derail the parse of everything after
// it.
func (p *Parser) skipToStatementBoundary() {
	for p.currToken.Type != token.SEMICOLON && p.currToken.Type != token.EOF {
		p.nextToken()
	}
}
