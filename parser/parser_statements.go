/*
File: gomixc/parser/parser_statements.go

Top-level item parsing: declaration, print, mod, and bare expression
statements (grammar rule `item`, spec §4.2).
*/
package parser

import (
	"github.com/gomixc/compiler/ast"
	"github.com/gomixc/compiler/token"
)

// parseItem dispatches on the current token to one of the four item
// productions.
func (par *Parser) parseItem() ast.Item {
	switch par.Curr.Kind {
	case token.Let:
		return par.parseDeclaration()
	case token.Print:
		return par.parsePrintStatement()
	case token.Mod:
		return par.parseModDeclaration()
	default:
		return par.parseExpressionStatement()
	}
}

// parseDeclaration parses `'let' Ident ':' TypeName '=' expression ';'`.
func (par *Parser) parseDeclaration() ast.Item {
	// Curr == Let
	if !par.expect(token.Ident) {
		return nil
	}
	name := par.Curr.Text

	if !par.expect(token.Colon) {
		return nil
	}
	if !par.expect(token.TypeName) {
		return nil
	}
	typeName := par.Curr.Text

	if !par.expect(token.Assign) {
		return nil
	}
	par.advance() // move onto the first token of the initializer expression

	init := par.parseExpression()
	if par.HasErrors() {
		return nil
	}

	if !par.expect(token.Semicolon) {
		return nil
	}

	return &ast.Declaration{Name: name, TypeName: typeName, Initializer: init}
}

// parsePrintStatement parses `'print' '(' expression ')' ';'`.
func (par *Parser) parsePrintStatement() ast.Item {
	// Curr == Print
	if !par.expect(token.LParen) {
		return nil
	}
	par.advance()

	expr := par.parseExpression()
	if par.HasErrors() {
		return nil
	}

	if !par.expect(token.RParen) {
		return nil
	}
	if !par.expect(token.Semicolon) {
		return nil
	}

	return &ast.PrintStatement{Expression: expr}
}

// parseModDeclaration parses `'mod' Ident ';'`. The Mod keyword survives
// in the lexical grammar from an abandoned module-declaration design
// (SPEC_FULL §4); it is recognized and produces an ast.ModDeclaration
// that the code generator emits nothing for.
func (par *Parser) parseModDeclaration() ast.Item {
	// Curr == Mod
	if !par.expect(token.Ident) {
		return nil
	}
	name := par.Curr.Text
	if !par.expect(token.Semicolon) {
		return nil
	}
	return &ast.ModDeclaration{Name: name}
}

// parseExpressionStatement parses `expression ';'`.
func (par *Parser) parseExpressionStatement() ast.Item {
	expr := par.parseExpression()
	if par.HasErrors() {
		return nil
	}
	if !par.expect(token.Semicolon) {
		return nil
	}
	return &ast.ExpressionStatement{Expression: expr}
}
