/*
File: gomixc/parser/parser_functions.go

Function literals and function calls (grammar rules `param-list`,
`arglist`, and the `(` production of `primary-base`, spec §4.2).
*/
package parser

import (
	"github.com/gomixc/compiler/ast"
	"github.com/gomixc/compiler/token"
)

// parseFunctionCall parses `Ident '(' arglist? ')'`. Curr is the callee
// Ident, Next is LParen on entry.
func (par *Parser) parseFunctionCall() ast.Expression {
	callee := par.Curr.Text
	par.advance() // Curr = '('

	var args []ast.Expression
	if par.Next.Kind != token.RParen {
		par.advance() // Curr = first token of first argument
		args = append(args, par.parseExpression())
		for !par.HasErrors() && par.Next.Kind == token.Comma {
			par.advance() // Curr = ','
			par.advance() // Curr = first token of next argument
			args = append(args, par.parseExpression())
		}
		if par.HasErrors() {
			return nil
		}
	}
	if !par.expect(token.RParen) {
		return nil
	}
	return &ast.FunctionCall{Callee: callee, Arguments: args}
}

// parseFunctionLiteral parses
// `'(' param-list ')' ':' TypeName '=>' expression`. Curr is LParen on
// entry. A parenthesized expression that isn't shaped like a parameter
// list is reported as UnexpectedPrimaryError (spec §9 Open Question).
func (par *Parser) parseFunctionLiteral() ast.Expression {
	var params []ast.Parameter

	if par.Next.Kind == token.RParen {
		par.advance() // Curr = ')'
	} else {
		par.advance() // Curr = first token of first parameter
		for {
			if par.Curr.Kind != token.Ident {
				par.addError(&UnexpectedPrimaryError{Got: par.Curr})
				return nil
			}
			name := par.Curr.Text
			if par.Next.Kind != token.Colon {
				par.addError(&UnexpectedPrimaryError{Got: par.Next})
				return nil
			}
			par.advance() // Curr = ':'
			if !par.expect(token.TypeName) {
				return nil
			}
			params = append(params, ast.Parameter{Name: name, TypeName: par.Curr.Text})

			if par.Next.Kind != token.Comma {
				break
			}
			par.advance() // Curr = ','
			par.advance() // Curr = first token of next parameter
		}
		if !par.expect(token.RParen) {
			return nil
		}
	}

	if !par.expect(token.Colon) {
		return nil
	}
	if !par.expect(token.TypeName) {
		return nil
	}
	returnType := par.Curr.Text

	if !par.expect(token.Arrow) {
		return nil
	}
	par.advance() // Curr = first token of the body expression

	body := par.parseExpression()
	if par.HasErrors() {
		return nil
	}

	return &ast.FunctionLiteral{Parameters: params, ReturnType: returnType, Body: body}
}
