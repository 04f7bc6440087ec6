/*
File: gomixc/parser/parser_expressions.go

Expression parsing: the precedence ladder equality > comparison > term >
factor > unary > primary from grammar table in spec §4.2, plus the
postfix pattern-match annotation. Every parseX here assumes Curr already
sits on the first token of the production and leaves Curr on the last
token consumed, letting the caller decide (by inspecting Next) whether to
keep climbing.
*/
package parser

import (
	"github.com/gomixc/compiler/ast"
	"github.com/gomixc/compiler/token"
)

// parseExpression is the grammar's `expression` entry point.
func (par *Parser) parseExpression() ast.Expression {
	return par.parseEquality()
}

// parseEquality handles `==` and `!=`, left-associative. This is an
// extension beyond spec's literal grammar table (which marks `equality`
// as a pass-through); SPEC_FULL §4 grounds promoting it to a real
// BinaryOp in the icmp lowering spec §4.3 already mandates for
// pattern-match arms.
func (par *Parser) parseEquality() ast.Expression {
	left := par.parseComparison()
	for par.Next.Kind == token.Equal || par.Next.Kind == token.NotEqual {
		op := par.Next.Text
		par.advance() // Curr = operator
		par.advance() // Curr = first token of right operand
		right := par.parseComparison()
		if par.HasErrors() {
			return left
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

// parseComparison handles `<` `<=` `>` `>=`, left-associative. See
// parseEquality's grounding note.
func (par *Parser) parseComparison() ast.Expression {
	left := par.parseTerm()
	for isComparisonOp(par.Next.Kind) {
		op := par.Next.Text
		par.advance()
		par.advance()
		right := par.parseTerm()
		if par.HasErrors() {
			return left
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

func isComparisonOp(kind token.Kind) bool {
	return kind == token.Less || kind == token.LessEq || kind == token.Greater || kind == token.GreaterEq
}

// parseTerm handles `+` and `-`, left-associative (spec §4.2).
func (par *Parser) parseTerm() ast.Expression {
	left := par.parseFactor()
	for par.Next.Kind == token.Plus || par.Next.Kind == token.Minus {
		op := par.Next.Text
		par.advance()
		par.advance()
		right := par.parseFactor()
		if par.HasErrors() {
			return left
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

// parseFactor handles `*` and `/`, left-associative (spec §4.2).
func (par *Parser) parseFactor() ast.Expression {
	left := par.parseUnary()
	for par.Next.Kind == token.Star || par.Next.Kind == token.Slash {
		op := par.Next.Text
		par.advance()
		par.advance()
		right := par.parseUnary()
		if par.HasErrors() {
			return left
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
	return left
}

// parseUnary is `unary := primary` (spec §4.2 defines no prefix operator
// in this core's grammar; SPEC_FULL §4 documents why `!`/`-` prefixes stay
// unimplemented despite their tokens existing).
func (par *Parser) parseUnary() ast.Expression {
	return par.parsePrimary()
}

// parsePrimary is `primary-base ('?' pattern-match)?`.
func (par *Parser) parsePrimary() ast.Expression {
	base := par.parsePrimaryBase()
	if par.HasErrors() {
		return base
	}
	if par.Next.Kind == token.Question {
		par.advance() // Curr = '?'
		if !par.expect(token.LBrace) {
			return base
		}
		return par.parsePatternMatch(base)
	}
	return base
}

// parsePrimaryBase parses one of: function call, variable reference,
// integer/float/string/bool literal, or function literal. A parenthesized
// non-function expression is not implemented in this core (spec §9 Open
// Question): any '(' not shaped like a function literal's parameter list
// is reported as UnexpectedPrimaryError, per spec's suggested relaxation.
func (par *Parser) parsePrimaryBase() ast.Expression {
	switch par.Curr.Kind {
	case token.Ident:
		if par.peek(1) == token.LParen {
			return par.parseFunctionCall()
		}
		return &ast.Identifier{Text: par.Curr.Text}
	case token.IntLit:
		return &ast.IntegerLiteral{TypeName: "i32", Text: par.Curr.Text}
	case token.FloatLit:
		return &ast.FloatLiteral{TypeName: "f32", Text: par.Curr.Text}
	case token.StringLit:
		return &ast.StringLiteral{Text: par.Curr.Text}
	case token.BoolLit:
		return &ast.BoolLiteral{Text: par.Curr.Text}
	case token.LParen:
		return par.parseFunctionLiteral()
	default:
		par.addError(&UnexpectedPrimaryError{Got: par.Curr})
		return nil
	}
}
