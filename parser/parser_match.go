/*
File: gomixc/parser/parser_match.go

Pattern-match expressions: `scrutinee '?' '{' arm (',' arm)* ','? '}'`
where each arm is `pattern '=>' value` (spec §4.2, §4.3's match-arm
lowering, §9's "true" catch-all convention).
*/
package parser

import (
	"github.com/gomixc/compiler/ast"
	"github.com/gomixc/compiler/token"
)

// parsePatternMatch parses the arm list of a pattern match. Curr is
// LBrace on entry; the caller (parsePrimary) has already consumed the
// '?' and verified the '{'.
func (par *Parser) parsePatternMatch(scrutinee ast.Expression) ast.Expression {
	var arms []ast.MatchArm

	par.advance() // Curr = first token of the first arm's pattern
	for {
		arm := par.parseArm()
		if par.HasErrors() {
			return nil
		}
		arms = append(arms, arm)

		if par.Next.Kind != token.Comma {
			break
		}
		par.advance() // Curr = ','
		if par.Next.Kind == token.RBrace {
			par.advance() // Curr = '}', trailing comma before close
			break
		}
		par.advance() // Curr = first token of next arm's pattern
	}

	if par.Curr.Kind != token.RBrace {
		if !par.expect(token.RBrace) {
			return nil
		}
	}

	return &ast.PatternMatch{Scrutinee: scrutinee, Arms: arms}
}

// parseArm parses one `pattern '=>' value` entry. Curr is the first
// token of pattern on entry.
func (par *Parser) parseArm() ast.MatchArm {
	pattern := par.parseExpression()
	if par.HasErrors() {
		return ast.MatchArm{}
	}
	if !par.expect(token.Arrow) {
		return ast.MatchArm{}
	}
	par.advance() // Curr = first token of the value expression
	value := par.parseExpression()
	if par.HasErrors() {
		return ast.MatchArm{}
	}
	return ast.MatchArm{Pattern: pattern, Value: value}
}
