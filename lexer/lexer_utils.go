/*
File: gomixc/lexer/lexer_utils.go

Character classification and the scanning routines for identifiers,
numbers, and string literals. Split out from lexer.go the way the teacher
keeps NextToken's punctuation dispatch separate from its run-scanning
helpers.
*/
package lexer

import (
	"github.com/gomixc/compiler/token"
)

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isIdentStart reports whether c can begin an identifier: a lowercase
// letter per the language's identifier grammar ([a-z][a-z0-9_]*).
func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// isIdentPart reports whether c can continue an identifier begun by
// isIdentStart.
func isIdentPart(c byte) bool {
	return (c >= 'a' && c <= 'z') || isDigit(c) || c == '_'
}

// readIdentifier reads a maximal run of identifier characters starting at
// the current position (already known to satisfy isIdentStart) and
// classifies it as a keyword, boolean literal, or plain Ident via
// token.Lookup.
func (lex *Lexer) readIdentifier() token.Token {
	start := lex.Position
	for isIdentPart(lex.Current) {
		lex.Advance()
	}
	text := lex.Src[start:lex.Position]
	return token.NewAt(token.Lookup(text), text, start)
}

// readNumber reads a maximal run of digits, optionally containing one '.',
// and classifies the result as IntLit or FloatLit depending on whether a
// decimal point appeared.
func (lex *Lexer) readNumber() token.Token {
	start := lex.Position
	sawDot := false
	for isDigit(lex.Current) || (lex.Current == '.' && !sawDot && isDigit(lex.Peek(1))) {
		if lex.Current == '.' {
			sawDot = true
		}
		lex.Advance()
	}
	text := lex.Src[start:lex.Position]
	kind := token.IntLit
	if sawDot {
		kind = token.FloatLit
	}
	return token.NewAt(kind, text, start)
}

// readString reads a '"'-delimited string literal. Escape sequences are
// not supported (spec §4.1): the literal runs until the next '"'. Reaching
// the end of input before a closing '"' is reported as an *Error.
func (lex *Lexer) readString() (token.Token, error) {
	start := lex.Position
	lex.Advance() // consume opening quote
	contentStart := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 {
			return token.Token{}, &Error{Byte: 0, Pos: lex.Position, Line: lex.Line, Col: lex.Column}
		}
		lex.Advance()
	}
	text := lex.Src[contentStart:lex.Position]
	lex.Advance() // consume closing quote
	return token.NewAt(token.StringLit, text, start), nil
}
