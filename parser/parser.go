/*
File    : gomixc/parser/parser.go

Package parser implements a single-pass recursive-descent parser for the
source language described in spec §4.2. It converts the lexer's token
stream into an ordered []ast.Item.

The parser is a classic two-token-lookahead cursor over the lexer: Curr
is the token under consideration, Next is one token of lookahead used to
disambiguate (Ident vs. function call, '(' grouping vs. function
literal). Unlike the teacher's Pratt parser (which tracks an evaluation
environment so the REPL can show intermediate values), this parser only
builds the tree — the language has no parse-time constant folding.
*/
package parser

import (
	"fmt"

	"github.com/gomixc/compiler/ast"
	"github.com/gomixc/compiler/lexer"
	"github.com/gomixc/compiler/token"
)

// Parser holds the cursor state over a single token stream.
type Parser struct {
	lex  *lexer.Lexer
	Curr token.Token
	Next token.Token

	// Errors collects every ExpectedToken/UnexpectedPrimary diagnostic
	// raised during parsing, mirroring the teacher's non-panicking
	// error-collection idiom. The driver (spec §7) still aborts after the
	// first Parse() call that leaves Errors non-empty; nothing downstream
	// attempts recovery.
	Errors []error

	// firstErr is set once, to the very first error raised, so that
	// HasErrors/FirstError report it even when the parser stumbles on
	// additional cascading errors after going off the rails.
	firstErr error
}

// ExpectedTokenError is raised when expect() does not find the token kind
// the grammar requires next.
type ExpectedTokenError struct {
	Expected token.Kind
	Got      token.Token
}

func (e *ExpectedTokenError) Error() string {
	return fmt.Sprintf("Parser: unexpected token %s (expected %s at position %d)", e.Got, e.Expected, e.Got.Pos)
}

// UnexpectedPrimaryError is raised when no primary-expression rule
// matches the current token.
type UnexpectedPrimaryError struct {
	Got token.Token
}

func (e *UnexpectedPrimaryError) Error() string {
	return fmt.Sprintf("Parser: unexpected token %s (expected primary expression at position %d)", e.Got, e.Got.Pos)
}

// New creates a Parser over src, priming the two-token lookahead.
func New(src string) *Parser {
	par := &Parser{lex: lexer.New(src)}
	par.advance()
	par.advance()
	return par
}

// advance shifts Next into Curr and pulls a fresh token from the lexer
// into Next. A lexer error is recorded like any other parse error and the
// cursor settles on EndOfInput so the parse loop terminates.
func (par *Parser) advance() {
	par.Curr = par.Next
	tok, err := par.lex.NextToken()
	if err != nil {
		par.addError(err)
		par.Next = token.New(token.EndOfInput, "")
		return
	}
	par.Next = tok
}

// peek returns the kind of the token offset positions ahead of Curr
// without moving the cursor. Only offsets 0 (Curr) and 1 (Next) are
// available with the two-token lookahead this parser maintains.
func (par *Parser) peek(offset int) token.Kind {
	switch offset {
	case 0:
		return par.Curr.Kind
	case 1:
		return par.Next.Kind
	default:
		panic("parser: peek offset beyond lookahead window")
	}
}

// expect advances past Curr only if Next matches kind; otherwise it
// records an ExpectedTokenError and does not move the cursor, so the
// caller's subsequent use of Curr/Next is on the still-unexpected token.
func (par *Parser) expect(kind token.Kind) bool {
	if par.Next.Kind != kind {
		par.addError(&ExpectedTokenError{Expected: kind, Got: par.Next})
		return false
	}
	par.advance()
	return true
}

func (par *Parser) addError(err error) {
	par.Errors = append(par.Errors, err)
	if par.firstErr == nil {
		par.firstErr = err
	}
}

// HasErrors reports whether parsing has raised any error so far.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// FirstError returns the first error raised during parsing, or nil.
func (par *Parser) FirstError() error {
	return par.firstErr
}

// Parse consumes the entire token stream and returns the ordered list of
// top-level items. Per spec §4.2/§7 a single syntax error aborts the
// parse: Parse stops advancing items and returns whatever was built so
// far the moment an error is recorded, so HasErrors() should be checked
// immediately after the call.
func (par *Parser) Parse() []ast.Item {
	var items []ast.Item
	for par.Curr.Kind != token.EndOfInput {
		if par.HasErrors() {
			break
		}
		item := par.parseItem()
		if par.HasErrors() {
			break
		}
		if item != nil {
			items = append(items, item)
		}
		par.advance() // move past the item's terminating ';' onto the next item
	}
	return items
}
