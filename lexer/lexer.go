/*
File    : gomixc/lexer/lexer.go

Package lexer performs lexical analysis of source-language text. It scans
the source left to right with one- or two-character lookahead and emits
an ordered token.Token sequence terminated by token.EndOfInput.

The lexer has no knowledge of the grammar beyond one piece of context: the
type-name re-lexing that happens immediately after a ':' token (see
readTypeName). Everything else — keywords, literals, punctuation,
operators — is recognized greedily, longest-match-wins, with no
backtracking.
*/
package lexer

import (
	"fmt"

	"github.com/gomixc/compiler/token"
)

// Lexer holds the scanning state over a single source buffer. It is not
// safe for concurrent use; the compiler pipeline drives one Lexer to
// completion before handing the resulting tokens to the parser.
type Lexer struct {
	Src       string // entire source text
	Current   byte   // byte at Position, or 0 at end of input
	Position  int    // current index into Src
	SrcLength int    // len(Src), cached
	Line      int    // current line, 1-indexed
	Column    int    // current column, 1-indexed

	pending *token.Token // a TypeName queued by a preceding Colon, if any
}

// Error reports an unrecognized character encountered during scanning.
type Error struct {
	Byte byte
	Pos  int
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("Lexer: unknown character %q at %d:%d", e.Byte, e.Line, e.Col)
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Advance moves the scan position forward by one byte, updating line and
// column bookkeeping.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
		return
	}
	lex.Current = lex.Src[lex.Position]
}

// Peek returns the byte offset bytes ahead of Position without moving the
// scanner, or 0 if that position is past the end of input.
func (lex *Lexer) Peek(offset int) byte {
	i := lex.Position + offset
	if i >= lex.SrcLength {
		return 0
	}
	return lex.Src[i]
}

// skipWhitespace consumes space, tab, carriage return, and newline bytes.
func (lex *Lexer) skipWhitespace() {
	for lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r' || lex.Current == '\n' {
		lex.Advance()
	}
}

// NextToken scans and returns the next token, or an *Error if the current
// byte does not start any recognized token kind.
//
// After emitting a Colon token, the immediately following call to
// NextToken reads a TypeName instead of an Ident — this is the lexer-level
// context sensitivity the parser's grammar relies on (spec §4.1).
func (lex *Lexer) NextToken() (token.Token, error) {
	if lex.pending != nil {
		tok := *lex.pending
		lex.pending = nil
		return tok, nil
	}

	lex.skipWhitespace()

	if lex.Current == 0 {
		return token.NewAt(token.EndOfInput, "", lex.Position), nil
	}

	start := lex.Position
	switch {
	case isIdentStart(lex.Current):
		return lex.readIdentifier(), nil
	case isDigit(lex.Current):
		return lex.readNumber(), nil
	case lex.Current == '"':
		return lex.readString()
	}

	switch lex.Current {
	case '=':
		if lex.Peek(1) == '=' {
			lex.Advance()
			lex.Advance()
			return token.NewAt(token.Equal, "==", start), nil
		}
		if lex.Peek(1) == '>' {
			lex.Advance()
			lex.Advance()
			return token.NewAt(token.Arrow, "=>", start), nil
		}
		lex.Advance()
		return token.NewAt(token.Assign, "=", start), nil
	case '!':
		if lex.Peek(1) == '=' {
			lex.Advance()
			lex.Advance()
			return token.NewAt(token.NotEqual, "!=", start), nil
		}
		lex.Advance()
		return token.NewAt(token.Bang, "!", start), nil
	case '<':
		if lex.Peek(1) == '=' {
			lex.Advance()
			lex.Advance()
			return token.NewAt(token.LessEq, "<=", start), nil
		}
		lex.Advance()
		return token.NewAt(token.Less, "<", start), nil
	case '>':
		if lex.Peek(1) == '=' {
			lex.Advance()
			lex.Advance()
			return token.NewAt(token.GreaterEq, ">=", start), nil
		}
		lex.Advance()
		return token.NewAt(token.Greater, ">", start), nil
	case '+':
		lex.Advance()
		return token.NewAt(token.Plus, "+", start), nil
	case '-':
		lex.Advance()
		return token.NewAt(token.Minus, "-", start), nil
	case '*':
		lex.Advance()
		return token.NewAt(token.Star, "*", start), nil
	case '/':
		lex.Advance()
		return token.NewAt(token.Slash, "/", start), nil
	case '(':
		lex.Advance()
		return token.NewAt(token.LParen, "(", start), nil
	case ')':
		lex.Advance()
		return token.NewAt(token.RParen, ")", start), nil
	case '[':
		lex.Advance()
		return token.NewAt(token.LBracket, "[", start), nil
	case ']':
		lex.Advance()
		return token.NewAt(token.RBracket, "]", start), nil
	case '{':
		lex.Advance()
		return token.NewAt(token.LBrace, "{", start), nil
	case '}':
		lex.Advance()
		return token.NewAt(token.RBrace, "}", start), nil
	case ',':
		lex.Advance()
		return token.NewAt(token.Comma, ",", start), nil
	case ';':
		lex.Advance()
		return token.NewAt(token.Semicolon, ";", start), nil
	case '|':
		lex.Advance()
		return token.NewAt(token.Pipe, "|", start), nil
	case '?':
		lex.Advance()
		return token.NewAt(token.Question, "?", start), nil
	case ':':
		lex.Advance()
		colonTok := token.NewAt(token.Colon, ":", start)
		typeTok, err := lex.readTypeName()
		if err != nil {
			return token.Token{}, err
		}
		lex.pending = &typeTok
		return colonTok, nil
	}

	return token.Token{}, &Error{Byte: lex.Current, Pos: lex.Position, Line: lex.Line, Col: lex.Column}
}

// readTypeName reads the type identifier immediately following a Colon
// token: it skips whitespace and applies the identifier grammar, tagging
// the result as token.TypeName regardless of whether the spelling happens
// to match a keyword. Queued onto lex.pending by NextToken's Colon case so
// that the very next call to NextToken returns it (spec §4.1's lexer-level
// context sensitivity).
func (lex *Lexer) readTypeName() (token.Token, error) {
	lex.skipWhitespace()
	if !isIdentStart(lex.Current) {
		return token.Token{}, &Error{Byte: lex.Current, Pos: lex.Position, Line: lex.Line, Col: lex.Column}
	}
	start := lex.Position
	for isIdentPart(lex.Current) {
		lex.Advance()
	}
	return token.NewAt(token.TypeName, lex.Src[start:lex.Position], start), nil
}
