/*
File    : gomixc/token/token.go

Package token defines the closed set of lexical token kinds produced by
the lexer and consumed by the parser, along with the Token type itself.
*/
package token

import "fmt"

// Kind identifies the lexical category of a Token. It is a closed
// enumeration: every token the lexer can produce has exactly one Kind.
type Kind string

// Token kinds, grouped the way the language grammar groups them: keywords,
// literals, the context-sensitive type name, identifiers, punctuation, and
// operators.
const (
	// Sentinel.
	EndOfInput Kind = "EndOfInput"

	// Keywords.
	Let   Kind = "Let"
	Fn    Kind = "Fn"
	Print Kind = "Print"
	Mod   Kind = "Mod"

	// Literals.
	IntLit    Kind = "IntLit"
	FloatLit  Kind = "FloatLit"
	StringLit Kind = "StringLit"
	BoolLit   Kind = "BoolLit"

	// Type name: lexed only in the position right after ':', where a type
	// is syntactically required. See lexer.Lexer.readTypeName.
	TypeName Kind = "TypeName"

	// Identifier.
	Ident Kind = "Ident"

	// Punctuation.
	LParen    Kind = "LParen"
	RParen    Kind = "RParen"
	LBracket  Kind = "LBracket"
	RBracket  Kind = "RBracket"
	LBrace    Kind = "LBrace"
	RBrace    Kind = "RBrace"
	Comma     Kind = "Comma"
	Colon     Kind = "Colon"
	Semicolon Kind = "Semicolon"
	Quote     Kind = "Quote"
	Pipe      Kind = "Pipe"
	Question  Kind = "Question"

	// Operators.
	Plus       Kind = "Plus"
	Minus      Kind = "Minus"
	Star       Kind = "Star"
	Slash      Kind = "Slash"
	Bang       Kind = "Bang"
	Assign     Kind = "Assign"
	Arrow      Kind = "Arrow"
	Equal      Kind = "Equal"
	NotEqual   Kind = "NotEqual"
	Less       Kind = "Less"
	LessEq     Kind = "LessEq"
	Greater    Kind = "Greater"
	GreaterEq  Kind = "GreaterEq"
)

// Keywords maps reserved identifier spellings to their keyword Kind. Any
// identifier-shaped text not present here lexes as Ident.
var Keywords = map[string]Kind{
	"let":   Let,
	"fn":    Fn,
	"print": Print,
	"mod":   Mod,
	"true":  BoolLit,
	"false": BoolLit,
}

// Lookup returns the keyword Kind for ident, or Ident if ident is not a
// reserved word.
func Lookup(ident string) Kind {
	if kind, ok := Keywords[ident]; ok {
		return kind
	}
	return Ident
}

// Token is the tuple (Kind, Text) described by the language's lexical
// grammar: Kind is the closed enumeration above, Text is the contiguous
// substring of the source buffer that produced the token. Pos is the
// zero-based byte offset of the first character of Text, retained for
// diagnostics.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// New builds a Token with no position information. The parser uses it for
// the EndOfInput token it substitutes after a lexer error.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// NewAt builds a Token carrying its source position.
func NewAt(kind Kind, text string, pos int) Token {
	return Token{Kind: kind, Text: text, Pos: pos}
}

// String renders the token for debugging and error messages.
func (t Token) String() string {
	if t.Kind == EndOfInput {
		return "<EOF>"
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
