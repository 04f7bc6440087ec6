/*
File    : gomixc/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomixc/compiler/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	lex := New(src)
	var toks []token.Token
	for {
		tok, err := lex.NextToken()
		assert.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EndOfInput {
			break
		}
	}
	return toks
}

func TestLexer_SimpleDeclaration(t *testing.T) {
	toks := allTokens(t, `let x: i32 = 5;`)
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []token.Kind{
		token.Let, token.Ident, token.Colon, token.TypeName,
		token.Assign, token.IntLit, token.Semicolon, token.EndOfInput,
	}, kinds)
}

func TestLexer_ColonAlwaysYieldsTypeName(t *testing.T) {
	toks := allTokens(t, `x: bool`)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, token.Colon, toks[1].Kind)
	assert.Equal(t, token.TypeName, toks[2].Kind)
	assert.Equal(t, "bool", toks[2].Text)
}

func TestLexer_TwoCharacterOperators(t *testing.T) {
	toks := allTokens(t, `=> == != <= >=`)
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.Arrow, token.Equal, token.NotEqual, token.LessEq, token.GreaterEq}, kinds)
}

func TestLexer_Keywords(t *testing.T) {
	toks := allTokens(t, `let fn print mod true false foo`)
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Let, token.Fn, token.Print, token.Mod,
		token.BoolLit, token.BoolLit, token.Ident,
	}, kinds)
}

func TestLexer_IntAndFloatLiterals(t *testing.T) {
	toks := allTokens(t, `42 3.14`)
	assert.Equal(t, token.IntLit, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, token.FloatLit, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Text)
}

func TestLexer_StringLiteral(t *testing.T) {
	toks := allTokens(t, `"hello world"`)
	assert.Equal(t, token.StringLit, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Text)
}

func TestLexer_PatternMatchPunctuation(t *testing.T) {
	toks := allTokens(t, `n ? { 1 => 10, true => 0 }`)
	kinds := make([]token.Kind, 0, len(toks)-1)
	for _, tok := range toks[:len(toks)-1] {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Ident, token.Question, token.LBrace,
		token.IntLit, token.Arrow, token.IntLit, token.Comma,
		token.BoolLit, token.Arrow, token.IntLit, token.RBrace,
	}, kinds)
}

func TestLexer_EndOfInputIsFinalToken(t *testing.T) {
	toks := allTokens(t, `let x: i32 = 1;`)
	assert.Equal(t, token.EndOfInput, toks[len(toks)-1].Kind)
	assert.Equal(t, "", toks[len(toks)-1].Text)
}

func TestLexer_UnknownCharacter(t *testing.T) {
	lex := New(`@`)
	_, err := lex.NextToken()
	assert.Error(t, err)
	var lexErr *Error
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, byte('@'), lexErr.Byte)
}

func TestLexer_WhitespaceIsDiscarded(t *testing.T) {
	toks := allTokens(t, " \t 12   +\n3 ")
	assert.Equal(t, token.IntLit, toks[0].Kind)
	assert.Equal(t, token.Plus, toks[1].Kind)
	assert.Equal(t, token.IntLit, toks[2].Kind)
}
