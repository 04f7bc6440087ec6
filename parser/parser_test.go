/*
File: gomixc/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomixc/compiler/ast"
)

func TestParser_Declaration(t *testing.T) {
	par := New(`let x: i32 = 5;`)
	items := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, items, 1)

	decl, ok := items[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.Equal(t, "i32", decl.TypeName)

	lit, ok := decl.Initializer.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "5", lit.Text)
}

func TestParser_PrintStatement(t *testing.T) {
	par := New(`print(1 + 2);`)
	items := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, items, 1)

	stmt, ok := items[0].(*ast.PrintStatement)
	require.True(t, ok)
	bin, ok := stmt.Expression.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParser_ModDeclaration(t *testing.T) {
	par := New(`mod geometry;`)
	items := par.Parse()
	require.False(t, par.HasErrors())
	require.Len(t, items, 1)

	mod, ok := items[0].(*ast.ModDeclaration)
	require.True(t, ok)
	assert.Equal(t, "geometry", mod.Name)
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	par := New(`1 + 2 * 3;`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	stmt := items[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expression.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)

	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op)
}

func TestParser_ComparisonIsLowerPrecedenceThanTerm(t *testing.T) {
	par := New(`1 + 2 < 4;`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	stmt := items[0].(*ast.ExpressionStatement)
	cmp, ok := stmt.Expression.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "<", cmp.Op)

	_, ok = cmp.Left.(*ast.BinaryOp)
	assert.True(t, ok)
}

func TestParser_EqualityIsLowestPrecedence(t *testing.T) {
	par := New(`1 < 2 == true;`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	stmt := items[0].(*ast.ExpressionStatement)
	eq, ok := stmt.Expression.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "==", eq.Op)
}

func TestParser_FunctionLiteral(t *testing.T) {
	par := New(`let add: i32 = (a: i32, b: i32): i32 => a + b;`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	decl := items[0].(*ast.Declaration)
	fn, ok := decl.Initializer.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "a", fn.Parameters[0].Name)
	assert.Equal(t, "i32", fn.Parameters[0].TypeName)
	assert.Equal(t, "i32", fn.ReturnType)
}

func TestParser_FunctionLiteralNoParameters(t *testing.T) {
	par := New(`let zero: i32 = (): i32 => 0;`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	decl := items[0].(*ast.Declaration)
	fn, ok := decl.Initializer.(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.Empty(t, fn.Parameters)
}

func TestParser_FunctionCall(t *testing.T) {
	par := New(`add(1, 2);`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	stmt := items[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "add", call.Callee)
	require.Len(t, call.Arguments, 2)
}

func TestParser_PatternMatch(t *testing.T) {
	par := New(`n ? { 1 => 10, true => 0 };`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	stmt := items[0].(*ast.ExpressionStatement)
	match, ok := stmt.Expression.(*ast.PatternMatch)
	require.True(t, ok)
	_, ok = match.Scrutinee.(*ast.Identifier)
	assert.True(t, ok)
	require.Len(t, match.Arms, 2)

	_, ok = match.Arms[0].Pattern.(*ast.IntegerLiteral)
	assert.True(t, ok)
	catchAll, ok := match.Arms[1].Pattern.(*ast.BoolLiteral)
	require.True(t, ok)
	assert.Equal(t, "true", catchAll.Text)
}

func TestParser_PatternMatchTrailingComma(t *testing.T) {
	par := New(`n ? { 1 => 10, true => 0, };`)
	items := par.Parse()
	require.False(t, par.HasErrors())

	stmt := items[0].(*ast.ExpressionStatement)
	match := stmt.Expression.(*ast.PatternMatch)
	assert.Len(t, match.Arms, 2)
}

func TestParser_UnexpectedTokenRecordsError(t *testing.T) {
	par := New(`let x: i32 = ;`)
	par.Parse()
	assert.True(t, par.HasErrors())
	var primaryErr *UnexpectedPrimaryError
	assert.ErrorAs(t, par.FirstError(), &primaryErr)
}

func TestParser_MissingSemicolonRecordsError(t *testing.T) {
	par := New(`let x: i32 = 5`)
	par.Parse()
	assert.True(t, par.HasErrors())
	var expectedErr *ExpectedTokenError
	assert.ErrorAs(t, par.FirstError(), &expectedErr)
}
