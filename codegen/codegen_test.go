/*
File    : gomixc/codegen/codegen_test.go
*/
package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomixc/compiler/parser"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	par := parser.New(src)
	items := par.Parse()
	require.False(t, par.HasErrors(), "unexpected parse error: %v", par.FirstError())
	out, err := Generate(items)
	require.NoError(t, err)
	return out
}

func TestGenerate_HeaderAppearsExactlyOnce(t *testing.T) {
	out := generate(t, `let x: i32 = 5; print(x);`)
	assert.Equal(t, 1, strings.Count(out, "@.int_str = private"))
	assert.Equal(t, 1, strings.Count(out, "declare i32 @printf"))
}

func TestGenerate_SimpleDeclarationAndPrint(t *testing.T) {
	out := generate(t, `let x: i32 = 5; print(x);`)
	assert.Contains(t, out, "store i32 5, i32* %x")
	assert.Contains(t, out, "call i32 (i8*, ...) @printf")
}

func TestGenerate_SubtractionLowersToSub(t *testing.T) {
	out := generate(t, `let a: i32 = 10; let b: i32 = 4; print(a - b);`)
	assert.Contains(t, out, "sub i32")
}

func TestGenerate_FunctionLiteralDefinesTopLevelFunction(t *testing.T) {
	out := generate(t, `let add: i32 = (x:i32, y:i32):i32 => x + y; print(add(2,3));`)
	assert.Contains(t, out, "define i32 @add(i32 %x.arg, i32 %y.arg)")
	assert.Contains(t, out, "call i32 @add(")
}

func TestGenerate_ComparisonLowersToIcmpAndZext(t *testing.T) {
	out := generate(t, `let r: i32 = 1 < 2; print(r);`)
	assert.Contains(t, out, "icmp slt i32")
	assert.Contains(t, out, "zext i1")
}

func TestGenerate_PatternMatchEmitsHelperWithCatchAll(t *testing.T) {
	out := generate(t, `let f: i32 = (n:i32):i32 => n ? { 1 => 10, 2 => 20, true => 0 }; print(f(2));`)
	assert.Contains(t, out, "_match(i32 %value)")
	assert.Contains(t, out, "pattern_0:")
	assert.Contains(t, out, "pattern_2:")
	assert.Contains(t, out, "end:")
	// The catch-all arm branches straight to its set block with no icmp
	// against %value in that block.
	idx := strings.Index(out, "pattern_2:")
	require.NotEqual(t, -1, idx)
	block := out[idx:]
	assert.True(t, strings.HasPrefix(block, "pattern_2:\n  br label %set_2\n"))
}

func TestGenerate_FloatLiteralIsRejected(t *testing.T) {
	par := parser.New(`let x: f32 = 3.14;`)
	items := par.Parse()
	require.False(t, par.HasErrors())
	_, err := Generate(items)
	require.Error(t, err)
	var cgErr *Error
	require.ErrorAs(t, err, &cgErr)
	assert.Equal(t, "UnknownExpressionKind", cgErr.Kind)
}

func TestGenerate_ModDeclarationEmitsNothing(t *testing.T) {
	out := generate(t, `mod geometry; let x: i32 = 1; print(x);`)
	assert.NotContains(t, out, "geometry")
}
