/*
File    : gomixc/driver/driver_test.go

Exercises the filesystem-facing half of the driver (IR generation and
build/build.ll staging) without invoking the external clang toolchain,
which these tests cannot assume is installed in the environment running
`go test`.
*/
package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIR_SimpleProgram(t *testing.T) {
	ir, err := GenerateIR(`let x: i32 = 5; print(x);`)
	require.NoError(t, err)
	assert.Contains(t, ir, "@.int_str")
	assert.Contains(t, ir, "define i32 @main()")
}

func TestGenerateIR_PropagatesParseError(t *testing.T) {
	_, err := GenerateIR(`let x i32 = 5;`)
	require.Error(t, err)
}

func TestGenerateIR_PropagatesCodegenError(t *testing.T) {
	_, err := GenerateIR(`let x: f32 = 3.14;`)
	require.Error(t, err)
}

func TestWriteIRFile_WritesUnderBuildDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	path, err := WriteIRFile("; fake ir\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("build", "build.ll"), path)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "; fake ir\n", string(contents))
}

func TestDestinationFor_StripsExtension(t *testing.T) {
	assert.Equal(t, "program", destinationFor("/tmp/src/program.gmx"))
	assert.Equal(t, "program", destinationFor("program.gmx"))
}
