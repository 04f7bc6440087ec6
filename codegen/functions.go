/*
File    : gomixc/codegen/functions.go

Lowering for ast.FunctionLiteral and ast.FunctionCall (spec.md §4.3).
Function literals always emit a top-level `define` into functionsBuf
regardless of which buffer the caller passed in — they are values only
in the sense that they're always bound by a top-level `let`, never
nested inline the way a BinaryOp's operands are.
*/
package codegen

import (
	"fmt"
	"strings"

	"github.com/gomixc/compiler/ast"
)

// emitFunctionLiteral defines `@<target>` with one i32 parameter per
// entry in fn.Parameters, named exactly after the user-declared
// identifier so the body's Identifier references resolve with no
// symbol table. Parameters arrive as `%<name>.arg` SSA values and are
// immediately stored into an alloca slot named `%<name>`, keeping every
// variable reference — parameter or let-bound — uniform as an i32*
// slot (spec.md "Memory and naming convention").
func (cg *CodeGen) emitFunctionLiteral(target string, fn *ast.FunctionLiteral) (string, error) {
	// The body is lowered into its own buffer first, so any helper it
	// defines (a `_match` function) lands in functionsBuf ahead of this
	// function rather than inside it.
	var body strings.Builder
	bodySlot, err := cg.emitExpr(cg.fresh("result"), fn.Body, &body)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(&cg.functionsBuf, "define i32 @%s(", target)
	for i, p := range fn.Parameters {
		if i > 0 {
			cg.functionsBuf.WriteString(", ")
		}
		fmt.Fprintf(&cg.functionsBuf, "i32 %%%s.arg", p.Name)
	}
	cg.functionsBuf.WriteString(") {\nentry:\n")

	for _, p := range fn.Parameters {
		fmt.Fprintf(&cg.functionsBuf, "  %%%s = alloca i32\n", p.Name)
		fmt.Fprintf(&cg.functionsBuf, "  store i32 %%%s.arg, i32* %%%s\n", p.Name, p.Name)
	}

	cg.functionsBuf.WriteString(body.String())
	retReg := cg.fresh("v")
	fmt.Fprintf(&cg.functionsBuf, "  %%%s = load i32, i32* %%%s\n", retReg, bodySlot)
	fmt.Fprintf(&cg.functionsBuf, "  ret i32 %%%s\n", retReg)
	cg.functionsBuf.WriteString("}\n\n")

	return target, nil
}

// emitFunctionCall lowers every argument into buf, loads each to a
// fresh register, and emits the call instruction before allocating and
// storing into the result slot.
func (cg *CodeGen) emitFunctionCall(target string, call *ast.FunctionCall, buf *strings.Builder) (string, error) {
	argRegs := make([]string, 0, len(call.Arguments))
	for i, arg := range call.Arguments {
		slot, err := cg.emitExpr(cg.fresh(fmt.Sprintf("arg%d", i)), arg, buf)
		if err != nil {
			return "", err
		}
		reg := cg.fresh("v")
		fmt.Fprintf(buf, "  %%%s = load i32, i32* %%%s\n", reg, slot)
		argRegs = append(argRegs, reg)
	}

	argList := make([]string, len(argRegs))
	for i, reg := range argRegs {
		argList[i] = fmt.Sprintf("i32 %%%s", reg)
	}

	resultReg := cg.fresh("v")
	fmt.Fprintf(buf, "  %%%s = call i32 @%s(%s)\n", resultReg, call.Callee, strings.Join(argList, ", "))

	fmt.Fprintf(buf, "  %%%s = alloca i32\n", target)
	fmt.Fprintf(buf, "  store i32 %%%s, i32* %%%s\n", resultReg, target)
	return target, nil
}
