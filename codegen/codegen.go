/*
File    : gomixc/codegen/codegen.go

Package codegen lowers an ast.Item tree into a single LLVM IR text
module (spec.md §4.3). The CodeGen context owns two emission buffers
— one for the `main` function body, one for every top-level `define`
(user functions and synthesized pattern-match helpers) — plus the
monotonic counter that synthesizes every register and label name in the
output. Every value is represented uniformly as an `i32` alloca slot;
there is no register-allocation or phi-node machinery, trading code
density for straightforward, mechanically verifiable lowering.
*/
package codegen

import (
	"fmt"
	"strings"

	"github.com/gomixc/compiler/ast"
)

// Error is the taxonomy of fatal code generation failures (spec.md §7).
type Error struct {
	Kind string // "UnknownOperator" or "UnknownExpressionKind"
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Codegen: %s: %s", e.Kind, e.Text)
}

func unknownOperator(op string) error {
	return &Error{Kind: "UnknownOperator", Text: op}
}

func unknownExpressionKind(tag string) error {
	return &Error{Kind: "UnknownExpressionKind", Text: tag}
}

// CodeGen holds the mutable state threaded through lowering: the two
// output buffers and the name-synthesis counter. Spec.md §9 explicitly
// calls for modeling the source's process-wide counter as a context
// field rather than true global mutable state; this struct is that
// field's home.
type CodeGen struct {
	functionsBuf strings.Builder
	mainBuf      strings.Builder
	counter      int
}

// New returns a CodeGen ready to lower a full program.
func New() *CodeGen {
	return &CodeGen{}
}

// fresh returns a globally unique name `<prefix><n>`, incrementing the
// counter on every call.
func (cg *CodeGen) fresh(prefix string) string {
	cg.counter++
	return fmt.Sprintf("%s%d", prefix, cg.counter)
}

// Generate lowers every top-level item and returns the complete LLVM IR
// module text (spec.md "Observable output format"). It stops and
// returns the first error encountered; no partial statement is ever
// left half-emitted across stage boundaries.
func Generate(items []ast.Item) (string, error) {
	cg := New()
	for _, item := range items {
		if err := cg.emitItem(item); err != nil {
			return "", err
		}
	}
	return cg.module(), nil
}

// emitItem lowers one top-level Item into mainBuf (Declaration,
// PrintStatement, ExpressionStatement) or performs no emission
// (ModDeclaration, spec.md §4's carried-but-inert keyword).
func (cg *CodeGen) emitItem(item ast.Item) error {
	switch it := item.(type) {
	case *ast.Declaration:
		_, err := cg.emitExpr(it.Name, it.Initializer, &cg.mainBuf)
		return err
	case *ast.PrintStatement:
		return cg.emitPrintStatement(it)
	case *ast.ExpressionStatement:
		_, err := cg.emitExpr(cg.fresh("expr"), it.Expression, &cg.mainBuf)
		return err
	case *ast.ModDeclaration:
		return nil
	default:
		return unknownExpressionKind(fmt.Sprintf("%T", item))
	}
}

// emitPrintStatement lowers `print(expr);`: the expression's value is
// loaded into a register and passed to printf against the shared
// `@.int_str` format constant.
func (cg *CodeGen) emitPrintStatement(stmt *ast.PrintStatement) error {
	slot, err := cg.emitExpr(cg.fresh("print"), stmt.Expression, &cg.mainBuf)
	if err != nil {
		return err
	}
	reg := cg.fresh("v")
	fmt.Fprintf(&cg.mainBuf, "  %%%s = load i32, i32* %%%s\n", reg, slot)
	ptr := cg.fresh("fmt")
	fmt.Fprintf(&cg.mainBuf, "  %%%s = getelementptr [4 x i8], [4 x i8]* @.int_str, i32 0, i32 0\n", ptr)
	fmt.Fprintf(&cg.mainBuf, "  call i32 (i8*, ...) @printf(i8* %%%s, i32 %%%s)\n", ptr, reg)
	return nil
}
