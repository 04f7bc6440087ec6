/*
File    : gomixc/codegen/expressions.go

emitExpr is the central lowering dispatcher (spec.md §4.3 "Lowering
contract for expressions"): it lowers expr into buf and returns the
name of the i32* alloca slot holding the result. target is a naming
hint the callee uses as the base name for any slot it allocates
directly; callers that need the value load through the returned slot
name themselves.
*/
package codegen

import (
	"fmt"
	"strings"

	"github.com/gomixc/compiler/ast"
)

func (cg *CodeGen) emitExpr(target string, expr ast.Expression, buf *strings.Builder) (string, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		fmt.Fprintf(buf, "  %%%s = alloca i32\n", target)
		fmt.Fprintf(buf, "  store i32 %s, i32* %%%s\n", e.Text, target)
		return target, nil

	case *ast.BoolLiteral:
		fmt.Fprintf(buf, "  %%%s = alloca i32\n", target)
		fmt.Fprintf(buf, "  store i32 %s, i32* %%%s\n", boolConst(e.Text), target)
		return target, nil

	case *ast.Identifier:
		return e.Text, nil

	case *ast.BinaryOp:
		return cg.emitBinaryOp(target, e, buf)

	case *ast.FunctionLiteral:
		return cg.emitFunctionLiteral(target, e)

	case *ast.FunctionCall:
		return cg.emitFunctionCall(target, e, buf)

	case *ast.PatternMatch:
		return cg.emitPatternMatch(target, e, buf)

	case *ast.FloatLiteral:
		return "", unknownExpressionKind("FloatLiteral")
	case *ast.StringLiteral:
		return "", unknownExpressionKind("StringLiteral")
	default:
		return "", unknownExpressionKind(fmt.Sprintf("%T", expr))
	}
}

func boolConst(text string) string {
	if text == "true" {
		return "1"
	}
	return "0"
}

// arithOpcode maps the four spec.md core operators to their LLVM
// opcode.
func arithOpcode(op string) (string, bool) {
	switch op {
	case "+":
		return "add", true
	case "-":
		return "sub", true
	case "*":
		return "mul", true
	case "/":
		return "sdiv", true
	default:
		return "", false
	}
}

// cmpPredicate maps the comparison operators SPEC_FULL §4 adds to their
// `icmp` predicate.
func cmpPredicate(op string) (string, bool) {
	switch op {
	case "==":
		return "eq", true
	case "!=":
		return "ne", true
	case "<":
		return "slt", true
	case "<=":
		return "sle", true
	case ">":
		return "sgt", true
	case ">=":
		return "sge", true
	default:
		return "", false
	}
}

// emitBinaryOp lowers l and r each into a fresh slot, loads both, and
// emits the operator. Arithmetic operators produce an i32 result
// directly; comparison operators produce an i1 via icmp and widen it to
// i32 with zext, since this core has no independent boolean
// representation (spec.md §1).
func (cg *CodeGen) emitBinaryOp(target string, op *ast.BinaryOp, buf *strings.Builder) (string, error) {
	lSlot, err := cg.emitExpr(cg.fresh("l"), op.Left, buf)
	if err != nil {
		return "", err
	}
	rSlot, err := cg.emitExpr(cg.fresh("r"), op.Right, buf)
	if err != nil {
		return "", err
	}
	lReg := cg.fresh("v")
	fmt.Fprintf(buf, "  %%%s = load i32, i32* %%%s\n", lReg, lSlot)
	rReg := cg.fresh("v")
	fmt.Fprintf(buf, "  %%%s = load i32, i32* %%%s\n", rReg, rSlot)

	resReg := cg.fresh("v")
	if opcode, ok := arithOpcode(op.Op); ok {
		fmt.Fprintf(buf, "  %%%s = %s i32 %%%s, %%%s\n", resReg, opcode, lReg, rReg)
	} else if pred, ok := cmpPredicate(op.Op); ok {
		cmpReg := cg.fresh("c")
		fmt.Fprintf(buf, "  %%%s = icmp %s i32 %%%s, %%%s\n", cmpReg, pred, lReg, rReg)
		fmt.Fprintf(buf, "  %%%s = zext i1 %%%s to i32\n", resReg, cmpReg)
	} else {
		return "", unknownOperator(op.Op)
	}

	fmt.Fprintf(buf, "  %%%s = alloca i32\n", target)
	fmt.Fprintf(buf, "  store i32 %%%s, i32* %%%s\n", resReg, target)
	return target, nil
}
