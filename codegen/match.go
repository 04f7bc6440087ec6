/*
File    : gomixc/codegen/match.go

Pattern-match lowering (spec.md §4.3 "Pattern-match lowering"): a match
with k arms becomes a synthesized `@<target>_match` helper function
built from a chain of `pattern_i`/`set_i` basic blocks terminating in a
shared `end` block. `true` is this front end's catch-all pattern
convention (spec.md §9): a catch-all arm branches straight to its
`set_i` block with no `icmp`, since every other arm already failed to
match by the time control reaches it.
*/
package codegen

import (
	"fmt"
	"strings"

	"github.com/gomixc/compiler/ast"
)

func isCatchAllPattern(pattern ast.Expression) bool {
	b, ok := pattern.(*ast.BoolLiteral)
	return ok && b.Text == "true"
}

func (cg *CodeGen) emitPatternMatch(target string, pm *ast.PatternMatch, buf *strings.Builder) (string, error) {
	helper := target + "_match"
	if err := cg.emitMatchHelper(helper, pm); err != nil {
		return "", err
	}

	scrutineeSlot, err := cg.emitExpr(cg.fresh("scrutinee"), pm.Scrutinee, buf)
	if err != nil {
		return "", err
	}
	scrutineeReg := cg.fresh("v")
	fmt.Fprintf(buf, "  %%%s = load i32, i32* %%%s\n", scrutineeReg, scrutineeSlot)

	callReg := cg.fresh("v")
	fmt.Fprintf(buf, "  %%%s = call i32 @%s(i32 %%%s)\n", callReg, helper, scrutineeReg)

	fmt.Fprintf(buf, "  %%%s = alloca i32\n", target)
	fmt.Fprintf(buf, "  store i32 %%%s, i32* %%%s\n", callReg, target)
	return target, nil
}

// emitMatchHelper defines `@<helper>(i32 %value) -> i32` in
// functionsBuf as the chain of basic blocks described in spec.md §4.3.
func (cg *CodeGen) emitMatchHelper(helper string, pm *ast.PatternMatch) error {
	fmt.Fprintf(&cg.functionsBuf, "define i32 @%s(i32 %%value) {\n", helper)
	cg.functionsBuf.WriteString("  %result = alloca i32\n")
	cg.functionsBuf.WriteString("  br label %pattern_0\n")

	for i, arm := range pm.Arms {
		label := fmt.Sprintf("pattern_%d", i)
		setLabel := fmt.Sprintf("set_%d", i)
		nextLabel := "end"
		if i+1 < len(pm.Arms) {
			nextLabel = fmt.Sprintf("pattern_%d", i+1)
		}

		fmt.Fprintf(&cg.functionsBuf, "%s:\n", label)
		if isCatchAllPattern(arm.Pattern) {
			fmt.Fprintf(&cg.functionsBuf, "  br label %%%s\n", setLabel)
		} else {
			patSlot, err := cg.emitExpr(cg.fresh("pat"), arm.Pattern, &cg.functionsBuf)
			if err != nil {
				return err
			}
			patReg := cg.fresh("v")
			fmt.Fprintf(&cg.functionsBuf, "  %%%s = load i32, i32* %%%s\n", patReg, patSlot)
			cmpReg := cg.fresh("c")
			fmt.Fprintf(&cg.functionsBuf, "  %%%s = icmp eq i32 %%value, %%%s\n", cmpReg, patReg)
			fmt.Fprintf(&cg.functionsBuf, "  br i1 %%%s, label %%%s, label %%%s\n", cmpReg, setLabel, nextLabel)
		}

		fmt.Fprintf(&cg.functionsBuf, "%s:\n", setLabel)
		valSlot, err := cg.emitExpr(cg.fresh("val"), arm.Value, &cg.functionsBuf)
		if err != nil {
			return err
		}
		valReg := cg.fresh("v")
		fmt.Fprintf(&cg.functionsBuf, "  %%%s = load i32, i32* %%%s\n", valReg, valSlot)
		cg.functionsBuf.WriteString("  store i32 %" + valReg + ", i32* %result\n")
		cg.functionsBuf.WriteString("  br label %end\n")
	}

	cg.functionsBuf.WriteString("end:\n")
	cg.functionsBuf.WriteString("  %result_value = load i32, i32* %result\n")
	cg.functionsBuf.WriteString("  ret i32 %result_value\n")
	cg.functionsBuf.WriteString("}\n\n")
	return nil
}
