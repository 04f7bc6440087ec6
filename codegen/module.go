/*
File    : gomixc/codegen/module.go

Final module assembly (spec.md "Observable output format"): the fixed
header, the accumulated functionsBuf (user-defined functions and
`_match` helpers, in the order they were emitted), and the single
`@main` definition wrapping mainBuf.
*/
package codegen

const moduleHeader = `@.int_str = private unnamed_addr constant [4 x i8] c"%d\0A\00"
declare i32 @printf(i8*, ...)
`

func (cg *CodeGen) module() string {
	var out string
	out += moduleHeader
	out += cg.functionsBuf.String()
	out += "define i32 @main() {\nentry:\n"
	out += cg.mainBuf.String()
	out += "  ret i32 0\n}\n"
	return out
}
