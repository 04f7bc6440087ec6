/*
File    : gomixc/ast/ast.go

Package ast defines the tree of owned nodes produced by the parser and
consumed by the code generator. Every node is a concrete, tagged type;
there is no null-child convention beyond a variant's own fields being
absent. Text fields borrow substrings from the original source buffer and
are never mutated after construction.
*/
package ast

// Item is a top-level construct: one of Declaration, PrintStatement,
// ExpressionStatement, or the inert ModDeclaration.
type Item interface {
	itemNode()
}

// Expression is any node that produces a value when lowered. BinaryOp
// children are exclusively owned by their parent; they are never shared.
type Expression interface {
	Item
	expressionNode()
}

// Declaration is `let NAME : TYPE = EXPR ;`.
type Declaration struct {
	Name        string
	TypeName    string
	Initializer Expression
}

func (*Declaration) itemNode() {}

// PrintStatement is `print ( EXPR ) ;`.
type PrintStatement struct {
	Expression Expression
}

func (*PrintStatement) itemNode() {}

// ExpressionStatement is a bare `EXPR ;` whose value is computed and
// discarded.
type ExpressionStatement struct {
	Expression Expression
}

func (*ExpressionStatement) itemNode() {}

// IntegerLiteral is a literal like `42`. The language has no literal
// suffix syntax; the parser sets TypeName to "i32" for every integer
// literal, whatever type the owning declaration or parameter names.
type IntegerLiteral struct {
	TypeName string
	Text     string
}

func (*IntegerLiteral) itemNode()       {}
func (*IntegerLiteral) expressionNode() {}

// FloatLiteral is a literal like `3.14`. Reserved by the lexer/parser;
// the code generator rejects it with CodegenError (spec §4.3, §9): only
// i32 arithmetic is lowered in this core.
type FloatLiteral struct {
	TypeName string
	Text     string
}

func (*FloatLiteral) itemNode()       {}
func (*FloatLiteral) expressionNode() {}

// StringLiteral is a literal like `"hi"`. Reserved by the lexer/parser;
// not lowered by the code generator (spec §3, §9).
type StringLiteral struct {
	Text string
}

func (*StringLiteral) itemNode()       {}
func (*StringLiteral) expressionNode() {}

// BoolLiteral is `true` or `false`. As a value it lowers to the i32
// constant 1 or 0 (the core has no i1 representation independent of i32,
// per spec §1's "integers default to a 32-bit signed type; no coercions").
// As a pattern-match arm pattern, `true` is the front end's catch-all
// convention referenced in spec §9: it lowers to an unconditional branch
// rather than an icmp comparison.
type BoolLiteral struct {
	Text string // "true" or "false"
}

func (*BoolLiteral) itemNode()       {}
func (*BoolLiteral) expressionNode() {}

// Identifier is a bare variable reference.
type Identifier struct {
	Text string
}

func (*Identifier) itemNode()       {}
func (*Identifier) expressionNode() {}

// BinaryOp is a left-associative binary operation. Op is one of
// "+" "-" "*" "/" for the arithmetic core, plus the comparison glyphs
// "==" "!=" "<" "<=" ">" ">=" (SPEC_FULL §4, grounded on icmp already
// being mandatory for pattern-match lowering).
type BinaryOp struct {
	Op    string
	Left  Expression
	Right Expression
}

func (*BinaryOp) itemNode()       {}
func (*BinaryOp) expressionNode() {}

// Parameter is one `NAME : TYPE` entry in a function literal's parameter
// list.
type Parameter struct {
	Name     string
	TypeName string
}

// FunctionLiteral is a value: `(p1:T1, p2:T2):RetType => body`.
type FunctionLiteral struct {
	Parameters []Parameter
	ReturnType string
	Body       Expression
}

func (*FunctionLiteral) itemNode()       {}
func (*FunctionLiteral) expressionNode() {}

// FunctionCall is `callee(arg0, arg1, ...)`.
type FunctionCall struct {
	Callee    string
	Arguments []Expression
}

func (*FunctionCall) itemNode()       {}
func (*FunctionCall) expressionNode() {}

// MatchArm is one `pattern => value` entry of a PatternMatch.
type MatchArm struct {
	Pattern Expression
	Value   Expression
}

// PatternMatch is `scrutinee ? { arm, arm, ... }`. Arms is always
// non-empty; the parser rejects an empty brace list.
type PatternMatch struct {
	Scrutinee Expression
	Arms      []MatchArm
}

func (*PatternMatch) itemNode()       {}
func (*PatternMatch) expressionNode() {}

// ModDeclaration is a recognized-but-inert `mod NAME ;` item. The Mod
// keyword survives in the token enumeration (spec §3) from an early,
// abandoned module-declaration design explored in the original
// implementation (SPEC_FULL §4); the parser accepts the statement shape
// for lexical completeness but the code generator emits nothing for it.
type ModDeclaration struct {
	Name string
}

func (*ModDeclaration) itemNode() {}
