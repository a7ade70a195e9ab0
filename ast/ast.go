// Package ast defines the abstract syntax tree produced by the parser and
// walked by the resolver and the evaluator.
//
// Go has no sum types, so each statement/expression kind is a concrete
// struct implementing a marker method on the shared Expr/Stmt interface; the
// resolver and evaluator dispatch on the concrete type with a type switch.
// This departs from the object-algebra encoding used elsewhere in the
// codebase this was grown from -- see DESIGN.md.
package ast

import "github.com/havrydotdev/golox/token"

// Expr is any expression node. VariableTuple also satisfies it, so the
// debug printer can render patterns, but it is a binding pattern, not a
// value-producing expression: the resolver and evaluator never accept it.
type Expr interface {
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// Literal yields its stored value unconditionally.
type Literal struct {
	Value any
}

// Variable references a binding by name. ID is assigned once at
// construction (see NewVariable) and is the resolver map's key.
type Variable struct {
	Name token.Token
	ID   uint64
}

// VariableTuple is a binding pattern: either a single leaf Variable, or an
// ordered sequence of further VariableTuples. Exactly one of Var / Items is
// set. It is never evaluated as a value -- it only appears as the left side
// of a declaration/assignment or as a function parameter slot.
type VariableTuple struct {
	Var   *Variable
	Items []*VariableTuple
}

// IsLeaf reports whether this pattern is a single variable rather than a
// nested tuple.
func (vt *VariableTuple) IsLeaf() bool {
	return vt.Var != nil
}

// Assign destructure-binds Value against Pattern using the set action
// (update, not define) for each leaf.
type Assign struct {
	Pattern *VariableTuple
	Token   token.Token
	Value   Expr
}

// Binary is a two-operand arithmetic/comparison/equality/concatenation
// expression.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is `and`/`or`; it short-circuits and is never lowered to Binary.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

// Unary is `-` (negation) or `!` (logical not).
type Unary struct {
	Op    token.Token
	Right Expr
}

// Grouping is a parenthesized expression; it carries no semantics beyond
// controlling parse precedence.
type Grouping struct {
	Expression Expr
}

// Tuple evaluates each element left-to-right into a tuple value.
type Tuple struct {
	Elements []Expr
}

// Call holds 0, 1, or 2 argument expressions -- the cap imposed by the
// language's two-argument call convention. Paren is the call-site token used
// for runtime error attribution (it is the dot for prefix and n-ary
// dot-calls, or the `->` for a send call).
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

// Function is a function expression: 0, 1, or 2 parameter patterns and a
// shared-by-reference body, so the node can be cheaply copied into a runtime
// closure value without copying the body.
type Function struct {
	Params []*VariableTuple
	Body   *Block
}

func (*Literal) exprNode()      {}
func (*Variable) exprNode()     {}
func (*VariableTuple) exprNode() {}
func (*Assign) exprNode()       {}
func (*Binary) exprNode()       {}
func (*Logical) exprNode()      {}
func (*Unary) exprNode()        {}
func (*Grouping) exprNode()     {}
func (*Tuple) exprNode()        {}
func (*Call) exprNode()         {}
func (*Function) exprNode()     {}

// Block is a list of statements executed in a fresh child environment
// (except when it is a function body, where the call frame itself is the
// lexical frame -- see evaluator).
type Block struct {
	Statements []Stmt
}

// ExpressionStatement evaluates Expr and discards its value. Expr is nil for
// a bare `;`.
type ExpressionStatement struct {
	Expr Expr
}

// If branches on the truthiness of Cond. Else is nil when absent.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// While loops while Cond is truthy.
type While struct {
	Cond Expr
	Body Stmt
}

// Return unwinds to the nearest enclosing function call. Value is nil when
// absent (falls back to nil at evaluation).
type Return struct {
	Keyword token.Token
	Value   Expr
}

// Declaration destructure-binds Pattern to the evaluated Initializer
// (defining every leaf to nil if Initializer is absent) in the current
// frame.
type Declaration struct {
	Pattern     *VariableTuple
	Token       token.Token
	Initializer Expr
}

func (*Block) stmtNode()               {}
func (*ExpressionStatement) stmtNode() {}
func (*If) stmtNode()                  {}
func (*While) stmtNode()               {}
func (*Return) stmtNode()              {}
func (*Declaration) stmtNode()         {}
