package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/scanner"
)

func parse(t *testing.T, src string) ([]ast.Stmt, []error) {
	t.Helper()

	tokens, scanErrs := scanner.New(src).Scan()
	require.Empty(t, scanErrs)

	return New(tokens).Parse()
}

func TestExpressionStatement(t *testing.T) {
	stmts, errs := parse(t, "1 + 2 * 3;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	assert.Equal(t, "(+ 1 (* 2 3))", ast.PrintExpr(es.Expr))
}

func TestVarDeclarationDestructuring(t *testing.T) {
	stmts, errs := parse(t, "var (a, b) = pair;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	decl, ok := stmts[0].(*ast.Declaration)
	require.True(t, ok)
	assert.False(t, decl.Pattern.IsLeaf())
	assert.Len(t, decl.Pattern.Items, 2)
}

func TestAssignmentRewind(t *testing.T) {
	stmts, errs := parse(t, "(a, b) = (1, 2);")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	es, ok := stmts[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	assign, ok := es.Expr.(*ast.Assign)
	require.True(t, ok)
	assert.Len(t, assign.Pattern.Items, 2)
}

func TestUnaryDotCall(t *testing.T) {
	stmts, errs := parse(t, ".f;")
	require.Empty(t, errs)

	es := stmts[0].(*ast.ExpressionStatement)
	call, ok := es.Expr.(*ast.Call)
	require.True(t, ok)
	assert.Empty(t, call.Args)
}

func TestNAryDotCallWithArgument(t *testing.T) {
	stmts, errs := parse(t, "x.f(1);")
	require.Empty(t, errs)

	es := stmts[0].(*ast.ExpressionStatement)
	call, ok := es.Expr.(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

func TestSendCallChain(t *testing.T) {
	stmts, errs := parse(t, "x -> f -> g;")
	require.Empty(t, errs)

	es := stmts[0].(*ast.ExpressionStatement)
	outer, ok := es.Expr.(*ast.Call)
	require.True(t, ok)

	_, ok = outer.Args[0].(*ast.Call)
	require.True(t, ok)
}

func TestForDesugarsToBlockAndWhile(t *testing.T) {
	stmts, errs := parse(t, "for (var i = 0; i < 3; i = i + 1) i.print;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*ast.Declaration)
	require.True(t, ok)

	while, ok := block.Statements[1].(*ast.While)
	require.True(t, ok)

	body, ok := while.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, body.Statements, 2)
}

func TestFunctionWithTwoParams(t *testing.T) {
	// Two parameter patterns are read greedily, one at a time, until the
	// body's '{' -- a comma-joined "(a, b)" is one tuple-destructuring
	// pattern instead, so two scalar params are two bare patterns in a
	// row: "fun a b { ... }".
	stmts, errs := parse(t, "var f = fun a b { return a + b; };")
	require.Empty(t, errs)

	decl := stmts[0].(*ast.Declaration)
	fn, ok := decl.Initializer.(*ast.Function)
	require.True(t, ok)
	assert.Len(t, fn.Params, 2)
}

func TestMissingSemicolonReportsErrorAndSynchronizes(t *testing.T) {
	// synchronize consumes through the next ';' once it starts resyncing,
	// so the broken declaration and the one after it are both skipped --
	// exactly one error is reported rather than a cascade.
	stmts, errs := parse(t, "var a = 1\nvar b = 2;\nvar c = 3;")
	require.Len(t, errs, 1)
	require.Len(t, stmts, 1)

	decl := stmts[0].(*ast.Declaration)
	assert.Equal(t, "c", decl.Pattern.Var.Name.Lexeme)
}
