package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/parser"
	"github.com/havrydotdev/golox/scanner"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, Locations) {
	t.Helper()

	tokens, scanErrs := scanner.New(src).Scan()
	require.Empty(t, scanErrs)

	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)

	locations := make(Locations)
	New(locations).Resolve(stmts)

	return stmts, locations
}

func findVariable(t *testing.T, e ast.Expr) *ast.Variable {
	t.Helper()

	v, ok := e.(*ast.Variable)
	require.True(t, ok)
	return v
}

func TestGlobalReferenceIsUnresolved(t *testing.T) {
	stmts, locations := resolve(t, "var x = 1; x;")

	es := stmts[1].(*ast.ExpressionStatement)
	v := findVariable(t, es.Expr)

	_, ok := locations[v.ID]
	assert.False(t, ok, "a global reference must not appear in Locations")
}

func TestLocalReferenceResolvesToDepthZero(t *testing.T) {
	stmts, locations := resolve(t, "{ var x = 1; x; }")

	block := stmts[0].(*ast.Block)
	es := block.Statements[1].(*ast.ExpressionStatement)
	v := findVariable(t, es.Expr)

	depth, ok := locations[v.ID]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestNestedBlockReferenceResolvesToOuterDepth(t *testing.T) {
	stmts, locations := resolve(t, "{ var x = 1; { x; } }")

	outer := stmts[0].(*ast.Block)
	inner := outer.Statements[1].(*ast.Block)
	es := inner.Statements[0].(*ast.ExpressionStatement)
	v := findVariable(t, es.Expr)

	depth, ok := locations[v.ID]
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestFunctionParamAndBodyShareOneFrame(t *testing.T) {
	stmts, locations := resolve(t, "var f = fun (a) { var b = 1; a; b; };")

	decl := stmts[0].(*ast.Declaration)
	fn := decl.Initializer.(*ast.Function)

	bodyEs1 := fn.Body.Statements[1].(*ast.ExpressionStatement)
	aRef := findVariable(t, bodyEs1.Expr)
	depth, ok := locations[aRef.ID]
	require.True(t, ok)
	assert.Equal(t, 0, depth, "the call frame is the lexical frame for both params and body locals")

	bodyEs2 := fn.Body.Statements[2].(*ast.ExpressionStatement)
	bRef := findVariable(t, bodyEs2.Expr)
	depth, ok = locations[bRef.ID]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestShadowingResolvesToInnermost(t *testing.T) {
	stmts, locations := resolve(t, "var x = 1; { var x = 2; x; }")

	block := stmts[1].(*ast.Block)
	es := block.Statements[1].(*ast.ExpressionStatement)
	v := findVariable(t, es.Expr)

	depth, ok := locations[v.ID]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestAssignmentTargetIsResolved(t *testing.T) {
	stmts, locations := resolve(t, "{ var x = 1; x = 2; }")

	block := stmts[0].(*ast.Block)
	es := block.Statements[1].(*ast.ExpressionStatement)
	assign := es.Expr.(*ast.Assign)

	depth, ok := locations[assign.Pattern.Var.ID]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}
