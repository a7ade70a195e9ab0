package evaluator

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havrydotdev/golox/parser"
	"github.com/havrydotdev/golox/resolver"
	"github.com/havrydotdev/golox/scanner"
)

// run scans, parses, resolves and evaluates src, returning whatever it
// printed to stdout and the error Interpret returned. A scan or parse
// error fails the test instead.
func run(t *testing.T, src string) (string, error) {
	t.Helper()

	tokens, scanErrs := scanner.New(src).Scan()
	require.Empty(t, scanErrs)

	stmts, parseErrs := parser.New(tokens).Parse()
	require.Empty(t, parseErrs)

	locations := make(resolver.Locations)
	resolver.New(locations).Resolve(stmts)

	eval := New(locations)

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := eval.Interpret(stmts)

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)

	return buf.String(), runErr
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `(1 + 2 * 3) -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "7.000000\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := run(t, `var a = "foo"; var b = "bar"; (a + b) -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestTupleDestructuringInDeclaration(t *testing.T) {
	out, err := run(t, `var a, b = 1, 2; a -> print; b -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "1.000000\n2.000000\n", out)
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		var make = fun {
			var i = 0;
			return fun { i = i + 1; return i; };
		};
		var c = .make;
		.c -> print;
		.c -> print;
		.c -> print;
	`)
	require.NoError(t, err)
	assert.Equal(t, "1.000000\n2.000000\n3.000000\n", out)
}

func TestForLoop(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) i -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n1.000000\n2.000000\n", out)
}

func TestTupleOfThreeDestructuring(t *testing.T) {
	out, err := run(t, `
		var t = 1, 2, 3;
		var a, b, c = t;
		(a + b + c) -> print;
	`)
	require.NoError(t, err)
	assert.Equal(t, "6.000000\n", out)
}

func TestSendCallChaining(t *testing.T) {
	out, err := run(t, `
		var id = fun x { return x; };
		5 -> id -> print;
	`)
	require.NoError(t, err)
	assert.Equal(t, "5.000000\n", out)
}

func TestScopeShadowing(t *testing.T) {
	out, err := run(t, `var x = 1; { var x = 2; x -> print; } x -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "2.000000\n1.000000\n", out)
}

func TestShortCircuitAnd(t *testing.T) {
	out, err := run(t, `var called = false; false and ((called = true) -> print); called -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestShortCircuitOr(t *testing.T) {
	out, err := run(t, `var called = false; true or ((called = true) -> print); called -> print;`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `a -> print;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'a'")
}

func TestBadOperandType(t *testing.T) {
	_, err := run(t, `1 + "x";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad operand type")
}

func TestTooManyArgumentsToBind(t *testing.T) {
	_, err := run(t, `var (a, b) = (1, 2, 3);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many arguments to bind")
}

func TestCannotDecomposeNonTuple(t *testing.T) {
	_, err := run(t, `var (a, b) = 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can only decompose tuples")
}

func TestFunctionArityExceeded(t *testing.T) {
	_, err := run(t, `var f = fun (a) { return a; }; 1 -> f(2);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "function expects 1 inputs, but receieved 2")
}

func TestUnsuppliedParamsDefaultToNil(t *testing.T) {
	// "fun a b { ... }" is two scalar parameter patterns, read greedily
	// one at a time -- "fun (a, b) { ... }" would instead be a single
	// tuple-destructuring pattern expecting one 2-element tuple argument.
	out, err := run(t, `var f = fun a b { (b == nil) -> print; }; 1 -> f;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
