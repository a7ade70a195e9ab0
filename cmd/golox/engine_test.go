package main

import (
	_ "embed"
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/havrydotdev/golox/reporter"
)

//go:embed testdata/arithmetic.lox
var arithmeticSrc string

//go:embed testdata/closure_counter.lox
var closureCounterSrc string

//go:embed testdata/for_loop.lox
var forLoopSrc string

//go:embed testdata/tuple_destructure.lox
var tupleDestructureSrc string

//go:embed testdata/send_chain.lox
var sendChainSrc string

//go:embed testdata/err_undefined_variable.lox
var errUndefinedVariableSrc string

//go:embed testdata/err_bad_operand.lox
var errBadOperandSrc string

//go:embed testdata/err_parse_error.lox
var errParseErrorSrc string

//go:embed testdata/err_scan_then_parse.lox
var errScanThenParseSrc string

func runScript(src string) (code int, out string) {
	var buf bytes.Buffer
	rep := reporter.New(&buf, zerolog.Nop())
	en := newEngine(rep, false, false)
	code, _, _ = en.run(src)
	return code, buf.String()
}

func TestArithmeticScript(t *testing.T) {
	code, out := runScript(arithmeticSrc)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, out)
	}
}

func TestClosureCounterScript(t *testing.T) {
	code, out := runScript(closureCounterSrc)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, out)
	}
}

func TestForLoopScript(t *testing.T) {
	code, out := runScript(forLoopSrc)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, out)
	}
}

func TestTupleDestructureScript(t *testing.T) {
	code, out := runScript(tupleDestructureSrc)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, out)
	}
}

func TestSendChainScript(t *testing.T) {
	code, out := runScript(sendChainSrc)
	if code != exitOK {
		t.Fatalf("exit code = %d, stderr = %q", code, out)
	}
}

func TestUndefinedVariableScript(t *testing.T) {
	code, out := runScript(errUndefinedVariableSrc)
	if code != exitRuntimeError {
		t.Fatalf("exit code = %d, want %d", code, exitRuntimeError)
	}
	if !bytes.Contains([]byte(out), []byte("undefined variable")) {
		t.Fatalf("stderr = %q, want it to mention undefined variable", out)
	}
}

func TestBadOperandScript(t *testing.T) {
	code, out := runScript(errBadOperandSrc)
	if code != exitRuntimeError {
		t.Fatalf("exit code = %d, want %d", code, exitRuntimeError)
	}
	if !bytes.Contains([]byte(out), []byte("bad operand type")) {
		t.Fatalf("stderr = %q, want it to mention bad operand type", out)
	}
}

func TestParseErrorScript(t *testing.T) {
	code, out := runScript(errParseErrorSrc)
	if code != exitParseError {
		t.Fatalf("exit code = %d, want %d", code, exitParseError)
	}
	if len(out) == 0 {
		t.Fatal("expected a reported parse error")
	}
}

// An unterminated string produces both a scan error (aborted at eof) and a
// parse error (the declaration's initializer is missing), since the eof
// token is all the parser ever sees after the string. Parsing runs after
// scanning, so the parse error's category must win.
func TestScanAndParseErrorBothReportedParseWins(t *testing.T) {
	code, out := runScript(errScanThenParseSrc)
	if code != exitParseError {
		t.Fatalf("exit code = %d, want %d", code, exitParseError)
	}
	if !bytes.Contains([]byte(out), []byte("Scan error")) {
		t.Fatalf("stderr = %q, want it to also report the scan error", out)
	}
	if !bytes.Contains([]byte(out), []byte("Parse error")) {
		t.Fatalf("stderr = %q, want it to report a parse error", out)
	}
}
