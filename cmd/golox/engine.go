package main

import (
	"errors"
	"fmt"

	"github.com/havrydotdev/golox/ast"
	"github.com/havrydotdev/golox/evaluator"
	"github.com/havrydotdev/golox/object"
	"github.com/havrydotdev/golox/parser"
	"github.com/havrydotdev/golox/reporter"
	"github.com/havrydotdev/golox/resolver"
	"github.com/havrydotdev/golox/scanner"
)

// engine owns everything that must survive across lines in REPL mode:
// the evaluator's globals, the resolver's accumulated locations, and the
// debug-dump flags. A file run uses a fresh one-shot engine; the REPL
// keeps a single engine alive for the whole session.
type engine struct {
	rep      reporter.Reporter
	eval     *evaluator.Evaluator
	locs     resolver.Locations
	scanDbg  bool
	parseDbg bool
}

func newEngine(rep reporter.Reporter, scanDbg, parseDbg bool) *engine {
	locs := make(resolver.Locations)
	return &engine{
		rep:      rep,
		eval:     evaluator.New(locs),
		locs:     locs,
		scanDbg:  scanDbg,
		parseDbg: parseDbg,
	}
}

// run scans, parses, resolves and evaluates one chunk of source. It
// returns the worst exit code the chunk produced, and the stray return
// value if evaluation unwound with a top-level return (runFile, runStdin
// and runPrompt print it).
func (en *engine) run(source string) (code int, stray object.Value, strayed bool) {
	tokens, scanErrs := scanner.New(source).Scan()
	if en.scanDbg {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
	}
	for _, err := range scanErrs {
		var scanErr scanner.ScanError
		if errors.As(err, &scanErr) {
			en.rep.Scan(scanErr.Line, scanErr.Message)
		}
	}

	stmts, parseErrs := parser.New(tokens).Parse()
	if en.parseDbg {
		for _, stmt := range stmts {
			fmt.Println(ast.Print(stmt))
		}
	}
	for _, err := range parseErrs {
		var parseErr parser.ParseError
		if errors.As(err, &parseErr) {
			en.rep.Parse(parseErr.Token, parseErr.Message)
		}
	}

	// Parsing runs chronologically after scanning, so a parse error's
	// category wins over a scan error from the same chunk -- matching
	// the "last error's category wins" rule and original_source's
	// report()-unconditionally-overwrites-error_code_ behavior.
	if len(parseErrs) > 0 {
		return exitParseError, nil, false
	}
	if len(scanErrs) > 0 {
		return exitScanError, nil, false
	}

	resolver.New(en.locs).Resolve(stmts)

	if err := en.eval.Interpret(stmts); err != nil {
		if ret, ok := err.(evaluator.ReturnSignal); ok {
			return exitOK, ret.Value, true
		}

		var runtimeErr evaluator.RuntimeError
		if errors.As(err, &runtimeErr) {
			en.rep.Runtime(runtimeErr.Token, runtimeErr.Message)
		}
		return exitRuntimeError, nil, false
	}

	return exitOK, nil, false
}
