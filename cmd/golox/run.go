package main

import (
	"fmt"
	"os"

	"github.com/havrydotdev/golox/object"
	"github.com/havrydotdev/golox/reporter"
)

// runFile executes a whole source file as a single chunk and returns the
// process exit code.
func runFile(path string, rep reporter.Reporter, scanDbg, parseDbg bool) int {
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitBadUsage
	}

	en := newEngine(rep, scanDbg, parseDbg)
	code, stray, strayed := en.run(string(text))
	if strayed {
		// The original source's outermost driver catches a return that
		// escapes every call and prints it rather than treating it as
		// an error -- preserved here for compatibility.
		fmt.Println(object.Display(stray))
		return exitOK
	}

	return code
}
