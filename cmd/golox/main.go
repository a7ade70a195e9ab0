// Command golox runs golox source files, or starts an interactive
// session when given none.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/havrydotdev/golox/reporter"
)

func main() {
	var scanDbg, parseDbg bool
	pflag.BoolVarP(&scanDbg, "scanner-debug", "s", false, "dump the token stream before parsing")
	pflag.BoolVarP(&parseDbg, "parser-debug", "p", false, "dump the parsed AST before evaluating")
	pflag.Parse()

	args := pflag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: golox [-s] [-p] [script]")
		os.Exit(exitBadUsage)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if !debugLogging() {
		log = log.Level(zerolog.InfoLevel)
	}
	rep := reporter.New(os.Stderr, log)

	var code int
	switch {
	case len(args) == 1:
		code = runFile(args[0], rep, scanDbg, parseDbg)
	case isPiped():
		code = runStdin(rep, scanDbg, parseDbg)
	default:
		code = runPrompt(rep, scanDbg, parseDbg)
	}

	os.Exit(code)
}

func debugLogging() bool {
	return os.Getenv("GOLOX_DEBUG") != ""
}

func isPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) == 0
}
