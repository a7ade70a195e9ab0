package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"

	"github.com/havrydotdev/golox/object"
	"github.com/havrydotdev/golox/reporter"
)

const historyFileName = ".golox_history"

// runPrompt drives an interactive session: one line read, scanned, parsed,
// resolved and evaluated at a time, with the evaluator's globals and the
// resolver's locations persisting across lines. A parse or runtime error on
// one line doesn't end the session -- only Ctrl-D or Ctrl-C does.
func runPrompt(rep reporter.Reporter, scanDbg, parseDbg bool) int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("Welcome to golox!")

	en := newEngine(rep, scanDbg, parseDbg)
	for {
		text, err := line.Prompt("> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return exitOK
			}
			fmt.Fprintln(os.Stderr, err)
			return exitBadUsage
		}

		if text == "" {
			continue
		}
		line.AppendHistory(text)

		_, stray, strayed := en.run(text)
		if strayed {
			fmt.Println(object.Display(stray))
		}
	}
}

// runStdin executes a piped, non-interactive stdin stream as a single
// chunk, exactly like runFile -- liner is never involved here since there
// is no terminal to edit against.
func runStdin(rep reporter.Reporter, scanDbg, parseDbg bool) int {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitBadUsage
	}

	en := newEngine(rep, scanDbg, parseDbg)
	code, stray, strayed := en.run(string(text))
	if strayed {
		fmt.Println(object.Display(stray))
		return exitOK
	}

	return code
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}
