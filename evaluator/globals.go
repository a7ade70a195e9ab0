package evaluator

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/havrydotdev/golox/environment"
	"github.com/havrydotdev/golox/object"
	"github.com/havrydotdev/golox/token"
)

// newGlobals builds the environment every program starts with: clock,
// read, and print. Arity -1 marks a variable-arity builtin. No argument
// count is checked: each Call uses at most its first argument and ignores
// any others.
func newGlobals() *environment.Env {
	globals := environment.New()
	start := time.Now()
	stdin := bufio.NewReader(os.Stdin)

	globals.Define("clock", &object.Builtin{
		Name:  "clock",
		Arity: 0,
		Call: func(args []object.Value, callSite token.Token) (object.Value, error) {
			return float64(time.Since(start).Milliseconds()), nil
		},
	})

	globals.Define("read", &object.Builtin{
		Name:  "read",
		Arity: -1,
		Call: func(args []object.Value, callSite token.Token) (object.Value, error) {
			if len(args) == 0 {
				line, err := stdin.ReadString('\n')
				if err != nil && line == "" {
					return "", nil
				}
				return trimNewline(line), nil
			}

			path, ok := args[0].(string)
			if !ok {
				return nil, nil
			}

			contents, err := os.ReadFile(path)
			if err != nil {
				return nil, nil
			}
			return string(contents), nil
		},
	})

	globals.Define("print", &object.Builtin{
		Name:  "print",
		Arity: -1,
		Call: func(args []object.Value, callSite token.Token) (object.Value, error) {
			if len(args) == 0 {
				fmt.Println()
			} else {
				fmt.Println(object.Display(args[0]))
			}
			return nil, nil
		},
	})

	return globals
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
