// Package reporter decouples the scanner/parser/evaluator error categories
// from a particular output stream, so the CLI can write to stderr while
// tests capture into a buffer.
package reporter

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/havrydotdev/golox/token"
)

// Reporter receives one notification per error, already attributed to the
// category that produced it.
type Reporter interface {
	Scan(line int, msg string)
	Parse(tok token.Token, msg string)
	Runtime(tok token.Token, msg string)
}

// Writer reports errors in the "[line N] <Category>: <message>" format to
// an io.Writer, and mirrors each one through zerolog at debug level.
type Writer struct {
	out io.Writer
	log zerolog.Logger
}

func New(out io.Writer, log zerolog.Logger) *Writer {
	return &Writer{out: out, log: log}
}

func (w *Writer) Scan(line int, msg string) {
	fmt.Fprintf(w.out, "[line %d] Scan error: %s\n", line, msg)
	w.log.Debug().Int("line", line).Str("category", "scan").Msg(msg)
}

func (w *Writer) Parse(tok token.Token, msg string) {
	fmt.Fprintf(w.out, "[line %d] Parse error: %s\n", tok.Line, msg)
	w.log.Debug().Int("line", tok.Line).Str("category", "parse").Str("lexeme", tok.Lexeme).Msg(msg)
}

func (w *Writer) Runtime(tok token.Token, msg string) {
	fmt.Fprintf(w.out, "[line %d] Runtime error: %s\n", tok.Line, msg)
	w.log.Debug().Int("line", tok.Line).Str("category", "runtime").Str("lexeme", tok.Lexeme).Msg(msg)
}
