// Package diag owns the diagnostic state for one interpreter run. The scanner,
// parser and evaluator all report through a single Session rather than
// process-global flags, so embedding hosts and tests can run several pipelines
// side by side.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/golox/runtime/token"
)

// Session carries the two error flags the driver inspects after a run, plus
// the writers diagnostics are rendered to. Program output (print statements)
// does not go through the session.
type Session struct {
	HadError        bool // a scan or parse error was reported
	HadRuntimeError bool // the evaluator aborted on a runtime error

	Out io.Writer // program-adjacent output (REPL echoes)
	Err io.Writer // diagnostics
}

// NewSession returns a session writing diagnostics to stderr.
func NewSession() *Session {
	return &Session{Out: os.Stdout, Err: os.Stderr}
}

// Reset clears the compile-error flag. The REPL driver calls this between
// input lines; the runtime flag is left alone so file mode can still observe
// it.
func (s *Session) Reset() {
	s.HadError = false
}

// Report emits a compile diagnostic for a bare line position, in the form
// "[line L] Error: message". The scanner reports through this entry point.
func (s *Session) Report(line int, message string) {
	s.reportAt(line, "", message)
}

// ReportToken emits a compile diagnostic anchored to a token, pointing at the
// offending lexeme or at end of input.
func (s *Session) ReportToken(tok token.Token, message string) {
	if tok.Type == token.EOF {
		s.reportAt(tok.Line, " at end", message)
	} else {
		s.reportAt(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (s *Session) reportAt(line int, where, message string) {
	fmt.Fprintf(s.Err, "[line %d] Error%s: %s\n", line, where, message)
	s.HadError = true
}

// ReportRuntime emits a runtime diagnostic ("message" then "[line L]") and
// latches the runtime-error flag.
func (s *Session) ReportRuntime(err *RuntimeError) {
	fmt.Fprintf(s.Err, "%s\n[line %d]\n", err.Message, err.Token.Line)
	s.HadRuntimeError = true
}
