// Command golox runs Lox programs. With a script argument it executes the
// file once and exits with 0 on success, 65 on compile errors or 70 on a
// runtime error; with no arguments it drops into a REPL that keeps top-level
// bindings alive between lines.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/golox/runtime/ast"
	"github.com/aledsdavies/golox/runtime/diag"
	"github.com/aledsdavies/golox/runtime/interp"
	"github.com/aledsdavies/golox/runtime/lexer"
	"github.com/aledsdavies/golox/runtime/parser"
	"github.com/aledsdavies/golox/runtime/token"
)

// Exit codes for file mode
const (
	exitOK           = 0
	exitUsage        = 64
	exitCompileError = 65
	exitRuntimeError = 70
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		printAST bool
		noColor  bool
	)
	exitCode := exitOK

	rootCmd := &cobra.Command{
		Use:           "golox [script]",
		Short:         "Run Lox programs from a script file or an interactive prompt",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				runPrompt(printAST, ShouldUseColor(noColor))
			case 1:
				exitCode = runFile(args[0], printAST)
			default:
				fmt.Fprintln(os.Stderr, "Usage: golox [script]")
				exitCode = exitUsage
			}
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&printAST, "print-ast", false, "parse only and print the syntax tree")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored REPL output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// runFile executes a script once and maps the session's error flags to the
// process exit code.
func runFile(path string, printAST bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		return 1
	}

	session := diag.NewSession()
	in := interp.New(session)
	runSource(string(source), session, in, printAST)

	switch {
	case session.HadError:
		return exitCompileError
	case session.HadRuntimeError:
		return exitRuntimeError
	default:
		return exitOK
	}
}

// runPrompt reads and runs lines until EOF. One interpreter serves the whole
// session so variables persist; the compile-error flag resets between lines
// so a typo does not poison the next one.
func runPrompt(printAST, useColor bool) {
	session := diag.NewSession()
	in := interp.New(session)
	input := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(Colorize("> ", ColorBlue, useColor))
		if !input.Scan() {
			fmt.Println()
			return
		}
		line := input.Text()
		session.Reset()

		stmts, ok := compile(line, session)
		if !ok {
			continue
		}
		if printAST {
			fmt.Println(ast.PrintStmts(stmts))
			continue
		}

		// A bare expression at the prompt echoes its value instead of being
		// silently discarded.
		if expr, bare := bareExpression(line, stmts); bare {
			v, err := in.Evaluate(expr)
			if err != nil {
				if rtErr, isRT := err.(*diag.RuntimeError); isRT {
					session.ReportRuntime(rtErr)
				} else {
					fmt.Fprintln(os.Stderr, err)
				}
				continue
			}
			fmt.Fprintln(session.Out, Colorize(v.String(), ColorCyan, useColor))
			continue
		}

		in.Interpret(stmts)
	}
}

// runSource drives the scan/parse/evaluate pipeline for one source string.
// The evaluator never runs when compilation reported errors.
func runSource(source string, session *diag.Session, in *interp.Interpreter, printAST bool) {
	stmts, ok := compile(source, session)
	if !ok {
		return
	}
	if printAST {
		fmt.Println(ast.PrintStmts(stmts))
		return
	}
	in.Interpret(stmts)
}

func compile(source string, session *diag.Session) ([]ast.Stmt, bool) {
	tokens := lexer.New(source, session).ScanTokens()
	stmts := parser.New(tokens, session).Parse()
	if session.HadError {
		return nil, false
	}
	return stmts, true
}

// bareExpression reports whether the line is a single expression statement
// without its terminating semicolon, i.e. something typed to see its value.
func bareExpression(line string, stmts []ast.Stmt) (ast.Expr, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	exprStmt, ok := stmts[0].(*ast.ExpressionStmt)
	if !ok {
		return nil, false
	}
	// rescan so trailing whitespace and comments are skipped; the token
	// before EOF is the one that ends the statement
	tokens := lexer.New(line, &diag.Session{Out: io.Discard, Err: io.Discard}).ScanTokens()
	if len(tokens) >= 2 && tokens[len(tokens)-2].Type == token.SEMICOLON {
		return nil, false
	}
	return exprStmt.Expression, true
}
