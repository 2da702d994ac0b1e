package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/golox/runtime/ast"
	"github.com/aledsdavies/golox/runtime/diag"
)

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRunFileExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"clean run", "print 1 + 2;", exitOK},
		{"scan error", "var a = @;", exitCompileError},
		{"parse error", "var = 1;", exitCompileError},
		{"runtime error", `-"x";`, exitRuntimeError},
		{"compile error wins over would-be runtime error", "var = 1;\n-\"x\";", exitCompileError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScript(t, tt.source)
			assert.Equal(t, tt.want, runFile(path, false))
		})
	}
}

func TestRunFileMissingScript(t *testing.T) {
	code := runFile(filepath.Join(t.TempDir(), "nope.lox"), false)
	assert.NotZero(t, code)
}

func TestRunFilePrintASTSkipsEvaluation(t *testing.T) {
	// parse-only mode never reaches the evaluator, so the runtime error in
	// the script does not surface
	path := writeScript(t, `-"x";`)
	assert.Equal(t, exitOK, runFile(path, true))
}

func compileForTest(t *testing.T, source string) (*diag.Session, []ast.Stmt) {
	t.Helper()
	var buf bytes.Buffer
	session := &diag.Session{Out: &buf, Err: &buf}
	stmts, _ := compile(source, session)
	return session, stmts
}

func TestBareExpression(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"expression without semicolon", "1 + 2", true},
		{"expression with semicolon", "1 + 2;", false},
		{"trailing whitespace after semicolon", "1 + 2; ", false},
		{"trailing whitespace after expression", "1 + 2 \t", true},
		{"statement", "print 1;", false},
		{"declaration", "var a = 1;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, stmts := compileForTest(t, tt.line)
			require.False(t, session.HadError)
			_, got := bareExpression(tt.line, stmts)
			assert.Equal(t, tt.want, got)
		})
	}
}
