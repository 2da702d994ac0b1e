package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/golox/runtime/diag"
	"github.com/aledsdavies/golox/runtime/token"
)

// tokenExpectation represents an expected token with type and lexeme
type tokenExpectation struct {
	Type   token.Type
	Lexeme string
}

func testSession() (*diag.Session, *bytes.Buffer) {
	var buf bytes.Buffer
	return &diag.Session{Out: &buf, Err: &buf}, &buf
}

// assertTokens compares actual tokens with expected, providing clear error
// messages. The trailing EOF is implicit in every expectation list.
func assertTokens(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()

	session, errOut := testSession()
	tokens := New(input, session).ScanTokens()

	expected = append(expected, tokenExpectation{token.EOF, ""})

	actualComp := make([]tokenExpectation, len(tokens))
	for i, tok := range tokens {
		actualComp[i] = tokenExpectation{tok.Type, tok.Lexeme}
	}

	if diff := cmp.Diff(expected, actualComp); diff != "" {
		t.Errorf("token mismatch for %q (-want +got):\n%s", input, diff)
	}
	if session.HadError {
		t.Errorf("unexpected scan errors for %q:\n%s", input, errOut.String())
	}
}

func TestPunctuators(t *testing.T) {
	assertTokens(t, "(){},.-+;/*", []tokenExpectation{
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.COMMA, ","},
		{token.DOT, "."},
		{token.MINUS, "-"},
		{token.PLUS, "+"},
		{token.SEMICOLON, ";"},
		{token.SLASH, "/"},
		{token.STAR, "*"},
	})
}

func TestOperators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "single char forms",
			input: "! = < >",
			expected: []tokenExpectation{
				{token.BANG, "!"},
				{token.EQUALS, "="},
				{token.LT, "<"},
				{token.GT, ">"},
			},
		},
		{
			name:  "two char forms",
			input: "!= == <= >=",
			expected: []tokenExpectation{
				{token.BANG_EQ, "!="},
				{token.EQ_EQ, "=="},
				{token.LT_EQ, "<="},
				{token.GT_EQ, ">="},
			},
		},
		{
			name:  "adjacent equals pair up greedily",
			input: "===",
			expected: []tokenExpectation{
				{token.EQ_EQ, "=="},
				{token.EQUALS, "="},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{"integer", "123", []tokenExpectation{{token.NUMBER, "123"}}},
		{"decimal", "3.14", []tokenExpectation{{token.NUMBER, "3.14"}}},
		{
			name:  "trailing dot is not part of the number",
			input: "123.",
			expected: []tokenExpectation{
				{token.NUMBER, "123"},
				{token.DOT, "."},
			},
		},
		{
			name:  "leading dot is not part of the number",
			input: ".5",
			expected: []tokenExpectation{
				{token.DOT, "."},
				{token.NUMBER, "5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNumberPayload(t *testing.T) {
	session, _ := testSession()
	tokens := New("42.5", session).ScanTokens()
	if tokens[0].Number != 42.5 {
		t.Errorf("payload = %v, want 42.5", tokens[0].Number)
	}
}

func TestStrings(t *testing.T) {
	session, _ := testSession()
	tokens := New(`"hello"`, session).ScanTokens()

	want := token.Token{Type: token.STRING, Lexeme: `"hello"`, Line: 1, Text: "hello"}
	if diff := cmp.Diff(want, tokens[0]); diff != "" {
		t.Errorf("string token mismatch (-want +got):\n%s", diff)
	}
}

func TestMultilineString(t *testing.T) {
	session, _ := testSession()
	tokens := New("\"a\nb\" c", session).ScanTokens()

	if tokens[0].Type != token.STRING || tokens[0].Text != "a\nb" {
		t.Fatalf("unexpected string token %v", tokens[0])
	}
	// the string starts on line 1; the identifier after it is on line 2
	if tokens[0].Line != 1 {
		t.Errorf("string line = %d, want 1", tokens[0].Line)
	}
	if tokens[1].Line != 2 {
		t.Errorf("identifier line = %d, want 2", tokens[1].Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	session, errOut := testSession()
	tokens := New(`"oops`, session).ScanTokens()

	if !session.HadError {
		t.Error("expected a scan error")
	}
	if !strings.Contains(errOut.String(), "Unterminated string.") {
		t.Errorf("unexpected diagnostic: %s", errOut.String())
	}
	// no STRING token emitted; only EOF remains
	if len(tokens) != 1 || tokens[0].Type != token.EOF {
		t.Errorf("tokens = %v, want only EOF", tokens)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	assertTokens(t, "and class else false fun for if nil or print return super this true var while foo _bar a1", []tokenExpectation{
		{token.AND, "and"},
		{token.CLASS, "class"},
		{token.ELSE, "else"},
		{token.FALSE, "false"},
		{token.FUN, "fun"},
		{token.FOR, "for"},
		{token.IF, "if"},
		{token.NIL, "nil"},
		{token.OR, "or"},
		{token.PRINT, "print"},
		{token.RETURN, "return"},
		{token.SUPER, "super"},
		{token.THIS, "this"},
		{token.TRUE, "true"},
		{token.VAR, "var"},
		{token.WHILE, "while"},
		{token.IDENTIFIER, "foo"},
		{token.IDENTIFIER, "_bar"},
		{token.IDENTIFIER, "a1"},
	})
}

func TestComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:     "line comment runs to end of line",
			input:    "a // b c d\nb",
			expected: []tokenExpectation{{token.IDENTIFIER, "a"}, {token.IDENTIFIER, "b"}},
		},
		{
			name:     "line comment at end of input",
			input:    "a // trailing",
			expected: []tokenExpectation{{token.IDENTIFIER, "a"}},
		},
		{
			name:     "block comment",
			input:    "a /* hidden */ b",
			expected: []tokenExpectation{{token.IDENTIFIER, "a"}, {token.IDENTIFIER, "b"}},
		},
		{
			name:     "block comment spanning lines",
			input:    "a /* one\ntwo\nthree */ b",
			expected: []tokenExpectation{{token.IDENTIFIER, "a"}, {token.IDENTIFIER, "b"}},
		},
		{
			name:     "slash alone is division",
			input:    "a / b",
			expected: []tokenExpectation{{token.IDENTIFIER, "a"}, {token.SLASH, "/"}, {token.IDENTIFIER, "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestBlockCommentTracksLines(t *testing.T) {
	session, _ := testSession()
	tokens := New("/* one\ntwo */ x", session).ScanTokens()
	if tokens[0].Line != 2 {
		t.Errorf("identifier after comment on line %d, want 2", tokens[0].Line)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	session, errOut := testSession()
	tokens := New("a /* never closed", session).ScanTokens()

	if !session.HadError {
		t.Error("expected a scan error")
	}
	if !strings.Contains(errOut.String(), "Unterminated block comment.") {
		t.Errorf("unexpected diagnostic: %s", errOut.String())
	}
	// scanning still terminated with EOF after the identifier
	if tokens[len(tokens)-1].Type != token.EOF {
		t.Errorf("last token = %v, want EOF", tokens[len(tokens)-1])
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	session, errOut := testSession()
	tokens := New("a # b", session).ScanTokens()

	if !session.HadError {
		t.Error("expected a scan error")
	}
	if !strings.Contains(errOut.String(), "Unexpected character") {
		t.Errorf("unexpected diagnostic: %s", errOut.String())
	}
	// scanning continues past the bad character
	assertAfterError := []tokenExpectation{
		{token.IDENTIFIER, "a"},
		{token.IDENTIFIER, "b"},
		{token.EOF, ""},
	}
	actual := make([]tokenExpectation, len(tokens))
	for i, tok := range tokens {
		actual[i] = tokenExpectation{tok.Type, tok.Lexeme}
	}
	if diff := cmp.Diff(assertAfterError, actual); diff != "" {
		t.Errorf("tokens after error (-want +got):\n%s", diff)
	}
}

func TestLineTracking(t *testing.T) {
	session, _ := testSession()
	tokens := New("a\nb\n\nc", session).ScanTokens()

	wantLines := []int{1, 2, 4, 4} // a, b, c, EOF
	for i, want := range wantLines {
		if tokens[i].Line != want {
			t.Errorf("token %d (%s) line = %d, want %d", i, tokens[i].Lexeme, tokens[i].Line, want)
		}
	}
}

func TestMultibyteSourceSurvivesScanning(t *testing.T) {
	session, _ := testSession()
	tokens := New("\"héllo ☺\" + x", session).ScanTokens()

	want := []tokenExpectation{
		{token.STRING, "\"héllo ☺\""},
		{token.PLUS, "+"},
		{token.IDENTIFIER, "x"},
		{token.EOF, ""},
	}
	actual := make([]tokenExpectation, len(tokens))
	for i, tok := range tokens {
		actual[i] = tokenExpectation{tok.Type, tok.Lexeme}
	}
	if diff := cmp.Diff(want, actual); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
	if tokens[0].Text != "héllo ☺" {
		t.Errorf("string payload = %q", tokens[0].Text)
	}
}

func TestEOFTotality(t *testing.T) {
	inputs := []string{"", "   ", "\n\n", "// only a comment", `"unterminated`, "a+b", "@@@"}
	for _, input := range inputs {
		session, _ := testSession()
		tokens := New(input, session).ScanTokens()

		eofCount := 0
		for _, tok := range tokens {
			if tok.Type == token.EOF {
				eofCount++
			}
		}
		if eofCount != 1 || tokens[len(tokens)-1].Type != token.EOF {
			t.Errorf("input %q: want exactly one trailing EOF, got %v", input, tokens)
		}
	}
}
