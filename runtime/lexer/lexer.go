// Package lexer turns Lox source text into a token stream. The scanner is a
// single pass over the input with one rune of lookahead; it never fails, it
// reports bad input through the session and keeps going until it has emitted
// the terminal EOF token.
package lexer

import (
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/aledsdavies/golox/runtime/diag"
	"github.com/aledsdavies/golox/runtime/token"
)

// ASCII character lookup tables for fast classification
var (
	isDigit      [128]bool
	isIdentStart [128]bool
	isIdentPart  [128]bool

	singleCharTokens [128]token.Type // Fast lookup for single-char tokens
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
		singleCharTokens[i] = token.ILLEGAL
	}

	singleCharTokens['('] = token.LPAREN
	singleCharTokens[')'] = token.RPAREN
	singleCharTokens['{'] = token.LBRACE
	singleCharTokens['}'] = token.RBRACE
	singleCharTokens[','] = token.COMMA
	singleCharTokens['.'] = token.DOT
	singleCharTokens['-'] = token.MINUS
	singleCharTokens['+'] = token.PLUS
	singleCharTokens[';'] = token.SEMICOLON
	singleCharTokens['*'] = token.STAR
}

// Scanner tokenizes Lox source code with rune-based reading, so multi-byte
// characters inside strings and comments are handled consistently.
type Scanner struct {
	input     string
	session   *diag.Session
	start     int  // byte offset where the current lexeme begins
	startLine int  // line where the current lexeme begins
	position  int  // byte offset of the current rune
	readPos   int  // byte offset one past the current rune
	ch        rune // current rune under examination, 0 at end of input
	line      int  // current line number, 1-based

	tokens []token.Token
	logger *slog.Logger
}

// New creates a scanner over the complete source string. Diagnostics go
// through the session.
func New(input string, session *diag.Session) *Scanner {
	s := &Scanner{
		input:   input,
		session: session,
		line:    1,
		tokens:  make([]token.Token, 0, len(input)/4+1),
		logger:  diag.DebugLogger("lexer"),
	}
	s.readRune()
	return s
}

// ScanTokens scans the whole input and returns the token stream, always
// terminated by exactly one EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	for s.ch != 0 {
		s.start = s.position
		s.startLine = s.line
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Lexeme: "", Line: s.line})
	s.logger.Debug("scan complete", "tokens", len(s.tokens), "lines", s.line)
	return s.tokens
}

func (s *Scanner) scanToken() {
	ch := s.ch
	s.readRune()

	switch ch {
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '*':
		s.addToken(singleCharTokens[ch])
	case '!':
		if s.match('=') {
			s.addToken(token.BANG_EQ)
		} else {
			s.addToken(token.BANG)
		}
	case '=':
		if s.match('=') {
			s.addToken(token.EQ_EQ)
		} else {
			s.addToken(token.EQUALS)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LT_EQ)
		} else {
			s.addToken(token.LT)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GT_EQ)
		} else {
			s.addToken(token.GT)
		}
	case '/':
		if s.match('/') {
			s.lineComment()
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t':
		// insignificant whitespace
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case digit(ch):
			s.scanNumber()
		case identStart(ch):
			s.scanIdentifier()
		default:
			s.session.Report(s.line, "Unexpected character "+strconv.QuoteRune(ch)+".")
		}
	}
}

func digit(r rune) bool      { return 0 <= r && r < 128 && isDigit[r] }
func identStart(r rune) bool { return 0 <= r && r < 128 && isIdentStart[r] }
func identPart(r rune) bool  { return 0 <= r && r < 128 && isIdentPart[r] }

// lineComment consumes through but not including the terminating newline.
func (s *Scanner) lineComment() {
	for s.ch != 0 && s.ch != '\n' {
		s.readRune()
	}
}

// blockComment consumes until and including the closing */. Newlines inside
// the comment still count toward line numbering. End of input before */ is a
// compile error; no token is emitted either way.
func (s *Scanner) blockComment() {
	for s.ch != 0 {
		if s.ch == '*' && s.peekNext() == '/' {
			s.readRune() // *
			s.readRune() // /
			return
		}
		if s.ch == '\n' {
			s.line++
		}
		s.readRune()
	}
	s.session.Report(s.line, "Unterminated block comment.")
}

// scanString is entered after the opening quote. Embedded newlines are legal
// and bump the line counter.
func (s *Scanner) scanString() {
	for s.ch != 0 && s.ch != '"' {
		if s.ch == '\n' {
			s.line++
		}
		s.readRune()
	}

	if s.ch == 0 {
		s.session.Report(s.line, "Unterminated string.")
		return
	}

	s.readRune() // closing quote

	lexeme := s.input[s.start:s.position]
	s.tokens = append(s.tokens, token.Token{
		Type:   token.STRING,
		Lexeme: lexeme,
		Line:   s.startLine,
		Text:   lexeme[1 : len(lexeme)-1],
	})
}

// scanNumber is entered after the first digit. A fractional part needs a
// digit after the dot, so "123." lexes as the number 123 followed by a DOT.
func (s *Scanner) scanNumber() {
	for digit(s.ch) {
		s.readRune()
	}

	if s.ch == '.' && digit(s.peekNext()) {
		s.readRune() // consume the dot
		for digit(s.ch) {
			s.readRune()
		}
	}

	lexeme := s.input[s.start:s.position]
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// digits with at most one interior dot always parse
		s.session.Report(s.line, "Invalid number literal '"+lexeme+"'.")
		return
	}
	s.tokens = append(s.tokens, token.Token{
		Type:   token.NUMBER,
		Lexeme: lexeme,
		Line:   s.line,
		Number: n,
	})
}

func (s *Scanner) scanIdentifier() {
	for identPart(s.ch) {
		s.readRune()
	}

	lexeme := s.input[s.start:s.position]
	typ, ok := token.Keywords[lexeme]
	if !ok {
		typ = token.IDENTIFIER
	}
	s.addToken(typ)
}

// readRune advances to the next rune in the input. At end of input ch
// becomes 0.
func (s *Scanner) readRune() {
	s.position = s.readPos
	if s.readPos >= len(s.input) {
		s.ch = 0
		return
	}
	r, width := utf8.DecodeRuneInString(s.input[s.readPos:])
	s.ch = r
	s.readPos += width
}

// match consumes the current rune only when it equals expected.
func (s *Scanner) match(expected rune) bool {
	if s.ch != expected {
		return false
	}
	s.readRune()
	return true
}

// peekNext looks one rune past the current one without consuming anything.
func (s *Scanner) peekNext() rune {
	if s.readPos >= len(s.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.readPos:])
	return r
}

func (s *Scanner) addToken(typ token.Type) {
	s.tokens = append(s.tokens, token.Token{
		Type:   typ,
		Lexeme: s.input[s.start:s.position],
		Line:   s.line,
	})
}
