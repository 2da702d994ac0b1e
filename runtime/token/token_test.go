package token

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{EOF, "EOF"},
		{LPAREN, "LPAREN"},
		{BANG_EQ, "BANG_EQ"},
		{IDENTIFIER, "IDENTIFIER"},
		{WHILE, "WHILE"},
		{Type(999), "Type(999)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", int(tt.typ), got, tt.want)
		}
	}
}

func TestKeywordTableIsComplete(t *testing.T) {
	want := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	if len(Keywords) != len(want) {
		t.Fatalf("keyword table has %d entries, want %d", len(Keywords), len(want))
	}
	for _, kw := range want {
		if _, ok := Keywords[kw]; !ok {
			t.Errorf("missing keyword %q", kw)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"operator", Token{Type: PLUS, Lexeme: "+", Line: 1}, `PLUS "+"`},
		{"number carries its payload", Token{Type: NUMBER, Lexeme: "1.5", Line: 1, Number: 1.5}, `NUMBER "1.5" 1.5`},
		{"string carries its payload", Token{Type: STRING, Lexeme: `"hi"`, Line: 1, Text: "hi"}, `STRING "\"hi\"" "hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
