package scanner

import (
	"testing"

	"github.com/team99/golox/internal/token"
)

func TestPunctuationAndOperators(t *testing.T) {
	input := `(){}, . - + ; * ! != = == < <= > >= /`

	tests := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.SLASH,
		token.EOF,
	}

	tokens := New(input).ScanTokens()
	if len(tokens) != len(tests) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(tests))
	}
	for i, want := range tests {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d].Type = %s, want %s", i, tokens[i].Type, want)
		}
	}
}

func TestLineComment(t *testing.T) {
	tokens := New("1 // this is ignored\n2").ScanTokens()
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3 (NUMBER NUMBER EOF)", len(tokens))
	}
	if tokens[0].Literal != 1.0 || tokens[1].Literal != 2.0 {
		t.Errorf("literals = %v, %v, want 1, 2", tokens[0].Literal, tokens[1].Literal)
	}
	if tokens[1].Pos.Line != 2 {
		t.Errorf("second number line = %d, want 2", tokens[1].Pos.Line)
	}
}

func TestStringLiteral(t *testing.T) {
	tokens := New(`"hello world"`).ScanTokens()
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Type != token.STRING || tokens[0].Literal != "hello world" {
		t.Errorf("token = %+v, want STRING \"hello world\"", tokens[0])
	}
}

func TestMultilineString(t *testing.T) {
	sc := New("\"line one\nline two\"\n1")
	tokens := sc.ScanTokens()
	if tokens[1].Pos.Line != 3 {
		t.Errorf("number after multiline string is on line %d, want 3", tokens[1].Pos.Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	sc := New(`"never closed`)
	tokens := sc.ScanTokens()
	if len(sc.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(sc.Errors()))
	}
	if tokens[0].Type != token.EOF {
		t.Errorf("expected no STRING token to be emitted, got %s", tokens[0].Type)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		source string
		want   float64
	}{
		{"123", 123},
		{"0", 0},
		{"3.14", 3.14},
		{"1.0", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := New(tt.source).ScanTokens()
			if tokens[0].Type != token.NUMBER {
				t.Fatalf("type = %s, want NUMBER", tokens[0].Type)
			}
			if tokens[0].Literal.(float64) != tt.want {
				t.Errorf("literal = %v, want %v", tokens[0].Literal, tt.want)
			}
		})
	}
}

func TestNumberDoesNotConsumeTrailingDotWithoutDigit(t *testing.T) {
	// "1." is NUMBER(1) DOT, not an error: trailing-dot method calls like
	// `1.toString()` aren't part of Lox, but the scanner shouldn't choke.
	tokens := New("1.").ScanTokens()
	if tokens[0].Type != token.NUMBER || tokens[0].Literal.(float64) != 1 {
		t.Fatalf("tokens[0] = %+v, want NUMBER 1", tokens[0])
	}
	if tokens[1].Type != token.DOT {
		t.Fatalf("tokens[1].Type = %s, want DOT", tokens[1].Type)
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tokens := New("var counter = 0; while (true) counter = counter + 1;").ScanTokens()

	wantTypes := []token.Type{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.SEMICOLON,
		token.WHILE, token.LEFT_PAREN, token.TRUE, token.RIGHT_PAREN,
		token.IDENTIFIER, token.EQUAL, token.IDENTIFIER, token.PLUS, token.NUMBER, token.SEMICOLON,
		token.EOF,
	}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(wantTypes))
	}
	for i, want := range wantTypes {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d] = %s, want %s", i, tokens[i].Type, want)
		}
	}
}

func TestUnexpectedCharacterRecordsErrorAndContinues(t *testing.T) {
	sc := New("1 @ 2")
	tokens := sc.ScanTokens()
	if len(sc.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(sc.Errors()))
	}
	if len(tokens) != 3 { // NUMBER, NUMBER, EOF — '@' produces no token
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
}

func TestEOFAlwaysPresent(t *testing.T) {
	tokens := New("").ScanTokens()
	if len(tokens) != 1 || tokens[0].Type != token.EOF {
		t.Fatalf("tokens = %+v, want a single EOF", tokens)
	}
}
