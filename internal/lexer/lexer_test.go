package lexer

import (
	"testing"

	"github.com/minilang/minilang/internal/token"
)

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Kind
	}{
		{"let", token.LET},
		{"if", token.IF},
		{"else", token.ELSE},
		{"while", token.WHILE},
		{"print", token.PRINT},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"null", token.NULL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tokens, errors := l.ScanTokens()

			if len(errors) > 0 {
				t.Fatalf("unexpected errors: %v", errors)
			}
			if len(tokens) != 2 {
				t.Fatalf("expected 2 tokens (keyword + EOF), got %d", len(tokens))
			}
			if tokens[0].Kind != tt.expected {
				t.Errorf("got kind %s, want %s", tokens[0].Kind, tt.expected)
			}
		})
	}
}

func TestSingleCharTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Kind
	}{
		{"(", token.LEFT_PAREN},
		{")", token.RIGHT_PAREN},
		{"{", token.LEFT_BRACE},
		{"}", token.RIGHT_BRACE},
		{";", token.SEMICOLON},
		{"+", token.PLUS},
		{"-", token.MINUS},
		{"*", token.STAR},
		{"/", token.SLASH},
		{"<", token.LESS},
		{">", token.GREATER},
		{"=", token.EQUAL},
		{"!", token.BANG},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tokens, errors := l.ScanTokens()
			if len(errors) > 0 {
				t.Fatalf("unexpected errors: %v", errors)
			}
			if tokens[0].Kind != tt.expected {
				t.Errorf("got kind %s, want %s", tokens[0].Kind, tt.expected)
			}
		})
	}
}

func TestTwoCharTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Kind
	}{
		{"==", token.EQUAL_EQUAL},
		{"!=", token.BANG_EQUAL},
		{"<=", token.LESS_EQUAL},
		{">=", token.GREATER_EQUAL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tokens, errors := l.ScanTokens()
			if len(errors) > 0 {
				t.Fatalf("unexpected errors: %v", errors)
			}
			if len(tokens) != 2 {
				t.Fatalf("expected 2 tokens, got %d", len(tokens))
			}
			if tokens[0].Kind != tt.expected {
				t.Errorf("got kind %s, want %s", tokens[0].Kind, tt.expected)
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"42", int64(42)},
		{"0", int64(0)},
		{"3.14", 3.14},
		{"100.0", 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			tokens, errors := l.ScanTokens()
			if len(errors) > 0 {
				t.Fatalf("unexpected errors: %v", errors)
			}
			if tokens[0].Kind != token.NUMBER {
				t.Fatalf("expected NUMBER, got %s", tokens[0].Kind)
			}
			if tokens[0].Literal != tt.expected {
				t.Errorf("got literal %#v, want %#v", tokens[0].Literal, tt.expected)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	l := New(`"hello, world"`)
	tokens, errors := l.ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("unexpected errors: %v", errors)
	}
	if tokens[0].Kind != token.STRING {
		t.Fatalf("expected STRING, got %s", tokens[0].Kind)
	}
	if tokens[0].Literal != "hello, world" {
		t.Errorf("got literal %v, want %q", tokens[0].Literal, "hello, world")
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	_, errors := l.ScanTokens()
	if len(errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errors))
	}
}

func TestMultiLineStringDoesNotTerminateButTracksLineAndColumn(t *testing.T) {
	source := "let s = \"line one\nline two\";\nlet after = 1;"
	l := New(source)
	tokens, errors := l.ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("unexpected errors: %v", errors)
	}

	var str *token.Token
	var after *token.Token
	for i := range tokens {
		tok := &tokens[i]
		if tok.Kind == token.STRING {
			str = tok
		}
		if tok.Kind == token.IDENT && tok.Lexeme == "after" {
			after = tok
		}
	}

	if str == nil {
		t.Fatal("did not find STRING token")
	}
	if str.Literal != "line one\nline two" {
		t.Errorf("got literal %q, want embedded newline preserved", str.Literal)
	}
	if str.Line != 1 {
		t.Errorf("string token should report its starting line 1, got %d", str.Line)
	}

	if after == nil {
		t.Fatal("did not find IDENT token 'after'")
	}
	if after.Line != 3 {
		t.Errorf("token after a multi-line string should be on line 3, got %d", after.Line)
	}
	if after.Column != 5 {
		t.Errorf("token after a multi-line string should be at column 5, got %d", after.Column)
	}
}

func TestIdentifiers(t *testing.T) {
	l := New("count total_count _private x1")
	tokens, errors := l.ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("unexpected errors: %v", errors)
	}
	want := []string{"count", "total_count", "_private", "x1"}
	for i, w := range want {
		if tokens[i].Kind != token.IDENT {
			t.Errorf("token %d: got kind %s, want IDENT", i, tokens[i].Kind)
		}
		if tokens[i].Lexeme != w {
			t.Errorf("token %d: got lexeme %q, want %q", i, tokens[i].Lexeme, w)
		}
	}
}

func TestComments(t *testing.T) {
	l := New("let x = 1; // this is a comment\nlet y = 2;")
	tokens, errors := l.ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("unexpected errors: %v", errors)
	}
	for _, tok := range tokens {
		if tok.Kind == token.SLASH {
			t.Fatalf("comment was not stripped, found SLASH token")
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	l := New("let x = 1 @ 2;")
	_, errors := l.ScanTokens()
	if len(errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errors))
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("let x = 1;\nlet y = 2;")
	tokens, _ := l.ScanTokens()

	var found bool
	for _, tok := range tokens {
		if tok.Kind == token.LET && tok.Line == 2 {
			found = true
			if tok.Column != 1 {
				t.Errorf("got column %d, want 1", tok.Column)
			}
		}
	}
	if !found {
		t.Fatal("did not find LET token on line 2")
	}
}

func TestEOFAlwaysLast(t *testing.T) {
	l := New("let x = 1;")
	tokens, _ := l.ScanTokens()
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		t.Errorf("last token was %s, want EOF", last.Kind)
	}
}

func TestFullProgram(t *testing.T) {
	source := `
let count = 0;
while (count < 3) {
    print count;
    count = count + 1;
}
`
	l := New(source)
	tokens, errors := l.ScanTokens()
	if len(errors) > 0 {
		t.Fatalf("unexpected errors: %v", errors)
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		t.Errorf("expected trailing EOF")
	}
}
