package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/netherous/monkey/lexer"
	"github.com/netherous/monkey/token"
	"github.com/stretchr/testify/require"
)

func tok(typ token.Type, lit string) token.Token {
	return token.Token{Type: typ, Literal: lit}
}

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;
let add = fn(x, y) {
  x + y;
};
let result = add(five, ten);`

	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedLine    int
		expectedColumn  int
	}{
		{token.LET, "let", 1, 1},
		{token.IDENT, "five", 1, 5},
		{token.ASSIGN, "=", 1, 10},
		{token.INT, "5", 1, 12},
		{token.SEMICOLON, ";", 1, 13},
		{token.LET, "let", 2, 1},
		{token.IDENT, "ten", 2, 5},
		{token.ASSIGN, "=", 2, 9},
		{token.INT, "10", 2, 11},
		{token.SEMICOLON, ";", 2, 13},
		{token.LET, "let", 3, 1},
		{token.IDENT, "add", 3, 5},
		{token.ASSIGN, "=", 3, 9},
		{token.FUNCTION, "fn", 3, 11},
		{token.LPAREN, "(", 3, 13},
		{token.IDENT, "x", 3, 14},
		{token.COMMA, ",", 3, 15},
		{token.IDENT, "y", 3, 17},
		{token.RPAREN, ")", 3, 18},
		{token.LBRACE, "{", 3, 20},
		{token.IDENT, "x", 4, 3},
		{token.PLUS, "+", 4, 5},
		{token.IDENT, "y", 4, 7},
		{token.SEMICOLON, ";", 4, 8},
		{token.RBRACE, "}", 5, 1},
		{token.SEMICOLON, ";", 5, 2},
		{token.LET, "let", 6, 1},
		{token.IDENT, "result", 6, 5},
		{token.ASSIGN, "=", 6, 12},
		{token.IDENT, "add", 6, 14},
		{token.LPAREN, "(", 6, 17},
		{token.IDENT, "five", 6, 18},
		{token.COMMA, ",", 6, 22},
		{token.IDENT, "ten", 6, 24},
		{token.RPAREN, ")", 6, 27},
		{token.SEMICOLON, ";", 6, 28},
		{token.EOF, "", 6, 29},
	}

	l := lexer.New([]byte(input))

	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "test[%d] - wrong token type. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "test[%d] - wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		require.Equal(t, tt.expectedLine, tok.Pos.Line, "test[%d] - wrong line. expected=%d, got=%d", i, tt.expectedLine, tok.Pos.Line)
		require.Equal(t, tt.expectedColumn, tok.Pos.Column, "test[%d] - wrong column. expected=%d, got=%d", i, tt.expectedColumn, tok.Pos.Column)
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "let binding",
			input: "let five = 5;",
			expected: []token.Token{
				tok(token.LET, "let"), tok(token.IDENT, "five"), tok(token.ASSIGN, "="),
				tok(token.INT, "5"), tok(token.SEMICOLON, ";"), tok(token.EOF, ""),
			},
		},
		{
			name:  "function literal",
			input: "fn(x, y) { x + y; }",
			expected: []token.Token{
				tok(token.FUNCTION, "fn"), tok(token.LPAREN, "("), tok(token.IDENT, "x"),
				tok(token.COMMA, ","), tok(token.IDENT, "y"), tok(token.RPAREN, ")"),
				tok(token.LBRACE, "{"), tok(token.IDENT, "x"), tok(token.PLUS, "+"),
				tok(token.IDENT, "y"), tok(token.SEMICOLON, ";"), tok(token.RBRACE, "}"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "two byte operators",
			input: "10 == 10; 9 != 10;",
			expected: []token.Token{
				tok(token.INT, "10"), tok(token.EQ, "=="), tok(token.INT, "10"), tok(token.SEMICOLON, ";"),
				tok(token.INT, "9"), tok(token.NOT_EQ, "!="), tok(token.INT, "10"), tok(token.SEMICOLON, ";"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "adjacent single byte operators",
			input: "!-/*5;",
			expected: []token.Token{
				tok(token.BANG, "!"), tok(token.MINUS, "-"), tok(token.SLASH, "/"),
				tok(token.ASTERISK, "*"), tok(token.INT, "5"), tok(token.SEMICOLON, ";"),
				tok(token.EOF, ""),
			},
		},
		{
			name:  "assign then bang",
			input: "=!=!",
			expected: []token.Token{
				tok(token.ASSIGN, "="), tok(token.NOT_EQ, "!="), tok(token.BANG, "!"), tok(token.EOF, ""),
			},
		},
		{
			name:  "triple equals",
			input: "===",
			expected: []token.Token{
				tok(token.EQ, "=="), tok(token.ASSIGN, "="), tok(token.EOF, ""),
			},
		},
		{
			name:  "if else with comparisons",
			input: "if (5 < 10) { return true; } else { return false; }",
			expected: []token.Token{
				tok(token.IF, "if"), tok(token.LPAREN, "("), tok(token.INT, "5"), tok(token.LT, "<"),
				tok(token.INT, "10"), tok(token.RPAREN, ")"), tok(token.LBRACE, "{"),
				tok(token.RETURN, "return"), tok(token.TRUE, "true"), tok(token.SEMICOLON, ";"),
				tok(token.RBRACE, "}"), tok(token.ELSE, "else"), tok(token.LBRACE, "{"),
				tok(token.RETURN, "return"), tok(token.FALSE, "false"), tok(token.SEMICOLON, ";"),
				tok(token.RBRACE, "}"), tok(token.EOF, ""),
			},
		},
		{
			name:  "digits end an identifier",
			input: "x1 foo_bar2",
			expected: []token.Token{
				tok(token.IDENT, "x"), tok(token.INT, "1"),
				tok(token.IDENT, "foo_bar"), tok(token.INT, "2"), tok(token.EOF, ""),
			},
		},
		{
			name:     "whitespace only",
			input:    " \t\r\n ",
			expected: []token.Token{tok(token.EOF, "")},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []token.Token{tok(token.EOF, "")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := lexer.New([]byte(tt.input)).Tokenize()
			if diff := cmp.Diff(tt.expected, actual, cmpopts.IgnoreFields(token.Token{}, "Pos")); diff != "" {
				t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSingleCharacterTokens(t *testing.T) {
	tests := map[string]token.Type{
		"=": token.ASSIGN,
		"+": token.PLUS,
		"-": token.MINUS,
		"!": token.BANG,
		"*": token.ASTERISK,
		"/": token.SLASH,
		"<": token.LT,
		">": token.GT,
		",": token.COMMA,
		";": token.SEMICOLON,
		"(": token.LPAREN,
		")": token.RPAREN,
		"{": token.LBRACE,
		"}": token.RBRACE,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			l := lexer.New([]byte(input))
			first := l.NextToken()
			require.Equal(t, expected, first.Type)
			require.Equal(t, input, first.Literal)
			require.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
	}{
		{"fn", token.FUNCTION},
		{"let", token.LET},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"if", token.IF},
		{"else", token.ELSE},
		{"return", token.RETURN},
		{"Fn", token.IDENT},
		{"lett", token.IDENT},
		{"iff", token.IDENT},
		{"_return", token.IDENT},
		{"returns", token.IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := lexer.New([]byte(tt.input))
			tok := l.NextToken()
			require.Equal(t, tt.expected, tok.Type)
			require.Equal(t, tt.input, tok.Literal)
			require.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expectedLiteral string
	}{
		{name: "Invalid character", input: "@", expectedLiteral: "@"},
		{name: "Bracket", input: "[", expectedLiteral: "["},
		{name: "Quote", input: `"`, expectedLiteral: `"`},
		{name: "Embedded NUL", input: "\x00", expectedLiteral: "\x00"},
		{name: "Non ASCII byte", input: "\xff", expectedLiteral: "\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New([]byte(tt.input))
			tok := l.NextToken()
			require.Equal(t, token.ILLEGAL, tok.Type)
			require.Equal(t, tt.expectedLiteral, tok.Literal)
			require.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestMultiByteInputIsIllegalPerByte(t *testing.T) {
	// "é" is two bytes in UTF-8.
	toks := lexer.New([]byte("aé")).Tokenize()
	require.Len(t, toks, 4)
	require.Equal(t, tok(token.IDENT, "a"), token.Token{Type: toks[0].Type, Literal: toks[0].Literal})
	require.Equal(t, token.ILLEGAL, toks[1].Type)
	require.Equal(t, token.ILLEGAL, toks[2].Type)
	require.Equal(t, "é", toks[1].Literal+toks[2].Literal)
	require.Equal(t, token.EOF, toks[3].Type)
}

func TestNULDoesNotEndInput(t *testing.T) {
	toks := lexer.New([]byte("a\x00b")).Tokenize()
	require.Len(t, toks, 4)
	require.Equal(t, token.IDENT, toks[0].Type)
	require.Equal(t, token.ILLEGAL, toks[1].Type)
	require.Equal(t, token.IDENT, toks[2].Type)
	require.Equal(t, "b", toks[2].Literal)
	require.Equal(t, token.EOF, toks[3].Type)
}

func TestEOFIsIdempotent(t *testing.T) {
	inputs := []string{"", "let", "5 + @", "x ==", "  \n"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			l := lexer.New([]byte(input))
			var last token.Token
			for range 64 {
				last = l.NextToken()
				if last.Type == token.EOF {
					break
				}
			}
			require.Equal(t, token.EOF, last.Type)
			for range 5 {
				again := l.NextToken()
				require.Equal(t, token.EOF, again.Type)
				require.Equal(t, last.Pos, again.Pos)
			}
		})
	}
}

func TestReset(t *testing.T) {
	l := lexer.New([]byte("let a"))
	require.Equal(t, token.LET, l.NextToken().Type)

	l.Reset([]byte("\n  fn"))
	tok := l.NextToken()
	require.Equal(t, token.FUNCTION, tok.Type)
	require.Equal(t, token.Position{Offset: 3, Line: 2, Column: 3}, tok.Pos)
	require.Equal(t, token.EOF, l.NextToken().Type)
}

func TestTokenizeEndsWithSingleEOF(t *testing.T) {
	toks := lexer.New([]byte("a b c")).Tokenize()
	require.Len(t, toks, 4)
	require.Equal(t, token.EOF, toks[len(toks)-1].Type)
	for _, tok := range toks[:len(toks)-1] {
		require.NotEqual(t, token.EOF, tok.Type)
	}
}
