package token

import "fmt"

// Type is the type of a token.
type Type string

// Position is the location of the first byte of a token in the source.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number in bytes, starting at 1
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // No lexical rule matched
	EOF     Type = "EOF"     // End of input

	// Literals
	IDENT Type = "IDENT" // add, foobar, x, y
	INT   Type = "INT"   // 1343456

	// Operators
	ASSIGN   Type = "="
	PLUS     Type = "+"
	MINUS    Type = "-"
	BANG     Type = "!"
	ASTERISK Type = "*"
	SLASH    Type = "/"
	LT       Type = "<"
	GT       Type = ">"
	EQ       Type = "=="
	NOT_EQ   Type = "!="

	// Delimiters
	COMMA     Type = ","
	SEMICOLON Type = ";"
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"

	// Keywords
	FUNCTION Type = "FUNCTION"
	LET      Type = "LET"
	TRUE     Type = "TRUE"
	FALSE    Type = "FALSE"
	IF       Type = "IF"
	ELSE     Type = "ELSE"
	RETURN   Type = "RETURN"
)

var keywords = map[string]Type{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT. Matching is case-sensitive.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword reports whether t is one of the reserved word types.
func IsKeyword(t Type) bool {
	switch t {
	case FUNCTION, LET, TRUE, FALSE, IF, ELSE, RETURN:
		return true
	}
	return false
}

// Equal reports whether two tokens have the same type and spelling.
// Positions are ignored.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type && t.Literal == other.Literal
}

// String returns the debug rendering of the token, e.g. IDENT(five) or LET.
func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, ILLEGAL:
		return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
	}
	return string(t.Type)
}
