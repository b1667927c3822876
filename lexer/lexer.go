// Package lexer turns monkey source text into a stream of tokens.
//
// The lexer is byte oriented and pull based: every call to NextToken scans
// exactly one token. It never fails. Characters that match no rule become
// ILLEGAL tokens, and once the input is drained NextToken keeps returning EOF.
//
// Identifiers consist of ASCII letters and underscores only. Digits are not
// accepted after the first character, so "x1" lexes as IDENT(x) followed by
// INT(1).
package lexer

import "github.com/netherous/monkey/token"

// Lexer holds the state for tokenizing monkey source.
type Lexer struct {
	input        []byte
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	lineStart    int  // offset of the first byte of the current line
}

// single maps the one-byte operators and delimiters to their token types.
// '=' and '!' are handled separately since they may start a two-byte operator.
var single = map[byte]token.Type{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.ASTERISK,
	'/': token.SLASH,
	'<': token.LT,
	'>': token.GT,
	',': token.COMMA,
	';': token.SEMICOLON,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
}

// New creates and returns a new Lexer over input.
// The lexer takes ownership of input and never modifies it.
func New(input []byte) *Lexer {
	l := &Lexer{}
	l.Reset(input)
	return l
}

// Reset re-initializes the lexer with new input so it can be reused.
func (l *Lexer) Reset(input []byte) {
	l.input = input
	l.position = 0
	l.readPosition = 0
	l.ch = 0
	l.line = 1
	l.lineStart = 0
	l.readChar()
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	tok := token.Token{Pos: l.pos()}
	if l.atEOF() {
		tok.Type = token.EOF
		return tok
	}

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = token.EQ
			tok.Literal = "=="
		} else {
			tok.Type = token.ASSIGN
			tok.Literal = "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = token.NOT_EQ
			tok.Literal = "!="
		} else {
			tok.Type = token.BANG
			tok.Literal = "!"
		}
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		}
		if isDigit(l.ch) {
			tok.Type = token.INT
			tok.Literal = l.readNumber()
			return tok
		}
		if typ, ok := single[l.ch]; ok {
			tok.Type = typ
		} else {
			tok.Type = token.ILLEGAL
		}
		tok.Literal = string(l.input[l.position:l.readPosition])
	}

	l.readChar()
	return tok
}

// Tokenize drains the lexer and returns every remaining token.
// The returned slice always ends with exactly one EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

// readChar gives us the next character and advances our position in the input.
// Once the end of input is reached the cursor stays put and ch is 0.
func (l *Lexer) readChar() {
	if l.readPosition > 0 && l.position < len(l.input) && l.input[l.position] == '\n' {
		l.line++
		l.lineStart = l.readPosition
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		return
	}
	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks at the next character without advancing the position.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// atEOF is decided by position so that a NUL byte inside the input
// is reported as ILLEGAL rather than ending the stream early.
func (l *Lexer) atEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) pos() token.Position {
	return token.Position{
		Offset: l.position,
		Line:   l.line,
		Column: l.position - l.lineStart + 1,
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for !l.atEOF() && isLetter(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readNumber() string {
	position := l.position
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
