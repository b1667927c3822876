package errors

import "fmt"

// ParseError represents a single error that occurred during parsing.
// It includes the position of the offending token and, for grammar
// violations, the token type that was expected and the one found.
type ParseError struct {
	Message  string
	Line     int
	Column   int
	Expected string
	Got      string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning all syntax errors found during parsing at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	msg := fmt.Sprintf("monkey: parsing error at line %d, column %d: %s", p[0].Line, p[0].Column, p[0].Message)
	switch n := len(p) - 1; n {
	case 0:
		return msg
	case 1:
		return msg + " (and 1 more error)"
	default:
		return fmt.Sprintf("%s (and %d more errors)", msg, n)
	}
}

// Messages returns every error rendered as line:column: message.
func (p ParseErrors) Messages() []string {
	msgs := make([]string, 0, len(p))
	for _, e := range p {
		msgs = append(msgs, e.Error())
	}
	return msgs
}
