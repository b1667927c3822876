package monkey

import (
	"bytes"

	"github.com/netherous/monkey/ast"
	"github.com/netherous/monkey/internal/formatter"
	"github.com/netherous/monkey/internal/marshaler"
	"github.com/netherous/monkey/lexer"
	"github.com/netherous/monkey/parser"
	"github.com/netherous/monkey/token"
)

// Tokenize returns every token of src, ending with a single EOF token.
func Tokenize(src []byte) []token.Token {
	return lexer.New(src).Tokenize()
}

// Parse parses src into a program. The program is returned even when the
// source has errors; in that case err is an errors.ParseErrors holding every
// diagnostic and the program contains the statements that did parse.
func Parse(src []byte, opts ...Option) (*ast.Program, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	p := parser.New(lexer.New(src), parser.WithMaxErrors(o.maxErrors))
	program := p.ParseProgram()
	if len(program.Errors) > 0 {
		return program, program.Errors
	}
	return program, nil
}

// Format returns the canonical source of node.
func Format(node ast.Node, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := formatter.New(&buf, o.indent).Format(node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dump renders node in one of the formats listed in DumpFormats.
func Dump(node ast.Node, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshaler.Encode(&buf, node, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DumpFormats returns the format names accepted by Dump.
func DumpFormats() []string {
	return append([]string(nil), marshaler.Formats...)
}
