package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/netherous/monkey/ast"
	"github.com/netherous/monkey/parser"
	"github.com/netherous/monkey/token"
)

const (
	defaultIndent = 2
)

// atom is the binding power of expressions that never need parentheses.
const atom = parser.CALL + 1

// Formatter writes a monkey AST to an output stream as canonical source.
// Every statement ends in a semicolon and parentheses are only emitted
// where precedence requires them, so the output parses back to the same tree.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
	err    error
}

// New returns a new formatter that writes to w. A nil indentSpaces selects
// the default of two spaces; zero puts every block on a single line.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes the source representation of node to the writer.
func (f *Formatter) Format(node ast.Node) error {
	f.err = nil
	f.depth = 0
	f.writeNode(node)
	return f.err
}

// write sends s to the writer unless an earlier write failed.
func (f *Formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *Formatter) fail(format string, args ...any) {
	if f.err == nil {
		f.err = fmt.Errorf(format, args...)
	}
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.depth; i++ {
		f.write(f.indent)
	}
}

// separator is written between consecutive statements.
func (f *Formatter) separator() string {
	if f.indent == "" {
		return " "
	}
	return "\n"
}

func (f *Formatter) writeNode(node ast.Node) {
	switch n := node.(type) {
	case nil:
		f.fail("monkey: cannot format nil node")
	case *ast.Program:
		for i, stmt := range n.Statements {
			if i > 0 {
				f.write(f.separator())
			}
			f.writeNode(stmt)
		}
	case *ast.BlockStatement:
		f.writeBlock(n)
	case ast.Statement:
		f.writeStatement(n)
	case ast.Expression:
		f.writeExpr(n, parser.LOWEST)
	default:
		f.fail("monkey: unsupported node type for formatting: %T", n)
	}
}

func (f *Formatter) writeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		if s.Name == nil || s.Value == nil {
			f.fail("monkey: incomplete let statement")
			return
		}
		f.write("let " + s.Name.Value + " = ")
		f.writeExpr(s.Value, parser.LOWEST)
		f.write(";")
	case *ast.ReturnStatement:
		if s.ReturnValue == nil {
			f.write("return;")
			return
		}
		f.write("return ")
		f.writeExpr(s.ReturnValue, parser.LOWEST)
		f.write(";")
	case *ast.ExpressionStatement:
		if s.Expression == nil {
			f.fail("monkey: empty expression statement")
			return
		}
		f.writeExpr(s.Expression, parser.LOWEST)
		f.write(";")
	case *ast.BlockStatement:
		f.writeBlock(s)
	default:
		f.fail("monkey: unsupported statement type for formatting: %T", s)
	}
}

func (f *Formatter) writeBlock(b *ast.BlockStatement) {
	if b == nil {
		f.fail("monkey: missing block")
		return
	}
	if len(b.Statements) == 0 {
		f.write("{}")
		return
	}

	if f.indent == "" {
		f.write("{ ")
		for i, stmt := range b.Statements {
			if i > 0 {
				f.write(" ")
			}
			f.writeStatement(stmt)
		}
		f.write(" }")
		return
	}

	f.write("{\n")
	f.depth++
	for _, stmt := range b.Statements {
		f.writeIndent()
		f.writeStatement(stmt)
		f.write("\n")
	}
	f.depth--
	f.writeIndent()
	f.write("}")
}

// writeExpr writes e, wrapping it in parentheses when it binds more loosely
// than the surrounding context requires.
func (f *Formatter) writeExpr(e ast.Expression, minPrec int) {
	if e == nil {
		f.fail("monkey: missing expression")
		return
	}

	wrap := precedence(e) < minPrec
	if wrap {
		f.write("(")
	}

	switch n := e.(type) {
	case *ast.Identifier:
		f.write(n.Value)
	case *ast.IntegerLiteral:
		f.write(n.Value)
	case *ast.Boolean:
		if n.Value {
			f.write("true")
		} else {
			f.write("false")
		}
	case *ast.PrefixExpression:
		f.write(n.Operator)
		f.writeExpr(n.Right, parser.PREFIX)
	case *ast.InfixExpression:
		prec := precedence(n)
		f.writeExpr(n.Left, prec)
		f.write(" " + n.Operator + " ")
		// Binary operators are left-associative, so an equal-precedence
		// right operand keeps its parentheses.
		f.writeExpr(n.Right, prec+1)
	case *ast.IfExpression:
		f.write("if (")
		f.writeExpr(n.Condition, parser.LOWEST)
		f.write(") ")
		f.writeBlock(n.Consequence)
		if n.Alternative != nil {
			f.write(" else ")
			f.writeBlock(n.Alternative)
		}
	case *ast.FunctionLiteral:
		params := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, p.Value)
		}
		f.write("fn(" + strings.Join(params, ", ") + ") ")
		f.writeBlock(n.Body)
	case *ast.CallExpression:
		f.writeExpr(n.Function, parser.CALL)
		f.write("(")
		for i, arg := range n.Arguments {
			if i > 0 {
				f.write(", ")
			}
			f.writeExpr(arg, parser.LOWEST)
		}
		f.write(")")
	default:
		f.fail("monkey: unsupported expression type for formatting: %T", n)
	}

	if wrap {
		f.write(")")
	}
}

func precedence(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.InfixExpression:
		// Operator types are spelled like the operators themselves.
		return parser.Precedence(token.Type(n.Operator))
	case *ast.PrefixExpression:
		return parser.PREFIX
	case *ast.CallExpression:
		return parser.CALL
	}
	return atom
}
