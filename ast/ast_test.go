package ast

import (
	"testing"

	"github.com/netherous/monkey/token"
	"github.com/stretchr/testify/require"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
}

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name:  ident("myVar"),
				Value: ident("anotherVar"),
			},
		},
	}

	require.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestCompoundString(t *testing.T) {
	body := &BlockStatement{
		Token: token.Token{Type: token.LBRACE, Literal: "{"},
		Statements: []Statement{
			&ReturnStatement{
				Token: token.Token{Type: token.RETURN, Literal: "return"},
				ReturnValue: &InfixExpression{
					Token:    token.Token{Type: token.PLUS, Literal: "+"},
					Left:     ident("x"),
					Operator: "+",
					Right: &PrefixExpression{
						Token:    token.Token{Type: token.MINUS, Literal: "-"},
						Operator: "-",
						Right:    &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "5"}, Value: "5"},
					},
				},
			},
		},
	}
	fn := &FunctionLiteral{
		Token:      token.Token{Type: token.FUNCTION, Literal: "fn"},
		Parameters: []*Identifier{ident("x"), ident("y")},
		Body:       body,
	}
	call := &CallExpression{
		Token:     token.Token{Type: token.LPAREN, Literal: "("},
		Function:  fn,
		Arguments: []Expression{&Boolean{Token: token.Token{Type: token.TRUE, Literal: "true"}, Value: true}},
	}
	cond := &IfExpression{
		Token:       token.Token{Type: token.IF, Literal: "if"},
		Condition:   ident("ok"),
		Consequence: &BlockStatement{Statements: []Statement{&ExpressionStatement{Expression: call}}},
		Alternative: &BlockStatement{Statements: []Statement{&ReturnStatement{Token: token.Token{Type: token.RETURN, Literal: "return"}}}},
	}

	require.Equal(t, "fn(x, y) {return (x + (-5));}(true)", call.String())
	require.Equal(t, "if ok {fn(x, y) {return (x + (-5));}(true)} else {return;}", cond.String())
}

func TestWalk(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{Name: ident("a"), Value: &InfixExpression{Left: ident("b"), Operator: "*", Right: ident("c")}},
			&ExpressionStatement{Expression: &CallExpression{Function: ident("f"), Arguments: []Expression{ident("d")}}},
		},
	}

	var names []string
	Walk(program, func(n Node) bool {
		if id, ok := n.(*Identifier); ok {
			names = append(names, id.Value)
		}
		return true
	})
	require.Equal(t, []string{"a", "b", "c", "f", "d"}, names)

	var visited int
	Walk(program, func(n Node) bool {
		visited++
		_, isLet := n.(*LetStatement)
		return !isLet
	})
	// Program, LetStatement, ExpressionStatement, CallExpression, f, d
	require.Equal(t, 6, visited)
}

func TestProgramPos(t *testing.T) {
	require.Equal(t, token.Position{Line: 1, Column: 1}, (&Program{}).Pos())

	p := &Program{Statements: []Statement{
		&ReturnStatement{Token: token.Token{Type: token.RETURN, Literal: "return", Pos: token.Position{Offset: 4, Line: 2, Column: 3}}},
	}}
	require.Equal(t, token.Position{Offset: 4, Line: 2, Column: 3}, p.Pos())
	require.Equal(t, "return", p.TokenLiteral())
}
