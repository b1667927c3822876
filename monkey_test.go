package monkey_test

import (
	"encoding/json"
	"testing"

	"github.com/netherous/monkey"
	merrors "github.com/netherous/monkey/errors"
	"github.com/netherous/monkey/token"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks := monkey.Tokenize([]byte("let five = 5;"))

	var types []token.Type
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	require.Equal(t, []token.Type{token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON, token.EOF}, types)
	require.Equal(t, "five", toks[1].Literal)
	require.Equal(t, token.Position{Offset: 12, Line: 1, Column: 13}, toks[4].Pos)
}

func TestParse(t *testing.T) {
	t.Run("Valid program", func(t *testing.T) {
		program, err := monkey.Parse([]byte("let x = 1 + 2 * 3; x"))
		require.NoError(t, err)
		require.Empty(t, program.Errors)
		require.Equal(t, "let x = (1 + (2 * 3));x", program.String())
	})

	t.Run("Errors keep the valid statements", func(t *testing.T) {
		program, err := monkey.Parse([]byte("let = 1; let = 2; let ok = true;"))
		require.Error(t, err)
		require.NotNil(t, program)
		require.Len(t, program.Statements, 1)

		var perrs merrors.ParseErrors
		require.ErrorAs(t, err, &perrs)
		require.Len(t, perrs, 2)
		require.Equal(t, program.Errors, perrs)
		require.EqualError(t, err, "monkey: parsing error at line 1, column 5: expected next token to be IDENT, got = instead (and 1 more error)")
	})

	t.Run("MaxErrors", func(t *testing.T) {
		program, err := monkey.Parse([]byte("@; @; @;"), monkey.MaxErrors(1))
		require.Error(t, err)
		require.Len(t, program.Errors, 1)
	})

	t.Run("Invalid option", func(t *testing.T) {
		program, err := monkey.Parse([]byte("x"), monkey.MaxErrors(-1))
		require.Error(t, err)
		require.Nil(t, program)
	})
}

func TestFormat(t *testing.T) {
	program, err := monkey.Parse([]byte("let f = fn(a) { return (a * (2 + a)); };"))
	require.NoError(t, err)

	out, err := monkey.Format(program)
	require.NoError(t, err)
	require.Equal(t, "let f = fn(a) {\n  return a * (2 + a);\n};", string(out))

	out, err = monkey.Format(program, monkey.Indent(0))
	require.NoError(t, err)
	require.Equal(t, "let f = fn(a) { return a * (2 + a); };", string(out))

	_, err = monkey.Format(program, monkey.Indent(-2))
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	program, err := monkey.Parse([]byte("add(1, x)"))
	require.NoError(t, err)

	out, err := monkey.Dump(program, "text")
	require.NoError(t, err)
	require.Equal(t, "add(1, x)\n", string(out))

	out, err = monkey.Dump(program, "json")
	require.NoError(t, err)
	var tree map[string]any
	require.NoError(t, json.Unmarshal(out, &tree))
	require.Equal(t, "Program", tree["node"])

	_, err = monkey.Dump(program, "toml")
	require.Error(t, err)

	require.Equal(t, []string{"text", "yaml", "json", "spew"}, monkey.DumpFormats())
}
