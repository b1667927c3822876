package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	require.Equal(t, "", ParseErrors(nil).Error())

	one := ParseErrors{{Message: "expected next token to be IDENT, got = instead", Line: 1, Column: 5}}
	require.Equal(t, "monkey: parsing error at line 1, column 5: expected next token to be IDENT, got = instead", one.Error())

	two := append(one, ParseError{Message: "illegal token @", Line: 2, Column: 1})
	require.Equal(t, one.Error()+" (and 1 more error)", two.Error())

	three := append(two, ParseError{Message: "x", Line: 3, Column: 1})
	require.Equal(t, one.Error()+" (and 2 more errors)", three.Error())

	require.Equal(t, []string{
		"1:5: expected next token to be IDENT, got = instead",
		"2:1: illegal token @",
		"3:1: x",
	}, three.Messages())
}
