package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadTestData(t *testing.T) {
	data, err := ReadTestData("let.mk")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	_, err = ReadTestData("nope.mk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "nope.mk")
}

func TestSources(t *testing.T) {
	names, err := Sources()
	require.NoError(t, err)
	require.Equal(t, []string{"closures.mk", "conditionals.mk", "errors.mk", "let.mk", "operators.mk"}, names)

	for _, name := range names {
		_, err := ReadTestData(name)
		require.NoError(t, err, name)
	}
	require.True(t, IsErrorCase("errors.mk"))
	require.False(t, IsErrorCase("let.mk"))
}
