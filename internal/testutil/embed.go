package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded sample programs.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Sources returns the base names of the embedded *.mk programs in lexical order.
func Sources() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.mk")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, path.Base(m))
	}
	return names, nil
}

// IsErrorCase reports whether the named program is expected to fail parsing.
func IsErrorCase(name string) bool {
	return strings.HasPrefix(name, "error")
}
