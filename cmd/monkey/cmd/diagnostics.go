package cmd

import (
	"errors"
	"fmt"
	"io"

	merrors "github.com/netherous/monkey/errors"
)

// reportDiagnostics writes one line per parse error to w, prefixed with the
// source name. It returns errReported when err held diagnostics and err
// itself otherwise.
func reportDiagnostics(w io.Writer, name string, err error) error {
	var perrs merrors.ParseErrors
	if !errors.As(err, &perrs) {
		return err
	}

	style := errorStyle(w)
	for _, e := range perrs {
		line := fmt.Sprintf("%s:%s", name, e.Error())
		if !noColor {
			line = style.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	return errReported
}

func sourceName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "<stdin>"
	}
	return args[0]
}
