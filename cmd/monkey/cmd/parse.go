package cmd

import (
	"fmt"
	"strings"

	"github.com/netherous/monkey"
	"github.com/spf13/cobra"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a program and dump its syntax tree",
	Long: `Parse a program and dump its syntax tree.

Diagnostics are written to stderr and make the command fail; the statements
that did parse are still dumped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text",
		"output format: "+strings.Join(monkey.DumpFormats(), ", "))
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	program, parseErr := monkey.Parse(src)
	out, err := monkey.Dump(program, parseFormat)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))

	if parseErr != nil {
		return reportDiagnostics(cmd.ErrOrStderr(), sourceName(args), parseErr)
	}
	return nil
}
