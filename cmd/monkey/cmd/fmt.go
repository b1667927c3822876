package cmd

import (
	"fmt"

	"github.com/netherous/monkey"
	"github.com/spf13/cobra"
)

var fmtIndent int

var fmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Print a program in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().IntVar(&fmtIndent, "indent", -1, "spaces per block level, 0 for single-line blocks (default from config)")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	indent := *cfg.Format.Indent
	if fmtIndent >= 0 {
		indent = fmtIndent
	}

	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	program, err := monkey.Parse(src)
	if err != nil {
		return reportDiagnostics(cmd.ErrOrStderr(), sourceName(args), err)
	}

	out, err := monkey.Format(program, monkey.Indent(indent))
	if err != nil {
		return err
	}
	if len(out) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	return nil
}
