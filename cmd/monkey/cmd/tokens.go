package cmd

import (
	"fmt"
	"strconv"

	"github.com/netherous/monkey"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var tokensTable bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file|-]",
	Short: "Print the token stream of a program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensTable, "table", false, "render the tokens as a table")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	toks := monkey.Tokenize(src)
	out := cmd.OutOrStdout()

	if !tokensTable {
		for _, tok := range toks {
			fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok)
		}
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Line", "Column", "Type", "Literal"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	for _, tok := range toks {
		table.Append([]string{
			strconv.Itoa(tok.Pos.Line),
			strconv.Itoa(tok.Pos.Column),
			string(tok.Type),
			strconv.Quote(tok.Literal),
		})
	}
	table.Render()
	return nil
}
