package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/lox"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream",
	Long: `Scans a lox source file and dumps the token stream, one token per
line with its source position.

Examples:
  lox tokens script.lox
  cat script.lox | lox tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, _, err := readInput(args)
	if err != nil {
		return err
	}

	toks, err := lox.Scan(data, parseOptions())
	if err != nil {
		return err
	}

	for _, tok := range toks {
		fmt.Fprintf(os.Stdout, "%4d:%-4d %-12s %q\n", tok.Line, tok.Col, tok.Kind, tok.Lit)
	}

	return nil
}
