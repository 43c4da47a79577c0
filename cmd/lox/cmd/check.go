package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/lox"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse source and report syntax errors",
	Long: `Parses a lox source file and reports every syntax error found in
one pass. Exits non-zero when the file has errors.

Examples:
  lox check script.lox
  cat script.lox | lox check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return err
	}

	prog, errs, err := lox.Parse(data, parseOptions())
	if err != nil {
		return err
	}

	if len(errs) != 0 {
		printDiagnostics(name, errs)
		return diagnosticsError(errs)
	}

	fmt.Fprintf(os.Stdout, "%s: ok (%d statements)\n", name, len(prog.Stmts))
	return nil
}
