package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woozymasta/lox"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Render source in canonical form",
	Long: `Parses a lox source file and renders it as canonical source.

Files with syntax errors are left untouched.

Examples:
  lox fmt script.lox
  lox fmt -w script.lox
  cat script.lox | lox fmt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file")
}

func runFmt(cmd *cobra.Command, args []string) error {
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

	out, err := lox.Format(prog, formatOptions())
	if err != nil {
		return err
	}

	if fmtWrite {
		if len(args) == 0 {
			return fmt.Errorf("-w requires a file argument")
		}
		return os.WriteFile(args[0], out, 0o600)
	}

	_, err = os.Stdout.Write(out)
	return err
}
