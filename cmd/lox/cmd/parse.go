package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/lox"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and dump the AST",
	Long: `Parses a lox source file and dumps the AST to stdout.

Syntax errors go to stderr; the dumped AST covers whatever parsed, so a
broken file still shows its recoverable statements.

Examples:
  lox parse script.lox
  lox parse --output json script.lox
  cat script.lox | lox parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "output", "o", "yaml", "output format (yaml|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	data, name, err := readInput(args)
	if err != nil {
		return err
	}

	prog, errs, err := lox.Parse(data, parseOptions())
	if err != nil {
		return err
	}
	printDiagnostics(name, errs)

	var out []byte
	switch parseFormat {
	case "yaml":
		out, err = yaml.Marshal(prog)
	case "json":
		out, err = json.MarshalIndent(prog, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown output format %q", parseFormat)
	}
	if err != nil {
		return err
	}

	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}

	if len(errs) != 0 {
		return diagnosticsError(errs)
	}

	return nil
}
