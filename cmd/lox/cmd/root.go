package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/woozymasta/lox"
)

// defaultConfigFile is looked up in the working directory when --config is unset.
const defaultConfigFile = ".lox.toml"

// config holds tool settings loaded from a TOML file.
type config struct {
	Indent   string `toml:"indent"`    // Indentation for formatted output
	MaxDepth int    `toml:"max_depth"` // Expression nesting depth limit
	NoColor  bool   `toml:"no_color"`  // Disable colored diagnostics
}

var (
	cfgFile string
	noColor bool
	cfg     config
)

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "Parser and formatter for lox sources",
	Long: `lox parses, checks, and formats lox source files.

Commands:
  parse   - parse a file and dump the AST
  check   - parse a file and report syntax errors only
  fmt     - render a file as canonical source
  tokens  - dump the token stream`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+defaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

// loadConfig reads tool settings from the TOML config file, if present.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if cfg.NoColor {
		noColor = true
	}

	return nil
}

// parseOptions builds library parse options from the loaded config.
func parseOptions() *lox.ParseOptions {
	return &lox.ParseOptions{MaxDepth: cfg.MaxDepth}
}

// formatOptions builds library format options from the loaded config.
func formatOptions() *lox.FormatOptions {
	return &lox.FormatOptions{Indent: cfg.Indent}
}

// readInput reads source from the file argument, or stdin when no file is
// given. The returned name labels diagnostics.
func readInput(args []string) ([]byte, string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		return data, args[0], err
	}

	data, err := io.ReadAll(os.Stdin)
	return data, "<stdin>", err
}
