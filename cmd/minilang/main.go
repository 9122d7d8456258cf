package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang/internal/cli/config"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

var (
	verbose   bool
	logFormat string
	noColor   bool
	cfg       *config.Config
)

const usage = "usage: minilang [file]\n\nWith no arguments, starts an interactive session. With one argument,\nruns that file and exits.\n"

func main() {
	rootCmd := &cobra.Command{
		Use:   "minilang [file]",
		Short: "MiniLang interpreter and REPL",
		Long:  "MiniLang is a small dynamically-typed expression and statement language with a tree-walking interpreter, file runner, and interactive REPL.",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = loaded
			if logFormat != "" {
				cfg.Log.Format = logFormat
			}
			if noColor {
				cfg.NoColor = true
			}
			return nil
		},
		// With zero arguments this starts the REPL; with one it runs that
		// file and exits. Any other argument count is a usage error.
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return startREPL()
			case 1:
				return runFile(args[0])
			default:
				fmt.Fprint(os.Stderr, usage)
				os.Exit(2)
				return nil
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log output format: console or json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
