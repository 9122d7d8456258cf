package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang/internal/cli/ui"
	"github.com/minilang/minilang/internal/pipeline"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the lexer's token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		log := newLogger()
		defer log.Sync()

		pipe := pipeline.New(log)
		tokens, lexErrors := pipe.Lex(string(source))
		if len(lexErrors) > 0 {
			printError(lexErrors[0])
			os.Exit(1)
		}

		table := ui.NewTable(os.Stdout, []string{"Kind", "Lexeme", "Literal", "Line", "Column"}, &ui.TableOptions{NoColor: cfg != nil && cfg.NoColor})
		for _, tok := range tokens {
			literal := ""
			if tok.Literal != nil {
				literal = fmt.Sprintf("%v", tok.Literal)
			}
			table.AddRow(tok.Kind.String(), tok.Lexeme, literal, fmt.Sprintf("%d", tok.Line), fmt.Sprintf("%d", tok.Column))
		}
		table.Render()

		return nil
	},
}
