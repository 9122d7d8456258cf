package main

import (
	"fmt"
	"os"

	"github.com/minilang/minilang/internal/errs"
	"github.com/minilang/minilang/internal/pipeline"
)

// runFile reads, lexes, parses and interprets a MiniLang source file,
// printing any output and reporting the first error encountered.
func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	log := newLogger()
	defer log.Sync()

	pipe := pipeline.New(log)
	if runErr := pipe.Run(string(source)); runErr != nil {
		printError(runErr)
		os.Exit(1)
	}

	return nil
}

func printError(err *errs.Error) {
	noColor := cfg != nil && cfg.NoColor
	fmt.Fprint(os.Stderr, errs.Render(err, noColor))
}
