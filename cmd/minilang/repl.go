package main

import (
	"os"

	"github.com/minilang/minilang/internal/session"
)

// startREPL begins an interactive read-eval-print loop against a long-lived
// interpreter, reading from stdin and writing to stdout.
func startREPL() error {
	log := newLogger()
	defer log.Sync()

	sessionCfg := session.DefaultConfig()
	if cfg != nil {
		sessionCfg.Prompt = cfg.REPL.Prompt
		sessionCfg.ContinuationPrompt = cfg.REPL.ContinuationPrompt
		sessionCfg.HistoryFile = cfg.REPL.HistoryFile
		sessionCfg.NoColor = cfg.NoColor
	}

	repl := session.New(sessionCfg, log)
	return repl.Run(os.Stdout)
}
