// Package session implements MiniLang's interactive REPL: a readline-backed
// loop that batches multi-line input by brace depth, feeds it to one
// long-lived pipeline, and reports errors without exiting.
package session

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minilang/minilang/internal/errs"
	"github.com/minilang/minilang/internal/pipeline"
)

// Config configures prompt strings, history persistence and color.
type Config struct {
	Prompt             string
	ContinuationPrompt string
	HistoryFile        string
	NoColor            bool
}

// DefaultConfig returns the REPL's built-in defaults, overridden by
// configuration loaded via internal/cli/config.
func DefaultConfig() Config {
	return Config{
		Prompt:             "ml> ",
		ContinuationPrompt: "... ",
		HistoryFile:        "",
	}
}

// REPL drives an interactive session against one pipeline instance so
// variable bindings persist across inputs.
type REPL struct {
	cfg       Config
	pipe      *pipeline.Pipeline
	log       *zap.SugaredLogger
	sessionID string
}

// New creates a REPL. log may be zap.NewNop().Sugar() to disable logging.
func New(cfg Config, log *zap.SugaredLogger) *REPL {
	return &REPL{
		cfg:       cfg,
		pipe:      pipeline.New(log),
		log:       log,
		sessionID: uuid.NewString(),
	}
}

// Run starts the read-eval-print loop, reading from stdin and writing to
// out until the user exits, sends EOF, or ends the process.
func (r *REPL) Run(out io.Writer) error {
	return r.run(nil, out)
}

// run is Run's implementation, taking an explicit stdin so tests can
// drive the loop over a string reader instead of a real terminal.
func (r *REPL) run(stdin io.ReadCloser, out io.Writer) error {
	r.log.Infow("repl session started", "session_id", r.sessionID)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.cfg.Prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var buffer strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			depth = 0
			rl.SetPrompt(r.cfg.Prompt)
			continue
		}
		if err == io.EOF {
			r.log.Infow("repl session ended", "session_id", r.sessionID, "reason", "eof")
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if depth == 0 && (trimmed == "exit" || trimmed == "quit") {
			r.log.Infow("repl session ended", "session_id", r.sessionID, "reason", "exit_command")
			return nil
		}

		depth += braceDelta(line)
		buffer.WriteString(line)
		buffer.WriteString("\n")

		if depth > 0 {
			rl.SetPrompt(r.cfg.ContinuationPrompt)
			continue
		}

		source := buffer.String()
		buffer.Reset()
		depth = 0
		rl.SetPrompt(r.cfg.Prompt)

		if strings.TrimSpace(source) == "" {
			continue
		}

		if runErr := r.pipe.Run(source); runErr != nil {
			r.report(out, runErr)
		}
	}
}

// braceDelta counts unmatched '{' and '}' in a line of raw text. This is
// a naive character count, not lexically aware: braces inside string
// literals or comments are counted the same as structural braces.
func braceDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}

func (r *REPL) report(out io.Writer, err *errs.Error) {
	io.WriteString(out, errs.Render(err, r.cfg.NoColor))
	r.log.Debugw("pipeline error", "session_id", r.sessionID, "kind", err.Kind.String(), "message", err.Message)
}
