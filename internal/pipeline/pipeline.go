// Package pipeline wires the lexer, parser and interpreter into the single
// lex -> parse -> interpret sequence shared by the file runner and the
// REPL, logging each stage's size and duration.
package pipeline

import (
	"time"

	"go.uber.org/zap"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/errs"
	"github.com/minilang/minilang/internal/interpreter"
	"github.com/minilang/minilang/internal/lexer"
	"github.com/minilang/minilang/internal/parser"
	"github.com/minilang/minilang/internal/token"
)

// Pipeline runs source through the full lex/parse/interpret sequence
// against one interpreter instance, so state (variable bindings) persists
// across repeated Run calls — the shape the REPL needs.
type Pipeline struct {
	Interp *interpreter.Interpreter
	log    *zap.SugaredLogger
}

// New creates a Pipeline with a fresh interpreter and the given logger.
// Pass zap.NewNop().Sugar() to silence stage logging entirely.
func New(log *zap.SugaredLogger) *Pipeline {
	return &Pipeline{
		Interp: interpreter.New(),
		log:    log,
	}
}

// Lex runs only the lexical stage, returning its token stream and any
// errors. Used by the `tokens` debug subcommand.
func (p *Pipeline) Lex(source string) ([]token.Token, []*errs.Error) {
	start := time.Now()
	l := lexer.New(source)
	tokens, lexErrors := l.ScanTokens()
	p.log.Debugw("lexed source", "tokens", len(tokens), "errors", len(lexErrors), "elapsed", time.Since(start))
	return tokens, lexErrors
}

// Parse runs the lexer then the parser, returning the statement list.
// Used by the `ast` debug subcommand.
func (p *Pipeline) Parse(source string) ([]ast.Stmt, *errs.Error) {
	tokens, lexErrors := p.Lex(source)
	if len(lexErrors) > 0 {
		return nil, lexErrors[0]
	}

	start := time.Now()
	ps := parser.New(tokens)
	statements, err := ps.Parse()
	p.log.Debugw("parsed tokens", "statements", len(statements), "elapsed", time.Since(start))
	return statements, err
}

// Run lexes, parses and interprets source against the pipeline's
// long-lived interpreter, returning the first error from any stage.
func (p *Pipeline) Run(source string) *errs.Error {
	statements, err := p.Parse(source)
	if err != nil {
		return err
	}

	start := time.Now()
	runErr := p.Interp.Interpret(statements)
	p.log.Debugw("interpreted program", "statements", len(statements), "elapsed", time.Since(start))
	return runErr
}
