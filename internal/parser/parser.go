// Package parser turns a MiniLang token stream into an AST via classic
// recursive-descent, one function per precedence level.
package parser

import (
	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/errs"
	"github.com/minilang/minilang/internal/token"
)

// Parser transforms a token stream into a list of statements.
type Parser struct {
	tokens  []token.Token
	current int
	err     *errs.Error
}

// New creates a Parser over tokens. tokens must end with a single EOF.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the entire token stream into a program. It stops at the
// first error: MiniLang does not attempt panic-mode recovery, so at most
// one parse error is ever returned.
func (p *Parser) Parse() ([]ast.Stmt, *errs.Error) {
	var statements []ast.Stmt

	for !p.isAtEnd() {
		stmt := p.statement()
		if p.err != nil {
			return nil, p.err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// ---------- Statements ----------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.LET):
		return p.letStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.check(token.LEFT_BRACE):
		return p.block()
	default:
		return p.exprStatement()
	}
}

func (p *Parser) letStatement() ast.Stmt {
	loc := p.loc(p.previous())

	name, ok := p.consume(token.IDENT, "Expected variable name after 'let'.")
	if !ok {
		return nil
	}

	if _, ok := p.consume(token.EQUAL, "Expected '=' after variable name."); !ok {
		return nil
	}

	initializer := p.expression()
	if p.err != nil {
		return nil
	}

	if _, ok := p.consume(token.SEMICOLON, "Expected ';' after variable declaration."); !ok {
		return nil
	}

	return &ast.LetStmt{Name: name, Initializer: initializer, Location: loc}
}

func (p *Parser) printStatement() ast.Stmt {
	loc := p.loc(p.previous())

	value := p.expression()
	if p.err != nil {
		return nil
	}

	if _, ok := p.consume(token.SEMICOLON, "Expected ';' after value."); !ok {
		return nil
	}

	return &ast.PrintStmt{Expr: value, Location: loc}
}

func (p *Parser) ifStatement() ast.Stmt {
	loc := p.loc(p.previous())

	if _, ok := p.consume(token.LEFT_PAREN, "Expected '(' after 'if'."); !ok {
		return nil
	}
	condition := p.expression()
	if p.err != nil {
		return nil
	}
	if _, ok := p.consume(token.RIGHT_PAREN, "Expected ')' after if condition."); !ok {
		return nil
	}

	thenBranch := p.statement()
	if p.err != nil {
		return nil
	}

	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
		if p.err != nil {
			return nil
		}
	}

	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch, Location: loc}
}

func (p *Parser) whileStatement() ast.Stmt {
	loc := p.loc(p.previous())

	if _, ok := p.consume(token.LEFT_PAREN, "Expected '(' after 'while'."); !ok {
		return nil
	}
	condition := p.expression()
	if p.err != nil {
		return nil
	}
	if _, ok := p.consume(token.RIGHT_PAREN, "Expected ')' after while condition."); !ok {
		return nil
	}

	body := p.statement()
	if p.err != nil {
		return nil
	}

	return &ast.WhileStmt{Condition: condition, Body: body, Location: loc}
}

func (p *Parser) block() ast.Stmt {
	open, ok := p.consume(token.LEFT_BRACE, "Expected '{'.")
	if !ok {
		return nil
	}
	loc := p.loc(open)

	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.isAtEnd() {
		statements = append(statements, p.statement())
		if p.err != nil {
			return nil
		}
	}

	if _, ok := p.consume(token.RIGHT_BRACE, "Expected '}' after block."); !ok {
		return nil
	}

	return &ast.Block{Statements: statements, Location: loc}
}

func (p *Parser) exprStatement() ast.Stmt {
	loc := p.loc(p.peek())

	expr := p.expression()
	if p.err != nil {
		return nil
	}

	if _, ok := p.consume(token.SEMICOLON, "Expected ';' after expression."); !ok {
		return nil
	}

	return &ast.ExprStmt{Expr: expr, Location: loc}
}

// ---------- Expressions ----------

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: x = y = 1 assigns 1 to y, then that
// value to x. The left-hand side must already have parsed to a Variable.
func (p *Parser) assignment() ast.Expr {
	expr := p.equality()
	if p.err != nil {
		return nil
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()
		if p.err != nil {
			return nil
		}

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value, Location: p.loc(equals)}
		}

		p.setError(errs.NewParseError(equals.Line, equals.Column, "Invalid assignment target."))
		return nil
	}

	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	if p.err != nil {
		return nil
	}

	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		if p.err != nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, Location: p.loc(operator)}
	}

	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	if p.err != nil {
		return nil
	}

	for p.match(token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL) {
		operator := p.previous()
		right := p.term()
		if p.err != nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, Location: p.loc(operator)}
	}

	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	if p.err != nil {
		return nil
	}

	for p.match(token.PLUS, token.MINUS) {
		operator := p.previous()
		right := p.factor()
		if p.err != nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, Location: p.loc(operator)}
	}

	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	if p.err != nil {
		return nil
	}

	for p.match(token.STAR, token.SLASH) {
		operator := p.previous()
		right := p.unary()
		if p.err != nil {
			return nil
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, Location: p.loc(operator)}
	}

	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right := p.unary()
		if p.err != nil {
			return nil
		}
		return &ast.Unary{Operator: operator, Right: right, Location: p.loc(operator)}
	}

	return p.primary()
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()

	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false, Location: p.loc(tok)}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true, Location: p.loc(tok)}
	case p.match(token.NULL):
		return &ast.Literal{Value: nil, Location: p.loc(tok)}
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Value: p.previous().Literal, Location: p.loc(tok)}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous(), Location: p.loc(tok)}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		if p.err != nil {
			return nil
		}
		if _, ok := p.consume(token.RIGHT_PAREN, "Expected ')' after expression."); !ok {
			return nil
		}
		return &ast.Grouping{Expr: expr, Location: p.loc(tok)}
	default:
		p.setError(errs.NewParseError(tok.Line, tok.Column, "Expected expression."))
		return nil
	}
}

// ---------- Token helpers ----------

func (p *Parser) loc(tok token.Token) ast.Location {
	return ast.Location{Line: tok.Line, Column: tok.Column}
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) (token.Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}

	tok := p.peek()
	p.setError(errs.NewParseError(tok.Line, tok.Column, "%s", message))
	return token.Token{}, false
}

func (p *Parser) setError(err *errs.Error) {
	if p.err == nil {
		p.err = err
	}
}
