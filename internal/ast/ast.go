// Package ast defines the tagged-variant tree produced by the parser and
// walked by the interpreter: expressions and statements, each a closed set
// of struct variants behind an unexported marker-method interface, so no
// type outside this package can be an Expr or Stmt. The compiler does not
// check that a type switch over these variants is exhaustive; switch sites
// handle an unknown kind in a default branch.
package ast

import "github.com/minilang/minilang/internal/token"

// Location pinpoints a node's origin in source, for diagnostics.
type Location struct {
	Line   int
	Column int
}

// Expr is implemented by every expression variant.
type Expr interface {
	exprNode()
	Loc() Location
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	stmtNode()
	Loc() Location
}

// ---------- Expressions ----------

// Literal is a pre-decoded constant value: a number (int64 or float64), a
// string, a bool, or nil.
type Literal struct {
	Value    interface{}
	Location Location
}

func (e *Literal) exprNode()    {}
func (e *Literal) Loc() Location { return e.Location }

// Variable references a bound identifier. Name is the original token for
// diagnostic provenance.
type Variable struct {
	Name     token.Token
	Location Location
}

func (e *Variable) exprNode()    {}
func (e *Variable) Loc() Location { return e.Location }

// Assign assigns Value to the existing binding named by Name. Only
// constructible when the parser has confirmed the left-hand side is a
// Variable.
type Assign struct {
	Name     token.Token
	Value    Expr
	Location Location
}

func (e *Assign) exprNode()    {}
func (e *Assign) Loc() Location { return e.Location }

// Grouping is a parenthesized expression, kept distinct so it participates
// correctly in precedence climbing.
type Grouping struct {
	Expr     Expr
	Location Location
}

func (e *Grouping) exprNode()    {}
func (e *Grouping) Loc() Location { return e.Location }

// Unary applies a prefix operator (! or -) to Right.
type Unary struct {
	Operator token.Token
	Right    Expr
	Location Location
}

func (e *Unary) exprNode()    {}
func (e *Unary) Loc() Location { return e.Location }

// Binary applies an infix operator to Left and Right, evaluated strictly
// left-to-right.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
	Location Location
}

func (e *Binary) exprNode()    {}
func (e *Binary) Loc() Location { return e.Location }

// ---------- Statements ----------

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr     Expr
	Location Location
}

func (s *ExprStmt) stmtNode()   {}
func (s *ExprStmt) Loc() Location { return s.Location }

// PrintStmt evaluates Expr and writes its textual form followed by a
// newline.
type PrintStmt struct {
	Expr     Expr
	Location Location
}

func (s *PrintStmt) stmtNode()   {}
func (s *PrintStmt) Loc() Location { return s.Location }

// LetStmt binds the value of Initializer to Name in the innermost scope.
// Redeclaring an existing name in the same scope replaces the binding.
type LetStmt struct {
	Name        token.Token
	Initializer Expr
	Location    Location
}

func (s *LetStmt) stmtNode()   {}
func (s *LetStmt) Loc() Location { return s.Location }

// Block introduces a fresh lexical scope around Statements.
type Block struct {
	Statements []Stmt
	Location   Location
}

func (s *Block) stmtNode()   {}
func (s *Block) Loc() Location { return s.Location }

// IfStmt runs Then when Condition is truthy, otherwise Else (nil when no
// else branch was parsed).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
	Location  Location
}

func (s *IfStmt) stmtNode()   {}
func (s *IfStmt) Loc() Location { return s.Location }

// WhileStmt repeatedly runs Body while Condition evaluates truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
	Location  Location
}

func (s *WhileStmt) stmtNode()   {}
func (s *WhileStmt) Loc() Location { return s.Location }
