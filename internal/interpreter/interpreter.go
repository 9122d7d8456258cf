// Package interpreter walks a MiniLang AST against a lexical environment
// chain, producing side effects through print and returning the first
// runtime error encountered.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/errs"
	"github.com/minilang/minilang/internal/token"
)

// Interpreter executes statement lists against a long-lived global
// environment. A single Interpreter is reused across an entire REPL
// session so that bindings persist between inputs.
type Interpreter struct {
	globals *Environment
	env     *Environment
	out     io.Writer
}

// New creates an Interpreter that writes print output to stdout.
func New() *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{globals: globals, env: globals, out: os.Stdout}
}

// SetOutput redirects print output, primarily for tests.
func (in *Interpreter) SetOutput(w io.Writer) {
	in.out = w
}

// Interpret executes a statement list in order, stopping at the first
// runtime error.
func (in *Interpreter) Interpret(statements []ast.Stmt) *errs.Error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) *errs.Error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, Stringify(value))
		return nil

	case *ast.LetStmt:
		value, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *ast.IfStmt:
		condition, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(condition) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			condition, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(condition) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		loc := stmt.Loc()
		return errs.NewRuntimeError(loc.Line, loc.Column, nil, "Unknown statement type.")
	}
}

// executeBlock runs statements against a fresh child scope, always
// restoring the enclosing scope on the way out, whether execution
// completed normally or a runtime error cut it short.
func (in *Interpreter) executeBlock(statements []ast.Stmt, blockEnv *Environment) *errs.Error {
	previous := in.env
	in.env = blockEnv
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, *errs.Error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evaluate(e.Expr)

	case *ast.Variable:
		value, ok := in.env.Get(e.Name.Lexeme)
		if !ok {
			return nil, errs.NewRuntimeError(e.Location.Line, e.Location.Column, in.env.Names(),
				"Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if !in.env.Assign(e.Name.Lexeme, value) {
			return nil, errs.NewRuntimeError(e.Location.Line, e.Location.Column, in.env.Names(),
				"Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	default:
		loc := expr.Loc()
		return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Unknown expression type.")
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (interface{}, *errs.Error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.BANG:
		return !isTruthy(right), nil

	case token.MINUS:
		switch v := right.(type) {
		case int64:
			return -v, nil
		case float64:
			return -v, nil
		default:
			return nil, errs.NewRuntimeError(e.Location.Line, e.Location.Column, nil, "Operand must be a number. Got %s.", typeName(right))
		}

	default:
		return nil, errs.NewRuntimeError(e.Location.Line, e.Location.Column, nil, "Unknown unary operator '%s'.", e.Operator.Lexeme)
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (interface{}, *errs.Error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	loc := e.Location

	switch e.Operator.Kind {
	case token.PLUS:
		return evalAdd(left, right, loc)

	case token.MINUS:
		return evalArith(left, right, loc,
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })

	case token.STAR:
		return evalArith(left, right, loc,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })

	case token.SLASH:
		lf, lok := toFloat(left)
		rf, rok := toFloat(right)
		if !lok || !rok {
			return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Operands must be numbers. Got %s and %s.", typeName(left), typeName(right))
		}
		if rf == 0 {
			return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Division by zero.")
		}
		return lf / rf, nil

	case token.LESS:
		return evalCompare(left, right, loc, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return evalCompare(left, right, loc, func(a, b float64) bool { return a <= b })
	case token.GREATER:
		return evalCompare(left, right, loc, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return evalCompare(left, right, loc, func(a, b float64) bool { return a >= b })

	case token.EQUAL_EQUAL:
		return isEqual(left, right), nil
	case token.BANG_EQUAL:
		return !isEqual(left, right), nil

	default:
		return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Unknown binary operator '%s'.", e.Operator.Lexeme)
	}
}

// evalAdd implements the one operator with two legal operand shapes:
// number+number arithmetic and string+string concatenation. Every other
// combination, including number+string, is a runtime error.
func evalAdd(left, right interface{}, loc ast.Location) (interface{}, *errs.Error) {
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return ls + rs, nil
		}
		return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Operands must be two numbers or two strings. Got %s and %s.", typeName(left), typeName(right))
	}

	if lf, lok := toFloat(left); lok {
		if rf, rok := toFloat(right); rok {
			if li, liok := left.(int64); liok {
				if ri, riok := right.(int64); riok {
					return li + ri, nil
				}
			}
			return lf + rf, nil
		}
	}

	return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Operands must be two numbers or two strings. Got %s and %s.", typeName(left), typeName(right))
}

// evalArith handles '-' and '*': both operands must be numbers. An
// int64+int64 pair stays integral (computed exactly, not via float64);
// any float operand promotes the result to float64.
func evalArith(left, right interface{}, loc ast.Location, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (interface{}, *errs.Error) {
	li, liok := left.(int64)
	ri, riok := right.(int64)
	if liok && riok {
		return intOp(li, ri), nil
	}

	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Operands must be numbers. Got %s and %s.", typeName(left), typeName(right))
	}
	return floatOp(lf, rf), nil
}

func evalCompare(left, right interface{}, loc ast.Location, op func(a, b float64) bool) (interface{}, *errs.Error) {
	lf, lok := toFloat(left)
	rf, rok := toFloat(right)
	if !lok || !rok {
		return nil, errs.NewRuntimeError(loc.Line, loc.Column, nil, "Operands must be numbers. Got %s and %s.", typeName(left), typeName(right))
	}
	return op(lf, rf), nil
}
