package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minilang/minilang/internal/ast"
	"github.com/minilang/minilang/internal/pipeline"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Dump the parsed AST for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		log := newLogger()
		defer log.Sync()

		pipe := pipeline.New(log)
		statements, parseErr := pipe.Parse(string(source))
		if parseErr != nil {
			printError(parseErr)
			os.Exit(1)
		}

		for _, stmt := range statements {
			printStmt(os.Stdout, stmt, 0)
		}

		return nil
	},
}

func printStmt(w *os.File, stmt ast.Stmt, depth int) {
	indent := strings.Repeat("  ", depth)

	switch s := stmt.(type) {
	case *ast.LetStmt:
		fmt.Fprintf(w, "%sLetStmt %s =\n", indent, s.Name.Lexeme)
		printExpr(w, s.Initializer, depth+1)

	case *ast.PrintStmt:
		fmt.Fprintf(w, "%sPrintStmt\n", indent)
		printExpr(w, s.Expr, depth+1)

	case *ast.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt\n", indent)
		printExpr(w, s.Expr, depth+1)

	case *ast.Block:
		fmt.Fprintf(w, "%sBlock\n", indent)
		for _, inner := range s.Statements {
			printStmt(w, inner, depth+1)
		}

	case *ast.IfStmt:
		fmt.Fprintf(w, "%sIfStmt\n", indent)
		printExpr(w, s.Condition, depth+1)
		fmt.Fprintf(w, "%sthen:\n", indent)
		printStmt(w, s.Then, depth+1)
		if s.Else != nil {
			fmt.Fprintf(w, "%selse:\n", indent)
			printStmt(w, s.Else, depth+1)
		}

	case *ast.WhileStmt:
		fmt.Fprintf(w, "%sWhileStmt\n", indent)
		printExpr(w, s.Condition, depth+1)
		printStmt(w, s.Body, depth+1)

	default:
		fmt.Fprintf(w, "%sUnknownStmt\n", indent)
	}
}

func printExpr(w *os.File, expr ast.Expr, depth int) {
	indent := strings.Repeat("  ", depth)

	switch e := expr.(type) {
	case *ast.Literal:
		fmt.Fprintf(w, "%sLiteral %v\n", indent, e.Value)

	case *ast.Variable:
		fmt.Fprintf(w, "%sVariable %s\n", indent, e.Name.Lexeme)

	case *ast.Assign:
		fmt.Fprintf(w, "%sAssign %s =\n", indent, e.Name.Lexeme)
		printExpr(w, e.Value, depth+1)

	case *ast.Grouping:
		fmt.Fprintf(w, "%sGrouping\n", indent)
		printExpr(w, e.Expr, depth+1)

	case *ast.Unary:
		fmt.Fprintf(w, "%sUnary %s\n", indent, e.Operator.Lexeme)
		printExpr(w, e.Right, depth+1)

	case *ast.Binary:
		fmt.Fprintf(w, "%sBinary %s\n", indent, e.Operator.Lexeme)
		printExpr(w, e.Left, depth+1)
		printExpr(w, e.Right, depth+1)

	default:
		fmt.Fprintf(w, "%sUnknownExpr\n", indent)
	}
}
