package ast

import (
	"fmt"
	"strings"
)

// Print renders an expression as a fully parenthesized prefix form, e.g.
// "(+ 1 (* 2 3))". Precedence and associativity decided at parse time are
// visible directly in the nesting, which is what the parser tests check.
func Print(expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

// PrintStmts renders statements one per line in the same prefix notation.
// Used by the driver's parse-only mode.
func PrintStmts(stmts []Stmt) string {
	var sb strings.Builder
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		printStmt(&sb, stmt)
	}
	return sb.String()
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Binary:
		parenthesize(sb, e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		parenthesize(sb, e.Operator.Lexeme, e.Left, e.Right)
	case *Unary:
		parenthesize(sb, e.Operator.Lexeme, e.Right)
	case *Call:
		parenthesize(sb, "call", append([]Expr{e.Callee}, e.Arguments...)...)
	case *Grouping:
		parenthesize(sb, "group", e.Expression)
	case *Literal:
		if s, ok := e.Value.AsString(); ok {
			fmt.Fprintf(sb, "%q", s)
		} else {
			sb.WriteString(e.Value.String())
		}
	case *Variable:
		sb.WriteString(e.Name.Lexeme)
	case *Assign:
		parenthesize(sb, "= "+e.Name.Lexeme, e.Value)
	default:
		fmt.Fprintf(sb, "<unknown expr %T>", expr)
	}
}

func printStmt(sb *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		parenthesize(sb, ";", s.Expression)
	case *PrintStmt:
		parenthesize(sb, "print", s.Expression)
	case *VarStmt:
		if s.Initializer != nil {
			parenthesize(sb, "var "+s.Name.Lexeme, s.Initializer)
		} else {
			sb.WriteString("(var " + s.Name.Lexeme + ")")
		}
	case *BlockStmt:
		sb.WriteString("(block")
		for _, inner := range s.Statements {
			sb.WriteByte(' ')
			printStmt(sb, inner)
		}
		sb.WriteByte(')')
	case *IfStmt:
		sb.WriteString("(if ")
		printExpr(sb, s.Condition)
		sb.WriteByte(' ')
		printStmt(sb, s.Then)
		if s.Else != nil {
			sb.WriteByte(' ')
			printStmt(sb, s.Else)
		}
		sb.WriteByte(')')
	case *WhileStmt:
		sb.WriteString("(while ")
		printExpr(sb, s.Condition)
		sb.WriteByte(' ')
		printStmt(sb, s.Body)
		sb.WriteByte(')')
	default:
		fmt.Fprintf(sb, "<unknown stmt %T>", stmt)
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		printExpr(sb, expr)
	}
	sb.WriteByte(')')
}
