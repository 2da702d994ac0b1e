// Package interp evaluates the syntax tree. The walk is a straight recursive
// descent over statements and expressions against a chain of lexical scopes;
// the first runtime error unwinds the whole run and is reported through the
// session.
package interp

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aledsdavies/golox/runtime/ast"
	"github.com/aledsdavies/golox/runtime/diag"
	"github.com/aledsdavies/golox/runtime/token"
	"github.com/aledsdavies/golox/runtime/value"
)

// Interpreter executes statements against a persistent global scope, so one
// instance can serve a whole REPL session and keep top-level bindings alive
// between lines.
type Interpreter struct {
	session *diag.Session
	globals *Environment
	env     *Environment
	stdout  io.Writer
	logger  *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStdout redirects print output, which otherwise goes to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// New creates an interpreter whose global scope holds the native functions.
func New(session *diag.Session, opts ...Option) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", value.NewCallable(clock()))

	i := &Interpreter{
		session: session,
		globals: globals,
		env:     globals,
		stdout:  os.Stdout,
		logger:  diag.DebugLogger("interp"),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret executes statements in order and stops at the first runtime
// error, reporting it through the session.
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			var rtErr *diag.RuntimeError
			if e, ok := err.(*diag.RuntimeError); ok {
				rtErr = e
			} else {
				rtErr = &diag.RuntimeError{Message: err.Error()}
			}
			i.session.ReportRuntime(rtErr)
			return
		}
	}
}

// Evaluate evaluates a single expression in the current scope. The REPL uses
// it to echo the value of bare expressions.
func (i *Interpreter) Evaluate(expr ast.Expr) (value.Value, error) {
	return i.evaluate(expr)
}

// --- Statements ---

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, v.String())
		return nil

	case *ast.VarStmt:
		v := value.Nil()
		if s.Initializer != nil {
			var err error
			v, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, NewEnvironment(i.env))

	case *ast.IfStmt:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("unhandled statement %T", stmt)
	}
}

// executeBlock runs statements in the given scope and restores the previous
// one on every exit path, error included.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- Expressions ---

func (i *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return i.evaluate(e.Expression)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Variable:
		return i.env.Get(e.Name)

	case *ast.Assign:
		v, err := i.evaluate(e.Value)
		if err != nil {
			return value.Nil(), err
		}
		if err := i.env.Assign(e.Name, v); err != nil {
			return value.Nil(), err
		}
		return v, nil

	case *ast.Call:
		return i.evalCall(e)

	default:
		return value.Nil(), fmt.Errorf("unhandled expression %T", expr)
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return value.Nil(), err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, err := numberOperand(e.Operator, right)
		if err != nil {
			return value.Nil(), err
		}
		return value.Number(-n), nil
	case token.BANG:
		return value.Bool(!right.Truthy()), nil
	default:
		return value.Nil(), fmt.Errorf("unhandled unary operator %s", e.Operator.Type)
	}
}

func (i *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return value.Nil(), err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return value.Nil(), err
	}

	switch e.Operator.Type {
	case token.PLUS:
		if ls, ok := left.AsString(); ok {
			if rs, ok := right.AsString(); ok {
				return value.String(ls + rs), nil
			}
		}
		if ln, ok := left.AsNumber(); ok {
			if rn, ok := right.AsNumber(); ok {
				return value.Number(ln + rn), nil
			}
		}
		return value.Nil(), &diag.RuntimeError{
			Token:   e.Operator,
			Message: "Operands must be two numbers or two strings.",
		}

	case token.MINUS, token.STAR, token.SLASH,
		token.GT, token.GT_EQ, token.LT, token.LT_EQ:
		ln, rn, err := numberOperands(e.Operator, left, right)
		if err != nil {
			return value.Nil(), err
		}
		switch e.Operator.Type {
		case token.MINUS:
			return value.Number(ln - rn), nil
		case token.STAR:
			return value.Number(ln * rn), nil
		case token.SLASH:
			// IEEE-754 semantics, division by zero included
			return value.Number(ln / rn), nil
		case token.GT:
			return value.Bool(ln > rn), nil
		case token.GT_EQ:
			return value.Bool(ln >= rn), nil
		case token.LT:
			return value.Bool(ln < rn), nil
		default:
			return value.Bool(ln <= rn), nil
		}

	case token.EQ_EQ:
		return value.Bool(left.Equal(right)), nil
	case token.BANG_EQ:
		return value.Bool(!left.Equal(right)), nil

	default:
		return value.Nil(), fmt.Errorf("unhandled binary operator %s", e.Operator.Type)
	}
}

// evalLogical short-circuits and yields the operand that decided the
// outcome, not a coerced boolean.
func (i *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return value.Nil(), err
	}

	if e.Operator.Type == token.OR {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return value.Nil(), err
	}

	args := make([]value.Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := i.evaluate(argExpr)
		if err != nil {
			return value.Nil(), err
		}
		args = append(args, arg)
	}

	fn, ok := callee.AsCallable()
	if !ok {
		return value.Nil(), &diag.RuntimeError{
			Token:   e.Paren,
			Message: "Can only call functions and classes.",
		}
	}
	if len(args) != fn.Arity() {
		return value.Nil(), &diag.RuntimeError{
			Token:   e.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
		}
	}

	i.logger.Debug("calling", "fn", fn.String(), "args", len(args))
	result, err := fn.Call(args)
	if err != nil {
		if _, ok := err.(*diag.RuntimeError); ok {
			return value.Nil(), err
		}
		return value.Nil(), &diag.RuntimeError{Token: e.Paren, Message: err.Error()}
	}
	return result, nil
}

// --- Operand checks ---

func numberOperand(operator token.Token, v value.Value) (float64, error) {
	if n, ok := v.AsNumber(); ok {
		return n, nil
	}
	return 0, &diag.RuntimeError{Token: operator, Message: "Operand must be a number."}
}

func numberOperands(operator token.Token, left, right value.Value) (float64, float64, error) {
	ln, lok := left.AsNumber()
	rn, rok := right.AsNumber()
	if !lok || !rok {
		return 0, 0, &diag.RuntimeError{Token: operator, Message: "Operands must be numbers."}
	}
	return ln, rn, nil
}
