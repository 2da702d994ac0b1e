// Package parser assembles the Lox syntax tree from the scanner's token
// stream. It is a recursive descent parser with one production per precedence
// level and panic-mode recovery: a failed declaration is dropped and parsing
// resumes at the next statement boundary, so one typo does not hide every
// error after it.
package parser

import (
	"fmt"
	"log/slog"

	"github.com/aledsdavies/golox/runtime/ast"
	"github.com/aledsdavies/golox/runtime/diag"
	"github.com/aledsdavies/golox/runtime/token"
	"github.com/aledsdavies/golox/runtime/value"
)

// maxCallArguments is the cap on call-site argument lists. Exceeding it is
// reported but does not abort the parse.
const maxCallArguments = 8

// Parser consumes a token slice produced by the scanner. It trusts the
// scanner to have terminated the slice with EOF.
type Parser struct {
	tokens  []token.Token
	pos     int
	session *diag.Session
	logger  *slog.Logger
}

// New creates a parser over a scanned token stream.
func New(tokens []token.Token, session *diag.Session) *Parser {
	return &Parser{
		tokens:  tokens,
		session: session,
		logger:  diag.DebugLogger("parser"),
	}
}

// Parse parses the whole token stream into a statement list. Declarations
// that fail to parse are dropped after reporting; the session's HadError flag
// tells the driver whether the result is safe to evaluate.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.logger.Debug("parse complete", "statements", len(stmts))
	return stmts
}

// --- Statements ---

// declaration parses one declaration or statement and owns error recovery:
// on failure it synchronizes to the next statement boundary and returns nil.
func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	var err error
	if p.match(token.VAR) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// varDeclaration parses the rest of: "var" IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.EQUALS) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars "for" into a while loop at parse time:
//
//	for (init; cond; incr) body
//
// becomes { init; while (cond) { body; incr; } } with a missing condition
// read as true.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{
			body,
			&ast.ExpressionStmt{Expression: increment},
		}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: value.Bool(true)}
	}
	var loop ast.Stmt = &ast.WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		loop = &ast.BlockStmt{Statements: []ast.Stmt{initializer, loop}}
	}
	return loop, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: expr}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LPAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// block parses the statements after an already-consumed "{".
func (p *Parser) block() ([]ast.Stmt, error) {
	stmts := []ast.Stmt{}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(token.RBRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// expressionStatement parses: expression ";". The semicolon is waived when
// the expression ends the input, which keeps "1 + 2" valid at a REPL prompt.
func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.check(token.EOF) {
		return &ast.ExpressionStmt{Expression: expr}, nil
	}
	if _, err := p.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}

// --- Expressions, lowest precedence first ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses the right-associative "=" level. The left side is parsed
// as an ordinary expression first; only afterwards do we check that it names
// a variable. An invalid target is reported but parsing continues with the
// expression we already have, so later errors still surface.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUALS) {
		equals := p.previous()
		val, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: val}, nil
		}
		p.session.ReportToken(equals, "Invalid assignment target.")
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.OR) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binaryLevel(p.comparison, token.BANG_EQ, token.EQ_EQ)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binaryLevel(p.term, token.GT, token.GT_EQ, token.LT, token.LT_EQ)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binaryLevel(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binaryLevel(p.unary, token.SLASH, token.STAR)
}

// binaryLevel implements one left-associative binary precedence level by
// iterative climbing over the given operators.
func (p *Parser) binaryLevel(operand func() (ast.Expr, error), operators ...token.Type) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LPAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// finishCall parses the argument list after an already-consumed "(".
func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxCallArguments {
				// non-fatal: report, then keep consuming the list
				p.session.ReportToken(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxCallArguments))
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(token.RPAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: value.Bool(false)}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Value: value.Bool(true)}, nil
	case p.match(token.NIL):
		return &ast.Literal{Value: value.Nil()}, nil
	case p.match(token.NUMBER):
		return &ast.Literal{Value: value.Number(p.previous().Number)}, nil
	case p.match(token.STRING):
		return &ast.Literal{Value: value.String(p.previous().Text)}, nil
	case p.match(token.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}

// --- Token plumbing ---

// match consumes the current token when its type is one of the given types.
func (p *Parser) match(types ...token.Type) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}
	return false
}

// check peeks at the current token's type. NUMBER and STRING match on type
// alone; their payloads never participate.
func (p *Parser) check(typ token.Type) bool {
	if p.isAtEnd() {
		return typ == token.EOF
	}
	return p.peek().Type == typ
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.pos-1]
}

// consume advances past the expected token type or reports a syntax error at
// the current one.
func (p *Parser) consume(typ token.Type, message string) (token.Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

// errorAt reports through the session and returns the error that unwinds the
// current production.
func (p *Parser) errorAt(tok token.Token, message string) error {
	p.session.ReportToken(tok, message)
	return &Error{Token: tok, Message: message}
}

// synchronize discards tokens until a likely statement boundary: just past a
// semicolon, or in front of a keyword that begins a statement. This bounds
// the blast radius of a syntax error to one declaration.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
