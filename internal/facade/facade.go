// Package facade implements the parser façade of spec.md section 4.8: the
// single entry point that owns the input SQL buffer, the lexer, the token
// stream, and the parse tree it produces, and exposes statement-level
// navigation over the result without handing out internal/sqlparse or
// internal/navigator types to callers that only want requests.
package facade

import (
	"github.com/sqlcore-engine/sqlfront/internal/logging"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/reqfactory"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/sqlparse"
)

// Parser owns one parse of one SQL buffer. It is not safe for concurrent
// use from multiple goroutines — spec.md section 5 requires each thread to
// own a distinct instance.
type Parser struct {
	sql     string
	tree    navigator.Node
	lastErr *sqlerr.Error
	logger  logging.Logger
}

// New returns a Parser that logs nothing unless WithLogger is used.
func New(opts ...Option) *Parser {
	p := &Parser{logger: logging.Noop}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger injects a logger; a nil logger is equivalent to omitting the
// option.
func WithLogger(logger logging.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Parse tokenizes and parses sql, replacing any previously parsed buffer.
// Grammar syntax errors and lexer errors surface as *sqlerr.Error with Kind
// SqlSyntaxError and are also recorded via InjectError so ErrorMessage
// reflects the failure.
func (p *Parser) Parse(sql string) error {
	p.sql = sql
	tree, err := sqlparse.Parse(sql)
	if err != nil {
		if serr, ok := err.(*sqlerr.Error); ok {
			p.InjectError(serr.Line, serr.Column, serr.Message)
		} else {
			p.InjectError(0, 0, err.Error())
		}
		return err
	}
	p.tree = tree
	p.lastErr = nil
	p.logger.Debugw("parsed sql buffer", "statements", navigator.StatementCount(tree))
	return nil
}

// StatementCount returns the number of statements in the last successfully
// parsed buffer.
func (p *Parser) StatementCount() int {
	if p.tree == nil {
		return 0
	}
	return navigator.StatementCount(p.tree)
}

// statementNode returns the index-th RuleSqlStmt wrapper, or nil if out of
// range or nothing has been parsed yet.
func (p *Parser) statementNode(index int) navigator.Node {
	if p.tree == nil {
		return nil
	}
	return navigator.FindStatement(p.tree, index)
}

// IsStatement reports whether the statement at index has the given rule id
// (that of the statement itself, not of the RuleSqlStmt wrapper around it).
func (p *Parser) IsStatement(index int, ruleID navigator.RuleID) bool {
	stmt := p.statementNode(index)
	if stmt == nil || len(stmt.Children()) == 0 {
		return false
	}
	return navigator.NonTerminalType(stmt.Children()[0]) == ruleID
}

// FindStatement returns the index-th RuleSqlStmt subtree, suitable for
// passing directly to BuildRequest or internal/reqfactory.CreateRequest.
func (p *Parser) FindStatement(index int) navigator.Node {
	return p.statementNode(index)
}

// BuildRequest runs internal/reqfactory.CreateRequest over the statement at
// index, logging the resulting request kind on success and the error on
// failure.
func (p *Parser) BuildRequest(index int) (request.Request, error) {
	stmt := p.statementNode(index)
	if stmt == nil {
		return nil, sqlerr.New(sqlerr.KindParseNavigationError, 0, 0,
			"statement index %d out of range", index)
	}
	req, err := reqfactory.CreateRequest(stmt)
	if err != nil {
		if serr, ok := err.(*sqlerr.Error); ok {
			p.InjectError(serr.Line, serr.Column, serr.Message)
			p.logger.Errorw("request build failed", "index", index, "kind", serr.Kind, "line", serr.Line, "column", serr.Column)
		}
		return nil, err
	}
	p.logger.Debugw("built request", "index", index, "kind", req.Kind().String())
	return req, nil
}

// Requests builds every statement in the buffer in order, stopping at the
// first failure (spec.md section 7's fatal-to-the-call propagation policy
// applies per statement, not to the whole buffer, so callers that want
// best-effort behaviour across statements should call BuildRequest in a
// loop themselves and decide what to do with a failure).
func (p *Parser) Requests() ([]request.Request, error) {
	n := p.StatementCount()
	reqs := make([]request.Request, 0, n)
	for i := 0; i < n; i++ {
		req, err := p.BuildRequest(i)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// InjectError records message as the last error at (line, column), in the
// form ErrorMessage returns it (spec.md section 4.8/6.4).
func (p *Parser) InjectError(line, column int, message string) {
	p.lastErr = sqlerr.New(sqlerr.KindSqlSyntaxError, line, column, message)
	p.logger.Debugw("injected error", "line", line, "column", column, "message", message)
}

// ErrorMessage returns the most recently injected error's formatted
// message, or "" if none has been recorded.
func (p *Parser) ErrorMessage() string {
	if p.lastErr == nil {
		return ""
	}
	return p.lastErr.Error()
}
