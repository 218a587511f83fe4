package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

func (p *Parser) parseSelect() (navigator.Node, error) {
	core, err := p.parseSelectCore()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{core}
	if p.isKeyword("LIMIT") {
		limit, err := p.parseLimitClause()
		if err != nil {
			return nil, err
		}
		children = append(children, limit)
	}
	return newRule(navigator.RuleSelectStmt, children...), nil
}

func (p *Parser) parseSelectCore() (navigator.Node, error) {
	selectTok, err := p.expectKeyword("SELECT")
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(selectTok)}

	col, err := p.parseResultColumn()
	if err != nil {
		return nil, err
	}
	children = append(children, col)
	for p.is(navigator.TokComma) {
		p.advance()
		col, err := p.parseResultColumn()
		if err != nil {
			return nil, err
		}
		children = append(children, col)
	}

	if p.isKeyword("FROM") {
		fromTok := p.advance()
		children = append(children, newTerminal(fromTok))
		tbl, err := p.parseTableOrSubquery()
		if err != nil {
			return nil, err
		}
		children = append(children, tbl)
		for p.is(navigator.TokComma) {
			p.advance()
			tbl, err := p.parseTableOrSubquery()
			if err != nil {
				return nil, err
			}
			children = append(children, tbl)
		}
	}

	if p.isKeyword("WHERE") {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		children = append(children, where)
	}

	return newRule(navigator.RuleSelectCore, children...), nil
}

// parseResultColumn accepts "*", "table.*", an expression, or an expression
// followed by an optional AS alias.
func (p *Parser) parseResultColumn() (navigator.Node, error) {
	if p.is(navigator.TokStar) {
		tok := p.advance()
		return newRule(navigator.RuleResultColumn, newTerminal(tok)), nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{expr}
	if p.isKeyword("AS") {
		asTok := p.advance()
		alias, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, newTerminal(asTok), alias)
	} else if p.is(navigator.TokIdentifier) {
		alias, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, alias)
	}
	return newRule(navigator.RuleResultColumn, children...), nil
}

func (p *Parser) parseTableOrSubquery() (navigator.Node, error) {
	name, err := p.parseQualifiedTableName()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{name}
	if p.isKeyword("AS") {
		asTok := p.advance()
		alias, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, newTerminal(asTok), alias)
	}
	return newRule(navigator.RuleTableOrSubquery, children...), nil
}
