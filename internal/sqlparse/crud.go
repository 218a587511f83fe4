package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

func (p *Parser) parseInsert() (navigator.Node, error) {
	insertTok := p.advance()
	intoTok, err := p.expectKeyword("INTO")
	if err != nil {
		return nil, err
	}
	table, err := p.parseQualifiedTableName()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(insertTok), newTerminal(intoTok), table}

	if p.is(navigator.TokLParen) {
		p.advance()
		for {
			col, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			children = append(children, col)
			if p.is(navigator.TokComma) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
			return nil, err
		}
	}

	valuesTok, err := p.expectKeyword("VALUES")
	if err != nil {
		return nil, err
	}
	values, err := p.parseValuesClause(valuesTok)
	if err != nil {
		return nil, err
	}
	children = append(children, values)
	return newRule(navigator.RuleInsertStmt, children...), nil
}

func (p *Parser) parseValuesClause(valuesTok Token) (navigator.Node, error) {
	children := []navigator.Node{newTerminal(valuesTok)}
	for {
		row, err := p.parseValueRow()
		if err != nil {
			return nil, err
		}
		children = append(children, row)
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	return newRule(navigator.RuleValuesClause, children...), nil
}

// parseValueRow parses one "(expr, ...)" group of an INSERT's VALUES list,
// keeping each row as its own node so row boundaries survive in the tree.
func (p *Parser) parseValueRow() (navigator.Node, error) {
	if _, err := p.expect(navigator.TokLParen, "("); err != nil {
		return nil, err
	}
	var values []navigator.Node
	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
		return nil, err
	}
	return newRule(navigator.RuleValueRow, values...), nil
}

func (p *Parser) parseUpdate() (navigator.Node, error) {
	updateTok := p.advance()
	table, err := p.parseTableOrSubquery()
	if err != nil {
		return nil, err
	}
	setTok, err := p.expectKeyword("SET")
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(updateTok), table}

	var assigns []navigator.Node
	for {
		col, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		eq, err := p.expect(navigator.TokEq, "=")
		if err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, newRule(navigator.RuleAttribute, col, newTerminal(eq), val))
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	setClause := newRule(navigator.RuleSetClause, append([]navigator.Node{newTerminal(setTok)}, assigns...)...)
	children = append(children, setClause)

	if p.isKeyword("WHERE") {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		children = append(children, where)
	}
	return newRule(navigator.RuleUpdateStmt, children...), nil
}

func (p *Parser) parseDelete() (navigator.Node, error) {
	deleteTok := p.advance()
	fromTok, err := p.expectKeyword("FROM")
	if err != nil {
		return nil, err
	}
	table, err := p.parseTableOrSubquery()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(deleteTok), newTerminal(fromTok), table}
	if p.isKeyword("WHERE") {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		children = append(children, where)
	}
	return newRule(navigator.RuleDeleteStmt, children...), nil
}
