package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

// parseAttributeList parses a parenthesized WITH-style attribute list:
// (NAME = value, NAME = value, ...).
func (p *Parser) parseAttributeList() (navigator.Node, error) {
	if _, err := p.expect(navigator.TokLParen, "("); err != nil {
		return nil, err
	}
	var attrs []navigator.Node
	for !p.is(navigator.TokRParen) {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
		return nil, err
	}
	return newRule(navigator.RuleAttributeList, attrs...), nil
}

func (p *Parser) parseAttribute() (navigator.Node, error) {
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	eq, err := p.expect(navigator.TokEq, "=")
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleAttribute, name, newTerminal(eq), value), nil
}

// parseWhereClause consumes a leading WHERE keyword then an expression, or
// returns nil if no WHERE clause is present (the caller checks for this by
// testing the keyword first).
func (p *Parser) parseWhereClause() (navigator.Node, error) {
	whereTok, err := p.expectKeyword("WHERE")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleWhereClause, newTerminal(whereTok), cond), nil
}

func (p *Parser) parseLimitClause() (navigator.Node, error) {
	limitTok, err := p.expectKeyword("LIMIT")
	if err != nil {
		return nil, err
	}
	limit, err := p.parseSignedNumber()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(limitTok), limit}
	switch {
	case p.acceptKeyword("OFFSET"):
		offset, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		children = append(children, offset)

	case p.is(navigator.TokComma):
		// MySQL-style "LIMIT offset, count": the first number parsed above
		// is actually the offset, the comma disambiguates the shape from
		// the two forms above for the request factory.
		comma := p.advance()
		count, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		children = append(children, newTerminal(comma), count)
	}
	return newRule(navigator.RuleLimitClause, children...), nil
}

// parseColumnDef parses "name TYPE [constraint ...]".
func (p *Parser) parseColumnDef() (navigator.Node, error) {
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	typeTok, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{name, typeTok}
	for {
		c, ok, err := p.tryParseColumnConstraint()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		children = append(children, c)
	}
	return newRule(navigator.RuleColumnDef, children...), nil
}

// tryParseColumnConstraint recognizes NOT NULL, NULL, DEFAULT expr, UNIQUE,
// PRIMARY KEY, COLLATE name, REFERENCES table (column), CHECK (expr). It returns
// ok == false when the current token starts none of these, leaving the
// stream untouched.
func (p *Parser) tryParseColumnConstraint() (navigator.Node, bool, error) {
	switch {
	case p.isKeyword("NOT"):
		notTok := p.advance()
		nullTok, err := p.expectKeyword("NULL")
		if err != nil {
			return nil, false, err
		}
		return newRule(navigator.RuleColumnConstraint, newTerminal(notTok), newTerminal(nullTok)), true, nil

	case p.isKeyword("NULL"):
		tok := p.advance()
		return newRule(navigator.RuleColumnConstraint, newTerminal(tok)), true, nil

	case p.isKeyword("DEFAULT"):
		tok := p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		return newRule(navigator.RuleColumnConstraint, newTerminal(tok), val), true, nil

	case p.isKeyword("UNIQUE"):
		tok := p.advance()
		return newRule(navigator.RuleColumnConstraint, newTerminal(tok)), true, nil

	case p.isKeyword("CHECK"):
		tok := p.advance()
		if _, err := p.expect(navigator.TokLParen, "("); err != nil {
			return nil, false, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
			return nil, false, err
		}
		return newRule(navigator.RuleColumnConstraint, newTerminal(tok), cond), true, nil

	case p.isKeyword("PRIMARY"):
		primaryTok := p.advance()
		keyTok, err := p.expectKeyword("KEY")
		if err != nil {
			return nil, false, err
		}
		return newRule(navigator.RuleColumnConstraint, newTerminal(primaryTok), newTerminal(keyTok)), true, nil

	case p.isKeyword("COLLATE"):
		tok := p.advance()
		name, err := p.parseAnyName()
		if err != nil {
			return nil, false, err
		}
		return newRule(navigator.RuleColumnConstraint, newTerminal(tok), name), true, nil

	case p.isKeyword("REFERENCES"):
		tok := p.advance()
		table, err := p.parseAnyName()
		if err != nil {
			return nil, false, err
		}
		children := []navigator.Node{newTerminal(tok), table}
		if p.is(navigator.TokLParen) {
			p.advance()
			col, err := p.parseAnyName()
			if err != nil {
				return nil, false, err
			}
			if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
				return nil, false, err
			}
			children = append(children, col)
		}
		return newRule(navigator.RuleColumnConstraint, children...), true, nil

	default:
		return nil, false, nil
	}
}

func (p *Parser) parseQualifiedTableName() (navigator.Node, error) {
	first, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	if p.is(navigator.TokDot) {
		p.advance()
		second, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleQualifiedTableName, first, second), nil
	}
	return newRule(navigator.RuleQualifiedTableName, first), nil
}
