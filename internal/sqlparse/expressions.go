package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

// Operator precedence climbs from parseExpr (lowest, OR) down to
// parsePrimary (highest), mirroring spec.md section 4.5's precedence table:
// unary +/-/~, ||, * / %, + -, << >>, &, |, comparisons
// (= == != <> < <= > >= IS LIKE BETWEEN IN), NOT, AND, OR.

// parseExpr is the grammar entry point used by every clause that embeds an
// expression (WHERE, result columns, VALUES, SET).
func (p *Parser) parseExpr() (navigator.Node, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleExpr, e), nil
}

func (p *Parser) parseOr() (navigator.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("OR") {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (navigator.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("AND") {
		op := p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseNot() (navigator.Node, error) {
	if p.isKeyword("NOT") {
		op := p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSimpleExpr, newTerminal(op), operand), nil
	}
	return p.parseComparison()
}

// parseComparison handles =, ==, !=, <>, <, <=, >, >=, IS [NOT],
// [NOT] LIKE, [NOT] BETWEEN ... AND ..., and [NOT] IN (...). All of these
// bind at the same precedence level and do not chain (a = b = c is rejected
// by convention; only the first one found is consumed).
func (p *Parser) parseComparison() (navigator.Node, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}

	switch {
	case p.is(navigator.TokEq), p.is(navigator.TokEq2), p.is(navigator.TokNeq),
		p.is(navigator.TokNeq2), p.is(navigator.TokLt), p.is(navigator.TokLe),
		p.is(navigator.TokGt), p.is(navigator.TokGe):
		op := p.advance()
		right, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right), nil

	case p.isKeyword("IS"):
		isTok := p.advance()
		var notTok *Token
		if p.isKeyword("NOT") {
			t := p.advance()
			notTok = &t
		}
		right, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		children := []navigator.Node{left, newTerminal(isTok)}
		if notTok != nil {
			children = append(children, newTerminal(*notTok))
		}
		children = append(children, right)
		return newRule(navigator.RuleSimpleExpr, children...), nil

	case p.isKeyword("NOT"):
		save := p.pos
		notTok := p.advance()
		switch {
		case p.isKeyword("LIKE"):
			return p.finishLike(left, &notTok)
		case p.isKeyword("BETWEEN"):
			return p.finishBetween(left, &notTok)
		case p.isKeyword("IN"):
			return p.finishIn(left, &notTok)
		default:
			p.pos = save
			return left, nil
		}

	case p.isKeyword("LIKE"):
		return p.finishLike(left, nil)
	case p.isKeyword("BETWEEN"):
		return p.finishBetween(left, nil)
	case p.isKeyword("IN"):
		return p.finishIn(left, nil)
	}

	return left, nil
}

func (p *Parser) finishLike(left navigator.Node, notTok *Token) (navigator.Node, error) {
	likeTok, err := p.expectKeyword("LIKE")
	if err != nil {
		return nil, err
	}
	pattern, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{left}
	if notTok != nil {
		children = append(children, newTerminal(*notTok))
	}
	children = append(children, newTerminal(likeTok), pattern)
	return newRule(navigator.RuleSimpleExpr, children...), nil
}

func (p *Parser) finishBetween(left navigator.Node, notTok *Token) (navigator.Node, error) {
	betweenTok, err := p.expectKeyword("BETWEEN")
	if err != nil {
		return nil, err
	}
	low, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("AND"); err != nil {
		return nil, err
	}
	high, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{left}
	if notTok != nil {
		children = append(children, newTerminal(*notTok))
	}
	children = append(children, newTerminal(betweenTok), low, high)
	return newRule(navigator.RuleSimpleExpr, children...), nil
}

func (p *Parser) finishIn(left navigator.Node, notTok *Token) (navigator.Node, error) {
	inTok, err := p.expectKeyword("IN")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(navigator.TokLParen, "("); err != nil {
		return nil, err
	}
	list, err := p.parseInList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
		return nil, err
	}
	children := []navigator.Node{left}
	if notTok != nil {
		children = append(children, newTerminal(*notTok))
	}
	children = append(children, newTerminal(inTok), list)
	return newRule(navigator.RuleSimpleExpr, children...), nil
}

func (p *Parser) parseInList() (navigator.Node, error) {
	var items []navigator.Node
	for {
		item, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	return newRule(navigator.RuleInList, items...), nil
}

func (p *Parser) parseBitOr() (navigator.Node, error) {
	left, err := p.parseBitAnd()
	if err != nil {
		return nil, err
	}
	for p.is(navigator.TokPipe) {
		op := p.advance()
		right, err := p.parseBitAnd()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseBitAnd() (navigator.Node, error) {
	left, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for p.is(navigator.TokAmp) {
		op := p.advance()
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseShift() (navigator.Node, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}
	for p.is(navigator.TokShl) || p.is(navigator.TokShr) {
		op := p.advance()
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseAddSub() (navigator.Node, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}
	for p.is(navigator.TokPlus) || p.is(navigator.TokMinus) {
		op := p.advance()
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseMulDiv() (navigator.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.is(navigator.TokStar) || p.is(navigator.TokSlash) || p.is(navigator.TokPercent) {
		op := p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

func (p *Parser) parseConcat() (navigator.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.is(navigator.TokConcat) {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = newRule(navigator.RuleSimpleExpr, left, newTerminal(op), right)
	}
	return left, nil
}

// parseUnary parses a + or - directly followed by a numeric literal as a
// signed number, so the sign is applied before the literal's type is
// narrowed; any other unary operand becomes a unary simple expr.
func (p *Parser) parseUnary() (navigator.Node, error) {
	if (p.is(navigator.TokPlus) || p.is(navigator.TokMinus)) && p.tokens[p.pos+1].Type == navigator.TokNumericLiteral {
		return p.parseSignedNumber()
	}
	if p.is(navigator.TokPlus) || p.is(navigator.TokMinus) || p.is(navigator.TokTilde) {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSimpleExpr, newTerminal(op), operand), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (navigator.Node, error) {
	switch {
	case p.is(navigator.TokLParen):
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSimpleExpr, inner), nil

	case p.isKeyword("CAST"):
		return p.parseCast()

	case p.is(navigator.TokNumericLiteral), p.is(navigator.TokStringLiteral),
		p.is(navigator.TokBlobLiteral), p.isKeyword("NULL"), p.isKeyword("TRUE"),
		p.isKeyword("FALSE"), p.isKeyword("CURRENT_TIME"), p.isKeyword("CURRENT_DATE"),
		p.isKeyword("CURRENT_TIMESTAMP"):
		tok := p.advance()
		return newRule(navigator.RuleLiteralValue, newTerminal(tok)), nil

	case p.is(navigator.TokStar):
		tok := p.advance()
		return newRule(navigator.RuleColumnReference, newTerminal(tok)), nil

	case p.is(navigator.TokIdentifier), p.is(navigator.TokQuotedIdentifier):
		return p.parseColumnReference()

	default:
		return nil, p.errf("expected expression, got %q", p.cur().Text)
	}
}

func (p *Parser) parseCast() (navigator.Node, error) {
	castTok, err := p.expectKeyword("CAST")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(navigator.TokLParen, "("); err != nil {
		return nil, err
	}
	operand, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	asTok, err := p.expectKeyword("AS")
	if err != nil {
		return nil, err
	}
	typeTok := p.advance()
	if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
		return nil, err
	}
	return newRule(navigator.RuleSimpleExpr, newTerminal(castTok), operand, newTerminal(asTok), newTerminal(typeTok)), nil
}

// parseColumnReference accepts either a bare name or a dotted
// table.column form, returning a RuleColumnReference wrapping one or two
// identifier terminals.
func (p *Parser) parseColumnReference() (navigator.Node, error) {
	first, err := p.expectIdentLike()
	if err != nil {
		return nil, err
	}
	if p.is(navigator.TokDot) {
		p.advance()
		if p.is(navigator.TokStar) {
			star := p.advance()
			return newRule(navigator.RuleColumnReference, newTerminal(first), newTerminal(star)), nil
		}
		second, err := p.expectIdentLike()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleColumnReference, newTerminal(first), newTerminal(second)), nil
	}
	return newRule(navigator.RuleColumnReference, newTerminal(first)), nil
}

func (p *Parser) expectIdentLike() (Token, error) {
	if p.is(navigator.TokIdentifier) || p.is(navigator.TokQuotedIdentifier) {
		return p.advance(), nil
	}
	return Token{}, p.errf("expected identifier, got %q", p.cur().Text)
}

// parseAnyName accepts an identifier, a quoted identifier, or a keyword
// used loosely as a name (spec.md's any_name production).
func (p *Parser) parseAnyName() (navigator.Node, error) {
	if p.is(navigator.TokIdentifier) || p.is(navigator.TokQuotedIdentifier) || p.is(navigator.TokKeyword) {
		return newRule(navigator.RuleAnyName, newTerminal(p.advance())), nil
	}
	return nil, p.errf("expected name, got %q", p.cur().Text)
}

func (p *Parser) parseSignedNumber() (navigator.Node, error) {
	var sign *Token
	if p.is(navigator.TokPlus) || p.is(navigator.TokMinus) {
		t := p.advance()
		sign = &t
	}
	if !p.is(navigator.TokNumericLiteral) {
		return nil, p.errf("expected number, got %q", p.cur().Text)
	}
	num := p.advance()
	if sign != nil {
		return newRule(navigator.RuleSignedNumber, newTerminal(*sign), newTerminal(num)), nil
	}
	return newRule(navigator.RuleSignedNumber, newTerminal(num)), nil
}
