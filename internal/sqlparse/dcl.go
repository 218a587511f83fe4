package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

func (p *Parser) parsePermissionList() ([]navigator.Node, error) {
	var perms []navigator.Node
	for {
		if p.isKeyword("ALL") {
			perms = append(perms, newRule(navigator.RuleAnyName, newTerminal(p.advance())))
		} else {
			perm, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			perms = append(perms, perm)
		}
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	return perms, nil
}

// parsePermissionTarget accepts the GRANT/REVOKE object forms
// "database.table", "database.*", "*", and "*.*".
func (p *Parser) parsePermissionTarget() (navigator.Node, error) {
	if p.is(navigator.TokStar) {
		star := p.advance()
		if p.is(navigator.TokDot) {
			p.advance()
			second, err := p.expect(navigator.TokStar, "*")
			if err != nil {
				return nil, err
			}
			return newRule(navigator.RuleQualifiedTableName, newTerminal(star), newTerminal(second)), nil
		}
		return newRule(navigator.RuleQualifiedTableName, newTerminal(star)), nil
	}
	first, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	if p.is(navigator.TokDot) {
		p.advance()
		if p.is(navigator.TokStar) {
			star := p.advance()
			return newRule(navigator.RuleQualifiedTableName, first, newTerminal(star)), nil
		}
		second, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleQualifiedTableName, first, second), nil
	}
	return newRule(navigator.RuleQualifiedTableName, first), nil
}

func (p *Parser) parseGrant() (navigator.Node, error) {
	grantTok := p.advance()
	perms, err := p.parsePermissionList()
	if err != nil {
		return nil, err
	}
	onTok, err := p.expectKeyword("ON")
	if err != nil {
		return nil, err
	}
	object, err := p.parsePermissionTarget()
	if err != nil {
		return nil, err
	}
	toTok, err := p.expectKeyword("TO")
	if err != nil {
		return nil, err
	}
	user, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children := append([]navigator.Node{newTerminal(grantTok)}, perms...)
	children = append(children, newTerminal(onTok), object, newTerminal(toTok), user)
	if p.isKeyword("WITH") {
		withTok := p.advance()
		grantOptTok, err := p.expectKeyword("GRANT")
		if err != nil {
			return nil, err
		}
		optionTok, err := p.expectKeyword("OPTION")
		if err != nil {
			return nil, err
		}
		children = append(children, newTerminal(withTok), newTerminal(grantOptTok), newTerminal(optionTok))
	}
	return newRule(navigator.RuleGrantStmt, children...), nil
}

func (p *Parser) parseRevoke() (navigator.Node, error) {
	revokeTok := p.advance()
	perms, err := p.parsePermissionList()
	if err != nil {
		return nil, err
	}
	onTok, err := p.expectKeyword("ON")
	if err != nil {
		return nil, err
	}
	object, err := p.parsePermissionTarget()
	if err != nil {
		return nil, err
	}
	fromTok, err := p.expectKeyword("FROM")
	if err != nil {
		return nil, err
	}
	user, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children := append([]navigator.Node{newTerminal(revokeTok)}, perms...)
	children = append(children, newTerminal(onTok), object, newTerminal(fromTok), user)
	return newRule(navigator.RuleRevokeStmt, children...), nil
}

func (p *Parser) parseShow() (navigator.Node, error) {
	showTok := p.advance()
	switch {
	case p.isKeyword("PERMISSIONS"):
		permTok := p.advance()
		children := []navigator.Node{newTerminal(showTok), newTerminal(permTok)}
		if p.is(navigator.TokIdentifier) || p.is(navigator.TokQuotedIdentifier) {
			user, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			children = append(children, user)
		}
		return newRule(navigator.RuleShowPermissionsStmt, children...), nil

	case p.isKeyword("DATABASES"):
		dbTok := p.advance()
		return newRule(navigator.RuleShowDatabasesStmt, newTerminal(showTok), newTerminal(dbTok)), nil

	case p.isKeyword("TABLES"):
		tblTok := p.advance()
		return newRule(navigator.RuleShowTablesStmt, newTerminal(showTok), newTerminal(tblTok)), nil

	default:
		return nil, p.errf("expected PERMISSIONS, DATABASES, or TABLES after SHOW, got %q", p.cur().Text)
	}
}

func (p *Parser) parseDescribeTable() (navigator.Node, error) {
	describeTok := p.advance()
	p.acceptKeyword("TABLE")
	table, err := p.parseQualifiedTableName()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleDescribeTableStmt, newTerminal(describeTok), table), nil
}

func (p *Parser) parseCheckUserToken() (navigator.Node, error) {
	checkTok := p.advance()
	if _, err := p.expectKeyword("USER"); err != nil {
		return nil, err
	}
	userTok, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("TOKEN"); err != nil {
		return nil, err
	}
	tokenTok, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleCheckUserTokenStmt, newTerminal(checkTok), userTok, tokenTok, value), nil
}
