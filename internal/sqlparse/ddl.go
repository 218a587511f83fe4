package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

func (p *Parser) parseCreate() (navigator.Node, error) {
	createTok := p.advance()
	switch {
	case p.isKeyword("DATABASE"):
		return p.parseCreateDatabase(createTok)
	case p.isKeyword("TABLE"):
		return p.parseCreateTable(createTok)
	case p.isKeyword("INDEX"):
		return p.parseCreateIndex(createTok, nil)
	case p.isKeyword("UNIQUE"):
		uniqueTok := p.advance()
		return p.parseCreateIndex(createTok, &uniqueTok)
	case p.isKeyword("USER"):
		return p.parseCreateUser(createTok)
	default:
		return nil, p.errf("expected DATABASE, TABLE, INDEX, or USER after CREATE, got %q", p.cur().Text)
	}
}

func (p *Parser) parseCreateDatabase(createTok Token) (navigator.Node, error) {
	dbTok, err := p.expectKeyword("DATABASE")
	if err != nil {
		return nil, err
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(createTok), newTerminal(dbTok), name}
	withKw := p.acceptKeyword("WITH")
	if p.is(navigator.TokLParen) {
		attrs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		children = append(children, attrs)
	} else if withKw {
		var attrs []navigator.Node
		for {
			attr, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
			if !p.is(navigator.TokComma) {
				break
			}
			p.advance()
		}
		children = append(children, newRule(navigator.RuleAttributeList, attrs...))
	}
	return newRule(navigator.RuleCreateDatabaseStmt, children...), nil
}

func (p *Parser) parseCreateTable(createTok Token) (navigator.Node, error) {
	tableTok, err := p.expectKeyword("TABLE")
	if err != nil {
		return nil, err
	}
	name, err := p.parseQualifiedTableName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(navigator.TokLParen, "("); err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(createTok), newTerminal(tableTok), name}
	for {
		col, err := p.parseColumnDef()
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
	return newRule(navigator.RuleCreateTableStmt, children...), nil
}

func (p *Parser) parseCreateIndex(createTok Token, uniqueTok *Token) (navigator.Node, error) {
	indexTok, err := p.expectKeyword("INDEX")
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(createTok)}
	if uniqueTok != nil {
		children = append(children, newTerminal(*uniqueTok))
	}
	children = append(children, newTerminal(indexTok))
	if p.isKeyword("IF") {
		ifTok := p.advance()
		notTok, err := p.expectKeyword("NOT")
		if err != nil {
			return nil, err
		}
		existsTok, err := p.expectKeyword("EXISTS")
		if err != nil {
			return nil, err
		}
		children = append(children, newTerminal(ifTok), newTerminal(notTok), newTerminal(existsTok))
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)
	if _, err := p.expectKeyword("ON"); err != nil {
		return nil, err
	}
	table, err := p.parseQualifiedTableName()
	if err != nil {
		return nil, err
	}
	children = append(children, table)
	if _, err := p.expect(navigator.TokLParen, "("); err != nil {
		return nil, err
	}
	for {
		colName, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		colChildren := []navigator.Node{colName}
		if p.isKeyword("DESC") {
			colChildren = append(colChildren, newTerminal(p.advance()))
		} else if p.isKeyword("ASC") {
			colChildren = append(colChildren, newTerminal(p.advance()))
		}
		children = append(children, newRule(navigator.RuleIndexedColumn, colChildren...))
		if p.is(navigator.TokComma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(navigator.TokRParen, ")"); err != nil {
		return nil, err
	}
	return newRule(navigator.RuleCreateIndexStmt, children...), nil
}

func (p *Parser) parseCreateUser(createTok Token) (navigator.Node, error) {
	userTok, err := p.expectKeyword("USER")
	if err != nil {
		return nil, err
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children := []navigator.Node{newTerminal(createTok), newTerminal(userTok), name}
	if p.acceptKeyword("WITH") || p.is(navigator.TokLParen) {
		attrs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		children = append(children, attrs)
	}
	return newRule(navigator.RuleCreateUserStmt, children...), nil
}

func (p *Parser) parseDrop() (navigator.Node, error) {
	dropTok := p.advance()
	switch {
	case p.isKeyword("DATABASE"):
		p.advance()
		children := []navigator.Node{newTerminal(dropTok)}
		if p.isKeyword("IF") {
			ifTok := p.advance()
			existsTok, err := p.expectKeyword("EXISTS")
			if err != nil {
				return nil, err
			}
			children = append(children, newTerminal(ifTok), newTerminal(existsTok))
		}
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, name)
		return newRule(navigator.RuleDropDatabaseStmt, children...), nil

	case p.isKeyword("TABLE"):
		p.advance()
		children := []navigator.Node{newTerminal(dropTok)}
		if p.isKeyword("IF") {
			ifTok := p.advance()
			existsTok, err := p.expectKeyword("EXISTS")
			if err != nil {
				return nil, err
			}
			children = append(children, newTerminal(ifTok), newTerminal(existsTok))
		}
		name, err := p.parseQualifiedTableName()
		if err != nil {
			return nil, err
		}
		children = append(children, name)
		return newRule(navigator.RuleDropTableStmt, children...), nil

	case p.isKeyword("INDEX"):
		p.advance()
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("ON"); err != nil {
			return nil, err
		}
		table, err := p.parseQualifiedTableName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleDropIndexStmt, newTerminal(dropTok), name, table), nil

	case p.isKeyword("USER"):
		p.advance()
		children := []navigator.Node{newTerminal(dropTok)}
		if p.isKeyword("IF") {
			ifTok := p.advance()
			existsTok, err := p.expectKeyword("EXISTS")
			if err != nil {
				return nil, err
			}
			children = append(children, newTerminal(ifTok), newTerminal(existsTok))
		}
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, name)
		return newRule(navigator.RuleDropUserStmt, children...), nil

	default:
		return nil, p.errf("expected DATABASE, TABLE, INDEX, or USER after DROP, got %q", p.cur().Text)
	}
}

func (p *Parser) parseRename() (navigator.Node, error) {
	renameTok := p.advance()
	switch {
	case p.isKeyword("DATABASE"):
		p.advance()
		from, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("TO"); err != nil {
			return nil, err
		}
		to, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleRenameDatabaseStmt, newTerminal(renameTok), from, to), nil

	case p.isKeyword("TABLE"):
		p.advance()
		from, err := p.parseQualifiedTableName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("TO"); err != nil {
			return nil, err
		}
		to, err := p.parseQualifiedTableName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleRenameTableStmt, newTerminal(renameTok), from, to), nil

	default:
		return nil, p.errf("expected DATABASE or TABLE after RENAME, got %q", p.cur().Text)
	}
}

// parseAlter dispatches ALTER TABLE's multi-level clauses (ADD COLUMN, DROP
// COLUMN, RENAME COLUMN ... TO ..., ALTER COLUMN name type, SET attributes)
// and ALTER USER's sub-clauses (ADD/DROP ACCESS KEY, ADD/DROP TOKEN,
// ALTER ACCESS KEY/TOKEN ... SET/RENAME TO, SET attributes).
func (p *Parser) parseAlter() (navigator.Node, error) {
	alterTok := p.advance()
	switch {
	case p.isKeyword("TABLE"):
		p.advance()
		table, err := p.parseQualifiedTableName()
		if err != nil {
			return nil, err
		}
		if p.acceptKeyword("SET") {
			attrs, err := p.parseAttributeList()
			if err != nil {
				return nil, err
			}
			return newRule(navigator.RuleSetTableAttributesStmt, newTerminal(alterTok), table, attrs), nil
		}
		clause, err := p.parseAlterTableClause()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleAlterTableStmt, newTerminal(alterTok), table, clause), nil

	case p.isKeyword("USER"):
		p.advance()
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		clause, err := p.parseAlterUserClause()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleAlterUserStmt, newTerminal(alterTok), name, clause), nil

	default:
		return nil, p.errf("expected TABLE or USER after ALTER, got %q", p.cur().Text)
	}
}

func (p *Parser) parseAlterTableClause() (navigator.Node, error) {
	switch {
	case p.isKeyword("ADD"):
		addTok := p.advance()
		p.acceptKeyword("COLUMN")
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleAddColumnClause, newTerminal(addTok), col), nil

	case p.isKeyword("DROP"):
		dropTok := p.advance()
		p.acceptKeyword("COLUMN")
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleDropColumnClause, newTerminal(dropTok), name), nil

	case p.isKeyword("RENAME"):
		renameTok := p.advance()
		p.acceptKeyword("COLUMN")
		from, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("TO"); err != nil {
			return nil, err
		}
		to, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleRenameColumnClause, newTerminal(renameTok), from, to), nil

	case p.isKeyword("ALTER"):
		alterTok := p.advance()
		p.acceptKeyword("COLUMN")
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		typeTok, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleRedefineColumnClause, newTerminal(alterTok), name, typeTok), nil

	default:
		return nil, p.errf("expected ADD, DROP, RENAME, or ALTER in ALTER TABLE clause, got %q", p.cur().Text)
	}
}

func (p *Parser) parseAlterUserClause() (navigator.Node, error) {
	switch {
	case p.isKeyword("ADD"):
		addTok := p.advance()
		switch {
		case p.isKeyword("ACCESS"):
			p.advance()
			if _, err := p.expectKeyword("KEY"); err != nil {
				return nil, err
			}
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			key, err := p.expect(navigator.TokStringLiteral, "access key string")
			if err != nil {
				return nil, err
			}
			return newRule(navigator.RuleUserAccessKeyClause, newTerminal(addTok), name, newTerminal(key)), nil
		case p.isKeyword("TOKEN"):
			p.advance()
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			children := []navigator.Node{newTerminal(addTok), name}
			if p.isKeyword("WITH") {
				withTok := p.advance()
				attrs, err := p.parseAttributeList()
				if err != nil {
					return nil, err
				}
				children = append(children, newTerminal(withTok), attrs)
			}
			return newRule(navigator.RuleUserTokenClause, children...), nil
		default:
			return nil, p.errf("expected ACCESS KEY or TOKEN after ADD, got %q", p.cur().Text)
		}

	case p.isKeyword("DROP"):
		dropTok := p.advance()
		switch {
		case p.isKeyword("ACCESS"):
			p.advance()
			if _, err := p.expectKeyword("KEY"); err != nil {
				return nil, err
			}
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			return newRule(navigator.RuleUserAccessKeyClause, newTerminal(dropTok), name), nil
		case p.isKeyword("TOKEN"):
			p.advance()
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			return newRule(navigator.RuleUserTokenClause, newTerminal(dropTok), name), nil
		default:
			return nil, p.errf("expected ACCESS KEY or TOKEN after DROP, got %q", p.cur().Text)
		}

	case p.isKeyword("ALTER"):
		alterTok := p.advance()
		switch {
		case p.isKeyword("ACCESS"):
			p.advance()
			if _, err := p.expectKeyword("KEY"); err != nil {
				return nil, err
			}
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			return p.finishAlterUserSubClause(navigator.RuleUserAccessKeyClause, alterTok, name)
		case p.isKeyword("TOKEN"):
			p.advance()
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			return p.finishAlterUserSubClause(navigator.RuleUserTokenClause, alterTok, name)
		default:
			return nil, p.errf("expected ACCESS KEY or TOKEN after ALTER, got %q", p.cur().Text)
		}

	case p.isKeyword("SET"):
		setTok := p.advance()
		attrs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSetUserAttributesStmt, newTerminal(setTok), attrs), nil

	default:
		return nil, p.errf("expected ADD, DROP, ALTER, or SET in ALTER USER clause, got %q", p.cur().Text)
	}
}

// finishAlterUserSubClause parses the innermost SET/RENAME dispatch shared
// by "ALTER USER name ALTER ACCESS KEY key_name ..." and
// "ALTER USER name ALTER TOKEN token_name ...".
func (p *Parser) finishAlterUserSubClause(ruleID navigator.RuleID, alterTok Token, name navigator.Node) (navigator.Node, error) {
	switch {
	case p.isKeyword("SET"):
		setTok := p.advance()
		attrs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		return newRule(ruleID, newTerminal(alterTok), name, newTerminal(setTok), attrs), nil

	case p.isKeyword("RENAME"):
		renameTok := p.advance()
		if _, err := p.expectKeyword("TO"); err != nil {
			return nil, err
		}
		newName, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		return newRule(ruleID, newTerminal(alterTok), name, newTerminal(renameTok), newName), nil

	default:
		return nil, p.errf("expected SET or RENAME TO, got %q", p.cur().Text)
	}
}

// parseSet handles SET DATABASE ... and SET TABLE ... attribute statements
// (the ALTER USER SET form is handled inline by parseAlterUserClause).
func (p *Parser) parseSet() (navigator.Node, error) {
	setTok := p.advance()
	switch {
	case p.isKeyword("DATABASE"):
		p.advance()
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		attrs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSetDatabaseAttributesStmt, newTerminal(setTok), name, attrs), nil

	case p.isKeyword("TABLE"):
		p.advance()
		name, err := p.parseQualifiedTableName()
		if err != nil {
			return nil, err
		}
		attrs, err := p.parseAttributeList()
		if err != nil {
			return nil, err
		}
		return newRule(navigator.RuleSetTableAttributesStmt, newTerminal(setTok), name, attrs), nil

	default:
		return nil, p.errf("expected DATABASE or TABLE after SET, got %q", p.cur().Text)
	}
}

func (p *Parser) parseUseDatabase() (navigator.Node, error) {
	useTok := p.advance()
	if _, err := p.expectKeyword("DATABASE"); err != nil {
		return nil, err
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleUseDatabaseStmt, newTerminal(useTok), name), nil
}

func (p *Parser) parseAttachDatabase() (navigator.Node, error) {
	attachTok := p.advance()
	if _, err := p.expectKeyword("DATABASE"); err != nil {
		return nil, err
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleAttachDatabaseStmt, newTerminal(attachTok), name), nil
}

func (p *Parser) parseDetachDatabase() (navigator.Node, error) {
	detachTok := p.advance()
	if _, err := p.expectKeyword("DATABASE"); err != nil {
		return nil, err
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleDetachDatabaseStmt, newTerminal(detachTok), name), nil
}
