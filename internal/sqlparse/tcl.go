package sqlparse

import "github.com/sqlcore-engine/sqlfront/internal/navigator"

func (p *Parser) parseBegin() (navigator.Node, error) {
	beginTok := p.advance()
	children := []navigator.Node{newTerminal(beginTok)}
	if p.isKeyword("TRANSACTION") {
		children = append(children, newTerminal(p.advance()))
	}
	return newRule(navigator.RuleBeginStmt, children...), nil
}

func (p *Parser) parseCommit() (navigator.Node, error) {
	commitTok := p.advance()
	children := []navigator.Node{newTerminal(commitTok)}
	if p.isKeyword("TRANSACTION") {
		children = append(children, newTerminal(p.advance()))
	}
	return newRule(navigator.RuleCommitStmt, children...), nil
}

// parseRollback reproduces the single shared name slot bug: whether the
// statement is "ROLLBACK TRANSACTION name" or "ROLLBACK TO SAVEPOINT name",
// only one trailing name is ever captured, always as the last child, and the
// request factory reads it from there whichever form was written.
func (p *Parser) parseRollback() (navigator.Node, error) {
	rollbackTok := p.advance()
	children := []navigator.Node{newTerminal(rollbackTok)}

	switch {
	case p.isKeyword("TRANSACTION"):
		children = append(children, newTerminal(p.advance()))
		if p.is(navigator.TokIdentifier) || p.is(navigator.TokQuotedIdentifier) {
			name, err := p.parseAnyName()
			if err != nil {
				return nil, err
			}
			children = append(children, name)
		}

	case p.isKeyword("TO"):
		children = append(children, newTerminal(p.advance()))
		if p.isKeyword("SAVEPOINT") {
			children = append(children, newTerminal(p.advance()))
		}
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, name)

	case p.is(navigator.TokIdentifier), p.is(navigator.TokQuotedIdentifier):
		name, err := p.parseAnyName()
		if err != nil {
			return nil, err
		}
		children = append(children, name)
	}

	return newRule(navigator.RuleRollbackStmt, children...), nil
}

func (p *Parser) parseSavepoint() (navigator.Node, error) {
	savepointTok := p.advance()
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	return newRule(navigator.RuleSavepointStmt, newTerminal(savepointTok), name), nil
}

func (p *Parser) parseRelease() (navigator.Node, error) {
	releaseTok := p.advance()
	children := []navigator.Node{newTerminal(releaseTok)}
	if p.isKeyword("SAVEPOINT") {
		children = append(children, newTerminal(p.advance()))
	}
	name, err := p.parseAnyName()
	if err != nil {
		return nil, err
	}
	children = append(children, name)
	return newRule(navigator.RuleReleaseStmt, children...), nil
}
