package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a minimal in-memory Node used to exercise the navigator
// helpers without depending on internal/sqlparse.
type fakeNode struct {
	terminal  bool
	rule      RuleID
	token     TokenType
	text      string
	line, col int
	children  []Node
}

func (f *fakeNode) IsTerminal() bool    { return f.terminal }
func (f *fakeNode) RuleID() RuleID      { return f.rule }
func (f *fakeNode) TokenType() TokenType { return f.token }
func (f *fakeNode) Text() string        { return f.text }
func (f *fakeNode) Line() int           { return f.line }
func (f *fakeNode) Column() int         { return f.col }
func (f *fakeNode) Children() []Node    { return f.children }

func term(tok TokenType, text string, line, col int) *fakeNode {
	return &fakeNode{terminal: true, token: tok, text: text, line: line, col: col}
}

func rule(id RuleID, children ...Node) *fakeNode {
	return &fakeNode{rule: id, children: children}
}

func TestStatementCountAndFind(t *testing.T) {
	stmt1 := rule(RuleSqlStmt, term(TokKeyword, "SELECT", 1, 1))
	stmt2 := rule(RuleSqlStmt, term(TokKeyword, "SELECT", 2, 1))
	tree := rule(RuleSqlStmtList, stmt1, stmt2)

	assert.Equal(t, 2, StatementCount(tree))
	assert.Same(t, Node(stmt1), FindStatement(tree, 0))
	assert.Same(t, Node(stmt2), FindStatement(tree, 1))
	assert.Nil(t, FindStatement(tree, 5))
}

func TestFindNonTerminalAndTerminal(t *testing.T) {
	inner := rule(RuleWhereClause, term(TokIdentifier, "x", 3, 5))
	tree := rule(RuleSelectStmt, inner)

	found := FindNonTerminal(tree, RuleWhereClause)
	require.NotNil(t, found)
	assert.Equal(t, RuleWhereClause, NonTerminalType(found))

	tok := FindTerminal(tree, TokIdentifier)
	require.NotNil(t, tok)
	assert.Equal(t, "x", tok.Text())
	assert.Equal(t, InvalidRule, NonTerminalType(tok))
	assert.Equal(t, TokIdentifier, TerminalType(tok))
}

func TestHasAndFindTerminalChild(t *testing.T) {
	tree := rule(RuleCreateTableStmt,
		term(TokKeyword, "IF", 1, 1),
		term(TokKeyword, "NOT", 1, 4),
		term(TokKeyword, "EXISTS", 1, 8),
	)
	assert.True(t, HasTerminalChild(tree, TokKeyword, 0))
	child := FindTerminalChild(tree, TokKeyword, 1)
	require.NotNil(t, child)
	assert.Equal(t, "NOT", child.Text())
}

func TestCaptureTerminalPosition(t *testing.T) {
	leaf := term(TokIdentifier, "foo", 7, 3)
	tree := rule(RuleColumnReference, leaf)
	line, col := CaptureTerminalPosition(tree)
	assert.Equal(t, 7, line)
	assert.Equal(t, 3, col)
}

func TestExtractObjectNameUppercasesAndUnquotes(t *testing.T) {
	tree := rule(RuleCreateTableStmt, term(TokQuotedIdentifier, `"My Table"`, 1, 1))
	name, err := ExtractObjectName(tree, 0)
	require.NoError(t, err)
	assert.Equal(t, "MY TABLE", name)

	tree2 := rule(RuleCreateTableStmt, term(TokIdentifier, "accounts", 1, 1))
	name2, err := ExtractObjectName(tree2, 0)
	require.NoError(t, err)
	assert.Equal(t, "ACCOUNTS", name2)
}

func TestUnquoteString(t *testing.T) {
	assert.Equal(t, "it's fine", UnquoteString(`'it''s fine'`))
	assert.Equal(t, "plain", UnquoteString("'plain'"))
}

func TestAnyNameText(t *testing.T) {
	id := term(TokIdentifier, "col1", 1, 1)
	name, err := AnyNameText(rule(RuleAnyName, id))
	require.NoError(t, err)
	assert.Equal(t, "COL1", name)

	str := term(TokStringLiteral, "'a name'", 1, 1)
	name2, err := AnyNameText(str)
	require.NoError(t, err)
	assert.Equal(t, "a name", name2)
}
