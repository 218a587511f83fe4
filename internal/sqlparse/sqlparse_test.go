package sqlparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/navigator"
)

func mustParseOne(t *testing.T, sql string) navigator.Node {
	t.Helper()
	tree, err := Parse(sql)
	require.NoError(t, err)
	require.Equal(t, 1, navigator.StatementCount(tree))
	stmt := navigator.FindStatement(tree, 0)
	require.NotNil(t, stmt)
	require.Equal(t, 1, len(stmt.Children()))
	return stmt.Children()[0]
}

// hasKeywordChild reports whether some direct child of tree is a keyword
// terminal with the given normalized text.
func hasKeywordChild(tree navigator.Node, text string) bool {
	for _, c := range tree.Children() {
		if c.IsTerminal() && c.TokenType() == navigator.TokKeyword && c.Text() == text {
			return true
		}
	}
	return false
}

func TestParseSimpleSelect(t *testing.T) {
	stmt := mustParseOne(t, "SELECT a, b FROM t WHERE a = 1 LIMIT 10;")
	assert.Equal(t, navigator.RuleSelectStmt, stmt.RuleID())
}

func TestParseSelectStar(t *testing.T) {
	stmt := mustParseOne(t, "SELECT * FROM t;")
	assert.Equal(t, navigator.RuleSelectStmt, stmt.RuleID())
}

func TestParseInsert(t *testing.T) {
	stmt := mustParseOne(t, "INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y');")
	assert.Equal(t, navigator.RuleInsertStmt, stmt.RuleID())
}

func TestParseUpdate(t *testing.T) {
	stmt := mustParseOne(t, "UPDATE t SET a = 1, b = 2 WHERE a = 3;")
	assert.Equal(t, navigator.RuleUpdateStmt, stmt.RuleID())
}

func TestParseDelete(t *testing.T) {
	stmt := mustParseOne(t, "DELETE FROM t WHERE a = 1;")
	assert.Equal(t, navigator.RuleDeleteStmt, stmt.RuleID())
}

func TestParseCreateTable(t *testing.T) {
	stmt := mustParseOne(t, "CREATE TABLE t (id INT32 PRIMARY KEY, name TEXT NOT NULL DEFAULT 'x');")
	assert.Equal(t, navigator.RuleCreateTableStmt, stmt.RuleID())
}

func TestParseDropTableIfExists(t *testing.T) {
	stmt := mustParseOne(t, "DROP TABLE IF EXISTS t;")
	require.Equal(t, navigator.RuleDropTableStmt, stmt.RuleID())
	assert.True(t, hasKeywordChild(stmt, "EXISTS"))
}

func TestParseDropTableWithoutIfExists(t *testing.T) {
	stmt := mustParseOne(t, "DROP TABLE t;")
	require.Equal(t, navigator.RuleDropTableStmt, stmt.RuleID())
	assert.False(t, hasKeywordChild(stmt, "EXISTS"))
}

func TestParseAlterTableAddColumn(t *testing.T) {
	stmt := mustParseOne(t, "ALTER TABLE t ADD COLUMN c TEXT;")
	assert.Equal(t, navigator.RuleAlterTableStmt, stmt.RuleID())
}

func TestParseRollbackTransactionForm(t *testing.T) {
	stmt := mustParseOne(t, "ROLLBACK TRANSACTION tx1;")
	require.Equal(t, navigator.RuleRollbackStmt, stmt.RuleID())
	// The shared-slot quirk: the trailing name is the last child
	// (ROLLBACK, TRANSACTION, name), the same slot a savepoint name uses.
	assert.Equal(t, 3, len(stmt.Children()))
}

func TestParseRollbackToSavepointForm(t *testing.T) {
	stmt := mustParseOne(t, "ROLLBACK TO SAVEPOINT sp1;")
	require.Equal(t, navigator.RuleRollbackStmt, stmt.RuleID())
	assert.Equal(t, 4, len(stmt.Children()))
}

func TestParseBeginCommit(t *testing.T) {
	stmt := mustParseOne(t, "BEGIN;")
	assert.Equal(t, navigator.RuleBeginStmt, stmt.RuleID())
	stmt = mustParseOne(t, "COMMIT;")
	assert.Equal(t, navigator.RuleCommitStmt, stmt.RuleID())
}

func TestParseGrant(t *testing.T) {
	stmt := mustParseOne(t, "GRANT SELECT, INSERT ON t TO bob WITH GRANT OPTION;")
	assert.Equal(t, navigator.RuleGrantStmt, stmt.RuleID())
}

func TestParseShowTables(t *testing.T) {
	stmt := mustParseOne(t, "SHOW TABLES;")
	assert.Equal(t, navigator.RuleShowTablesStmt, stmt.RuleID())
}

func TestParseMultipleStatements(t *testing.T) {
	tree, err := Parse("SELECT 1; SELECT 2;")
	require.NoError(t, err)
	assert.Equal(t, 2, navigator.StatementCount(tree))
}

func TestParseExpressionPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse with * binding tighter than +: the top-level
	// simple expr's right child is itself a simple expr for "2 * 3".
	stmt := mustParseOne(t, "SELECT 1 + 2 * 3;")
	require.Equal(t, navigator.RuleSelectStmt, stmt.RuleID())
	col := stmt.Children()[0].Children()[1]
	top := col.Children()[0].Children()[0]
	require.Equal(t, navigator.RuleSimpleExpr, top.RuleID())
	assert.Equal(t, navigator.RuleSimpleExpr, top.Children()[2].RuleID())
}

func TestParseCastExpression(t *testing.T) {
	stmt := mustParseOne(t, "SELECT CAST(a AS INT64) FROM t;")
	assert.Equal(t, navigator.RuleSelectStmt, stmt.RuleID())
}

func TestParseBetweenAndIn(t *testing.T) {
	stmt := mustParseOne(t, "SELECT * FROM t WHERE a BETWEEN 1 AND 10 AND b IN (1, 2, 3);")
	assert.Equal(t, navigator.RuleSelectStmt, stmt.RuleID())
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse("SELECT FROM;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at (1, 8)")
}
