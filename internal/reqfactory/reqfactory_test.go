package reqfactory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/reqfactory"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlparse"
)

func mustBuild(t *testing.T, sql string) request.Request {
	t.Helper()
	tree, err := sqlparse.Parse(sql)
	require.NoError(t, err)
	stmt := navigator.FindStatement(tree, 0)
	require.NotNil(t, stmt)
	req, err := reqfactory.CreateRequest(stmt)
	require.NoError(t, err)
	return req
}

func mustFail(t *testing.T, sql string) error {
	t.Helper()
	tree, err := sqlparse.Parse(sql)
	require.NoError(t, err)
	stmt := navigator.FindStatement(tree, 0)
	require.NotNil(t, stmt)
	_, err = reqfactory.CreateRequest(stmt)
	require.Error(t, err)
	return err
}

func TestCreateDatabaseWithAttributes(t *testing.T) {
	req := mustBuild(t, "CREATE DATABASE db1 (CIPHER_ID = 'aes128', CIPHER_KEY_SEED = 'x');")
	cd, ok := req.(*request.CreateDatabase)
	require.True(t, ok)
	assert.Equal(t, "DB1", cd.Name)
	require.Len(t, cd.Attributes, 2)
	assert.Equal(t, "CIPHER_ID", cd.Attributes[0].Name)
}

func TestCreateDatabaseRejectsUnknownAttribute(t *testing.T) {
	mustFail(t, "CREATE DATABASE db1 (BOGUS = 1);")
}

func TestDropDatabaseIfExists(t *testing.T) {
	req := mustBuild(t, "DROP DATABASE IF EXISTS db1;")
	dd, ok := req.(*request.DropDatabase)
	require.True(t, ok)
	assert.True(t, dd.IfExists)
	assert.Equal(t, "DB1", dd.Name)
}

func TestCreateTableWithConstraints(t *testing.T) {
	req := mustBuild(t, "CREATE TABLE t1 (id UINT32 NOT NULL, name TEXT DEFAULT 'x', qty INT32 CHECK (qty > 0));")
	ct, ok := req.(*request.CreateTable)
	require.True(t, ok)
	assert.Equal(t, "T1", ct.Table)
	require.Len(t, ct.Columns, 3)
	assert.True(t, ct.Columns[0].Constraints.NotNull)
	assert.True(t, ct.Columns[1].Constraints.HasDefault)
	assert.True(t, ct.Columns[2].Constraints.HasCheck)
}

func TestCreateTableRejectsPrimaryKeyConstraint(t *testing.T) {
	mustFail(t, "CREATE TABLE t1 (id UINT32 PRIMARY KEY);")
}

func TestCreateTableRejectsUnknownDataType(t *testing.T) {
	mustFail(t, "CREATE TABLE t1 (id NOTATYPE);")
}

func TestCreateIndexUniqueIfNotExistsDescending(t *testing.T) {
	req := mustBuild(t, "CREATE UNIQUE INDEX IF NOT EXISTS idx1 ON db1.t1 (a DESC, b);")
	ci, ok := req.(*request.CreateIndex)
	require.True(t, ok)
	assert.True(t, ci.Unique)
	assert.True(t, ci.IfNotExists)
	assert.Equal(t, "DB1", ci.Database)
	assert.Equal(t, "T1", ci.Table)
	require.Len(t, ci.Columns, 2)
	assert.True(t, ci.Columns[0].Descending)
	assert.False(t, ci.Columns[1].Descending)
}

func TestAlterUserAddAccessKey(t *testing.T) {
	req := mustBuild(t, "ALTER USER u1 ADD ACCESS KEY k1 'ssh-rsa AAAA';")
	ak, ok := req.(*request.AddUserAccessKey)
	require.True(t, ok)
	assert.Equal(t, "U1", ak.UserName)
	assert.Equal(t, "K1", ak.KeyName)
	assert.Equal(t, "ssh-rsa AAAA", ak.KeyText)
}

func TestAlterUserAlterAccessKeyRename(t *testing.T) {
	req := mustBuild(t, "ALTER USER u1 ALTER ACCESS KEY k1 RENAME TO k2;")
	r, ok := req.(*request.RenameUserAccessKey)
	require.True(t, ok)
	assert.Equal(t, "K1", r.KeyName)
	assert.Equal(t, "K2", r.NewName)
}

func TestAlterUserAddTokenWithAttributes(t *testing.T) {
	req := mustBuild(t, "ALTER USER u1 ADD TOKEN tok1 WITH (DESCRIPTION = 'first token');")
	at, ok := req.(*request.AddUserToken)
	require.True(t, ok)
	assert.Equal(t, "TOK1", at.TokenName)
	require.Len(t, at.Attributes, 1)
}

func TestCheckUserToken(t *testing.T) {
	req := mustBuild(t, "CHECK USER u1 TOKEN tok1 x'DEADBEEF';")
	ct, ok := req.(*request.CheckUserToken)
	require.True(t, ok)
	assert.Equal(t, "U1", ct.UserName)
	assert.Equal(t, "TOK1", ct.TokenName)
	require.NotNil(t, ct.Value)
}

func TestGrantWildcardTarget(t *testing.T) {
	req := mustBuild(t, "GRANT SELECT ON *.* TO user1;")
	g, ok := req.(*request.GrantPermissions)
	require.True(t, ok)
	assert.True(t, g.Target.AllDatabases)
	assert.True(t, g.Target.AllTables)
	assert.Equal(t, request.PermSelect, g.Permissions)
}

func TestGrantAllOnBareTable(t *testing.T) {
	req := mustBuild(t, "GRANT ALL ON table1 TO user1;")
	g, ok := req.(*request.GrantPermissions)
	require.True(t, ok)
	assert.False(t, g.Target.AllDatabases)
	assert.Equal(t, "TABLE1", g.Target.Table)
	assert.NotZero(t, g.Permissions&request.PermSelect)
	assert.NotZero(t, g.Permissions&request.PermDrop)
}

func TestGrantReadOnlyExpandsToSelectAndShow(t *testing.T) {
	req := mustBuild(t, "GRANT READ_ONLY ON db1.t1 TO user1;")
	g, ok := req.(*request.GrantPermissions)
	require.True(t, ok)
	assert.Equal(t, request.PermSelect|request.PermShow, g.Permissions)
}

func TestGrantWithGrantOption(t *testing.T) {
	req := mustBuild(t, "GRANT SELECT ON db1.t1 TO user1 WITH GRANT OPTION;")
	g, ok := req.(*request.GrantPermissions)
	require.True(t, ok)
	assert.True(t, g.GrantOption)
}

func TestRevokeUnknownPermission(t *testing.T) {
	mustFail(t, "REVOKE BOGUS ON db1.t1 FROM user1;")
}

func TestSelectStarWithWhereAndLimit(t *testing.T) {
	req := mustBuild(t, "SELECT * FROM t1 WHERE a = 1 LIMIT 10 OFFSET 5;")
	sel, ok := req.(*request.Select)
	require.True(t, ok)
	require.Len(t, sel.Columns, 1)
	assert.True(t, sel.Columns[0].Star)
	require.Len(t, sel.From, 1)
	assert.Equal(t, "T1", sel.From[0].Table)
	assert.NotNil(t, sel.Where)
	assert.True(t, sel.HasLimit)
	assert.EqualValues(t, 10, sel.Limit)
	assert.True(t, sel.HasOffset)
	assert.EqualValues(t, 5, sel.Offset)
}

func TestSelectMySQLStyleLimit(t *testing.T) {
	req := mustBuild(t, "SELECT a FROM t1 LIMIT 5, 10;")
	sel, ok := req.(*request.Select)
	require.True(t, ok)
	assert.True(t, sel.HasOffset)
	assert.EqualValues(t, 5, sel.Offset)
	assert.True(t, sel.HasLimit)
	assert.EqualValues(t, 10, sel.Limit)
}

func TestSelectQualifiedStar(t *testing.T) {
	req := mustBuild(t, "SELECT t1.* FROM t1;")
	sel, ok := req.(*request.Select)
	require.True(t, ok)
	require.Len(t, sel.Columns, 1)
	assert.True(t, sel.Columns[0].Star)
	assert.Equal(t, "T1", sel.Columns[0].StarTable)
}

func TestInsertMultiRow(t *testing.T) {
	req := mustBuild(t, "INSERT INTO t1 (a, b) VALUES (1, 'x'), (2, 'y');")
	ins, ok := req.(*request.Insert)
	require.True(t, ok)
	assert.Equal(t, "T1", ins.Table)
	assert.Equal(t, []string{"A", "B"}, ins.Columns)
	require.Len(t, ins.Rows, 2)
	assert.Len(t, ins.Rows[0], 2)
	assert.Len(t, ins.Rows[1], 2)
}

func TestInsertColumnCountMismatch(t *testing.T) {
	mustFail(t, "INSERT INTO t1 (a, b) VALUES (1);")
}

func TestUpdateWithAssignmentsAndWhere(t *testing.T) {
	req := mustBuild(t, "UPDATE t1 SET a = 1, b = 2 WHERE c = 3;")
	upd, ok := req.(*request.Update)
	require.True(t, ok)
	assert.Equal(t, "T1", upd.Target.Table)
	require.Len(t, upd.Assignments, 2)
	assert.Equal(t, "A", upd.Assignments[0].Column)
	assert.NotNil(t, upd.Where)
}

func TestDeleteWithAlias(t *testing.T) {
	req := mustBuild(t, "DELETE FROM t1 AS x WHERE a = 1;")
	del, ok := req.(*request.Delete)
	require.True(t, ok)
	assert.Equal(t, "T1", del.Target.Table)
	assert.Equal(t, "X", del.Target.Alias)
}

func TestRollbackBareName(t *testing.T) {
	req := mustBuild(t, "ROLLBACK sp1;")
	rb, ok := req.(*request.RollbackTransaction)
	require.True(t, ok)
	assert.True(t, rb.HasName)
	assert.Equal(t, "SP1", rb.Name)
}

func TestRollbackTransactionNoName(t *testing.T) {
	req := mustBuild(t, "ROLLBACK TRANSACTION;")
	rb, ok := req.(*request.RollbackTransaction)
	require.True(t, ok)
	assert.False(t, rb.HasName)
}

func TestRollbackToSavepoint(t *testing.T) {
	req := mustBuild(t, "ROLLBACK TO SAVEPOINT sp1;")
	rb, ok := req.(*request.RollbackTransaction)
	require.True(t, ok)
	assert.True(t, rb.HasName)
	assert.Equal(t, "SP1", rb.Name)
}

func TestSavepointAndRelease(t *testing.T) {
	req := mustBuild(t, "SAVEPOINT sp1;")
	sp, ok := req.(*request.Savepoint)
	require.True(t, ok)
	assert.Equal(t, "SP1", sp.Name)

	req = mustBuild(t, "RELEASE SAVEPOINT sp1;")
	rel, ok := req.(*request.Release)
	require.True(t, ok)
	assert.Equal(t, "SP1", rel.Name)
}

func TestBeginAndCommit(t *testing.T) {
	req := mustBuild(t, "BEGIN TRANSACTION;")
	_, ok := req.(*request.BeginTransaction)
	require.True(t, ok)

	req = mustBuild(t, "COMMIT;")
	_, ok = req.(*request.CommitTransaction)
	require.True(t, ok)
}

func TestShowStatements(t *testing.T) {
	req := mustBuild(t, "SHOW DATABASES;")
	_, ok := req.(*request.ShowDatabases)
	require.True(t, ok)

	req = mustBuild(t, "SHOW TABLES;")
	_, ok = req.(*request.ShowTables)
	require.True(t, ok)

	req = mustBuild(t, "SHOW PERMISSIONS user1;")
	sp, ok := req.(*request.ShowPermissions)
	require.True(t, ok)
	assert.Equal(t, "USER1", sp.UserName)
}

func TestDescribeTable(t *testing.T) {
	req := mustBuild(t, "DESCRIBE TABLE db1.t1;")
	dt, ok := req.(*request.DescribeTable)
	require.True(t, ok)
	assert.Equal(t, "DB1", dt.Database)
	assert.Equal(t, "T1", dt.Table)
}
