package facade_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sqlcore-engine/sqlfront/internal/facade"
	"github.com/sqlcore-engine/sqlfront/internal/logging"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
)

func TestParseAndStatementCount(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("CREATE TABLE t1 (id UINT32); SELECT * FROM t1;"))
	assert.Equal(t, 2, p.StatementCount())
}

func TestParseSyntaxErrorRecordsMessage(t *testing.T) {
	p := facade.New()
	err := p.Parse("CREATE TABLE;")
	require.Error(t, err)
	assert.Contains(t, p.ErrorMessage(), "at (")
}

func TestIsStatementAndFindStatement(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("SELECT 1; DELETE FROM t1;"))
	assert.True(t, p.IsStatement(0, navigator.RuleSelectStmt))
	assert.False(t, p.IsStatement(0, navigator.RuleDeleteStmt))
	assert.True(t, p.IsStatement(1, navigator.RuleDeleteStmt))
	assert.False(t, p.IsStatement(5, navigator.RuleSelectStmt))
	require.NotNil(t, p.FindStatement(0))
	assert.Nil(t, p.FindStatement(5))
}

func TestBuildRequestAndRequests(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("SHOW DATABASES; SHOW TABLES;"))
	reqs, err := p.Requests()
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, request.KindShowDatabases, reqs[0].Kind())
	assert.Equal(t, request.KindShowTables, reqs[1].Kind())
}

func TestBuildRequestFailureInjectsError(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("CREATE TABLE t1 (id UINT32 PRIMARY KEY);"))
	_, err := p.BuildRequest(0)
	require.Error(t, err)
	assert.Contains(t, p.ErrorMessage(), "PRIMARY KEY")
}

func TestInjectErrorAndErrorMessage(t *testing.T) {
	p := facade.New()
	assert.Equal(t, "", p.ErrorMessage())
	p.InjectError(3, 7, "unexpected token")
	assert.Equal(t, "at (3, 7): unexpected token", p.ErrorMessage())
}

func TestLoggerReceivesDebugEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := facade.New(facade.WithLogger(logging.NewZap(zap.New(core))))
	require.NoError(t, p.Parse("SHOW DATABASES;"))
	_, err := p.BuildRequest(0)
	require.NoError(t, err)
	assert.NotEmpty(t, logs.All())
}

func TestDumpRendersEveryStatement(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("SELECT a FROM t1 WHERE a = 1; INSERT INTO t1 (a) VALUES (1);"))
	var buf bytes.Buffer
	require.NoError(t, p.Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, "[0] Select")
	assert.Contains(t, out, "[1] Insert")
}

func TestDumpJSONIsValidAndOrdered(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("SHOW TABLES; DESCRIBE TABLE t1;"))
	var buf bytes.Buffer
	require.NoError(t, p.DumpJSON(&buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "ShowTables", decoded[0]["kind"])
	assert.Equal(t, "DescribeTable", decoded[1]["kind"])
	fields, ok := decoded[1]["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "T1", fields["Table"])
}

func TestRequestKindsCoversClosedSet(t *testing.T) {
	assert.Len(t, facade.RequestKinds(), 44)
}

func TestDumpJSONReportsPerStatementErrors(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("CREATE TABLE t1 (id NOTATYPE);"))
	var buf bytes.Buffer
	require.Error(t, p.DumpJSON(&buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Contains(t, decoded[0], "error")
}

func TestDumpReportsPerStatementErrors(t *testing.T) {
	p := facade.New()
	require.NoError(t, p.Parse("SHOW TABLES; CREATE TABLE t1 (id NOTATYPE);"))
	var buf bytes.Buffer
	require.Error(t, p.Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, "[0] ShowTables")
	assert.Contains(t, out, "[1] error:")
}
