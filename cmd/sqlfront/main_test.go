package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTextOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("CREATE DATABASE my_db WITH CIPHER_ID='aes128', CIPHER_KEY_SEED='seed';")

	err := run(in, &out, &errOut, &rootFlags{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[0] CreateDatabase")
	assert.Contains(t, out.String(), "MY_DB")
	assert.Empty(t, errOut.String())
}

func TestRunJSONOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("INSERT INTO my_db.my_table (col0,col1,col2,col3) VALUES (1,'Bill',true,NULL);")

	err := run(in, &out, &errOut, &rootFlags{jsonOutput: true})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Insert", decoded[0]["kind"])
	fields := decoded[0]["fields"].(map[string]any)
	assert.Equal(t, "MY_TABLE", fields["Table"])
}

func TestRunSyntaxErrorExitsWithError(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("CREATE TABLE;")

	err := run(in, &out, &errOut, &rootFlags{})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "at (")
}

func TestRunBuildErrorExitsWithError(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("INSERT INTO t (c) VALUES (tableName.columnName);")

	err := run(in, &out, &errOut, &rootFlags{})
	require.Error(t, err)
	assert.NotEmpty(t, errOut.String())
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("SHOW DATABASES;")

	err := run(in, &out, &errOut, &rootFlags{logLevel: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported --log-level")
}

func TestRunRejectsUnknownConfigFile(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("SHOW DATABASES;")

	err := run(in, &out, &errOut, &rootFlags{configPath: "/nonexistent/sqlfront.toml"})
	require.Error(t, err)
}
