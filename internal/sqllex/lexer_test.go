package sqllex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/navigator"
)

func types(toks []Token) []navigator.TokenType {
	out := make([]navigator.TokenType, len(toks))
	for i, tk := range toks {
		out[i] = tk.Type
	}
	return out
}

func TestTokenizeSimpleSelect(t *testing.T) {
	toks, err := Tokenize("SELECT a, b FROM t WHERE a = 1;")
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, navigator.TokKeyword, toks[0].Type)
	assert.Equal(t, "SELECT", toks[0].Value)
	assert.Equal(t, navigator.TokEOF, toks[len(toks)-1].Type)
}

func TestTokenizeStringWithEscapedQuote(t *testing.T) {
	toks, err := Tokenize(`SELECT 'it''s fine'`)
	require.NoError(t, err)
	var lit Token
	for _, tk := range toks {
		if tk.Type == navigator.TokStringLiteral {
			lit = tk
		}
	}
	assert.Equal(t, `'it''s fine'`, lit.Text)
}

func TestTokenizeQuotedIdentifier(t *testing.T) {
	toks, err := Tokenize(`SELECT "My Col" FROM t`)
	require.NoError(t, err)
	found := false
	for _, tk := range toks {
		if tk.Type == navigator.TokQuotedIdentifier {
			found = true
			assert.Equal(t, `"My Col"`, tk.Text)
		}
	}
	assert.True(t, found)
}

func TestTokenizeNumericLiteralForms(t *testing.T) {
	toks, err := Tokenize("1 2.5 1e10 1.5e-3")
	require.NoError(t, err)
	var nums []string
	for _, tk := range toks {
		if tk.Type == navigator.TokNumericLiteral {
			nums = append(nums, tk.Text)
		}
	}
	assert.Equal(t, []string{"1", "2.5", "1e10", "1.5e-3"}, nums)
}

func TestTokenizeHexBlobLiteral(t *testing.T) {
	toks, err := Tokenize(`x'deadbeef'`)
	require.NoError(t, err)
	assert.Equal(t, navigator.TokBlobLiteral, toks[0].Type)
	assert.Equal(t, `x'deadbeef'`, toks[0].Text)
}

func TestTokenizeOperators(t *testing.T) {
	toks, err := Tokenize("<= >= <> != == << >> ||")
	require.NoError(t, err)
	got := types(toks[:len(toks)-1])
	want := []navigator.TokenType{
		navigator.TokLe, navigator.TokGe, navigator.TokNeq2, navigator.TokNeq,
		navigator.TokEq2, navigator.TokShl, navigator.TokShr, navigator.TokConcat,
	}
	assert.Equal(t, want, got)
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks, err := Tokenize("SELECT 1 -- trailing comment\n, /* block */ 2")
	require.NoError(t, err)
	var nums []string
	for _, tk := range toks {
		if tk.Type == navigator.TokNumericLiteral {
			nums = append(nums, tk.Text)
		}
	}
	assert.Equal(t, []string{"1", "2"}, nums)
}

func TestTokenizeUnterminatedStringError(t *testing.T) {
	_, err := Tokenize(`SELECT 'abc`)
	assert.Error(t, err)
}
