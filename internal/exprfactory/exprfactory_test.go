package exprfactory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/sqlparse"
)

// whereExpr parses "SELECT * FROM t WHERE <cond>;" and returns the
// RuleExpr node rooting the WHERE condition.
func whereExpr(t *testing.T, cond string) navigator.Node {
	t.Helper()
	tree, err := sqlparse.Parse("SELECT * FROM t WHERE " + cond + ";")
	require.NoError(t, err)
	stmt := navigator.FindStatement(tree, 0)
	require.NotNil(t, stmt)
	where := navigator.FindNonTerminal(stmt, navigator.RuleWhereClause)
	require.NotNil(t, where)
	require.Len(t, where.Children(), 2)
	return where.Children()[1]
}

func buildWhere(t *testing.T, cond string) expr.Node {
	t.Helper()
	n, err := CreateExpression(whereExpr(t, cond), Context{AllowColumnExpressions: true})
	require.NoError(t, err)
	return n
}

func TestLiteralNarrowing(t *testing.T) {
	n := buildWhere(t, "a = 200")
	bin := n.(*expr.BinaryOp)
	c := bin.Right.(*expr.Constant)
	rt, err := c.ResultValueType(expr.EmptyContext)
	require.NoError(t, err)
	assert.Equal(t, coltype.UInt8, rt)

	n = buildWhere(t, "a = -200")
	bin = n.(*expr.BinaryOp)
	c = bin.Right.(*expr.Constant)
	rt, err = c.ResultValueType(expr.EmptyContext)
	require.NoError(t, err)
	assert.Equal(t, coltype.Int16, rt)

	n = buildWhere(t, "a = 3.14")
	bin = n.(*expr.BinaryOp)
	c = bin.Right.(*expr.Constant)
	rt, err = c.ResultValueType(expr.EmptyContext)
	require.NoError(t, err)
	assert.Equal(t, coltype.Double, rt)
}

func TestColumnReferenceGating(t *testing.T) {
	n, err := CreateExpression(whereExpr(t, "a = 1"), Context{AllowColumnExpressions: false})
	require.Error(t, err)
	require.Nil(t, n)
}

func TestOperatorPrecedenceReconstruction(t *testing.T) {
	n := buildWhere(t, "1 + 2 * 3 = 7")
	bin := n.(*expr.BinaryOp)
	assert.Equal(t, expr.TypeEqual, bin.Type())
	lhs := bin.Left.(*expr.BinaryOp)
	assert.Equal(t, expr.TypeAdd, lhs.Type())
	rhs := lhs.Right.(*expr.BinaryOp)
	assert.Equal(t, expr.TypeMultiply, rhs.Type())
}

func TestCastExpression(t *testing.T) {
	n := buildWhere(t, "CAST(a AS INT64) = 1")
	top := n.(*expr.BinaryOp)
	cast := top.Left.(*expr.BinaryOp)
	assert.Equal(t, expr.TypeCast, cast.Type())
}

func TestLikeDetection(t *testing.T) {
	n := buildWhere(t, "a LIKE 'x%'")
	like := n.(*expr.LikeOp)
	assert.False(t, like.NotLike)

	n = buildWhere(t, "a NOT LIKE 'x%'")
	like = n.(*expr.LikeOp)
	assert.True(t, like.NotLike)
}

func TestBetweenConstantFolding(t *testing.T) {
	n := buildWhere(t, "5 BETWEEN 1 AND 10")
	c, ok := n.(*expr.Constant)
	require.True(t, ok)
	v, err := c.Evaluate(expr.EmptyContext)
	require.NoError(t, err)
	assert.True(t, v.AsBool())
}

func TestBetweenNonConstantNotFolded(t *testing.T) {
	n := buildWhere(t, "a BETWEEN 1 AND 10")
	_, ok := n.(*expr.BetweenOp)
	require.True(t, ok)
}

func TestInListDetection(t *testing.T) {
	n := buildWhere(t, "a IN (1, 2, 3)")
	in := n.(*expr.InOp)
	assert.False(t, in.NotIn)
	assert.Len(t, in.Candidates, 3)
}

func TestEmptyInListRejected(t *testing.T) {
	tree, err := sqlparse.Parse("SELECT * FROM t WHERE a IN ();")
	// The grammar itself requires at least one item in parseInList, so an
	// empty IN-list is rejected by the parser before the factory ever sees
	// it; this documents that boundary rather than exercising the factory's
	// own EmptyInList check.
	if err == nil {
		stmt := navigator.FindStatement(tree, 0)
		where := navigator.FindNonTerminal(stmt, navigator.RuleWhereClause)
		_, err = CreateExpression(where.Children()[1], Context{AllowColumnExpressions: true})
	}
	require.Error(t, err)
}

func TestHexBlobLiteral(t *testing.T) {
	n := buildWhere(t, "a = x'AB01'")
	bin := n.(*expr.BinaryOp)
	c := bin.Right.(*expr.Constant)
	rt, err := c.ResultValueType(expr.EmptyContext)
	require.NoError(t, err)
	assert.Equal(t, coltype.Binary, rt)
}
