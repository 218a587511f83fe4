// Package exprfactory implements create_expression: the recursive
// interpreter that turns a navigator parse-tree subtree into an
// internal/expr node tree (spec.md section 4.5).
package exprfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

// Context carries the flags create_expression needs while recursing: most
// notably allow_column_expressions, which is false for contexts like
// INSERT VALUES, LIMIT, and OFFSET where a bare column name is never
// meaningful (spec.md section 4.5).
type Context struct {
	AllowColumnExpressions bool
}

// CreateExpression is the factory's entry point. It accepts an Expr,
// SimpleExpr, LiteralValue, SignedNumber, or ColumnReference node and
// returns the expression tree it denotes.
func CreateExpression(node navigator.Node, ctx Context) (expr.Node, error) {
	return create(node, ctx, 0)
}

func create(node navigator.Node, ctx Context, depth int) (expr.Node, error) {
	if depth >= expr.MaxDepth {
		line, column := navigator.CaptureTerminalPosition(node)
		return nil, sqlerr.New(sqlerr.KindExpressionTooDeep, line, column,
			"expression nesting exceeds %d levels", expr.MaxDepth)
	}

	switch node.RuleID() {
	case navigator.RuleExpr:
		return create(node.Children()[0], ctx, depth+1)

	case navigator.RuleLiteralValue:
		return buildLiteralValue(node)

	case navigator.RuleSignedNumber:
		return buildSignedNumber(node)

	case navigator.RuleColumnReference:
		return buildColumnReference(node, ctx)

	case navigator.RuleSimpleExpr:
		return buildSimpleExpr(node, ctx, depth)

	default:
		line, column := navigator.CaptureTerminalPosition(node)
		return nil, sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
			"unrecognized expression node shape")
	}
}
