package exprfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

// buildColumnReference interprets a RuleColumnReference node: "*" (a bare
// star terminal), "table.*", a plain column name, or "table.column"
// (spec.md section 4.5). Column expressions are gated by
// allowColumnExpressions everywhere except SELECT result lists.
func buildColumnReference(node navigator.Node, ctx Context) (expr.Node, error) {
	children := node.Children()
	line, column := navigator.CaptureTerminalPosition(node)

	if !ctx.AllowColumnExpressions {
		return nil, sqlerr.New(sqlerr.KindColumnNotAllowedHere, line, column,
			"column expressions are not allowed here")
	}

	if len(children) == 1 {
		if children[0].TokenType() == navigator.TokStar {
			return expr.NewAllColumnsReference(line, column, ""), nil
		}
		name, err := navigator.AnyNameText(children[0])
		if err != nil {
			return nil, err
		}
		return expr.NewSingleColumnReference(line, column, "", name), nil
	}

	tableName, err := navigator.AnyNameText(children[0])
	if err != nil {
		return nil, err
	}
	if children[1].TokenType() == navigator.TokStar {
		return expr.NewAllColumnsReference(line, column, tableName), nil
	}
	colName, err := navigator.AnyNameText(children[1])
	if err != nil {
		return nil, err
	}
	return expr.NewSingleColumnReference(line, column, tableName, colName), nil
}
