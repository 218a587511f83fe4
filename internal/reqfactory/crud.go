package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/exprfactory"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
)

func buildInsert(node navigator.Node) (request.Request, error) {
	children := node.Children()
	database, table, err := qualifiedName(children[2])
	if err != nil {
		return nil, err
	}
	req := &request.Insert{Database: database, Table: table}

	i := 3
	for i < len(children) && children[i].RuleID() != navigator.RuleValuesClause {
		colName, err := navigator.AnyNameText(children[i])
		if err != nil {
			return nil, err
		}
		req.Columns = append(req.Columns, colName)
		i++
	}
	valuesClause := children[i]

	for _, rowNode := range valuesClause.Children()[1:] {
		values := rowNode.Children()
		if req.Columns != nil && len(values) != len(req.Columns) {
			line, column := navigator.CaptureTerminalPosition(rowNode)
			return nil, sqlerr.New(sqlerr.KindColumnCountMismatch, line, column,
				"expected %d values, got %d", len(req.Columns), len(values))
		}
		rowVals, err := buildValueRow(values)
		if err != nil {
			return nil, err
		}
		req.Rows = append(req.Rows, rowVals)
	}
	return req, nil
}

func buildValueRow(values []navigator.Node) ([]expr.Node, error) {
	row := make([]expr.Node, 0, len(values))
	for _, v := range values {
		val, err := exprfactory.CreateExpression(v, valueContext)
		if err != nil {
			return nil, err
		}
		row = append(row, val)
	}
	return row, nil
}

func buildUpdate(node navigator.Node) (request.Request, error) {
	children := node.Children()
	target, err := tableRef(children[1])
	if err != nil {
		return nil, err
	}
	req := &request.Update{Target: target}

	setClause := children[2]
	for _, attrNode := range setClause.Children()[1:] {
		attrChildren := attrNode.Children()
		colName, err := navigator.AnyNameText(attrChildren[0])
		if err != nil {
			return nil, err
		}
		val, err := exprfactory.CreateExpression(attrChildren[2], valueContext)
		if err != nil {
			return nil, err
		}
		req.Assignments = append(req.Assignments, request.Assignment{Column: colName, Value: val})
	}

	if len(children) > 3 {
		cond, err := exprfactory.CreateExpression(children[3].Children()[1], conditionContext)
		if err != nil {
			return nil, err
		}
		req.Where = cond
	}
	return req, nil
}

func buildDelete(node navigator.Node) (request.Request, error) {
	children := node.Children()
	target, err := tableRef(children[2])
	if err != nil {
		return nil, err
	}
	req := &request.Delete{Target: target}
	if len(children) > 3 {
		cond, err := exprfactory.CreateExpression(children[3].Children()[1], conditionContext)
		if err != nil {
			return nil, err
		}
		req.Where = cond
	}
	return req, nil
}
