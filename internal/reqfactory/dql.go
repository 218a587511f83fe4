package reqfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/exprfactory"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/request"
)

func buildSelect(node navigator.Node) (request.Request, error) {
	children := node.Children()
	core := children[0]
	req, err := buildSelectCore(core)
	if err != nil {
		return nil, err
	}
	if len(children) > 1 {
		if err := applyLimitClause(children[1], req); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func buildSelectCore(core navigator.Node) (*request.Select, error) {
	children := core.Children()
	req := &request.Select{}

	i := 1 // skip SELECT
	for i < len(children) {
		c := children[i]
		if c.RuleID() != navigator.RuleResultColumn {
			break
		}
		col, err := buildResultColumn(c)
		if err != nil {
			return nil, err
		}
		req.Columns = append(req.Columns, col)
		i++
	}

	if i < len(children) && children[i].IsTerminal() && children[i].TokenType() == navigator.TokKeyword &&
		children[i].Text() == "FROM" {
		i++
		for i < len(children) && children[i].RuleID() == navigator.RuleTableOrSubquery {
			ref, err := tableRef(children[i])
			if err != nil {
				return nil, err
			}
			req.From = append(req.From, ref)
			i++
		}
	}

	if i < len(children) && children[i].RuleID() == navigator.RuleWhereClause {
		cond, err := exprfactory.CreateExpression(children[i].Children()[1], conditionContext)
		if err != nil {
			return nil, err
		}
		req.Where = cond
	}

	return req, nil
}

func buildResultColumn(node navigator.Node) (request.ResultColumn, error) {
	children := node.Children()
	if len(children) == 1 && children[0].IsTerminal() && children[0].TokenType() == navigator.TokStar {
		return request.ResultColumn{Star: true}, nil
	}

	val, err := exprfactory.CreateExpression(children[0], conditionContext)
	if err != nil {
		return request.ResultColumn{}, err
	}
	col := request.ResultColumn{Expr: val}
	if allCols, ok := val.(*expr.AllColumnsReference); ok {
		col.Star = true
		col.StarTable = allCols.TableName
	}
	if len(children) > 1 {
		aliasNode := children[len(children)-1]
		alias, err := navigator.AnyNameText(aliasNode)
		if err != nil {
			return request.ResultColumn{}, err
		}
		col.Alias = alias
	}
	return col, nil
}

// applyLimitClause fills in req's LIMIT/OFFSET fields from a RuleLimitClause
// node, handling both "LIMIT count [OFFSET offset]" and the MySQL-style
// "LIMIT offset, count" alternate form (internal/sqlparse's parseLimitClause
// disambiguates the two by the presence of a comma terminal).
func applyLimitClause(node navigator.Node, req *request.Select) error {
	children := node.Children()
	first, err := intLiteral(children[1])
	if err != nil {
		return err
	}
	if len(children) == 2 {
		req.HasLimit = true
		req.Limit = first
		return nil
	}
	if children[2].IsTerminal() && children[2].TokenType() == navigator.TokComma {
		count, err := intLiteral(children[3])
		if err != nil {
			return err
		}
		req.HasOffset = true
		req.Offset = first
		req.HasLimit = true
		req.Limit = count
		return nil
	}
	offset, err := intLiteral(children[2])
	if err != nil {
		return err
	}
	req.HasLimit = true
	req.Limit = first
	req.HasOffset = true
	req.Offset = offset
	return nil
}
