package exprfactory

import (
	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/expr"
	"github.com/sqlcore-engine/sqlfront/internal/navigator"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

var binaryTokenOps = map[navigator.TokenType]expr.Type{
	navigator.TokPlus:    expr.TypeAdd,
	navigator.TokMinus:   expr.TypeSubtract,
	navigator.TokStar:    expr.TypeMultiply,
	navigator.TokSlash:   expr.TypeDivide,
	navigator.TokPercent: expr.TypeModulo,
	navigator.TokConcat:  expr.TypeConcatenate,
	navigator.TokPipe:    expr.TypeBitwiseOr,
	navigator.TokAmp:     expr.TypeBitwiseAnd,
	navigator.TokShl:     expr.TypeLeftShift,
	navigator.TokShr:     expr.TypeRightShift,
	navigator.TokEq:      expr.TypeEqual,
	navigator.TokEq2:     expr.TypeEqual,
	navigator.TokNeq:     expr.TypeNotEqual,
	navigator.TokNeq2:    expr.TypeNotEqual,
	navigator.TokLt:      expr.TypeLess,
	navigator.TokLe:      expr.TypeLessOrEqual,
	navigator.TokGt:      expr.TypeGreater,
	navigator.TokGe:      expr.TypeGreaterOrEqual,
}

var unaryTokenOps = map[navigator.TokenType]expr.Type{
	navigator.TokPlus:  expr.TypeUnaryPlus,
	navigator.TokMinus: expr.TypeUnaryMinus,
	navigator.TokTilde: expr.TypeBitwiseComplement,
}

// findKeyword returns the index of the first direct child that is a
// keyword terminal with the given text, or -1.
func findKeyword(children []navigator.Node, text string) int {
	for i, c := range children {
		if c.IsTerminal() && c.TokenType() == navigator.TokKeyword && c.Text() == text {
			return i
		}
	}
	return -1
}

// buildSimpleExpr recognizes a RuleSimpleExpr node's shape by child count
// and child kinds, exactly as spec.md section 4.5 describes: a single
// child is a parenthesized passthrough; a leading CAST or NOT keyword is
// unambiguous; the remaining shapes are distinguished by which operator
// keyword or token appears among the children.
func buildSimpleExpr(node navigator.Node, ctx Context, depth int) (expr.Node, error) {
	children := node.Children()
	line, column := navigator.CaptureTerminalPosition(node)

	if len(children) == 1 {
		return create(children[0], ctx, depth+1)
	}

	if children[0].IsTerminal() && children[0].TokenType() == navigator.TokKeyword {
		switch children[0].Text() {
		case "CAST":
			return buildCast(children, ctx, depth)
		case "NOT":
			if len(children) == 2 {
				operand, err := create(children[1], ctx, depth+1)
				if err != nil {
					return nil, err
				}
				return expr.NewUnaryOp(line, column, expr.TypeLogicalNot, operand), nil
			}
		}
	}

	if children[0].IsTerminal() {
		if op, ok := unaryTokenOps[children[0].TokenType()]; ok && len(children) == 2 {
			operand, err := create(children[1], ctx, depth+1)
			if err != nil {
				return nil, err
			}
			return expr.NewUnaryOp(line, column, op, operand), nil
		}
	}

	if idx := findKeyword(children, "IS"); idx >= 0 {
		return buildIs(children, ctx, depth, line, column)
	}
	if idx := findKeyword(children, "LIKE"); idx >= 0 {
		return buildLike(children, ctx, depth, line, column)
	}
	if idx := findKeyword(children, "BETWEEN"); idx >= 0 {
		return buildBetween(children, ctx, depth, line, column)
	}
	if idx := findKeyword(children, "IN"); idx >= 0 {
		return buildIn(children, ctx, depth, line, column)
	}
	if idx := findKeyword(children, "AND"); idx >= 0 && len(children) == 3 {
		return buildBinary(children[0], children[2], expr.TypeLogicalAnd, ctx, depth, line, column)
	}
	if idx := findKeyword(children, "OR"); idx >= 0 && len(children) == 3 {
		return buildBinary(children[0], children[2], expr.TypeLogicalOr, ctx, depth, line, column)
	}

	if len(children) == 3 && children[1].IsTerminal() {
		if op, ok := binaryTokenOps[children[1].TokenType()]; ok {
			return buildBinary(children[0], children[2], op, ctx, depth, line, column)
		}
	}

	return nil, sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
		"unrecognized expression shape")
}

func buildBinary(leftNode, rightNode navigator.Node, op expr.Type, ctx Context, depth, line, column int) (expr.Node, error) {
	left, err := create(leftNode, ctx, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := create(rightNode, ctx, depth+1)
	if err != nil {
		return nil, err
	}
	return expr.NewBinaryOp(line, column, op, left, right), nil
}

func buildCast(children []navigator.Node, ctx Context, depth int) (expr.Node, error) {
	operand, err := create(children[1], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	typeTerm := children[3]
	typeName, err := navigator.AnyNameText(typeTerm)
	if err != nil {
		return nil, err
	}
	if _, ok := coltype.Lookup(typeName); !ok {
		return nil, sqlerr.New(sqlerr.KindUnknownDataType, typeTerm.Line(), typeTerm.Column(),
			"unknown data type %q", typeName)
	}
	line, column := children[0].Line(), children[0].Column()
	target := expr.NewConstant(typeTerm.Line(), typeTerm.Column(), variant.NewString(typeName))
	return expr.NewBinaryOp(line, column, expr.TypeCast, operand, target), nil
}

func buildIs(children []navigator.Node, ctx Context, depth int, line, column int) (expr.Node, error) {
	left, err := create(children[0], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := create(children[len(children)-1], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	isNot := len(children) == 4
	return expr.NewIsOp(line, column, left, right, isNot), nil
}

func buildLike(children []navigator.Node, ctx Context, depth int, line, column int) (expr.Node, error) {
	notLike := children[1].IsTerminal() && children[1].TokenType() == navigator.TokKeyword && children[1].Text() == "NOT"
	value, err := create(children[0], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	pattern, err := create(children[len(children)-1], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	return expr.NewLikeOp(line, column, value, pattern, notLike), nil
}

func buildBetween(children []navigator.Node, ctx Context, depth int, line, column int) (expr.Node, error) {
	notBetween := children[1].IsTerminal() && children[1].TokenType() == navigator.TokKeyword && children[1].Text() == "NOT"
	value, err := create(children[0], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	lower, err := create(children[len(children)-2], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	upper, err := create(children[len(children)-1], ctx, depth+1)
	if err != nil {
		return nil, err
	}

	// Constant folding (spec.md section 4.5): BETWEEN over three constants
	// collapses to a Bool constant immediately.
	if vc, ok := value.(*expr.Constant); ok {
		if lc, ok := lower.(*expr.Constant); ok {
			if uc, ok := upper.(*expr.Constant); ok {
				folded := expr.NewBetweenOp(line, column, vc, lc, uc, notBetween)
				result, err := folded.Evaluate(expr.EmptyContext)
				if err != nil {
					return nil, err
				}
				return expr.NewConstant(line, column, result), nil
			}
		}
	}

	return expr.NewBetweenOp(line, column, value, lower, upper, notBetween), nil
}

func buildIn(children []navigator.Node, ctx Context, depth int, line, column int) (expr.Node, error) {
	notIn := children[1].IsTerminal() && children[1].TokenType() == navigator.TokKeyword && children[1].Text() == "NOT"
	value, err := create(children[0], ctx, depth+1)
	if err != nil {
		return nil, err
	}
	listNode := children[len(children)-1]
	listChildren := listNode.Children()
	if len(listChildren) == 0 {
		return nil, sqlerr.New(sqlerr.KindEmptyInList, line, column, "IN list must not be empty")
	}
	candidates := make([]expr.Node, len(listChildren))
	for i, c := range listChildren {
		candidate, err := create(c, ctx, depth+1)
		if err != nil {
			return nil, err
		}
		candidates[i] = candidate
	}
	return expr.NewInOp(line, column, value, candidates, notIn), nil
}
