package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// UnaryOp is one of LogicalNot, UnaryPlus, UnaryMinus, BitwiseComplement
// applied to a single child (spec.md section 3.3).
type UnaryOp struct {
	basePos
	Op    Type
	Child Node
}

func NewUnaryOp(line, column int, op Type, child Node) *UnaryOp {
	return &UnaryOp{basePos: basePos{line, column}, Op: op, Child: child}
}

func (u *UnaryOp) Type() Type { return u.Op }

func (u *UnaryOp) ResultValueType(ctx EvalContext) (coltype.Type, error) {
	if u.Op == TypeLogicalNot {
		return coltype.Bool, nil
	}
	childType, err := u.Child.ResultValueType(ctx)
	if err != nil {
		return coltype.Unknown, err
	}
	if childType.IsNull() {
		return coltype.Unknown, nil
	}
	return childType, nil
}

func (u *UnaryOp) ColumnDataType(ctx EvalContext) (coltype.Type, error) { return u.ResultValueType(ctx) }

func (u *UnaryOp) ExpressionText() string {
	sym := map[Type]string{TypeLogicalNot: "NOT ", TypeUnaryPlus: "+", TypeUnaryMinus: "-", TypeBitwiseComplement: "~"}
	return sym[u.Op] + u.Child.ExpressionText()
}

func (u *UnaryOp) Validate(ctx EvalContext) error {
	if err := u.Child.Validate(ctx); err != nil {
		return err
	}
	ct, err := u.Child.ResultValueType(ctx)
	if err != nil {
		return err
	}
	line, column := u.Pos()
	switch u.Op {
	case TypeLogicalNot:
		if !ct.IsBoolean() && !ct.IsNull() {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"NOT requires a boolean operand, got %s", ct)
		}
	case TypeBitwiseComplement:
		if !ct.IsInteger() && !ct.IsNull() {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"~ requires an integer operand, got %s", ct)
		}
	case TypeUnaryPlus, TypeUnaryMinus:
		if !ct.IsNumeric() && !ct.IsNull() {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"unary %s requires a numeric operand, got %s", u.Op, ct)
		}
	}
	return nil
}

func (u *UnaryOp) Evaluate(ctx EvalContext) (variant.Variant, error) {
	v, err := u.Child.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	switch u.Op {
	case TypeLogicalNot:
		return v.LogicalNot()
	case TypeUnaryPlus:
		return v.UnaryPlus()
	case TypeUnaryMinus:
		return v.UnaryMinus()
	case TypeBitwiseComplement:
		return v.BitwiseComplement()
	default:
		return variant.Variant{}, sqlerr.New(sqlerr.KindCorruptExpression, u.line, u.column, "unknown unary operator")
	}
}

func (u *UnaryOp) Clone() Node {
	return &UnaryOp{basePos: u.basePos, Op: u.Op, Child: u.Child.Clone()}
}

func (u *UnaryOp) Equals(other Node) bool {
	o, ok := other.(*UnaryOp)
	if !ok || u.Op != o.Op {
		return false
	}
	return u.Child.Equals(o.Child)
}

func (u *UnaryOp) SerializedSize() int {
	return discriminantLen(u.Op) + u.Child.SerializedSize()
}

func (u *UnaryOp) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, u.Op)
	u.Child.Serialize(buf)
}

func (u *UnaryOp) Dump(depth int) string {
	return dumpChildren(depth, u.Op.String(), u.Child)
}
