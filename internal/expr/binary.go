package expr

import (
	"bytes"
	"strings"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

var binarySymbols = map[Type]string{
	TypeLogicalAnd: "AND", TypeLogicalOr: "OR",
	TypeAdd: "+", TypeSubtract: "-", TypeMultiply: "*", TypeDivide: "/", TypeModulo: "%",
	TypeConcatenate: "||",
	TypeBitwiseOr:   "|", TypeBitwiseAnd: "&", TypeBitwiseXor: "^",
	TypeLeftShift: "<<", TypeRightShift: ">>",
	TypeEqual: "=", TypeNotEqual: "!=", TypeLess: "<", TypeLessOrEqual: "<=",
	TypeGreater: ">", TypeGreaterOrEqual: ">=",
}

// BinaryOp covers every two-child operator except Like and Is, which carry
// an extra negation flag (spec.md section 3.3) and are modeled separately.
type BinaryOp struct {
	basePos
	Op          Type
	Left, Right Node
}

func NewBinaryOp(line, column int, op Type, left, right Node) *BinaryOp {
	return &BinaryOp{basePos: basePos{line, column}, Op: op, Left: left, Right: right}
}

func (b *BinaryOp) Type() Type { return b.Op }

func (b *BinaryOp) isComparison() bool {
	switch b.Op {
	case TypeEqual, TypeNotEqual, TypeLess, TypeLessOrEqual, TypeGreater, TypeGreaterOrEqual,
		TypeLogicalAnd, TypeLogicalOr:
		return true
	default:
		return false
	}
}

func (b *BinaryOp) ResultValueType(ctx EvalContext) (coltype.Type, error) {
	if b.isComparison() {
		return coltype.Bool, nil
	}
	if b.Op == TypeCast {
		return b.castTargetType()
	}
	lt, err := b.Left.ResultValueType(ctx)
	if err != nil {
		return coltype.Unknown, err
	}
	rt, err := b.Right.ResultValueType(ctx)
	if err != nil {
		return coltype.Unknown, err
	}
	if lt.IsNull() || rt.IsNull() {
		return coltype.Unknown, nil
	}
	if b.Op == TypeConcatenate {
		return coltype.Text, nil
	}
	return coltype.GetNumericResultType(lt, rt), nil
}

func (b *BinaryOp) ColumnDataType(ctx EvalContext) (coltype.Type, error) { return b.ResultValueType(ctx) }

func (b *BinaryOp) castTargetType() (coltype.Type, error) {
	c, ok := b.Right.(*Constant)
	if !ok || c.Value.Kind() != variant.String {
		line, column := b.Right.Pos()
		return coltype.Unknown, sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
			"CAST target must be a string literal naming a type")
	}
	target, ok := coltype.Lookup(strings.ToUpper(c.Value.AsString()))
	if !ok {
		line, column := b.Right.Pos()
		return coltype.Unknown, sqlerr.New(sqlerr.KindUnknownDataType, line, column,
			"unknown data type %q", c.Value.AsString())
	}
	return target, nil
}

func (b *BinaryOp) ExpressionText() string {
	if b.Op == TypeCast {
		return "CAST(" + b.Left.ExpressionText() + " AS " + b.Right.ExpressionText() + ")"
	}
	return b.Left.ExpressionText() + " " + binarySymbols[b.Op] + " " + b.Right.ExpressionText()
}

func (b *BinaryOp) Validate(ctx EvalContext) error {
	if err := b.Left.Validate(ctx); err != nil {
		return err
	}
	if err := b.Right.Validate(ctx); err != nil {
		return err
	}
	line, column := b.Pos()
	if b.Op == TypeCast {
		_, err := b.castTargetType()
		return err
	}
	lt, err := b.Left.ResultValueType(ctx)
	if err != nil {
		return err
	}
	rt, err := b.Right.ResultValueType(ctx)
	if err != nil {
		return err
	}
	switch b.Op {
	case TypeLogicalAnd, TypeLogicalOr:
		if !(lt.IsBoolean() || lt.IsNull()) || !(rt.IsBoolean() || rt.IsNull()) {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"%s requires boolean operands", b.Op)
		}
	case TypeBitwiseOr, TypeBitwiseAnd, TypeBitwiseXor, TypeLeftShift, TypeRightShift:
		if !(lt.IsInteger() || lt.IsNull()) || !(rt.IsInteger() || rt.IsNull()) {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"%s requires integer operands", b.Op)
		}
	case TypeAdd:
		if lt.IsString() && rt.IsString() {
			return nil
		}
		if !(lt.IsNumeric() || lt.IsNull()) || !(rt.IsNumeric() || rt.IsNull()) {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"+ requires numeric or two string operands")
		}
	case TypeSubtract, TypeMultiply, TypeDivide, TypeModulo:
		if !(lt.IsNumeric() || lt.IsNull()) || !(rt.IsNumeric() || rt.IsNull()) {
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"%s requires numeric operands", b.Op)
		}
	}
	return nil
}

func (b *BinaryOp) Evaluate(ctx EvalContext) (variant.Variant, error) {
	if b.Op == TypeCast {
		target, err := b.castTargetType()
		if err != nil {
			return variant.Variant{}, err
		}
		lv, err := b.Left.Evaluate(ctx)
		if err != nil {
			return variant.Variant{}, err
		}
		line, column := b.Pos()
		return coltype.ConvertVariant(lv, target, line, column)
	}

	if b.Op == TypeLogicalAnd || b.Op == TypeLogicalOr {
		return b.evaluateLogical(ctx)
	}

	lv, err := b.Left.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	rv, err := b.Right.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	switch b.Op {
	case TypeAdd:
		return lv.Add(rv)
	case TypeSubtract:
		return lv.Subtract(rv)
	case TypeMultiply:
		return lv.Multiply(rv)
	case TypeDivide:
		return lv.Divide(rv)
	case TypeModulo:
		return lv.Modulo(rv)
	case TypeConcatenate:
		return lv.Concatenate(rv)
	case TypeBitwiseOr:
		return lv.BitwiseOr(rv)
	case TypeBitwiseAnd:
		return lv.BitwiseAnd(rv)
	case TypeBitwiseXor:
		return lv.BitwiseXor(rv)
	case TypeLeftShift:
		return lv.LeftShift(rv)
	case TypeRightShift:
		return lv.RightShift(rv)
	case TypeEqual:
		return boolOrNullCompare(lv, rv, lv.CompatibleEqual)
	case TypeNotEqual:
		return boolOrNullCompareNegated(lv, rv, lv.CompatibleEqual)
	case TypeLess:
		return boolOrNullCompare(lv, rv, lv.CompatibleLess)
	case TypeGreater:
		return boolOrNullCompare(lv, rv, lv.CompatibleGreater)
	case TypeLessOrEqual:
		return boolOrNullCompareNegated(lv, rv, lv.CompatibleGreater)
	case TypeGreaterOrEqual:
		return boolOrNullCompareNegated(lv, rv, lv.CompatibleLess)
	default:
		line, column := b.Pos()
		return variant.Variant{}, sqlerr.New(sqlerr.KindCorruptExpression, line, column, "unknown binary operator")
	}
}

// boolOrNullCompare propagates Null the way every other binary operator
// does: if either side is Null, the comparison is Null rather than False.
func boolOrNullCompare(lv, rv variant.Variant, cmp func(variant.Variant) (bool, error)) (variant.Variant, error) {
	if lv.IsNull() || rv.IsNull() {
		return variant.NewNull(), nil
	}
	ok, err := cmp(rv)
	if err != nil {
		return variant.Variant{}, err
	}
	return variant.NewBool(ok), nil
}

func boolOrNullCompareNegated(lv, rv variant.Variant, cmp func(variant.Variant) (bool, error)) (variant.Variant, error) {
	if lv.IsNull() || rv.IsNull() {
		return variant.NewNull(), nil
	}
	ok, err := cmp(rv)
	if err != nil {
		return variant.Variant{}, err
	}
	return variant.NewBool(!ok), nil
}

// evaluateLogical implements short-circuiting AND/OR (spec.md section 4.3):
// And stops at a False left operand, Or stops at a True one, without
// evaluating the right child at all. Otherwise Null propagates like any
// other binary operator; EvalContext has no option that switches to
// three-valued logic (see DESIGN.md's Open Question notes).
func (b *BinaryOp) evaluateLogical(ctx EvalContext) (variant.Variant, error) {
	lv, err := b.Left.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	if b.Op == TypeLogicalAnd && !lv.IsNull() && !lv.AsBool() {
		return variant.NewBool(false), nil
	}
	if b.Op == TypeLogicalOr && !lv.IsNull() && lv.AsBool() {
		return variant.NewBool(true), nil
	}
	rv, err := b.Right.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	if lv.IsNull() || rv.IsNull() {
		return variant.NewNull(), nil
	}
	if b.Op == TypeLogicalAnd {
		return variant.NewBool(lv.AsBool() && rv.AsBool()), nil
	}
	return variant.NewBool(lv.AsBool() || rv.AsBool()), nil
}

func (b *BinaryOp) Clone() Node {
	return &BinaryOp{basePos: b.basePos, Op: b.Op, Left: b.Left.Clone(), Right: b.Right.Clone()}
}

func (b *BinaryOp) Equals(other Node) bool {
	o, ok := other.(*BinaryOp)
	if !ok || b.Op != o.Op {
		return false
	}
	return b.Left.Equals(o.Left) && b.Right.Equals(o.Right)
}

func (b *BinaryOp) SerializedSize() int {
	return discriminantLen(b.Op) + b.Left.SerializedSize() + b.Right.SerializedSize()
}

func (b *BinaryOp) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, b.Op)
	b.Left.Serialize(buf)
	b.Right.Serialize(buf)
}

func (b *BinaryOp) Dump(depth int) string {
	return dumpChildren(depth, b.Op.String(), b.Left, b.Right)
}
