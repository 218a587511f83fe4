package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// IsOp implements IS / IS NOT: the one comparison where Null participates
// directly (Null IS Null is true) rather than propagating (spec.md section
// 3.1/3.3).
type IsOp struct {
	basePos
	Left, Right Node
	IsNot       bool
}

func NewIsOp(line, column int, left, right Node, isNot bool) *IsOp {
	return &IsOp{basePos: basePos{line, column}, Left: left, Right: right, IsNot: isNot}
}

func (i *IsOp) Type() Type { return TypeIs }

func (i *IsOp) ResultValueType(ctx EvalContext) (coltype.Type, error) { return coltype.Bool, nil }
func (i *IsOp) ColumnDataType(ctx EvalContext) (coltype.Type, error)  { return coltype.Bool, nil }

func (i *IsOp) ExpressionText() string {
	op := "IS"
	if i.IsNot {
		op = "IS NOT"
	}
	return i.Left.ExpressionText() + " " + op + " " + i.Right.ExpressionText()
}

func (i *IsOp) Validate(ctx EvalContext) error {
	if err := i.Left.Validate(ctx); err != nil {
		return err
	}
	return i.Right.Validate(ctx)
}

func (i *IsOp) Evaluate(ctx EvalContext) (variant.Variant, error) {
	lv, err := i.Left.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	rv, err := i.Right.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	same := lv.IsSameAs(rv)
	return variant.NewBool(same != i.IsNot), nil
}

func (i *IsOp) Clone() Node {
	return &IsOp{basePos: i.basePos, Left: i.Left.Clone(), Right: i.Right.Clone(), IsNot: i.IsNot}
}

func (i *IsOp) Equals(other Node) bool {
	o, ok := other.(*IsOp)
	if !ok || i.IsNot != o.IsNot {
		return false
	}
	return i.Left.Equals(o.Left) && i.Right.Equals(o.Right)
}

func (i *IsOp) SerializedSize() int {
	return discriminantLen(TypeIs) + i.Left.SerializedSize() + i.Right.SerializedSize() + 1
}

func (i *IsOp) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeIs)
	i.Left.Serialize(buf)
	i.Right.Serialize(buf)
	writeFlag(buf, i.IsNot)
}

func (i *IsOp) Dump(depth int) string {
	return dumpChildren(depth, i.Type().String(), i.Left, i.Right)
}
