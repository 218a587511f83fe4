package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// BetweenOp implements [NOT] BETWEEN: notBetween XOR (lower <= value <=
// upper), with the documented quirk that a Null bound makes the whole
// predicate False rather than Null or an error (spec.md section 4.3).
type BetweenOp struct {
	basePos
	Value, Lower, Upper Node
	NotBetween          bool
}

func NewBetweenOp(line, column int, value, lower, upper Node, notBetween bool) *BetweenOp {
	return &BetweenOp{basePos: basePos{line, column}, Value: value, Lower: lower, Upper: upper, NotBetween: notBetween}
}

func (b *BetweenOp) Type() Type { return TypeBetween }

func (b *BetweenOp) ResultValueType(ctx EvalContext) (coltype.Type, error) { return coltype.Bool, nil }
func (b *BetweenOp) ColumnDataType(ctx EvalContext) (coltype.Type, error)  { return coltype.Bool, nil }

func (b *BetweenOp) ExpressionText() string {
	op := "BETWEEN"
	if b.NotBetween {
		op = "NOT BETWEEN"
	}
	return b.Value.ExpressionText() + " " + op + " " + b.Lower.ExpressionText() + " AND " + b.Upper.ExpressionText()
}

func (b *BetweenOp) Validate(ctx EvalContext) error {
	for _, child := range []Node{b.Value, b.Lower, b.Upper} {
		if err := child.Validate(ctx); err != nil {
			return err
		}
	}
	types := make([]coltype.Type, 3)
	for i, child := range []Node{b.Value, b.Lower, b.Upper} {
		t, err := child.ResultValueType(ctx)
		if err != nil {
			return err
		}
		types[i] = t
	}
	allNumeric, allDateTime := true, true
	for _, t := range types {
		if !t.IsNumeric() && !t.IsNull() {
			allNumeric = false
		}
		if !t.IsDateTime() && !t.IsNull() {
			allDateTime = false
		}
	}
	if !allNumeric && !allDateTime {
		line, column := b.Pos()
		return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
			"BETWEEN operands must all be numeric or all castable to a date/time")
	}
	return nil
}

func (b *BetweenOp) Evaluate(ctx EvalContext) (variant.Variant, error) {
	vv, err := b.Value.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	lv, err := b.Lower.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	uv, err := b.Upper.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	if vv.IsNull() || lv.IsNull() || uv.IsNull() {
		return variant.NewBool(b.NotBetween), nil
	}
	geLower, err := vv.CompatibleGreater(lv)
	if err != nil {
		return variant.Variant{}, err
	}
	eqLower, err := vv.CompatibleEqual(lv)
	if err != nil {
		return variant.Variant{}, err
	}
	leUpper, err := vv.CompatibleLess(uv)
	if err != nil {
		return variant.Variant{}, err
	}
	eqUpper, err := vv.CompatibleEqual(uv)
	if err != nil {
		return variant.Variant{}, err
	}
	inRange := (geLower || eqLower) && (leUpper || eqUpper)
	return variant.NewBool(inRange != b.NotBetween), nil
}

func (b *BetweenOp) Clone() Node {
	return &BetweenOp{basePos: b.basePos, Value: b.Value.Clone(), Lower: b.Lower.Clone(), Upper: b.Upper.Clone(), NotBetween: b.NotBetween}
}

func (b *BetweenOp) Equals(other Node) bool {
	o, ok := other.(*BetweenOp)
	if !ok || b.NotBetween != o.NotBetween {
		return false
	}
	return b.Value.Equals(o.Value) && b.Lower.Equals(o.Lower) && b.Upper.Equals(o.Upper)
}

func (b *BetweenOp) SerializedSize() int {
	return discriminantLen(TypeBetween) + b.Value.SerializedSize() + b.Lower.SerializedSize() + b.Upper.SerializedSize() + 1
}

func (b *BetweenOp) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeBetween)
	b.Value.Serialize(buf)
	b.Lower.Serialize(buf)
	b.Upper.Serialize(buf)
	writeFlag(buf, b.NotBetween)
}

func (b *BetweenOp) Dump(depth int) string {
	return dumpChildren(depth, b.Type().String(), b.Value, b.Lower, b.Upper)
}
