package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// Constant owns a literal Variant value, produced by the expression factory
// from a numeric, string, hex-blob, or keyword literal (spec.md section
// 3.3/4.5).
type Constant struct {
	basePos
	Value variant.Variant
}

// NewConstant builds a Constant at the given source position.
func NewConstant(line, column int, v variant.Variant) *Constant {
	return &Constant{basePos: basePos{line, column}, Value: v}
}

func (c *Constant) Type() Type { return TypeConstant }

func (c *Constant) ResultValueType(ctx EvalContext) (coltype.Type, error) {
	t, ok := coltype.ColumnTypeOf(c.Value.Kind())
	if !ok {
		return coltype.Unknown, sqlerr.New(sqlerr.KindUnsupportedTypeConversion, c.line, c.column,
			"no column type corresponds to %s", c.Value.Kind())
	}
	return t, nil
}

func (c *Constant) ColumnDataType(ctx EvalContext) (coltype.Type, error) {
	return c.ResultValueType(ctx)
}

func (c *Constant) ExpressionText() string { return c.Value.CanonicalString() }

func (c *Constant) Validate(ctx EvalContext) error { return nil }

func (c *Constant) Evaluate(ctx EvalContext) (variant.Variant, error) { return c.Value, nil }

func (c *Constant) Clone() Node { return &Constant{basePos: c.basePos, Value: c.Value} }

func (c *Constant) Equals(other Node) bool {
	o, ok := other.(*Constant)
	if !ok {
		return false
	}
	if c.Value.Kind() != o.Value.Kind() {
		return false
	}
	return c.Value.CanonicalString() == o.Value.CanonicalString()
}

func (c *Constant) SerializedSize() int {
	return discriminantLen(TypeConstant) + c.Value.SerializedSize()
}

func (c *Constant) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeConstant)
	c.Value.Serialize(buf)
}

func (c *Constant) Dump(depth int) string {
	return indent(depth) + "Constant(" + c.Value.CanonicalString() + ")"
}

// canCastAsDateTime reports whether c's stored value already is a DateTime
// or is a string literal whose text parses as one (spec.md section 4.3).
func (c *Constant) canCastAsDateTime() bool {
	return c.Value.CanCastAsDateTime()
}
