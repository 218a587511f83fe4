package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// SingleColumnReference names a column, optionally qualified by a table
// name, and carries the resolved dataset indices once name resolution has
// run. resolved() is false until a builder sets DatasetTableIndex /
// DatasetColumnIndex to non-negative values.
type SingleColumnReference struct {
	basePos
	TableName  string
	ColumnName string

	DatasetTableIndex  int
	DatasetColumnIndex int
}

// NewSingleColumnReference builds an unresolved column reference; the
// caller sets the dataset indices once the catalog has resolved the name.
func NewSingleColumnReference(line, column int, tableName, columnName string) *SingleColumnReference {
	return &SingleColumnReference{
		basePos:            basePos{line, column},
		TableName:          tableName,
		ColumnName:         columnName,
		DatasetTableIndex:  -1,
		DatasetColumnIndex: -1,
	}
}

func (r *SingleColumnReference) resolved() bool {
	return r.DatasetTableIndex >= 0 && r.DatasetColumnIndex >= 0
}

func (r *SingleColumnReference) Type() Type { return TypeSingleColumnReference }

func (r *SingleColumnReference) ResultValueType(ctx EvalContext) (coltype.Type, error) {
	return r.ColumnDataType(ctx)
}

func (r *SingleColumnReference) ColumnDataType(ctx EvalContext) (coltype.Type, error) {
	if !r.resolved() {
		return coltype.Unknown, sqlerr.New(sqlerr.KindUnresolvedReference, r.line, r.column,
			"unresolved column reference %q", r.ExpressionText())
	}
	_, ct, err := ctx.Column(r.DatasetTableIndex, r.DatasetColumnIndex)
	if err != nil {
		return coltype.Unknown, sqlerr.Wrap(sqlerr.KindUnresolvedReference, r.line, r.column, err,
			"unresolved column reference %q", r.ExpressionText())
	}
	return ct, nil
}

func (r *SingleColumnReference) ExpressionText() string {
	if r.TableName != "" {
		return r.TableName + "." + r.ColumnName
	}
	return r.ColumnName
}

func (r *SingleColumnReference) Validate(ctx EvalContext) error {
	if !r.resolved() {
		return sqlerr.New(sqlerr.KindUnresolvedReference, r.line, r.column,
			"unresolved column reference %q", r.ExpressionText())
	}
	return nil
}

func (r *SingleColumnReference) Evaluate(ctx EvalContext) (variant.Variant, error) {
	if !r.resolved() {
		return variant.Variant{}, sqlerr.New(sqlerr.KindUnresolvedReference, r.line, r.column,
			"unresolved column reference %q", r.ExpressionText())
	}
	v, _, err := ctx.Column(r.DatasetTableIndex, r.DatasetColumnIndex)
	if err != nil {
		return variant.Variant{}, sqlerr.Wrap(sqlerr.KindUnresolvedReference, r.line, r.column, err,
			"unresolved column reference %q", r.ExpressionText())
	}
	return v, nil
}

func (r *SingleColumnReference) Clone() Node {
	c := *r
	return &c
}

func (r *SingleColumnReference) Equals(other Node) bool {
	o, ok := other.(*SingleColumnReference)
	if !ok {
		return false
	}
	return r.TableName == o.TableName && r.ColumnName == o.ColumnName
}

func (r *SingleColumnReference) SerializedSize() int {
	return discriminantLen(TypeSingleColumnReference) + stringLen(r.TableName) + stringLen(r.ColumnName)
}

func (r *SingleColumnReference) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeSingleColumnReference)
	writeString(buf, r.TableName)
	writeString(buf, r.ColumnName)
}

func (r *SingleColumnReference) Dump(depth int) string {
	return indent(depth) + "SingleColumnReference(" + r.ExpressionText() + ")"
}

// AllColumnsReference represents "*" or "table.*"; it carries the resolved
// list of table indices it expands to and cannot itself be evaluated.
type AllColumnsReference struct {
	basePos
	TableName         string
	ResolvedTableIdxs []int
}

func NewAllColumnsReference(line, column int, tableName string) *AllColumnsReference {
	return &AllColumnsReference{basePos: basePos{line, column}, TableName: tableName}
}

func (a *AllColumnsReference) Type() Type { return TypeAllColumnsReference }

func (a *AllColumnsReference) ResultValueType(ctx EvalContext) (coltype.Type, error) {
	return coltype.Unknown, sqlerr.New(sqlerr.KindUnsupportedExpressionShape, a.line, a.column,
		"cannot infer a value type for %q", a.ExpressionText())
}

func (a *AllColumnsReference) ColumnDataType(ctx EvalContext) (coltype.Type, error) {
	return a.ResultValueType(ctx)
}

func (a *AllColumnsReference) ExpressionText() string {
	if a.TableName != "" {
		return a.TableName + ".*"
	}
	return "*"
}

func (a *AllColumnsReference) Validate(ctx EvalContext) error {
	if len(a.ResolvedTableIdxs) == 0 {
		return sqlerr.New(sqlerr.KindUnresolvedReference, a.line, a.column,
			"unresolved wildcard reference %q", a.ExpressionText())
	}
	return nil
}

func (a *AllColumnsReference) Evaluate(ctx EvalContext) (variant.Variant, error) {
	return variant.Variant{}, sqlerr.New(sqlerr.KindUnsupportedExpressionShape, a.line, a.column,
		"%q cannot be evaluated", a.ExpressionText())
}

func (a *AllColumnsReference) Clone() Node {
	c := *a
	c.ResolvedTableIdxs = append([]int(nil), a.ResolvedTableIdxs...)
	return &c
}

func (a *AllColumnsReference) Equals(other Node) bool {
	o, ok := other.(*AllColumnsReference)
	if !ok {
		return false
	}
	return a.TableName == o.TableName
}

func (a *AllColumnsReference) SerializedSize() int {
	return discriminantLen(TypeAllColumnsReference) + stringLen(a.TableName)
}

func (a *AllColumnsReference) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeAllColumnsReference)
	writeString(buf, a.TableName)
}

func (a *AllColumnsReference) Dump(depth int) string {
	return indent(depth) + "AllColumnsReference(" + a.ExpressionText() + ")"
}
