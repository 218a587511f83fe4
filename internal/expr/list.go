package expr

import (
	"bytes"
	"strings"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// List owns a sequence of child expressions and evaluates to the last
// element's value; used for VALUES clauses and (before IN-detection folds
// them) raw IN value lists (spec.md section 3.3).
type List struct {
	basePos
	Items []Node
}

func NewList(line, column int, items []Node) *List {
	return &List{basePos: basePos{line, column}, Items: items}
}

func (l *List) Type() Type { return TypeList }

func (l *List) ResultValueType(ctx EvalContext) (coltype.Type, error) {
	if len(l.Items) == 0 {
		return coltype.Unknown, nil
	}
	return l.Items[len(l.Items)-1].ResultValueType(ctx)
}

func (l *List) ColumnDataType(ctx EvalContext) (coltype.Type, error) { return l.ResultValueType(ctx) }

func (l *List) ExpressionText() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.ExpressionText()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (l *List) Validate(ctx EvalContext) error {
	for _, it := range l.Items {
		if err := it.Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) Evaluate(ctx EvalContext) (variant.Variant, error) {
	if len(l.Items) == 0 {
		return variant.NewNull(), nil
	}
	var last variant.Variant
	for _, it := range l.Items {
		v, err := it.Evaluate(ctx)
		if err != nil {
			return variant.Variant{}, err
		}
		last = v
	}
	return last, nil
}

func (l *List) Clone() Node {
	items := make([]Node, len(l.Items))
	for i, it := range l.Items {
		items[i] = it.Clone()
	}
	return &List{basePos: l.basePos, Items: items}
}

func (l *List) Equals(other Node) bool {
	o, ok := other.(*List)
	if !ok || len(l.Items) != len(o.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equals(o.Items[i]) {
			return false
		}
	}
	return true
}

func (l *List) SerializedSize() int {
	n := discriminantLen(TypeList) + uvarintLen(uint64(len(l.Items)))
	for _, it := range l.Items {
		n += it.SerializedSize()
	}
	return n
}

func (l *List) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeList)
	writeUvarint(buf, uint64(len(l.Items)))
	for _, it := range l.Items {
		it.Serialize(buf)
	}
}

func (l *List) Dump(depth int) string {
	return dumpChildren(depth, "List", l.Items...)
}
