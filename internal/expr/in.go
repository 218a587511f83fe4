package expr

import (
	"bytes"
	"strings"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// InOp implements [NOT] IN (v1, v2, ...): notIn XOR (value matches any
// candidate), with a Null value always yielding False (spec.md section
// 3.3/4.3). The candidate list may not be empty; the expression factory
// rejects an empty list with EmptyInList before an InOp is ever built.
type InOp struct {
	basePos
	Value      Node
	Candidates []Node
	NotIn      bool
}

func NewInOp(line, column int, value Node, candidates []Node, notIn bool) *InOp {
	return &InOp{basePos: basePos{line, column}, Value: value, Candidates: candidates, NotIn: notIn}
}

func (in *InOp) Type() Type { return TypeIn }

func (in *InOp) ResultValueType(ctx EvalContext) (coltype.Type, error) { return coltype.Bool, nil }
func (in *InOp) ColumnDataType(ctx EvalContext) (coltype.Type, error)  { return coltype.Bool, nil }

func (in *InOp) ExpressionText() string {
	parts := make([]string, len(in.Candidates))
	for i, c := range in.Candidates {
		parts[i] = c.ExpressionText()
	}
	op := "IN"
	if in.NotIn {
		op = "NOT IN"
	}
	return in.Value.ExpressionText() + " " + op + " (" + strings.Join(parts, ", ") + ")"
}

func (in *InOp) Validate(ctx EvalContext) error {
	if len(in.Candidates) == 0 {
		line, column := in.Pos()
		return sqlerr.New(sqlerr.KindEmptyInList, line, column, "IN list must not be empty")
	}
	if err := in.Value.Validate(ctx); err != nil {
		return err
	}
	for _, c := range in.Candidates {
		if err := c.Validate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (in *InOp) Evaluate(ctx EvalContext) (variant.Variant, error) {
	vv, err := in.Value.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	if vv.IsNull() {
		return variant.NewBool(false), nil
	}
	matched := false
	for _, c := range in.Candidates {
		cv, err := c.Evaluate(ctx)
		if err != nil {
			return variant.Variant{}, err
		}
		if cv.IsNull() {
			continue
		}
		eq, err := vv.CompatibleEqual(cv)
		if err != nil {
			return variant.Variant{}, err
		}
		if eq {
			matched = true
			break
		}
	}
	return variant.NewBool(matched != in.NotIn), nil
}

func (in *InOp) Clone() Node {
	candidates := make([]Node, len(in.Candidates))
	for i, c := range in.Candidates {
		candidates[i] = c.Clone()
	}
	return &InOp{basePos: in.basePos, Value: in.Value.Clone(), Candidates: candidates, NotIn: in.NotIn}
}

func (in *InOp) Equals(other Node) bool {
	o, ok := other.(*InOp)
	if !ok || in.NotIn != o.NotIn || len(in.Candidates) != len(o.Candidates) {
		return false
	}
	if !in.Value.Equals(o.Value) {
		return false
	}
	for i := range in.Candidates {
		if !in.Candidates[i].Equals(o.Candidates[i]) {
			return false
		}
	}
	return true
}

func (in *InOp) SerializedSize() int {
	n := discriminantLen(TypeIn) + in.Value.SerializedSize() + uvarintLen(uint64(len(in.Candidates)))
	for _, c := range in.Candidates {
		n += c.SerializedSize()
	}
	return n + 1
}

func (in *InOp) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeIn)
	in.Value.Serialize(buf)
	writeUvarint(buf, uint64(len(in.Candidates)))
	for _, c := range in.Candidates {
		c.Serialize(buf)
	}
	writeFlag(buf, in.NotIn)
}

func (in *InOp) Dump(depth int) string {
	children := append([]Node{in.Value}, in.Candidates...)
	return dumpChildren(depth, in.Type().String(), children...)
}
