package expr

import (
	"bytes"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// LikeOp implements the LIKE/NOT LIKE predicate: Value matches Pattern,
// where '_' matches exactly one code point and '%' matches zero or more
// (spec.md section 3.3/4.3.1).
type LikeOp struct {
	basePos
	Value, Pattern Node
	NotLike        bool
}

func NewLikeOp(line, column int, value, pattern Node, notLike bool) *LikeOp {
	return &LikeOp{basePos: basePos{line, column}, Value: value, Pattern: pattern, NotLike: notLike}
}

func (l *LikeOp) Type() Type { return TypeLike }

func (l *LikeOp) ResultValueType(ctx EvalContext) (coltype.Type, error) { return coltype.Bool, nil }
func (l *LikeOp) ColumnDataType(ctx EvalContext) (coltype.Type, error)  { return coltype.Bool, nil }

func (l *LikeOp) ExpressionText() string {
	op := "LIKE"
	if l.NotLike {
		op = "NOT LIKE"
	}
	return l.Value.ExpressionText() + " " + op + " " + l.Pattern.ExpressionText()
}

func (l *LikeOp) Validate(ctx EvalContext) error {
	if err := l.Value.Validate(ctx); err != nil {
		return err
	}
	if err := l.Pattern.Validate(ctx); err != nil {
		return err
	}
	for _, child := range []Node{l.Value, l.Pattern} {
		ct, err := child.ResultValueType(ctx)
		if err != nil {
			return err
		}
		if !ct.IsString() && !ct.IsNull() {
			line, column := l.Pos()
			return sqlerr.New(sqlerr.KindUnsupportedExpressionShape, line, column,
				"LIKE requires string operands, got %s", ct)
		}
	}
	return nil
}

func (l *LikeOp) Evaluate(ctx EvalContext) (variant.Variant, error) {
	vv, err := l.Value.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	pv, err := l.Pattern.Evaluate(ctx)
	if err != nil {
		return variant.Variant{}, err
	}
	if vv.IsNull() || pv.IsNull() {
		return variant.NewNull(), nil
	}
	match := matchLike(vv.AsString(), pv.AsString())
	return variant.NewBool(match != l.NotLike), nil
}

// matchLike implements the last-star-checkpoint restart algorithm of
// spec.md section 4.3.1: on mismatch, if a '%' checkpoint exists, restart
// the value iterator one code point past where the checkpoint was taken
// and reset the pattern iterator to the checkpoint.
func matchLike(s, p string) bool {
	sr := []rune(s)
	pr := []rune(p)
	si, pi := 0, 0
	starS, starP := -1, -1

	for si < len(sr) {
		switch {
		case pi < len(pr) && pr[pi] == '_':
			si++
			pi++
		case pi < len(pr) && pr[pi] == '%':
			starP = pi
			starS = si
			pi++
		case pi < len(pr) && pr[pi] == sr[si]:
			si++
			pi++
		case starP >= 0:
			starS++
			si = starS
			pi = starP + 1
		default:
			return false
		}
	}
	for pi < len(pr) && pr[pi] == '%' {
		pi++
	}
	return pi == len(pr)
}

func (l *LikeOp) Clone() Node {
	return &LikeOp{basePos: l.basePos, Value: l.Value.Clone(), Pattern: l.Pattern.Clone(), NotLike: l.NotLike}
}

func (l *LikeOp) Equals(other Node) bool {
	o, ok := other.(*LikeOp)
	if !ok || l.NotLike != o.NotLike {
		return false
	}
	return l.Value.Equals(o.Value) && l.Pattern.Equals(o.Pattern)
}

func (l *LikeOp) SerializedSize() int {
	return discriminantLen(TypeLike) + l.Value.SerializedSize() + l.Pattern.SerializedSize() + 1
}

func (l *LikeOp) Serialize(buf *bytes.Buffer) {
	writeDiscriminant(buf, TypeLike)
	l.Value.Serialize(buf)
	l.Pattern.Serialize(buf)
	writeFlag(buf, l.NotLike)
}

func (l *LikeOp) Dump(depth int) string {
	return dumpChildren(depth, l.Type().String(), l.Value, l.Pattern)
}
