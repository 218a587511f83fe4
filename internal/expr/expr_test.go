package expr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/coltype"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

func c(v variant.Variant) *Constant { return NewConstant(1, 1, v) }

func TestCloneIsStructurallyEqualAndDisjoint(t *testing.T) {
	tree := NewBinaryOp(1, 1, TypeAdd, c(variant.NewInt32(1)), c(variant.NewInt32(2)))
	clone := tree.Clone()
	assert.True(t, tree.Equals(clone))

	clone.(*BinaryOp).Left.(*Constant).Value = variant.NewInt32(99)
	assert.False(t, tree.Equals(clone), "mutating the clone must not affect the original")
}

func TestEqualityIsAnEquivalenceRelation(t *testing.T) {
	a := NewBinaryOp(1, 1, TypeAdd, c(variant.NewInt32(1)), c(variant.NewInt32(2)))
	b := NewBinaryOp(5, 5, TypeAdd, c(variant.NewInt32(1)), c(variant.NewInt32(2)))
	d := NewBinaryOp(1, 1, TypeAdd, c(variant.NewInt32(1)), c(variant.NewInt32(3)))

	assert.True(t, a.Equals(a), "reflexive")
	assert.True(t, a.Equals(b), "position does not affect equality")
	assert.True(t, b.Equals(a), "symmetric")
	assert.False(t, a.Equals(d))
}

func serializeRoundTrip(t *testing.T, n Node) Node {
	t.Helper()
	var buf bytes.Buffer
	n.Serialize(&buf)
	require.Equal(t, n.SerializedSize(), buf.Len())
	got, err := Deserialize(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	return got
}

func TestSerializationRoundTrip(t *testing.T) {
	cases := []Node{
		c(variant.NewInt32(42)),
		NewSingleColumnReference(1, 1, "t", "col"),
		NewAllColumnsReference(1, 1, "t"),
		NewList(1, 1, []Node{c(variant.NewInt32(1)), c(variant.NewInt32(2))}),
		NewUnaryOp(1, 1, TypeUnaryMinus, c(variant.NewInt32(5))),
		NewBinaryOp(1, 1, TypeAdd, c(variant.NewInt32(1)), c(variant.NewInt32(2))),
		NewLikeOp(1, 1, c(variant.NewString("abc")), c(variant.NewString("a%")), false),
		NewLikeOp(1, 1, c(variant.NewString("abc")), c(variant.NewString("a%")), true),
		NewIsOp(1, 1, c(variant.NewNull()), c(variant.NewNull()), false),
		NewBetweenOp(1, 1, c(variant.NewInt32(5)), c(variant.NewInt32(1)), c(variant.NewInt32(10)), false),
		NewInOp(1, 1, c(variant.NewInt32(1)), []Node{c(variant.NewInt32(1)), c(variant.NewInt32(2))}, false),
	}
	for _, n := range cases {
		got := serializeRoundTrip(t, n)
		assert.True(t, n.Equals(got), "%T round trip", n)
	}
}

func TestDeserializeCorruptDiscriminant(t *testing.T) {
	_, err := Deserialize(bytes.NewReader([]byte{0xff, 0x01}))
	assert.Error(t, err)
}

func TestDeserializeCorruptFlag(t *testing.T) {
	var buf bytes.Buffer
	writeDiscriminant(&buf, TypeIs)
	c(variant.NewString("a")).Serialize(&buf)
	c(variant.NewString("a")).Serialize(&buf)
	buf.WriteByte(2) // invalid flag

	_, err := Deserialize(bytes.NewReader(buf.Bytes()))
	assert.Error(t, err)
}

func TestLikeAlgorithm(t *testing.T) {
	cases := []struct {
		s, p  string
		match bool
	}{
		{"", "", true},
		{"", "%", true},
		{"", "%%", true},
		{"", "_", false},
		{"abc", "abc", true},
		{"abc", "a_c", true},
		{"abc", "a%c", true},
		{"abcdef", "a%d%f", true},
		{"abcdef", "a%x%f", false},
		{"hello world", "hello%", true},
		{"hello world", "%world", true},
		{"hello world", "%o w%", true},
		{"aaa", "a%a", true},
		{"aaab", "a%a", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.match, matchLike(tc.s, tc.p), "match(%q,%q)", tc.s, tc.p)
	}
}

func TestLikeThroughNode(t *testing.T) {
	like := NewLikeOp(1, 1, c(variant.NewString("hello world")), c(variant.NewString("hello%")), false)
	v, err := like.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.True(t, v.AsBool())

	notLike := NewLikeOp(1, 1, c(variant.NewString("hello world")), c(variant.NewString("hello%")), true)
	v, err = notLike.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.False(t, v.AsBool())
}

func TestBetweenNullBoundIsFalse(t *testing.T) {
	b := NewBetweenOp(1, 1, c(variant.NewInt32(5)), c(variant.NewNull()), c(variant.NewInt32(10)), false)
	v, err := b.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.False(t, v.AsBool(), "a Null bound makes BETWEEN false, not Null")

	nb := NewBetweenOp(1, 1, c(variant.NewInt32(5)), c(variant.NewNull()), c(variant.NewInt32(10)), true)
	v, err = nb.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.True(t, v.AsBool(), "NOT BETWEEN with a Null bound is also false-negated, i.e. true")
}

func TestBetweenWithinRange(t *testing.T) {
	b := NewBetweenOp(1, 1, c(variant.NewInt32(5)), c(variant.NewInt32(1)), c(variant.NewInt32(10)), false)
	v, err := b.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.True(t, v.AsBool())
}

func TestInPredicate(t *testing.T) {
	in := NewInOp(1, 1, c(variant.NewInt32(2)), []Node{c(variant.NewInt32(1)), c(variant.NewInt32(2))}, false)
	v, err := in.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.True(t, v.AsBool())

	notIn := NewInOp(1, 1, c(variant.NewInt32(3)), []Node{c(variant.NewInt32(1)), c(variant.NewInt32(2))}, false)
	v, err = notIn.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.False(t, v.AsBool())

	nullIn := NewInOp(1, 1, c(variant.NewNull()), []Node{c(variant.NewInt32(1))}, false)
	v, err = nullIn.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.False(t, v.AsBool(), "a Null value never matches, by fiat")
}

func TestInValidateRejectsEmptyList(t *testing.T) {
	in := NewInOp(1, 1, c(variant.NewInt32(1)), nil, false)
	err := in.Validate(EmptyContext)
	assert.Error(t, err)
}

func TestLogicalAndShortCircuits(t *testing.T) {
	and := NewBinaryOp(1, 1, TypeLogicalAnd, c(variant.NewBool(false)), &pokingNode{t: t})
	v, err := and.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.False(t, v.AsBool())
}

func TestLogicalOrShortCircuits(t *testing.T) {
	or := NewBinaryOp(1, 1, TypeLogicalOr, c(variant.NewBool(true)), &pokingNode{t: t})
	v, err := or.Evaluate(EmptyContext)
	require.NoError(t, err)
	assert.True(t, v.AsBool())
}

// pokingNode fails the test if Evaluate is ever called on it, to assert
// that short-circuiting genuinely skips the right operand.
type pokingNode struct{ t *testing.T }

func (p *pokingNode) Type() Type                                             { return TypeConstant }
func (p *pokingNode) Pos() (int, int)                                        { return 0, 0 }
func (p *pokingNode) ResultValueType(ctx EvalContext) (coltype.Type, error)  { return coltype.Bool, nil }
func (p *pokingNode) ColumnDataType(ctx EvalContext) (coltype.Type, error)   { return coltype.Bool, nil }
func (p *pokingNode) ExpressionText() string                                { return "POKE" }
func (p *pokingNode) Validate(ctx EvalContext) error                        { return nil }
func (p *pokingNode) Evaluate(ctx EvalContext) (variant.Variant, error) {
	p.t.Fatal("right operand evaluated despite short-circuit")
	return variant.Variant{}, nil
}
func (p *pokingNode) Clone() Node                 { return p }
func (p *pokingNode) Equals(other Node) bool      { return p == other }
func (p *pokingNode) SerializedSize() int         { return 0 }
func (p *pokingNode) Serialize(buf *bytes.Buffer) {}
func (p *pokingNode) Dump(depth int) string       { return "POKE" }
