package variant

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsInt64SignExtension(t *testing.T) {
	assert.Equal(t, int64(-1), NewInt8(-1).AsInt64())
	assert.Equal(t, int64(-1), NewInt16(-1).AsInt64())
	assert.Equal(t, int64(-1), NewInt32(-1).AsInt64())
	assert.Equal(t, int64(-1), NewInt64(-1).AsInt64())
	assert.Equal(t, int64(200), NewUInt8(200).AsInt64())
}

func TestAsFloat64NegativeIntegers(t *testing.T) {
	assert.Equal(t, -5.0, NewInt8(-5).AsFloat64())
	assert.Equal(t, -5.0, NewInt64(-5).AsFloat64())
}

func TestArithmeticNullPropagation(t *testing.T) {
	n := NewNull()
	for _, op := range []func() (Variant, error){
		func() (Variant, error) { return n.Add(NewInt32(1)) },
		func() (Variant, error) { return NewInt32(1).Add(n) },
		func() (Variant, error) { return n.Subtract(NewInt32(1)) },
		func() (Variant, error) { return n.Multiply(NewInt32(1)) },
		func() (Variant, error) { return n.Divide(NewInt32(1)) },
		func() (Variant, error) { return n.Modulo(NewInt32(1)) },
		func() (Variant, error) { return n.BitwiseAnd(NewInt32(1)) },
	} {
		v, err := op()
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := NewInt32(1).Divide(NewInt32(0))
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = NewInt32(1).Modulo(NewInt32(0))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestBitwiseWidePrecision(t *testing.T) {
	// exercises values outside float64's 53-bit mantissa exact range
	big := NewInt64(1<<62 + 1)
	v, err := big.BitwiseOr(NewInt64(0))
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62+1), v.AsInt64())

	shifted, err := NewInt64(1).LeftShift(NewInt32(40))
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<40, shifted.AsInt64())
}

func TestArithmeticWidePrecision(t *testing.T) {
	// exercises values outside float64's 53-bit mantissa exact range
	big := NewUInt64(10000000000000001)
	v, err := big.Add(NewUInt64(0))
	require.NoError(t, err)
	assert.Equal(t, uint64(10000000000000001), v.AsUInt64())

	v, err = NewInt64(1 << 62).Subtract(NewInt64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62-1), v.AsInt64())

	v, err = NewUInt64(1 << 63).Divide(NewUInt64(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, v.AsUInt64())

	v, err = NewInt64(1 << 40).Multiply(NewInt64(1 << 22))
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, v.AsInt64())
}

func TestNumericPromotion(t *testing.T) {
	v, err := NewInt32(2).Add(NewDouble(0.5))
	require.NoError(t, err)
	assert.Equal(t, Double, v.Kind())
	assert.Equal(t, 2.5, v.AsFloat64())
}

func TestStringConcatenationViaAdd(t *testing.T) {
	v, err := NewString("foo").Add(NewString("bar"))
	require.NoError(t, err)
	assert.Equal(t, "foobar", v.AsString())

	_, err = NewString("foo").Add(NewInt32(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestConcatenateUsesCanonicalForm(t *testing.T) {
	v, err := NewInt32(1).Concatenate(NewString("x"))
	require.NoError(t, err)
	assert.Equal(t, "1x", v.AsString())
}

func TestCompatibleEqual(t *testing.T) {
	eq, err := NewInt32(1).CompatibleEqual(NewDouble(1.0))
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = NewNull().CompatibleEqual(NewNull())
	require.NoError(t, err)
	assert.False(t, eq, "Null is never equal to anything under CompatibleEqual")

	_, err = NewString("1").CompatibleEqual(NewInt32(1))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestIsSameAs(t *testing.T) {
	assert.True(t, NewNull().IsSameAs(NewNull()))
	assert.False(t, NewNull().IsSameAs(NewInt32(0)))
	assert.False(t, NewInt32(0).IsSameAs(NewNull()))
	assert.True(t, NewInt32(1).IsSameAs(NewDouble(1.0)))
	assert.False(t, NewString("1").IsSameAs(NewInt32(1)))
}

func TestCastRoundTrips(t *testing.T) {
	v, err := NewString("42").Cast(Int32)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.AsInt64())

	v, err = NewInt32(42).Cast(String)
	require.NoError(t, err)
	assert.Equal(t, "42", v.AsString())

	v, err = NewString("2024-01-02 03:04:05").Cast(DateTime)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 03:04:05", v.AsDateTime().String())

	_, err = NewString("not a date").Cast(DateTime)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestCanCastAsDateTime(t *testing.T) {
	assert.True(t, NewString("2024-01-02").CanCastAsDateTime())
	assert.False(t, NewString("nope").CanCastAsDateTime())
	assert.False(t, NewInt32(1).CanCastAsDateTime())
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	cases := []Variant{
		NewNull(),
		NewBool(true),
		NewBool(false),
		NewInt8(-12),
		NewUInt8(250),
		NewInt16(-1000),
		NewUInt16(60000),
		NewInt32(-70000),
		NewUInt32(4000000000),
		NewInt64(-1 << 40),
		NewUInt64(1 << 63),
		NewFloat(3.5),
		NewDouble(2.71828),
		NewString("hello, world"),
		NewBinary([]byte{0x00, 0xff, 0x10}),
		NewDateTime(RawDateTime{HasDate: true, Year: 2024, Month: 1, Day: 2, HasTime: true, Hour: 3, Minute: 4, Second: 5}),
		NewDateTime(RawDateTime{HasDate: true, Year: 1999, Month: 12, Day: 31}),
		NewClob(Handle{ID: 77}),
		NewBlob(Handle{ID: 88}),
	}
	for _, v := range cases {
		var buf bytes.Buffer
		v.Serialize(&buf)
		assert.Equal(t, v.SerializedSize(), buf.Len())

		got, err := Deserialize(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, v.Kind(), got.Kind())
		assert.Equal(t, v.CanonicalString(), got.CanonicalString())
	}
}

func TestDeserializeCorrupt(t *testing.T) {
	_, err := Deserialize(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrCorrupt)

	_, err = Deserialize(bytes.NewReader([]byte{byte(String), 5, 'h', 'i'}))
	assert.ErrorIs(t, err, ErrCorrupt)
}
