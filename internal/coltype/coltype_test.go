package coltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

func TestLookupAliases(t *testing.T) {
	cases := map[string]Type{
		"INT":      Int32,
		"INTEGER":  Int32,
		"BIGINT":   Int64,
		"VARCHAR":  Text,
		"BLOB":     Binary,
		"DATETIME": Timestamp,
		"BOOLEAN":  Bool,
	}
	for name, want := range cases {
		got, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := Lookup("NOT_A_TYPE")
	assert.False(t, ok)
}

func TestCanonicalNameRoundTrip(t *testing.T) {
	for _, ty := range []Type{Int32, Int64, Text, Binary, Timestamp, Bool, Json} {
		name := ty.String()
		got, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, ty, got)
	}
}

func TestTypeClassPredicates(t *testing.T) {
	assert.True(t, Int32.IsNumeric())
	assert.True(t, Int32.IsInteger())
	assert.False(t, Int32.IsUnsignedInteger())
	assert.True(t, UInt32.IsUnsignedInteger())
	assert.True(t, Double.IsFloatingPoint())
	assert.True(t, Timestamp.IsDateTime())
	assert.True(t, Text.IsString())
	assert.True(t, Binary.IsBinary())
	assert.True(t, Bool.IsBoolean())
	assert.True(t, Unknown.IsNull())
}

func TestGetNumericResultType(t *testing.T) {
	assert.Equal(t, Int32, GetNumericResultType(Int8, Int16))
	assert.Equal(t, Int64, GetNumericResultType(Int32, Int64))
	assert.Equal(t, Double, GetNumericResultType(Float, Double))
	assert.Equal(t, Int32, GetNumericResultType(UInt8, UInt8))
}

func TestConvertVariant(t *testing.T) {
	v, err := ConvertVariant(variant.NewString("42"), Int32, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.AsInt64())

	_, err = ConvertVariant(variant.NewInt32(1), Struct, 1, 1)
	require.Error(t, err)
}
