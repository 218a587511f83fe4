package coltype

import (
	"github.com/sqlcore-engine/sqlfront/internal/sqlerr"
	"github.com/sqlcore-engine/sqlfront/internal/variant"
)

// VariantKindOf returns the variant.Kind a value of column type t is
// represented as at evaluation time, for the partial conversion spec.md
// section 4.2 describes: Text/NText/Xml/Json -> String, Binary -> Binary,
// numeric -> the matching numeric Variant kind, Timestamp/TimestampWithTZ
// -> DateTime. Types the conversion does not cover return ok == false.
func VariantKindOf(t Type) (variant.Kind, bool) {
	switch {
	case t.IsString():
		return variant.String, true
	case t.IsBinary():
		return variant.Binary, true
	case t == Timestamp || t == TimestampWithTZ:
		return variant.DateTime, true
	case t == Bool:
		return variant.Bool, true
	}
	switch t {
	case Int8:
		return variant.Int8, true
	case UInt8:
		return variant.UInt8, true
	case Int16:
		return variant.Int16, true
	case UInt16:
		return variant.UInt16, true
	case Int32:
		return variant.Int32, true
	case UInt32:
		return variant.UInt32, true
	case Int64:
		return variant.Int64, true
	case UInt64:
		return variant.UInt64, true
	case Float:
		return variant.Float, true
	case Double:
		return variant.Double, true
	default:
		return 0, false
	}
}

// ColumnTypeOf is the reverse mapping used when a constant's column type
// must be inferred from the Variant kind that holds it.
func ColumnTypeOf(k variant.Kind) (Type, bool) {
	switch k {
	case variant.Null:
		return Unknown, true
	case variant.Bool:
		return Bool, true
	case variant.Int8:
		return Int8, true
	case variant.UInt8:
		return UInt8, true
	case variant.Int16:
		return Int16, true
	case variant.UInt16:
		return UInt16, true
	case variant.Int32:
		return Int32, true
	case variant.UInt32:
		return UInt32, true
	case variant.Int64:
		return Int64, true
	case variant.UInt64:
		return UInt64, true
	case variant.Float:
		return Float, true
	case variant.Double:
		return Double, true
	case variant.DateTime:
		return Timestamp, true
	case variant.String:
		return Text, true
	case variant.Binary:
		return Binary, true
	default:
		return Unknown, false
	}
}

// ConvertVariant performs the CAST expression's Variant->ColumnDataType
// conversion: it resolves target's Variant kind and delegates to
// variant.Cast, translating an unsupported pairing into the closed
// UnsupportedTypeConversion error kind with the given source position.
func ConvertVariant(v variant.Variant, target Type, line, column int) (variant.Variant, error) {
	kind, ok := VariantKindOf(target)
	if !ok {
		return variant.Variant{}, sqlerr.New(sqlerr.KindUnsupportedTypeConversion, line, column,
			"cannot convert %s to %s", v.Kind(), target)
	}
	out, err := v.Cast(kind)
	if err != nil {
		return variant.Variant{}, sqlerr.Wrap(sqlerr.KindUnsupportedTypeConversion, line, column, err,
			"cannot convert %s to %s", v.Kind(), target)
	}
	return out, nil
}
