// Package coltype implements the closed ColumnDataType registry: the SQL
// column types a CREATE TABLE / ALTER COLUMN clause can name, their aliases,
// their canonical textual form, and the pure type-class predicates and
// promotion rule the expression tree relies on (spec.md section 3.2/4.2).
package coltype

import "strings"

// Type is one member of the closed column-type enumeration. The order is
// significant for numeric promotion: within a signedness class, wider kinds
// have larger values.
type Type uint8

const (
	Unknown Type = iota
	Bool
	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Float
	Double
	Text
	NText
	Binary
	Date
	Time
	TimeWithTZ
	Timestamp
	TimestampWithTZ
	DateInterval
	TimeInterval
	Struct
	Xml
	Json
	Uuid
)

var canonicalNames = map[Type]string{
	Unknown:         "UNKNOWN",
	Bool:            "BOOL",
	Int8:            "INT8",
	UInt8:           "UINT8",
	Int16:           "INT16",
	UInt16:          "UINT16",
	Int32:           "INT32",
	UInt32:          "UINT32",
	Int64:           "INT64",
	UInt64:          "UINT64",
	Float:           "FLOAT",
	Double:          "DOUBLE",
	Text:            "TEXT",
	NText:           "NTEXT",
	Binary:          "BINARY",
	Date:            "DATE",
	Time:            "TIME",
	TimeWithTZ:      "TIME WITH TIME ZONE",
	Timestamp:       "TIMESTAMP",
	TimestampWithTZ: "TIMESTAMP WITH TIME ZONE",
	DateInterval:    "DATE INTERVAL",
	TimeInterval:    "TIME INTERVAL",
	Struct:          "STRUCT",
	Xml:             "XML",
	Json:            "JSON",
	Uuid:            "UUID",
}

// String returns t's canonical uppercase name, used both for display and as
// the reverse of Lookup.
func (t Type) String() string {
	if name, ok := canonicalNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// aliases maps every recognized spelling (including the canonical name
// itself) to its Type, for CREATE TABLE / ALTER COLUMN parsing.
var aliases = buildAliasMap()

func buildAliasMap() map[string]Type {
	m := map[string]Type{}
	add := func(t Type, names ...string) {
		for _, n := range names {
			m[n] = t
		}
	}
	for t, name := range canonicalNames {
		m[name] = t
	}
	add(Bool, "BOOLEAN")
	add(Int8, "TINYINT")
	add(UInt8, "TINYINT UNSIGNED")
	add(Int16, "SMALLINT")
	add(UInt16, "SMALLINT UNSIGNED")
	add(Int32, "INT", "INTEGER")
	add(UInt32, "INT UNSIGNED", "INTEGER UNSIGNED")
	add(Int64, "BIGINT")
	add(UInt64, "BIGINT UNSIGNED")
	add(Float, "REAL")
	add(Double, "DOUBLE PRECISION")
	add(Text, "VARCHAR", "CHAR", "CHARACTER", "CLOB", "STRING")
	add(NText, "NVARCHAR", "NCHAR")
	add(Binary, "VARBINARY", "BLOB", "BYTEA")
	add(Timestamp, "DATETIME")
	return m
}

// Lookup resolves an uppercase textual type name (including aliases) to its
// canonical Type. The name must already be uppercased by the caller, as
// SQL identifiers and keywords are canonicalized before reaching this
// package (see internal/reqfactory).
func Lookup(name string) (Type, bool) {
	t, ok := aliases[strings.TrimSpace(name)]
	return t, ok
}

// IsNumeric reports whether t is an integer or floating-point type.
func (t Type) IsNumeric() bool {
	return t.IsInteger() || t == Float || t == Double
}

// IsInteger reports whether t is a signed or unsigned integer type.
func (t Type) IsInteger() bool {
	switch t {
	case Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64:
		return true
	default:
		return false
	}
}

// IsUnsignedInteger reports whether t is one of the unsigned integer types.
func (t Type) IsUnsignedInteger() bool {
	switch t {
	case UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether t is a signed integer or floating-point type —
// every numeric type except the unsigned integers.
func (t Type) IsSigned() bool {
	return t.IsNumeric() && !t.IsUnsignedInteger()
}

// IsFloatingPoint reports whether t is Float or Double.
func (t Type) IsFloatingPoint() bool {
	return t == Float || t == Double
}

// IsDateTime reports whether t carries a date and/or time component.
func (t Type) IsDateTime() bool {
	switch t {
	case Date, Time, TimeWithTZ, Timestamp, TimestampWithTZ, DateInterval, TimeInterval:
		return true
	default:
		return false
	}
}

// IsString reports whether t is a textual type.
func (t Type) IsString() bool {
	switch t {
	case Text, NText, Xml, Json:
		return true
	default:
		return false
	}
}

// IsBinary reports whether t stores raw bytes.
func (t Type) IsBinary() bool {
	return t == Binary
}

// IsBoolean reports whether t is Bool.
func (t Type) IsBoolean() bool {
	return t == Bool
}

// IsNull reports whether t is the absence of a declared type (Unknown is
// used for untyped contexts such as a bare NULL literal).
func (t Type) IsNull() bool {
	return t == Unknown
}

// numericRank orders numeric types from narrowest to widest, mirroring
// variant.numericRank: promotion picks the widest of two operands.
var numericRank = map[Type]int{
	Int8: 1, UInt8: 2,
	Int16: 3, UInt16: 4,
	Int32: 5, UInt32: 6,
	Int64: 7, UInt64: 8,
	Float: 9, Double: 10,
}

// GetNumericResultType implements getNumericResultType(a, b) = max(a, b,
// Int32) from spec.md section 4.2: the result of a numeric operation is
// never narrower than Int32, even when both operands are narrower.
func GetNumericResultType(a, b Type) Type {
	result := Int32
	for _, t := range []Type{a, b} {
		if numericRank[t] > numericRank[result] {
			result = t
		}
	}
	return result
}
