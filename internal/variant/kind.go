// Package variant implements the dynamically-typed value (Variant) that
// flows through expression evaluation, and its DateTime payload
// (RawDateTime). See spec.md section 3.1 and section 4.1.
package variant

// Kind is the tag of a Variant's active member. The numeric order here is
// not the wire-format discriminant order for expressions (see expr.Type for
// that); it only needs to be internally stable.
type Kind uint8

const (
	Null Kind = iota
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
	DateTime
	String
	Binary
	Clob
	Blob
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "NULL"
	case Bool:
		return "BOOL"
	case Int8:
		return "INT8"
	case UInt8:
		return "UINT8"
	case Int16:
		return "INT16"
	case UInt16:
		return "UINT16"
	case Int32:
		return "INT32"
	case UInt32:
		return "UINT32"
	case Int64:
		return "INT64"
	case UInt64:
		return "UINT64"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case DateTime:
		return "DATETIME"
	case String:
		return "STRING"
	case Binary:
		return "BINARY"
	case Clob:
		return "CLOB"
	case Blob:
		return "BLOB"
	default:
		return "UNKNOWN"
	}
}

// IsNumeric reports whether k is one of the integer or floating kinds.
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k == Float || k == Double
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k Kind) IsInteger() bool {
	switch k {
	case Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether k is one of the unsigned integer kinds.
func (k Kind) IsUnsigned() bool {
	switch k {
	case UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

// width ranks kinds by storage width within a signedness class. Numeric
// promotion does not call it; it ranks operands with numericRank
// (arithmetic.go). Kinds not compared for width (Null, Bool, String, ...)
// return 0.
func (k Kind) width() int {
	switch k {
	case Int8, UInt8:
		return 1
	case Int16, UInt16:
		return 2
	case Int32, UInt32:
		return 4
	case Int64, UInt64:
		return 8
	case Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}
