package variant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Handle is a non-owning reference to an externally-stored large object
// (Clob/Blob). Its lifetime is managed by the storage engine; Variant only
// carries the opaque identifier.
type Handle struct {
	ID uint64
}

// Variant is a tagged union over the supported SQL value kinds. It is a
// value type: copying a Variant copies its payload (the Go string header
// for String/Binary payloads, which is immutable, makes this cheap and
// safe without extra bookkeeping).
type Variant struct {
	kind   Kind
	bits   uint64 // bool/integer payload, or IEEE-754 bit pattern for Float/Double
	str    string // String or Binary payload
	dt     RawDateTime
	handle Handle
}

func NewNull() Variant                { return Variant{kind: Null} }
func NewBool(v bool) Variant          { return Variant{kind: Bool, bits: boolBits(v)} }
func NewInt8(v int8) Variant          { return Variant{kind: Int8, bits: uint64(uint8(v))} }
func NewUInt8(v uint8) Variant        { return Variant{kind: UInt8, bits: uint64(v)} }
func NewInt16(v int16) Variant        { return Variant{kind: Int16, bits: uint64(uint16(v))} }
func NewUInt16(v uint16) Variant      { return Variant{kind: UInt16, bits: uint64(v)} }
func NewInt32(v int32) Variant        { return Variant{kind: Int32, bits: uint64(uint32(v))} }
func NewUInt32(v uint32) Variant      { return Variant{kind: UInt32, bits: uint64(v)} }
func NewInt64(v int64) Variant        { return Variant{kind: Int64, bits: uint64(v)} }
func NewUInt64(v uint64) Variant      { return Variant{kind: UInt64, bits: v} }
func NewFloat(v float32) Variant      { return Variant{kind: Float, bits: uint64(math.Float32bits(v))} }
func NewDouble(v float64) Variant     { return Variant{kind: Double, bits: math.Float64bits(v)} }
func NewDateTime(v RawDateTime) Variant { return Variant{kind: DateTime, dt: v} }
func NewString(v string) Variant      { return Variant{kind: String, str: v} }
func NewBinary(v []byte) Variant      { return Variant{kind: Binary, str: string(v)} }
func NewClob(h Handle) Variant        { return Variant{kind: Clob, handle: h} }
func NewBlob(h Handle) Variant        { return Variant{kind: Blob, handle: h} }

func boolBits(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

func (v Variant) Kind() Kind  { return v.kind }
func (v Variant) IsNull() bool { return v.kind == Null }

func (v Variant) AsBool() bool    { return v.bits != 0 }
func (v Variant) AsString() string { return v.str }
func (v Variant) AsBinary() []byte { return []byte(v.str) }
func (v Variant) AsDateTime() RawDateTime { return v.dt }
func (v Variant) AsHandle() Handle { return v.handle }

// AsInt64 returns the payload reinterpreted as a signed 64-bit integer,
// sign-extending narrower signed kinds, valid for any integer or Bool kind.
func (v Variant) AsInt64() int64 {
	switch v.kind {
	case Int8:
		return int64(int8(v.bits))
	case Int16:
		return int64(int16(v.bits))
	case Int32:
		return int64(int32(v.bits))
	default:
		return int64(v.bits)
	}
}

// AsUInt64 returns the payload reinterpreted as an unsigned 64-bit integer.
func (v Variant) AsUInt64() uint64 { return v.bits }

// AsFloat64 returns the payload as a double, valid for Float, Double, or
// any integer/Bool kind (widened).
func (v Variant) AsFloat64() float64 {
	switch v.kind {
	case Float:
		return float64(math.Float32frombits(uint32(v.bits)))
	case Double:
		return math.Float64frombits(v.bits)
	case UInt8, UInt16, UInt32, UInt64:
		return float64(v.bits)
	case Bool, Int8, Int16, Int32, Int64:
		return float64(v.AsInt64())
	default:
		return 0
	}
}

// CanonicalString renders any non-Clob/Blob Variant as its canonical
// textual form, used by Concatenate and by string-targeted Cast.
func (v Variant) CanonicalString() string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		if v.AsBool() {
			return "TRUE"
		}
		return "FALSE"
	case Int8, Int16, Int32, Int64:
		return strconv.FormatInt(v.AsInt64(), 10)
	case UInt8, UInt16, UInt32, UInt64:
		return strconv.FormatUint(v.AsUInt64(), 10)
	case Float:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.bits))), 'g', -1, 32)
	case Double:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case DateTime:
		return v.dt.String()
	case String:
		return v.str
	case Binary:
		var b strings.Builder
		b.WriteString("x'")
		for i := 0; i < len(v.str); i++ {
			fmt.Fprintf(&b, "%02x", v.str[i])
		}
		b.WriteByte('\'')
		return b.String()
	default:
		return fmt.Sprintf("<%s handle=%d>", v.kind, v.handle.ID)
	}
}

func (v Variant) String() string { return v.CanonicalString() }
