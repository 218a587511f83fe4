package variant

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Deserialize when the buffer does not contain a
// well-formed Variant (unknown kind tag, truncated payload, ...).
var ErrCorrupt = errors.New("corrupt variant payload")

const (
	dtHasDate = 1 << 0
	dtHasTime = 1 << 1
)

// Serialize appends v's self-describing binary form to buf: a var-int kind
// tag followed by a kind-specific payload (spec.md section 3.1/6.2).
// Integers use var-int, floats use IEEE-754 little-endian, and
// string/binary payloads are var-int length prefixed.
func (v Variant) Serialize(buf *bytes.Buffer) {
	writeUvarint(buf, uint64(v.kind))
	switch v.kind {
	case Null:
		// no payload
	case Bool:
		buf.WriteByte(byte(v.bits))
	case Int8, Int16, Int32, Int64:
		writeVarint(buf, v.AsInt64())
	case UInt8, UInt16, UInt32, UInt64:
		writeUvarint(buf, v.bits)
	case Float:
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(v.bits))
		buf.Write(tmp[:])
	case Double:
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], v.bits)
		buf.Write(tmp[:])
	case DateTime:
		var flags byte
		if v.dt.HasDate {
			flags |= dtHasDate
		}
		if v.dt.HasTime {
			flags |= dtHasTime
		}
		buf.WriteByte(flags)
		if v.dt.HasDate {
			writeVarint(buf, int64(v.dt.Year))
			buf.WriteByte(byte(v.dt.Month))
			buf.WriteByte(byte(v.dt.Day))
		}
		if v.dt.HasTime {
			buf.WriteByte(byte(v.dt.Hour))
			buf.WriteByte(byte(v.dt.Minute))
			buf.WriteByte(byte(v.dt.Second))
		}
	case String, Binary:
		writeUvarint(buf, uint64(len(v.str)))
		buf.WriteString(v.str)
	case Clob, Blob:
		writeUvarint(buf, v.handle.ID)
	}
}

// SerializedSize returns the exact number of bytes Serialize will write,
// so callers can pre-size buffers (spec.md section 4.3).
func (v Variant) SerializedSize() int {
	n := uvarintLen(uint64(v.kind))
	switch v.kind {
	case Null:
	case Bool:
		n += 1
	case Int8, Int16, Int32, Int64:
		n += varintLen(v.AsInt64())
	case UInt8, UInt16, UInt32, UInt64:
		n += uvarintLen(v.bits)
	case Float:
		n += 4
	case Double:
		n += 8
	case DateTime:
		n++
		if v.dt.HasDate {
			n += varintLen(int64(v.dt.Year)) + 2
		}
		if v.dt.HasTime {
			n += 3
		}
	case String, Binary:
		n += uvarintLen(uint64(len(v.str))) + len(v.str)
	case Clob, Blob:
		n += uvarintLen(v.handle.ID)
	}
	return n
}

// Deserialize reads one Variant from r, mirroring Serialize exactly. An
// unrecognized kind tag or truncated payload returns ErrCorrupt.
func Deserialize(r *bytes.Reader) (Variant, error) {
	tag, err := binary.ReadUvarint(r)
	if err != nil {
		return Variant{}, ErrCorrupt
	}
	k := Kind(tag)
	switch k {
	case Null:
		return NewNull(), nil
	case Bool:
		b, err := r.ReadByte()
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewBool(b != 0), nil
	case Int8:
		n, err := binary.ReadVarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewInt8(int8(n)), nil
	case Int16:
		n, err := binary.ReadVarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewInt16(int16(n)), nil
	case Int32:
		n, err := binary.ReadVarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewInt32(int32(n)), nil
	case Int64:
		n, err := binary.ReadVarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewInt64(n), nil
	case UInt8:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewUInt8(uint8(n)), nil
	case UInt16:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewUInt16(uint16(n)), nil
	case UInt32:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewUInt32(uint32(n)), nil
	case UInt64:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		return NewUInt64(n), nil
	case Float:
		var tmp [4]byte
		if _, err := readFull(r, tmp[:]); err != nil {
			return Variant{}, ErrCorrupt
		}
		bits := binary.LittleEndian.Uint32(tmp[:])
		return Variant{kind: Float, bits: uint64(bits)}, nil
	case Double:
		var tmp [8]byte
		if _, err := readFull(r, tmp[:]); err != nil {
			return Variant{}, ErrCorrupt
		}
		return Variant{kind: Double, bits: binary.LittleEndian.Uint64(tmp[:])}, nil
	case DateTime:
		flags, err := r.ReadByte()
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		var dt RawDateTime
		if flags&dtHasDate != 0 {
			year, err := binary.ReadVarint(r)
			if err != nil {
				return Variant{}, ErrCorrupt
			}
			month, err := r.ReadByte()
			if err != nil {
				return Variant{}, ErrCorrupt
			}
			day, err := r.ReadByte()
			if err != nil {
				return Variant{}, ErrCorrupt
			}
			dt.HasDate = true
			dt.Year, dt.Month, dt.Day = int(year), int(month), int(day)
		}
		if flags&dtHasTime != 0 {
			hour, err := r.ReadByte()
			if err != nil {
				return Variant{}, ErrCorrupt
			}
			minute, err := r.ReadByte()
			if err != nil {
				return Variant{}, ErrCorrupt
			}
			second, err := r.ReadByte()
			if err != nil {
				return Variant{}, ErrCorrupt
			}
			dt.HasTime = true
			dt.Hour, dt.Minute, dt.Second = int(hour), int(minute), int(second)
		}
		return NewDateTime(dt), nil
	case String, Binary:
		length, err := binary.ReadUvarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		payload := make([]byte, length)
		if _, err := readFull(r, payload); err != nil {
			return Variant{}, ErrCorrupt
		}
		if k == String {
			return NewString(string(payload)), nil
		}
		return NewBinary(payload), nil
	case Clob, Blob:
		id, err := binary.ReadUvarint(r)
		if err != nil {
			return Variant{}, ErrCorrupt
		}
		if k == Clob {
			return NewClob(Handle{ID: id}), nil
		}
		return NewBlob(Handle{ID: id}), nil
	default:
		return Variant{}, fmt.Errorf("%w: unknown kind tag %d", ErrCorrupt, tag)
	}
}

func readFull(r *bytes.Reader, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := r.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func writeVarint(buf *bytes.Buffer, v int64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutVarint(tmp[:], v)
	buf.Write(tmp[:n])
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

func varintLen(v int64) int {
	var ux uint64
	if v < 0 {
		ux = ^(uint64(v) << 1)
	} else {
		ux = uint64(v) << 1
	}
	return uvarintLen(ux)
}
