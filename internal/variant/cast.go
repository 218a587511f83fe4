package variant

import (
	"strconv"
	"strings"
)

// Cast converts v to the given target Kind following the partial
// Variant<->ColumnDataType conversion rules of spec.md section 4.2:
// Text<->String, Binary<->Binary, numeric<->numeric, Timestamp<->DateTime.
// Null casts to Null regardless of target. Unsupported pairs return
// ErrUnsupportedCast; a target of DateTime that fails to parse returns
// ErrInvalidDateTime.
func (v Variant) Cast(target Kind) (Variant, error) {
	if v.kind == Null {
		return NewNull(), nil
	}
	if v.kind == target {
		return v, nil
	}
	switch target {
	case Bool:
		return v.castToBool()
	case Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64, Float, Double:
		return v.castToNumeric(target)
	case String:
		return NewString(v.CanonicalString()), nil
	case Binary:
		if v.kind == Binary {
			return v, nil
		}
		return Variant{}, ErrUnsupportedCast
	case DateTime:
		return v.castToDateTime()
	default:
		return Variant{}, ErrUnsupportedCast
	}
}

func (v Variant) castToBool() (Variant, error) {
	switch v.kind {
	case Bool:
		return v, nil
	case String:
		switch strings.ToUpper(strings.TrimSpace(v.str)) {
		case "TRUE", "1":
			return NewBool(true), nil
		case "FALSE", "0":
			return NewBool(false), nil
		default:
			return Variant{}, ErrUnsupportedCast
		}
	default:
		if v.kind.IsNumeric() {
			return NewBool(v.AsFloat64() != 0), nil
		}
		return Variant{}, ErrUnsupportedCast
	}
}

func (v Variant) castToNumeric(target Kind) (Variant, error) {
	switch {
	case v.kind.IsNumeric():
		return fromFloat(target, v.AsFloat64()), nil
	case v.kind == Bool:
		if v.AsBool() {
			return fromFloat(target, 1), nil
		}
		return fromFloat(target, 0), nil
	case v.kind == String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return Variant{}, ErrUnsupportedCast
		}
		return fromFloat(target, f), nil
	default:
		return Variant{}, ErrUnsupportedCast
	}
}

func (v Variant) castToDateTime() (Variant, error) {
	switch v.kind {
	case DateTime:
		return v, nil
	case String:
		dt, ok := ParseRawDateTime(v.str)
		if !ok {
			return Variant{}, ErrInvalidDateTime
		}
		return NewDateTime(dt), nil
	default:
		return Variant{}, ErrUnsupportedCast
	}
}

// CanCastAsDateTime reports whether v already is a DateTime or is a string
// whose text parses as one, per spec.md section 4.3's canCastAsDateTime.
func (v Variant) CanCastAsDateTime() bool {
	switch v.kind {
	case DateTime:
		return true
	case String:
		_, ok := ParseRawDateTime(v.str)
		return ok
	default:
		return false
	}
}
