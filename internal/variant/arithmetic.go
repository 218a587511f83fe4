package variant

// numericRank orders numeric kinds from narrowest to widest so that
// "promote to the widest operand" (spec.md section 3.1) is a simple max.
var numericRank = map[Kind]int{
	Int8: 1, UInt8: 2,
	Int16: 3, UInt16: 4,
	Int32: 5, UInt32: 6,
	Int64: 7, UInt64: 8,
	Float: 9, Double: 10,
}

func numericResultKind(a, b Kind) Kind {
	ra, rb := numericRank[a], numericRank[b]
	if ra >= rb {
		return a
	}
	return b
}

func promote(a, b Variant) (float64, float64, Kind) {
	result := numericResultKind(a.kind, b.kind)
	return a.AsFloat64(), b.AsFloat64(), result
}

// fromInt64 builds a Variant of kind k from a signed 64-bit value without
// going through a float64 intermediate, so 64-bit bitwise/shift/modulo
// results are not subject to float64's 53-bit mantissa.
func fromInt64(k Kind, n int64) Variant {
	switch k {
	case Int8:
		return NewInt8(int8(n))
	case UInt8:
		return NewUInt8(uint8(n))
	case Int16:
		return NewInt16(int16(n))
	case UInt16:
		return NewUInt16(uint16(n))
	case Int32:
		return NewInt32(int32(n))
	case UInt32:
		return NewUInt32(uint32(n))
	case Int64:
		return NewInt64(n)
	case UInt64:
		return NewUInt64(uint64(n))
	default:
		return NewInt64(n)
	}
}

// fromUint64 builds a Variant of kind k from an unsigned 64-bit value
// without going through a float64 intermediate. Unlike fromInt64, this is
// the path that can actually hold the top half of UInt64's range, which an
// int64 intermediate would wrap around.
func fromUint64(k Kind, n uint64) Variant {
	switch k {
	case Int8:
		return NewInt8(int8(n))
	case UInt8:
		return NewUInt8(uint8(n))
	case Int16:
		return NewInt16(int16(n))
	case UInt16:
		return NewUInt16(uint16(n))
	case Int32:
		return NewInt32(int32(n))
	case UInt32:
		return NewUInt32(uint32(n))
	case Int64:
		return NewInt64(int64(n))
	case UInt64:
		return NewUInt64(n)
	default:
		return NewUInt64(n)
	}
}

func fromFloat(k Kind, f float64) Variant {
	switch k {
	case Int8:
		return NewInt8(int8(f))
	case UInt8:
		return NewUInt8(uint8(f))
	case Int16:
		return NewInt16(int16(f))
	case UInt16:
		return NewUInt16(uint16(f))
	case Int32:
		return NewInt32(int32(f))
	case UInt32:
		return NewUInt32(uint32(f))
	case Int64:
		return NewInt64(int64(f))
	case UInt64:
		return NewUInt64(uint64(f))
	case Float:
		return NewFloat(float32(f))
	default:
		return NewDouble(f)
	}
}

// arithmetic computes a numeric binary op at the precision its result kind
// needs: floatOp for a Float/Double result, otherwise signedOp/unsignedOp
// over the exact integer payloads (unsignedOp for a UInt64 result, since
// that is the one kind an int64 intermediate cannot hold in full), so
// integer operands never round-trip through float64's 53-bit mantissa.
func (v Variant) arithmetic(other Variant, floatOp func(a, b float64) float64, signedOp func(a, b int64) int64, unsignedOp func(a, b uint64) uint64) (Variant, error) {
	if v.kind == Null || other.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsNumeric() || !other.kind.IsNumeric() {
		return Variant{}, ErrNumericRequired
	}
	k := numericResultKind(v.kind, other.kind)
	if k == Float || k == Double {
		return fromFloat(k, floatOp(v.AsFloat64(), other.AsFloat64())), nil
	}
	if k == UInt64 {
		return fromUint64(k, unsignedOp(v.AsUInt64(), other.AsUInt64())), nil
	}
	return fromInt64(k, signedOp(v.AsInt64(), other.AsInt64())), nil
}

// Add implements SQL "+": numeric promotion, string concatenation when
// both sides are String, and a type error for mixed string/numeric.
func (v Variant) Add(other Variant) (Variant, error) {
	if v.kind == Null || other.kind == Null {
		return NewNull(), nil
	}
	if v.kind == String && other.kind == String {
		return NewString(v.str + other.str), nil
	}
	if !v.kind.IsNumeric() || !other.kind.IsNumeric() {
		return Variant{}, ErrTypeMismatch
	}
	return v.arithmetic(other,
		func(a, b float64) float64 { return a + b },
		func(a, b int64) int64 { return a + b },
		func(a, b uint64) uint64 { return a + b },
	)
}

func (v Variant) Subtract(other Variant) (Variant, error) {
	return v.arithmetic(other,
		func(a, b float64) float64 { return a - b },
		func(a, b int64) int64 { return a - b },
		func(a, b uint64) uint64 { return a - b },
	)
}

func (v Variant) Multiply(other Variant) (Variant, error) {
	return v.arithmetic(other,
		func(a, b float64) float64 { return a * b },
		func(a, b int64) int64 { return a * b },
		func(a, b uint64) uint64 { return a * b },
	)
}

func (v Variant) Divide(other Variant) (Variant, error) {
	if v.kind == Null || other.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsNumeric() || !other.kind.IsNumeric() {
		return Variant{}, ErrNumericRequired
	}
	k := numericResultKind(v.kind, other.kind)
	if k == Float || k == Double {
		b := other.AsFloat64()
		if b == 0 {
			return Variant{}, ErrDivideByZero
		}
		return fromFloat(k, v.AsFloat64()/b), nil
	}
	if k == UInt64 {
		b := other.AsUInt64()
		if b == 0 {
			return Variant{}, ErrDivideByZero
		}
		return fromUint64(k, v.AsUInt64()/b), nil
	}
	b := other.AsInt64()
	if b == 0 {
		return Variant{}, ErrDivideByZero
	}
	return fromInt64(k, v.AsInt64()/b), nil
}

func (v Variant) Modulo(other Variant) (Variant, error) {
	if v.kind == Null || other.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsInteger() || !other.kind.IsInteger() {
		return Variant{}, ErrIntegerRequired
	}
	bv := other.AsInt64()
	if bv == 0 {
		return Variant{}, ErrDivideByZero
	}
	k := numericResultKind(v.kind, other.kind)
	return fromInt64(k, v.AsInt64()%bv), nil
}

// Concatenate converts both sides to their canonical string form and joins
// them; unlike Add it never numerically adds, per spec.md section 4.1.
func (v Variant) Concatenate(other Variant) (Variant, error) {
	if v.kind == Null || other.kind == Null {
		return NewNull(), nil
	}
	return NewString(v.CanonicalString() + other.CanonicalString()), nil
}

func (v Variant) bitwise(other Variant, op func(a, b int64) int64) (Variant, error) {
	if v.kind == Null || other.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsInteger() || !other.kind.IsInteger() {
		return Variant{}, ErrIntegerRequired
	}
	k := numericResultKind(v.kind, other.kind)
	return fromInt64(k, op(v.AsInt64(), other.AsInt64())), nil
}

func (v Variant) BitwiseAnd(other Variant) (Variant, error) {
	return v.bitwise(other, func(a, b int64) int64 { return a & b })
}

func (v Variant) BitwiseOr(other Variant) (Variant, error) {
	return v.bitwise(other, func(a, b int64) int64 { return a | b })
}

func (v Variant) BitwiseXor(other Variant) (Variant, error) {
	return v.bitwise(other, func(a, b int64) int64 { return a ^ b })
}

func (v Variant) LeftShift(other Variant) (Variant, error) {
	return v.bitwise(other, func(a, b int64) int64 { return a << uint(b) })
}

func (v Variant) RightShift(other Variant) (Variant, error) {
	return v.bitwise(other, func(a, b int64) int64 { return a >> uint(b) })
}

// UnaryMinus negates a numeric operand; Null propagates.
func (v Variant) UnaryMinus() (Variant, error) {
	if v.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsNumeric() {
		return Variant{}, ErrNumericRequired
	}
	return fromFloat(v.kind, -v.AsFloat64()), nil
}

// UnaryPlus type-checks that the operand is numeric and returns it as-is.
func (v Variant) UnaryPlus() (Variant, error) {
	if v.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsNumeric() {
		return Variant{}, ErrNumericRequired
	}
	return v, nil
}

// LogicalNot negates a Bool operand; Null propagates.
func (v Variant) LogicalNot() (Variant, error) {
	if v.kind == Null {
		return NewNull(), nil
	}
	if v.kind != Bool {
		return Variant{}, ErrTypeMismatch
	}
	return NewBool(!v.AsBool()), nil
}

// BitwiseComplement computes ~v for an integer operand; Null propagates.
func (v Variant) BitwiseComplement() (Variant, error) {
	if v.kind == Null {
		return NewNull(), nil
	}
	if !v.kind.IsInteger() {
		return Variant{}, ErrIntegerRequired
	}
	return fromInt64(v.kind, ^v.AsInt64()), nil
}
