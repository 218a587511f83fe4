package variant

import "errors"

// Sentinel errors returned by Variant operations. Variant is a pure value
// type with no knowledge of the positioned sqlerr.Error kind hierarchy;
// callers (expr package) wrap these with position info via errors.Is.
var (
	ErrTypeMismatch    = errors.New("incompatible operand types")
	ErrDivideByZero    = errors.New("division by zero")
	ErrInvalidDateTime = errors.New("invalid date/time format")
	ErrUnsupportedCast = errors.New("unsupported type conversion")
	ErrIntegerRequired = errors.New("integer operand required")
	ErrNumericRequired = errors.New("numeric operand required")
)
