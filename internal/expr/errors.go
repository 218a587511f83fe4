package expr

import "errors"

// errCorruptFlag signals an out-of-range (neither 0 nor 1) flag byte during
// deserialization; wrapped into a sqlerr.Error with position by Deserialize.
var errCorruptFlag = errors.New("flag byte out of range")
