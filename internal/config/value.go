package config

import (
	"strconv"
)

// Kind identifies the scalar kind held by a Value.
type Kind uint8

const (
	// KindBool represents a boolean value.
	KindBool Kind = iota
	// KindUint8 represents an unsigned 8-bit integer value.
	KindUint8
	// KindInt32 represents a signed 32-bit integer value.
	KindInt32
	// KindFloat64 represents a double-precision float value.
	KindFloat64
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindUint8:
		return "uint8"
	case KindInt32:
		return "int32"
	case KindFloat64:
		return "float64"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the closed set of scalar kinds. The
// active kind is fixed by the constructor; Set and SetString reassign
// the payload of the same kind, never the kind itself.
//
// Only the payload field matching the active kind is ever written, so
// values compare correctly with ==.
type Value struct {
	kind Kind
	b    bool
	u    uint8
	i    int32
	f    float64
}

// Bool constructs a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Uint8 constructs an unsigned 8-bit integer value.
func Uint8(v uint8) Value { return Value{kind: KindUint8, u: v} }

// Int32 constructs a signed 32-bit integer value.
func Int32(v int32) Value { return Value{kind: KindInt32, i: v} }

// Float64 constructs a double-precision float value.
func Float64(v float64) Value { return Value{kind: KindFloat64, f: v} }

// Kind returns the active kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the active payload in its natural decimal text form.
// Booleans render as "true" or "false".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindUint8:
		return strconv.FormatUint(uint64(v.u), 10)
	case KindInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return ""
	}
}

// AsBool returns the boolean payload. Returns a KindError if the active
// kind is not boolean.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &KindError{Requested: KindBool, Actual: v.kind}
	}
	return v.b, nil
}

// AsUint8 returns the uint8 payload. Returns a KindError if the active
// kind is not uint8.
func (v Value) AsUint8() (uint8, error) {
	if v.kind != KindUint8 {
		return 0, &KindError{Requested: KindUint8, Actual: v.kind}
	}
	return v.u, nil
}

// AsInt32 returns the int32 payload. Returns a KindError if the active
// kind is not int32.
func (v Value) AsInt32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, &KindError{Requested: KindInt32, Actual: v.kind}
	}
	return v.i, nil
}

// AsFloat64 returns the float64 payload. Returns a KindError if the
// active kind is not float64.
func (v Value) AsFloat64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, &KindError{Requested: KindFloat64, Actual: v.kind}
	}
	return v.f, nil
}

// SetString assigns a new payload parsed from text and reports whether
// the text was accepted.
//
// For the boolean kind the new value is true iff text is exactly "1" or
// "true" (case-sensitive); every other text yields false and is still
// accepted. For numeric kinds the text must parse as that kind's
// canonical decimal form; on parse failure the value is left unchanged
// and false is returned.
func (v *Value) SetString(text string) bool {
	switch v.kind {
	case KindBool:
		v.b = text == "1" || text == "true"
		return true
	case KindUint8:
		u, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			return false
		}
		v.u = uint8(u)
		return true
	case KindInt32:
		i, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return false
		}
		v.i = int32(i)
		return true
	case KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return false
		}
		v.f = f
		return true
	default:
		return false
	}
}

// Set overwrites the payload with the given value, converting it to the
// active kind with ordinary numeric conversion rules (a value cast, not
// a parse). Integer inputs convert integer-to-integer, so out-of-range
// values wrap the same way on every platform; float inputs truncate
// toward zero. Strings route through SetString. Dynamic types outside
// the scalar set return ErrUnsupportedType.
func (v *Value) Set(value any) error {
	if s, ok := value.(string); ok {
		v.SetString(s)
		return nil
	}

	switch v.kind {
	case KindBool:
		f, ok := toFloat64(value)
		if !ok {
			return ErrUnsupportedType
		}
		v.b = f != 0
	case KindUint8:
		n, ok := toInt64(value)
		if !ok {
			return ErrUnsupportedType
		}
		v.u = uint8(n)
	case KindInt32:
		n, ok := toInt64(value)
		if !ok {
			return ErrUnsupportedType
		}
		v.i = int32(n)
	case KindFloat64:
		f, ok := toFloat64(value)
		if !ok {
			return ErrUnsupportedType
		}
		v.f = f
	}
	return nil
}

// ConvertBool converts the active payload to a boolean: numeric payloads
// are true when nonzero.
func (v Value) ConvertBool() bool {
	return v.ConvertFloat64() != 0
}

// ConvertInt converts the active payload to an int, truncating floats.
func (v Value) ConvertInt() int {
	return int(v.ConvertFloat64())
}

// ConvertFloat64 converts the active payload to a float64.
func (v Value) ConvertFloat64() float64 {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindUint8:
		return float64(v.u)
	case KindInt32:
		return float64(v.i)
	case KindFloat64:
		return v.f
	default:
		return 0
	}
}

// toInt64 widens any supported scalar to int64 for integer conversion.
// Floats truncate toward zero.
func toInt64(value any) (int64, bool) {
	switch n := value.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// toFloat64 widens any supported scalar to float64 for conversion.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
