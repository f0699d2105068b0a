package primitive

import (
	"math"
	"reflect"
	"strconv"
)

//go:generate go tool stringer -type=RawKind -output=raw_kind_string.go

// RawKind tags the shape of a value supplied by a modifier.
type RawKind int

const (
	_ RawKind = iota // zero value marks an absent value

	RawInt
	RawFloat
	RawBool
	RawString
)

// Value is a type-erased scalar as supplied by the author of a modifier.
// The zero Value is absent.
type Value struct {
	Kind RawKind
	I    int64
	F    float64
	B    bool
	S    string
}

// Int returns an integer value.
func Int(i int64) Value { return Value{Kind: RawInt, I: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{Kind: RawFloat, F: f} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: RawBool, B: b} }

// String returns a string value.
func String(s string) Value { return Value{Kind: RawString, S: s} }

// IsSet reports whether the value is present.
func (v Value) IsSet() bool { return v.Kind != 0 }

// IsNumber reports whether the value is an integer or a float.
func (v Value) IsNumber() bool { return v.Kind == RawInt || v.Kind == RawFloat }

// Of wraps a native Go scalar. It returns false for nil and for anything
// that is not an integer, float, bool or string.
func Of(x any) (Value, bool) {
	if x == nil {
		return Value{}, false
	}

	rv := reflect.ValueOf(x)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), true
		}

		return Int(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), true
	case reflect.Bool:
		return Bool(rv.Bool()), true
	case reflect.String:
		return String(rv.String()), true
	default:
		return Value{}, false
	}
}

// MustOf is like Of but panics on unsupported input.
func MustOf(x any) Value {
	v, ok := Of(x)
	if !ok {
		panic("primitive: unsupported raw value " + reflect.TypeOf(x).String())
	}

	return v
}

// Interface returns the value as a native Go scalar, or nil when absent.
func (v Value) Interface() any {
	switch v.Kind {
	case RawInt:
		return v.I
	case RawFloat:
		return v.F
	case RawBool:
		return v.B
	case RawString:
		return v.S
	default:
		return nil
	}
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.Kind {
	case RawInt:
		return strconv.FormatInt(v.I, 10)
	case RawFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case RawBool:
		return strconv.FormatBool(v.B)
	case RawString:
		return strconv.Quote(v.S)
	default:
		return "<unset>"
	}
}
