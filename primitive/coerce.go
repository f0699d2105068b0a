package primitive

import (
	"fmt"
	"math"
	"reflect"

	"def-modifier/internal/diagnostic"
)

// ConversionPair is a raw value shape paired with a destination kind.
type ConversionPair struct {
	From RawKind
	To   KindEnum
}

type coerceFunc func(v Value, dst reflect.Type) (reflect.Value, error)

var conversions map[ConversionPair]coerceFunc

func init() {
	conversions = make(map[ConversionPair]coerceFunc)

	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		switch {
		case kind.IsInteger():
			conversions[ConversionPair{RawInt, kind}] = intToInteger
			conversions[ConversionPair{RawFloat, kind}] = floatToInteger
		case kind.IsFloat():
			conversions[ConversionPair{RawInt, kind}] = numberToFloat
			conversions[ConversionPair{RawFloat, kind}] = numberToFloat
		}
	}

	// numeric zero is false, anything else is true
	conversions[ConversionPair{RawBool, KindBool}] = numberToBool
	conversions[ConversionPair{RawInt, KindBool}] = numberToBool
	conversions[ConversionPair{RawFloat, KindBool}] = numberToBool

	conversions[ConversionPair{RawString, KindString}] = func(v Value, dst reflect.Type) (reflect.Value, error) {
		out := reflect.New(dst).Elem()
		out.SetString(v.S)

		return out, nil
	}
}

// Coerce converts v into a value of type dst. The result has exactly type dst,
// so named scalar types are preserved. Every failure wraps diagnostic.ErrCoercion.
func Coerce(v Value, dst reflect.Type) (reflect.Value, error) {
	if !v.IsSet() {
		return reflect.Value{}, fmt.Errorf("%w: no value supplied", diagnostic.ErrCoercion)
	}

	kind := FromReflectType(dst)
	if kind == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s is not a scalar type", diagnostic.ErrCoercion, dst)
	}

	fn, ok := conversions[ConversionPair{v.Kind, kind}]
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s %s into %s", diagnostic.ErrCoercion, v.Kind, v, dst)
	}

	return fn(v, dst)
}

func intToInteger(v Value, dst reflect.Type) (reflect.Value, error) {
	out := reflect.New(dst).Elem()

	if FromReflectType(dst).IsUnsigned() {
		if v.I < 0 || out.OverflowUint(uint64(v.I)) {
			return reflect.Value{}, overflow(v, dst)
		}

		out.SetUint(uint64(v.I))

		return out, nil
	}

	if out.OverflowInt(v.I) {
		return reflect.Value{}, overflow(v, dst)
	}

	out.SetInt(v.I)

	return out, nil
}

func floatToInteger(v Value, dst reflect.Type) (reflect.Value, error) {
	f := v.F
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return reflect.Value{}, fmt.Errorf("%w: %s is not integral, cannot store into %s", diagnostic.ErrCoercion, v, dst)
	}

	if FromReflectType(dst).IsUnsigned() && f >= math.MaxInt64 {
		out := reflect.New(dst).Elem()
		if f >= 1<<64 || out.OverflowUint(uint64(f)) {
			return reflect.Value{}, overflow(v, dst)
		}

		out.SetUint(uint64(f))

		return out, nil
	}

	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return reflect.Value{}, overflow(v, dst)
	}

	return intToInteger(Int(int64(f)), dst)
}

func numberToFloat(v Value, dst reflect.Type) (reflect.Value, error) {
	f := v.F
	if v.Kind == RawInt {
		f = float64(v.I)
	}

	out := reflect.New(dst).Elem()
	if out.OverflowFloat(f) {
		return reflect.Value{}, overflow(v, dst)
	}

	out.SetFloat(f)

	return out, nil
}

func numberToBool(v Value, dst reflect.Type) (reflect.Value, error) {
	var b bool

	switch v.Kind {
	case RawBool:
		b = v.B
	case RawInt:
		b = v.I != 0
	case RawFloat:
		b = v.F != 0
	}

	out := reflect.New(dst).Elem()
	out.SetBool(b)

	return out, nil
}

func overflow(v Value, dst reflect.Type) error {
	return fmt.Errorf("%w: %s overflows %s", diagnostic.ErrCoercion, v, dst)
}
