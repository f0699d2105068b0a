package primitive_test

import (
	"fmt"
	"reflect"
	"time"

	"def-modifier/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(float32(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf([]int{})))
	// Output:
	// KindInt
	// KindString
	// KindInt
	// KindString
	// KindInt64
	// KindFloat32
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleCoerce() {
	for _, tc := range []struct {
		raw primitive.Value
		dst reflect.Type
	}{
		{primitive.Int(5), reflect.TypeFor[int]()},
		{primitive.Float(50), reflect.TypeFor[int8]()},
		{primitive.Int(10), reflect.TypeFor[float64]()},
		{primitive.Int(1), reflect.TypeFor[bool]()},
		{primitive.Float(0), reflect.TypeFor[bool]()},
		{primitive.String("bar"), reflect.TypeFor[string]()},
		{primitive.String("bar"), reflect.TypeFor[int]()},
		{primitive.Float(1.5), reflect.TypeFor[int]()},
	} {
		out, err := primitive.Coerce(tc.raw, tc.dst)
		if err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Println(out.Type(), out.Interface())
	}
	// Output:
	// int 5
	// int8 50
	// float64 10
	// bool true
	// bool false
	// string bar
	// cannot coerce value: RawString "bar" into int
	// cannot coerce value: 1.5 is not integral, cannot store into int
}
