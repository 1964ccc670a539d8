// Package stringify renders numeric sequences for the benchmark debug output.
package stringify

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sequence renders values as "{1, 2, 3}". Integers are printed in base 10,
// floating-point values with six decimals.
func Sequence[T Number](values []T) string {
	return string(AppendSequence(nil, values))
}

// AppendSequence appends the rendering of values to dst.
func AppendSequence[T Number](dst []byte, values []T) []byte {
	float, signed := kind[T]()

	dst = append(dst, '{')
	for i, v := range values {
		if i > 0 {
			dst = append(dst, ", "...)
		}

		switch {
		case float:
			dst = strconv.AppendFloat(dst, float64(v), 'f', 6, 64)
		case signed:
			dst = strconv.AppendInt(dst, int64(v), 10)
		default:
			dst = strconv.AppendUint(dst, uint64(v), 10)
		}
	}

	return append(dst, '}')
}

func kind[T Number]() (float, signed bool) {
	half := T(1)
	half /= 2

	var zero T

	return half != 0, zero-1 < zero
}
