// Package linalg: scalar constraint and the generic math shim.
// Trigonometry and square roots are the only operations that need a
// per-width implementation; everything else in the package is plain
// arithmetic on the type parameter.

package linalg

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar enumerates the coefficient types supported by lvlrot.
//
// The set is exact (no ~): the shim below dispatches on the dynamic type of
// the boxed value, and a named type with a float underlying type would
// otherwise fall through to the float64 branch with a silent precision
// change. Use float32 or float64 directly.
type Scalar interface {
	float32 | float64
}

// Machine epsilons (ulp of 1) per supported scalar width.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// Eps returns the machine epsilon of S: the gap between 1 and the next
// representable value. Used to derive width-appropriate branch tolerances.
func Eps[S Scalar]() S {
	switch any(S(0)).(type) {
	case float32:
		return S(epsilon32)
	default:
		return S(epsilon64)
	}
}

// Sqrt returns √x at the precision of S.
func Sqrt[S Scalar](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Sqrt(v))
	default:
		return S(math.Sqrt(float64(x)))
	}
}

// Sin returns sin(x) at the precision of S.
func Sin[S Scalar](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Sin(v))
	default:
		return S(math.Sin(float64(x)))
	}
}

// Cos returns cos(x) at the precision of S.
func Cos[S Scalar](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Cos(v))
	default:
		return S(math.Cos(float64(x)))
	}
}

// Asin returns arcsin(x) at the precision of S. The argument must already be
// clamped to [-1, 1]; see Clamp.
func Asin[S Scalar](x S) S {
	switch v := any(x).(type) {
	case float32:
		return S(math32.Asin(v))
	default:
		return S(math.Asin(float64(x)))
	}
}

// Atan2 returns atan2(y, x) at the precision of S.
func Atan2[S Scalar](y, x S) S {
	switch v := any(y).(type) {
	case float32:
		return S(math32.Atan2(v, float32(x)))
	default:
		return S(math.Atan2(float64(y), float64(x)))
	}
}

// Abs returns |x|.
func Abs[S Scalar](x S) S {
	if x < 0 {
		return -x
	}

	return x
}

// Clamp limits x to the closed interval [lo, hi].
// Callers must ensure lo ≤ hi.
func Clamp[S Scalar](x, lo, hi S) S {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
