// math/core.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the absolute tolerance used for all floating-point
// comparisons of coordinates, distances and angles.
const Epsilon = 1e-6

const (
	Pi      = gomath.Pi
	PiOver2 = gomath.Pi / 2
	TwoPi   = 2 * gomath.Pi
)

// Compare reports whether a and b are equal to within Epsilon.
func Compare(a, b float64) bool {
	return gomath.Abs(a-b) < Epsilon
}

func IsZero(a float64) bool {
	return Compare(a, 0)
}

// LessThanEqual returns a <= b, treating values within Epsilon as equal.
func LessThanEqual(a, b float64) bool {
	return a < b || Compare(a, b)
}

// GreaterThanEqual returns a >= b, treating values within Epsilon as equal.
func GreaterThanEqual(a, b float64) bool {
	return a > b || Compare(a, b)
}

// IsValid returns false for NaN and infinite values.
func IsValid(v float64) bool {
	return !gomath.IsNaN(v) && !gomath.IsInf(v, 0)
}

// Degrees converts an angle expressed in radians to degrees
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

// A handful of wrappers so that callers that import this package as
// "math" don't also need the standard library's.

func Sin(a float64) float64 {
	return gomath.Sin(a)
}

func Cos(a float64) float64 {
	return gomath.Cos(a)
}

func Atan2(y, x float64) float64 {
	return gomath.Atan2(y, x)
}

func Sqrt(a float64) float64 {
	return gomath.Sqrt(a)
}

func Mod(a, b float64) float64 {
	return gomath.Mod(a, b)
}

func Floor(v float64) float64 {
	return gomath.Floor(v)
}

func Inf() float64 {
	return gomath.Inf(1)
}

// SinCos returns the unit vector pointing along the given bearing.
func SinCos(a float64) [2]float64 {
	s, c := gomath.Sincos(a)
	return [2]float64{s, c}
}

func SafeASin(a float64) float64 {
	return gomath.Asin(Clamp(a, -1, 1))
}

// SafeACos clamps its argument to [-1,1] so that values that drift
// slightly out of range through round-off don't give NaN.
func SafeACos(a float64) float64 {
	return gomath.Acos(Clamp(a, -1, 1))
}

func Sign(v float64) float64 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}

// ArgMin returns the index of the minimum of the given values; ties go
// to the earliest index. It returns -1 if v is empty.
func ArgMin[T constraints.Ordered](v ...T) int {
	if len(v) == 0 {
		return -1
	}
	idx := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[idx] {
			idx = i
		}
	}
	return idx
}
