// math/vecmat.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// Point

// Point is a position in the local Cartesian plane: x grows to the east
// and y grows to the north.
type Point [2]float64

func (p Point) X() float64 {
	return p[0]
}

func (p Point) Y() float64 {
	return p[1]
}

// Equal reports whether the two points coincide to within Epsilon in
// each coordinate.
func (p Point) Equal(q Point) bool {
	return Compare(p[0], q[0]) && Compare(p[1], q[1])
}

func (p Point) IsValid() bool {
	return IsValid(p[0]) && IsValid(p[1])
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p[0], p[1])
}

///////////////////////////////////////////////////////////////////////////
// point 2d

// Various useful functions for arithmetic with 2D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// midpoint of a and b
func Mid2(a, b [2]float64) [2]float64 {
	return Scale2(Add2(a, b), 0.5)
}

// a-b
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2(a [2]float64, s float64) [2]float64 {
	return [2]float64{s * a[0], s * a[1]}
}

func Dot(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the z component of the 3D cross product of a and b
// extended with z=0.
func Cross(a, b [2]float64) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Linearly interpolate x of the way between a and b. x==0 corresponds to
// a, x==1 corresponds to b, etc.
func Lerp2(x float64, a, b [2]float64) [2]float64 {
	return [2]float64{(1-x)*a[0] + x*b[0], (1-x)*a[1] + x*b[1]}
}

// Length of v
func Length2(v [2]float64) float64 {
	return gomath.Hypot(v[0], v[1])
}

// Distance between two points
func Distance(a, b Point) float64 {
	return Length2(Sub2(a, b))
}

// Normalizes the given vector.
func Normalize2(a [2]float64) [2]float64 {
	l := Length2(a)
	if l == 0 {
		return [2]float64{0, 0}
	}
	return Scale2(a, 1/l)
}

// PointAt returns the point at the given bearing and range from p.
func PointAt(p Point, bearing, r float64) Point {
	return Add2(p, Scale2(SinCos(bearing), r))
}

// Rotate rotates p clockwise by the given angle about ref.
func Rotate(p Point, angle float64, ref Point) Point {
	s, c := gomath.Sincos(angle)
	v := Sub2(p, ref)
	return Add2(ref, [2]float64{c*v[0] + s*v[1], -s*v[0] + c*v[1]})
}

// IsCoDirectional reports whether stop2 lies on the ray from start
// through stop1, i.e. the two vectors from start are parallel and point
// the same way.
func IsCoDirectional(start, stop1, stop2 Point) bool {
	v1, v2 := Sub2(stop1, start), Sub2(stop2, start)
	l1, l2 := Length2(v1), Length2(v2)
	if IsZero(l1) || IsZero(l2) {
		return false
	}
	return Abs(Cross(v1, v2))/(l1*l2) < Epsilon && Dot(v1, v2) > 0
}

///////////////////////////////////////////////////////////////////////////
// Direction

// Direction is the sense in which a turn is flown. Bearings increase in
// the clockwise direction, so a Right turn sweeps bearings upward and a
// Left turn sweeps them downward.
type Direction int

const (
	Colinear Direction = 0
	Left     Direction = -1
	Right    Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Colinear:
		return "colinear"
	default:
		return "ERROR"
	}
}

// Sign returns +1 for Right, -1 for Left and 0 for Colinear.
func (d Direction) Sign() float64 {
	return float64(d)
}

func (d Direction) Opposite() Direction {
	return -d
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left", "L":
		return Left, nil
	case "right", "R":
		return Right, nil
	}
	return Colinear, fmt.Errorf("%s: invalid direction", s)
}

// Orientation returns the sign of the cross product a x b as a
// Direction. When a is the direction of travel and b is the vector from
// a turn center to the vehicle, the result is the sense of the turn
// about that center.
func Orientation(a, b [2]float64) Direction {
	c := Cross(a, b)
	if c > Epsilon {
		return Right
	} else if c < -Epsilon {
		return Left
	}
	return Colinear
}
