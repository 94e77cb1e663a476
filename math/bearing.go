// math/bearing.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// bearings

// Bearings are expressed in radians, measured clockwise from the local
// north (+y) axis, and are kept in the range [0, 2pi).

// Bearing returns the bearing from the point |from| to the point |to|.
func Bearing(from, to Point) float64 {
	// Note that atan2() normally measures w.r.t. the +x axis and angles
	// are positive for counter-clockwise. We want to measure w.r.t. +y and
	// to have positive angles be clockwise. Happily, swapping the order of
	// values passed to atan2()--passing (x,y), gives what we want.
	return NormalizeBearing(gomath.Atan2(to[0]-from[0], to[1]-from[1]))
}

// NormalizeBearing reduces the angle to [0, 2pi).
func NormalizeBearing(b float64) float64 {
	b = gomath.Mod(b, TwoPi)
	if b < 0 {
		b += TwoPi
	}
	if b >= TwoPi {
		// -tiny + 2pi can round up to 2pi.
		b = 0
	}
	return b
}

// BearingsEqual reports whether the two bearings are the same direction
// to within Epsilon, taking the wrap at 2pi into account.
func BearingsEqual(a, b float64) bool {
	return BearingDifference(a, b) < Epsilon
}

// BearingDifference returns the minimum difference between two
// bearings. (i.e., the result is always in the range [0,pi].)
func BearingDifference(a, b float64) float64 {
	d := gomath.Abs(NormalizeBearing(a) - NormalizeBearing(b))
	if d > Pi {
		d = TwoPi - d
	}
	return d
}

// BearingSignedTurn returns the angle to turn from |cur| to |target| by
// the shortest way; positive values are clockwise (right) turns. The
// result is in (-pi, pi].
func BearingSignedTurn(cur, target float64) float64 {
	// Rotate so that the target is at pi, which lets us not worry about
	// the wrap around at 0/2pi.
	rot := NormalizeBearing(Pi - target)
	return Pi - NormalizeBearing(cur+rot)
}

// OppositeBearing returns the reciprocal of the given bearing.
func OppositeBearing(b float64) float64 {
	return NormalizeBearing(b + Pi)
}

// Compass converts a bearing into a string corresponding to the closest
// compass direction.
func Compass(b float64) string {
	h := NormalizeBearing(b + Pi/8) // now [0,pi/4] is north, etc...
	idx := int(h / (Pi / 4))
	return [...]string{"North", "Northeast", "East", "Southeast",
		"South", "Southwest", "West", "Northwest"}[idx%8]
}

// ShortCompass converts a bearing into an abbreviated string
// corresponding to the closest compass direction.
func ShortCompass(b float64) string {
	h := NormalizeBearing(b + Pi/8)
	idx := int(h / (Pi / 4))
	return [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[idx%8]
}
