// math/circle.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// Turn circles and tangents

// CenterCircleInLine returns the centers of the two circles of the given
// radius that are tangent to the line at pivot, which should lie on the
// line. The first center is to the left of the line's direction of
// travel and the second is to the right. The returned Boolean is false if
// the radius isn't positive or the line has no direction.
func CenterCircleInLine(line LineSection, pivot Point, radius float64) (Point, Point, bool) {
	if !(radius > 0) || line.IsDegenerate() {
		return Point{}, Point{}, false
	}
	b := line.Bearing()
	return PointAt(pivot, b-PiOver2, radius), PointAt(pivot, b+PiOver2, radius), true
}

// PointInCircle reports whether p is inside or on the circle.
func PointInCircle(c Circle, p Point) bool {
	d2 := Sqr(p[0]-c.Center[0]) + Sqr(p[1]-c.Center[1])
	return LessThanEqual(d2, c.Radius*c.Radius)
}

// Tangent returns the two tangent segments from the circle to the
// external point p; each runs from its tangency point to p. The first
// touches the circle clockwise of the bearing from the center to p and
// the second counter-clockwise. The returned Boolean is false if p is
// inside or on the circle.
func Tangent(c Circle, p Point) (LineSection, LineSection, bool) {
	if PointInCircle(c, p) {
		return LineSection{}, LineSection{}, false
	}
	b := Bearing(c.Center, p)
	d := Distance(c.Center, p)
	da := SafeACos(c.Radius / d)
	return LineSection{Start: PointAt(c.Center, b+da, c.Radius), Stop: p},
		LineSection{Start: PointAt(c.Center, b-da, c.Radius), Stop: p}, true
}

// ScalingTangentOut returns the external tangent between the circles
// that's followed from c1 to c2 when both are flown in the direction dir.
// There is no such tangent if the centers coincide or if one circle lies
// inside the other.
func ScalingTangentOut(c1, c2 Circle, dir Direction) (LineSection, bool) {
	d := Distance(c1.Center, c2.Center)
	dr := c1.Radius - c2.Radius
	if IsZero(d) || Abs(dr) > d {
		return LineSection{}, false
	}

	// Measure from the larger circle toward the smaller so that the
	// construction is stable regardless of the order of the arguments.
	s := sideSign(dir)
	var b float64
	if dr < 0 {
		b = Bearing(c1.Center, c2.Center)
		s = -s
	} else {
		b = Bearing(c2.Center, c1.Center)
	}
	t := b + s*(Pi-SafeACos(Abs(dr)/d))
	return LineSection{
		Start: PointAt(c1.Center, t, c1.Radius),
		Stop:  PointAt(c2.Center, t, c2.Radius),
	}, true
}

// ScalingTangentInboard returns the internal tangent between the
// circles, which crosses the segment joining their centers, that's
// followed from c1 to c2 when c1 is flown in the direction dir and c2 in
// the opposite one. There is no such tangent if the circles overlap.
func ScalingTangentInboard(c1, c2 Circle, dir Direction) (LineSection, bool) {
	d := Distance(c1.Center, c2.Center)
	if IsZero(d) || c1.Radius+c2.Radius > d {
		return LineSection{}, false
	}

	larger := c1.Radius > c2.Radius
	var b float64
	if larger {
		b = Bearing(c2.Center, c1.Center)
	} else {
		b = Bearing(c1.Center, c2.Center)
	}
	t := b + sideSign(dir)*(Pi-SafeACos((c1.Radius+c2.Radius)/d))

	// The tangency points are diametrically opposed with respect to the
	// two centers.
	t1, t2 := t+Pi, t
	if larger {
		t1, t2 = t, t+Pi
	}
	return LineSection{
		Start: PointAt(c1.Center, t1, c1.Radius),
		Stop:  PointAt(c2.Center, t2, c2.Radius),
	}, true
}

func sideSign(dir Direction) float64 {
	if dir == Right {
		return 1
	}
	return -1
}

// LineCircleIntersect returns the points where the segment crosses the
// circle. Zero, one or two points may be returned; when there are two,
// they are ordered along the segment.
func LineCircleIntersect(c Circle, line LineSection) []Point {
	d := Sub2(line.Stop, line.Start)
	f := Sub2(line.Start, c.Center)
	a := Dot(d, d)
	if IsZero(a) {
		return nil
	}
	b := 2 * Dot(f, d)
	cc := Dot(f, f) - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < 0 && !IsZero(disc/a) {
		return nil
	}
	disc = max(disc, 0)

	var pts []Point
	sq := gomath.Sqrt(disc)
	for i, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if i == 1 && IsZero(sq) {
			break
		}
		if GreaterThanEqual(t, 0) && LessThanEqual(t, 1) {
			pts = append(pts, Lerp2(t, line.Start, line.Stop))
		}
	}
	return pts
}

// CircleCircleIntersect returns the points where the two circles cross.
// Zero, one or two points may be returned.
func CircleCircleIntersect(c1, c2 Circle) []Point {
	d := Distance(c1.Center, c2.Center)
	if IsZero(d) {
		return nil
	}
	l := (Sqr(c1.Radius) - Sqr(c2.Radius) + Sqr(d)) / (2 * d)
	h2 := Sqr(c1.Radius) - Sqr(l)
	if h2 < 0 && !IsZero(h2) {
		return nil
	}
	h := gomath.Sqrt(max(h2, 0))

	v := Scale2(Sub2(c2.Center, c1.Center), 1/d)
	base := Add2(c1.Center, Scale2(v, l))
	perp := [2]float64{-v[1], v[0]}
	p0 := Point(Add2(base, Scale2(perp, h)))
	p1 := Point(Sub2(base, Scale2(perp, h)))
	if p0.Equal(p1) {
		return []Point{p0}
	}
	return []Point{p0, p1}
}

///////////////////////////////////////////////////////////////////////////
// Arcs

// ArcSweep returns the angle swept when travelling around the arc from
// its start to stop bearing in the given direction, in [0, 2pi).
func ArcSweep(arc Arc, dir Direction) float64 {
	if BearingsEqual(arc.Start, arc.Stop) {
		return 0
	}
	if dir == Left {
		return NormalizeBearing(arc.Start - arc.Stop)
	}
	return NormalizeBearing(arc.Stop - arc.Start)
}

// arcSign returns the rate of change of the bearing from the center when
// travelling around an arc in the given direction.
func arcSign(dir Direction) float64 {
	if dir == Left {
		return -1
	}
	return 1
}

// ArcLength returns the length of the arc travelled in the given
// direction.
func ArcLength(arc Arc, dir Direction) float64 {
	return ArcSweep(arc, dir) * arc.Radius
}

// PointOnArc returns the point the given distance along the arc from its
// start, travelling in the given direction. The returned Boolean is false
// if the distance is past the end of the arc.
func PointOnArc(arc Arc, dir Direction, distance float64) (Point, bool) {
	if distance > ArcLength(arc, dir) && !Compare(distance, ArcLength(arc, dir)) {
		return Point{}, false
	}
	return PointAt(arc.Center, arc.Start+arcSign(dir)*distance/arc.Radius, arc.Radius), true
}

// ArcMidpoint returns the point halfway along the arc.
func ArcMidpoint(arc Arc, dir Direction) Point {
	return PointAt(arc.Center, arc.Start+arcSign(dir)*ArcSweep(arc, dir)/2, arc.Radius)
}

// BearingOnArc reports whether the bearing b lies within the arc when it
// is swept in the given direction.
func BearingOnArc(arc Arc, dir Direction, b float64) bool {
	sweep := ArcSweep(arc, dir)
	var off float64
	if dir == Left {
		off = NormalizeBearing(arc.Start - b)
	} else {
		off = NormalizeBearing(b - arc.Start)
	}
	return LessThanEqual(off, sweep) || BearingsEqual(b, arc.Start)
}
