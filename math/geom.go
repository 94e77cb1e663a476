// math/geom.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

///////////////////////////////////////////////////////////////////////////
// Shapes

// Circle represents a turn of fixed radius about its center.
type Circle struct {
	Center Point   `msgpack:"c"`
	Radius float64 `msgpack:"r"`
}

func (c Circle) Equal(o Circle) bool {
	return c.Center.Equal(o.Center) && Compare(c.Radius, o.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle %s r=%.6f", c.Center, c.Radius)
}

// Arc is a portion of a circle between the Start and Stop bearings,
// measured from the center. The bearings don't say which way around the
// circle the arc runs; that is carried separately by a Direction.
type Arc struct {
	Center Point   `msgpack:"c"`
	Radius float64 `msgpack:"r"`
	Start  float64 `msgpack:"s"`
	Stop   float64 `msgpack:"e"`
}

// MakeArc returns an Arc with both bearings normalized.
func MakeArc(center Point, radius, start, stop float64) Arc {
	return Arc{
		Center: center,
		Radius: radius,
		Start:  NormalizeBearing(start),
		Stop:   NormalizeBearing(stop),
	}
}

func (a Arc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}

// StartPoint returns the point on the circle at the Start bearing.
func (a Arc) StartPoint() Point {
	return PointAt(a.Center, a.Start, a.Radius)
}

// StopPoint returns the point on the circle at the Stop bearing.
func (a Arc) StopPoint() Point {
	return PointAt(a.Center, a.Stop, a.Radius)
}

// Reverse returns the arc with its bearings swapped.
func (a Arc) Reverse() Arc {
	a.Start, a.Stop = a.Stop, a.Start
	return a
}

func (a Arc) Equal(o Arc) bool {
	return a.Center.Equal(o.Center) && Compare(a.Radius, o.Radius) &&
		BearingsEqual(a.Start, o.Start) && BearingsEqual(a.Stop, o.Stop)
}

func (a Arc) String() string {
	return fmt.Sprintf("arc %s r=%.6f %.6f->%.6f", a.Center, a.Radius, a.Start, a.Stop)
}

// LineSection is a bounded, directed straight segment.
type LineSection struct {
	Start Point `msgpack:"s"`
	Stop  Point `msgpack:"e"`
}

func (l LineSection) Length() float64 {
	return Distance(l.Start, l.Stop)
}

// Bearing returns the direction of travel along the segment.
func (l LineSection) Bearing() float64 {
	return Bearing(l.Start, l.Stop)
}

func (l LineSection) Reverse() LineSection {
	return LineSection{Start: l.Stop, Stop: l.Start}
}

// IsDegenerate reports whether the two endpoints coincide.
func (l LineSection) IsDegenerate() bool {
	return l.Start.Equal(l.Stop)
}

// PointAt returns the point the given distance along the segment from
// its start. The returned Boolean is false if the distance is negative or
// past the end of the segment.
func (l LineSection) PointAt(d float64) (Point, bool) {
	if d < 0 && !IsZero(d) || d > l.Length() && !Compare(d, l.Length()) {
		return Point{}, false
	}
	if l.IsDegenerate() {
		return l.Start, true
	}
	return PointAt(l.Start, l.Bearing(), d), true
}

func (l LineSection) Equal(o LineSection) bool {
	return l.Start.Equal(o.Start) && l.Stop.Equal(o.Stop)
}

func (l LineSection) String() string {
	return fmt.Sprintf("line %s->%s", l.Start, l.Stop)
}

///////////////////////////////////////////////////////////////////////////
// Extent2D

// Extent2D represents a 2D bounding box with the two vertices at its
// opposite minimum and maximum corners.
type Extent2D struct {
	P0, P1 [2]float64
}

// EmptyExtent2D returns an Extent2D representing an empty bounding box.
func EmptyExtent2D() Extent2D {
	// Degenerate bounds
	return Extent2D{P0: [2]float64{1e30, 1e30}, P1: [2]float64{-1e30, -1e30}}
}

// Extent2DFromPoints returns an Extent2D that bounds all of the provided
// points.
func Extent2DFromPoints(pts []Point) Extent2D {
	e := EmptyExtent2D()
	for _, p := range pts {
		e = Union(e, p)
	}
	return e
}

func (e Extent2D) IsEmpty() bool {
	return e.P0[0] > e.P1[0] || e.P0[1] > e.P1[1]
}

func (e Extent2D) Width() float64 {
	return e.P1[0] - e.P0[0]
}

func (e Extent2D) Height() float64 {
	return e.P1[1] - e.P0[1]
}

func (e Extent2D) Center() [2]float64 {
	return [2]float64{(e.P0[0] + e.P1[0]) / 2, (e.P0[1] + e.P1[1]) / 2}
}

// Expand expands the extent by the given distance in all directions.
func (e Extent2D) Expand(d float64) Extent2D {
	return Extent2D{
		P0: [2]float64{e.P0[0] - d, e.P0[1] - d},
		P1: [2]float64{e.P1[0] + d, e.P1[1] + d}}
}

func (e Extent2D) Inside(p [2]float64) bool {
	return p[0] >= e.P0[0] && p[0] <= e.P1[0] && p[1] >= e.P0[1] && p[1] <= e.P1[1]
}

// Overlaps returns true if the two provided Extent2Ds overlap.
func Overlaps(a Extent2D, b Extent2D) bool {
	x := (a.P1[0] >= b.P0[0]) && (a.P0[0] <= b.P1[0])
	y := (a.P1[1] >= b.P0[1]) && (a.P0[1] <= b.P1[1])
	return x && y
}

func Union(e Extent2D, p [2]float64) Extent2D {
	e.P0[0] = min(e.P0[0], p[0])
	e.P0[1] = min(e.P0[1], p[1])
	e.P1[0] = max(e.P1[0], p[0])
	e.P1[1] = max(e.P1[1], p[1])
	return e
}

///////////////////////////////////////////////////////////////////////////
// Lines

// LineLineIntersect returns the intersection point of the two lines
// specified by the vertices (p1, p2) and (p3, p4).  An additional
// returned Boolean value indicates whether a valid intersection was found.
// (There's no intersection for parallel lines.)
func LineLineIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	d12 := Sub2(p1, p2)
	d34 := Sub2(p3, p4)
	denom := Cross(d12, d34)
	if IsZero(denom) {
		return Point{}, false
	}
	c12 := Cross(p1, p2)
	c34 := Cross(p3, p4)
	numx := c12*d34[0] - d12[0]*c34
	numy := c12*d34[1] - d12[1]*c34

	return Point{numx / denom, numy / denom}, true
}

// SegmentSegmentIntersect returns the intersection point of the two line segments
// specified by the vertices (p1, p2) and (p3, p4). An additional returned Boolean
// value indicates whether a valid intersection was found within both segments.
func SegmentSegmentIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	// First check if the infinite lines intersect
	p, ok := LineLineIntersect(p1, p2, p3, p4)
	if !ok {
		return Point{}, false
	}

	// See if the intersection point is within the bounding boxes of both
	// segments, with a little slop for points that land on an endpoint.
	b0 := Extent2DFromPoints([]Point{p1, p2}).Expand(Epsilon)
	b1 := Extent2DFromPoints([]Point{p3, p4}).Expand(Epsilon)

	return p, b0.Inside(p) && b1.Inside(p)
}

// SignedPointLineDistance returns the signed distance from the point p to
// the infinite line defined by (p0, p1) where points to the right of the
// line have negative distances.
func SignedPointLineDistance(p, p0, p1 Point) float64 {
	// https://en.wikipedia.org/wiki/Distance_from_a_point_to_a_line
	dx, dy := p1[0]-p0[0], p1[1]-p0[1]
	sq := dx*dx + dy*dy
	if sq == 0 {
		return gomath.Inf(1)
	}
	return (dx*(p[1]-p0[1]) - dy*(p[0]-p0[0])) / gomath.Sqrt(sq)
}

// PointLineDistance returns the minimum distance from the point p to the infinite line defined by (p0, p1).
func PointLineDistance(p, p0, p1 Point) float64 {
	return Abs(SignedPointLineDistance(p, p0, p1))
}

// Return minimum distance between line segment vw and point p
// https://stackoverflow.com/a/1501725
func PointSegmentDistance(p, v, w Point) float64 {
	l := Sub2(v, w)
	l2 := Dot(l, l)
	if l2 == 0 {
		return Distance(p, v)
	}
	t := Clamp(Dot(Sub2(p, v), Sub2(w, v))/l2, 0, 1)
	proj := Add2(v, Scale2(Sub2(w, v), t))
	return Distance(p, proj)
}

// ClosestPointOnLine returns the closest point on the (infinite) line to
// the given point p.
func ClosestPointOnLine(line LineSection, p Point) Point {
	d := Sub2(line.Stop, line.Start)
	l2 := Dot(d, d)
	if l2 == 0 {
		return line.Start
	}
	t := Dot(Sub2(p, line.Start), d) / l2
	return Lerp2(t, line.Start, line.Stop)
}

// PointOnSegment reports whether p lies on the segment, to within
// Epsilon.
func PointOnSegment(line LineSection, p Point) bool {
	return PointSegmentDistance(p, line.Start, line.Stop) < Epsilon
}
