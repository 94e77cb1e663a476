// math/tessellate.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

///////////////////////////////////////////////////////////////////////////
// Even subdivision of segments, arcs and circles into points

// SplitSegment returns n+1 evenly spaced points from start to stop,
// inclusive. If n < 2, just the two endpoints are returned.
func SplitSegment(start, stop Point, n int) []Point {
	if n < 2 {
		return []Point{start, stop}
	}
	pts := make([]Point, 0, n+1)
	for i := range n + 1 {
		pts = append(pts, Lerp2(float64(i)/float64(n), start, stop))
	}
	// Make sure the last one lands exactly.
	pts[n] = stop
	return pts
}

// SplitArc returns n+1 points along the arc in the order they're
// reached when it's travelled in the given direction. If n < 2, just
// the two endpoints are returned.
func SplitArc(arc Arc, n int, dir Direction) []Point {
	if n < 2 {
		return []Point{arc.StartPoint(), arc.StopPoint()}
	}
	da := arcSign(dir) * ArcSweep(arc, dir) / float64(n)
	pts := make([]Point, 0, n+1)
	for i := range n + 1 {
		pts = append(pts, PointAt(arc.Center, arc.Start+float64(i)*da, arc.Radius))
	}
	return pts
}

// SplitCircle returns n+1 points around the full circle, starting and
// ending due north of its center. If n < 2, only the northernmost point is
// returned.
func SplitCircle(c Circle, n int) []Point {
	if n < 2 {
		return []Point{PointAt(c.Center, 0, c.Radius)}
	}
	unit := CirclePoints(n)
	pts := make([]Point, 0, n+1)
	for _, u := range unit {
		pts = append(pts, Add2(c.Center, Scale2(u, c.Radius)))
	}
	return append(pts, pts[0])
}

// So that we can efficiently draw circles with various tessellations,
// circlePoints caches vertex positions of a unit circle at the origin
// for specified tessellation rates. The cache is safe for concurrent use.
var circlePoints = func() *lru.Cache[int, [][2]float64] {
	c, err := lru.New[int, [][2]float64](64)
	if err != nil {
		panic(err)
	}
	return c
}()

// CirclePoints returns the vertices for a unit circle at the origin
// with the given number of segments; it creates the vertex slice if this
// tessellation rate hasn't been seen recently and otherwise returns a
// preexisting one. Callers must not modify the returned slice.
func CirclePoints(nsegs int) [][2]float64 {
	if pts, ok := circlePoints.Get(nsegs); ok {
		return pts
	}

	// Evaluate the vertices of the circle to initialize a new slice.
	pts := make([][2]float64, 0, nsegs)
	for d := range nsegs {
		pts = append(pts, SinCos(float64(d)/float64(nsegs)*TwoPi))
	}
	circlePoints.Add(nsegs, pts)
	return pts
}
