// math/circle_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"testing"

	"github.com/mmp/turnpath/rand"
)

func TestCenterCircleInLine(t *testing.T) {
	// Heading north: left is west, right is east.
	l, r, ok := CenterCircleInLine(LineSection{Start: Point{0, 0}, Stop: Point{0, 10}}, Point{0, 10}, 3)
	if !ok || !l.Equal(Point{-3, 10}) || !r.Equal(Point{3, 10}) {
		t.Errorf("got %s %s %v", l, r, ok)
	}

	// Heading west: left is south.
	l, r, ok = CenterCircleInLine(LineSection{Start: Point{10, 5}, Stop: Point{0, 5}}, Point{0, 5}, 2)
	if !ok || !l.Equal(Point{0, 3}) || !r.Equal(Point{0, 7}) {
		t.Errorf("heading west got %s %s %v", l, r, ok)
	}

	for _, radius := range []float64{0, -5, gomath.NaN()} {
		if _, _, ok := CenterCircleInLine(LineSection{Start: Point{0, 0}, Stop: Point{0, 10}}, Point{0, 10}, radius); ok {
			t.Errorf("radius %f: expected failure", radius)
		}
	}
	if _, _, ok := CenterCircleInLine(LineSection{Start: Point{1, 1}, Stop: Point{1, 1}}, Point{1, 1}, 1); ok {
		t.Errorf("expected failure for a degenerate line")
	}
}

func TestTangent(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 1}
	t0, t1, ok := Tangent(c, Point{0, 2})
	if !ok {
		t.Fatal("expected tangents")
	}
	h := gomath.Sqrt(3) / 2
	if !t0.Start.Equal(Point{h, 0.5}) || !t1.Start.Equal(Point{-h, 0.5}) {
		t.Errorf("got tangency points %s %s", t0.Start, t1.Start)
	}
	if !t0.Stop.Equal(Point{0, 2}) || !t1.Stop.Equal(Point{0, 2}) {
		t.Errorf("tangents don't end at the external point")
	}

	for _, p := range []Point{{0, 0}, {0.5, 0.5}, {0, 1}} {
		if _, _, ok := Tangent(c, p); ok {
			t.Errorf("%s: expected no tangent from inside the circle", p)
		}
	}

	r := rand.Make()
	r.Seed(1234)
	for range 200 {
		c := Circle{Center: Point{r.Range(-100, 100), r.Range(-100, 100)}, Radius: r.Range(1, 50)}
		p := PointAt(c.Center, r.Range(0, TwoPi), c.Radius+r.Range(0.1, 100))

		t0, t1, ok := Tangent(c, p)
		if !ok {
			t.Fatalf("%s %s: no tangent", c, p)
		}
		expectedLength := gomath.Sqrt(Sqr(Distance(c.Center, p)) - Sqr(c.Radius))
		for _, tl := range []LineSection{t0, t1} {
			if !Compare(Distance(c.Center, tl.Start), c.Radius) {
				t.Errorf("%s %s: tangency point %s not on circle", c, p, tl.Start)
			}
			if d := Dot(Normalize2(Sub2(tl.Start, c.Center)), Normalize2(Sub2(tl.Stop, tl.Start))); !IsZero(d) {
				t.Errorf("%s %s: tangent not perpendicular to radius (%g)", c, p, d)
			}
			if Abs(tl.Length()-expectedLength) > 1e-5 {
				t.Errorf("%s %s: got tangent length %f, expected %f", c, p, tl.Length(), expectedLength)
			}
		}
	}
}

// checkCircleTangent makes sure that tl touches both circles and that
// it's followed in the given directions about each of them.
func checkCircleTangent(t *testing.T, c1, c2 Circle, tl LineSection, d1, d2 Direction) {
	t.Helper()
	if !Compare(Distance(c1.Center, tl.Start), c1.Radius) {
		t.Errorf("%s %s: start %s not on first circle", c1, c2, tl.Start)
	}
	if !Compare(Distance(c2.Center, tl.Stop), c2.Radius) {
		t.Errorf("%s %s: stop %s not on second circle", c1, c2, tl.Stop)
	}
	if tl.IsDegenerate() {
		return
	}
	v := Normalize2(Sub2(tl.Stop, tl.Start))
	if d := Dot(Normalize2(Sub2(tl.Start, c1.Center)), v); !IsZero(d) {
		t.Errorf("%s %s: not tangent to first circle (%g)", c1, c2, d)
	}
	if d := Dot(Normalize2(Sub2(tl.Stop, c2.Center)), v); !IsZero(d) {
		t.Errorf("%s %s: not tangent to second circle (%g)", c1, c2, d)
	}
	if o := Orientation(v, Sub2(tl.Start, c1.Center)); o != d1 {
		t.Errorf("%s %s: leaves first circle turning %s, expected %s", c1, c2, o, d1)
	}
	if o := Orientation(v, Sub2(tl.Stop, c2.Center)); o != d2 {
		t.Errorf("%s %s: joins second circle turning %s, expected %s", c1, c2, o, d2)
	}
}

func TestScalingTangentOut(t *testing.T) {
	c1 := Circle{Center: Point{0, 0}, Radius: 1}
	c2 := Circle{Center: Point{10, 0}, Radius: 1}

	tr, ok := ScalingTangentOut(c1, c2, Right)
	if !ok || !tr.Start.Equal(Point{0, 1}) || !tr.Stop.Equal(Point{10, 1}) {
		t.Errorf("right: got %s %v", tr, ok)
	}
	tl, ok := ScalingTangentOut(c1, c2, Left)
	if !ok || !tl.Start.Equal(Point{0, -1}) || !tl.Stop.Equal(Point{10, -1}) {
		t.Errorf("left: got %s %v", tl, ok)
	}

	// Clockwise around both circles is along the top regardless of which
	// one is larger.
	big := Circle{Center: Point{0, 0}, Radius: 2}
	tb, ok := ScalingTangentOut(big, c2, Right)
	if !ok || !tb.Start.Equal(Point{0.2, gomath.Sqrt(3.96)}) || !tb.Stop.Equal(Point{10.1, gomath.Sqrt(0.99)}) {
		t.Errorf("larger first: got %s %v", tb, ok)
	}
	tb, ok = ScalingTangentOut(c1, Circle{Center: Point{10, 0}, Radius: 2}, Right)
	if !ok || !tb.Start.Equal(Point{-0.1, gomath.Sqrt(0.99)}) || !tb.Stop.Equal(Point{9.8, gomath.Sqrt(3.96)}) {
		t.Errorf("smaller first: got %s %v", tb, ok)
	}

	// Failures: coincident centers and one circle inside the other.
	if _, ok := ScalingTangentOut(c1, Circle{Center: c1.Center, Radius: 3}, Right); ok {
		t.Errorf("expected failure for coincident centers")
	}
	if _, ok := ScalingTangentOut(Circle{Center: Point{0, 0}, Radius: 5}, Circle{Center: Point{2, 0}, Radius: 1}, Left); ok {
		t.Errorf("expected failure for a contained circle")
	}
	// Overlapping circles still have external tangents.
	if _, ok := ScalingTangentOut(Circle{Center: Point{0, 0}, Radius: 3}, Circle{Center: Point{5, 0}, Radius: 3}, Left); !ok {
		t.Errorf("expected external tangent for overlapping circles")
	}
}

func TestScalingTangentInboard(t *testing.T) {
	c1 := Circle{Center: Point{0, 0}, Radius: 1}
	c2 := Circle{Center: Point{10, 0}, Radius: 1}

	tr, ok := ScalingTangentInboard(c1, c2, Right)
	if !ok || !tr.Start.Equal(Point{0.2, gomath.Sqrt(0.96)}) || !tr.Stop.Equal(Point{9.8, -gomath.Sqrt(0.96)}) {
		t.Errorf("right: got %s %v", tr, ok)
	}
	tl, ok := ScalingTangentInboard(c1, c2, Left)
	if !ok || !tl.Start.Equal(Point{0.2, -gomath.Sqrt(0.96)}) || !tl.Stop.Equal(Point{9.8, gomath.Sqrt(0.96)}) {
		t.Errorf("left: got %s %v", tl, ok)
	}

	// Inboard tangents cross the segment between the centers.
	for _, tan := range []LineSection{tr, tl} {
		if p, ok := SegmentSegmentIntersect(tan.Start, tan.Stop, c1.Center, c2.Center); !ok || !p.Equal(Point{5, 0}) {
			t.Errorf("%s: expected crossing at (5, 0), got %s %v", tan, p, ok)
		}
	}

	if _, ok := ScalingTangentInboard(c1, Circle{Center: c1.Center, Radius: 1}, Right); ok {
		t.Errorf("expected failure for coincident centers")
	}
	if _, ok := ScalingTangentInboard(Circle{Center: Point{0, 0}, Radius: 3}, Circle{Center: Point{5, 0}, Radius: 3}, Left); ok {
		t.Errorf("expected failure for overlapping circles")
	}
}

func TestScalingTangentsRandom(t *testing.T) {
	r := rand.Make()
	r.Seed(99)
	n := 0
	for range 500 {
		c1 := Circle{Center: Point{r.Range(-100, 100), r.Range(-100, 100)}, Radius: r.Range(1, 40)}
		c2 := Circle{Center: Point{r.Range(-100, 100), r.Range(-100, 100)}, Radius: r.Range(1, 40)}
		for _, dir := range []Direction{Left, Right} {
			if tl, ok := ScalingTangentOut(c1, c2, dir); ok {
				checkCircleTangent(t, c1, c2, tl, dir, dir)
				n++
			}
			if tl, ok := ScalingTangentInboard(c1, c2, dir); ok {
				checkCircleTangent(t, c1, c2, tl, dir, dir.Opposite())
				n++
			}
		}
	}
	if n < 500 {
		t.Errorf("only %d tangents were found", n)
	}
}

func TestLineCircleIntersect(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 5}
	pts := LineCircleIntersect(c, LineSection{Start: Point{-10, 3}, Stop: Point{10, 3}})
	if len(pts) != 2 || !pts[0].Equal(Point{-4, 3}) || !pts[1].Equal(Point{4, 3}) {
		t.Errorf("got %v", pts)
	}
	pts = LineCircleIntersect(c, LineSection{Start: Point{10, 3}, Stop: Point{0, 3}})
	if len(pts) != 1 || !pts[0].Equal(Point{4, 3}) {
		t.Errorf("half segment got %v", pts)
	}
	pts = LineCircleIntersect(c, LineSection{Start: Point{-10, 5}, Stop: Point{10, 5}})
	if len(pts) != 1 || !pts[0].Equal(Point{0, 5}) {
		t.Errorf("tangent line got %v", pts)
	}
	if pts = LineCircleIntersect(c, LineSection{Start: Point{-10, 6}, Stop: Point{10, 6}}); len(pts) != 0 {
		t.Errorf("miss got %v", pts)
	}
}

func TestCircleCircleIntersect(t *testing.T) {
	pts := CircleCircleIntersect(Circle{Center: Point{0, 0}, Radius: 5}, Circle{Center: Point{8, 0}, Radius: 5})
	if len(pts) != 2 {
		t.Fatalf("got %v", pts)
	}
	for _, p := range pts {
		if !Compare(p[0], 4) || !Compare(Abs(p[1]), 3) {
			t.Errorf("unexpected intersection %s", p)
		}
	}
	if pts := CircleCircleIntersect(Circle{Center: Point{0, 0}, Radius: 1}, Circle{Center: Point{2, 0}, Radius: 1}); len(pts) != 1 || !pts[0].Equal(Point{1, 0}) {
		t.Errorf("touching circles got %v", pts)
	}
	if pts := CircleCircleIntersect(Circle{Center: Point{0, 0}, Radius: 1}, Circle{Center: Point{5, 0}, Radius: 1}); len(pts) != 0 {
		t.Errorf("separate circles got %v", pts)
	}
}

func TestArcs(t *testing.T) {
	quarter := MakeArc(Point{0, 0}, 2, 0, PiOver2)
	if !Compare(ArcLength(quarter, Right), Pi) {
		t.Errorf("right quarter arc length %f", ArcLength(quarter, Right))
	}
	if !Compare(ArcLength(quarter, Left), 3*Pi) {
		t.Errorf("left three-quarter arc length %f", ArcLength(quarter, Left))
	}
	if ArcLength(MakeArc(Point{0, 0}, 2, 1, 1+TwoPi), Left) != 0 {
		t.Errorf("expected zero length for coincident bearings")
	}

	if p := ArcMidpoint(quarter, Right); !p.Equal(Point{gomath.Sqrt2, gomath.Sqrt2}) {
		t.Errorf("right midpoint %s", p)
	}
	if p := ArcMidpoint(quarter, Left); !p.Equal(Point{-gomath.Sqrt2, -gomath.Sqrt2}) {
		t.Errorf("left midpoint %s", p)
	}
	if p, ok := PointOnArc(quarter, Right, Pi); !ok || !p.Equal(Point{2, 0}) {
		t.Errorf("PointOnArc at end: %s %v", p, ok)
	}
	if _, ok := PointOnArc(quarter, Right, Pi+0.1); ok {
		t.Errorf("expected no point past the end of the arc")
	}

	if !BearingOnArc(quarter, Right, Pi/4) || BearingOnArc(quarter, Left, Pi/4) {
		t.Errorf("BearingOnArc wrong for pi/4")
	}
	if !BearingOnArc(quarter, Left, Pi) || BearingOnArc(quarter, Right, Pi) {
		t.Errorf("BearingOnArc wrong for pi")
	}

	if !quarter.StartPoint().Equal(Point{0, 2}) || !quarter.StopPoint().Equal(Point{2, 0}) {
		t.Errorf("unexpected endpoints %s %s", quarter.StartPoint(), quarter.StopPoint())
	}
	if !MakeArc(Point{0, 0}, 2, -TwoPi, TwoPi+PiOver2).Equal(quarter) {
		t.Errorf("MakeArc didn't normalize bearings")
	}
}
