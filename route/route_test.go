// route/route_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mmp/turnpath/math"
)

func TestFigureBasics(t *testing.T) {
	l := line(0, 0, 3, 4)
	if l.Length() != 5 {
		t.Errorf("line length %f, expected 5", l.Length())
	}
	if pts := l.Points(10); len(pts) != 2 {
		t.Errorf("line should have 2 points, got %d", len(pts))
	}
	if p, ok := l.PointAt(2.5); !ok || !p.Equal(math.Point{1.5, 2}) {
		t.Errorf("line midpoint: got %s %v", p, ok)
	}
	if _, ok := l.PointAt(6); ok {
		t.Errorf("expected PointAt past the end to fail")
	}

	// Quarter circle flown clockwise from the north of the center to its
	// east, so the vehicle ends up heading south.
	a := arc(0, 0, 10, 0, math.PiOver2, math.Right)
	if !math.Compare(a.Length(), 5*math.Pi) {
		t.Errorf("arc length %f, expected %f", a.Length(), 5*math.Pi)
	}
	if !a.Start().Equal(math.Point{0, 10}) || !a.Stop().Equal(math.Point{10, 0}) {
		t.Errorf("arc endpoints %s %s", a.Start(), a.Stop())
	}
	if !math.BearingsEqual(a.ExitBearing(), math.Pi) {
		t.Errorf("arc exit bearing %f, expected pi", a.ExitBearing())
	}
	pts := a.Points(4)
	if len(pts) != 5 || !pts[0].Equal(a.Start()) || !pts[4].Equal(a.Stop()) {
		t.Errorf("arc points %v", pts)
	}

	// The same arc flown the other way around is three quarters of the
	// circle and ends heading north.
	b := arc(0, 0, 10, 0, math.PiOver2, math.Left)
	if !math.Compare(b.Length(), 15*math.Pi) {
		t.Errorf("left arc length %f, expected %f", b.Length(), 15*math.Pi)
	}
	if !math.BearingsEqual(b.ExitBearing(), 0) {
		t.Errorf("left arc exit bearing %f, expected 0", b.ExitBearing())
	}
	if p, ok := b.PointAt(5 * math.Pi); !ok || !p.Equal(math.Point{-10, 0}) {
		t.Errorf("left arc quarter point %s %v", p, ok)
	}

	if a.Equal(b) || !a.Equal(arc(0, 0, 10, math.TwoPi, math.PiOver2, math.Right)) {
		t.Errorf("arc equality mismatch")
	}
	if a.Equal(line(0, 10, 10, 0)) {
		t.Errorf("an arc shouldn't equal a line")
	}
}

func TestFigureJSON(t *testing.T) {
	for _, f := range []Figure{
		line(1, 2, 3, 4),
		arc(10, 20, 5, 1, 2, math.Left),
		arc(-10, 0, 50, 6, 0.5, math.Right),
	} {
		b, err := json.Marshal(f)
		if err != nil {
			t.Fatal(err)
		}
		var g Figure
		if err := json.Unmarshal(b, &g); err != nil {
			t.Errorf("%s: %v", string(b), err)
		} else if !g.Equal(f) {
			t.Errorf("%s: got %s after decoding, expected %s", string(b), g, f)
		}
	}

	b, _ := json.Marshal(arc(0, 0, 1, 0, 1, math.Right))
	if s := string(b); !strings.Contains(s, `"type":"arc"`) || !strings.Contains(s, `"direction":"right"`) {
		t.Errorf("unexpected arc encoding %s", s)
	}

	for _, s := range []string{
		`{"type":"spiral"}`,
		`{"type":"line","start":[0,0]}`,
		`{"type":"arc","center":[0,0],"radius":1,"from":0}`,
		`{"type":"arc","center":[0,0],"radius":1,"from":0,"to":1,"direction":"up"}`,
	} {
		var f Figure
		if err := json.Unmarshal([]byte(s), &f); err == nil {
			t.Errorf("%s: expected error", s)
		}
	}
}

func exampleRoute() Route {
	return Route{
		line(0, -10, 0, 0),
		arc(10, 0, 10, 3*math.PiOver2, 0, math.Right), // west of the center to the north
		line(10, 10, 20, 10),
	}
}

func TestRouteBasics(t *testing.T) {
	r := exampleRoute()
	if err := r.Validate(); err != nil {
		t.Fatal(err)
	}
	if l := r.Length(); !math.Compare(l, 20+5*math.Pi) {
		t.Errorf("length %f, expected %f", l, 20+5*math.Pi)
	}
	if !r.Start().Equal(math.Point{0, -10}) || !r.Stop().Equal(math.Point{20, 10}) {
		t.Errorf("unexpected endpoints %s %s", r.Start(), r.Stop())
	}
	if !math.BearingsEqual(r.ExitBearing(), math.PiOver2) {
		t.Errorf("exit bearing %f", r.ExitBearing())
	}
	if len(r.Arcs()) != 1 || len(r.Lines()) != 2 {
		t.Errorf("got %d arcs and %d lines", len(r.Arcs()), len(r.Lines()))
	}

	// Shared points between figures only appear once.
	pts := r.Points(4)
	if len(pts) != 2+4+1 {
		t.Errorf("got %d points, expected 7: %v", len(pts), pts)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Equal(pts[i-1]) {
			t.Errorf("point %d duplicated", i)
		}
	}

	e := r.Extent()
	if !math.Compare(e.P0[0], 0) || !math.Compare(e.P0[1], -10) || !math.Compare(e.P1[0], 20) || !math.Compare(e.P1[1], 10) {
		t.Errorf("unexpected extent %v", e)
	}

	if !r.Equal(exampleRoute()) || r.Equal(r[:2]) {
		t.Errorf("route equality mismatch")
	}
	if s := r.String(); !strings.Contains(s, "length") {
		t.Errorf("unexpected string %q", s)
	}
	if s := Route(nil).String(); s != "(empty route)" {
		t.Errorf("unexpected empty route string %q", s)
	}
}

func TestRouteValidate(t *testing.T) {
	if err := Route(nil).Validate(); !errors.Is(err, ErrEmptyRoute) {
		t.Errorf("expected ErrEmptyRoute, got %v", err)
	}

	r := exampleRoute()
	r[2] = line(10, 11, 20, 10)
	err := r.Validate()
	var ce *ContinuityError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ContinuityError, got %v", err)
	}
	if ce.Index != 2 || !ce.Start.Equal(math.Point{10, 11}) || !ce.Stop.Equal(math.Point{10, 10}) {
		t.Errorf("unexpected error %+v", ce)
	}

	r = exampleRoute()
	r[1].Arc.Arc.Radius = 0
	if err := r.Validate(); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("expected ErrInvalidRadius, got %v", err)
	}
}

func TestRouteSample(t *testing.T) {
	r := Route{line(0, 0, 0, 25), line(0, 25, 15, 25)}
	pts := r.Sample(10)
	expected := []math.Point{{0, 0}, {0, 10}, {0, 20}, {5, 25}, {15, 25}}
	if len(pts) != len(expected) {
		t.Fatalf("got %d points, expected %d: %v", len(pts), len(expected), pts)
	}
	for i := range pts {
		if !pts[i].Equal(expected[i]) {
			t.Errorf("point %d: got %s, expected %s", i, pts[i], expected[i])
		}
	}

	// Samples along an arc are evenly spaced around it.
	r = exampleRoute()
	pts = r.Sample(1)
	for i := 1; i < len(pts); i++ {
		if d := math.Distance(pts[i-1], pts[i]); d > 1+1e-6 {
			t.Errorf("samples %d and %d are %f apart", i-1, i, d)
		}
	}
	if !pts[0].Equal(r.Start()) || !pts[len(pts)-1].Equal(r.Stop()) {
		t.Errorf("samples don't cover the route's endpoints")
	}

	if Route(nil).Sample(1) != nil || r.Sample(0) != nil {
		t.Errorf("expected no samples")
	}

	// The sample count is computed up front, so intervals that would give
	// too many points are refused rather than looping.
	far := Route{line(1e6, 0, 1e6, 100)}
	if pts := far.Sample(1e-12); pts != nil {
		t.Errorf("expected no samples for a tiny interval, got %d", len(pts))
	}
	if n := far.NumSamples(1e-12); n != 0 {
		t.Errorf("NumSamples: got %d, expected 0", n)
	}
	if n := far.NumSamples(100.0 / MaxSamples); n != 0 {
		t.Errorf("NumSamples: got %d just past the limit, expected 0", n)
	}
	if n := far.NumSamples(0.01); n != 10001 {
		t.Errorf("NumSamples: got %d, expected 10001", n)
	}
	pts = far.Sample(0.01)
	if len(pts) != 10001 || !pts[0].Equal(math.Point{1e6, 0}) || !pts[10000].Equal(math.Point{1e6, 100}) {
		t.Errorf("unexpected samples: %d points, %v ... %v", len(pts), pts[0], pts[len(pts)-1])
	}
	// Sample i lands at i*interval rather than an accumulated sum.
	if !pts[5000].Equal(math.Point{1e6, 50}) {
		t.Errorf("sample 5000: got %s, expected (1e6, 50)", pts[5000])
	}

	// An interval longer than the route gives its two endpoints.
	if pts := far.Sample(1000); len(pts) != 2 {
		t.Errorf("expected 2 samples, got %d", len(pts))
	}
}

func TestConcat(t *testing.T) {
	a, b := Route{line(0, 0, 0, 10)}, Route{line(0, 10, 10, 10)}
	c := Concat(a, b)
	if len(c) != 2 || c.Validate() != nil {
		t.Errorf("unexpected concatenation %s", c)
	}
	if c := Concat(a, nil, b); c != nil {
		t.Errorf("expected nil route, got %s", c)
	}
}
