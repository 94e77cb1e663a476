// route/route.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmp/turnpath/math"
)

var (
	ErrEmptyRoute    = errors.New("route has no figures")
	ErrInvalidRadius = errors.New("turn radius must be positive")
	ErrInfeasible    = errors.New("no feasible route")
)

// ContinuityError is returned by Route.Validate when a figure doesn't
// start where the previous one stopped.
type ContinuityError struct {
	Index int // figure that doesn't connect to its predecessor
	Stop  math.Point
	Start math.Point
}

func (e *ContinuityError) Error() string {
	return fmt.Sprintf("figure %d ends at %s but figure %d starts at %s (gap %.6g)",
		e.Index-1, e.Stop, e.Index, e.Start, math.Distance(e.Stop, e.Start))
}

// Route is an ordered sequence of figures where each one starts where
// the previous one stops. An empty Route means that no route could be
// found.
type Route []Figure

func (r Route) Empty() bool {
	return len(r) == 0
}

func (r Route) Length() float64 {
	var l float64
	for _, f := range r {
		l += f.Length()
	}
	return l
}

// Start returns the first point of the route; it must not be called on an
// empty Route.
func (r Route) Start() math.Point {
	return r[0].Start()
}

// Stop returns the last point of the route; it must not be called on an
// empty Route.
func (r Route) Stop() math.Point {
	return r[len(r)-1].Stop()
}

// ExitBearing returns the direction of travel at the end of the route.
func (r Route) ExitBearing() float64 {
	return r[len(r)-1].ExitBearing()
}

// Points returns the route as a polyline, with arcs split into n pieces.
// Points shared by consecutive figures are only included once.
func (r Route) Points(n int) []math.Point {
	var pts []math.Point
	for _, f := range r {
		fp := f.Points(n)
		if len(pts) > 0 && pts[len(pts)-1].Equal(fp[0]) {
			fp = fp[1:]
		}
		pts = append(pts, fp...)
	}
	return pts
}

// Extent returns the bounding box of the route's polyline.
func (r Route) Extent() math.Extent2D {
	return math.Extent2DFromPoints(r.Points(DefaultSubdivisions))
}

// Validate checks that the route is non-empty, that every arc has a
// positive radius and that the figures are connected.
func (r Route) Validate() error {
	if r.Empty() {
		return ErrEmptyRoute
	}
	for i, f := range r {
		if f.Kind == ArcFigure && !(f.Arc.Arc.Radius > 0) {
			return fmt.Errorf("figure %d: %w", i, ErrInvalidRadius)
		}
		if !f.Start().IsValid() || !f.Stop().IsValid() {
			return fmt.Errorf("figure %d: invalid coordinates", i)
		}
		if i > 0 && !r[i-1].Stop().Equal(f.Start()) {
			return &ContinuityError{Index: i, Stop: r[i-1].Stop(), Start: f.Start()}
		}
	}
	return nil
}

// MaxSamples is the most points Sample will return.
const MaxSamples = 1 << 20

// NumSamples returns the number of points Sample returns for the given
// interval, not counting the route's last point, or 0 if the interval
// isn't positive or would give more than MaxSamples points.
func (r Route) NumSamples(interval float64) int {
	if r.Empty() || !(interval > 0) || !math.IsValid(interval) {
		return 0
	}
	total := r.Length()
	n := math.Floor(total / interval)
	if math.Compare((n+1)*interval, total) {
		n++
	}
	if !(n+1 <= MaxSamples) {
		return 0
	}
	return int(n) + 1
}

// Sample returns points spaced every interval along the route, starting
// with its first point. The last point of the route is included as well
// if it doesn't fall on the interval. Spacing is measured along the path,
// so samples carry across figure boundaries. Nil is returned if
// NumSamples is zero.
func (r Route) Sample(interval float64) []math.Point {
	n := r.NumSamples(interval)
	if n == 0 {
		return nil
	}

	pts := make([]math.Point, 0, n+1)
	fi, base := 0, 0. // current figure and the distance to its start
	for i := range n {
		d := float64(i) * interval
		for fi < len(r)-1 {
			if end := base + r[fi].Length(); d > end && !math.Compare(d, end) {
				base = end
				fi++
			} else {
				break
			}
		}
		f := r[fi]
		if p, ok := f.PointAt(math.Clamp(d-base, 0, f.Length())); ok {
			pts = append(pts, p)
		}
	}

	if stop := r.Stop(); len(pts) == 0 || !pts[len(pts)-1].Equal(stop) {
		pts = append(pts, stop)
	}
	return pts
}

// Arcs returns the route's arcs.
func (r Route) Arcs() []ArcStage {
	var a []ArcStage
	for _, f := range r {
		if f.Kind == ArcFigure {
			a = append(a, f.Arc)
		}
	}
	return a
}

// Lines returns the route's straight segments.
func (r Route) Lines() []math.LineSection {
	var l []math.LineSection
	for _, f := range r {
		if f.Kind == LineFigure {
			l = append(l, f.Line)
		}
	}
	return l
}

func (r Route) Equal(o Route) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if !r[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (r Route) String() string {
	if r.Empty() {
		return "(empty route)"
	}
	var sb strings.Builder
	for i, f := range r {
		fmt.Fprintf(&sb, "%2d %s\n", i, f)
	}
	fmt.Fprintf(&sb, "length %.6f", r.Length())
	return sb.String()
}

// Concat joins the given routes into one. If any of them is empty, the
// result is empty as well.
func Concat(routes ...Route) Route {
	var c Route
	for _, r := range routes {
		if r.Empty() {
			return nil
		}
		c = append(c, r...)
	}
	return c
}
