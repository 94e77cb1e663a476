// route/stage.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"github.com/mmp/turnpath/math"
)

// Each of the stage functions takes the previous track, from priorStart
// to priorStop, and returns a route that starts at priorStop heading along
// that track and finishes at next. An empty route is returned if there's
// no way to get there with the given turn radius.

// LineStage returns a single straight segment from priorStop to next.
func LineStage(priorStop, next math.Point) Route {
	if priorStop.Equal(next) || !priorStop.IsValid() || !next.IsValid() {
		return nil
	}
	return Route{NewLine(priorStop, next)}
}

// sense returns the turn direction for a vehicle travelling along dir
// with the turn center at offset from it; nearly colinear vectors are
// treated as a right turn.
func sense(dir, offset [2]float64) math.Direction {
	if math.Orientation(dir, offset) == math.Left {
		return math.Left
	}
	return math.Right
}

// turnCircle returns the center of the circle of the given radius that is
// tangent to the track at priorStop and is closer to next; it goes with
// the left one if they're equidistant.
func turnCircle(priorStart, priorStop, next math.Point, radius float64) (math.Point, bool) {
	left, right, ok := math.CenterCircleInLine(math.LineSection{Start: priorStart, Stop: priorStop}, priorStop, radius)
	if !ok {
		return math.Point{}, false
	}
	dl, dr := math.Distance(left, next), math.Distance(right, next)
	if math.Compare(dl, dr) || dl < dr {
		return left, true
	}
	return right, true
}

func validInputs(radius float64, pts ...math.Point) bool {
	if !(radius > 0) || !math.IsValid(radius) {
		return false
	}
	for _, p := range pts {
		if !p.IsValid() {
			return false
		}
	}
	return true
}

// ItineraryStage returns a direct-entry turn: an arc on the turn circle
// that's closest to next, flown until the vehicle is heading straight at
// next, followed by a segment to it. If next is straight ahead, the route
// is just that segment.
func ItineraryStage(priorStart, priorStop, next math.Point, radius float64) Route {
	if !validInputs(radius, priorStart, priorStop, next) {
		return nil
	}
	if math.IsCoDirectional(priorStart, priorStop, next) {
		return LineStage(priorStop, next)
	}

	center, ok := turnCircle(priorStart, priorStop, next, radius)
	if !ok {
		return nil
	}
	circle := math.Circle{Center: center, Radius: radius}
	t0, t1, ok := math.Tangent(circle, next)
	if !ok {
		return nil
	}

	// The turn must be flown in the sense given by the incoming track;
	// only one of the tangency points leaves the circle in that sense.
	inbound := math.Orientation(math.Sub2(priorStop, priorStart), math.Sub2(priorStop, center))
	if inbound == math.Colinear {
		return nil
	}
	for _, tl := range []math.LineSection{t0, t1} {
		if math.Orientation(math.Sub2(next, tl.Start), math.Sub2(tl.Start, center)) == inbound {
			arc := math.MakeArc(center, radius, math.Bearing(center, priorStop), math.Bearing(center, tl.Start))
			return Route{NewArc(arc, inbound), NewLine(tl.Start, next)}
		}
	}
	return nil
}

// ThroughStage returns a procedure turn for when next is roughly behind
// the vehicle: an arc in the sense of the turn circle closest to next
// followed by an arc of the same radius in the opposite sense that rolls
// out on a segment to next. An empty route is returned if the maneuver
// would overshoot next.
func ThroughStage(priorStart, priorStop, next math.Point, radius float64) Route {
	if !validInputs(radius, priorStart, priorStop, next) {
		return nil
	}
	if math.IsCoDirectional(priorStart, priorStop, next) {
		return LineStage(priorStop, next)
	}
	if priorStop.Equal(next) {
		return nil
	}

	center, ok := turnCircle(priorStart, priorStop, next, radius)
	if !ok {
		return nil
	}

	first := sense(math.Sub2(priorStop, priorStart), math.Sub2(priorStop, center))
	outbound := sense(math.Sub2(priorStop, center), math.Sub2(priorStop, next))
	offset := math.PointLineDistance(center, priorStop, next)
	d := radius - offset
	if first == outbound {
		d = radius + offset
	}

	s := first.Sign()
	rollout := math.Bearing(priorStop, next) + s*math.PiOver2
	reverse := rollout + s*math.SafeACos(d/(2*radius))
	turnaround := reverse + math.Pi

	center2 := math.PointAt(center, turnaround, 2*radius)
	lineStart := math.PointAt(center2, rollout, radius)
	if math.Distance(priorStop, next) < math.Distance(priorStop, lineStart) {
		return nil
	}

	arc1 := math.MakeArc(center, radius, math.Bearing(priorStop, center)+math.Pi, turnaround)
	arc2 := math.MakeArc(center2, radius, reverse, rollout)
	return Route{
		NewArc(arc1, first),
		NewArc(arc2, first.Opposite()),
		NewLine(lineStart, next),
	}
}

// CombineCandidate is one of the four ways of joining an entry turn
// circle to an exit turn circle in a combined turn.
type CombineCandidate struct {
	Entry   ArcStage
	Tangent math.LineSection
	Exit    ArcStage
	Length  float64 // +Inf if the circles can't be joined
}

func (c CombineCandidate) Feasible() bool {
	return math.IsValid(c.Length)
}

// CombineCandidates returns the four candidate joins for CombineStage
// along with the outgoing leg, ordered (left, left), (left, right),
// (right, left), (right, right) by entry and exit turn directions. The
// returned Boolean is false if the inputs are degenerate.
func CombineCandidates(priorStart, priorStop, next math.Point, radius1, radius2, course, rng float64) ([4]CombineCandidate, math.LineSection, bool) {
	var cands [4]CombineCandidate
	for i := range cands {
		cands[i].Length = math.Inf()
	}

	if !validInputs(radius1, priorStart, priorStop, next) || !validInputs(radius2) ||
		!math.IsValid(course) || !(rng > 0) || !math.IsValid(rng) {
		return cands, math.LineSection{}, false
	}

	ls := math.PointAt(next, course+math.Pi, rng)
	outbound := math.LineSection{Start: ls, Stop: next}

	e0, e1, ok := math.CenterCircleInLine(math.LineSection{Start: priorStart, Stop: priorStop}, priorStop, radius1)
	if !ok {
		return cands, outbound, false
	}
	x0, x1, ok := math.CenterCircleInLine(outbound, ls, radius2)
	if !ok {
		return cands, outbound, false
	}

	entry := [2]math.Circle{{Center: e0, Radius: radius1}, {Center: e1, Radius: radius1}}
	exit := [2]math.Circle{{Center: x0, Radius: radius2}, {Center: x1, Radius: radius2}}
	var entryDir, exitDir [2]math.Direction
	for i := range 2 {
		entryDir[i] = sense(math.Sub2(priorStop, priorStart), math.Sub2(priorStop, entry[i].Center))
		exitDir[i] = sense(math.Sub2(next, ls), math.Sub2(ls, exit[i].Center))
	}

	for i := range 4 {
		c1, c2 := entry[i/2], exit[i%2]
		d1, d2 := entryDir[i/2], exitDir[i%2]

		// Circles flown in the same sense are joined by an external
		// tangent and opposite senses need one that crosses between them.
		var tl math.LineSection
		if d1 == d2 {
			tl, ok = math.ScalingTangentOut(c1, c2, d1)
		} else {
			tl, ok = math.ScalingTangentInboard(c1, c2, d1)
		}
		if !ok {
			continue
		}

		cands[i].Entry = ArcStage{
			Arc:       math.MakeArc(c1.Center, c1.Radius, math.Bearing(c1.Center, priorStop), math.Bearing(c1.Center, tl.Start)),
			Direction: d1,
		}
		cands[i].Tangent = tl
		cands[i].Exit = ArcStage{
			Arc:       math.MakeArc(c2.Center, c2.Radius, math.Bearing(c2.Center, tl.Stop), math.Bearing(c2.Center, ls)),
			Direction: d2,
		}
		cands[i].Length = cands[i].Entry.Length() + tl.Length() + cands[i].Exit.Length()
	}

	return cands, outbound, true
}

// CombineStage joins the incoming track to an outgoing leg that finishes
// at next after travelling rng along the given course, with turns of
// radius1 at the entry and radius2 at the exit. Of the four ways to
// connect the turn circles, the shortest is used; the route is the entry
// arc, the connecting tangent, the exit arc and the outgoing leg.
func CombineStage(priorStart, priorStop, next math.Point, radius1, radius2, course, rng float64) Route {
	if validInputs(radius1, priorStart, priorStop, next) && math.IsCoDirectional(priorStart, priorStop, next) {
		return LineStage(priorStop, next)
	}

	cands, outbound, ok := CombineCandidates(priorStart, priorStop, next, radius1, radius2, course, rng)
	if !ok {
		return nil
	}

	lengths := make([]float64, len(cands))
	for i, c := range cands {
		lengths[i] = c.Length
	}
	best := cands[math.ArgMin(lengths...)]
	if !best.Feasible() {
		return nil
	}

	return Route{
		Figure{Kind: ArcFigure, Arc: best.Entry},
		Figure{Kind: LineFigure, Line: best.Tangent},
		Figure{Kind: ArcFigure, Arc: best.Exit},
		Figure{Kind: LineFigure, Line: outbound},
	}
}
