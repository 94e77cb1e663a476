// route/plan.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmp/turnpath/log"
	"github.com/mmp/turnpath/math"
	"github.com/mmp/turnpath/util"
)

// ReversalThreshold is the turn, in degrees, beyond which Auto treats the
// next waypoint as being behind the vehicle and tries a procedure turn
// first.
const ReversalThreshold = 120

// Strategy selects the stage used to fly a leg.
type Strategy int

const (
	Auto Strategy = iota
	Direct
	Itinerary
	Through
	Combine
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Direct:
		return "direct"
	case Itinerary:
		return "itinerary"
	case Through:
		return "through"
	case Combine:
		return "combine"
	default:
		return "ERROR"
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return Auto, nil
	case "direct":
		return Direct, nil
	case "itinerary":
		return Itinerary, nil
	case "through":
		return Through, nil
	case "combine":
		return Combine, nil
	default:
		return Auto, fmt.Errorf("%s: unknown strategy", s)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	if s < Auto || s > Combine {
		return nil, fmt.Errorf("%d: unknown strategy", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	var err error
	*s, err = ParseStrategy(string(b))
	return err
}

// Leg is one step of a Plan: a waypoint to fly to and how to get there.
// Radius and ExitRadius are optional; zero means the plan's radius. Course
// (degrees) and Range are only used by Combine legs, which finish by
// flying Range along Course into To.
type Leg struct {
	To         math.Point `json:"to" msgpack:"to"`
	Strategy   Strategy   `json:"strategy,omitempty" msgpack:"s"`
	Radius     float64    `json:"radius,omitempty" msgpack:"r"`
	ExitRadius float64    `json:"exit_radius,omitempty" msgpack:"xr"`
	Course     float64    `json:"course,omitempty" msgpack:"c"`
	Range      float64    `json:"range,omitempty" msgpack:"rng"`
}

func (l Leg) radius(p *Plan) float64 {
	if l.Radius != 0 {
		return l.Radius
	}
	return p.Radius
}

func (l Leg) exitRadius(p *Plan) float64 {
	if l.ExitRadius != 0 {
		return l.ExitRadius
	}
	return l.radius(p)
}

// Plan describes a multi-leg route: the vehicle starts at Start heading
// along Heading (degrees) and flies each of the legs in turn.
type Plan struct {
	Name    string     `json:"name" msgpack:"n"`
	Start   math.Point `json:"start" msgpack:"p"`
	Heading float64    `json:"heading" msgpack:"h"`
	Radius  float64    `json:"radius" msgpack:"r"`
	Legs    []Leg      `json:"legs" msgpack:"l"`
}

// LegError is returned by Plan.Build when one of the legs can't be flown.
type LegError struct {
	Plan     string
	Leg      int
	Strategy Strategy
	Err      error
}

func (e *LegError) Error() string {
	return fmt.Sprintf("%s: leg %d (%s): %v", e.Plan, e.Leg, e.Strategy, e.Err)
}

func (e *LegError) Unwrap() error {
	return e.Err
}

// Check validates the plan's parameters, reporting all of the problems it
// finds to e.
func (p *Plan) Check(e *util.ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	e.Push("Plan " + p.Name)
	defer e.Pop()

	if p.Name == "" {
		e.ErrorString("must specify \"name\"")
	}
	if !p.Start.IsValid() {
		e.ErrorString("\"start\" %s is not a valid point", p.Start)
	}
	if !math.IsValid(p.Heading) {
		e.ErrorString("\"heading\" %f is not valid", p.Heading)
	}
	if !(p.Radius > 0) || !math.IsValid(p.Radius) {
		e.ErrorString("\"radius\" must be positive")
	}
	if len(p.Legs) == 0 {
		e.ErrorString("no \"legs\" specified")
	}

	prev := p.Start
	for i, leg := range p.Legs {
		e.Push(fmt.Sprintf("Leg %d", i))

		if !leg.To.IsValid() {
			e.ErrorString("\"to\" %s is not a valid point", leg.To)
		} else if leg.To.Equal(prev) {
			e.ErrorString("\"to\" %s repeats the previous waypoint", leg.To)
		}
		if leg.Radius < 0 || !math.IsValid(leg.Radius) {
			e.ErrorString("\"radius\" %f must be positive", leg.Radius)
		}
		if leg.Strategy == Combine {
			if leg.ExitRadius < 0 || !math.IsValid(leg.ExitRadius) {
				e.ErrorString("\"exit_radius\" %f must be positive", leg.ExitRadius)
			}
			if !math.IsValid(leg.Course) {
				e.ErrorString("\"course\" %f is not valid", leg.Course)
			}
			if !(leg.Range > 0) || !math.IsValid(leg.Range) {
				e.ErrorString("\"range\" must be positive for \"combine\" legs")
			}
		} else if leg.ExitRadius != 0 || leg.Range != 0 || leg.Course != 0 {
			e.ErrorString("\"exit_radius\", \"course\" and \"range\" may only be given for \"combine\" legs")
		}

		prev = leg.To
		e.Pop()
	}
}

// track returns the final heading of a route as a segment ending at its
// last point; degenerate figures at the end are skipped.
func track(r Route) (math.Point, math.Point) {
	stop := r.Stop()
	for i := len(r) - 1; i >= 0; i-- {
		f := r[i]
		if f.Kind == LineFigure {
			if !f.Line.IsDegenerate() {
				return f.Line.Start, stop
			}
			continue
		}
		return math.PointAt(stop, f.ExitBearing()+math.Pi, f.Arc.Arc.Radius), stop
	}
	// Only degenerate figures; there's no way to know the heading.
	return stop, stop
}

// Build flies the plan's legs in sequence, returning the concatenated
// route. The incoming track for each leg is the end of the route so far,
// or the plan's start and heading for the first one.
func (p *Plan) Build(lg *log.Logger) (Route, error) {
	lg = lg.With(slog.String("plan", p.Name))

	if !(p.Radius > 0) || !math.IsValid(p.Radius) {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrInvalidRadius)
	}
	if len(p.Legs) == 0 {
		return nil, fmt.Errorf("%s: %w", p.Name, ErrEmptyRoute)
	}

	priorStop := p.Start
	priorStart := math.PointAt(p.Start, math.Radians(p.Heading)+math.Pi, p.Radius)
	var r Route

	for i, leg := range p.Legs {
		stage, strategy := p.buildLeg(priorStart, priorStop, leg)
		lg.Debug("built leg", slog.Int("leg", i), slog.String("strategy", strategy.String()),
			slog.Int("figures", len(stage)))

		if stage.Empty() {
			err := &LegError{Plan: p.Name, Leg: i, Strategy: strategy, Err: ErrInfeasible}
			lg.Warn("leg infeasible", slog.Int("leg", i), slog.String("strategy", strategy.String()),
				slog.String("from", priorStop.String()), slog.String("to", leg.To.String()))
			return nil, err
		}

		r = append(r, stage...)
		priorStart, priorStop = track(r)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	lg.Info("built route", slog.Int("figures", len(r)), slog.Float64("length", r.Length()))
	return r, nil
}

// buildLeg returns the route for a single leg along with the strategy
// that was used for it; for Auto legs, that's the stage that succeeded or
// the last one that was tried.
func (p *Plan) buildLeg(priorStart, priorStop math.Point, leg Leg) (Route, Strategy) {
	radius := leg.radius(p)

	switch leg.Strategy {
	case Direct:
		return LineStage(priorStop, leg.To), Direct

	case Itinerary:
		return ItineraryStage(priorStart, priorStop, leg.To, radius), Itinerary

	case Through:
		return ThroughStage(priorStart, priorStop, leg.To, radius), Through

	case Combine:
		return CombineStage(priorStart, priorStop, leg.To, radius, leg.exitRadius(p),
			math.Radians(leg.Course), leg.Range), Combine

	default:
		order := []Strategy{Itinerary, Through}
		turn := math.BearingSignedTurn(math.Bearing(priorStart, priorStop), math.Bearing(priorStop, leg.To))
		if math.Abs(turn) > math.Radians(ReversalThreshold) {
			order = []Strategy{Through, Itinerary}
		}

		var r Route
		for _, s := range order {
			if s == Through {
				r = ThroughStage(priorStart, priorStop, leg.To, radius)
			} else {
				r = ItineraryStage(priorStart, priorStop, leg.To, radius)
			}
			if !r.Empty() {
				return r, s
			}
		}
		return nil, order[len(order)-1]
	}
}
