// route/figure.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"encoding/json"
	"fmt"

	"github.com/mmp/turnpath/math"
)

// DefaultSubdivisions is the number of pieces an arc is split into when
// it's converted to points for drawing.
const DefaultSubdivisions = 20

// ArcStage is an arc along with the direction in which it's flown; the
// two bearings of an Arc alone don't say which way around the circle to
// go.
type ArcStage struct {
	Arc       math.Arc       `msgpack:"a"`
	Direction math.Direction `msgpack:"d"`
}

func (a ArcStage) Start() math.Point {
	return a.Arc.StartPoint()
}

func (a ArcStage) Stop() math.Point {
	return a.Arc.StopPoint()
}

func (a ArcStage) Length() float64 {
	return math.ArcLength(a.Arc, a.Direction)
}

// Points returns n+1 points along the arc in the order they're flown.
func (a ArcStage) Points(n int) []math.Point {
	return math.SplitArc(a.Arc, n, a.Direction)
}

// exitBearing returns the direction of travel at the end of the arc.
func (a ArcStage) exitBearing() float64 {
	if a.Direction == math.Left {
		return math.NormalizeBearing(a.Arc.Stop - math.PiOver2)
	}
	return math.NormalizeBearing(a.Arc.Stop + math.PiOver2)
}

func (a ArcStage) Equal(o ArcStage) bool {
	return a.Direction == o.Direction && a.Arc.Equal(o.Arc)
}

func (a ArcStage) String() string {
	return fmt.Sprintf("%s %s", a.Arc, a.Direction)
}

// FigureKind identifies which of a Figure's shapes is valid.
type FigureKind int

const (
	LineFigure FigureKind = iota
	ArcFigure
)

func (k FigureKind) String() string {
	switch k {
	case LineFigure:
		return "line"
	case ArcFigure:
		return "arc"
	default:
		return "ERROR"
	}
}

// Figure is a single element of a route: either a straight segment or an
// arc flown in a given direction. Only the member corresponding to Kind is
// meaningful.
type Figure struct {
	Kind FigureKind       `msgpack:"k"`
	Line math.LineSection `msgpack:"l,omitempty"`
	Arc  ArcStage         `msgpack:"a,omitempty"`
}

func NewLine(start, stop math.Point) Figure {
	return Figure{Kind: LineFigure, Line: math.LineSection{Start: start, Stop: stop}}
}

func NewArc(arc math.Arc, dir math.Direction) Figure {
	return Figure{Kind: ArcFigure, Arc: ArcStage{Arc: arc, Direction: dir}}
}

func (f Figure) Start() math.Point {
	if f.Kind == ArcFigure {
		return f.Arc.Start()
	}
	return f.Line.Start
}

func (f Figure) Stop() math.Point {
	if f.Kind == ArcFigure {
		return f.Arc.Stop()
	}
	return f.Line.Stop
}

func (f Figure) Length() float64 {
	if f.Kind == ArcFigure {
		return f.Arc.Length()
	}
	return f.Line.Length()
}

// ExitBearing returns the direction of travel at the end of the figure.
func (f Figure) ExitBearing() float64 {
	if f.Kind == ArcFigure {
		return f.Arc.exitBearing()
	}
	return f.Line.Bearing()
}

// Points returns the figure as a polyline: the two endpoints of a line or
// n+1 points along an arc.
func (f Figure) Points(n int) []math.Point {
	if f.Kind == ArcFigure {
		return f.Arc.Points(n)
	}
	return []math.Point{f.Line.Start, f.Line.Stop}
}

// PointAt returns the point the given distance along the figure from its
// start. The returned Boolean is false if the distance is out of range.
func (f Figure) PointAt(d float64) (math.Point, bool) {
	if f.Kind == ArcFigure {
		if d < 0 && !math.IsZero(d) {
			return math.Point{}, false
		}
		return math.PointOnArc(f.Arc.Arc, f.Arc.Direction, max(d, 0))
	}
	return f.Line.PointAt(d)
}

func (f Figure) Equal(o Figure) bool {
	if f.Kind != o.Kind {
		return false
	}
	if f.Kind == ArcFigure {
		return f.Arc.Equal(o.Arc)
	}
	return f.Line.Equal(o.Line)
}

func (f Figure) String() string {
	if f.Kind == ArcFigure {
		return f.Arc.String()
	}
	return f.Line.String()
}

// figureJSON is the JSON representation of a Figure; which fields are
// present depends on the type.
type figureJSON struct {
	Type      string      `json:"type"`
	Start     *math.Point `json:"start,omitempty"`
	Stop      *math.Point `json:"stop,omitempty"`
	Center    *math.Point `json:"center,omitempty"`
	Radius    float64     `json:"radius,omitempty"`
	From      *float64    `json:"from,omitempty"`
	To        *float64    `json:"to,omitempty"`
	Direction string      `json:"direction,omitempty"`
}

func (f Figure) MarshalJSON() ([]byte, error) {
	start, stop := f.Start(), f.Stop()
	fj := figureJSON{Type: f.Kind.String(), Start: &start, Stop: &stop}
	if f.Kind == ArcFigure {
		a := f.Arc.Arc
		fj.Center = &a.Center
		fj.Radius = a.Radius
		fj.From, fj.To = &a.Start, &a.Stop
		fj.Direction = f.Arc.Direction.String()
	}
	return json.Marshal(fj)
}

func (f *Figure) UnmarshalJSON(b []byte) error {
	var fj figureJSON
	if err := json.Unmarshal(b, &fj); err != nil {
		return err
	}

	switch fj.Type {
	case "line":
		if fj.Start == nil || fj.Stop == nil {
			return fmt.Errorf("line figure must have \"start\" and \"stop\"")
		}
		*f = NewLine(*fj.Start, *fj.Stop)

	case "arc":
		if fj.Center == nil || fj.From == nil || fj.To == nil {
			return fmt.Errorf("arc figure must have \"center\", \"from\" and \"to\"")
		}
		dir, err := math.ParseDirection(fj.Direction)
		if err != nil {
			return err
		}
		*f = NewArc(math.MakeArc(*fj.Center, fj.Radius, *fj.From, *fj.To), dir)

	default:
		return fmt.Errorf("%q: unknown figure type", fj.Type)
	}
	return nil
}
