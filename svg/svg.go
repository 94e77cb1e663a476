// svg/svg.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package svg draws routes as SVG files.
package svg

import (
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/jbeda/geom"

	"github.com/mmp/turnpath/math"
	"github.com/mmp/turnpath/route"
)

var ErrNothingToDraw = errors.New("svg: nothing to draw")

///////////////////////////////////////////////////////////////////////////
// Writer

// Writer emits SVG elements to an io.Writer. The first write error is
// recorded and returned by Err; everything after it is dropped.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (s *Writer) printf(format string, args ...any) {
	if s.err == nil {
		_, s.err = fmt.Fprintf(s.w, format, args...)
	}
}

func (s *Writer) Err() error {
	return s.err
}

// attrs converts the provided strings to element attributes: those with
// an "=" are used as is and anything else is taken to be a style.
func attrs(s []string) string {
	var sb strings.Builder
	for _, a := range s {
		if strings.Index(a, "=") > 0 {
			sb.WriteString(a + " ")
		} else if a != "" {
			fmt.Fprintf(&sb, "style='%s' ", a)
		}
	}
	return sb.String()
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (s *Writer) Start(viewBox geom.Rect, a ...string) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), attrs(a))
}

func (s *Writer) End() {
	s.printf("</svg>\n")
}

func (s *Writer) StartGroup(id string, a ...string) {
	s.printf("<g id='%s' %s>\n", html.EscapeString(id), attrs(a))
}

func (s *Writer) EndGroup() {
	s.printf("</g>\n")
}

func (s *Writer) Line(p1, p2 geom.Coord, a ...string) {
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, p1.Y, p2.X, p2.Y, attrs(a))
}

func (s *Writer) Circle(c geom.Coord, r float64, a ...string) {
	s.printf("<circle cx='%f' cy='%f' r='%f' %s/>\n", c.X, c.Y, r, attrs(a))
}

func (s *Writer) StartPath(p geom.Coord, a ...string) {
	s.printf("<path %sd='M%f,%f", attrs(a), p.X, p.Y)
}

func (s *Writer) EndPath() {
	s.printf("'/>\n")
}

func (s *Writer) PathLineTo(p geom.Coord) {
	s.printf("\n  L%f,%f", p.X, p.Y)
}

func (s *Writer) PathCircularArcTo(p geom.Coord, r float64, largeArc, sweep bool) {
	s.printf("\n  A%f,%f 0 %s,%s %f,%f", r, r, onezero(largeArc), onezero(sweep), p.X, p.Y)
}

///////////////////////////////////////////////////////////////////////////
// Rendering

type Options struct {
	Subdivisions int     // used to find the extent of arcs
	Margin       float64 // added around the drawing
	Stroke       float64 // line width
	Waypoints    bool    // draw a marker at each waypoint
}

func DefaultOptions() Options {
	return Options{Subdivisions: route.DefaultSubdivisions, Margin: 10, Stroke: 1, Waypoints: true}
}

// Item is a single route to be drawn.
type Item struct {
	Name      string
	Route     route.Route
	Waypoints []math.Point
}

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#17becf"}

// coord converts a point to SVG coordinates, where y increases downward.
func coord(p math.Point) geom.Coord {
	return geom.Coord{X: p[0], Y: 0 - p[1]}
}

// Render draws the items' routes to w, one group per item. Empty routes
// are skipped.
func Render(w io.Writer, items []Item, opt Options) error {
	if opt.Subdivisions <= 0 {
		opt.Subdivisions = route.DefaultSubdivisions
	}
	if opt.Stroke <= 0 {
		opt.Stroke = 1
	}

	var bounds geom.Rect
	haveBounds := false
	expand := func(p math.Point) {
		if c := coord(p); !haveBounds {
			bounds = geom.Rect{Min: c, Max: c}
			haveBounds = true
		} else {
			bounds.ExpandToContainCoord(c)
		}
	}
	for _, it := range items {
		if it.Route.Empty() {
			continue
		}
		for _, p := range it.Route.Points(opt.Subdivisions) {
			expand(p)
		}
		if opt.Waypoints {
			for _, p := range it.Waypoints {
				expand(p)
			}
		}
	}
	if !haveBounds {
		return ErrNothingToDraw
	}
	bounds.Min = bounds.Min.Minus(geom.Coord{X: opt.Margin, Y: opt.Margin})
	bounds.Max = bounds.Max.Plus(geom.Coord{X: opt.Margin, Y: opt.Margin})

	s := NewWriter(w)
	s.Start(bounds)
	for i, it := range items {
		if it.Route.Empty() {
			continue
		}
		color := palette[i%len(palette)]
		s.StartGroup(it.Name)
		drawRoute(s, it.Route, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%f", color, opt.Stroke))
		if opt.Waypoints {
			for _, p := range it.Waypoints {
				s.Circle(coord(p), 2*opt.Stroke, "fill:"+color)
			}
		}
		s.EndGroup()
	}
	s.End()

	return s.Err()
}

func drawRoute(s *Writer, r route.Route, style string) {
	s.StartPath(coord(r.Start()), style)
	for _, f := range r {
		switch f.Kind {
		case route.LineFigure:
			s.PathLineTo(coord(f.Line.Stop))

		case route.ArcFigure:
			arc, dir := f.Arc.Arc, f.Arc.Direction
			sweep := math.ArcSweep(arc, dir)
			if math.IsZero(sweep) {
				continue
			}
			// Clockwise in the plane is clockwise on the screen after
			// flipping y, which is SVG's positive sweep.
			cw := dir == math.Right
			if sweep > math.Pi {
				// Split it so that the endpoints never coincide.
				s.PathCircularArcTo(coord(math.ArcMidpoint(arc, dir)), arc.Radius, false, cw)
			}
			s.PathCircularArcTo(coord(f.Stop()), arc.Radius, false, cw)
		}
	}
	s.EndPath()
}
