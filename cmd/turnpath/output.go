// cmd/turnpath/output.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"

	"github.com/mmp/turnpath/math"
	"github.com/mmp/turnpath/route"
	"github.com/mmp/turnpath/svg"
)

// points returns the points to output for a route: samples at the given
// spacing if one was requested and otherwise its polyline.
func points(r route.Route, opt outputOptions) []math.Point {
	if opt.Sample > 0 {
		return r.Sample(opt.Sample)
	}
	return r.Points(opt.Subdivisions)
}

func writeText(w io.Writer, results []result, opt outputOptions) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "%s:\n", res.Plan.Name); err != nil {
			return err
		}
		if res.Err != nil {
			fmt.Fprintf(w, "   %v\n\n", res.Err)
			continue
		}
		fmt.Fprintf(w, "%s\n", res.Route)
		if opt.Sample > 0 {
			for _, p := range points(res.Route, opt) {
				fmt.Fprintf(w, "   %s\n", p)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

type jsonRoute struct {
	Length  float64      `json:"length,omitempty"`
	Figures route.Route  `json:"figures,omitempty"`
	Points  []math.Point `json:"points,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// writeJSON writes an object with an entry for each plan, in the order
// the plans were given.
func writeJSON(w io.Writer, results []result, opt outputOptions) error {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	for _, res := range results {
		if res.Err != nil {
			m.Set(res.Plan.Name, jsonRoute{Error: res.Err.Error()})
		} else {
			m.Set(res.Plan.Name, jsonRoute{
				Length:  res.Route.Length(),
				Figures: res.Route,
				Points:  points(res.Route, opt),
			})
		}
	}

	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

func writeArchive(w io.Writer, results []result, opt outputOptions) error {
	a := route.NewArchive()
	for _, res := range results {
		a.Add(res.Plan, res.Route)
	}
	return route.WriteArchive(w, a)
}

func writeSVG(w io.Writer, results []result, opt outputOptions) error {
	var items []svg.Item
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		wp := []math.Point{res.Plan.Start}
		for _, leg := range res.Plan.Legs {
			wp = append(wp, leg.To)
		}
		items = append(items, svg.Item{Name: res.Plan.Name, Route: res.Route, Waypoints: wp})
	}

	sopt := svg.DefaultOptions()
	sopt.Subdivisions = opt.Subdivisions
	return svg.Render(w, items, sopt)
}
