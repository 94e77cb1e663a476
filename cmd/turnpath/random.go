// cmd/turnpath/random.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mmp/turnpath/math"
	"github.com/mmp/turnpath/rand"
	"github.com/mmp/turnpath/route"
)

type weightedStrategy struct {
	Strategy route.Strategy
	Weight   int
}

// Relative frequencies of the strategies used for random legs.
var strategyWeights = []weightedStrategy{
	{route.Auto, 5},
	{route.Itinerary, 2},
	{route.Through, 2},
	{route.Combine, 2},
}

// generatePlans returns n plans with waypoints scattered over an area
// that's a few dozen turn radii across. Waypoints are picked from random
// candidates so that they're reasonably spread out and legs aren't
// trivially short.
func generatePlans(r *rand.Rand, n int, radius float64) []route.Plan {
	extent := 40 * radius

	plans := make([]route.Plan, n)
	for i := range plans {
		candidates := make([]math.Point, 200)
		for j := range candidates {
			candidates[j] = math.Point{r.Range(0, extent), r.Range(0, extent)}
		}

		nlegs := 2 + r.Intn(4)
		selected := math.SelectDistributedPoints(candidates, nlegs+1)
		waypoints := make([]math.Point, 0, len(selected))
		for p := range selected {
			waypoints = append(waypoints, p)
		}
		// Map iteration order is random; sort so that the seed determines
		// the plans and then shuffle.
		slices.SortFunc(waypoints, func(a, b math.Point) int {
			return cmp.Or(cmp.Compare(a[0], b[0]), cmp.Compare(a[1], b[1]))
		})
		rand.Shuffle(r, waypoints)

		// Start at the candidate nearest the center of the area.
		tree := math.BuildKDTree(slices.Clone(candidates))
		start, _, _ := tree.Nearest(math.Point{extent / 2, extent / 2})
		waypoints = slices.DeleteFunc(waypoints, func(p math.Point) bool { return p == start })

		p := route.Plan{
			Name:    fmt.Sprintf("random-%d", i),
			Start:   start,
			Heading: rand.Sample(r, 0., 45., 90., 135., 180., 225., 270., 315.),
			Radius:  radius,
		}
		for _, wp := range waypoints {
			p.Legs = append(p.Legs, randomLeg(r, wp, radius))
		}
		plans[i] = p
	}
	return plans
}

func randomLeg(r *rand.Rand, to math.Point, radius float64) route.Leg {
	idx := rand.SampleWeighted(r, strategyWeights, func(s weightedStrategy) int { return s.Weight })

	leg := route.Leg{To: to, Strategy: strategyWeights[idx].Strategy}
	if leg.Strategy == route.Combine {
		leg.ExitRadius = radius * r.Range(0.5, 1.5)
		leg.Course = math.Floor(r.Range(0, 360))
		leg.Range = radius * r.Range(1, 4)
	}
	return leg
}
