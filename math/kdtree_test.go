// math/kdtree_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"

	"github.com/mmp/turnpath/rand"
)

func TestBuildKDTree(t *testing.T) {
	if tree := BuildKDTree(nil); tree != nil {
		t.Error("expected nil tree for nil input")
	}
	if tree := BuildKDTree([]Point{}); tree != nil {
		t.Error("expected nil tree for empty input")
	}

	points := []Point{{-75, 40}}
	tree := BuildKDTree(points)
	if tree == nil {
		t.Fatal("expected non-nil tree for single point")
	}
	if tree.Location != points[0] {
		t.Errorf("expected location %v, got %v", points[0], tree.Location)
	}
	if tree.Left != nil || tree.Right != nil {
		t.Error("expected nil children for single-point tree")
	}
}

func TestKDTreeNearest(t *testing.T) {
	if _, _, ok := (*KDNode)(nil).Nearest(Point{1, 2}); ok {
		t.Error("expected no nearest point in an empty tree")
	}

	r := rand.Make()
	r.Seed(17)
	var points []Point
	for range 500 {
		points = append(points, Point{1000 * r.Float64(), 1000 * r.Float64()})
	}
	tree := BuildKDTree(append([]Point(nil), points...))

	for range 100 {
		q := Point{1200*r.Float64() - 100, 1200*r.Float64() - 100}

		// Brute force
		expected, expectedDist := points[0], Distance(points[0], q)
		for _, p := range points[1:] {
			if d := Distance(p, q); d < expectedDist {
				expected, expectedDist = p, d
			}
		}

		p, d, ok := tree.Nearest(q)
		if !ok {
			t.Fatalf("%s: no nearest point found", q)
		}
		if p != expected || !Compare(d, expectedDist) {
			t.Errorf("%s: got nearest %s (%f), expected %s (%f)", q, p, d, expected, expectedDist)
		}
	}
}

func TestSelectDistributedPoints(t *testing.T) {
	if result := SelectDistributedPoints(nil, 10); len(result) != 0 {
		t.Errorf("expected empty map for nil input, got %d points", len(result))
	}

	points := []Point{{-75, 40}, {-76, 41}}
	if result := SelectDistributedPoints(points, 10); len(result) != 2 {
		t.Errorf("expected 2 points when requesting more than available, got %d", len(result))
	}
	if result := SelectDistributedPoints(points, 0); len(result) != 0 {
		t.Errorf("expected empty map for n=0, got %d points", len(result))
	}
}

func TestSelectDistributedPointsDistribution(t *testing.T) {
	var points []Point
	for x := 0.; x <= 200; x += 10 {
		for y := 0.; y <= 200; y += 10 {
			points = append(points, Point{x, y})
		}
	}
	orig := append([]Point(nil), points...)

	n := len(points) / 4
	result := SelectDistributedPoints(points, n)

	if len(result) < n/2 || len(result) > n {
		t.Errorf("expected approximately %d points, got %d", n, len(result))
	}

	pointSet := make(map[Point]bool)
	for _, p := range points {
		pointSet[p] = true
	}
	for p := range result {
		if !pointSet[p] {
			t.Errorf("selected point %v not in original set", p)
		}
	}

	for i := range points {
		if points[i] != orig[i] {
			t.Fatalf("input points were reordered")
		}
	}
}

func TestSelectByIndex(t *testing.T) {
	points := []Point{
		{-80, 35}, {-78, 36}, {-76, 37}, {-74, 38},
		{-72, 39}, {-70, 40}, {-68, 41}, {-66, 42},
	}
	tree := BuildKDTree(points)

	seen := make(map[Point]bool)
	for i := range 20 {
		seen[tree.selectByIndex(i)] = true
	}
	if len(seen) < 4 {
		t.Errorf("selectByIndex only found %d unique points, expected at least 4", len(seen))
	}
}

func BenchmarkSelectDistributedPoints(b *testing.B) {
	var points []Point
	for x := 0.; x <= 1000; x += 5 {
		for y := 0.; y <= 500; y += 5 {
			points = append(points, Point{x, y})
		}
	}
	n := len(points) / 10

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SelectDistributedPoints(points, n)
	}
}
