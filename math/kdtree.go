// math/kdtree.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"slices"
)

// KDNode is a node in a 2D KD-tree of planar points.
type KDNode struct {
	Location Point
	Left     *KDNode
	Right    *KDNode
	axis     int
}

// BuildKDTree constructs a balanced KD-tree from a slice of points; the
// slice is reordered in the process. The tree alternates splitting by x
// and y at each level.
func BuildKDTree(points []Point) *KDNode {
	if len(points) == 0 {
		return nil
	}
	return buildKDTreeRecursive(points, 0)
}

func buildKDTreeRecursive(points []Point, depth int) *KDNode {
	if len(points) == 0 {
		return nil
	}
	axis := depth % 2
	if len(points) == 1 {
		return &KDNode{Location: points[0], axis: axis}
	}

	slices.SortFunc(points, func(a, b Point) int {
		if a[axis] < b[axis] {
			return -1
		} else if a[axis] > b[axis] {
			return 1
		}
		return 0
	})

	median := len(points) / 2
	return &KDNode{
		Location: points[median],
		Left:     buildKDTreeRecursive(points[:median], depth+1),
		Right:    buildKDTreeRecursive(points[median+1:], depth+1),
		axis:     axis,
	}
}

// Nearest returns the point in the tree closest to p along with its
// distance. The returned Boolean is false if the tree is empty.
func (tree *KDNode) Nearest(p Point) (Point, float64, bool) {
	if tree == nil {
		return Point{}, 0, false
	}
	best, bestDist := tree.Location, Distance(tree.Location, p)
	tree.nearest(p, &best, &bestDist)
	return best, bestDist, true
}

func (tree *KDNode) nearest(p Point, best *Point, bestDist *float64) {
	if tree == nil {
		return
	}
	if d := Distance(tree.Location, p); d < *bestDist {
		*best, *bestDist = tree.Location, d
	}

	delta := p[tree.axis] - tree.Location[tree.axis]
	near, far := tree.Left, tree.Right
	if delta > 0 {
		near, far = far, near
	}
	near.nearest(p, best, bestDist)
	// Only descend into the other side if the splitting plane is closer
	// than the best point found so far.
	if Abs(delta) < *bestDist {
		far.nearest(p, best, bestDist)
	}
}

// selectByIndex walks the tree using the bits of index to navigate.
// At each level, bit 0 decides left (0) or right (1), then shift right.
// This gives well-distributed traversal: 0→root, 1→right, 2→left, 3→right-right, etc.
func (tree *KDNode) selectByIndex(index int) Point {
	if tree == nil {
		return Point{}
	}

	node := tree
	for index != 0 {
		if index&1 == 0 {
			if node.Left != nil {
				node = node.Left
			}
		} else {
			if node.Right != nil {
				node = node.Right
			}
		}
		index >>= 1

		if node.Left == nil && node.Right == nil {
			break
		}
	}

	return node.Location
}

// SelectDistributedPoints selects up to n well-spread points from a set
// using KD-tree partitioning and index-based traversal. The input slice
// isn't modified.
func SelectDistributedPoints(points []Point, n int) map[Point]bool {
	if n <= 0 || len(points) == 0 {
		return make(map[Point]bool)
	}
	if n >= len(points) {
		result := make(map[Point]bool, len(points))
		for _, p := range points {
			result[p] = true
		}
		return result
	}

	tree := BuildKDTree(slices.Clone(points))

	// We may need more iterations than n if we hit duplicates.
	result := make(map[Point]bool, n)
	for i := 0; len(result) < n && i < n*3; i++ {
		result[tree.selectByIndex(i)] = true
	}
	return result
}
