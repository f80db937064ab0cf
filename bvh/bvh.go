// Package bvh implements the bounding volume hierarchy used to accelerate
// nearest-hit ray queries against a flattened scene: a median-split binary
// tree over primitive centroids, with a stack-based traversal that prunes
// subtrees whose bounding box the current best hit already beats.
package bvh

import (
	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
)

// LeafThreshold is the set size at which the builder attempts a split: a
// set of fewer primitives always becomes a leaf, and a set of this many or
// more becomes a leaf only if no split separates its centroids.
const LeafThreshold = 8

// Node is one node of the tree. Leaves carry a slice of primitive indices
// into the scene's flattened primitive array; interior nodes carry child
// node indices into the tree's node slice.
type Node struct {
	Bounds   primitive.Aabb
	Left     int // index into Tree.Nodes, -1 if this is a leaf
	Right    int // index into Tree.Nodes, -1 if this is a leaf
	Leaves   []int
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree is a built bounding volume hierarchy. The root is always Nodes[0].
type Tree struct {
	Nodes []Node
}

// entry bundles a primitive's index with the bounds/centroid data the
// builder needs, without requiring it to re-derive them from the primitive
// on every comparison during the build.
type entry struct {
	index    int
	bounds   primitive.Aabb
	centroid geom.Point3
}

// Build constructs a BVH over the given world-space primitives. An empty
// input yields a tree with a single empty leaf node, not an error: an empty
// scene is a valid scene.
func Build(prims []primitive.TraceablePrimitive) Tree {
	entries := make([]entry, len(prims))
	for i, p := range prims {
		entries[i] = entry{index: i, bounds: p.BoundingBox(), centroid: p.Centroid()}
	}

	tree := &Tree{}
	tree.build(entries)
	return *tree
}

func (tree *Tree) build(entries []entry) int {
	bounds := boundsOf(entries)

	if len(entries) < LeafThreshold {
		return tree.pushLeaf(entries, bounds)
	}

	axis := widestAxis(entries)
	left, right := medianSplit(entries, axis)
	if len(left) == 0 || len(right) == 0 {
		// All centroids coincide on the chosen axis; further splitting can't
		// separate them, so stop here rather than recursing forever.
		return tree.pushLeaf(entries, bounds)
	}

	idx := len(tree.Nodes)
	tree.Nodes = append(tree.Nodes, Node{Bounds: bounds, Left: -1, Right: -1})

	leftIdx := tree.build(left)
	rightIdx := tree.build(right)
	tree.Nodes[idx].Left = leftIdx
	tree.Nodes[idx].Right = rightIdx
	return idx
}

func (tree *Tree) pushLeaf(entries []entry, bounds primitive.Aabb) int {
	leaves := make([]int, len(entries))
	for i, e := range entries {
		leaves[i] = e.index
	}
	idx := len(tree.Nodes)
	tree.Nodes = append(tree.Nodes, Node{Bounds: bounds, Left: -1, Right: -1, Leaves: leaves})
	return idx
}

func boundsOf(entries []entry) primitive.Aabb {
	box := primitive.EmptyAabb()
	for _, e := range entries {
		box = box.Union(e.bounds)
	}
	return box
}

// widestAxis returns 0, 1, or 2 for X, Y, Z: the axis over which the
// entries' centroids have the greatest spread.
func widestAxis(entries []entry) int {
	min := geom.Point3{X: maxF, Y: maxF, Z: maxF}
	max := geom.Point3{X: -maxF, Y: -maxF, Z: -maxF}
	for _, e := range entries {
		c := e.centroid
		min = geom.Point3{X: minF(min.X, c.X), Y: minF(min.Y, c.Y), Z: minF(min.Z, c.Z)}
		max = geom.Point3{X: maxF2(max.X, c.X), Y: maxF2(max.Y, c.Y), Z: maxF2(max.Z, c.Z)}
	}
	spreadX := max.X - min.X
	spreadY := max.Y - min.Y
	spreadZ := max.Z - min.Z
	if spreadX >= spreadY && spreadX >= spreadZ {
		return 0
	}
	if spreadY >= spreadZ {
		return 1
	}
	return 2
}

func medianSplit(entries []entry, axis int) (left, right []entry) {
	axisValue := func(p geom.Point3) float32 {
		switch axis {
		case 0:
			return p.X
		case 1:
			return p.Y
		default:
			return p.Z
		}
	}

	min, max := axisValue(entries[0].centroid), axisValue(entries[0].centroid)
	for _, e := range entries[1:] {
		v := axisValue(e.centroid)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mid := (min + max) / 2

	for _, e := range entries {
		if axisValue(e.centroid) < mid {
			left = append(left, e)
		} else {
			right = append(right, e)
		}
	}
	return left, right
}

const maxF = 3.4028235e38

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF2(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
