package bvh

import (
	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
)

// Hit is the result of a successful nearest-hit query: the index of the
// primitive that was struck (into the same slice Build was called with) and
// the ray parameter t at which it was struck.
type Hit struct {
	PrimitiveIndex int
	T              float32
}

// Nearest walks the tree with an explicit stack, pruning any subtree whose
// bounding box entry-t is already no better than the closest hit found so
// far. Children are visited nearest-box-first to tighten that bound early.
func Nearest(tree Tree, prims []primitive.TraceablePrimitive, ray geom.Ray3) (Hit, bool) {
	hit, ok, _ := nearestCounting(tree, prims, ray)
	return hit, ok
}

// nearestCounting is Nearest's implementation, additionally reporting how
// many nodes the traversal visited; tests use the count to check the BVH
// actually prunes (property 8) rather than degenerating to a linear scan.
func nearestCounting(tree Tree, prims []primitive.TraceablePrimitive, ray geom.Ray3) (Hit, bool, int) {
	if len(tree.Nodes) == 0 {
		return Hit{}, false, 0
	}

	best := Hit{}
	found := false
	bestT := float32(3.4028235e38)
	visited := 0

	stack := make([]int, 0, 64)
	stack = append(stack, 0)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := tree.Nodes[idx]
		visited++
		entryT, ok := node.Bounds.DistanceTo(ray)
		if !ok {
			continue
		}
		// DistanceTo reports the exit t when the origin lies inside the box;
		// such a box is entered at t=0, so it is never pruned by bestT.
		b, o := node.Bounds, ray.Origin
		if o.X >= b.Min.X && o.X <= b.Max.X && o.Y >= b.Min.Y && o.Y <= b.Max.Y && o.Z >= b.Min.Z && o.Z <= b.Max.Z {
			entryT = 0
		}
		if found && entryT >= bestT {
			continue
		}

		if node.IsLeaf() {
			for _, pIdx := range node.Leaves {
				t, ok := prims[pIdx].DistanceTo(ray)
				if ok && t < bestT {
					bestT = t
					best = Hit{PrimitiveIndex: pIdx, T: t}
					found = true
				}
			}
			continue
		}

		leftT, leftOk := tree.Nodes[node.Left].Bounds.DistanceTo(ray)
		rightT, rightOk := tree.Nodes[node.Right].Bounds.DistanceTo(ray)

		switch {
		case leftOk && rightOk:
			// Push the farther child first so the nearer one pops first.
			if leftT < rightT {
				stack = append(stack, node.Right, node.Left)
			} else {
				stack = append(stack, node.Left, node.Right)
			}
		case leftOk:
			stack = append(stack, node.Left)
		case rightOk:
			stack = append(stack, node.Right)
		}
	}

	return best, found, visited
}
