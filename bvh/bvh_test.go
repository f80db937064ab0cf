package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
)

func sphereAt(x float32) primitive.TraceablePrimitive {
	return primitive.Sphere{Center: geom.Point3{X: x, Y: 0, Z: 0}, Radius: 0.4}
}

// bruteForceNearest linearly scans every primitive and returns the same
// (id, t) shape Nearest does, for comparison against the accelerated path.
func bruteForceNearest(prims []primitive.TraceablePrimitive, ray geom.Ray3) (Hit, bool) {
	best := Hit{}
	found := false
	bestT := float32(math.MaxFloat32)
	for i, p := range prims {
		t, ok := p.DistanceTo(ray)
		if ok && t < bestT {
			bestT = t
			best = Hit{PrimitiveIndex: i, T: t}
			found = true
		}
	}
	return best, found
}

func TestBuildEmptySceneYieldsEmptyLeaf(t *testing.T) {
	tree := Build(nil)
	assert.Len(t, tree.Nodes, 1)
	assert.True(t, tree.Nodes[0].IsLeaf())
	assert.Empty(t, tree.Nodes[0].Leaves)
}

func TestBuildRootAtZero(t *testing.T) {
	prims := []primitive.TraceablePrimitive{sphereAt(0), sphereAt(1)}
	tree := Build(prims)
	assert.NotEmpty(t, tree.Nodes)

	// Root must always be index 0 and must enclose every other node: no
	// other node may claim it as a child.
	for i, n := range tree.Nodes {
		if i == 0 {
			continue
		}
		assert.NotEqual(t, 0, n.Left, "node %d claims root as its left child", i)
		assert.NotEqual(t, 0, n.Right, "node %d claims root as its right child", i)
	}
	root := tree.Nodes[0]
	for _, n := range tree.Nodes[1:] {
		assert.True(t, root.Bounds.Min.X <= n.Bounds.Min.X && root.Bounds.Max.X >= n.Bounds.Max.X)
	}
}

func TestBuildSmallSceneStaysOneLeaf(t *testing.T) {
	prims := make([]primitive.TraceablePrimitive, 5)
	for i := range prims {
		prims[i] = sphereAt(float32(i))
	}
	tree := Build(prims)
	assert.Len(t, tree.Nodes, 1)
	assert.Len(t, tree.Nodes[0].Leaves, 5)
}

func TestBuildLeafThresholdIsExclusive(t *testing.T) {
	// Exactly LeafThreshold primitives must still attempt a split: the leaf
	// condition is |S| < LeafThreshold, not <=.
	prims := make([]primitive.TraceablePrimitive, LeafThreshold)
	for i := range prims {
		prims[i] = sphereAt(float32(i) * 10)
	}
	tree := Build(prims)
	assert.False(t, tree.Nodes[0].IsLeaf())
}

func TestBuildSplitsBeyondThreshold(t *testing.T) {
	prims := make([]primitive.TraceablePrimitive, 20)
	for i := range prims {
		prims[i] = sphereAt(float32(i))
	}
	tree := Build(prims)
	assert.Greater(t, len(tree.Nodes), 1)
	assert.False(t, tree.Nodes[0].IsLeaf())
}

func TestNearestFindsClosestOfTwo(t *testing.T) {
	prims := []primitive.TraceablePrimitive{
		primitive.Sphere{Center: geom.Point3{X: 0, Y: 0, Z: 0}, Radius: 1},
		primitive.Sphere{Center: geom.Point3{X: 0, Y: 0, Z: -10}, Radius: 1},
	}
	tree := Build(prims)
	ray := geom.Ray3{Origin: geom.Point3{X: 0, Y: 0, Z: 5}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}}

	hit, ok := Nearest(tree, prims, ray)
	assert.True(t, ok)
	assert.Equal(t, 0, hit.PrimitiveIndex)
	assert.InDelta(t, 4, hit.T, 1e-3)
}

func TestNearestMissesEmptyTree(t *testing.T) {
	tree := Build(nil)
	ray := geom.Ray3{Origin: geom.Point3{X: 0, Y: 0, Z: 5}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}}
	_, ok := Nearest(tree, nil, ray)
	assert.False(t, ok)
}

func TestNearestAgreesAcrossManyPrimitives(t *testing.T) {
	prims := make([]primitive.TraceablePrimitive, 50)
	for i := range prims {
		prims[i] = primitive.Sphere{Center: geom.Point3{X: float32(i) * 3, Y: 0, Z: 0}, Radius: 1}
	}
	tree := Build(prims)
	ray := geom.Ray3{Origin: geom.Point3{X: 30, Y: 0, Z: 50}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}}

	hit, ok := Nearest(tree, prims, ray)
	assert.True(t, ok)
	assert.Equal(t, 10, hit.PrimitiveIndex)
}

// TestTraversalEquivalenceAgainstBruteForce is property 7: for every ray and
// scene, the accelerated nearest-hit must match a brute-force linear scan,
// same (id, t) or both miss.
func TestTraversalEquivalenceAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for scene := 0; scene < 20; scene++ {
		n := 1 + rng.Intn(200)
		prims := make([]primitive.TraceablePrimitive, n)
		for i := range prims {
			prims[i] = primitive.Sphere{
				Center: geom.Point3{
					X: (rng.Float32()*2 - 1) * 20,
					Y: (rng.Float32()*2 - 1) * 20,
					Z: (rng.Float32()*2 - 1) * 20,
				},
				Radius: 0.1 + rng.Float32()*2,
			}
		}
		tree := Build(prims)

		for r := 0; r < 50; r++ {
			ray := geom.Ray3{
				Origin: geom.Point3{
					X: (rng.Float32()*2 - 1) * 30,
					Y: (rng.Float32()*2 - 1) * 30,
					Z: (rng.Float32()*2 - 1) * 30,
				},
				Direction: geom.Vector3{
					X: rng.Float32()*2 - 1,
					Y: rng.Float32()*2 - 1,
					Z: rng.Float32()*2 - 1,
				}.Normalize(),
			}

			wantHit, wantOk := bruteForceNearest(prims, ray)
			gotHit, gotOk := Nearest(tree, prims, ray)

			assert.Equal(t, wantOk, gotOk, "scene %d ray %d: hit/miss disagreement", scene, r)
			if wantOk && gotOk {
				assert.Equal(t, wantHit.PrimitiveIndex, gotHit.PrimitiveIndex, "scene %d ray %d: id disagreement", scene, r)
				assert.InDelta(t, wantHit.T, gotHit.T, 1e-2, "scene %d ray %d: t disagreement", scene, r)
			}
		}
	}
}

// TestNearestStressWithManySpheres is S6: 10,000 random spheres in a
// [-100,100]^3 cube, 1,000 random rays, BVH nearest must equal brute-force
// nearest and the average node-visit count per ray must stay well under a
// linear scan (< 2*log2(10000)).
func TestNearestStressWithManySpheres(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	const numSpheres = 10000
	prims := make([]primitive.TraceablePrimitive, numSpheres)
	for i := range prims {
		prims[i] = primitive.Sphere{
			Center: geom.Point3{
				X: (rng.Float32()*2 - 1) * 100,
				Y: (rng.Float32()*2 - 1) * 100,
				Z: (rng.Float32()*2 - 1) * 100,
			},
			Radius: 0.1 + rng.Float32()*0.5,
		}
	}
	tree := Build(prims)

	const numRays = 1000
	totalVisits := 0
	for i := 0; i < numRays; i++ {
		ray := geom.Ray3{
			Origin: geom.Point3{
				X: (rng.Float32()*2 - 1) * 150,
				Y: (rng.Float32()*2 - 1) * 150,
				Z: (rng.Float32()*2 - 1) * 150,
			},
			Direction: geom.Vector3{
				X: rng.Float32()*2 - 1,
				Y: rng.Float32()*2 - 1,
				Z: rng.Float32()*2 - 1,
			}.Normalize(),
		}

		wantHit, wantOk := bruteForceNearest(prims, ray)
		gotHit, gotOk, visits := nearestCounting(tree, prims, ray)
		totalVisits += visits

		assert.Equal(t, wantOk, gotOk, "ray %d: hit/miss disagreement", i)
		if wantOk && gotOk {
			assert.Equal(t, wantHit.PrimitiveIndex, gotHit.PrimitiveIndex, "ray %d: id disagreement", i)
			assert.InDelta(t, wantHit.T, gotHit.T, 1e-2, "ray %d: t disagreement", i)
		}
	}

	avgVisits := float64(totalVisits) / float64(numRays)
	bound := 2 * math.Log2(float64(numSpheres))
	assert.Less(t, avgVisits, bound, "average node visits per ray too high: got %f, want < %f", avgVisits, bound)
}

// TestDegenerateTriangleNeverHits is S4: a zero-area triangle must never
// report a hit for any ray, since its cross-product normal is undefined and
// the Moller-Trumbore determinant collapses to zero (below EPSILON).
func TestDegenerateTriangleNeverHits(t *testing.T) {
	zero := geom.Point3{X: 0, Y: 0, Z: 0}
	prims := []primitive.TraceablePrimitive{primitive.NewTriangle(zero, zero, zero)}
	tree := Build(prims)

	rays := []geom.Ray3{
		{Origin: geom.Point3{X: 0, Y: 0, Z: 5}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}},
		{Origin: geom.Point3{X: 5, Y: 5, Z: 5}, Direction: geom.Vector3{X: -1, Y: -1, Z: -1}.Normalize()},
		{Origin: geom.Point3{X: -10, Y: 0, Z: 0}, Direction: geom.Vector3{X: 1, Y: 0, Z: 0}},
	}
	for _, ray := range rays {
		_, ok := Nearest(tree, prims, ray)
		assert.False(t, ok)
	}
}

// TestCoplanarQuadHitsAndMisses is S2: two coplanar triangles forming a unit
// quad at z=-5. Every ray through the quad hits, every ray missing it
// reports background (a miss).
func TestCoplanarQuadHitsAndMisses(t *testing.T) {
	t1 := primitive.NewTriangle(
		geom.Point3{X: -1, Y: -1, Z: -5},
		geom.Point3{X: 1, Y: -1, Z: -5},
		geom.Point3{X: 1, Y: 1, Z: -5},
	)
	t2 := primitive.NewTriangle(
		geom.Point3{X: -1, Y: -1, Z: -5},
		geom.Point3{X: 1, Y: 1, Z: -5},
		geom.Point3{X: -1, Y: 1, Z: -5},
	)
	prims := []primitive.TraceablePrimitive{t1, t2}
	tree := Build(prims)

	hits := []geom.Ray3{
		{Origin: geom.Point3{X: 0, Y: 0, Z: 0}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}},
		{Origin: geom.Point3{X: -0.9, Y: -0.9, Z: 0}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}},
		{Origin: geom.Point3{X: 0.9, Y: 0.9, Z: 0}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}},
	}
	for _, ray := range hits {
		_, ok := Nearest(tree, prims, ray)
		assert.True(t, ok)
	}

	misses := []geom.Ray3{
		{Origin: geom.Point3{X: 2, Y: 2, Z: 0}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}},
		{Origin: geom.Point3{X: -2, Y: 0, Z: 0}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}},
	}
	for _, ray := range misses {
		_, ok := Nearest(tree, prims, ray)
		assert.False(t, ok)
	}
}
