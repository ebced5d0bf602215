package bvh

import (
	"math/rand"
	"testing"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/stats"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// boxFrustum builds an axis-aligned frustum whose interior is exactly
// [min, max], useful for exercising Query without a projection matrix.
func boxFrustum(min, max types.Vec3) geom.Frustum {
	return geom.Frustum{Planes: [6]geom.Plane{
		geom.PlaneLeft:   {Normal: types.XYZ(1, 0, 0), D: -min[0]},
		geom.PlaneRight:  {Normal: types.XYZ(-1, 0, 0), D: max[0]},
		geom.PlaneBottom: {Normal: types.XYZ(0, 1, 0), D: -min[1]},
		geom.PlaneTop:    {Normal: types.XYZ(0, -1, 0), D: max[1]},
		geom.PlaneNear:   {Normal: types.XYZ(0, 0, 1), D: -min[2]},
		geom.PlaneFar:    {Normal: types.XYZ(0, 0, -1), D: max[2]},
	}}
}

func buildGridTree(t *testing.T, n int, spacing float32) (*Tree[int], map[uint32]geom.Aabb) {
	t.Helper()
	tree := &Tree[int]{}
	config := BuildConfig{MaxDepth: 100, MinObjects: 1, MinVolume: 1}
	boxes := map[uint32]geom.Aabb{}
	for i := 0; i < n; i++ {
		x := float32(i) * spacing
		box := geom.NewAabb(types.XYZ(x, 0, 0), types.XYZ(x+1, 1, 1))
		tree.Insert(NewHandle(uint32(i), box, i), config)
		boxes[uint32(i)] = box
	}
	return tree, boxes
}

// TestQueryFrustumCoversEverythingWhenAllInside is testable-properties
// scenario 5 ("Query-covers-all"): a frustum containing the whole tree
// classifies Inside at the root and returns every object while touching
// frustum_vs_aabb exactly once (root-only test, no further classification).
func TestQueryFrustumCoversEverythingWhenAllInside(t *testing.T) {
	tree, boxes := buildGridTree(t, 20, 3)

	f := boxFrustum(types.XYZ(-1000, -1000, -1000), types.XYZ(1000, 1000, 1000))
	stats.Reset()
	got := tree.Query(f)

	if len(got) != len(boxes) {
		t.Fatalf("Query returned %d ids, want %d (a covering frustum must return everything)", len(got), len(boxes))
	}
	if got := stats.FrustumVsAabb(); got != 1 {
		t.Fatalf("FrustumVsAabb() = %d, want 1 (an Inside root must short-circuit without testing descendants)", got)
	}
}

// TestQueryFrustumExcludesEverythingWhenAllOutside is testable-properties
// scenario 4 ("Query outside"): a frustum disjoint from the whole tree
// classifies Outside at the root and prunes everything below it, touching
// frustum_vs_aabb exactly once (root-only test).
func TestQueryFrustumExcludesEverythingWhenAllOutside(t *testing.T) {
	tree, _ := buildGridTree(t, 20, 3)

	f := boxFrustum(types.XYZ(-1000, -1000, -1000), types.XYZ(-500, -500, -500))
	stats.Reset()
	got := tree.Query(f)

	if len(got) != 0 {
		t.Fatalf("Query returned %d ids, want 0 for a disjoint frustum", len(got))
	}
	if got := stats.FrustumVsAabb(); got != 1 {
		t.Fatalf("FrustumVsAabb() = %d, want 1 (an Outside root must prune without testing descendants)", got)
	}
}

func TestQueryFrustumOnlyReturnsIntersectingObjects(t *testing.T) {
	tree, boxes := buildGridTree(t, 20, 3)

	f := boxFrustum(types.XYZ(0, -1, -1), types.XYZ(10, 2, 2))
	got := tree.Query(f)

	gotSet := map[uint32]bool{}
	for _, id := range got {
		gotSet[id] = true
	}

	for id, box := range boxes {
		wantIn := f.Classify(box) != geom.Outside
		if wantIn != gotSet[id] {
			t.Fatalf("object %d (box %v): Query membership %v, brute-force classify %v", id, box, gotSet[id], wantIn)
		}
	}
}

func TestQueryEmptyTreeReturnsNil(t *testing.T) {
	var tree Tree[int]
	f := boxFrustum(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	if got := tree.Query(f); got != nil {
		t.Fatalf("Query on empty tree = %v, want nil", got)
	}
}

func TestQueryDebugRayMatchesBruteForceClosest(t *testing.T) {
	tree, boxes := buildGridTree(t, 12, 4)

	ray := geom.NewRay(types.XYZ(-5, 0.5, 0.5), types.XYZ(1, 0, 0))

	var wantID uint32
	wantFound := false
	bestT := float32(1e30)
	for id, box := range boxes {
		tHit, hit := ray.Intersect(box)
		if hit && tHit < bestT {
			bestT = tHit
			wantID = id
			wantFound = true
		}
	}

	got := tree.QueryDebug(ray, true)
	if got.Found != wantFound {
		t.Fatalf("QueryDebug.Found = %v, want %v", got.Found, wantFound)
	}
	if wantFound && got.ID != wantID {
		t.Fatalf("QueryDebug.ID = %d, want %d (brute force closest)", got.ID, wantID)
	}
}

func TestQueryDebugMissWhenRayPointsAway(t *testing.T) {
	tree, _ := buildGridTree(t, 12, 4)
	ray := geom.NewRay(types.XYZ(-5, 0.5, 0.5), types.XYZ(-1, 0, 0))

	got := tree.QueryDebug(ray, true)
	if got.Found {
		t.Fatalf("QueryDebug found id %d for a ray pointing away from every object", got.ID)
	}
}

func TestQueryDebugClosestOnlyTestsNoMoreNodesThanUnpruned(t *testing.T) {
	tree, _ := buildGridTree(t, 64, 2)
	ray := geom.NewRay(types.XYZ(-5, 0.5, 0.5), types.XYZ(1, 0, 0))

	pruned := tree.QueryDebug(ray, true)
	unpruned := tree.QueryDebug(ray, false)

	if len(pruned.TestedNodes) > len(unpruned.TestedNodes) {
		t.Fatalf("closest-only tested %d nodes, unpruned tested %d; pruning must never test more",
			len(pruned.TestedNodes), len(unpruned.TestedNodes))
	}
	if !pruned.Found || !unpruned.Found || pruned.ID != unpruned.ID {
		t.Fatalf("pruned and unpruned queries must agree on the closest hit: %+v vs %+v", pruned, unpruned)
	}
}

// TestQueryFrustumAverageTestsUnderQuarterOfObjectCount is the statistical
// testable property: across 100 random camera placements over a scene of N
// objects, the average frustum_vs_aabb per query must stay below N/4. The
// scene is built with BuildTopDown, which median-splits on the longest
// axis and so yields a balanced tree of depth ~log2(N); a narrow window
// frustum only ever descends one branch per level, pruning the sibling
// after a single classification, so the expected per-query cost is
// O(log N), far under the N/4 bound for any N worth testing.
func TestQueryFrustumAverageTestsUnderQuarterOfObjectCount(t *testing.T) {
	const n = 256
	var handles []*Handle[int]
	for i := 0; i < n; i++ {
		x := float32(i) * 2
		handles = append(handles, NewHandle(uint32(i), geom.NewAabb(types.XYZ(x, 0, 0), types.XYZ(x+1, 1, 1)), i))
	}
	var tree Tree[int]
	tree.BuildTopDown(handles, BuildConfig{MaxDepth: 64, MinObjects: 1, MinVolume: 0})

	rng := rand.New(rand.NewSource(1))
	const trials = 100
	var total uint64
	for i := 0; i < trials; i++ {
		x := rng.Float32() * float32(2*n)
		f := boxFrustum(types.XYZ(x, -1, -1), types.XYZ(x+2, 2, 2))

		stats.Reset()
		tree.Query(f)
		total += stats.FrustumVsAabb()
	}

	avg := float64(total) / float64(trials)
	if want := float64(n) / 4; avg >= want {
		t.Fatalf("average FrustumVsAabb() per query = %.2f, want < %.2f (N/4 for N=%d)", avg, want, n)
	}
}

// TestQueryDebugClosestOnlyAverageTestsUnder75PercentOfUnpruned is the
// statistical testable property: the closest-only ray query must issue, on
// average, under 75% of the AABB tests the un-pruned query issues. The
// fixture ray always travels through every object's box (constant y/z
// inside [0,1], x sweeping the whole grid), so the un-pruned query always
// descends the full tree while the pruned query finds the nearest hit
// immediately and skips every subtree whose entry time exceeds it.
func TestQueryDebugClosestOnlyAverageTestsUnder75PercentOfUnpruned(t *testing.T) {
	tree, _ := buildGridTree(t, 256, 2)

	rng := rand.New(rand.NewSource(2))
	const trials = 100
	var prunedTotal, unprunedTotal int
	for i := 0; i < trials; i++ {
		y := rng.Float32()
		z := rng.Float32()
		ray := geom.NewRay(types.XYZ(-5, y, z), types.XYZ(1, 0, 0))

		pruned := tree.QueryDebug(ray, true)
		unpruned := tree.QueryDebug(ray, false)
		prunedTotal += len(pruned.TestedNodes)
		unprunedTotal += len(unpruned.TestedNodes)
	}

	ratio := float64(prunedTotal) / float64(unprunedTotal)
	if ratio >= 0.75 {
		t.Fatalf("closest-only tested %.2f%% of unpruned AABB tests on average, want < 75%%", ratio*100)
	}
}
