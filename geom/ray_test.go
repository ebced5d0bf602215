package geom

import (
	"testing"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/stats"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

func TestRayIntersectHit(t *testing.T) {
	box := NewAabb(types.XYZ(0, 0, 0), types.XYZ(2, 2, 2))
	r := NewRay(types.XYZ(-5, 1, 1), types.XYZ(1, 0, 0))
	tEnter, hit := r.Intersect(box)
	if !hit {
		t.Fatalf("expected hit")
	}
	if tEnter != 5 {
		t.Fatalf("Intersect() t = %v, want 5", tEnter)
	}
}

func TestRayIntersectMiss(t *testing.T) {
	box := NewAabb(types.XYZ(0, 0, 0), types.XYZ(2, 2, 2))
	r := NewRay(types.XYZ(-5, 10, 1), types.XYZ(1, 0, 0))
	if _, hit := r.Intersect(box); hit {
		t.Fatalf("expected miss")
	}
}

func TestRayIntersectOriginInside(t *testing.T) {
	box := NewAabb(types.XYZ(0, 0, 0), types.XYZ(2, 2, 2))
	r := NewRay(types.XYZ(1, 1, 1), types.XYZ(1, 0, 0))
	tEnter, hit := r.Intersect(box)
	if !hit || tEnter != 0 {
		t.Fatalf("expected origin-inside hit at t=0, got t=%v hit=%v", tEnter, hit)
	}
}

func TestRayIntersectParallelToSlab(t *testing.T) {
	box := NewAabb(types.XYZ(0, 0, 0), types.XYZ(2, 2, 2))
	// Ray travels along X with Y fixed inside the slab: should still hit.
	r := NewRay(types.XYZ(-5, 1, 1), types.XYZ(1, 0, 0))
	if _, hit := r.Intersect(box); !hit {
		t.Fatalf("expected hit for axis-aligned ray with in-range parallel slabs")
	}

	// Ray travels along X with Y outside the slab range: permanent miss, no NaN.
	r2 := NewRay(types.XYZ(-5, 10, 1), types.XYZ(1, 0, 0))
	tEnter, hit := r2.Intersect(box)
	if hit {
		t.Fatalf("expected miss for parallel ray outside the slab")
	}
	if tEnter != noHit {
		t.Fatalf("Intersect() t = %v, want sentinel %v", tEnter, noHit)
	}
}

func TestRayIntersectIncrementsStats(t *testing.T) {
	stats.Reset()
	box := NewAabb(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))
	r := NewRay(types.XYZ(-1, 0.5, 0.5), types.XYZ(1, 0, 0))
	r.Intersect(box)
	if got := stats.RayVsAabb(); got != 1 {
		t.Fatalf("stats.RayVsAabb() = %d, want 1", got)
	}
}
