package geom

import (
	"testing"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/stats"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

func testFrustum() Frustum {
	view := types.LookAtV(types.XYZ(0, 0, -10), types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))
	proj := types.Perspective4(1.0, 1.0, 0.1, 100)
	return NewFrustumFromMatrix(proj.Mul4(view))
}

func TestFrustumClassifyInside(t *testing.T) {
	f := testFrustum()
	box := NewAabb(types.XYZ(-0.5, -0.5, -0.5), types.XYZ(0.5, 0.5, 0.5))
	if got := f.Classify(box); got != Inside {
		t.Fatalf("Classify() = %v, want Inside", got)
	}
}

func TestFrustumClassifyOutside(t *testing.T) {
	f := testFrustum()
	box := NewAabb(types.XYZ(1000, 1000, 1000), types.XYZ(1001, 1001, 1001))
	if got := f.Classify(box); got != Outside {
		t.Fatalf("Classify() = %v, want Outside", got)
	}
}

func TestFrustumClassifyIntersecting(t *testing.T) {
	f := testFrustum()
	// A box straddling the near plane / origin partially outside, partially in.
	box := NewAabb(types.XYZ(-0.5, -0.5, -50), types.XYZ(0.5, 0.5, 50))
	if got := f.Classify(box); got != Intersecting {
		t.Fatalf("Classify() = %v, want Intersecting", got)
	}
}

func TestFrustumClassifyIncrementsStats(t *testing.T) {
	stats.Reset()
	f := testFrustum()
	f.Classify(NewAabb(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1)))
	if got := stats.FrustumVsAabb(); got != 1 {
		t.Fatalf("stats.FrustumVsAabb() = %d, want 1", got)
	}
}
