package geom

import (
	"math"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/stats"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// noHit is the sentinel entry-t returned by Intersect when the ray misses.
const noHit float32 = -1

// Ray carries an origin and a direction. Dir need not be normalized.
type Ray struct {
	Start types.Vec3
	Dir   types.Vec3
}

// NewRay returns a ray from start toward the given direction.
func NewRay(start, dir types.Vec3) Ray {
	return Ray{Start: start, Dir: dir}
}

// Intersect tests the ray against aabb using the slab method. It returns the
// nonnegative entry t (0 if the origin is already inside the box) and true
// if the ray enters the box, or (noHit, false) otherwise. Axis directions of
// zero (parallel to a slab) are handled without producing NaN. Every call
// increments stats.RayVsAabb.
func (r Ray) Intersect(box Aabb) (float32, bool) {
	stats.IncRayVsAabb()

	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		dir := r.Dir[axis]
		origin := r.Start[axis]

		if dir == 0 {
			// Ray is parallel to this slab: either fully inside (no
			// constraint) or a permanent miss.
			if origin < box.Min[axis] || origin > box.Max[axis] {
				return noHit, false
			}
			continue
		}

		invDir := 1.0 / dir
		t1 := (box.Min[axis] - origin) * invDir
		t2 := (box.Max[axis] - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return noHit, false
		}
	}

	if tMax < 0 {
		return noHit, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}
