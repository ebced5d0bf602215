package geom

import (
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/stats"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// Plane is a half-space Ax + By + Cz + D = 0 with Normal = (A, B, C).
type Plane struct {
	Normal types.Vec3
	D      float32
}

// DistanceToPoint returns the signed distance from p to the plane. Positive
// values are on the side the normal points toward.
func (p Plane) DistanceToPoint(v types.Vec3) float32 {
	return p.Normal.Dot(v) + p.D
}

func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	inv := 1.0 / l
	p.Normal = p.Normal.Mul(inv)
	p.D *= inv
}

// Frustum-plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is six inward-facing half-spaces describing a view volume.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix extracts the six frustum planes from a combined
// view-projection matrix using the Gribb/Hartmann method. types.Mat4 is
// row-major, so row i occupies indices [4*i, 4*i+4).
func NewFrustumFromMatrix(m types.Mat4) Frustum {
	row0 := types.XYZW(m[0], m[1], m[2], m[3])
	row1 := types.XYZW(m[4], m[5], m[6], m[7])
	row2 := types.XYZW(m[8], m[9], m[10], m[11])
	row3 := types.XYZW(m[12], m[13], m[14], m[15])

	var f Frustum
	f.Planes[PlaneLeft] = planeFromRows(row3, row0, 1)
	f.Planes[PlaneRight] = planeFromRows(row3, row0, -1)
	f.Planes[PlaneBottom] = planeFromRows(row3, row1, 1)
	f.Planes[PlaneTop] = planeFromRows(row3, row1, -1)
	f.Planes[PlaneNear] = planeFromRows(row3, row2, 1)
	f.Planes[PlaneFar] = planeFromRows(row3, row2, -1)

	for i := range f.Planes {
		f.Planes[i].normalize()
	}
	return f
}

// planeFromRows builds plane = a + sign*b for two Vec4 matrix rows.
func planeFromRows(a, b types.Vec4, sign float32) Plane {
	sum := a.Sub(b.Mul(-sign))
	return Plane{
		Normal: sum.Vec3(),
		D:      sum[3],
	}
}

// Classification is the result of testing an AABB against a Frustum.
type Classification int

const (
	Outside Classification = iota
	Inside
	Intersecting
)

func (c Classification) String() string {
	switch c {
	case Outside:
		return "OUTSIDE"
	case Inside:
		return "INSIDE"
	case Intersecting:
		return "INTERSECTING"
	default:
		return "UNKNOWN"
	}
}

// Classify tests box against the frustum using the positive/negative vertex
// test: for each plane, the corner furthest along the plane normal (the
// "positive vertex") decides whether the box is entirely outside that plane;
// the corner furthest against the normal (the "negative vertex") decides
// whether the box is fully on the inside of that plane. Every call
// increments stats.FrustumVsAabb.
func (f Frustum) Classify(box Aabb) Classification {
	stats.IncFrustumVsAabb()

	result := Inside
	for _, plane := range f.Planes {
		pVertex := vertexAlong(box, plane.Normal, true)
		if plane.DistanceToPoint(pVertex) < 0 {
			return Outside
		}
		nVertex := vertexAlong(box, plane.Normal, false)
		if plane.DistanceToPoint(nVertex) < 0 {
			result = Intersecting
		}
	}
	return result
}

// vertexAlong selects, per axis, the box corner that is extremal in the
// direction of normal (positive=true picks the corner maximizing the
// projection along normal, false picks the one minimizing it).
func vertexAlong(box Aabb, normal types.Vec3, positive bool) types.Vec3 {
	var v types.Vec3
	for axis := 0; axis < 3; axis++ {
		useMax := normal[axis] >= 0
		if !positive {
			useMax = !useMax
		}
		if useMax {
			v[axis] = box.Max[axis]
		} else {
			v[axis] = box.Min[axis]
		}
	}
	return v
}
