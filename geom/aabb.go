// Package geom implements the geometric primitives the BVH is built from:
// axis-aligned bounding boxes, rays and view frustums.
package geom

import (
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// Aabb is an axis-aligned bounding box defined by its componentwise min and
// max corners.
type Aabb struct {
	Min types.Vec3
	Max types.Vec3
}

// NewAabb returns the AABB with the given corners.
func NewAabb(min, max types.Vec3) Aabb {
	return Aabb{Min: min, Max: max}
}

// NewAabbFromPoints returns the smallest AABB enclosing all the given points.
// Returns a degenerate zero-sized AABB at the origin if points is empty.
func NewAabbFromPoints(points []types.Vec3) Aabb {
	if len(points) == 0 {
		return Aabb{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return Aabb{Min: min, Max: max}
}

// Merge returns the smallest AABB enclosing both a and b.
func Merge(a, b Aabb) Aabb {
	return Aabb{
		Min: a.Min.Min(b.Min),
		Max: a.Max.Max(b.Max),
	}
}

// Center returns the midpoint of the box.
func (a Aabb) Center() types.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the full size of the box along each axis.
func (a Aabb) Extents() types.Vec3 {
	return a.Max.Sub(a.Min)
}

// Volume returns the product of the box's extents.
func (a Aabb) Volume() float32 {
	e := a.Extents()
	return e[0] * e[1] * e[2]
}

// SurfaceArea returns the total surface area of the box.
func (a Aabb) SurfaceArea() float32 {
	e := a.Extents()
	return 2 * (e[0]*e[1] + e[1]*e[2] + e[2]*e[0])
}

// LongestAxis returns the index (0=X, 1=Y, 2=Z) of the box's greatest
// extent. Ties prefer the lower-index axis.
func (a Aabb) LongestAxis() int {
	e := a.Extents()
	axis := 0
	longest := e[0]
	for i := 1; i < 3; i++ {
		if e[i] > longest {
			longest = e[i]
			axis = i
		}
	}
	return axis
}

// Merge returns the smallest AABB enclosing both a and other.
func (a Aabb) Merge(other Aabb) Aabb {
	return Merge(a, other)
}

// Contains reports whether a fully encloses other.
func (a Aabb) Contains(other Aabb) bool {
	for i := 0; i < 3; i++ {
		if other.Min[i] < a.Min[i] || other.Max[i] > a.Max[i] {
			return false
		}
	}
	return true
}

// TransformAffine returns the enclosing AABB of the eight transformed
// corners of a under m.
func (a Aabb) TransformAffine(m types.Mat4) Aabb {
	corners := [8]types.Vec3{
		{a.Min[0], a.Min[1], a.Min[2]},
		{a.Max[0], a.Min[1], a.Min[2]},
		{a.Min[0], a.Max[1], a.Min[2]},
		{a.Max[0], a.Max[1], a.Min[2]},
		{a.Min[0], a.Min[1], a.Max[2]},
		{a.Max[0], a.Min[1], a.Max[2]},
		{a.Min[0], a.Max[1], a.Max[2]},
		{a.Max[0], a.Max[1], a.Max[2]},
	}
	out := m.MulPoint3(corners[0])
	min, max := out, out
	for _, c := range corners[1:] {
		p := m.MulPoint3(c)
		min = min.Min(p)
		max = max.Max(p)
	}
	return Aabb{Min: min, Max: max}
}
