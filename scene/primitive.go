package scene

import (
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

type PrimitiveType uint32

const (
	PlanePrimitive PrimitiveType = iota
	SpherePrimitive
	BoxPrimitive
	TrianglePrimitive
	MeshPrimitive
)

func (t PrimitiveType) String() string {
	switch t {
	case PlanePrimitive:
		return "plane"
	case SpherePrimitive:
		return "sphere"
	case BoxPrimitive:
		return "box"
	case TrianglePrimitive:
		return "triangle"
	case MeshPrimitive:
		return "mesh"
	default:
		return "unknown"
	}
}

// Primitive is the demo payload the bvh package's Handle carries: a named,
// world-space AABB plus enough shape info to describe what generated it. The
// primitive's Material/UV/triangle-plane fields that only served the
// path-tracer's ray/shape intersection tests have no place here; a
// Handle's own Bounds is the only geometry the tree needs.
type Primitive struct {
	Name string
	Type PrimitiveType

	// Origin is the primitive's world-space center and Dimensions its
	// half-extents along each axis (left zero for triangles and meshes);
	// Bounds is its AABB in world space, the value actually handed to
	// bvh.Handle.
	Origin     types.Vec3
	Dimensions types.Vec3
	Bounds     geom.Aabb
}

// NewPlane creates a plane primitive centered at origin, spanning halfSize on
// its two in-plane axes with negligible thickness.
func NewPlane(name string, origin types.Vec3, halfSize float32) *Primitive {
	extent := types.XYZ(halfSize, 1e-4, halfSize)
	return &Primitive{
		Name:       name,
		Type:       PlanePrimitive,
		Origin:     origin,
		Dimensions: extent,
		Bounds:     geom.NewAabb(origin.Sub(extent), origin.Add(extent)),
	}
}

// NewSphere creates a sphere primitive of the given radius centered at origin.
func NewSphere(name string, origin types.Vec3, radius float32) *Primitive {
	extent := types.XYZ(radius, radius, radius)
	return &Primitive{
		Name:       name,
		Type:       SpherePrimitive,
		Origin:     origin,
		Dimensions: extent,
		Bounds:     geom.NewAabb(origin.Sub(extent), origin.Add(extent)),
	}
}

// NewBox creates a box primitive centered at origin with the given
// half-dimensions along each axis.
func NewBox(name string, origin types.Vec3, halfDims types.Vec3) *Primitive {
	return &Primitive{
		Name:       name,
		Type:       BoxPrimitive,
		Origin:     origin,
		Dimensions: halfDims,
		Bounds:     geom.NewAabb(origin.Sub(halfDims), origin.Add(halfDims)),
	}
}

// NewTriangle creates a triangle primitive from three world-space vertices.
func NewTriangle(name string, vertices [3]types.Vec3) *Primitive {
	center := vertices[0].Add(vertices[1]).Add(vertices[2]).Mul(1.0 / 3.0)
	return &Primitive{
		Name:   name,
		Type:   TrianglePrimitive,
		Origin: center,
		Bounds: geom.NewAabbFromPoints(vertices[:]),
	}
}

// NewMesh creates a mesh primitive from a precomputed world-space bounds,
// used by the glTF loader where the underlying geometry is a triangle soup
// rather than a simple analytic shape.
func NewMesh(name string, bounds geom.Aabb) *Primitive {
	return &Primitive{
		Name:   name,
		Type:   MeshPrimitive,
		Origin: bounds.Center(),
		Bounds: bounds,
	}
}
