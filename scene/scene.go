package scene

import (
	"fmt"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/bvh"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/types"
)

// Scene owns the demo's primitives and the bounding volume hierarchy built
// or incrementally maintained over them, plus the camera used to derive
// frustum queries.
type Scene struct {
	Camera *Camera

	Primitives []*Primitive
	Tree       bvh.Tree[*Primitive]

	BgColor types.Vec3

	handles []*bvh.Handle[*Primitive]
}

func NewScene() *Scene {
	return &Scene{
		Primitives: make([]*Primitive, 0),
	}
}

// SetCamera attaches a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// AddPrimitive registers primitive with the scene, ready to be folded into
// the tree by BuildTopDown or InsertPrimitive. It does not itself touch the
// tree.
func (s *Scene) AddPrimitive(primitive *Primitive) error {
	for _, p := range s.Primitives {
		if p == primitive {
			return fmt.Errorf("scene: primitive already added")
		}
	}
	s.Primitives = append(s.Primitives, primitive)
	return nil
}

// BuildTopDown discards any existing tree and rebuilds it from every
// primitive added so far, using the top-down median-split builder.
func (s *Scene) BuildTopDown(config bvh.BuildConfig) {
	s.handles = make([]*bvh.Handle[*Primitive], len(s.Primitives))
	for i, p := range s.Primitives {
		s.handles[i] = bvh.NewHandle(uint32(i), p.Bounds, p)
	}
	s.Tree.BuildTopDown(s.handles, config)
}

// InsertPrimitive both registers primitive with the scene and routes it into
// the tree via the incremental branch-and-bound inserter, without disturbing
// any object already placed.
func (s *Scene) InsertPrimitive(primitive *Primitive, config bvh.BuildConfig) error {
	if err := s.AddPrimitive(primitive); err != nil {
		return err
	}
	h := bvh.NewHandle(uint32(len(s.Primitives)-1), primitive.Bounds, primitive)
	s.handles = append(s.handles, h)
	s.Tree.Insert(h, config)
	return nil
}

// QueryFrustum returns every primitive not classified OUTSIDE frustum.
func (s *Scene) QueryFrustum(frustum geom.Frustum) []*Primitive {
	ids := s.Tree.Query(frustum)
	out := make([]*Primitive, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.Primitives[id])
	}
	return out
}

// QueryRay returns the primitive the ray hits closest to its origin, if any.
func (s *Scene) QueryRay(ray geom.Ray) (*Primitive, bool) {
	hit := s.Tree.QueryDebug(ray, true)
	if !hit.Found {
		return nil, false
	}
	return s.Primitives[hit.ID], true
}
