// Package bvh implements a bounding volume hierarchy over axis-aligned
// bounding boxes, built either top-down or by incremental branch-and-bound
// insertion, and queried by view frustum or by ray.
package bvh

import "github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"

// Handle is the caller-owned object a Tree indexes. ID and Bounds are set by
// the caller and never touched by the tree; Value carries whatever payload
// the caller wants attached to the object. The next/prev/node fields are the
// tree's intrusive membership triple: they are written only by Node.AddObject
// and Tree.Clear, never by the caller.
type Handle[T any] struct {
	ID     uint32
	Bounds geom.Aabb
	Value  T

	next, prev *Handle[T]
	node       *Node[T]
}

// NewHandle wraps value with the given id and world-space bounds, ready to
// hand to a Tree's builder or inserter.
func NewHandle[T any](id uint32, bounds geom.Aabb, value T) *Handle[T] {
	return &Handle[T]{ID: id, Bounds: bounds, Value: value}
}

// Node returns the leaf node this handle currently belongs to, or nil if it
// is not a member of any tree.
func (h *Handle[T]) Node() *Node[T] {
	return h.node
}
