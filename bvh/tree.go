package bvh

import "math"

// BuildConfig tunes both construction strategies. Not every field applies to
// every builder.
type BuildConfig struct {
	MaxDepth   uint32  // stop splitting once a node reaches this depth
	MinObjects uint32  // nodes with this many objects or fewer stay leaves
	MinVolume  float32 // nodes at or below this volume stay leaves
}

// DefaultBuildConfig returns the configuration BuildTopDown uses absent an
// explicit one: effectively unbounded depth, split down to 10 objects.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{MaxDepth: math.MaxUint32, MinObjects: 10, MinVolume: 0}
}

// DefaultInsertConfig returns the configuration the incremental inserter
// typically runs with: shallow leaves (min 1 object) bounded to depth 100.
func DefaultInsertConfig() BuildConfig {
	return BuildConfig{MaxDepth: 100, MinObjects: 1, MinVolume: 1000}
}

// Tree is a bounding volume hierarchy over Handle[T] objects. The zero value
// is an empty, ready-to-use tree.
type Tree[T any] struct {
	root        *Node[T]
	objectCount uint32
}

// Clear resets the tree to empty, first clearing every member object's
// membership fields (node/next/prev) so objects can be safely reused or
// reinserted elsewhere.
func (t *Tree[T]) Clear() {
	if t.root == nil {
		return
	}
	t.root.TraverseLevelOrderObjects(func(h *Handle[T]) {
		h.next = nil
		h.prev = nil
		h.node = nil
	})
	t.root = nil
	t.objectCount = 0
}

// Empty reports whether the tree holds no nodes and no objects.
func (t *Tree[T]) Empty() bool {
	return t.root == nil && t.objectCount == 0
}

// Depth returns -1 for an empty tree, else the root's Depth().
func (t *Tree[T]) Depth() int {
	if t.root == nil {
		return -1
	}
	return t.root.Depth()
}

// Size returns the number of nodes in the tree, 0 when empty.
func (t *Tree[T]) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.Size()
}

// Root returns the tree's root node, or nil if empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// ObjectCount returns the number of objects inserted into the tree.
func (t *Tree[T]) ObjectCount() uint32 {
	return t.objectCount
}

// TraverseLevelOrder visits every node in breadth-first order. A no-op on an
// empty tree.
func (t *Tree[T]) TraverseLevelOrder(f func(*Node[T])) {
	if t.root != nil {
		t.root.TraverseLevelOrder(f)
	}
}

// TraverseLevelOrderObjects visits every object in every leaf, in
// breadth-first node order. A no-op on an empty tree.
func (t *Tree[T]) TraverseLevelOrderObjects(f func(*Handle[T])) {
	if t.root != nil {
		t.root.TraverseLevelOrderObjects(f)
	}
}
