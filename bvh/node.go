package bvh

import "github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"

// Node is either a leaf (both children nil, zero or more objects in its
// intrusive list) or internal (both children set, empty object list). The
// "one child set" state must never be observed.
type Node[T any] struct {
	bv       geom.Aabb
	children [2]*Node[T]
	first    *Handle[T]
	last     *Handle[T]
}

func newNode[T any](bv geom.Aabb) *Node[T] {
	return &Node[T]{bv: bv}
}

// BV returns the node's bounding volume.
func (n *Node[T]) BV() geom.Aabb {
	return n.bv
}

// Children returns the node's two children, both nil for a leaf.
func (n *Node[T]) Children() [2]*Node[T] {
	return n.children
}

// IsLeaf reports whether the node has no children. Children are always
// created together, so testing the first slot is sufficient.
func (n *Node[T]) IsLeaf() bool {
	return n.children[0] == nil
}

// FirstObject returns the head of the node's intrusive object list, or nil
// for an internal node or an empty leaf.
func (n *Node[T]) FirstObject() *Handle[T] {
	return n.first
}

// AddObject makes h a member of n. If h already belongs to another node it
// is unlinked from that node's list first (patching neighbours, and the old
// node's first/last pointers if h was at either end) before being appended
// to n's list.
func (n *Node[T]) AddObject(h *Handle[T]) {
	if h.node == n {
		return
	}

	if h.node != nil {
		old := h.node
		if h.prev != nil {
			h.prev.next = h.next
		} else {
			old.first = h.next
		}
		if h.next != nil {
			h.next.prev = h.prev
		} else {
			old.last = h.prev
		}
	}

	if n.first == nil {
		n.first = h
	}

	h.prev = n.last
	h.next = nil
	h.node = n

	if n.last != nil {
		n.last.next = h
	}
	n.last = h
}

// Depth returns 0 for a leaf, else 1 + the deeper of its two children.
func (n *Node[T]) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	d0, d1 := n.children[0].Depth(), n.children[1].Depth()
	if d0 > d1 {
		return 1 + d0
	}
	return 1 + d1
}

// Size returns the number of nodes in the subtree rooted at n, including n.
func (n *Node[T]) Size() int {
	if n.IsLeaf() {
		return 1
	}
	return 1 + n.children[0].Size() + n.children[1].Size()
}

// ObjectCount walks n's intrusive object list and returns its length. It is
// always 0 for an internal node.
func (n *Node[T]) ObjectCount() uint32 {
	var count uint32
	for h := n.first; h != nil; h = h.next {
		count++
	}
	return count
}

// TraverseLevelOrder visits every node reachable from n, including n, in
// breadth-first order.
func (n *Node[T]) TraverseLevelOrder(f func(*Node[T])) {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.children[0] != nil {
			queue = append(queue, node.children[0])
		}
		if node.children[1] != nil {
			queue = append(queue, node.children[1])
		}
		f(node)
	}
}

// TraverseLevelOrderObjects visits every object in every leaf reachable from
// n, in breadth-first node order. The next pointer is read before f is
// invoked so f may safely clear the handle's membership fields.
func (n *Node[T]) TraverseLevelOrderObjects(f func(*Handle[T])) {
	queue := []*Node[T]{n}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.children[0] != nil {
			queue = append(queue, node.children[0])
		}
		if node.children[1] != nil {
			queue = append(queue, node.children[1])
		}
		if !node.IsLeaf() {
			continue
		}
		for h := node.first; h != nil; {
			next := h.next
			f(h)
			h = next
		}
	}
}
