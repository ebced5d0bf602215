package bvh

import (
	"container/heap"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
)

// insertEpsilon is the tolerance used when comparing candidate insertion
// costs; the branch-and-bound search is otherwise sensitive to floating
// point noise on ties.
const insertEpsilon = 1e-3

// nodeCost is one candidate considered while searching for the cheapest
// place to route a new object during Insert.
type nodeCost[T any] struct {
	node  *Node[T]
	level uint32

	newAabb       geom.Aabb
	newGeom       float32
	newGeomChange float32

	rootToNewParentCost float32
	rootToNodeCost      float32
}

func newNodeCost[T any](n *Node[T], objectBounds geom.Aabb, costToNode float32, level uint32) *nodeCost[T] {
	merged := geom.Merge(n.bv, objectBounds)
	vol := merged.Volume()
	change := vol - n.bv.Volume()
	return &nodeCost[T]{
		node:                n,
		level:               level,
		newAabb:             merged,
		newGeom:             vol,
		newGeomChange:       change,
		rootToNewParentCost: vol + costToNode,
		rootToNodeCost:      costToNode + change,
	}
}

// nodeCostHeap is a container/heap.Interface ordering candidates by higher
// level first, then by lower newGeomChange — this drives the search frontier
// downward quickly while preferring tighter expansions among same-level
// candidates.
type nodeCostHeap[T any] []*nodeCost[T]

func (h nodeCostHeap[T]) Len() int { return len(h) }
func (h nodeCostHeap[T]) Less(i, j int) bool {
	if h[i].level != h[j].level {
		return h[i].level > h[j].level
	}
	return h[i].newGeomChange < h[j].newGeomChange
}
func (h nodeCostHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeCostHeap[T]) Push(x any)   { *h = append(*h, x.(*nodeCost[T])) }
func (h *nodeCostHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// InsertAll inserts every handle in order via Insert. Callers wanting a
// stochastically balanced tree should shuffle the slice first.
func (t *Tree[T]) InsertAll(handles []*Handle[T], config BuildConfig) {
	for _, h := range handles {
		t.Insert(h, config)
	}
}

// Insert adds a single object to the tree using a best-first
// branch-and-bound search for the cheapest place to either append it to an
// existing leaf or split an existing node to make room for it.
func (t *Tree[T]) Insert(h *Handle[T], config BuildConfig) {
	t.objectCount++

	if t.root == nil {
		t.root = newNode[T](h.Bounds)
		t.root.AddObject(h)
		return
	}

	frontier := &nodeCostHeap[T]{}
	heap.Init(frontier)
	heap.Push(frontier, newNodeCost[T](t.root, h.Bounds, 0, 0))

	var path []*nodeCost[T]
	var leaf *nodeCost[T]
	smallestCostIndex := 0

	for frontier.Len() > 0 {
		nc := heap.Pop(frontier).(*nodeCost[T])
		path = append(path, nc)
		idx := len(path) - 1

		if nc.rootToNewParentCost <= path[smallestCostIndex].rootToNewParentCost+insertEpsilon {
			smallestCostIndex = idx
		}

		if nc.node.IsLeaf() {
			leaf = nc
			break
		}

		heap.Push(frontier, newNodeCost[T](nc.node.children[0], h.Bounds, nc.rootToNodeCost, nc.level+1))
		heap.Push(frontier, newNodeCost[T](nc.node.children[1], h.Bounds, nc.rootToNodeCost, nc.level+1))
	}

	applyPath := func(upto int) {
		for i := 0; i < upto; i++ {
			path[i].node.bv = path[i].newAabb
		}
	}

	if leaf != nil && leaf.rootToNodeCost < path[smallestCostIndex].rootToNewParentCost {
		// Appending to the leaf is cheaper than creating a new parent
		// higher up the recorded path.
		if leaf.node.ObjectCount() < config.MinObjects || leaf.level >= config.MaxDepth {
			applyPath(len(path))
			leaf.node.AddObject(h)
			return
		}

		if leaf.newAabb.Volume() >= config.MinVolume && leaf.newGeomChange > 0 {
			// The leaf is full and inflating further: split at the leaf
			// itself instead of appending.
			smallestCostIndex = len(path) - 1
		} else {
			applyPath(len(path))
			leaf.node.AddObject(h)
			return
		}
	}

	best := path[smallestCostIndex]

	if best.node == t.root {
		newRoot := newNode[T](best.newAabb)
		newRoot.children[0] = best.node
		newLeaf := newNode[T](h.Bounds)
		newLeaf.AddObject(h)
		newRoot.children[1] = newLeaf
		t.root = newRoot
		return
	}

	applyPath(smallestCostIndex)

	parent := path[smallestCostIndex-1].node
	child := 0
	if parent.children[0] != best.node {
		child = 1
	}

	newInternal := newNode[T](best.newAabb)
	newInternal.children[child] = best.node
	newLeaf := newNode[T](h.Bounds)
	newLeaf.AddObject(h)
	newInternal.children[child^1] = newLeaf
	parent.children[child] = newInternal
}
