package bvh

import (
	"sort"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
)

// BuildTopDown discards any existing tree and builds a new one by
// recursively partitioning handles on the longest axis of each node's
// bounding volume, splitting at the median. A node becomes a leaf once its
// object count drops to config.MinObjects or below, its volume drops to
// config.MinVolume or below, its depth reaches config.MaxDepth, or all of
// its objects have identical bounds.
func (t *Tree[T]) BuildTopDown(handles []*Handle[T], config BuildConfig) {
	t.Clear()
	if len(handles) == 0 {
		return
	}
	t.objectCount = uint32(len(handles))
	t.root = t.buildTopDown(handles, config, nil, 0)
}

func (t *Tree[T]) buildTopDown(handles []*Handle[T], config BuildConfig, parent *Node[T], depth uint32) *Node[T] {
	if len(handles) == 0 {
		return nil
	}

	min, max := handles[0].Bounds.Min, handles[0].Bounds.Max
	for _, h := range handles[1:] {
		min = min.Min(h.Bounds.Min)
		max = max.Max(h.Bounds.Max)
	}
	node := newNode[T](geom.NewAabb(min, max))

	if parent != nil {
		switch {
		case parent.children[0] == nil:
			parent.children[0] = node
		case parent.children[1] == nil:
			parent.children[1] = node
		default:
			panic("bvh: node already has 2 children")
		}
	} else {
		t.root = node
	}

	count := uint32(len(handles))
	identical := true
	for _, h := range handles {
		if h.Bounds != node.bv {
			identical = false
			break
		}
	}

	if count <= config.MinObjects || node.bv.Volume() <= config.MinVolume || depth >= config.MaxDepth || identical {
		if old := handles[0].node; old != nil {
			old.first = nil
			old.last = nil
		}
		for _, h := range handles {
			node.AddObject(h)
		}
		return node
	}

	axis := node.bv.LongestAxis()
	sorted := append([]*Handle[T](nil), handles...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Bounds.Center()[axis] < sorted[j].Bounds.Center()[axis]
	})

	mid := len(sorted) / 2
	t.buildTopDown(sorted[:mid], config, node, depth+1)
	t.buildTopDown(sorted[mid:], config, node, depth+1)
	return node
}
