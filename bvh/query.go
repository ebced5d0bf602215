package bvh

import (
	"math"

	"github.com/jazwinn/Spatial-Data-Structure-using-Bounding-Volume-Hierarchy-BVH/geom"
)

// Query returns the ids of every object not classified OUTSIDE the frustum,
// descending the tree iteratively and pruning subtrees classified OUTSIDE.
// An INSIDE node emits every descendant object id without further frustum
// tests. An empty tree returns nil without testing anything.
func (t *Tree[T]) Query(frustum geom.Frustum) []uint32 {
	var ids []uint32
	if t.root == nil {
		return ids
	}

	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch frustum.Classify(node.bv) {
		case geom.Outside:
			continue
		case geom.Inside:
			node.TraverseLevelOrderObjects(func(h *Handle[T]) {
				ids = append(ids, h.ID)
			})
		default: // Intersecting
			if node.IsLeaf() {
				for h := node.first; h != nil; h = h.next {
					if frustum.Classify(h.Bounds) != geom.Outside {
						ids = append(ids, h.ID)
					}
				}
				continue
			}
			stack = append(stack, node.children[0], node.children[1])
		}
	}
	return ids
}

// RayHit is the result of QueryDebug.
type RayHit[T any] struct {
	ID          uint32
	Found       bool
	AllHits     []uint32
	TestedNodes []*Node[T]
}

// rayEntryT returns the ray's nonnegative entry t against box, or a negative
// sentinel if it misses, matching the calling convention used throughout the
// descent below.
func rayEntryT(r geom.Ray, box geom.Aabb) float32 {
	t, hit := r.Intersect(box)
	if !hit {
		return -1
	}
	return t
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// QueryDebug finds the object whose AABB the ray hits closest to its origin,
// descending nearest-child-first. TestedNodes records every node whose AABB
// was compared against the ray. If closestOnly is set, a subtree is skipped
// once its entry t already exceeds the best hit found so far; otherwise
// every subtree the ray enters is visited and AllHits records every object
// hit, not just the closest.
func (t *Tree[T]) QueryDebug(ray geom.Ray, closestOnly bool) RayHit[T] {
	var result RayHit[T]
	if t.root == nil {
		return result
	}

	bestT := float32(math.MaxFloat32)
	closestID := int64(-1)

	var visit func(n *Node[T]) float32
	visit = func(n *Node[T]) float32 {
		if n.IsLeaf() {
			nodeShortest := float32(math.MaxFloat32)
			for h := n.first; h != nil; h = h.next {
				tHit, hit := ray.Intersect(h.Bounds)
				if hit {
					if !closestOnly {
						result.AllHits = append(result.AllHits, h.ID)
					}
					if tHit < nodeShortest {
						nodeShortest = tHit
					}
					if tHit < bestT {
						bestT = tHit
						closestID = int64(h.ID)
					}
				}
			}
			return nodeShortest
		}

		var firstT, secondT float32 = -1, -1
		if n.children[0] != nil {
			result.TestedNodes = append(result.TestedNodes, n.children[0])
			firstT = rayEntryT(ray, n.children[0].bv)
		}
		if n.children[1] != nil {
			result.TestedNodes = append(result.TestedNodes, n.children[1])
			secondT = rayEntryT(ray, n.children[1].bv)
		}

		switch {
		case firstT < 0 && secondT < 0:
			return -1
		case firstT >= 0 && secondT >= 0:
			if firstT < secondT {
				time := visit(n.children[0])
				if !closestOnly || time < 0 || time > secondT {
					time = minFloat32(visit(n.children[1]), time)
				}
				return time
			}
			time := visit(n.children[1])
			if !closestOnly || time < 0 || time > firstT {
				time = minFloat32(visit(n.children[0]), time)
			}
			return time
		case firstT >= 0:
			return visit(n.children[0])
		default:
			return visit(n.children[1])
		}
	}

	result.TestedNodes = append(result.TestedNodes, t.root)
	if _, hit := ray.Intersect(t.root.bv); hit {
		visit(t.root)
	}

	if closestID < 0 {
		return result
	}
	result.ID = uint32(closestID)
	result.Found = true
	if closestOnly {
		result.AllHits = []uint32{result.ID}
	}
	return result
}
