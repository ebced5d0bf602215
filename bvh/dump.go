package bvh

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// DumpInfo writes a human-readable summary of the tree (overall depth/size,
// then one table row per node) to w.
func (t *Tree[T]) DumpInfo(w io.Writer) {
	fmt.Fprintf(w, "GENERAL INFO\n  Depth: %d\n  Size:  %d\n\n", t.Depth(), t.Size())

	if t.root == nil {
		return
	}

	ids := map[*Node[T]]int{}
	next := 0
	t.root.TraverseLevelOrder(func(n *Node[T]) {
		ids[n] = next
		next++
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Node", "Volume", "Surface Area", "Kind", "Objects"})
	t.root.TraverseLevelOrder(func(n *Node[T]) {
		kind := "internal"
		objects := "-"
		if n.IsLeaf() {
			kind = "leaf"
			objects = fmt.Sprintf("%d", n.ObjectCount())
		}
		table.Append([]string{
			fmt.Sprintf("NODE%d", ids[n]),
			fmt.Sprintf("%.2f", n.bv.Volume()),
			fmt.Sprintf("%.2f", n.bv.SurfaceArea()),
			kind,
			objects,
		})
	})
	table.Render()
}

// DumpGraph writes a Graphviz digraph description of the tree to w, enough
// for an external visualiser to render it.
func (t *Tree[T]) DumpGraph(w io.Writer) {
	fmt.Fprintln(w, "digraph bvh {")
	fmt.Fprintln(w, "\tnode[group=\"\", shape=none, style=\"rounded,filled\", fontcolor=\"#101010\"]")

	if t.root == nil {
		fmt.Fprintln(w, "}")
		return
	}

	ids := map[*Node[T]]int{}
	next := 0
	t.root.TraverseLevelOrder(func(n *Node[T]) {
		ids[n] = next
		label := fmt.Sprintf("[%.2f,%.2f,%.2f]\\n[%.2f,%.2f,%.2f]\\nSA: %.2f\\nVOL: %.2f",
			n.bv.Min[0], n.bv.Min[1], n.bv.Min[2],
			n.bv.Max[0], n.bv.Max[1], n.bv.Max[2],
			n.bv.SurfaceArea(), n.bv.Volume())
		if n.IsLeaf() {
			label += fmt.Sprintf("\\n%d objects", n.ObjectCount())
		}
		fmt.Fprintf(w, "\tNODE%d[label=\"%s\"];\n", next, label)
		next++
	})

	t.root.TraverseLevelOrder(func(n *Node[T]) {
		if n.IsLeaf() {
			return
		}
		id := ids[n]
		fmt.Fprintf(w, "\tNODE%d -> NODE%d;\n", id, ids[n.children[0]])
		fmt.Fprintf(w, "\tNODE%d -> NODE%d;\n", id, ids[n.children[1]])
	})

	fmt.Fprintln(w, "}")
}
