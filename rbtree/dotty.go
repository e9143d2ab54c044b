package rbtree

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Red nodes are drawn red, black nodes black;
// labels show key, value and recorded black height.
func ToDot[V any](t *Tree[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := make(map[*Tree[V]]int)
	max := 0
	alloc := func(n *Tree[V]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		max++
		ids[n] = max
		return max
	}
	nodelist, edgelist := "", ""
	var walk func(n *Tree[V])
	walk = func(n *Tree[V]) {
		ID := alloc(n)
		color := "red"
		if n.black {
			color = "black"
		}
		label := fmt.Sprintf("%d=%v\\nbh %d", n.key, n.value, n.blackHeight)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",color=%s];\n", ID, label, color)
		for _, child := range []*Tree[V]{n.left, n.right} {
			if child == nil {
				nilid := ID + 10000
				nodelist += fmt.Sprintf("\"%d\" [label=\"\",color=gray,shape=circle,fixedsize=true,width=.2];\n", nilid)
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, alloc(child))
			walk(child)
		}
	}
	if t != nil {
		walk(t)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}
