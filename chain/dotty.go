package chain

import (
	"fmt"
	"io"
)

// Dot outputs the internal structure of a chain in Graphviz DOT format
// (for debugging purposes).
func (c *Chain[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	nodelist, edgelist := "", ""
	id := 1
	for n := c.head; n != nil; n = n.next {
		label := fmt.Sprintf("{%v|<next>}", n.payload)
		styles := nodeDotStyles(n == c.head, n == c.last)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, label, styles)
		if n.next != nil {
			edgelist += fmt.Sprintf("\"%d\":next -> \"%d\";\n", id, id+1)
		} else {
			nilid := id + 10000
			nodelist += fmt.Sprintf("\"%d\" [label=\"∅\",shape=circle,fixedsize=true,width=.4];\n", nilid)
			edgelist += fmt.Sprintf("\"%d\":next -> \"%d\";\n", id, nilid)
		}
		id++
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isHead, isLast bool) string {
	s := ",style=filled"
	switch {
	case isHead && isLast:
		s += ",fillcolor=\"#a3d7e4\""
	case isHead:
		s += ",fillcolor=\"#CCDDFF\""
	case isLast:
		s += ",fillcolor=\"#FFDDCC\""
	default:
		s += ",fillcolor=white"
	}
	return s
}
