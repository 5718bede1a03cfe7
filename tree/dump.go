package tree

import (
	"bytes"
	"fmt"
	"io"
)

// WriteDot writes the tree as an undirected graph in dot syntax.
//
// Each node contributes one relation per child, left before right, followed
// by the relations of its left and then right subtree. Internal nodes are
// named "<label>_<weight>" and leaves "<value>_<char>".
func WriteDot(w io.Writer, root *Entry) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("graph TREE {\n")
	if root != nil {
		writeDotRelations(&buf, root)
	}
	buf.WriteString("}\n")

	return buf.WriteTo(w)
}

func writeDotRelations(buf *bytes.Buffer, e *Entry) {
	name := e.name()
	if e.left != nil {
		fmt.Fprintf(buf, "%q -- %q;\n", name, e.left.name())
	}
	if e.right != nil {
		fmt.Fprintf(buf, "%q -- %q;\n", name, e.right.name())
	}
	if e.left != nil {
		writeDotRelations(buf, e.left)
	}
	if e.right != nil {
		writeDotRelations(buf, e.right)
	}
}

// WriteTree writes an indented listing of the tree, one node per line.
//
// Lines are prefixed with one '-' per level of depth. Nodes without children
// are followed by their route from the root, e.g. "--- 'r' -> 114 (2) <000>".
func WriteTree(w io.Writer, root *Entry) (int64, error) {
	var buf bytes.Buffer
	if root != nil {
		writeTreeLines(&buf, root, nil, nil)
	}

	return buf.WriteTo(w)
}

func writeTreeLines(buf *bytes.Buffer, e *Entry, branch, path []byte) {
	buf.Write(branch)
	buf.WriteByte(' ')
	buf.WriteString(e.String())

	if e.left == nil && e.right == nil {
		buf.WriteString(" <")
		buf.Write(path)
		buf.WriteString(">\n")

		return
	}
	buf.WriteByte('\n')

	branch = append(branch, '-')
	if e.left != nil {
		writeTreeLines(buf, e.left, branch, append(path, '0'))
	}
	if e.right != nil {
		writeTreeLines(buf, e.right, branch, append(path, '1'))
	}
}
