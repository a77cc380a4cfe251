package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the subtree rooted at n as an indented tree for debugging.
func Dump(n *Node) string {
	tree := treeprint.NewWithRoot(nodeLabel(n))
	dumpChildren(tree, n)
	return tree.String()
}

func dumpChildren(branch treeprint.Tree, n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		if c.typ == TextNode || len(c.children) == 0 {
			branch.AddNode(nodeLabel(c))
			continue
		}
		dumpChildren(branch.AddBranch(nodeLabel(c)), c)
	}
}

// nodeLabel summarizes a node as e.g. `<button#n3 class="primary" disabled>`
// or a quoted text literal.
func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.typ == TextNode {
		return fmt.Sprintf("%q", n.text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<%s#%s", n.tag, n.id)
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, n.attrs[k])
	}
	props := make([]string, 0, len(n.props))
	for k, on := range n.props {
		if on {
			props = append(props, strings.ToLower(k))
		}
	}
	sort.Strings(props)
	for _, k := range props {
		b.WriteString(" " + k)
	}
	b.WriteString(">")
	return b.String()
}
