package dom

// NodeType is the live node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a live UI node. While attached, a node is exclusively owned by its
// parent; the whole subtree below a delegation root is owned by that root.
type Node struct {
	typ       NodeType
	id        string
	tag       string
	text      string
	attrs     map[string]string
	props     map[string]bool
	children  []*Node
	parent    *Node
	listeners map[string][]Listener
}

// NewElement creates a detached element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{
		typ:   ElementNode,
		id:    ids.Next(),
		tag:   tag,
		attrs: make(map[string]string),
		props: make(map[string]bool),
	}
}

// NewText creates a detached text node with the given content.
func NewText(content string) *Node {
	return &Node{typ: TextNode, id: ids.Next(), text: content}
}

// Type returns the node type.
func (n *Node) Type() NodeType { return n.typ }

// ID returns the node's stable ID.
func (n *Node) ID() string { return n.id }

// Tag returns the element tag name, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content of a text node.
func (n *Node) Text() string { return n.text }

// SetText overwrites the text content in place.
func (n *Node) SetText(content string) { n.text = content }

// Parent returns the structural parent, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Attr returns the value of a string attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets a string attribute.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// RemoveAttr removes a string attribute.
func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, key)
}

// Prop returns a boolean property. Absent properties are false.
func (n *Node) Prop(key string) bool {
	return n.props[key]
}

// SetProp assigns a boolean property. Properties live beside attributes:
// a property never appears as a string attribute.
func (n *Node) SetProp(key string, value bool) {
	if n.props == nil {
		n.props = make(map[string]bool)
	}
	n.props[key] = value
}

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Children returns the child list. The returned slice is shared; callers
// must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// ChildAt returns the child at index i, or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// AppendChild appends a child, detaching it from any previous parent.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChildAt removes and returns the child at index i. Out-of-range
// indexes are a no-op returning nil.
func (n *Node) RemoveChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	child := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
	return child
}

// RemoveChild removes the given child if present.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.RemoveChildAt(i)
			return
		}
	}
}

// ReplaceChildAt swaps the child at index i for repl. Out-of-range indexes
// are a no-op.
func (n *Node) ReplaceChildAt(i int, repl *Node) *Node {
	if i < 0 || i >= len(n.children) || repl == nil {
		return nil
	}
	old := n.children[i]
	repl.Detach()
	repl.parent = n
	n.children[i] = repl
	old.parent = nil
	return old
}

// Detach removes the node from its parent, if any.
func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Clear removes all children.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Walk visits the node and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// FindByID finds a node by its ID in the subtree rooted at n.
func FindByID(n *Node, id string) *Node {
	if n == nil {
		return nil
	}
	if n.id == id {
		return n
	}
	for _, c := range n.children {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
