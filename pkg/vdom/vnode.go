package vdom

// Kind is the canonical node type discriminator.
type Kind uint8

const (
	KindText    Kind = iota // Plain text leaf
	KindElement             // <div>, <button>, etc.
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Attrs holds element attributes. Values under "on"-prefixed keys are event
// handlers; everything else is coerced to a string attribute or a boolean
// property when applied to a live node.
type Attrs map[string]any

// VNode is a canonical tree node. A canonical tree contains only text and
// element variants: no component functions, no sequences, no empty leaves.
// Only Normalize produces canonical trees.
type VNode struct {
	Kind     Kind
	Tag      string   // Element tag name (e.g., "div")
	Attrs    Attrs    // Element attributes and event handlers
	Text     string   // For KindText
	Children []*VNode // Element children; order is the sole matching key
}

// NewText creates a canonical text node.
func NewText(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// NewElement creates a canonical element node.
func NewElement(tag string, attrs Attrs, children ...*VNode) *VNode {
	return &VNode{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// WithChildren returns a new element sharing the receiver's tag and
// attributes with the children reassigned. The receiver is not modified.
func (v *VNode) WithChildren(children ...*VNode) *VNode {
	return &VNode{Kind: v.Kind, Tag: v.Tag, Attrs: v.Attrs, Text: v.Text, Children: children}
}

// IsText reports whether the node is a text leaf.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}
