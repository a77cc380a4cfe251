package vdom

import "strconv"

// RawKind is the raw node type discriminator.
type RawKind uint8

const (
	RawEmpty     RawKind = iota // nullish leaf
	RawBool                     // boolean leaf (rendered as nothing)
	RawNumber                   // numeric leaf
	RawString                   // string leaf
	RawSeq                      // sequence of raw nodes (e.g., from iteration)
	RawComponent                // component function invocation
	RawElement                  // element description with unnormalized children
)

// String returns the string representation of the RawKind.
func (k RawKind) String() string {
	switch k {
	case RawEmpty:
		return "Empty"
	case RawBool:
		return "Bool"
	case RawNumber:
		return "Number"
	case RawString:
		return "String"
	case RawSeq:
		return "Seq"
	case RawComponent:
		return "Component"
	case RawElement:
		return "Element"
	default:
		return "Unknown"
	}
}

// Props is the input-properties value a component function receives. When the
// component invocation carried children, they appear under the "children"
// key as a []*RawNode; otherwise the key is absent.
type Props map[string]any

// Children returns the child list attached to the props, or nil.
func (p Props) Children() []*RawNode {
	kids, _ := p["children"].([]*RawNode)
	return kids
}

// ComponentFunc renders a raw tree from input properties. Components are
// pure functions: no instance, no lifecycle, no memoization. Every
// normalization pass re-invokes every component in the tree.
type ComponentFunc func(Props) *RawNode

// RawNode is the polymorphic tree description consumed by Normalize.
// Exactly one variant's fields are meaningful, selected by Kind. Raw trees
// are transient: they are never stored as snapshots.
type RawNode struct {
	Kind RawKind

	Bool bool    // RawBool
	Num  float64 // RawNumber
	Str  string  // RawString

	Items []*RawNode // RawSeq

	Fn    ComponentFunc // RawComponent
	Props Props         // RawComponent input properties (without children)

	Tag      string     // RawElement
	Attrs    Attrs      // RawElement
	Children []*RawNode // RawElement / RawComponent unnormalized children
}

// Empty returns the nullish raw leaf.
func Empty() *RawNode { return &RawNode{Kind: RawEmpty} }

// Bool returns a boolean raw leaf. Booleans render as nothing; they exist so
// expressions like cond && node have somewhere to go.
func Bool(b bool) *RawNode { return &RawNode{Kind: RawBool, Bool: b} }

// Number returns a numeric raw leaf.
func Number(n float64) *RawNode { return &RawNode{Kind: RawNumber, Num: n} }

// String_ returns a string raw leaf.
func String_(s string) *RawNode { return &RawNode{Kind: RawString, Str: s} }

// Seq groups raw nodes into a sequence, as produced by iteration.
func Seq(items ...*RawNode) *RawNode { return &RawNode{Kind: RawSeq, Items: items} }

// Element returns a raw element description.
func Element(tag string, attrs Attrs, children ...*RawNode) *RawNode {
	return &RawNode{Kind: RawElement, Tag: tag, Attrs: attrs, Children: children}
}

// Component returns a raw component invocation.
func Component(fn ComponentFunc, props Props, children ...*RawNode) *RawNode {
	return &RawNode{Kind: RawComponent, Fn: fn, Props: props, Children: children}
}

// formatNumber renders a numeric leaf the way a dynamic runtime stringifies
// numbers: no exponent for ordinary magnitudes, no trailing zeros.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
