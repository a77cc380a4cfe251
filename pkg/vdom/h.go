package vdom

import "fmt"

// H is the tree-description construction call. typ is a tag name or a
// component function, attrs is the attribute mapping (nil for none), and the
// variadic children are deep-flattened with nil, true, and false dropped
// before being attached.
//
// A []*RawNode child (typically produced by iteration, see Map) is attached
// as a single nested sequence; Normalize flattens and filters it.
func H(typ any, attrs Attrs, children ...any) *RawNode {
	kids := flattenChildren(children)
	switch t := typ.(type) {
	case string:
		return Element(t, attrs, kids...)
	case ComponentFunc:
		return Component(t, Props(attrs), kids...)
	case func(Props) *RawNode:
		return Component(t, Props(attrs), kids...)
	default:
		panic(fmt.Sprintf("vdom: H called with unsupported type %T", typ))
	}
}

// flattenChildren flattens literal nesting and converts scalar children to
// raw leaves. Nullish and boolean children are dropped here, matching the
// construction-time pre-filter; sequences from iteration survive as a single
// RawSeq child for Normalize to deal with.
func flattenChildren(args []any) []*RawNode {
	out := make([]*RawNode, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case bool:
			continue
		case *RawNode:
			if v != nil {
				out = append(out, v)
			}
		case []*RawNode:
			if len(v) > 0 {
				out = append(out, Seq(v...))
			}
		case []any:
			out = append(out, flattenChildren(v)...)
		case string:
			out = append(out, String_(v))
		case int:
			out = append(out, Number(float64(v)))
		case int64:
			out = append(out, Number(float64(v)))
		case float64:
			out = append(out, Number(v))
		default:
			panic(fmt.Sprintf("vdom: unsupported child type %T", arg))
		}
	}
	return out
}

// Map builds a child sequence from a slice. Nil results are skipped.
func Map[T any](items []T, fn func(item T, index int) *RawNode) []*RawNode {
	out := make([]*RawNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			out = append(out, node)
		}
	}
	return out
}
