package vdom

// Normalize collapses a raw tree description into canonical form.
//
// Scalar inputs produce exactly one canonical node: nullish and boolean
// leaves become empty text, numbers become their string form, strings pass
// through. Sequences normalize every item and drop empty-text results,
// yielding a flat slice. Component invocations are resolved by calling the
// function with its input properties (original properties plus a "children"
// entry when the invocation carried children) and normalizing the result.
// Element descriptions keep tag and attributes and normalize their children
// as a sequence.
//
// Normalizing canonical output again (via ToRaw) is a fixed point.
func Normalize(raw *RawNode) []*VNode {
	if raw == nil {
		return []*VNode{NewText("")}
	}
	switch raw.Kind {
	case RawEmpty, RawBool:
		return []*VNode{NewText("")}
	case RawNumber:
		return []*VNode{NewText(formatNumber(raw.Num))}
	case RawString:
		return []*VNode{NewText(raw.Str)}
	case RawSeq:
		return normalizeSeq(raw.Items)
	case RawComponent:
		return Normalize(invoke(raw))
	case RawElement:
		return []*VNode{NewElement(raw.Tag, raw.Attrs, normalizeSeq(raw.Children)...)}
	default:
		return []*VNode{NewText("")}
	}
}

// NormalizeOne normalizes a raw tree expected to produce a single canonical
// root. Sequences that filter down to several roots return the first;
// sequences that filter down to nothing return an empty text node.
func NormalizeOne(raw *RawNode) *VNode {
	nodes := Normalize(raw)
	if len(nodes) == 0 {
		return NewText("")
	}
	return nodes[0]
}

// normalizeSeq normalizes every item and drops empty-text results. Nested
// sequences flatten because each item's normalization already returns a flat
// slice; no re-flattening pass is needed.
func normalizeSeq(items []*RawNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for _, item := range items {
		for _, n := range Normalize(item) {
			if n == nil || (n.Kind == KindText && n.Text == "") {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

// invoke calls a component function with its input properties. The original
// properties are copied and, when the invocation carried children, extended
// with a "children" entry holding the unnormalized child list.
func invoke(raw *RawNode) *RawNode {
	props := make(Props, len(raw.Props)+1)
	for k, v := range raw.Props {
		props[k] = v
	}
	if len(raw.Children) > 0 {
		props["children"] = raw.Children
	}
	return raw.Fn(props)
}

// ToRaw embeds a canonical node back into the raw grammar. It exists so
// canonical subtrees can be spliced into raw descriptions and so that
// normalization idempotence is directly checkable.
func ToRaw(v *VNode) *RawNode {
	if v == nil {
		return Empty()
	}
	switch v.Kind {
	case KindText:
		return String_(v.Text)
	case KindElement:
		kids := make([]*RawNode, len(v.Children))
		for i, c := range v.Children {
			kids[i] = ToRaw(c)
		}
		return Element(v.Tag, v.Attrs, kids...)
	default:
		return Empty()
	}
}
