package render

import (
	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/vdom"
)

// reconcile brings the live child of parent at index into line with next,
// using prev (the stored snapshot for that position) to decide the minimal
// mutation. Either canonical node may be nil at the tail of a child list.
//
// The case matrix, in priority order: removal, trailing append, text
// update-in-place, text→element replace, tag-change replace, same-tag reuse
// with attribute diff and positional child recursion.
func (r *Renderer) reconcile(parent *dom.Node, next, prev *vdom.VNode, index int) {
	switch {
	case next == nil && prev == nil:
		return

	case next == nil:
		r.removeChildAt(parent, index)

	case prev == nil:
		// New trailing node: appended, never inserted at an interior index.
		parent.AppendChild(r.Materialize(next))

	case next.IsText() && prev.IsText():
		child := parent.ChildAt(index)
		if child == nil {
			return
		}
		if next.Text != prev.Text {
			child.SetText(next.Text)
			r.metrics.textUpdated()
		}

	case prev.IsText(), next.IsText(), next.Tag != prev.Tag:
		// Shape changed: replace wholesale, no subtree reuse.
		r.replaceChildAt(parent, index, next)

	default:
		el := parent.ChildAt(index)
		if el == nil {
			return
		}
		r.reconcileAttrs(el, next, prev)
		r.reconcileChildren(el, next.Children, prev.Children)
	}
}

// reconcileAttrs diffs the attribute sets of two same-tag elements. Removed
// keys reverse their application; added or changed keys reapply. A changed
// handler value unregisters the old handler before registering the new one
// so the registration set tracks exactly the current tree.
func (r *Renderer) reconcileAttrs(el *dom.Node, next, prev *vdom.VNode) {
	for key, old := range prev.Attrs {
		if _, ok := next.Attrs[key]; !ok {
			r.removeAttr(el, key, old)
			r.metrics.attrUpdated()
		}
	}
	for key, value := range next.Attrs {
		old, had := prev.Attrs[key]
		if had && attrEqual(old, value) {
			continue
		}
		if had && isHandlerKey(key, old) {
			r.removeAttr(el, key, old)
		}
		r.applyAttr(el, key, value)
		r.metrics.attrUpdated()
	}
}

// reconcileChildren recurses over child positions in ascending order, then
// removes surplus trailing children in strictly descending index order.
// Ascending removal would shift later indices before they are visited,
// removing the wrong node or letting one survive that should not.
func (r *Renderer) reconcileChildren(parent *dom.Node, next, prev []*vdom.VNode) {
	for i := 0; i < len(next); i++ {
		var old *vdom.VNode
		if i < len(prev) {
			old = prev[i]
		}
		r.reconcile(parent, next[i], old, i)
	}
	for i := len(prev) - 1; i >= len(next); i-- {
		r.removeChildAt(parent, i)
	}
}

// removeChildAt removes the live child at index, releasing its handler
// registrations first. A missing child is a tolerated no-op: the live tree
// drifted from the snapshot and the reconciler does not try to repair it.
func (r *Renderer) removeChildAt(parent *dom.Node, index int) {
	child := parent.ChildAt(index)
	if child == nil {
		return
	}
	r.events.ReleaseTree(child)
	parent.RemoveChildAt(index)
	r.metrics.nodeRemoved()
}

// replaceChildAt swaps the live child at index for a fresh materialization
// of next. A missing child is a tolerated no-op.
func (r *Renderer) replaceChildAt(parent *dom.Node, index int, next *vdom.VNode) {
	child := parent.ChildAt(index)
	if child == nil {
		return
	}
	r.events.ReleaseTree(child)
	parent.ReplaceChildAt(index, r.Materialize(next))
	r.metrics.nodeRemoved()
}
