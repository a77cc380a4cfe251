package render

import (
	"fmt"

	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/vdom"
)

// Materialize converts a canonical node into a live node, applying
// attributes and registering event handlers through the delegator.
//
// Materialize panics when handed a node that is not canonical: resolving
// component functions is the normalizer's job, and a non-canonical node here
// means a caller bypassed normalization. That is an invariant violation, not
// a recoverable condition.
func (r *Renderer) Materialize(v *vdom.VNode) *dom.Node {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case vdom.KindText:
		r.metrics.nodeCreated()
		return dom.NewText(v.Text)
	case vdom.KindElement:
		el := dom.NewElement(v.Tag)
		for key, value := range v.Attrs {
			r.applyAttr(el, key, value)
		}
		for _, child := range v.Children {
			if child == nil {
				continue
			}
			el.AppendChild(r.Materialize(child))
		}
		r.metrics.nodeCreated()
		return el
	default:
		panic(fmt.Sprintf("render: materialize called with non-canonical node kind %d; normalize before materializing", v.Kind))
	}
}
