package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/events"
)

// booleanProps maps the attribute keys that apply as live boolean properties
// to the property names used on the platform node. A string attribute would
// be truthy regardless of content, so these never go through SetAttr.
// The set is fixed; it is not user-extensible.
var booleanProps = map[string]string{
	"checked":  "checked",
	"disabled": "disabled",
	"selected": "selected",
	"readOnly": "readonly",
}

// isHandlerKey returns true if the key names an event handler attribute.
func isHandlerKey(key string, value any) bool {
	if len(key) <= 2 || !strings.HasPrefix(key, "on") {
		return false
	}
	_, ok := asHandler(value)
	return ok
}

// eventCategory derives the event category from a handler attribute key:
// the two-letter prefix is stripped and the remainder lowercased, so both
// "onclick" and "onClick" map to "click".
func eventCategory(key string) string {
	return strings.ToLower(key[2:])
}

// asHandler extracts the delegated handler from an attribute value.
func asHandler(value any) (events.Handler, bool) {
	switch h := value.(type) {
	case events.Handler:
		return h, true
	case func(*dom.Event):
		return h, true
	default:
		return nil, false
	}
}

// applyAttr applies one attribute to a live element, following the fixed
// application table: handler keys register with the delegator, className
// maps to the class attribute, boolean properties assign as live properties,
// and everything else becomes a string-coerced attribute.
func (r *Renderer) applyAttr(n *dom.Node, key string, value any) {
	switch {
	case isHandlerKey(key, value):
		h, _ := asHandler(value)
		r.events.Register(n, eventCategory(key), h)
	case key == "className":
		n.SetAttr("class", attrString(value))
	case booleanProps[key] != "":
		n.SetProp(booleanProps[key], truthy(value))
	default:
		n.SetAttr(key, attrString(value))
	}
}

// removeAttr reverses applyAttr for a key that disappeared from the
// attribute set: handlers unregister, className drops the class attribute,
// boolean properties assign false (never a string-attribute removal), and
// plain attributes are removed.
func (r *Renderer) removeAttr(n *dom.Node, key string, old any) {
	switch {
	case isHandlerKey(key, old):
		h, _ := asHandler(old)
		r.events.Unregister(n, eventCategory(key), h)
	case key == "className":
		n.RemoveAttr("class")
	case booleanProps[key] != "":
		n.SetProp(booleanProps[key], false)
	default:
		n.RemoveAttr(key)
	}
}

// attrEqual compares two attribute values. Handler values compare by
// identity; everything else by value.
func attrEqual(a, b any) bool {
	if ha, ok := asHandler(a); ok {
		hb, ok := asHandler(b)
		return ok && events.Identity(ha) == events.Identity(hb)
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// attrString coerces an attribute value to its string form.
func attrString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// truthy reduces an attribute value to the boolean a live property takes.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case nil:
		return false
	default:
		return true
	}
}
