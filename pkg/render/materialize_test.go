package render

import (
	"strings"
	"testing"

	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/events"
	"github.com/loomui/loom/pkg/vdom"
)

func newTestRenderer() *Renderer {
	return New(events.NewDelegator())
}

func TestMaterializeText(t *testing.T) {
	r := newTestRenderer()

	n := r.Materialize(vdom.NewText("hello"))

	if n.Type() != dom.TextNode || n.Text() != "hello" {
		t.Errorf("Materialize(text) = %v %q, want text hello", n.Type(), n.Text())
	}
}

func TestMaterializeNil(t *testing.T) {
	r := newTestRenderer()
	if got := r.Materialize(nil); got != nil {
		t.Errorf("Materialize(nil) = %v, want nil", got)
	}
}

func TestMaterializeElementTree(t *testing.T) {
	r := newTestRenderer()
	v := vdom.NewElement("ul", nil,
		vdom.NewElement("li", nil, vdom.NewText("one")),
		vdom.NewElement("li", nil, vdom.NewText("two")),
	)

	n := r.Materialize(v)

	if n.Tag() != "ul" || n.Len() != 2 {
		t.Fatalf("Materialize = <%s> with %d children, want <ul> with 2", n.Tag(), n.Len())
	}
	li := n.ChildAt(1)
	if li.Tag() != "li" || li.ChildAt(0).Text() != "two" {
		t.Errorf("child 1 = <%s>%q, want <li>two", li.Tag(), li.ChildAt(0).Text())
	}
	if li.Parent() != n {
		t.Error("child parent not wired")
	}
}

func TestMaterializeSkipsNilChildren(t *testing.T) {
	r := newTestRenderer()
	v := &vdom.VNode{
		Kind:     vdom.KindElement,
		Tag:      "div",
		Children: []*vdom.VNode{nil, vdom.NewText("x"), nil},
	}

	n := r.Materialize(v)

	if n.Len() != 1 || n.ChildAt(0).Text() != "x" {
		t.Errorf("children = %d, want 1 text child", n.Len())
	}
}

func TestMaterializeAttributeTable(t *testing.T) {
	r := newTestRenderer()
	clicked := false
	v := vdom.NewElement("input", vdom.Attrs{
		"type":      "checkbox",
		"className": "fancy",
		"checked":   true,
		"disabled":  false,
		"tabindex":  3,
		"onClick":   func(*dom.Event) { clicked = true },
	})

	n := r.Materialize(v)

	if got, _ := n.Attr("type"); got != "checkbox" {
		t.Errorf("type = %q, want checkbox", got)
	}
	if got, _ := n.Attr("class"); got != "fancy" {
		t.Errorf("className did not map to class: %q", got)
	}
	if got, _ := n.Attr("tabindex"); got != "3" {
		t.Errorf("tabindex = %q, want string-coerced 3", got)
	}
	if !n.Prop("checked") {
		t.Error("checked property not set")
	}
	if n.Prop("disabled") {
		t.Error("disabled property set despite false")
	}
	if _, ok := n.Attr("checked"); ok {
		t.Error("boolean property leaked into string attributes")
	}
	if _, ok := n.Attr("onClick"); ok {
		t.Error("handler leaked into string attributes")
	}

	if got := r.Delegator().HandlerCount(n, "click"); got != 1 {
		t.Fatalf("HandlerCount(click) = %d, want 1", got)
	}

	root := dom.NewElement("div")
	root.AppendChild(n)
	r.Delegator().Install(root)
	dom.Fire(n, &dom.Event{Category: "click"})
	if !clicked {
		t.Error("registered handler did not run")
	}
}

func TestMaterializeReadOnlyPropName(t *testing.T) {
	r := newTestRenderer()
	n := r.Materialize(vdom.NewElement("input", vdom.Attrs{"readOnly": true}))

	if !n.Prop("readonly") {
		t.Error("readOnly attribute did not set the readonly property")
	}
}

func TestMaterializeNonCanonicalPanics(t *testing.T) {
	r := newTestRenderer()
	defer func() {
		if recover() == nil {
			t.Error("Materialize did not panic on a non-canonical node")
		}
	}()
	r.Materialize(&vdom.VNode{Kind: vdom.Kind(7)})
}

func TestEventCategory(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"onclick", "click"},
		{"onClick", "click"},
		{"onMouseOver", "mouseover"},
		{"onKeyDown", "keydown"},
	}
	for _, tt := range tests {
		if got := eventCategory(tt.key); got != tt.want {
			t.Errorf("eventCategory(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestIsHandlerKey(t *testing.T) {
	h := func(*dom.Event) {}
	tests := []struct {
		key   string
		value any
		want  bool
	}{
		{"onClick", h, true},
		{"onclick", events.Handler(h), true},
		{"onClick", "not a func", false},
		{"on", h, false},
		{"class", h, false},
	}
	for _, tt := range tests {
		if got := isHandlerKey(tt.key, tt.value); got != tt.want {
			t.Errorf("isHandlerKey(%q, %T) = %v, want %v", tt.key, tt.value, got, tt.want)
		}
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"s", "s"},
		{true, "true"},
		{false, "false"},
		{7, "7"},
		{int64(8), "8"},
		{2.5, "2.5"},
	}
	for _, tt := range tests {
		if got := attrString(tt.in); got != tt.want {
			t.Errorf("attrString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{"", false},
		{"x", true},
		{0, false},
		{1, true},
		{nil, false},
	}
	for _, tt := range tests {
		if got := truthy(tt.in); got != tt.want {
			t.Errorf("truthy(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAttrEqualHandlers(t *testing.T) {
	h := func(*dom.Event) {}
	if !attrEqual(h, h) {
		t.Error("same handler compared unequal")
	}
	other := func(*dom.Event) {}
	if attrEqual(h, other) {
		t.Error("distinct handlers compared equal")
	}
	if attrEqual(h, "x") {
		t.Error("handler equal to a string")
	}
}

func TestAttrEqualValues(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{"x", "x", true},
		{"x", "y", false},
		{1, 1, true},
		{1, 2, false},
		{1, "1", false},
		{true, true, true},
		{nil, nil, true},
		{2.5, 2.5, true},
	}
	for _, tt := range tests {
		if got := attrEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("attrEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// stripIDs removes the serialized node IDs so trees built at different times
// compare structurally.
func stripIDs(html string) string {
	var b strings.Builder
	for i := 0; i < len(html); {
		const marker = ` data-lid="`
		if strings.HasPrefix(html[i:], marker) {
			end := strings.IndexByte(html[i+len(marker):], '"')
			i += len(marker) + end + 1
			continue
		}
		b.WriteByte(html[i])
		i++
	}
	return b.String()
}
