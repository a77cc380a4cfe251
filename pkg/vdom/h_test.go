package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHElement(t *testing.T) {
	got := H("div", Attrs{"class": "box"}, "hello", 42)

	if got.Kind != RawElement || got.Tag != "div" {
		t.Fatalf("H() = %v <%s>, want Element <div>", got.Kind, got.Tag)
	}
	if got.Attrs["class"] != "box" {
		t.Errorf(`Attrs["class"] = %v, want "box"`, got.Attrs["class"])
	}
	if len(got.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(got.Children))
	}
	if got.Children[0].Kind != RawString || got.Children[0].Str != "hello" {
		t.Errorf("child 0 = %v, want String hello", got.Children[0])
	}
	if got.Children[1].Kind != RawNumber || got.Children[1].Num != 42 {
		t.Errorf("child 1 = %v, want Number 42", got.Children[1])
	}
}

func TestHComponent(t *testing.T) {
	fn := func(props Props) *RawNode { return String_("x") }

	got := H(fn, Attrs{"label": "a"}, String_("child"))

	if got.Kind != RawComponent {
		t.Fatalf("H(fn) kind = %v, want Component", got.Kind)
	}
	if got.Props["label"] != "a" {
		t.Errorf(`Props["label"] = %v, want "a"`, got.Props["label"])
	}
	if len(got.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(got.Children))
	}
}

func TestHUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("H(42, ...) did not panic")
		}
	}()
	H(42, nil)
}

func TestFlattenChildren(t *testing.T) {
	list := []*RawNode{String_("a"), String_("b")}

	got := flattenChildren([]any{
		nil,
		true,
		false,
		"text",
		7,
		list,
		[]any{"x", nil, "y"},
	})

	want := []*RawNode{
		String_("text"),
		Number(7),
		Seq(list...),
		String_("x"),
		String_("y"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flattenChildren mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenChildrenUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unsupported child type did not panic")
		}
	}()
	flattenChildren([]any{struct{}{}})
}

func TestMap(t *testing.T) {
	items := []string{"a", "skip", "b"}

	got := Map(items, func(item string, i int) *RawNode {
		if item == "skip" {
			return nil
		}
		return String_(item)
	})

	want := []*RawNode{String_("a"), String_("b")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestElAttributes(t *testing.T) {
	got := Div(
		Class("app", "wide"),
		ID("main"),
		AttrIf(false, ID("never")),
		nil,
		"body",
	)

	if got.Attrs["class"] != "app wide" {
		t.Errorf(`class = %v, want "app wide"`, got.Attrs["class"])
	}
	if got.Attrs["id"] != "main" {
		t.Errorf(`id = %v, want "main"`, got.Attrs["id"])
	}
	if len(got.Children) != 1 || got.Children[0].Str != "body" {
		t.Errorf("children = %v, want single text body", got.Children)
	}
}

func TestElEventHandler(t *testing.T) {
	handler := func() {}
	got := Button(OnClick(handler), "go")

	if got.Attrs["onclick"] == nil {
		t.Error("onclick attribute not set")
	}
}

func TestElNestedList(t *testing.T) {
	items := []*RawNode{Li("one"), Li("two")}
	got := Ul(items)

	if len(got.Children) != 1 || got.Children[0].Kind != RawSeq {
		t.Fatalf("list child = %v, want a single Seq", got.Children)
	}
	if len(got.Children[0].Items) != 2 {
		t.Errorf("seq length = %d, want 2", len(got.Children[0].Items))
	}
}

func TestBooleanPropHelpers(t *testing.T) {
	tests := []struct {
		attr Attr
		key  string
	}{
		{Checked(true), "checked"},
		{Disabled(true), "disabled"},
		{Selected(true), "selected"},
		{ReadOnly(true), "readOnly"},
	}
	for _, tt := range tests {
		if tt.attr.Key != tt.key {
			t.Errorf("key = %q, want %q", tt.attr.Key, tt.key)
		}
		if tt.attr.Value != true {
			t.Errorf("%s value = %v, want true", tt.key, tt.attr.Value)
		}
	}
}

func TestEventHelperKeys(t *testing.T) {
	tests := []struct {
		eh   EventHandler
		want string
	}{
		{OnClick(nil), "onclick"},
		{OnInput(nil), "oninput"},
		{OnChange(nil), "onchange"},
		{OnSubmit(nil), "onsubmit"},
		{OnMouseOver(nil), "onmouseover"},
		{OnFocus(nil), "onfocus"},
		{OnKeyDown(nil), "onkeydown"},
	}
	for _, tt := range tests {
		if tt.eh.Event != tt.want {
			t.Errorf("event key = %q, want %q", tt.eh.Event, tt.want)
		}
	}
}
