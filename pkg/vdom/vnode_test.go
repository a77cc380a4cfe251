package vdom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindText, "Text"},
		{KindElement, "Element"},
		{Kind(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRawKindString(t *testing.T) {
	tests := []struct {
		kind RawKind
		want string
	}{
		{RawEmpty, "Empty"},
		{RawBool, "Bool"},
		{RawNumber, "Number"},
		{RawString, "String"},
		{RawSeq, "Seq"},
		{RawComponent, "Component"},
		{RawElement, "Element"},
		{RawKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("RawKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWithChildrenCopies(t *testing.T) {
	orig := NewElement("div", Attrs{"class": "box"}, NewText("old"))

	copied := orig.WithChildren(NewText("new"), NewText("extra"))

	if copied == orig {
		t.Fatal("WithChildren returned the receiver")
	}
	if len(orig.Children) != 1 || orig.Children[0].Text != "old" {
		t.Errorf("receiver children changed: %v", orig.Children)
	}
	if copied.Tag != "div" || copied.Attrs["class"] != "box" {
		t.Errorf("copy lost tag/attrs: %v", copied)
	}
	if len(copied.Children) != 2 || copied.Children[0].Text != "new" {
		t.Errorf("copy children = %v, want [new extra]", copied.Children)
	}
}

func TestIsText(t *testing.T) {
	if !NewText("x").IsText() {
		t.Error("NewText().IsText() = false")
	}
	if NewElement("div", nil).IsText() {
		t.Error("element IsText() = true")
	}
	var v *VNode
	if v.IsText() {
		t.Error("nil IsText() = true")
	}
}

func TestHelpers(t *testing.T) {
	node := String_("x")

	if If(true, node) != node {
		t.Error("If(true) did not return the node")
	}
	if If(false, node) != nil {
		t.Error("If(false) != nil")
	}
	if IfElse(false, node, nil) != nil {
		t.Error("IfElse(false) did not return the else branch")
	}
	if Unless(false, node) != node {
		t.Error("Unless(false) did not return the node")
	}
	called := false
	if When(false, func() *RawNode { called = true; return node }) != nil || called {
		t.Error("When(false) evaluated its function")
	}
	if got := Textf("n=%d", 5); got.Str != "n=5" {
		t.Errorf("Textf = %q, want n=5", got.Str)
	}
}
