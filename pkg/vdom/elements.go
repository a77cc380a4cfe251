package vdom

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler associates an event attribute key with a handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// El creates a raw element description from variadic arguments. Arguments
// can be: nil, bool (dropped), Attr, []Attr, EventHandler, *RawNode,
// []*RawNode, string, int, or float64.
func El(tag string, args ...any) *RawNode {
	node := &RawNode{
		Kind:     RawElement,
		Tag:      tag,
		Attrs:    make(Attrs),
		Children: make([]*RawNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes and children)
			continue
		case bool:
			continue
		case Attr:
			if !v.IsEmpty() {
				node.Attrs[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Attrs[a.Key] = a.Value
				}
			}
		case EventHandler:
			node.Attrs[v.Event] = v.Handler
		case *RawNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*RawNode:
			if len(v) > 0 {
				node.Children = append(node.Children, Seq(v...))
			}
		case string:
			node.Children = append(node.Children, String_(v))
		case int:
			node.Children = append(node.Children, Number(float64(v)))
		case float64:
			node.Children = append(node.Children, Number(v))
		}
	}

	return node
}

// Document structure

// Div creates a <div> element.
func Div(args ...any) *RawNode { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *RawNode { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *RawNode { return El("p", args...) }

// H1 creates an <h1> element.
func H1(args ...any) *RawNode { return El("h1", args...) }

// H2 creates an <h2> element.
func H2(args ...any) *RawNode { return El("h2", args...) }

// H3 creates an <h3> element.
func H3(args ...any) *RawNode { return El("h3", args...) }

// Header creates a <header> element.
func Header(args ...any) *RawNode { return El("header", args...) }

// Footer creates a <footer> element.
func Footer(args ...any) *RawNode { return El("footer", args...) }

// Main creates a <main> element.
func Main(args ...any) *RawNode { return El("main", args...) }

// Section creates a <section> element.
func Section(args ...any) *RawNode { return El("section", args...) }

// Article creates an <article> element.
func Article(args ...any) *RawNode { return El("article", args...) }

// Nav creates a <nav> element.
func Nav(args ...any) *RawNode { return El("nav", args...) }

// Lists

// Ul creates a <ul> element.
func Ul(args ...any) *RawNode { return El("ul", args...) }

// Ol creates an <ol> element.
func Ol(args ...any) *RawNode { return El("ol", args...) }

// Li creates an <li> element.
func Li(args ...any) *RawNode { return El("li", args...) }

// Forms

// Form creates a <form> element.
func Form(args ...any) *RawNode { return El("form", args...) }

// Input creates an <input> element.
func Input(args ...any) *RawNode { return El("input", args...) }

// Button creates a <button> element.
func Button(args ...any) *RawNode { return El("button", args...) }

// Label creates a <label> element.
func Label(args ...any) *RawNode { return El("label", args...) }

// Select creates a <select> element.
func Select(args ...any) *RawNode { return El("select", args...) }

// Option creates an <option> element.
func Option(args ...any) *RawNode { return El("option", args...) }

// Textarea creates a <textarea> element.
func Textarea(args ...any) *RawNode { return El("textarea", args...) }

// Inline

// A creates an <a> element.
func A(args ...any) *RawNode { return El("a", args...) }

// Strong creates a <strong> element.
func Strong(args ...any) *RawNode { return El("strong", args...) }

// Em creates an <em> element.
func Em(args ...any) *RawNode { return El("em", args...) }

// Code creates a <code> element.
func Code(args ...any) *RawNode { return El("code", args...) }

// Pre creates a <pre> element.
func Pre(args ...any) *RawNode { return El("pre", args...) }

// Img creates an <img> element.
func Img(args ...any) *RawNode { return El("img", args...) }

// Br creates a <br> element.
func Br() *RawNode { return El("br") }

// Tables

// Table creates a <table> element.
func Table(args ...any) *RawNode { return El("table", args...) }

// Tr creates a <tr> element.
func Tr(args ...any) *RawNode { return El("tr", args...) }

// Td creates a <td> element.
func Td(args ...any) *RawNode { return El("td", args...) }

// Th creates a <th> element.
func Th(args ...any) *RawNode { return El("th", args...) }
