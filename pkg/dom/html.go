package dom

import (
	"bytes"
	"io"
	"sort"
	"strings"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// HTML serializes the subtree rooted at n to an HTML string.
func (n *Node) HTML() string {
	var buf bytes.Buffer
	_ = WriteHTML(&buf, n)
	return buf.String()
}

// WriteHTML streams the subtree rooted at n to the given writer. Element IDs
// serialize as data-lid so an external client can address events; boolean
// properties serialize as bare attributes when set.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if n.typ == TextNode {
		_, err := io.WriteString(w, escapeHTML(n.text))
		return err
	}

	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	if err := writeAttrs(w, n); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if IsVoidElement(n.tag) {
		return nil
	}
	for _, c := range n.children {
		if err := WriteHTML(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

// writeAttrs writes data-lid, string attributes in sorted order, and set
// boolean properties as bare attributes.
func writeAttrs(w io.Writer, n *Node) error {
	if _, err := io.WriteString(w, ` data-lid="`+escapeAttr(n.id)+`"`); err != nil {
		return err
	}

	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := io.WriteString(w, " "+k+`="`+escapeAttr(n.attrs[k])+`"`); err != nil {
			return err
		}
	}

	props := make([]string, 0, len(n.props))
	for k, on := range n.props {
		if on {
			props = append(props, strings.ToLower(k))
		}
	}
	sort.Strings(props)
	for _, k := range props {
		if _, err := io.WriteString(w, " "+k); err != nil {
			return err
		}
	}
	return nil
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard entities it escapes whitespace characters that
// could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
