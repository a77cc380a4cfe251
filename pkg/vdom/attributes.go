package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassName sets the class attribute through the className property key.
func ClassName(class string) Attr { return attr("className", class) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute.
func TitleAttr(title string) Attr { return attr("title", title) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return attr("for", id) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Boolean DOM properties. These apply as live properties on the platform
// node, never as string attributes.

// Checked sets the checked property.
func Checked(on bool) Attr { return attr("checked", on) }

// Disabled sets the disabled property.
func Disabled(on bool) Attr { return attr("disabled", on) }

// Selected sets the selected property.
func Selected(on bool) Attr { return attr("selected", on) }

// ReadOnly sets the readOnly property.
func ReadOnly(on bool) Attr { return attr("readOnly", on) }

// AttrIf adds an attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
