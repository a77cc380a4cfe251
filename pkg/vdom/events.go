package vdom

// on creates an EventHandler for the given category.
func on(category string, handler any) EventHandler {
	return EventHandler{Event: "on" + category, Handler: handler}
}

// The supported event categories are fixed: click, input, change, submit,
// mouseover, focus, keydown. Handlers attached for other categories are
// registered but never dispatched because the delegation root only listens
// for the supported set.

// OnClick handles click events.
func OnClick(handler any) EventHandler { return on("click", handler) }

// OnInput handles input events.
func OnInput(handler any) EventHandler { return on("input", handler) }

// OnChange handles change events.
func OnChange(handler any) EventHandler { return on("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return on("submit", handler) }

// OnMouseOver handles mouseover events.
func OnMouseOver(handler any) EventHandler { return on("mouseover", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return on("focus", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return on("keydown", handler) }
