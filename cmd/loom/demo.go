package main

import (
	"strings"

	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/host"
	"github.com/loomui/loom/pkg/render"
	"github.com/loomui/loom/pkg/vdom"
)

// demoApp builds a small application exercising every supported event
// category: a counter, a filtered todo list, and a form with boolean
// properties. State lives in closed-over variables; every handler mutates
// state and re-renders from inside dispatch.
func demoApp() host.App {
	return func(r *render.Renderer, container *dom.Node) {
		var (
			count   int
			items   = []string{"learn the tree model", "wire delegation"}
			draft   string
			filter  string
			muted   bool
			focused string
		)

		var rerender func()

		// todoItem is a pure component: re-invoked on every pass, no
		// retained instance.
		todoItem := func(props vdom.Props) *vdom.RawNode {
			label, _ := props["label"].(string)
			return vdom.Li(
				vdom.Span(label),
				vdom.Button(
					vdom.OnClick(func(ev *dom.Event) {
						for i, item := range items {
							if item == label {
								items = append(items[:i], items[i+1:]...)
								break
							}
						}
						rerender()
					}),
					"done",
				),
			)
		}

		view := func() *vdom.RawNode {
			visible := make([]string, 0, len(items))
			for _, item := range items {
				if filter == "" || strings.Contains(item, filter) {
					visible = append(visible, item)
				}
			}

			return vdom.Div(
				vdom.Class("app"),
				vdom.H1("Count: ", count),
				vdom.Button(
					vdom.OnClick(func(ev *dom.Event) { count++; rerender() }),
					vdom.OnMouseOver(func(ev *dom.Event) { focused = "counter"; rerender() }),
					"increment",
				),
				vdom.Form(
					vdom.OnSubmit(func(ev *dom.Event) {
						if draft != "" {
							items = append(items, draft)
							draft = ""
							rerender()
						}
					}),
					vdom.Input(
						vdom.Type("text"),
						vdom.Value(draft),
						vdom.Placeholder("add an item"),
						vdom.Disabled(muted),
						vdom.OnInput(func(ev *dom.Event) { draft = ev.Value }),
						vdom.OnFocus(func(ev *dom.Event) { focused = "draft"; rerender() }),
						vdom.OnKeyDown(func(ev *dom.Event) {}),
					),
					vdom.Button(vdom.Type("submit"), "add"),
				),
				vdom.Label(
					vdom.Input(
						vdom.Type("checkbox"),
						vdom.Checked(muted),
						vdom.OnChange(func(ev *dom.Event) { muted = ev.Checked; rerender() }),
					),
					"pause input",
				),
				vdom.Input(
					vdom.Type("text"),
					vdom.Placeholder("filter"),
					vdom.Value(filter),
					vdom.OnInput(func(ev *dom.Event) { filter = ev.Value; rerender() }),
				),
				vdom.Ul(
					vdom.Map(visible, func(item string, _ int) *vdom.RawNode {
						return vdom.H(todoItem, vdom.Attrs{"label": item})
					}),
				),
				vdom.If(focused != "", vdom.P(vdom.Class("hint"), "last focus: ", focused)),
			)
		}

		rerender = func() { r.Render(view(), container) }
		rerender()
	}
}
