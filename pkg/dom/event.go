package dom

// Event is the platform event object delivered to listeners. The same event
// value is passed, unmodified, to every listener along the bubble path.
type Event struct {
	// Category is the event category ("click", "input", ...).
	Category string

	// Target is the node the event originated on.
	Target *Node

	// Value carries the input value for input/change events.
	Value string

	// Checked carries the checkbox state for change events.
	Checked bool
}

// Listener is a direct platform listener attached to a single node.
type Listener func(*Event)

// AddEventListener attaches a direct listener for the given category.
// Listeners fire in attachment order when an event bubbles through the node.
func (n *Node) AddEventListener(category string, l Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[category] = append(n.listeners[category], l)
}

// Listeners returns the direct listeners attached for a category.
func (n *Node) Listeners(category string) []Listener {
	return n.listeners[category]
}

// Fire delivers an event starting at target and bubbling through its
// ancestors. Each node's direct listeners for the event's category run in
// attachment order before the event moves to the parent. If the event has no
// target, the given node becomes it.
func Fire(target *Node, ev *Event) {
	if target == nil || ev == nil {
		return
	}
	if ev.Target == nil {
		ev.Target = target
	}
	for n := target; n != nil; n = n.parent {
		for _, l := range n.listeners[ev.Category] {
			l(ev)
		}
	}
}
