package events

import (
	"log/slog"
	"unsafe"

	"github.com/loomui/loom/pkg/dom"
)

// Categories is the fixed set of event categories a delegation root listens
// for. Extending delegation to more categories means extending this list,
// not changing the dispatch algorithm.
var Categories = []string{
	"click",
	"input",
	"change",
	"submit",
	"mouseover",
	"focus",
	"keydown",
}

// Handler is a delegated event handler.
type Handler func(*dom.Event)

// Identity returns the identity of a handler value: the pointer to its
// closure object. Copies of the same func value share it; distinct closures
// built from the same literal do not. This is the notion of "identical
// handler reference" the registry's set semantics use.
func Identity(h Handler) uintptr {
	return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&h)))
}

func handlerKey(h Handler) uintptr { return Identity(h) }

// handlerSet keeps handlers in registration order with set semantics per
// handler identity.
type handlerSet struct {
	order []Handler
	seen  map[uintptr]struct{}
}

func newHandlerSet() *handlerSet {
	return &handlerSet{seen: make(map[uintptr]struct{})}
}

func (s *handlerSet) add(h Handler) {
	key := handlerKey(h)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, h)
}

func (s *handlerSet) remove(h Handler) {
	key := handlerKey(h)
	if _, ok := s.seen[key]; !ok {
		return
	}
	delete(s.seen, key)
	for i, existing := range s.order {
		if handlerKey(existing) == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Delegator routes platform events to registered handlers. All state is
// instance state; see the package comment.
type Delegator struct {
	registry map[*dom.Node]map[string]*handlerSet
	roots    map[*dom.Node]bool
	log      *slog.Logger
}

// NewDelegator creates an empty Delegator.
func NewDelegator() *Delegator {
	return &Delegator{
		registry: make(map[*dom.Node]map[string]*handlerSet),
		roots:    make(map[*dom.Node]bool),
		log:      slog.Default().With("component", "events"),
	}
}

// SetLogger replaces the delegator's logger.
func (d *Delegator) SetLogger(logger *slog.Logger) {
	d.log = logger
}

// Install makes root a delegation root. Idempotent: a root that is already
// installed is left untouched. Otherwise one listener per supported category
// is attached directly on root.
func (d *Delegator) Install(root *dom.Node) {
	if d.roots[root] {
		return
	}
	for _, category := range Categories {
		d.installCategory(root, category)
	}
	d.roots[root] = true
	d.log.Debug("delegation installed", "root", root.ID())
}

func (d *Delegator) installCategory(root *dom.Node, category string) {
	root.AddEventListener(category, func(ev *dom.Event) {
		d.dispatch(root, ev)
	})
}

// Installed reports whether root is in the delegation root set.
func (d *Delegator) Installed(root *dom.Node) bool {
	return d.roots[root]
}

// dispatch walks from the event's target up to (but not including) root,
// invoking every handler registered for the event's category in registration
// order. Dispatch only reads the registry, so a handler that re-renders and
// mutates registrations mid-walk cannot corrupt the loop.
func (d *Delegator) dispatch(root *dom.Node, ev *dom.Event) {
	for target := ev.Target; target != nil && target != root; target = target.Parent() {
		set := d.registry[target][ev.Category]
		if set == nil {
			continue
		}
		// Snapshot: handlers registered or removed during dispatch take
		// effect on the next event.
		handlers := make([]Handler, len(set.order))
		copy(handlers, set.order)
		for _, h := range handlers {
			h(ev)
		}
	}
}

// Register associates a handler with (node, category). Re-registering an
// identical handler is a no-op: one registration, one invocation per event.
func (d *Delegator) Register(node *dom.Node, category string, h Handler) {
	if node == nil || h == nil {
		return
	}
	byCategory := d.registry[node]
	if byCategory == nil {
		byCategory = make(map[string]*handlerSet)
		d.registry[node] = byCategory
	}
	set := byCategory[category]
	if set == nil {
		set = newHandlerSet()
		byCategory[category] = set
	}
	set.add(h)
}

// Unregister removes a handler from (node, category). Removing a handler
// that was never registered is a silent no-op. Empty categories and empty
// node entries are pruned so the registry never grows with stale keys.
func (d *Delegator) Unregister(node *dom.Node, category string, h Handler) {
	byCategory := d.registry[node]
	if byCategory == nil {
		return
	}
	set := byCategory[category]
	if set == nil {
		return
	}
	set.remove(h)
	if len(set.order) == 0 {
		delete(byCategory, category)
	}
	if len(byCategory) == 0 {
		delete(d.registry, node)
	}
}

// ReleaseTree drops every registration for node and its descendants. This is
// the mandatory teardown for any node leaving the live tree: registry
// entries do not expire on their own.
func (d *Delegator) ReleaseTree(node *dom.Node) {
	node.Walk(func(n *dom.Node) {
		delete(d.registry, n)
	})
}

// HandlerCount returns the number of handlers registered for (node,
// category). Intended for tests and diagnostics.
func (d *Delegator) HandlerCount(node *dom.Node, category string) int {
	set := d.registry[node][category]
	if set == nil {
		return 0
	}
	return len(set.order)
}

// Registered reports whether node has any registration at all.
func (d *Delegator) Registered(node *dom.Node) bool {
	_, ok := d.registry[node]
	return ok
}
