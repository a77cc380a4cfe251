package render

import (
	"log/slog"

	"github.com/loomui/loom/pkg/dom"
	"github.com/loomui/loom/pkg/events"
	"github.com/loomui/loom/pkg/vdom"
)

// Renderer renders raw tree descriptions into live containers. It threads a
// single Delegator through materialization and reconciliation and keeps one
// canonical snapshot per container, replaced atomically on every render.
type Renderer struct {
	events    *events.Delegator
	snapshots map[*dom.Node][]*vdom.VNode
	log       *slog.Logger
	metrics   *Metrics
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) { r.log = logger }
}

// WithMetrics attaches render metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) { r.metrics = m }
}

// New creates a Renderer dispatching events through the given delegator.
func New(delegator *events.Delegator, opts ...Option) *Renderer {
	r := &Renderer{
		events:    delegator,
		snapshots: make(map[*dom.Node][]*vdom.VNode),
		log:       slog.Default().With("component", "render"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Delegator returns the delegator the renderer registers handlers with.
func (r *Renderer) Delegator() *events.Delegator {
	return r.events
}

// Snapshot returns the canonical roots last rendered into container, or nil
// before the first render.
func (r *Renderer) Snapshot(container *dom.Node) []*vdom.VNode {
	return r.snapshots[container]
}

// Render normalizes raw and brings container's live children in line with
// the result. The first render into a container clears it and materializes
// from scratch; every later render reconciles position by position against
// the stored snapshot. The new canonical roots replace the snapshot, and
// delegation is (idempotently) installed on the container.
//
// Render is synchronous and may be called again from within an event handler
// running under dispatch; the nested call behaves as an ordinary render.
func (r *Renderer) Render(raw *vdom.RawNode, container *dom.Node) {
	roots := vdom.Normalize(raw)

	prev, rendered := r.snapshots[container]
	if !rendered {
		r.mount(roots, container)
	} else {
		for i := 0; i < len(roots); i++ {
			var old *vdom.VNode
			if i < len(prev) {
				old = prev[i]
			}
			r.reconcile(container, roots[i], old, i)
		}
		for i := len(prev) - 1; i >= len(roots); i-- {
			r.removeChildAt(container, i)
		}
	}

	r.snapshots[container] = roots
	r.events.Install(container)
	r.metrics.rendered(!rendered)
	r.log.Debug("rendered", "container", container.ID(), "roots", len(roots), "first", !rendered)
}

// mount clears any pre-existing content under container and materializes the
// canonical roots in order.
func (r *Renderer) mount(roots []*vdom.VNode, container *dom.Node) {
	for _, stale := range container.Children() {
		r.events.ReleaseTree(stale)
	}
	container.Clear()
	for _, root := range roots {
		container.AppendChild(r.Materialize(root))
	}
}

// Release forgets container's snapshot and drops every handler registration
// under it. Call when a container is destroyed.
func (r *Renderer) Release(container *dom.Node) {
	for _, child := range container.Children() {
		r.events.ReleaseTree(child)
	}
	delete(r.snapshots, container)
}
