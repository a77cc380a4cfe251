// Package events implements event delegation for Loom.
//
// A Delegator owns two tables: the handler registry (live node → event
// category → ordered handler set) and the delegation root set. Installing a
// root attaches exactly one platform listener per supported category on the
// root; every dispatched event then walks from its target up to the root,
// invoking registered handlers in registration order.
//
// The Delegator is an explicit service object: construct one and thread it
// through the renderer by reference. There is no package-level registry.
package events
