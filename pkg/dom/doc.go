// Package dom implements the live UI tree Loom renders into.
//
// Node is an in-memory platform node: an element with string attributes,
// boolean properties, and ordered children, or a text leaf. Nodes carry a
// stable ID so an external transport can address them, and per-category
// listeners so a delegation root can observe bubbled events.
//
// Fire delivers an event along the child-to-ancestor chain, invoking each
// node's direct listeners. WriteHTML serializes a subtree with content and
// attribute escaping.
package dom
