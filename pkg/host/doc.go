// Package host serves a live Loom tree over HTTP.
//
// The tree lives on the server; a thin inline client forwards DOM events
// for the supported categories over a websocket as JSON frames. The host
// resolves each frame to the live node by its data-lid, fires the event
// through the platform bubble path (which hands it to the delegation root's
// listeners), and answers with the re-serialized document so the client can
// swap it in.
//
// Alongside the page and the websocket the host exposes /healthz, /metrics
// (Prometheus), and /debug/tree (an indented dump of the live tree).
package host
