// Package render materializes canonical trees into live nodes and keeps
// them synchronized with minimal mutation.
//
// A Renderer holds one canonical snapshot per container. Render normalizes
// its input, materializes on first render, reconciles against the stored
// snapshot on every later render, then replaces the snapshot and installs
// event delegation on the container. Reconciliation matches children
// strictly by position: there is no key-based matching, so reordering a list
// is observed as per-position mismatches rather than moves.
package render
