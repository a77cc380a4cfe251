// Package vdom provides the virtual tree model for Loom.
//
// Two node shapes live here. RawNode is the polymorphic description produced
// by the construction call H and the element factories: it may contain
// component functions, nested sequences, and nullish/boolean/numeric leaves.
// VNode is the canonical two-variant form (text or element) that the
// materializer and reconciler consume.
//
// Normalize is the only conversion between the two: it resolves component
// functions, flattens sequences, converts numeric leaves to text, and drops
// empty leaves. A canonical tree re-normalized through ToRaw is a fixed
// point.
package vdom
