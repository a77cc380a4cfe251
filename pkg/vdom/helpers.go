package vdom

import "fmt"

// Textf creates a formatted string leaf.
func Textf(format string, args ...any) *RawNode {
	return String_(fmt.Sprintf(format, args...))
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *RawNode) *RawNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *RawNode) *RawNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation. The function is only called if
// condition is true.
func When(condition bool, fn func() *RawNode) *RawNode {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, node *RawNode) *RawNode {
	if !condition {
		return node
	}
	return nil
}
