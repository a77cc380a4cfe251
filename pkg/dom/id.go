package dom

import (
	"fmt"
	"sync"
)

// IDGenerator generates stable node IDs.
type IDGenerator struct {
	counter uint64
	mu      sync.Mutex
}

// NewIDGenerator creates a new IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next node ID (e.g., "n1", "n2", ...).
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("n%d", g.counter)
}

// Reset resets the counter to 0.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// ids is the generator behind NewElement and NewText.
var ids = NewIDGenerator()

// ResetIDs resets the package ID generator. Intended for tests that assert
// on serialized output.
func ResetIDs() {
	ids.Reset()
}
