// Package sequence provides the reservation ID generator. IDs are
// monotonically increasing integers handed out by an injected generator
// rather than a package-level counter, so tests can pin them.
package sequence

import "sync/atomic"

type Generator interface {
	Next() int64
}

type InMemory struct {
	counter atomic.Int64
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (g *InMemory) Next() int64 {
	return g.counter.Add(1)
}

// Fixed starts from a known value, for deterministic tests.
type Fixed struct {
	counter atomic.Int64
}

func NewFixed(start int64) *Fixed {
	f := &Fixed{}
	f.counter.Store(start - 1)
	return f
}

func (g *Fixed) Next() int64 {
	return g.counter.Add(1)
}
