// Package pool wraps sync.Pool with type safety via generics.
package pool

import "sync"

// Pool is a typed object pool.
type Pool[T any] struct {
	inner sync.Pool
}

// New creates a Pool that uses newFn to allocate fresh items.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		inner: sync.Pool{
			New: func() any { return newFn() },
		},
	}
}

// Get takes an item from the pool, allocating one if it is empty.
func (p *Pool[T]) Get() T {
	return p.inner.Get().(T)
}

// Put returns an item to the pool for reuse.
func (p *Pool[T]) Put(item T) {
	p.inner.Put(item)
}
