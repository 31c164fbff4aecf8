package lfring

// Queue is the external contract shared by every variant in this
// package: AtomicQueue, StateQueue and MutexQueue implement it.
// Blocking offers only TryPush, TryPop, Push and Pop, not the
// WasEmpty, WasFull and Capacity observers.
type Queue[T any] interface {
	// TryPush attempts to enqueue value without blocking. It returns
	// false if the queue was observed full at the moment of the
	// attempt; that is a normal result, not an error.
	TryPush(value T) bool

	// TryPop attempts to dequeue one value without blocking. ok is
	// false if the queue was observed empty at the moment of the
	// attempt.
	TryPop() (value T, ok bool)

	// Push enqueues value, spinning until a slot becomes available
	// and the element is published. It never returns early; a caller
	// whose partnered consumer never runs blocks forever.
	Push(value T)

	// Pop dequeues one value, spinning until one becomes available
	// and is consumed.
	Pop() T

	// WasEmpty reports whether the queue looked empty at the moment
	// of a single internal snapshot. Not linearizable: do not use it
	// to predict whether a subsequent TryPop will succeed.
	WasEmpty() bool

	// WasFull is the symmetric, equally non-authoritative observation
	// for fullness.
	WasFull() bool

	// Capacity returns the number of slots the queue was constructed
	// with (after any MinimizeContention rounding).
	Capacity() uint64
}

// TryQueue is the non-blocking subset of Queue that Blocking wraps.
// Any type offering these two methods can be promoted to a blocking
// queue via NewBlocking, not just the variants defined in this
// package.
type TryQueue[T any] interface {
	TryPush(value T) bool
	TryPop() (value T, ok bool)
}
