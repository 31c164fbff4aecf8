package lfring

// Blocking promotes any TryQueue into a blocking queue by spinning on
// TryPush/TryPop. It adds no state of its own beyond the backoff
// tuning and holds no lock; the wrapped queue's own concurrency
// guarantees are unchanged.
type Blocking[T any] struct {
	inner              TryQueue[T]
	maximizeThroughput bool
}

// NewBlocking wraps inner, which may be any of this package's
// variants or any other type satisfying TryQueue.
func NewBlocking[T any](inner TryQueue[T], opts ...Option) *Blocking[T] {
	cfg := newConfig(0, opts...)
	return &Blocking[T]{inner: inner, maximizeThroughput: cfg.MaximizeThroughput}
}

// TryPush delegates directly to the wrapped queue.
func (b *Blocking[T]) TryPush(value T) bool { return b.inner.TryPush(value) }

// TryPop delegates directly to the wrapped queue.
func (b *Blocking[T]) TryPop() (T, bool) { return b.inner.TryPop() }

// Push spins on TryPush until it succeeds.
func (b *Blocking[T]) Push(value T) {
	backoff := newSpinBackoff(b.maximizeThroughput)
	for !b.inner.TryPush(value) {
		backoff.once()
	}
}

// Pop spins on TryPop until it succeeds.
func (b *Blocking[T]) Pop() T {
	backoff := newSpinBackoff(b.maximizeThroughput)
	for {
		if v, ok := b.inner.TryPop(); ok {
			return v
		}
		backoff.once()
	}
}
