package lfring

import "sync/atomic"

// pointerSlotSize is the width of a boxed slot (atomic.Pointer[T] is
// always a single machine word regardless of T), used for the
// cache-line remap/capacity-rounding arithmetic in Config.resolve.
const pointerSlotSize = 8

// AtomicQueue is the atomic-cell variant: each slot is a single
// atomic.Pointer[T], with nil as the sentinel meaning "empty". Go's
// sync/atomic has no generic machine-word CAS over an arbitrary T, so
// rather than constraining T to word-sized scalars this variant boxes
// every element as *T; the sentinel is therefore always nil at the
// representation level; see DESIGN.md, Open Question #2. Callers
// wanting a zero-allocation cell for an arbitrary element type should
// use StateQueue instead.
type AtomicQueue[T any] struct {
	counters
	capacityMeta
	cfg     Config
	slots   []atomic.Pointer[T]
	expired *T // unique marker for the optimist protocol; never a user value
}

// NewAtomicQueue constructs an AtomicQueue of the requested capacity.
// Construction fails only if capacity is zero.
func NewAtomicQueue[T any](capacity uint64, opts ...Option) (*AtomicQueue[T], error) {
	if capacity == 0 {
		return nil, newConstructionError("NewAtomicQueue", "capacity must be > 0")
	}
	cfg := newConfig(capacity, opts...)
	cap_, mask, shuffle := cfg.resolve(pointerSlotSize)

	q := &AtomicQueue[T]{
		cfg:     cfg,
		slots:   make([]atomic.Pointer[T], cap_),
		expired: new(T),
	}
	q.capacityMeta.capacity = cap_
	q.capacityMeta.mask = mask
	q.capacityMeta.shuffle = shuffle
	return q, nil
}

func (q *AtomicQueue[T]) slotIndex(n uint64) uint64 {
	return index(n, q.capacityMeta.capacity, q.capacityMeta.mask, q.capacityMeta.shuffle)
}

// doPush publishes v into the slot claimed by head. It returns true on
// success. Under the optimist protocol it returns false if the slot
// was found abandoned by a consumer (see doPop); the caller must then
// reclaim a fresh head index and retry.
func (q *AtomicQueue[T]) doPush(head uint64, v T) bool {
	slot := &q.slots[q.slotIndex(head)]
	boxed := new(T)
	*boxed = v

	backoff := newSpinBackoff(q.cfg.MaximizeThroughput)
	for {
		if slot.CompareAndSwap(nil, boxed) {
			return true
		}
		if q.cfg.Optimist && slot.Load() == q.expired {
			slot.CompareAndSwap(q.expired, nil)
			return false
		}
		backoff.once()
	}
}

// doPop consumes the slot claimed by tail. ok is true once a real
// value has been published and taken. Under the optimist protocol, if
// the wait exceeds Config.OptimistSpinLimit the slot is marked
// abandoned and doPop returns (zero, false); the caller must then
// reclaim a fresh tail index and retry, permanently skipping this one.
func (q *AtomicQueue[T]) doPop(tail uint64) (v T, ok bool) {
	slot := &q.slots[q.slotIndex(tail)]
	backoff := newSpinBackoff(q.cfg.MaximizeThroughput)
	spins := 0
	for {
		cur := slot.Load()
		if cur != nil && cur != q.expired {
			if slot.CompareAndSwap(cur, nil) {
				return *cur, true
			}
			continue
		}
		if q.cfg.Optimist {
			spins++
			if spins > q.cfg.OptimistSpinLimit {
				if slot.CompareAndSwap(nil, q.expired) {
					var zero T
					return zero, false
				}
				continue
			}
		}
		backoff.once()
	}
}

// TryPush attempts to enqueue value without blocking.
func (q *AtomicQueue[T]) TryPush(value T) bool {
	for {
		head, ok := q.tryClaimPush(q.capacityMeta.capacity, q.cfg.SPSC)
		if !ok {
			return false
		}
		if q.doPush(head, value) {
			return true
		}
	}
}

// TryPop attempts to dequeue one value without blocking.
func (q *AtomicQueue[T]) TryPop() (value T, ok bool) {
	for {
		tail, claimed := q.tryClaimPop(q.cfg.SPSC)
		if !claimed {
			var zero T
			return zero, false
		}
		if v, got := q.doPop(tail); got {
			return v, true
		}
	}
}

// Push enqueues value, spinning until it is published.
func (q *AtomicQueue[T]) Push(value T) {
	for {
		head := q.claimPush()
		if q.doPush(head, value) {
			return
		}
	}
}

// Pop dequeues one value, spinning until one is available.
func (q *AtomicQueue[T]) Pop() T {
	for {
		tail := q.claimPop()
		if v, ok := q.doPop(tail); ok {
			return v
		}
	}
}

// WasEmpty reports whether the queue looked empty at a single snapshot.
func (q *AtomicQueue[T]) WasEmpty() bool { return q.counters.wasEmpty() }

// WasFull reports whether the queue looked full at a single snapshot.
func (q *AtomicQueue[T]) WasFull() bool { return q.counters.wasFull(q.capacityMeta.capacity) }

// Capacity returns the number of slots, after any MinimizeContention rounding.
func (q *AtomicQueue[T]) Capacity() uint64 { return q.capacityMeta.capacity }

// Drain pops every remaining element, calling f on each, until the
// queue is observed empty. Supplements the originating C++ design's
// destructor-drains-on-teardown behavior (Go has no destructors).
func (q *AtomicQueue[T]) Drain(f func(T)) {
	for {
		v, ok := q.TryPop()
		if !ok {
			return
		}
		f(v)
	}
}

// Stats returns a snapshot of the head counter, tail counter, and
// current occupancy, for diagnostics/benchmarking only.
func (q *AtomicQueue[T]) Stats() (head, tail uint64, size int) {
	head = q.counters.head.value.Load()
	tail = q.counters.tail.value.Load()
	return head, tail, int(int64(head - tail))
}

var _ Queue[int] = (*AtomicQueue[int])(nil)
