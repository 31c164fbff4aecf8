package lfring

// counters is the common arbitration base shared by every lock-free
// variant in this package: two monotonically increasing indices, head
// for producers and tail for consumers, each pinned to its own cache
// line. The signed difference head-tail is the authoritative
// occupancy; it is never allowed to exceed the queue's capacity.
//
// counters never decides how a slot is published or consumed — that
// is entirely the concern of the variant (AtomicQueue, StateQueue)
// built on top of it. This mirrors the "common base" design note in
// the originating spec: the base arbitrates index ownership, the
// variant owns do_push/do_pop.
type counters struct {
	head paddedCounter
	tail paddedCounter
}

// wasEmpty reports whether the queue looked empty at the moment of
// this single head/tail snapshot. Not linearizable: by the time the
// caller acts on the result the queue may already be non-empty (or
// empty again).
func (c *counters) wasEmpty() bool {
	head := c.head.value.Load()
	tail := c.tail.value.Load()
	return int64(head-tail) <= 0
}

// wasFull is the symmetric, equally non-authoritative observation for
// fullness.
func (c *counters) wasFull(capacity uint64) bool {
	head := c.head.value.Load()
	tail := c.tail.value.Load()
	return int64(head-tail) >= int64(capacity)
}

// tryClaimPush reserves the next head counter value for a producer,
// returning false immediately if the queue is observed full. With
// spsc set the reservation is a plain store (the caller guarantees no
// other producer exists), otherwise it is a CAS retry loop.
func (c *counters) tryClaimPush(capacity uint64, spsc bool) (idx uint64, ok bool) {
	if spsc {
		head := c.head.value.Load()
		tail := c.tail.value.Load()
		if int64(head-tail) >= int64(capacity) {
			return 0, false
		}
		if debugAssertionsEnabled {
			// In debug builds, SPSC's plain store is replaced by a CAS
			// so a second concurrent producer is caught instead of
			// silently losing an increment.
			if !c.head.value.CompareAndSwap(head, head+1) {
				contractViolation("SPSC queue claimed by more than one producer")
			}
		} else {
			c.head.value.Store(head + 1)
		}
		return head, true
	}
	for {
		head := c.head.value.Load()
		tail := c.tail.value.Load()
		if int64(head-tail) >= int64(capacity) {
			return 0, false
		}
		if c.head.value.CompareAndSwap(head, head+1) {
			return head, true
		}
	}
}

// tryClaimPop is the symmetric reservation for consumers.
func (c *counters) tryClaimPop(spsc bool) (idx uint64, ok bool) {
	if spsc {
		tail := c.tail.value.Load()
		head := c.head.value.Load()
		if int64(head-tail) <= 0 {
			return 0, false
		}
		if debugAssertionsEnabled {
			if !c.tail.value.CompareAndSwap(tail, tail+1) {
				contractViolation("SPSC queue claimed by more than one consumer")
			}
		} else {
			c.tail.value.Store(tail + 1)
		}
		return tail, true
	}
	for {
		tail := c.tail.value.Load()
		head := c.head.value.Load()
		if int64(head-tail) <= 0 {
			return 0, false
		}
		if c.tail.value.CompareAndSwap(tail, tail+1) {
			return tail, true
		}
	}
}

// claimPush unconditionally reserves the next head slot for a
// blocking Push: the reservation always succeeds (fetch-add), and it
// is the variant's job to then wait at the slot level until that
// index is actually writable. Go's atomic operations carry no
// separate acquire/relaxed/seq-cst mode (see DESIGN.md, Open Question
// #3), so unlike the originating design there is no distinct
// "total order" fetch-add to select here.
func (c *counters) claimPush() uint64 {
	return c.head.value.Add(1) - 1
}

// claimPop is the symmetric unconditional reservation for a blocking Pop.
func (c *counters) claimPop() uint64 {
	return c.tail.value.Add(1) - 1
}
