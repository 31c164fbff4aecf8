package lfring

import (
	"sync"
	"testing"
)

// TestPingPongAtomicQueue drives two capacity-8 queues between two
// goroutines that alternately push into one and pop from the other,
// the round-trip liveness scenario from the queue's design notes.
func TestPingPongAtomicQueue(t *testing.T) {
	const n = 100_000
	a, err := NewAtomicQueue[int](8)
	if err != nil {
		t.Fatalf("NewAtomicQueue(a): %v", err)
	}
	b, err := NewAtomicQueue[int](8)
	if err != nil {
		t.Fatalf("NewAtomicQueue(b): %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	var xSum, ySum int64
	go func() { // X: push into a, pop from b
		defer wg.Done()
		for i := 1; i <= n; i++ {
			a.Push(i)
			xSum += int64(b.Pop())
		}
	}()
	go func() { // Y: pop from a, push into b
		defer wg.Done()
		for i := 1; i <= n; i++ {
			v := a.Pop()
			ySum += int64(v)
			b.Push(v)
		}
	}()
	wg.Wait()

	want := int64(n) * int64(n+1) / 2
	if ySum != want {
		t.Fatalf("Y observed sum %d, want %d", ySum, want)
	}
	if xSum != want {
		t.Fatalf("X observed sum %d, want %d", xSum, want)
	}
}

// TestPingPongStateQueue repeats the round-trip scenario against the
// state-byte variant.
func TestPingPongStateQueue(t *testing.T) {
	const n = 100_000
	a, err := NewStateQueue[int](8)
	if err != nil {
		t.Fatalf("NewStateQueue(a): %v", err)
	}
	b, err := NewStateQueue[int](8)
	if err != nil {
		t.Fatalf("NewStateQueue(b): %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)

	var ySum int64
	go func() {
		defer wg.Done()
		for i := 1; i <= n; i++ {
			a.Push(i)
			b.Pop()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 1; i <= n; i++ {
			v := a.Pop()
			ySum += int64(v)
			b.Push(v)
		}
	}()
	wg.Wait()

	want := int64(n) * int64(n+1) / 2
	if ySum != want {
		t.Fatalf("observed sum %d, want %d", ySum, want)
	}
}

// TestCounterWrapAtomicQueue pre-sets both counters near the top of
// the uint64 range via white-box field access, then runs enough
// traffic through the queue to force the head/tail counters past
// their wraparound point, and checks that conservation still holds.
// This is the white-box variant of the counter-wrap scenario; the
// alternative (N > 2^64 real operations) is infeasible to run.
func TestCounterWrapAtomicQueue(t *testing.T) {
	const n = 1_000_000
	q, err := NewAtomicQueue[int](64)
	if err != nil {
		t.Fatalf("NewAtomicQueue: %v", err)
	}

	const nearMax = ^uint64(0) - 5
	q.counters.head.value.Store(nearMax)
	q.counters.tail.value.Store(nearMax)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= n; i++ {
			q.Push(i)
		}
	}()
	var sum int64
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			sum += int64(q.Pop())
		}
	}()
	wg.Wait()

	want := int64(n) * int64(n+1) / 2
	if sum != want {
		t.Fatalf("sum = %d, want %d (conservation failed across counter wrap)", sum, want)
	}
	if !q.WasEmpty() {
		t.Fatalf("queue should be empty after matched push/pop counts")
	}
}

// TestCounterWrapStateQueue repeats the wraparound check against the
// state-byte variant.
func TestCounterWrapStateQueue(t *testing.T) {
	const n = 1_000_000
	q, err := NewStateQueue[int](64)
	if err != nil {
		t.Fatalf("NewStateQueue: %v", err)
	}

	const nearMax = ^uint64(0) - 5
	q.counters.head.value.Store(nearMax)
	q.counters.tail.value.Store(nearMax)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= n; i++ {
			q.Push(i)
		}
	}()
	var sum int64
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			sum += int64(q.Pop())
		}
	}()
	wg.Wait()

	want := int64(n) * int64(n+1) / 2
	if sum != want {
		t.Fatalf("sum = %d, want %d (conservation failed across counter wrap)", sum, want)
	}
}
