package lfring

import "runtime"

// spinBackoff implements the adaptive spin used by every blocking wait
// in this package: a short run of pure busy-spins (cheap, low latency,
// what the "maximize throughput" flag leans on), then a run of
// runtime.Gosched yields once the busy phase has clearly not paid off.
//
// Go's standard library does not expose the x86 PAUSE / ARM YIELD
// instruction the original C++ implementation spins on
// (boost::atomics::detail::pause / _mm_pause); every retrieved Go
// lock-free queue substitutes runtime.Gosched in its spin loops, and
// this package follows suit rather than reaching for cgo or a
// per-arch assembly stub for a one-instruction hint.
type spinBackoff struct {
	spins  int
	yields int

	maxSpins int
}

// newSpinBackoff returns a backoff tuned by the maximizeThroughput
// flag: true spins longer before yielding (favors aggregate
// throughput under contention), false yields sooner (favors a single
// waiter's latency at the cost of burning fewer cycles on spinning).
func newSpinBackoff(maximizeThroughput bool) spinBackoff {
	if maximizeThroughput {
		return spinBackoff{maxSpins: 64}
	}
	return spinBackoff{maxSpins: 4}
}

// once performs one step of back-off. Call it in a loop; it never
// returns early on its own, the caller's loop condition decides when
// to stop.
func (b *spinBackoff) once() {
	if b.spins < b.maxSpins {
		pause()
		b.spins++
		return
	}
	runtime.Gosched()
	b.yields++
}

// pause marks one busy-wait step. Its body is empty: it issues no
// hardware pause or yield instruction, so the processor gets no
// low-power hint from it.
func pause() {
	// Deliberately empty: Go gives no portable access to a hardware
	// pause hint without cgo or per-arch assembly, and nothing in the
	// retrieved corpus ships one either. The runtime.Gosched call in
	// spinBackoff.once is what actually de-schedules this goroutine
	// once the busy phase has run its course.
}
