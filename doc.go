// Package lfring implements bounded, lock-free, multi-producer /
// multi-consumer FIFO queues backed by a pre-allocated circular buffer.
//
// Two cell-storage strategies are provided: AtomicQueue, which exploits
// a sentinel value so each slot is a single atomic, and StateQueue,
// which pairs a plain element with a neighboring atomic state byte and
// therefore accepts any element type without boxing. Both share the
// same head/tail arbitration protocol (see counters in base.go) and
// offer strict FIFO per producer-consumer pair, wait-free progress once
// a slot is claimed, and graceful throughput degradation under
// contention.
//
// Blocking wraps either variant's non-blocking TryPush/TryPop into
// blocking Push/Pop via spin-pause (retry.go). MutexQueue is a
// lock-based reference implementation used only for comparison.
//
// None of the queues here offer timeouts, cancellation, or bounded
// waits: a producer whose partnered consumer never runs spins forever.
// Callers that cannot tolerate that must stick to TryPush/TryPop.
package lfring
