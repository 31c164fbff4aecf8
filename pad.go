package lfring

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// cacheLineSize is the compile-time cache-line constant the rest of
// the package sizes its padding against. 64 bytes covers every
// mainstream x86-64 and arm64 part; a wrong guess here degrades
// performance rather than correctness.
const cacheLineSize = 64

// paddedCounter holds a single monotonically increasing counter on its
// own cache line, so that producers hammering head and consumers
// hammering tail never false-share.
type paddedCounter struct {
	_     cpu.CacheLinePad
	value atomic.Uint64
	_     cpu.CacheLinePad
}

// capacityMeta holds the immutable, heap-form queue metadata
// (capacity, mask, remap shuffle-bit count) on its own cache line, away from
// both counters.
type capacityMeta struct {
	_        cpu.CacheLinePad
	capacity uint64
	mask     uint64
	shuffle  uint
	_        cpu.CacheLinePad
}
