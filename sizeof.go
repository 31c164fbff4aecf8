package lfring

import "unsafe"

// elementSlotSize reports the in-memory width of one T, used only to
// feed the cache-line remap/capacity-rounding arithmetic in
// Config.resolve. Each generic instantiation of StateQueue[T]
// monomorphizes this to a compile-time constant.
func elementSlotSize[T any](zero T) uintptr {
	return unsafe.Sizeof(zero)
}
