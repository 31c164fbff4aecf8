package lfring

import "fmt"

// ConstructionError is returned synchronously from a queue constructor
// when the requested configuration cannot be honored. A capacity of
// zero is the only configuration the constructors reject. The
// hot paths (TryPush, TryPop, Push, Pop) never return errors; "queue
// full" and "queue empty" are ordinary boolean results, not errors.
type ConstructionError struct {
	Op     string
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("lfring: %s: %s", e.Op, e.Reason)
}

func newConstructionError(op, reason string) *ConstructionError {
	return &ConstructionError{Op: op, Reason: reason}
}

// contractViolation panics with a ContractViolation-flavored message
// when, and only when, the lfring_debug build tag is set. Without that
// tag it is a no-op, matching the specification's "detected by
// assertions in debug builds; undefined behavior otherwise" policy for
// caller-side misuse (e.g. a second producer calling into an SPSC
// queue, see counters.tryClaimPush/tryClaimPop in base.go). See
// debug_on.go / debug_off.go for the two build-tag-selected values of
// debugAssertionsEnabled.
func contractViolation(format string, args ...any) {
	if debugAssertionsEnabled {
		panic(fmt.Sprintf("lfring: contract violation: "+format, args...))
	}
}
