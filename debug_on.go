//go:build lfring_debug

package lfring

// debugAssertionsEnabled is true when the module is built with
// -tags lfring_debug, turning ContractViolation checks into panics
// instead of silently undefined behavior.
const debugAssertionsEnabled = true
