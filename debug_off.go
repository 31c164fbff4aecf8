//go:build !lfring_debug

package lfring

// debugAssertionsEnabled is false in ordinary builds: contract
// violations (caller misuse, e.g. a second producer on an SPSC queue) are undefined
// behavior rather than a panic, per the specification's debug/release
// split for ContractViolation.
const debugAssertionsEnabled = false
