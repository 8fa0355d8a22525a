//go:build !linux

package report

// BinaryDefault selects powers of 1000 for human-readable sizes.
const BinaryDefault = false
