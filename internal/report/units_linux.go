package report

// BinaryDefault selects powers of 1024 for human-readable sizes.
const BinaryDefault = true
