// Package report prints entry trees built by diskusage.
//
// Output is depth-first and post-order: the children of a directory are
// printed above the line holding the directory total.
package report
