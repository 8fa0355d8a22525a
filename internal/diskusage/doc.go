// Package diskusage builds an in-memory tree of files and directories with
// their on-disk sizes.
//
// Directories are listed in parallel through a worker budget shared by the
// whole Builder. Entries that cannot be read are left out of the tree rather
// than reported as errors, and directory sizes are derived from their
// children whenever they are asked for.
package diskusage
