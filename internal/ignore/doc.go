// Package ignore decides which paths are hidden from a size report.
//
// A Matcher combines gitignore patterns read from the root's .gitignore
// (optionally also nested ones) with the platform hidden-file convention:
// a leading dot on Unix, the hidden attribute on Windows.
package ignore
