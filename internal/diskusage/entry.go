package diskusage

import (
	"slices"
)

// Kind distinguishes files from directories.
type Kind uint8

const (
	// KindFile is a regular file with a precomputed size.
	KindFile Kind = iota
	// KindDir is a directory whose size is the sum of its children.
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}

	return "file"
}

// Entry is one visited filesystem node.
type Entry struct {
	// Path is the path the entry was discovered under.
	Path string
	// Hidden marks entries excluded from display. They still count towards
	// their parent's size.
	Hidden bool
	// Kind tells whether Children or the file size is meaningful.
	Kind Kind
	// Children are the readable entries of a directory in listing order.
	Children []*Entry

	size uint64
}

// NewFile returns a file entry with the given on-disk size.
func NewFile(path string, size uint64, hidden bool) *Entry {
	return &Entry{Path: path, Hidden: hidden, Kind: KindFile, size: size}
}

// NewDir returns a directory entry owning children.
func NewDir(path string, children []*Entry, hidden bool) *Entry {
	return &Entry{Path: path, Hidden: hidden, Kind: KindDir, Children: children}
}

// IsDir reports whether the entry is a directory.
func (e *Entry) IsDir() bool {
	return e.Kind == KindDir
}

// Size returns the on-disk size of a file, or the sum of all children of a
// directory, hidden ones included. Directory sizes are not cached.
func (e *Entry) Size() uint64 {
	if e.Kind == KindFile {
		return e.size
	}

	var total uint64
	for _, c := range e.Children {
		total += c.Size()
	}

	return total
}

// SortChildren orders children by ascending size in place. Equal sizes keep
// their listing order.
func (e *Entry) SortChildren() {
	if len(e.Children) < 2 {
		return
	}

	sizes := make(map[*Entry]uint64, len(e.Children))
	for _, c := range e.Children {
		sizes[c] = c.Size()
	}

	slices.SortStableFunc(e.Children, func(a, b *Entry) int {
		switch {
		case sizes[a] < sizes[b]:
			return -1
		case sizes[a] > sizes[b]:
			return 1
		default:
			return 0
		}
	})
}

// Visible returns the children that are not hidden.
func (e *Entry) Visible() []*Entry {
	visible := make([]*Entry, 0, len(e.Children))
	for _, c := range e.Children {
		if !c.Hidden {
			visible = append(visible, c)
		}
	}

	return visible
}
