//go:build windows

package ignore

import (
	"golang.org/x/sys/windows"
)

// hasHiddenMarker reports whether the file carries FILE_ATTRIBUTE_HIDDEN.
func hasHiddenMarker(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}

	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
