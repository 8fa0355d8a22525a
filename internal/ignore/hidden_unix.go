//go:build !windows

package ignore

import (
	"path/filepath"
	"strings"
)

// hasHiddenMarker reports whether the base name starts with a dot.
func hasHiddenMarker(path string) bool {
	name := filepath.Base(path)

	return name != "." && name != ".." && strings.HasPrefix(name, ".")
}
