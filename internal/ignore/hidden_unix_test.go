//go:build !windows

package ignore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasHiddenMarker(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".env", true},
		{"dir/.cache", true},
		{"./visible", false},
		{".", false},
		{"..", false},
		{"file.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, hasHiddenMarker(tt.path))
		})
	}
}

func TestMatcher_DotFilesFallThrough(t *testing.T) {
	root := t.TempDir()

	m := New(root, Options{Enabled: true})

	assert.True(t, m.IsHidden(filepath.Join(root, ".env"), false))
	assert.True(t, m.IsHidden(filepath.Join(root, ".git"), true))
	assert.False(t, m.IsHidden(filepath.Join(root, "env"), false))
}
