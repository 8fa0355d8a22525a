package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMatcher_DisabledHidesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "*\n")

	m := New(root, Options{Enabled: false})

	assert.False(t, m.IsHidden(filepath.Join(root, "a.txt"), false))
	assert.False(t, m.IsHidden(filepath.Join(root, ".env"), false))
	assert.False(t, m.IsHidden(filepath.Join(root, "dir"), true))
}

func TestMatcher_NilMatcher(t *testing.T) {
	var m *Matcher

	assert.False(t, m.IsHidden("anything", false))
}

func TestMatcher_Precedence(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `# logs
*.log
!important.log

build/
`)

	m := New(root, Options{Enabled: true})

	assert.True(t, m.IsHidden(filepath.Join(root, "debug.log"), false))
	assert.True(t, m.IsHidden(filepath.Join(root, "sub", "trace.log"), false))
	assert.False(t, m.IsHidden(filepath.Join(root, "important.log"), false))
	assert.False(t, m.IsHidden(filepath.Join(root, "main.go"), false))
}

func TestMatcher_DirectoryOnlyPattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "build/\n")

	m := New(root, Options{Enabled: true})

	assert.True(t, m.IsHidden(filepath.Join(root, "build"), true))
	assert.False(t, m.IsHidden(filepath.Join(root, "build"), false))
}

func TestMatcher_RootNeverMatchesPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "*\n")

	m := New(root, Options{Enabled: true})

	assert.False(t, m.IsHidden(root, true))
	assert.True(t, m.IsHidden(filepath.Join(root, "x"), false))
}

func TestMatcher_RelativeRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "vendor/\n")
	t.Chdir(root)

	m := New(".", Options{Enabled: true})

	assert.True(t, m.IsHidden("./vendor", true))
	assert.False(t, m.IsHidden("./internal", true))
}

func TestMatcher_UnreadablePatternFileMeansNoPatterns(t *testing.T) {
	root := t.TempDir()
	// A directory in place of the pattern file cannot be parsed.
	require.NoError(t, os.Mkdir(filepath.Join(root, FileName), 0o755))

	m := New(root, Options{Enabled: true})

	assert.Nil(t, m.rules)
	assert.False(t, m.IsHidden(filepath.Join(root, "a.log"), false))
}

func TestMatcher_MissingPatternFile(t *testing.T) {
	root := t.TempDir()

	m := New(root, Options{Enabled: true})

	assert.Nil(t, m.rules)
	assert.False(t, m.IsHidden(filepath.Join(root, "main.go"), false))
}

func TestMatcher_ExtraPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "!*.bin\n")

	m := New(root, Options{Enabled: true, Patterns: []string{"*.bin", "  "}})

	assert.True(t, m.IsHidden(filepath.Join(root, "blob.bin"), false))
}

func TestMatcher_Nested(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "*.tmp\n")
	writeFile(t, filepath.Join(root, "sub", FileName), "!keep.tmp\n*.cache\n")
	writeFile(t, filepath.Join(root, ".git", FileName), "*\n")

	flat := New(root, Options{Enabled: true})
	nested := New(root, Options{Enabled: true, Nested: true})

	assert.False(t, flat.IsHidden(filepath.Join(root, "sub", "a.cache"), false))
	assert.True(t, nested.IsHidden(filepath.Join(root, "sub", "a.cache"), false))
	assert.False(t, nested.IsHidden(filepath.Join(root, "a.cache"), false))

	assert.True(t, flat.IsHidden(filepath.Join(root, "sub", "keep.tmp"), false))
	assert.False(t, nested.IsHidden(filepath.Join(root, "sub", "keep.tmp"), false))
	assert.True(t, nested.IsHidden(filepath.Join(root, "other.tmp"), false))
	assert.False(t, nested.IsHidden(filepath.Join(root, "main.go"), false))
}

func TestDiscover_SortsParentsFirst(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "")
	writeFile(t, filepath.Join(root, "b", "c", FileName), "")
	writeFile(t, filepath.Join(root, "b", FileName), "")
	writeFile(t, filepath.Join(root, "a", FileName), "")
	writeFile(t, filepath.Join(root, ".git", "x", FileName), "")

	got := discover(root, discard())

	assert.Equal(t, [][]string{{"a"}, {"b"}, {"b", "c"}}, got)
}

func TestMatcher_DotDotPrefixedChild(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "*.log\n")

	m := New(root, Options{Enabled: true})

	assert.Equal(t, []string{"..cache", "a.log"}, m.split(filepath.Join(root, "..cache", "a.log")))
	assert.True(t, m.IsHidden(filepath.Join(root, "..cache", "a.log"), false))
	assert.False(t, m.IsHidden(filepath.Join(root, "..cache", "a.txt"), false))
}

func TestMatcher_SplitOutsideRoot(t *testing.T) {
	root := t.TempDir()
	m := New(root, Options{Enabled: true})

	assert.Nil(t, m.split(root))
	assert.Nil(t, m.split(filepath.Dir(root)))
	assert.Nil(t, m.split(filepath.Join(root, "..", "x")))
}
