package ignore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/sirupsen/logrus"
)

const (
	commentPrefix = "#"
	// FileName is the pattern file looked up next to each root.
	FileName = ".gitignore"
)

// Options configures a Matcher.
type Options struct {
	// Enabled turns on ignore checking. A disabled matcher hides nothing.
	Enabled bool
	// Nested also loads pattern files found below the root.
	Nested bool
	// Patterns are extra gitignore-style patterns applied after the files.
	Patterns []string
	// Logger receives debug output about pattern loading.
	Logger logrus.FieldLogger
}

// Matcher decides whether a path is hidden from the report.
// It is read-only after New and safe for concurrent use.
type Matcher struct {
	root    string
	enabled bool
	rules   gitignore.Matcher
}

// New builds a Matcher for root. Pattern files that cannot be read are
// treated as empty.
func New(root string, opt Options) *Matcher {
	m := &Matcher{
		root:    filepath.Clean(root),
		enabled: opt.Enabled,
	}

	if !opt.Enabled {
		return m
	}

	log := opt.Logger
	if log == nil {
		log = discard()
	}

	patterns := readPatternFile(filepath.Join(m.root, FileName), nil, log)

	if opt.Nested {
		for _, domain := range discover(m.root, log) {
			dir := filepath.Join(append([]string{m.root}, domain...)...)
			patterns = append(patterns, readPatternFile(filepath.Join(dir, FileName), domain, log)...)
		}
	}

	for _, p := range opt.Patterns {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, gitignore.ParsePattern(p, nil))
		}
	}

	if len(patterns) > 0 {
		m.rules = gitignore.NewMatcher(patterns)
	}

	log.WithField("root", m.root).Debugf("loaded %d ignore patterns", len(patterns))

	return m
}

// IsHidden reports whether path should be left out of the report. Patterns
// are consulted first, then the platform hidden-file convention.
func (m *Matcher) IsHidden(path string, isDir bool) bool {
	if m == nil || !m.enabled {
		return false
	}

	if m.rules != nil {
		if parts := m.split(path); len(parts) > 0 && m.rules.Match(parts, isDir) {
			return true
		}
	}

	return hasHiddenMarker(path)
}

// split returns the path components relative to the matcher root.
func (m *Matcher) split(path string) []string {
	rel, err := filepath.Rel(m.root, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	return strings.Split(filepath.ToSlash(rel), "/")
}

// readPatternFile parses one gitignore file. Missing or unreadable files
// yield no patterns.
func readPatternFile(path string, domain []string, log logrus.FieldLogger) []gitignore.Pattern {
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("path", path).Debug("ignoring unreadable pattern file")
		}

		return nil
	}
	defer f.Close()

	ps, err := parsePatterns(f, domain)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("ignoring malformed pattern file")

		return nil
	}

	return ps
}

func parsePatterns(r io.Reader, domain []string) ([]gitignore.Pattern, error) {
	var ps []gitignore.Pattern

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(s, commentPrefix) || strings.TrimSpace(s) == "" {
			continue
		}

		ps = append(ps, gitignore.ParsePattern(s, domain))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ps, nil
}

func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
