package ignore

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"
)

const gitDir = ".git"

// discover returns the directories below root that hold their own pattern
// file, as path components relative to root. Parents sort before their
// children so deeper files take precedence when patterns are concatenated.
func discover(root string, log logrus.FieldLogger) [][]string {
	var (
		mu    sync.Mutex
		found []string
	)

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("skipping during pattern discovery")

			return nil // Silently skip errors
		}

		if d.IsDir() {
			if d.Name() == gitDir {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Name() != FileName {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil || rel == "." {
			return nil //nolint:nilerr // root file is loaded separately
		}

		mu.Lock()
		found = append(found, filepath.ToSlash(rel))
		mu.Unlock()

		return nil
	})
	if err != nil {
		log.WithError(err).WithField("root", root).Debug("pattern discovery stopped")
	}

	slices.Sort(found)

	domains := make([][]string, 0, len(found))
	for _, rel := range found {
		domains = append(domains, strings.Split(rel, "/"))
	}

	return domains
}
