package diskusage

import (
	"io"
	"os"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// Hider decides whether an entry is hidden from display.
type Hider interface {
	IsHidden(path string, isDir bool) bool
}

type noneHidden struct{}

func (noneHidden) IsHidden(string, bool) bool { return false }

// Option configures a Builder.
type Option func(*Builder)

// WithOracle replaces the platform size oracle.
func WithOracle(oracle SizeOracle) Option {
	return func(b *Builder) {
		if oracle != nil {
			b.oracle = oracle
		}
	}
}

// WithJobs sets how many goroutines may list directories concurrently.
// Values below 1 select runtime.NumCPU.
func WithJobs(n int) Option {
	return func(b *Builder) {
		b.jobs = n
	}
}

// WithLogger sets the logger receiving debug output for skipped entries.
func WithLogger(log logrus.FieldLogger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// Builder materializes entry trees. A single Builder may build several
// roots concurrently; all of them share its worker budget.
type Builder struct {
	oracle SizeOracle
	log    logrus.FieldLogger
	jobs   int
	sem    *semaphore.Weighted

	entries atomic.Int64
	bytes   atomic.Uint64
}

// NewBuilder creates a Builder using the platform size oracle unless
// overridden.
func NewBuilder(opts ...Option) *Builder {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	b := &Builder{
		oracle: DefaultOracle(),
		log:    discard,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.jobs < 1 {
		b.jobs = runtime.NumCPU()
	}

	b.sem = semaphore.NewWeighted(int64(b.jobs))

	return b
}

// Jobs returns the size of the worker budget.
func (b *Builder) Jobs() int {
	return b.jobs
}

// Progress returns the number of entries built so far and the on-disk
// bytes of the files among them.
func (b *Builder) Progress() (int64, uint64) {
	return b.entries.Load(), b.bytes.Load()
}

// Build returns the entry tree rooted at path, or nil if path cannot be
// read. Symlinks are never followed; they, like devices, sockets and pipes,
// are left out of the tree. Unreadable children are dropped silently.
func (b *Builder) Build(path string, hider Hider) *Entry {
	if hider == nil {
		hider = noneHidden{}
	}

	info, err := os.Lstat(path)
	if err != nil {
		b.log.WithError(err).WithField("path", path).Debug("skipping unreadable entry")

		return nil
	}

	switch mode := info.Mode(); {
	case mode.IsRegular():
		size := b.oracle.OnDisk(path, info)

		b.entries.Add(1)
		b.bytes.Add(size)

		return NewFile(path, size, hider.IsHidden(path, false))
	case mode.IsDir():
		children, ok := b.children(path, hider)
		if !ok {
			return nil
		}

		b.entries.Add(1)

		return NewDir(path, children, hider.IsHidden(path, true))
	default:
		b.log.WithField("path", path).WithField("mode", mode.Type().String()).Debug("skipping non-regular entry")

		return nil
	}
}

// children builds every entry of dir in listing order. A child is built on
// its own goroutine when the worker budget allows it and inline otherwise,
// so nested directories never wait on a slot held by an ancestor.
func (b *Builder) children(dir string, hider Hider) ([]*Entry, bool) {
	f, err := os.Open(dir)
	if err != nil {
		b.log.WithError(err).WithField("path", dir).Debug("skipping unreadable directory")

		return nil, false
	}

	names, err := f.Readdirnames(-1)
	f.Close()

	if err != nil {
		b.log.WithError(err).WithField("path", dir).Debug("skipping unlistable directory")

		return nil, false
	}

	entries := make([]*Entry, len(names))

	var wg sync.WaitGroup

	for i, name := range names {
		path := joinPath(dir, name)

		if b.sem.TryAcquire(1) {
			wg.Add(1)

			go func() {
				defer wg.Done()
				defer b.sem.Release(1)

				entries[i] = b.Build(path, hider)
			}()

			continue
		}

		entries[i] = b.Build(path, hider)
	}

	wg.Wait()

	return slices.DeleteFunc(entries, func(e *Entry) bool { return e == nil }), true
}

// joinPath appends name to dir the way the path was given, so a root of
// "." yields "./name" rather than "name".
func joinPath(dir, name string) string {
	if dir != "" && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}

	return dir + string(os.PathSeparator) + name
}
