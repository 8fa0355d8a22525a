package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wizzymore/ru/internal/diskusage"
	"github.com/wizzymore/ru/internal/ignore"
	"github.com/wizzymore/ru/internal/report"
)

func logic(cmd *cobra.Command, options Options) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	log := newLogger(stderr, options.Debug)

	enableProgress := options.Output != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	builder := diskusage.NewBuilder(
		diskusage.WithJobs(options.Jobs),
		diskusage.WithLogger(log),
	)

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries int64, bytes uint64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(entries int64, bytes uint64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s", entries, humanize.IBytes(bytes))
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	stop := diskusage.StartProgress(cmd.Context(), builder, progressHook, 0)
	roots, err := buildAll(builder, options, log)

	stop()

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return fmt.Errorf("building: %w", err)
	}

	reporter := report.New(stdout, report.Options{
		MaxDepth: options.Depth,
		Sort:     options.Sort,
		Bytes:    options.Bytes,
		Binary:   report.BinaryDefault,
		MinSize:  options.MinSize,
		Color:    !options.NoColor && isTerminal(stdout),
	})

	if options.Output == "json" {
		return reporter.RenderJSON(roots)
	}

	for _, root := range roots {
		if err := reporter.Render(root); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return nil
}

// buildAll builds every root concurrently and returns the trees in argument
// order. Roots that cannot be read are nil.
func buildAll(builder *diskusage.Builder, options Options, log logrus.FieldLogger) ([]*diskusage.Entry, error) {
	roots := make([]*diskusage.Entry, len(options.Paths))

	var g errgroup.Group

	g.SetLimit(builder.Jobs())

	for i, path := range options.Paths {
		g.Go(func() error {
			matcher := ignore.New(path, ignore.Options{
				Enabled:  options.Ignore,
				Nested:   options.NestedIgnore,
				Patterns: options.Excludes,
				Logger:   log,
			})

			roots[i] = builder.Build(path, matcher)
			if roots[i] == nil {
				log.WithField("path", path).Debug("nothing to report")
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return roots, nil
}

func newLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
