package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wizzymore/ru/internal/integration"
)

// EnvPrefix prefixes the environment variables that default each flag,
// e.g. RU_DEPTH or RU_MIN_SIZE.
const EnvPrefix = "RU"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the resolved command-line configuration.
type Options struct {
	// Paths are the roots to report on.
	Paths []string
	// Depth is the deepest level printed below each root.
	Depth int
	// Bytes prints raw byte counts.
	Bytes bool
	// Sort orders siblings by size.
	Sort bool
	// Ignore hides .gitignore matches and hidden files.
	Ignore bool
	// NestedIgnore also reads .gitignore files below each root.
	NestedIgnore bool
	// Excludes are extra gitignore patterns.
	Excludes []string
	// MinSize hides entries smaller than this many bytes.
	MinSize uint64
	// Output is the output format (table or json).
	Output string
	// Jobs bounds directory listing concurrency (0 = number of CPUs).
	Jobs int
	// NoColor disables colored output.
	NoColor bool
	// Debug enables debug logging.
	Debug bool
	// Integration prints the shell integration script.
	Integration bool
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root cobra command.
func (c CLI) Command() *cobra.Command {
	v := viper.New()

	var bindErr error

	cmd := &cobra.Command{
		Use:   "ru [flags] [file...]",
		Short: "Estimate file space usage",
		Long: heredoc.Doc(`
			ru estimates the disk space used by files and directories.

			Sizes are the blocks allocated on disk, not the file lengths. Directory
			totals are printed below their contents, down to --depth levels under
			each path. Paths default to the current directory.

			With --ignore, entries matching the .gitignore next to each path and
			hidden files are left out of the listing. They still count towards the
			totals of the directories holding them.

			Every flag can be defaulted from the environment as RU_<FLAG>,
			e.g. RU_DEPTH=2 or RU_SORT=true.

			The '--init' flag prints a zsh widget that browses the output with 'fzf'.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bindErr != nil {
				return bindErr
			}

			options, err := resolve(v, args)
			if err != nil {
				return err
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return err
			}

			return logic(cmd, options)
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.IntP("depth", "d", 1, "Maximum print depth below each path")
	flags.BoolP("bytes", "b", false, "Print sizes in bytes")
	flags.Bool("sort", false, "Sort entries by size")
	flags.BoolP("ignore", "i", false, "Hide .gitignore matches and hidden files from the listing")
	flags.Bool("nested-ignore", false, "Also read .gitignore files below each path (implies --ignore)")
	flags.StringSliceP("exclude", "e", []string{}, "Extra gitignore patterns to hide (implies --ignore)")
	flags.String("min-size", "0B", "Hide entries smaller than this size (e.g., 1MiB)")
	flags.StringP("output", "o", "table", "Output format: table or json")
	flags.IntP("jobs", "j", 0, "Directories listed concurrently (0=number of CPUs)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("init", false, "Output init script for shell usage")

	bindErr = bindFlags(v, flags)

	return cmd
}

// bindFlags makes v read each flag, falling back to its RU_ environment
// variable and then to the flag default.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	return nil
}

// resolve reads flags and environment into validated Options.
func resolve(v *viper.Viper, args []string) (Options, error) {
	options := Options{
		Paths:        args,
		Depth:        v.GetInt("depth"),
		Bytes:        v.GetBool("bytes"),
		Sort:         v.GetBool("sort"),
		Ignore:       v.GetBool("ignore"),
		NestedIgnore: v.GetBool("nested-ignore"),
		Excludes:     v.GetStringSlice("exclude"),
		Output:       strings.ToLower(v.GetString("output")),
		Jobs:         v.GetInt("jobs"),
		NoColor:      v.GetBool("no-color"),
		Debug:        v.GetBool("debug"),
		Integration:  v.GetBool("init"),
	}

	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}

	options.Excludes = slices.DeleteFunc(options.Excludes, func(p string) bool {
		return strings.TrimSpace(p) == ""
	})

	if options.NestedIgnore || len(options.Excludes) > 0 {
		options.Ignore = true
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return Options{}, fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.Depth < 0 {
		return Options{}, errors.New("depth cannot be negative")
	}

	if options.Jobs < 0 {
		return Options{}, errors.New("jobs cannot be negative")
	}

	// Parse min-size string to bytes
	if minSizeStr := v.GetString("min-size"); minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return Options{}, fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = size
	}

	return options, nil
}
