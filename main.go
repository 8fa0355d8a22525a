// Command ru estimates file space usage.
package main

import (
	"fmt"
	"os"

	"github.com/wizzymore/ru/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Set by the linker
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ru:", err)
		os.Exit(1)
	}
}
