// Command dirdiff reports the files that exist in only one of two directory trees.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirdiff/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Build-time variable
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
