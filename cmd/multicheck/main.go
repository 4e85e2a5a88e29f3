// Command multicheck picks any number of options from a terminal checkbox group.
package main

import (
	"os"

	"github.com/Iron-Ham/multicheck/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
