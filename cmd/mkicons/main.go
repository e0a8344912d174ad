// mkicons writes the extension icon set (16, 48 and 128 px map pins) to
// ./icons. It takes no arguments.
// Usage: go run ./cmd/mkicons
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/Mavwarf/maptag-icons/internal/icon"
	"github.com/Mavwarf/maptag-icons/internal/paths"
)

const installCmd = "go install github.com/Mavwarf/maptag-icons/cmd/mkicons@latest"

// preflight checks the rendering stack before any file is written.
var preflight = icon.Preflight

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

func run(stdout, stderr io.Writer) int {
	if err := preflight(); err != nil {
		fmt.Fprintf(stderr, "Error: icon rendering is unavailable: %v\n", err)
		fmt.Fprintf(stderr, "Reinstall it with: %s\n", installCmd)
		return 1
	}

	if err := os.MkdirAll(paths.IconsDir, paths.DirPerm); err != nil {
		fmt.Fprintf(stderr, "Error: %+v\n", errors.Wrapf(err, "create %s", paths.IconsDir))
		return 1
	}

	for _, s := range icon.Set(paths.IconsDir) {
		if err := icon.Generate(stdout, s); err != nil {
			fmt.Fprintf(stderr, "Error: %+v\n", err)
			return 1
		}
	}

	fmt.Fprintln(stdout, "\nIcons generated successfully!")
	return 0
}
