// Command mindmap views YAML mindmaps.
package main

import (
	"os"

	"github.com/phanxgames/mindmap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
