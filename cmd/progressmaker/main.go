package main

import (
	"fmt"
	"os"

	"github.com/wintryx/progressmaker/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "progressmaker:", err)
		os.Exit(1)
	}
}
