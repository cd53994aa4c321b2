package main

import (
	"fmt"
	"os"

	"github.com/teicheck/teicheck/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// SilenceErrors prevents cobra from printing this itself.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
