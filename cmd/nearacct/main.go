package main

import (
	"fmt"
	"os"

	"github.com/near/go-account-id/internal/cli"
)

// main is the entry point of the nearacct tool.
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
