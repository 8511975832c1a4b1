// Package main is the entry point for the memenhance CLI.
package main

import (
	"os"

	"github.com/f3rmion/memenhance/cmd/memenhance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
