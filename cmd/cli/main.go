// Package main is the entry point for the listing-price CLI.
package main

import (
	"os"

	"listing-price/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
