// This is the main entry point for the cardex CLI.
// Build with: go build -o bin/cardex ./cmd/cardex
// Usage: cardex <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
