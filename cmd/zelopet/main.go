// Package main provides the zelopet admin CLI: migrate, seed, export,
// import, reset, and inspection commands over the local pet-care database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
