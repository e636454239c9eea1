package main

import (
	"os"
)

// Main function just executes root command `lcov-reporter`
// this project structure is inspired from `cobra` package
func main() {
	if err := RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
