package main

import (
	"os"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

func main() {
	rootCmd := newRootCmd(defaultCLI())
	if err := rootCmd.Execute(); err != nil {
		osExit(1)
	}
}
