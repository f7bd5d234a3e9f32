// ABOUTME: Entry point for the swish command line tool
// ABOUTME: Renders bodies, parses flairs and finds game threads from a terminal

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
