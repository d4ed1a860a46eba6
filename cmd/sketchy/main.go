// Package main runs the sketchy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jbacus/sketchy/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
