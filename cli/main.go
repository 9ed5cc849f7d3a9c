// Package main provides the bonsai CLI application.
//
// The bonsai CLI manages the lifecycle of assessment runs against trained
// brains on the Bonsai service: starting assessments (with optional managed
// simulator provisioning), listing and inspecting them, and stopping or
// deleting them. Commands render for humans by default and for machines with
// --output json.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/render"
)

var rootCmd = &cobra.Command{
	Use:           "bonsai",
	Short:         "Command line interface for the Bonsai brain training service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := initLogger(); err != nil {
		// Debug logging is best effort; the CLI works without it.
		fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Error(err))
		os.Exit(1)
	}
}
