package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stacksync version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("stacksync", version)
	},
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(versionCmd)
}
