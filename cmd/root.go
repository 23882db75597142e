package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Floating-overlay components for terminal UIs",
	Long: `overlay - tooltip, popover and dropdown behavior for bubbletea applications.

The library resolves controlled/uncontrolled visibility, interprets hover,
click, long-press and focus triggers with cancellable delay timers, and
places floating surfaces with overflow-aware flipping and clamping.`,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
