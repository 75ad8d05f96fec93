package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "ehttpfeed",
	Short: "Demo host for the httpwire incremental HTTP/1.x parser",
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}
