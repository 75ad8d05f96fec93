package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veltrix/httpwire"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the httpwire library version",
	Run: func(cmd *cobra.Command, args []string) {
		v := httpwire.LibraryVersion()
		fmt.Printf("httpwire v%d.%d.%d\n", v.Major, v.Minor, v.Patch)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
