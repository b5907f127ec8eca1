package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breakdown-dev/breakdown/internal/version"
)

var versionFull bool

// versionCmd prints build version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		info := version.Get()
		if versionFull {
			fmt.Println("breakdown " + info.Full())
			return
		}
		fmt.Println("breakdown " + info.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Print full build information")
}
