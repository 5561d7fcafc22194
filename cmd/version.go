package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TurnbullEngineering/water-flow-forces/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wff",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wff v%s\n", version.Version)
		fmt.Println("Water Flow Forces Calculator")
		fmt.Println("Based on AS 5100.2:2017 Section 16 - Forces Resulting from Water Flow")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
