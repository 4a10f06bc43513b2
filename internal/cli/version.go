package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sagcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sagcalc v%s\n", Version)
		fmt.Println("Overhead conductor sag, tension, and clearance calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
