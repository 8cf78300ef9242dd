package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/duet"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of duet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "duet version %s\n", strings.TrimSpace(duet.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
