package main

import (
	"github.com/aretw0/duet/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered days and their input files",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, err := cli.CreateEngine(runOptions(cmd))
		if err != nil {
			return err
		}
		cli.PrintList(cmd.OutOrStdout(), engine)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
